package corrector

// TrieNode is one character position of the vocabulary trie. order keeps
// the insertion order of children so fuzzy walks are deterministic.
type TrieNode struct {
	children map[rune]*TrieNode
	order    []rune
	isWord   bool
}

func newTrieNode() *TrieNode {
	return &TrieNode{children: make(map[rune]*TrieNode)}
}

func (n *TrieNode) child(r rune) *TrieNode {
	return n.children[r]
}

func (n *TrieNode) addChild(r rune) *TrieNode {
	if c, ok := n.children[r]; ok {
		return c
	}
	c := newTrieNode()
	n.children[r] = c
	n.order = append(n.order, r)
	return c
}

// Trie is a prefix tree over the known vocabulary. It is built once and is
// safe for concurrent reads afterwards.
type Trie struct {
	root *TrieNode
	size int
}

func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

func NewTrieFromWords(words []string) *Trie {
	t := NewTrie()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds word in Turkish lowercase. Empty words are ignored.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	node := t.root
	for _, r := range toLower(word) {
		node = node.addChild(r)
	}
	if !node.isWord {
		node.isWord = true
		t.size++
	}
}

func (t *Trie) walk(prefix string) *TrieNode {
	node := t.root
	for _, r := range toLower(prefix) {
		if node = node.child(r); node == nil {
			return nil
		}
	}
	return node
}

func (t *Trie) Search(word string) bool {
	node := t.walk(word)
	return node != nil && node.isWord
}

func (t *Trie) StartsWith(prefix string) bool {
	return t.walk(prefix) != nil
}

// Len returns the number of distinct words.
func (t *Trie) Len() int { return t.size }

type trieState struct {
	candidate TrieCandidate
	node      *TrieNode
}

type visitKey struct {
	node    *TrieNode
	index   int
	penalty int
}

// FuzzySearch walks the trie breadth first. At every input character a branch
// can match it for free, skip it or substitute it with any child for a
// penalty of one. Branches over budget are pruned. A word is yielded when the
// input is consumed on a terminal node; each text is reported once with its
// lowest penalty, in discovery order.
func (t *Trie) FuzzySearch(word string, budget int) []TrieCandidate {
	input := []rune(toLower(word))
	if len(input) == 0 {
		return nil
	}

	queue := []trieState{{node: t.root}}
	seen := map[visitKey]struct{}{{t.root, 0, 0}: {}}
	best := make(map[string]int)
	var results []TrieCandidate

	push := func(s trieState) {
		if s.candidate.CurrentPenalty > budget {
			return
		}
		key := visitKey{s.node, s.candidate.CurrentIndex, s.candidate.CurrentPenalty}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		c := s.candidate

		if c.CurrentIndex == len(input) {
			if s.node.isWord && c.Text != "" {
				if i, ok := best[c.Text]; !ok {
					best[c.Text] = len(results)
					results = append(results, c)
				} else if c.CurrentPenalty < results[i].CurrentPenalty {
					results[i] = c
				}
			}
			continue
		}

		r := input[c.CurrentIndex]
		if next := s.node.child(r); next != nil {
			push(trieState{candidate: advance(c, r, 0, true), node: next})
		}
		push(trieState{candidate: advance(c, 0, 1, false), node: s.node})
		for _, cr := range s.node.order {
			if cr == r {
				continue
			}
			push(trieState{candidate: advance(c, cr, 1, true), node: s.node.children[cr]})
		}
	}
	return results
}

func advance(c TrieCandidate, r rune, cost int, appendRune bool) TrieCandidate {
	text := c.Text
	if appendRune {
		text += string(r)
	}
	return TrieCandidate{
		Candidate:      Candidate{Text: text, Operator: TrieBased},
		CurrentIndex:   c.CurrentIndex + 1,
		CurrentPenalty: c.CurrentPenalty + cost,
	}
}
