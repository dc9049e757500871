package corrector

import "spellchecker/pkg/options"

// =====================
// Candidate generation
// =====================

// editCandidates enumerates one-edit variants of word and keeps those the
// oracle accepts, rewriting invalid ones through the misspelling table.
func (sc *SpellCorrector) editCandidates(word string) []Candidate {
	r := []rune(word)
	var raw []string
	for i := range r {
		if i < len(r)-1 {
			sw := append([]rune(nil), r...)
			sw[i], sw[i+1] = sw[i+1], sw[i]
			raw = append(raw, string(sw))
		}
		if !isLetter(r[i]) {
			continue
		}
		deleted := string(r[:i]) + string(r[i+1:])
		if deleted != "" && !isNumeric(deleted) {
			raw = append(raw, deleted)
		}
		for _, a := range alphabet {
			if a != r[i] {
				raw = append(raw, string(r[:i])+string(a)+string(r[i+1:]))
			}
			raw = append(raw, string(r[:i])+string(a)+string(r[i:]))
		}
	}

	var out []Candidate
	seen := make(map[string]struct{}, len(raw))
	add := func(c Candidate) {
		if _, ok := seen[c.Text]; ok {
			return
		}
		seen[c.Text] = struct{}{}
		out = append(out, c)
	}
	for _, s := range raw {
		if s == word {
			continue
		}
		if sc.analyzer.IsValid(s) {
			add(Candidate{Text: s, Operator: SpellCheck})
			continue
		}
		if fixed, ok := sc.analyzer.CorrectForm(s); ok && fixed != "" && sc.analyzer.IsValid(fixed) {
			add(Candidate{Text: fixed, Operator: MisspelledReplace})
		}
	}
	return out
}

// mergeCandidates glues the word to its neighbours when the result is a word.
func (sc *SpellCorrector) mergeCandidates(w Window) []Candidate {
	var out []Candidate
	var backward string
	if w.Previous != "" {
		backward = w.Previous + w.Word
		if sc.analyzer.IsValid(backward) {
			out = append(out, Candidate{Text: backward, Operator: BackwardMerge})
		} else {
			backward = ""
		}
	}
	if w.Next != "" {
		forward := w.Word + w.Next
		if forward != backward && sc.analyzer.IsValid(forward) {
			out = append(out, Candidate{Text: forward, Operator: ForwardMerge})
		}
	}
	return out
}

// splitCandidates proposes two-word splits. The first four and the last
// three runes never become a piece of their own.
func (sc *SpellCorrector) splitCandidates(word string) []Candidate {
	r := []rune(word)
	var out []Candidate
	for i := 4; i < len(r)-3; i++ {
		first, second := string(r[:i]), string(r[i:])
		if sc.analyzer.IsValid(first) && sc.analyzer.IsValid(second) {
			out = append(out, Candidate{Text: first + " " + second, Operator: Split})
		}
	}
	return out
}

// contextCandidates collects words associated with the roots of the rest of
// the sentence that are close enough to the misspelled word.
func (sc *SpellCorrector) contextCandidates(w Window) []Candidate {
	if sc.tables == nil || len(sc.tables.Context) == 0 {
		return nil
	}
	target := toLower(w.Word)
	var out []Candidate
	seen := make(map[string]struct{})
	for j, other := range w.Sentence {
		if j == w.Index {
			continue
		}
		root, ok := sc.contextRoot(other)
		if !ok {
			continue
		}
		for _, assoc := range sc.tables.Context[root] {
			if _, dup := seen[assoc]; dup {
				continue
			}
			seen[assoc] = struct{}{}
			if assoc == target {
				continue
			}
			if damerauLevenshtein(target, assoc) > distanceBudget(runeLen(assoc)) {
				continue
			}
			if sc.analyzer.IsValid(assoc) {
				out = append(out, Candidate{Text: assoc, Operator: ContextBased})
			}
		}
	}
	return out
}

func (sc *SpellCorrector) contextRoot(word string) (string, bool) {
	for _, form := range []string{toCapital(word), word} {
		if !sc.analyzer.IsValid(form) {
			continue
		}
		if root, ok := sc.analyzer.LongestRoot(form); ok {
			return root, true
		}
	}
	return "", false
}

// trieCandidates asks the vocabulary trie for words within the penalty budget.
func (sc *SpellCorrector) trieCandidates(word string) []Candidate {
	if sc.trie == nil {
		return nil
	}
	lower := toLower(word)
	var out []Candidate
	for _, tc := range sc.trie.FuzzySearch(lower, distanceBudget(runeLen(lower))) {
		if tc.Text == lower || !sc.analyzer.IsValid(tc.Text) {
			continue
		}
		out = append(out, tc.Candidate)
	}
	return out
}

func (sc *SpellCorrector) primaryCandidates(w Window) []Candidate {
	switch sc.params.Variant {
	case options.ContextBased:
		return sc.contextCandidates(w)
	case options.TrieBased:
		return sc.trieCandidates(w.Word)
	default:
		return sc.editCandidates(w.Word)
	}
}

// candidatePool builds the pool handed to the disambiguator. Rootless words
// get primary and split candidates, merges are always tried. The simple
// variant falls back from merges to edits to splits instead of pooling.
func (sc *SpellCorrector) candidatePool(w Window, rootless bool) []Candidate {
	if sc.params.Variant == options.Simple {
		pool := sc.mergeCandidates(w)
		if len(pool) == 0 && rootless {
			pool = sc.primaryCandidates(w)
		}
		if len(pool) == 0 && rootless {
			pool = sc.splitCandidates(w.Word)
		}
		return pool
	}

	var pool []Candidate
	if rootless {
		pool = append(pool, sc.primaryCandidates(w)...)
		pool = append(pool, sc.splitCandidates(w.Word)...)
	}
	pool = append(pool, sc.mergeCandidates(w)...)
	return dedupe(pool)
}

func dedupe(pool []Candidate) []Candidate {
	seen := make(map[string]struct{}, len(pool))
	out := pool[:0]
	for _, c := range pool {
		if _, ok := seen[c.Text]; ok {
			continue
		}
		seen[c.Text] = struct{}{}
		out = append(out, c)
	}
	return out
}
