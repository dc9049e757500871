package corrector

import (
	"math/rand/v2"
	"strings"
	"sync"
)

// Decision is the outcome of a disambiguation step.
type Decision struct {
	Candidate Candidate
	Root      string
	Score     float64
}

// Disambiguator picks the candidate whose root fits best between the
// neighbouring roots.
type Disambiguator struct {
	model     LanguageModel
	threshold float64
	resolve   func(word string) string

	mu     sync.Mutex
	random *rand.Rand
}

// NewDisambiguator builds a disambiguator. resolve maps a word onto the unit
// the model is keyed by and returns "" for invalid words. A nil model picks
// the first candidate; a non-nil random picks uniformly instead of scoring.
func NewDisambiguator(model LanguageModel, threshold float64, resolve func(string) string, random *rand.Rand) *Disambiguator {
	return &Disambiguator{model: model, threshold: threshold, resolve: resolve, random: random}
}

// projection is the left/right context a candidate is scored in.
type projection struct {
	left      string // root before the candidate
	leftRoot  string // candidate root facing left
	rightRoot string // candidate root facing right
	right     string // root after the candidate
	root      string // root committed when the candidate wins
}

func (d *Disambiguator) project(w Window, roots Roots, c Candidate) projection {
	p := projection{left: roots.Previous, right: roots.Next}
	switch c.Operator {
	case BackwardMerge:
		p.left = d.resolveOptional(w.PreviousPrevious)
	case ForwardMerge:
		p.right = d.resolveOptional(w.NextNext)
	case Split:
		fragments := strings.Fields(c.Text)
		if len(fragments) > 0 {
			p.leftRoot = d.resolve(fragments[0])
			p.rightRoot = d.resolve(fragments[len(fragments)-1])
			p.root = p.rightRoot
			return p
		}
	}
	root := d.resolve(c.Text)
	p.leftRoot, p.rightRoot, p.root = root, root, root
	return p
}

func (d *Disambiguator) resolveOptional(word string) string {
	if word == "" {
		return ""
	}
	return d.resolve(word)
}

func (d *Disambiguator) score(p projection) float64 {
	var left, right float64
	if p.left != "" && p.leftRoot != "" {
		left = d.model.Probability(p.left, p.leftRoot)
	}
	if p.right != "" && p.rightRoot != "" {
		right = d.model.Probability(p.rightRoot, p.right)
	}
	return max(left, right)
}

// Choose returns the winning candidate for w. The running best starts as the
// unchanged word at the threshold; a candidate must beat it strictly, so ties
// keep the earlier one. A pool of one is taken regardless of its score.
func (d *Disambiguator) Choose(w Window, roots Roots, pool []Candidate) Decision {
	best := Decision{
		Candidate: Candidate{Text: w.Word, Operator: NoChange},
		Root:      w.Word,
		Score:     d.threshold,
	}
	if len(pool) == 0 {
		return best
	}

	if d.random != nil {
		d.mu.Lock()
		c := pool[d.random.IntN(len(pool))]
		d.mu.Unlock()
		return Decision{Candidate: c, Root: d.project(w, roots, c).root}
	}
	if d.model == nil {
		return Decision{Candidate: pool[0], Root: d.project(w, roots, pool[0]).root}
	}

	for _, c := range pool {
		p := d.project(w, roots, c)
		s := d.score(p)
		if s > best.Score || len(pool) == 1 {
			best = Decision{Candidate: c, Root: p.root, Score: s}
		}
	}
	return best
}
