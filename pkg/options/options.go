package options

import (
	"fmt"
	"strings"
)

// Variant selects the primary candidate source of the checker.
type Variant int

const (
	// Simple uses edit candidates and no language model.
	Simple Variant = iota
	// NGram uses edit candidates scored by the bigram model.
	NGram
	// ContextBased takes candidates from the context association table.
	ContextBased
	// TrieBased takes candidates from a bounded walk of the vocabulary trie.
	TrieBased
)

var variantNames = map[Variant]string{
	Simple:       "simple",
	NGram:        "ngram",
	ContextBased: "context",
	TrieBased:    "trie",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant maps a configuration name onto a Variant.
func ParseVariant(name string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for v, n := range variantNames {
		if n == key {
			return v, nil
		}
	}
	return Simple, fmt.Errorf("options: unknown variant %q", name)
}

// DefaultParameters mirrors the behaviour of the reference n-gram checker.
var DefaultParameters = Parameters{
	Threshold:       0.0,
	SuffixCheck:     true,
	RootNGram:       true,
	MinWordLength:   4,
	Domain:          "",
	Variant:         NGram,
	RandomSelection: false,
	Seed:            1,
}

// Parameters is the immutable configuration every checker component reads.
type Parameters struct {
	Threshold       float64 // minimum bigram score a candidate has to beat
	SuffixCheck     bool    // enables the de/da, interrogative and proper noun suffix rules
	RootNGram       bool    // score roots instead of surface forms
	MinWordLength   int     // words up to this length are re-checked even when they have a root
	Domain          string  // prefix for domain specific table files
	Variant         Variant
	RandomSelection bool   // pick a uniformly random candidate instead of scoring
	Seed            uint64 // seed of the random source used by RandomSelection
}

type Options interface {
	Apply(params *Parameters)
}

type FuncConfig struct {
	ops func(params *Parameters)
}

func (w FuncConfig) Apply(conf *Parameters) {
	w.ops(conf)
}

func NewFuncOption(f func(params *Parameters)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// New returns DefaultParameters with opts applied in order.
func New(opts ...Options) Parameters {
	params := DefaultParameters
	for _, o := range opts {
		o.Apply(&params)
	}
	return params
}

func WithThreshold(threshold float64) Options {
	return NewFuncOption(func(params *Parameters) {
		params.Threshold = threshold
	})
}

func WithSuffixCheck(enabled bool) Options {
	return NewFuncOption(func(params *Parameters) {
		params.SuffixCheck = enabled
	})
}

func WithRootNGram(enabled bool) Options {
	return NewFuncOption(func(params *Parameters) {
		params.RootNGram = enabled
	})
}

func WithMinWordLength(length int) Options {
	return NewFuncOption(func(params *Parameters) {
		params.MinWordLength = length
	})
}

func WithDomain(domain string) Options {
	return NewFuncOption(func(params *Parameters) {
		params.Domain = domain
	})
}

func WithVariant(variant Variant) Options {
	return NewFuncOption(func(params *Parameters) {
		params.Variant = variant
	})
}

// WithRandomSelection switches the disambiguator to uniform random picks,
// kept for compatibility testing against the legacy simple checker.
func WithRandomSelection(seed uint64) Options {
	return NewFuncOption(func(params *Parameters) {
		params.RandomSelection = true
		params.Seed = seed
	})
}
