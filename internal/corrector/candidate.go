package corrector

import "fmt"

// Operator records how a candidate was derived and therefore how it is
// written into the output sentence.
type Operator int

const (
	// NoChange keeps the word as it is.
	NoChange Operator = iota
	// MisspelledReplace swaps the word for its entry in the misspelling table.
	MisspelledReplace
	// SpellCheck is a single insert, delete, replace or adjacent swap.
	SpellCheck
	// Split emits two or more words.
	Split
	// ForwardMerge glues the word to the next one.
	ForwardMerge
	// BackwardMerge glues the word to the previous one.
	BackwardMerge
	// ContextBased comes from the context association table.
	ContextBased
	// TrieBased comes from the bounded trie walk.
	TrieBased
)

var operatorNames = [...]string{
	NoChange:          "NO_CHANGE",
	MisspelledReplace: "MISSPELLED_REPLACE",
	SpellCheck:        "SPELL_CHECK",
	Split:             "SPLIT",
	ForwardMerge:      "FORWARD_MERGE",
	BackwardMerge:     "BACKWARD_MERGE",
	ContextBased:      "CONTEXT_BASED",
	TrieBased:         "TRIE_BASED",
}

func (o Operator) String() string {
	if o >= 0 && int(o) < len(operatorNames) {
		return operatorNames[o]
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Candidate is a proposed replacement together with its provenance.
type Candidate struct {
	Text     string   `json:"text"`
	Operator Operator `json:"operator"`
}

// TrieCandidate is a Candidate in flight during a fuzzy trie walk. Text holds
// the prefix walked so far.
type TrieCandidate struct {
	Candidate
	CurrentIndex   int // input runes consumed
	CurrentPenalty int // accumulated edit cost
}
