package corrector

import "spellchecker/internal/tables"

// Analyzer is the morphological oracle the corrector consults.
type Analyzer interface {
	IsValid(word string) bool
	// LongestRoot returns the longest root among the analyses of word.
	LongestRoot(word string) (string, bool)
	IsProperNoun(root string) bool
	IsCode(root string) bool
	// NotObeysVowelHarmony reports roots whose suffixes break vowel harmony (saat -> saatte).
	NotObeysVowelHarmony(root string) bool
	CorrectForm(misspelled string) (string, bool)
}

// LanguageModel scores adjacent roots.
type LanguageModel interface {
	Probability(first, second string) float64
}

// Resources are the collaborators a SpellCorrector is built from.
// Model may be nil for the simple variant, Vocabulary is only read by the
// trie variant.
type Resources struct {
	Analyzer   Analyzer
	Model      LanguageModel
	Tables     *tables.Tables
	Vocabulary []string
}

// Edit records one change made to the input sentence.
type Edit struct {
	Position  int      `json:"position"`
	Original  string   `json:"original"`
	Corrected string   `json:"corrected"`
	Operator  Operator `json:"operator"`
	Rule      string   `json:"rule,omitempty"`
}

type CorrectionResult struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Edits     []Edit `json:"edits,omitempty"`
}

// Window is a word together with its neighbours in the input sentence.
// Missing neighbours are empty strings.
type Window struct {
	Index            int
	PreviousPrevious string
	Previous         string
	Word             string
	Next             string
	NextNext         string
	Sentence         []string
}

func newWindow(words []string, i int) Window {
	at := func(j int) string {
		if j < 0 || j >= len(words) {
			return ""
		}
		return words[j]
	}
	return Window{
		Index:            i,
		PreviousPrevious: at(i - 2),
		Previous:         at(i - 1),
		Word:             words[i],
		Next:             at(i + 1),
		NextNext:         at(i + 2),
		Sentence:         words,
	}
}

// Roots is the lookbehind/lookahead state carried across the sentence.
// An empty root means the word is invalid or absent.
type Roots struct {
	Previous string
	Current  string
	Next     string
}
