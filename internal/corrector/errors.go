package corrector

import "errors"

var (
	// ErrNoAnalyzer means no morphological oracle was supplied.
	ErrNoAnalyzer = errors.New("corrector: morphological analyzer is required")
	// ErrNoModel means a scoring variant was configured without a bigram model.
	ErrNoModel = errors.New("corrector: language model is required for this variant")
	// ErrEmptyVocabulary means the trie variant has nothing to search.
	ErrEmptyVocabulary = errors.New("corrector: trie vocabulary is empty")
)
