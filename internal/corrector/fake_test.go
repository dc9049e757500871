package corrector

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"spellchecker/internal/tables"
	"spellchecker/pkg/options"
)

// fakeAnalyzer accepts exactly the surfaces it was given. An entry is either
// "surface" or "surface:root".
type fakeAnalyzer struct {
	roots      map[string]string
	proper     map[string]bool
	code       map[string]bool
	noHarmony  map[string]bool
	misspelled map[string]string
}

func newFakeAnalyzer(entries ...string) *fakeAnalyzer {
	a := &fakeAnalyzer{
		roots:      make(map[string]string),
		proper:     make(map[string]bool),
		code:       make(map[string]bool),
		noHarmony:  make(map[string]bool),
		misspelled: make(map[string]string),
	}
	a.add(entries...)
	return a
}

func (a *fakeAnalyzer) add(entries ...string) *fakeAnalyzer {
	for _, e := range entries {
		surface, root, ok := strings.Cut(e, ":")
		if !ok {
			root = surface
		}
		a.roots[surface] = root
	}
	return a
}

func (a *fakeAnalyzer) properNoun(roots ...string) *fakeAnalyzer {
	for _, r := range roots {
		a.proper[r] = true
	}
	return a
}

func (a *fakeAnalyzer) IsValid(word string) bool {
	_, ok := a.roots[word]
	return ok
}

func (a *fakeAnalyzer) LongestRoot(word string) (string, bool) {
	r, ok := a.roots[word]
	return r, ok
}

func (a *fakeAnalyzer) IsProperNoun(root string) bool { return a.proper[root] }

func (a *fakeAnalyzer) IsCode(root string) bool { return a.code[root] }

func (a *fakeAnalyzer) NotObeysVowelHarmony(root string) bool { return a.noHarmony[root] }

func (a *fakeAnalyzer) CorrectForm(word string) (string, bool) {
	s, ok := a.misspelled[word]
	return s, ok
}

// fakeModel returns fixed probabilities for listed pairs and 0 otherwise.
type fakeModel map[[2]string]float64

func (m fakeModel) Probability(first, second string) float64 {
	return m[[2]string{first, second}]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCorrector(t *testing.T, res Resources, opts ...options.Options) *SpellCorrector {
	t.Helper()
	if res.Tables == nil {
		res.Tables = tables.New()
	}
	if res.Model == nil {
		res.Model = fakeModel{}
	}
	sc, err := NewSpellCorrector(options.New(opts...), res, WithLogger(discardLogger()))
	require.NoError(t, err)
	return sc
}

func correct(sc *SpellCorrector, sentence string) string {
	return sc.CorrectText(sentence).Corrected
}
