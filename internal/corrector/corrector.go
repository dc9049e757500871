package corrector

import (
	"log/slog"
	"math/rand/v2"
	"strings"

	"golang.org/x/text/unicode/norm"

	"spellchecker/internal/tables"
	"spellchecker/pkg/options"
)

// =====================

type SpellCorrector struct {
	params   options.Parameters
	analyzer Analyzer
	model    LanguageModel
	tables   *tables.Tables
	trie     *Trie
	disamb   *Disambiguator
	random   *rand.Rand
	logger   *slog.Logger
}

// Option customises a SpellCorrector beyond its Parameters.
type Option func(sc *SpellCorrector)

func WithLogger(logger *slog.Logger) Option {
	return func(sc *SpellCorrector) {
		if logger != nil {
			sc.logger = logger
		}
	}
}

// WithRandom injects the source used when Parameters.RandomSelection is set.
// Without it a PCG source seeded from Parameters.Seed is used.
func WithRandom(r *rand.Rand) Option {
	return func(sc *SpellCorrector) {
		sc.random = r
	}
}

// =====================
// Initialisation
// =====================

func NewSpellCorrector(params options.Parameters, res Resources, opts ...Option) (*SpellCorrector, error) {
	if res.Analyzer == nil {
		return nil, ErrNoAnalyzer
	}
	if params.Variant != options.Simple && res.Model == nil {
		return nil, ErrNoModel
	}

	sc := &SpellCorrector{
		params:   params,
		analyzer: res.Analyzer,
		model:    res.Model,
		tables:   res.Tables,
		logger:   slog.Default(),
	}
	if sc.tables == nil {
		sc.tables = tables.New()
	}
	if params.Variant == options.TrieBased {
		if len(res.Vocabulary) == 0 {
			return nil, ErrEmptyVocabulary
		}
		sc.trie = NewTrieFromWords(res.Vocabulary)
	}
	for _, o := range opts {
		o(sc)
	}

	var random *rand.Rand
	if params.RandomSelection {
		if sc.random == nil {
			sc.random = rand.New(rand.NewPCG(params.Seed, params.Seed))
		}
		random = sc.random
	}
	model := sc.model
	if params.Variant == options.Simple {
		model = nil
	}
	sc.disamb = NewDisambiguator(model, params.Threshold, sc.resolveRoot, random)

	attrs := []any{"variant", params.Variant.String(), "suffix_check", params.SuffixCheck, "root_ngram", params.RootNGram}
	if sc.trie != nil {
		attrs = append(attrs, "vocabulary", sc.trie.Len())
	}
	sc.logger.Info("spell corrector ready", attrs...)
	return sc, nil
}

func (sc *SpellCorrector) Parameters() options.Parameters { return sc.params }

// VocabularySize is the number of words in the trie, 0 outside the trie variant.
func (sc *SpellCorrector) VocabularySize() int {
	if sc.trie == nil {
		return 0
	}
	return sc.trie.Len()
}

// =====================
// Roots
// =====================

// resolveRoot returns the n-gram unit of word: its longest root, or the word
// itself when RootNGram is off. The capitalised form is tried as a fallback.
// Invalid words resolve to "".
func (sc *SpellCorrector) resolveRoot(word string) string {
	for _, form := range []string{word, toCapital(word)} {
		if !sc.analyzer.IsValid(form) {
			continue
		}
		if !sc.params.RootNGram {
			return form
		}
		if root, ok := sc.analyzer.LongestRoot(form); ok {
			return root
		}
		return form
	}
	return ""
}

// rootAt resolves the word at index i. Short tokens and alphanumeric codes
// such as "9kg" stand for themselves.
func (sc *SpellCorrector) rootAt(words []string, i int) string {
	if i < 0 || i >= len(words) {
		return ""
	}
	w := words[i]
	if runeLen(w) < sc.params.MinWordLength || (hasDigit(w) && hasLetter(w) && !strings.Contains(w, "'")) {
		return w
	}
	return sc.resolveRoot(w)
}

// =====================
// Output sentence
// =====================

type output struct {
	words []string
	edits []Edit
}

func (o *output) add(words ...string) { o.words = append(o.words, words...) }

func (o *output) empty() bool { return len(o.words) == 0 }

// last returns the last committed word, or "".
func (o *output) last() string {
	if o.empty() {
		return ""
	}
	return o.words[len(o.words)-1]
}

func (o *output) replaceLast(word string) {
	if o.empty() {
		o.add(word)
		return
	}
	o.words[len(o.words)-1] = word
}

func (o *output) record(position int, original, corrected string, op Operator) {
	o.edits = append(o.edits, Edit{Position: position, Original: original, Corrected: corrected, Operator: op})
}

// =====================
// Main correction loop
// =====================

// Correct runs every word of the sentence through the forced rules and, when
// none fires, through candidate generation and disambiguation. Each step
// reports how many input words it consumed; the lookahead roots are always
// taken from the input sentence.
func (sc *SpellCorrector) Correct(words []string) ([]string, []Edit) {
	out := &output{words: make([]string, 0, len(words))}
	roots := Roots{Current: sc.rootAt(words, 0), Next: sc.rootAt(words, 1)}

	for i := 0; i < len(words); {
		w := newWindow(words, i)
		var n int
		if n = sc.applyForced(w, out); n > 0 {
			roots.Previous = sc.rootAt(out.words, len(out.words)-1)
		} else {
			n, roots.Previous = sc.step(w, roots, out)
		}
		roots = sc.shift(words, roots, i, n)
		i += n
	}
	return out.words, out.edits
}

func (sc *SpellCorrector) shift(words []string, roots Roots, i, consumed int) Roots {
	if consumed == 1 {
		roots.Current = roots.Next
		roots.Next = sc.rootAt(words, i+2)
		return roots
	}
	roots.Current = sc.rootAt(words, i+consumed)
	roots.Next = sc.rootAt(words, i+consumed+1)
	return roots
}

// step handles a word no forced rule claimed and returns the words consumed
// together with the root of what was committed.
func (sc *SpellCorrector) step(w Window, roots Roots, out *output) (int, string) {
	rootless := roots.Current == ""
	shortInvalid := runeLen(w.Word) <= sc.params.MinWordLength && !sc.analyzer.IsValid(w.Word)
	if !rootless && !shortInvalid {
		out.add(w.Word)
		return 1, roots.Current
	}

	gen := w
	if out.last() != w.Previous {
		// the previous word was rewritten or split; merging would repeat text
		gen.Previous = ""
	}
	pool := sc.candidatePool(gen, rootless)
	d := sc.disamb.Choose(w, roots, pool)
	c := d.Candidate
	sc.logger.Debug("candidate chosen",
		"word", w.Word,
		"position", w.Index,
		"candidates", len(pool),
		"choice", c.Text,
		"operator", c.Operator.String(),
		"score", d.Score,
	)

	switch c.Operator {
	case NoChange:
		out.add(w.Word)
		return 1, d.Root
	case ForwardMerge:
		out.add(c.Text)
		out.record(w.Index, w.Word+" "+w.Next, c.Text, c.Operator)
		return 2, d.Root
	case BackwardMerge:
		out.replaceLast(c.Text)
		out.record(w.Index-1, w.Previous+" "+w.Word, c.Text, c.Operator)
	case Split:
		out.add(strings.Fields(c.Text)...)
		out.record(w.Index, w.Word, c.Text, c.Operator)
	default:
		out.add(c.Text)
		out.record(w.Index, w.Word, c.Text, c.Operator)
	}
	return 1, d.Root
}

// CorrectText normalises text to NFC, splits it on whitespace and corrects it.
func (sc *SpellCorrector) CorrectText(text string) CorrectionResult {
	words := strings.Fields(norm.NFC.String(text))
	corrected, edits := sc.Correct(words)
	return CorrectionResult{
		Original:  text,
		Corrected: strings.Join(corrected, " "),
		Edits:     edits,
	}
}
