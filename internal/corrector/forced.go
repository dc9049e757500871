package corrector

import (
	"regexp"
	"slices"
	"strings"
)

var shortcuts = []string{
	"cc", "cm2", "cm", "gb", "ghz", "gr", "gram", "hz", "inc", "inch", "inç", "kg", "kw", "kva",
	"litre", "lt", "m2", "m3", "mah", "mb", "metre", "mg", "mhz", "ml", "mm", "mp", "ms", "mt", "mv",
	"tb", "tl", "va", "volt", "watt", "ah", "hp", "oz", "rpm", "dpi", "ppm", "ohm", "kwh", "kcal",
	"kbit", "mbit", "gbit", "bit", "byte", "mbps", "gbps", "cm3", "mm2", "mm3", "khz", "ft", "db", "sn",
}

// conditionalShortcuts are single-letter units that only count glued to a number.
var conditionalShortcuts = []string{"g", "v", "m", "l", "w", "s"}

var (
	shortcutRe            = shortcutRegexp(shortcuts)
	conditionalShortcutRe = shortcutRegexp(conditionalShortcuts)
)

func shortcutRegexp(units []string) *regexp.Regexp {
	quoted := make([]string, len(units))
	for i, u := range units {
		quoted[i] = regexp.QuoteMeta(u)
	}
	return regexp.MustCompile(`^(?:[1-9][0-9]*|0)(?:[.,][0-9]*)?(?:` + strings.Join(quoted, "|") + `)$`)
}

var (
	liSuffixes  = []string{"li", "lı", "lu", "lü"}
	likSuffixes = []string{"lik", "lık", "luk", "lük"}
	dashes      = []string{"-", "–", "—"}
)

var questionSuffixes = []string{
	"mi", "mı", "mu", "mü",
	"miyim", "misin", "miyiz", "midir", "miydi",
	"mıyım", "mısın", "mıyız", "mıdır", "mıydı",
	"muyum", "musun", "muyuz", "mudur", "muydu",
	"müyüm", "müsün", "müyüz", "müdür", "müydü",
	"miydim", "miydin", "miydik", "miymiş",
	"mıydım", "mıydın", "mıydık", "mıymış",
	"muydum", "muydun", "muyduk", "muymuş",
	"müydüm", "müydün", "müydük", "müymüş",
	"misiniz", "mısınız", "musunuz", "müsünüz",
	"miyimdir", "misindir", "miyizdir", "miydiniz", "miydiler", "miymişim", "miymişiz",
	"mıyımdır", "mısındır", "mıyızdır", "mıydınız", "mıydılar", "mıymışım", "mıymışız",
	"muyumdur", "musundur", "muyuzdur", "muydunuz", "muydular", "muymuşum", "muymuşuz",
	"müyümdür", "müsündür", "müyüzdür", "müydünüz", "müydüler", "müymüşüm", "müymüşüz",
	"miymişsin", "miymişler", "mıymışsın", "mıymışlar",
	"muymuşsun", "muymuşlar", "müymüşsün", "müymüşler",
	"misinizdir", "mısınızdır", "musunuzdur", "müsünüzdür",
}

// forcedRule fires before any statistical step. apply reports whether it
// fired and how many input words it consumed.
type forcedRule struct {
	name   string
	suffix bool // gated by Parameters.SuffixCheck
	apply  func(sc *SpellCorrector, w Window, out *output) (int, bool)
}

// forcedRules run in order; the first one that fires wins.
var forcedRules = []forcedRule{
	{name: "misspelling", apply: (*SpellCorrector).forcedMisspell},
	{name: "backward-merge", apply: (*SpellCorrector).forcedBackwardMerge},
	{name: "suffix-merge", apply: (*SpellCorrector).forcedSuffixMerge},
	{name: "forward-merge", apply: (*SpellCorrector).forcedForwardMerge},
	{name: "split", apply: (*SpellCorrector).forcedSplit},
	{name: "shortcut", apply: (*SpellCorrector).forcedShortcut},
	{name: "de-da", suffix: true, apply: (*SpellCorrector).forcedDeDaSplit},
	{name: "question-suffix", suffix: true, apply: (*SpellCorrector).forcedQuestionSuffixSplit},
	{name: "proper-noun-suffix", suffix: true, apply: (*SpellCorrector).forcedProperNounSplit},
}

// applyForced runs the rule battery. It returns the consumed word count, or
// zero when nothing fired.
func (sc *SpellCorrector) applyForced(w Window, out *output) int {
	for _, rule := range forcedRules {
		if rule.suffix && !sc.params.SuffixCheck {
			continue
		}
		before := len(out.edits)
		n, ok := rule.apply(sc, w, out)
		if !ok {
			continue
		}
		for i := before; i < len(out.edits); i++ {
			out.edits[i].Rule = rule.name
		}
		sc.logger.Debug("forced rule fired", "rule", rule.name, "word", w.Word, "position", w.Index)
		return n
	}
	return 0
}

func (sc *SpellCorrector) forcedMisspell(w Window, out *output) (int, bool) {
	fixed, ok := sc.tables.Misspelled[w.Word]
	if !ok {
		return 0, false
	}
	out.add(strings.Fields(fixed)...)
	out.record(w.Index, w.Word, fixed, MisspelledReplace)
	return 1, true
}

// forcedBackwardMerge merges the last committed word with the current one
// from the merge table.
func (sc *SpellCorrector) forcedBackwardMerge(w Window, out *output) (int, bool) {
	if w.Previous == "" || out.empty() {
		return 0, false
	}
	last := out.last()
	merged, ok := sc.tables.Merged[last+" "+w.Word]
	if !ok {
		return 0, false
	}
	out.replaceLast(merged)
	out.record(w.Index-1, last+" "+w.Word, merged, BackwardMerge)
	return 1, true
}

// forcedSuffixMerge attaches a detached li/lik suffix to the number before
// it, picking whichever harmonic form the oracle accepts ("4 lı" -> "4'lü").
func (sc *SpellCorrector) forcedSuffixMerge(w Window, out *output) (int, bool) {
	if w.Previous == "" || out.empty() || !hasDigit(w.Previous) {
		return 0, false
	}
	var forms []string
	switch {
	case slices.Contains(liSuffixes, w.Word):
		forms = liSuffixes
	case slices.Contains(likSuffixes, w.Word):
		forms = likSuffixes
	default:
		return 0, false
	}
	for _, s := range forms {
		merged := w.Previous + "'" + s
		if sc.analyzer.IsValid(merged) {
			out.replaceLast(merged)
			out.record(w.Index-1, w.Previous+" "+w.Word, merged, BackwardMerge)
			return 1, true
		}
	}
	return 0, false
}

// forcedForwardMerge merges with the next word from the merge table, or
// joins the neighbours of a dash ("play - off" -> "play-off").
func (sc *SpellCorrector) forcedForwardMerge(w Window, out *output) (int, bool) {
	if w.Next == "" {
		return 0, false
	}
	if merged, ok := sc.tables.Merged[w.Word+" "+w.Next]; ok {
		out.add(merged)
		out.record(w.Index, w.Word+" "+w.Next, merged, ForwardMerge)
		return 2, true
	}
	if !slices.Contains(dashes, w.Word) || w.Previous == "" || out.empty() {
		return 0, false
	}
	if !hasLetter(w.Previous) || !hasLetter(w.Next) {
		return 0, false
	}
	merged := w.Previous + "-" + w.Next
	if !sc.analyzer.IsValid(merged) {
		return 0, false
	}
	out.replaceLast(merged)
	out.record(w.Index-1, w.Previous+" "+w.Word+" "+w.Next, merged, ForwardMerge)
	return 2, true
}

func (sc *SpellCorrector) forcedSplit(w Window, out *output) (int, bool) {
	expansion, ok := sc.tables.Split[w.Word]
	if !ok {
		return 0, false
	}
	out.add(strings.Fields(expansion)...)
	out.record(w.Index, w.Word, expansion, Split)
	return 1, true
}

// forcedShortcut separates a number from a glued unit ("5kg" -> "5 kg").
func (sc *SpellCorrector) forcedShortcut(w Window, out *output) (int, bool) {
	if !shortcutRe.MatchString(w.Word) && !conditionalShortcutRe.MatchString(w.Word) {
		return 0, false
	}
	number, unit := splitShortcut(w.Word)
	out.add(number, unit)
	out.record(w.Index, w.Word, number+" "+unit, Split)
	return 1, true
}

func splitShortcut(word string) (string, string) {
	j := strings.IndexFunc(word, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != ','
	})
	if j < 0 {
		return word, ""
	}
	return word[:j], word[j:]
}

// forcedDeDaSplit detaches a glued "de"/"da" clitic. Proper nouns keep it
// behind an apostrophe; other stems get it as a separate word whose vowel
// follows the stem's harmony.
func (sc *SpellCorrector) forcedDeDaSplit(w Window, out *output) (int, bool) {
	word := w.Word
	if !strings.HasSuffix(word, "da") && !strings.HasSuffix(word, "de") {
		return 0, false
	}
	if sc.analyzer.IsValid(word) || sc.analyzer.IsValid(toCapital(word)) {
		return 0, false
	}
	stem := word[:len(word)-2]
	if stem == "" {
		return 0, false
	}

	if sc.analyzer.IsProperNoun(toLower(stem)) {
		joined := toCapital(stem) + "'da"
		if !sc.analyzer.IsValid(joined) {
			joined = toCapital(stem) + "'de"
		}
		out.add(joined)
		out.record(w.Index, word, joined, Split)
		return 1, true
	}

	if !sc.analyzer.IsValid(stem) {
		return 0, false
	}
	root, ok := sc.analyzer.LongestRoot(stem)
	if !ok || sc.analyzer.IsCode(root) {
		return 0, false
	}
	clitic := "de"
	if lastVowelIsBack(stem) != sc.analyzer.NotObeysVowelHarmony(root) {
		clitic = "da"
	}
	out.add(stem, clitic)
	out.record(w.Index, word, stem+" "+clitic, Split)
	return 1, true
}

// forcedQuestionSuffixSplit detaches a glued interrogative clitic
// ("gelecekmisin" -> "gelecek misin").
func (sc *SpellCorrector) forcedQuestionSuffixSplit(w Window, out *output) (int, bool) {
	word := w.Word
	if sc.analyzer.IsValid(word) {
		return 0, false
	}
	for _, suffix := range questionSuffixes {
		if !strings.HasSuffix(word, suffix) || len(word) == len(suffix) {
			continue
		}
		prefix := strings.TrimSuffix(word, suffix)
		if !sc.analyzer.IsValid(prefix) {
			continue
		}
		root, ok := sc.analyzer.LongestRoot(prefix)
		if !ok || sc.analyzer.IsCode(root) {
			continue
		}
		out.add(prefix, suffix)
		out.record(w.Index, word, prefix+" "+suffix, Split)
		return 1, true
	}
	return 0, false
}

// forcedProperNounSplit restores the apostrophe between a proper noun and
// its suffix ("ankaraya" -> "Ankara'ya").
func (sc *SpellCorrector) forcedProperNounSplit(w Window, out *output) (int, bool) {
	word := w.Word
	if sc.analyzer.IsValid(word) {
		return 0, false
	}
	r := []rune(word)
	capital := []rune(toCapital(word))
	if len(capital) != len(r) {
		return 0, false
	}
	for i := 1; i < len(r); i++ {
		noun := string(capital[:i])
		if !sc.analyzer.IsProperNoun(toLower(noun)) {
			continue
		}
		joined := noun + "'" + string(r[i:])
		if sc.analyzer.IsValid(joined) {
			out.add(joined)
			out.record(w.Index, word, joined, Split)
			return 1, true
		}
	}
	return 0, false
}
