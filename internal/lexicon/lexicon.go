// Package lexicon is a file backed morphological oracle. Every inflected
// surface form is listed with its root and the attributes of that root, so
// validity and root extraction are plain lookups.
package lexicon

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"spellchecker/internal/tables"
)

// ErrEmpty is returned when a lexicon file holds no usable entry.
var ErrEmpty = errors.New("lexicon: no entries")

// Flags are attributes of a root.
type Flags uint8

const (
	Proper    Flags = 1 << iota // proper noun, written capitalised
	Code                        // abbreviation or code token, never split
	NoHarmony                   // suffixes break vowel harmony (saat -> saatte)
)

var flagNames = map[string]Flags{
	"proper":    Proper,
	"code":      Code,
	"noharmony": NoHarmony,
}

// ParseFlags reads a comma separated flag list. Unknown names are ignored.
func ParseFlags(s string) Flags {
	var f Flags
	for _, name := range strings.Split(s, ",") {
		f |= flagNames[strings.ToLower(strings.TrimSpace(name))]
	}
	return f
}

var numberRe = regexp.MustCompile(`^[0-9]+([.,][0-9]+)?\.?$`)

type Lexicon struct {
	mu         sync.RWMutex
	forms      map[string][]string // surface -> roots
	flags      map[string]Flags    // lowercased root -> flags
	custom     map[string]struct{}
	misspelled map[string]string
}

// New returns an empty lexicon whose CorrectForm answers from misspelled.
func New(misspelled map[string]string) *Lexicon {
	if misspelled == nil {
		misspelled = make(map[string]string)
	}
	return &Lexicon{
		forms:      make(map[string][]string),
		flags:      make(map[string]Flags),
		custom:     make(map[string]struct{}),
		misspelled: misspelled,
	}
}

// Load reads "surface<TAB>root<TAB>flags" lines. Root and flags are
// optional; lines with more fields are skipped.
func Load(path string, misspelled map[string]string) (*Lexicon, error) {
	l := New(misspelled)
	err := tables.ReadLines(path, func(line string) {
		fields := strings.Split(line, "\t")
		if len(fields) > 3 {
			return
		}
		surface := strings.TrimSpace(fields[0])
		if surface == "" || strings.ContainsAny(surface, " ") {
			return
		}
		root := surface
		if len(fields) > 1 && strings.TrimSpace(fields[1]) != "" {
			root = strings.TrimSpace(fields[1])
		}
		var flags Flags
		if len(fields) > 2 {
			flags = ParseFlags(fields[2])
		}
		l.Add(surface, root, flags)
	})
	if err != nil {
		return nil, fmt.Errorf("lexicon: load %s: %w", path, err)
	}
	if l.Len() == 0 {
		return nil, fmt.Errorf("lexicon: load %s: %w", path, ErrEmpty)
	}
	return l, nil
}

func lower(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

// Add registers surface as an inflection of root. Flags accumulate per root.
func (l *Lexicon) Add(surface, root string, flags Flags) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, r := range l.forms[surface] {
		if r == root {
			l.flags[lower(root)] |= flags
			return
		}
	}
	l.forms[surface] = append(l.forms[surface], root)
	l.flags[lower(root)] |= flags
}

// AddCustom accepts words as their own roots until removed.
func (l *Lexicon) AddCustom(words ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			l.custom[w] = struct{}{}
		}
	}
}

func (l *Lexicon) RemoveCustom(word string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.custom, strings.TrimSpace(word))
}

func (l *Lexicon) IsCustom(word string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.custom[word]
	return ok
}

// Len returns the number of known surface forms, custom words excluded.
func (l *Lexicon) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.forms)
}

// Words returns every surface form and custom word in sorted order.
func (l *Lexicon) Words() []string {
	l.mu.RLock()
	words := make([]string, 0, len(l.forms)+len(l.custom))
	for w := range l.forms {
		words = append(words, w)
	}
	for w := range l.custom {
		if _, ok := l.forms[w]; !ok {
			words = append(words, w)
		}
	}
	l.mu.RUnlock()
	sort.Strings(words)
	return words
}

func (l *Lexicon) IsValid(word string) bool {
	if word == "" {
		return false
	}
	if numberRe.MatchString(word) {
		return true
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if _, ok := l.forms[word]; ok {
		return true
	}
	_, ok := l.custom[word]
	return ok
}

// LongestRoot returns the longest root listed for word. Numbers and custom
// words are their own root.
func (l *Lexicon) LongestRoot(word string) (string, bool) {
	if word == "" {
		return "", false
	}
	if numberRe.MatchString(word) {
		return word, true
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	roots, ok := l.forms[word]
	if !ok {
		if _, custom := l.custom[word]; custom {
			return word, true
		}
		return "", false
	}
	best := roots[0]
	for _, r := range roots[1:] {
		if utf8.RuneCountInString(r) > utf8.RuneCountInString(best) {
			best = r
		}
	}
	return best, true
}

func (l *Lexicon) has(root string, f Flags) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.flags[lower(root)]&f != 0
}

func (l *Lexicon) IsProperNoun(root string) bool { return l.has(root, Proper) }

func (l *Lexicon) IsCode(root string) bool { return l.has(root, Code) }

func (l *Lexicon) NotObeysVowelHarmony(root string) bool { return l.has(root, NoHarmony) }

// CorrectForm looks word up in the misspelling table.
func (l *Lexicon) CorrectForm(word string) (string, bool) {
	fixed, ok := l.misspelled[word]
	return fixed, ok
}
