package corrector

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	lowercaseLetters = "abcçdefgğhıijklmnoöprsştuüvyz"
	uppercaseLetters = "ABCÇDEFGĞHIİJKLMNOÖPRSŞTUÜVYZ"
	foreignLetters   = "wxqWXQ"
	backVowels       = "aıouAIOU"
	vowels           = "aeıioöuüAEIİOÖUÜ"
)

// alphabet is iterated for replacements and insertions.
var alphabet = []rune(lowercaseLetters)

var (
	numericRe = regexp.MustCompile(`^[0-9]+$`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	letterRe  = regexp.MustCompile(`[a-zA-ZçöğüşıÇÖĞÜŞİ]`)
)

func isLetter(r rune) bool {
	return strings.ContainsRune(lowercaseLetters, r) ||
		strings.ContainsRune(uppercaseLetters, r) ||
		strings.ContainsRune(foreignLetters, r)
}

func isNumeric(s string) bool { return numericRe.MatchString(s) }

func hasDigit(s string) bool { return digitRe.MatchString(s) }

func hasLetter(s string) bool { return letterRe.MatchString(s) }

func runeLen(s string) int { return utf8.RuneCountInString(s) }

// toLower folds s with the Turkish mapping (I -> ı, İ -> i).
// A Caser keeps state, so a fresh one is built per call.
func toLower(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

// toCapital upper-cases the first letter only, leaving the rest untouched.
func toCapital(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.TurkishCase.ToUpper(r)) + s[size:]
}

// lastVowelIsBack reports whether the last vowel of s is a back vowel.
// Words without vowels count as front.
func lastVowelIsBack(s string) bool {
	for i := len(s); i > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if strings.ContainsRune(vowels, r) {
			return strings.ContainsRune(backVowels, r)
		}
		i -= size
	}
	return false
}
