package geo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// latinStrip removes combining marks after canonical decomposition, so
// "Wrocław" and "Wroclaw" normalize to the same string.
var latinStrip = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes text for matching. Arabic input has its diacritics
// stripped and letter-form variants collapsed; everything else is
// mark-stripped and lower-cased. Whitespace is collapsed in both cases.
// The result is for comparison only, never for display.
//
// Normalize is total and idempotent; empty or blank input yields "".
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if ContainsArabic(s) {
		return normalizeArabic(s)
	}
	return normalizeLatin(s)
}

// ContainsArabic reports whether s has at least one character in the Arabic
// Unicode block.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}

func normalizeArabic(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isArabicDiacritic(r) {
			continue
		}
		if rep, ok := arabicLetterForms[r]; ok {
			r = rep
		}
		b.WriteRune(r)
	}
	// Lower-casing only affects any Latin characters mixed into the input.
	return collapseSpaces(strings.ToLower(b.String()))
}

func normalizeLatin(s string) string {
	out, _, err := transform.String(latinStrip, s)
	if err != nil {
		out = s
	}
	return collapseSpaces(strings.ToLower(out))
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// tokens splits normalized text into letter/digit runs, dropping punctuation
// such as the Arabic comma.
func tokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
