// Package text canonicalizes free-form names for matching.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics decomposes to NFD, drops combining marks, then recomposes,
// so "München" folds to "Munchen".
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes free text for matching: lowercase, diacritics
// stripped, internal whitespace collapsed to single spaces, trimmed.
// Idempotent and never fails; empty input yields empty output.
func Normalize(s string) string {
	s = strings.ToLower(s)
	if folded, _, err := transform.String(stripDiacritics, s); err == nil {
		s = folded
	}
	return strings.Join(strings.Fields(s), " ")
}
