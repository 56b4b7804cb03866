// Package util provides small shared helpers, including URL slug
// derivation for blog titles.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nonAlphanumeric matches runs of characters outside [a-z0-9]
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a title to a URL-safe slug: accents are folded to their
// base letters, the result is lowercased, runs of non-alphanumeric
// characters collapse to a single hyphen and leading/trailing hyphens are
// trimmed. The derivation is pure and idempotent.
func Slugify(s string) string {
	// Normalize unicode characters (decompose accents)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}
