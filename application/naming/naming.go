// Package naming derives stable identifiers from free-form UI text, so that
// "Sign In" and " Sign--In " both bind under the same generated name.
package naming

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^\pL\pN\s_-]+`)
	separators   = regexp.MustCompile(`[\s_-]+`)
)

// Normalize - derives a lower-case identifier from free-form UI text.
// Characters other than letters, digits, whitespace, dashes and underscores
// are dropped; runs of whitespace, dashes and underscores collapse into a
// single underscore; leading and trailing separators are trimmed. The
// result of Normalize is a fixed point of Normalize.
func Normalize(text string) string {
	s := invalidChars.ReplaceAllString(text, "")
	s = separators.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	return strings.ToLower(s)
}
