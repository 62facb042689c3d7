package entities

import (
	"fmt"
	"regexp"
)

// TextMatch describes how visible text is matched: an exact literal, or a
// pattern searched within the text. A nil *TextMatch is the "leave
// unchanged" sentinel accepted by the fit adapters.
type TextMatch struct {
	literal string
	pattern *regexp.Regexp
}

// Exact - creates a match requiring literal equality
func Exact(s string) *TextMatch {
	return &TextMatch{literal: s}
}

// Match - creates a match that searches for the pattern within the text
func Match(re *regexp.Regexp) *TextMatch {
	return &TextMatch{pattern: re}
}

// IsPattern reports whether the match is pattern-based.
func (m *TextMatch) IsPattern() bool {
	return m.pattern != nil
}

// Matches - checks actual text against the expectation
func (m *TextMatch) Matches(actual string) bool {
	if m.pattern != nil {
		return m.pattern.MatchString(actual)
	}
	return actual == m.literal
}

// Text returns the literal text, or the pattern source for pattern matches.
func (m *TextMatch) Text() string {
	if m.pattern != nil {
		return m.pattern.String()
	}
	return m.literal
}

// String implements fmt.Stringer for diagnostics.
func (m *TextMatch) String() string {
	if m.pattern != nil {
		return "/" + m.pattern.String() + "/"
	}
	return fmt.Sprintf("%q", m.literal)
}
