// Package util provides common utility functions.
package util

import (
	"regexp"
	"strings"
)

var (
	// Matches runs of whitespace and underscores (for collapsing to single spaces).
	wordSeparatorRe = regexp.MustCompile(`[\s_]+`)
	// Matches characters that carry no meaning for tag matching.
	nonTagCharRe = regexp.MustCompile(`[^a-z0-9\- ]`)
)

// NormalizeTag converts user input to a canonical detection tag.
// Multi-word tags keep their internal spaces so phrase vocabulary like
// "film photography" still matches.
//
// Normalization rules:
//  1. Trim whitespace and lowercase
//  2. Collapse whitespace and underscores to single spaces
//  3. Remove characters other than letters, digits, dashes, and spaces
//
// Examples:
//
//	"Film Photography"  → "film photography"
//	"  y2k_revival "    → "y2k revival"
//	"🌙 Moonlight!"     → "moonlight"
func NormalizeTag(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = wordSeparatorRe.ReplaceAllString(s, " ")
	s = nonTagCharRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// NormalizeTags normalizes a tag list, dropping entries that normalize to
// nothing.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if norm := NormalizeTag(tag); norm != "" {
			out = append(out, norm)
		}
	}
	return out
}
