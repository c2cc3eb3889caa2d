// Package textx provides small text utilities used across the project.
package textx

import (
	"strings"
	"unicode"
)

// SanitizeText removes control characters except tab/newline/CR, replaces
// invalid UTF-8 sequences, and trims surrounding space. Unparseable byte
// sequences are dropped, never rejected.
func SanitizeText(s string) string {
	s = strings.ToValidUTF8(s, "")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// CollapseSpaces collapses runs of spaces and tabs into a single space
// within each line, preserving line breaks.
func CollapseSpaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}

// TitleCase upper-cases the first rune of each whitespace-separated word and
// lower-cases the rest. It is locale-naive on purpose: vocabulary entries
// carry their own canonical casing and only free-form tokens pass through.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// Fold lower-cases s for keyword comparison. Go lower-cases the Turkish
// dotted capital İ to "i" plus a combining dot; Fold strips that combining
// dot so "EĞİTİM" compares equal to "eğitim".
func Fold(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "i̇", "i")
}

// Truncate shortens s to at most n bytes, appending an ellipsis marker when
// anything was cut. Used for diagnostic payloads.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
