// Package vocab holds the fixed keyword tables that drive section detection
// and entity extraction, plus the shared first-match lookup helper. Tables
// are priority-ordered: earlier entries win, and every consumer goes through
// Lookup so the "first match wins" contract lives in exactly one place.
package vocab

import (
	"strings"

	"github.com/cvlens/cvlens/pkg/textx"
)

// Entry pairs a set of keywords with the value they resolve to.
type Entry[T any] struct {
	Keywords []string
	Value    T
}

// Table is a priority-ordered keyword table.
type Table[T any] []Entry[T]

// Lookup scans the table in order and returns the value of the first entry
// with a keyword occurring in s (case-insensitive substring containment,
// Turkish dotted-İ folded).
func Lookup[T any](t Table[T], s string) (T, bool) {
	low := textx.Fold(s)
	for _, e := range t {
		for _, kw := range e.Keywords {
			if strings.Contains(low, kw) {
				return e.Value, true
			}
		}
	}
	var zero T
	return zero, false
}

// LookupWord behaves like Lookup but requires the keyword to appear as a
// whole word (bounded by non-letters) rather than any substring.
func LookupWord[T any](t Table[T], s string) (T, bool) {
	low := textx.Fold(s)
	for _, e := range t {
		for _, kw := range e.Keywords {
			if ContainsWord(low, kw) {
				return e.Value, true
			}
		}
	}
	var zero T
	return zero, false
}

// ContainsWord reports whether word occurs in s bounded by non-alphanumeric
// runes. Both arguments are expected lower-cased; multi-token words match as
// a contiguous phrase.
func ContainsWord(s, word string) bool {
	for i := 0; i+len(word) <= len(s); i++ {
		j := strings.Index(s[i:], word)
		if j < 0 {
			return false
		}
		start := i + j
		end := start + len(word)
		if boundary(s, start-1) && boundary(s, end) {
			return true
		}
		i = start
	}
	return false
}

func boundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
		return false
	}
	// multi-byte runes (accented letters) count as letters
	return c < 0x80
}
