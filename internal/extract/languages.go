package extract

import (
	"strings"

	"github.com/cvlens/cvlens/internal/vocab"
	"github.com/cvlens/cvlens/pkg/textx"
)

// proficiencyWindow is how many bytes around a language mention are searched
// for a proficiency token, in both directions.
const proficiencyWindow = 40

// Languages extracts spoken languages as "Language (Level)" strings, or the
// plain language name when no proficiency token sits near the mention.
// Output order follows the position of the first mention in the text.
func Languages(sectionText, fullText string) []string {
	text, _ := fallbackText(sectionText, fullText)
	low := textx.Fold(text)

	type hit struct {
		pos   int
		label string
	}
	var hits []hit
	seen := map[string]struct{}{}
	for _, e := range vocab.SpokenLanguages {
		for _, kw := range e.Keywords {
			pos := indexWord(low, kw)
			if pos < 0 {
				continue
			}
			if _, ok := seen[e.Value]; ok {
				continue
			}
			seen[e.Value] = struct{}{}
			label := e.Value
			if lvl, ok := proficiencyNear(low, pos, pos+len(kw)); ok {
				label += " (" + lvl + ")"
			}
			hits = append(hits, hit{pos: pos, label: label})
		}
	}
	// document order, not vocabulary order
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	out := []string{}
	for _, h := range hits {
		out = append(out, h.label)
	}
	return out
}

// proficiencyNear looks for a proficiency token in a symmetric window around
// a language mention, accepting "language ... level" and "level ... language"
// alike. The window stops at list delimiters so the level of a neighboring
// list item is never picked up.
func proficiencyNear(low string, start, end int) (string, bool) {
	lo := start - proficiencyWindow
	if lo < 0 {
		lo = 0
	}
	hi := end + proficiencyWindow
	if hi > len(low) {
		hi = len(low)
	}
	left := low[lo:start]
	if i := strings.LastIndexAny(left, ",;\n|•"); i >= 0 {
		left = left[i+1:]
	}
	right := low[end:hi]
	if i := strings.IndexAny(right, ",;\n|•"); i >= 0 {
		right = right[:i]
	}
	if lvl, ok := vocab.LookupWord(vocab.ProficiencyLevels, left+" "+right); ok {
		return lvl, true
	}
	return "", false
}

func indexWord(s, word string) int {
	off := 0
	for {
		j := strings.Index(s[off:], word)
		if j < 0 {
			return -1
		}
		start := off + j
		end := start + len(word)
		if wordBoundary(s, start-1) && wordBoundary(s, end) {
			return start
		}
		off = start + 1
	}
}

func wordBoundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
		return false
	}
	return c < 0x80
}
