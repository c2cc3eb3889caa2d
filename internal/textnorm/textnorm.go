// Package textnorm turns raw extracted document text into a normalized form
// the segmenter can work on line by line.
package textnorm

import (
	"sort"
	"strings"

	"github.com/cvlens/cvlens/internal/vocab"
	"github.com/cvlens/cvlens/pkg/textx"
)

// headerKeywords holds every known section-header synonym, longest first so
// "work experience" is tried before "experience".
var headerKeywords []string

func init() {
	headerKeywords = vocab.HeaderKeywords()
	sort.SliceStable(headerKeywords, func(i, j int) bool {
		if len(headerKeywords[i]) != len(headerKeywords[j]) {
			return len(headerKeywords[i]) > len(headerKeywords[j])
		}
		return headerKeywords[i] < headerKeywords[j]
	})
}

// Normalize sanitizes raw text, collapses whitespace runs while preserving
// line breaks, and surfaces recognized section headers onto their own line
// surrounded by blank lines. It is a pure function and never fails:
// unparseable byte sequences are dropped, not rejected.
func Normalize(raw string) string {
	s := textx.SanitizeText(raw)
	s = textx.CollapseSpaces(s)
	s = surfaceHeaders(s)
	return collapseBlankLines(s)
}

// surfaceHeaders rewrites each line so that header keywords embedded inline
// (all-uppercase, or followed by a colon) end up on a line of their own.
func surfaceHeaders(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = appendSurfaced(out, strings.TrimSpace(line))
	}
	return strings.Join(out, "\n")
}

func appendSurfaced(out []string, line string) []string {
	if line == "" {
		return append(out, "")
	}
	bare := strings.TrimSpace(strings.TrimSuffix(line, ":"))
	if isHeaderWord(bare) {
		return append(out, "", bare, "")
	}
	before, header, after, ok := splitInline(line)
	if !ok {
		return append(out, line)
	}
	if before != "" {
		out = append(out, before)
	}
	out = append(out, "", header, "")
	if after != "" {
		out = appendSurfaced(out, after)
	}
	return out
}

func isHeaderWord(s string) bool {
	low := textx.Fold(s)
	for _, kw := range headerKeywords {
		if low == kw {
			return true
		}
	}
	return false
}

// splitInline finds the earliest inline header occurrence in line. Only
// confident occurrences count: the keyword is rendered in all uppercase in
// the source, or is immediately followed by a colon.
func splitInline(line string) (before, header, after string, ok bool) {
	low, offs := foldWithMap(line)
	best := -1
	bestLen := 0
	for _, kw := range headerKeywords {
		idx := indexWord(low, kw)
		for idx >= 0 {
			src := line[offs[idx]:offs[idx+len(kw)]]
			colon := idx+len(kw) < len(low) && low[idx+len(kw)] == ':'
			if (src == strings.ToUpper(src) && src != strings.ToLower(src)) || colon {
				if best < 0 || idx < best {
					best, bestLen = idx, len(kw)
				}
				break
			}
			next := indexWord(low[idx+1:], kw)
			if next < 0 {
				idx = -1
			} else {
				idx = idx + 1 + next
			}
		}
	}
	if best < 0 {
		return "", "", "", false
	}
	start, end := offs[best], offs[best+bestLen]
	before = strings.TrimSpace(line[:start])
	header = line[start:end]
	after = strings.TrimSpace(strings.TrimPrefix(line[end:], ":"))
	return before, header, after, true
}

// foldWithMap folds s for comparison and returns, for every byte offset in
// the folded form (plus one past the end), the corresponding byte offset in
// the original. Folding can shrink runes, so offsets are not 1:1.
func foldWithMap(s string) (string, []int) {
	var b strings.Builder
	offs := make([]int, 0, len(s)+1)
	for i, r := range s {
		f := textx.Fold(string(r))
		for range []byte(f) {
			offs = append(offs, i)
		}
		b.WriteString(f)
	}
	offs = append(offs, len(s))
	return b.String(), offs
}

// indexWord returns the byte offset of the first word-bounded occurrence of
// word in s, or -1. Both arguments must be lower-cased.
func indexWord(s, word string) int {
	off := 0
	for {
		j := strings.Index(s[off:], word)
		if j < 0 {
			return -1
		}
		start := off + j
		end := start + len(word)
		if boundaryAt(s, start-1) && boundaryAt(s, end) {
			return start
		}
		off = start + 1
	}
}

func boundaryAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
		return false
	}
	return c < 0x80
}

// collapseBlankLines squeezes runs of blank lines down to one and trims
// leading/trailing blanks.
func collapseBlankLines(s string) string {
	var out []string
	blank := true
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
