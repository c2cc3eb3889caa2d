// Package segment splits normalized CV text into named sections. Splitting
// is deterministic: the same input always yields the same section map.
package segment

import (
	"strings"

	"github.com/cvlens/cvlens/internal/vocab"
	"github.com/cvlens/cvlens/pkg/textx"
)

// Map is the section map. Keys are unique and iteration order is document
// order.
type Map struct {
	keys []string
	data map[string]string
}

// NewMap returns an empty section map.
func NewMap() *Map {
	return &Map{data: map[string]string{}}
}

// Get returns the text of a section, or "" when absent.
func (m *Map) Get(name string) string { return m.data[name] }

// Has reports whether the section exists, even if empty.
func (m *Map) Has(name string) bool {
	_, ok := m.data[name]
	return ok
}

// Keys returns the section names in document order.
func (m *Map) Keys() []string { return append([]string(nil), m.keys...) }

// Len returns the number of sections.
func (m *Map) Len() int { return len(m.keys) }

// add appends text to a section, creating it on first use. Repeated headers
// merge into the existing section rather than shadowing it.
func (m *Map) add(name, text string) {
	if _, ok := m.data[name]; !ok {
		m.keys = append(m.keys, name)
		m.data[name] = text
		return
	}
	if text == "" {
		return
	}
	if m.data[name] == "" {
		m.data[name] = text
		return
	}
	m.data[name] += "\n" + text
}

const maxHeaderLen = 30

// Split segments normalized text into sections. High-level headers (short,
// digit-free, all-uppercase lines) are the primary signal; when none exist,
// every line is checked against the synonym table directly. Text before the
// first header lands in the personal section.
func Split(normalized string) *Map {
	m := NewMap()
	if strings.TrimSpace(normalized) == "" {
		return m
	}
	lines := strings.Split(normalized, "\n")
	if hasHighLevelHeader(lines) {
		splitAtHeaders(m, lines, isHighLevelHeader)
	} else {
		splitAtHeaders(m, lines, isInlineHeader)
	}
	recover := func(name string) {
		if m.Get(name) == "" {
			if text, ok := recoverSection(normalized, name); ok {
				m.add(name, text)
			}
		}
	}
	recover(vocab.SectionEducation)
	recover(vocab.SectionExperience)
	recover(vocab.SectionSkills)
	return m
}

func hasHighLevelHeader(lines []string) bool {
	for _, l := range lines {
		if isHighLevelHeader(strings.TrimSpace(l)) {
			return true
		}
	}
	return false
}

// isHighLevelHeader reports whether a line looks like a section header in a
// visually distinct rendering: short, no digits, all letters uppercase.
func isHighLevelHeader(line string) bool {
	if line == "" || len([]rune(line)) >= maxHeaderLen {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if r >= '0' && r <= '9' {
			return false
		}
		if r >= 'a' && r <= 'z' {
			return false
		}
	}
	up := strings.ToUpper(line)
	low := strings.ToLower(line)
	hasLetter = up != low
	return hasLetter && line == up
}

// isInlineHeader reports whether a short line matches the synonym table.
func isInlineHeader(line string) bool {
	if line == "" || len([]rune(line)) >= maxHeaderLen {
		return false
	}
	bare := strings.TrimSuffix(line, ":")
	_, ok := vocab.Lookup(vocab.Sections, bare)
	return ok
}

// splitAtHeaders walks the lines once, starting a new section at each line
// isHeader accepts. Headers with no synonym match keep their literal
// (folded) text as the section key.
func splitAtHeaders(m *Map, lines []string, isHeader func(string) bool) {
	current := vocab.SectionPersonal
	var buf []string
	flush := func() {
		m.add(current, strings.TrimSpace(strings.Join(buf, "\n")))
		buf = buf[:0]
	}
	m.add(current, "")
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if isHeader(line) {
			flush()
			current = canonicalName(line)
			m.add(current, "")
			continue
		}
		buf = append(buf, raw)
	}
	flush()
}

func canonicalName(header string) string {
	bare := strings.TrimSuffix(header, ":")
	if name, ok := vocab.Lookup(vocab.Sections, bare); ok {
		return name
	}
	return strings.TrimSpace(textx.Fold(bare))
}

// recoverSection re-scans the whole document for a section whose header was
// mis-split: everything after the first synonym of the wanted section, up to
// the nearest following known header keyword, greedy otherwise.
func recoverSection(text, name string) (string, bool) {
	low, offs := foldWithMap(text)
	start := -1
	var startEnd int
	for _, e := range vocab.Sections {
		if e.Value != name {
			continue
		}
		for _, kw := range e.Keywords {
			if idx := indexWord(low, kw); idx >= 0 && (start < 0 || idx < start) {
				start, startEnd = idx, idx+len(kw)
			}
		}
	}
	if start < 0 {
		return "", false
	}
	end := len(low)
	for _, e := range vocab.Sections {
		if e.Value == name {
			continue
		}
		for _, kw := range e.Keywords {
			if j := indexWord(low[startEnd:], kw); j >= 0 && startEnd+j < end {
				end = startEnd + j
			}
		}
	}
	body := strings.TrimSpace(strings.TrimPrefix(text[offs[startEnd]:offs[end]], ":"))
	if body == "" {
		return "", false
	}
	return body, true
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
