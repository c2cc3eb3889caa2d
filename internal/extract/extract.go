// Package extract holds the entity extractors. Each extractor is a pure
// function over (sectionText, fullText): when the section is missing or too
// short the extractor re-runs against the full document, uniformly via
// fallbackText.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cvlens/cvlens/internal/vocab"
	"github.com/cvlens/cvlens/pkg/textx"
)

// minSectionLen is the threshold below which a section is considered too
// thin to extract from and the full document is used instead.
const minSectionLen = 10

// fallbackText returns the text an extractor should scan and whether it is
// the dedicated section (true) or the full-document fallback (false).
func fallbackText(section, full string) (string, bool) {
	if len(strings.TrimSpace(section)) < minSectionLen {
		return full, false
	}
	return section, true
}

var bulletPrefixes = []string{"•", "●", "▪", "*", "- ", "– ", "— "}

// stripBullet removes a leading bullet marker from a trimmed line.
func stripBullet(line string) string {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(line, p) {
			return strings.TrimSpace(strings.TrimPrefix(line, p))
		}
	}
	return line
}

func isBulletLine(line string) bool {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// splitBlocks splits text into blocks at blank lines. A bullet-marked line
// also opens a new block, so bullet lists without blank separators still
// split per item.
func splitBlocks(text string, bulletsStart bool) [][]string {
	var blocks [][]string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, cur)
			cur = nil
		}
	}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			flush()
			continue
		}
		if bulletsStart && isBulletLine(line) {
			flush()
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}

var (
	yearRe      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	yearRangeRe = regexp.MustCompile(`\b((?:19|20)\d{2})\s*[-–—/]\s*((?:19|20)\d{2})\b`)
	yearOpenRe  = regexp.MustCompile(`\b((?:19|20)\d{2})\s*[-–—/]\s*([A-Za-zÇĞİÖŞÜçğıöşü]+)`)
)

// yearSpan finds a start/end year pair in text. An ongoing marker after the
// dash leaves end nil. A single lone year is an end year when a graduation
// word appears nearby, otherwise a start year.
func yearSpan(text string) (start, end *int) {
	if m := yearRangeRe.FindStringSubmatch(text); m != nil {
		return atoiPtr(m[1]), atoiPtr(m[2])
	}
	if m := yearOpenRe.FindStringSubmatch(text); m != nil {
		if containsAny(m[2], vocab.OngoingWords) {
			return atoiPtr(m[1]), nil
		}
	}
	if m := yearRe.FindString(text); m != "" {
		if containsAny(text, vocab.GraduationWords) {
			return nil, atoiPtr(m)
		}
		return atoiPtr(m), nil
	}
	return nil, nil
}

func atoiPtr(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// containsAny reports whether any keyword occurs word-bounded in text
// (case-insensitive, Turkish-folded).
func containsAny(text string, keywords []string) bool {
	low := textx.Fold(text)
	for _, kw := range keywords {
		if vocab.ContainsWord(low, kw) {
			return true
		}
	}
	return false
}

// expandAbbreviations rewrites known shorthand tokens (js, k8s, ...) to
// their full form so vocabulary scans catch them.
func expandAbbreviations(low string) string {
	fields := strings.FieldsFunc(low, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == ';'
	})
	changed := false
	for i, f := range fields {
		if full, ok := vocab.Abbreviations[f]; ok {
			fields[i] = full
			changed = true
		}
	}
	if !changed {
		return low
	}
	return strings.Join(fields, " ")
}

// scanTechnologies returns every programming-language and technology
// vocabulary term occurring word-bounded in text, canonical casing, in
// vocabulary order, deduplicated.
func scanTechnologies(text string) []string {
	low := expandAbbreviations(textx.Fold(text))
	var out []string
	seen := map[string]struct{}{}
	add := func(term string) {
		key := textx.Fold(term)
		if _, ok := seen[key]; ok {
			return
		}
		if vocab.ContainsWord(low, key) {
			seen[key] = struct{}{}
			out = append(out, term)
		}
	}
	for _, t := range vocab.ProgrammingLanguages {
		add(t)
	}
	for _, t := range vocab.Technologies {
		add(t)
	}
	return out
}
