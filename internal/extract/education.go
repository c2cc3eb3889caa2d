package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cvlens/cvlens/internal/domain"
	"github.com/cvlens/cvlens/internal/vocab"
	"github.com/cvlens/cvlens/pkg/textx"
)

var gradeRe = regexp.MustCompile(`(?i)(?:gpa|not ortalaması|ortalama)\s*[:=]?\s*([0-4][.,]\d{1,2})`)

// Education extracts schooling entries. Blocks split on blank lines or
// bullet markers; a block only qualifies when it names an institution.
func Education(sectionText, fullText string) []domain.EducationEntry {
	text, _ := fallbackText(sectionText, fullText)
	entries := []domain.EducationEntry{}
	for _, block := range splitBlocks(text, true) {
		blockText := strings.Join(block, "\n")
		if !containsAny(blockText, vocab.InstitutionKeywords) {
			continue
		}
		entries = append(entries, educationFromBlock(block, blockText))
	}
	return entries
}

func educationFromBlock(block []string, blockText string) domain.EducationEntry {
	e := domain.EducationEntry{
		Institution: domain.Unspecified,
		Field:       domain.Unspecified,
	}
	instLine := ""
	for _, line := range block {
		if containsAny(line, vocab.InstitutionKeywords) {
			instLine = stripBullet(line)
			break
		}
	}
	if instLine != "" {
		e.Institution, e.Field = splitInstitutionLine(instLine)
	}
	if lvl, ok := vocab.Lookup(vocab.Degrees, blockText); ok {
		e.Degree = lvl
	}
	e.StartYear, e.EndYear = yearSpan(blockText)
	if m := gradeRe.FindStringSubmatch(blockText); m != nil {
		if g, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
			e.Grade = &g
		}
	}
	if e.Field == domain.Unspecified {
		if f := findFieldOfStudy(block, instLine); f != "" {
			e.Field = f
		}
	}
	return e
}

// splitInstitutionLine pulls the institution out of a comma-separated line
// like "Boğaziçi University, Computer Engineering, 2015-2019". The part
// naming the institution becomes the institution; the first remaining part
// with no year and no degree keyword becomes the field of study.
func splitInstitutionLine(line string) (institution, field string) {
	institution, field = domain.Unspecified, domain.Unspecified
	parts := strings.Split(line, ",")
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if institution == domain.Unspecified && containsAny(p, vocab.InstitutionKeywords) {
			institution = p
			continue
		}
		if field != domain.Unspecified {
			continue
		}
		if yearRe.MatchString(p) {
			continue
		}
		if _, isDegree := vocab.Lookup(vocab.Degrees, p); isDegree {
			continue
		}
		field = p
	}
	if institution == domain.Unspecified && len(parts) > 0 {
		if p := strings.TrimSpace(parts[0]); p != "" {
			institution = p
		}
	}
	return institution, field
}

// findFieldOfStudy scans the remaining block lines for a department-looking
// line when the institution line carried none.
func findFieldOfStudy(block []string, instLine string) string {
	for _, line := range block {
		line = stripBullet(line)
		if line == instLine || yearRe.MatchString(line) {
			continue
		}
		low := textx.Fold(line)
		for _, kw := range []string{"mühendisliği", "engineering", "bölümü", "department", "sciences", "bilimleri"} {
			if strings.Contains(low, kw) {
				return line
			}
		}
	}
	return ""
}
