package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cvlens/cvlens/internal/domain"
	"github.com/cvlens/cvlens/internal/vocab"
	"github.com/cvlens/cvlens/pkg/textx"
)

const maxResponsibilities = 5

var monthYearRe = regexp.MustCompile(`(?i)\b([A-Za-zÇĞİÖŞÜçğıöşü]{3,9})\s+((?:19|20)\d{2})\b`)

// monthYearRangeRe matches "Month YYYY - Month YYYY" and
// "Month YYYY - present" forms.
var monthYearRangeRe = regexp.MustCompile(`(?i)\b[A-Za-zÇĞİÖŞÜçğıöşü]{3,9}\s+((?:19|20)\d{2})\s*[-–—]\s*(?:([A-Za-zÇĞİÖŞÜçğıöşü]{3,9})\s+((?:19|20)\d{2})|([A-Za-zÇĞİÖŞÜçğıöşü]+))`)

// Experience extracts employment entries, most recent first. Blocks split on
// blank lines; when that yields a single oversized block, job-indicator
// lines (dates or role titles) open new blocks instead.
func Experience(sectionText, fullText string) []domain.ExperienceEntry {
	text, _ := fallbackText(sectionText, fullText)
	blocks := splitBlocks(text, false)
	if len(blocks) == 1 && countDateLines(blocks[0]) > 1 {
		blocks = splitMergedJobs(blocks[0])
	}
	entries := []domain.ExperienceEntry{}
	for _, block := range blocks {
		if e, ok := experienceFromBlock(block); ok {
			entries = append(entries, e)
		}
	}
	sortExperience(entries)
	return entries
}

func countDateLines(block []string) int {
	n := 0
	for _, line := range block {
		if isDateLine(line) {
			n++
		}
	}
	return n
}

func isDateLine(line string) bool {
	return monthYearRe.MatchString(line) || yearRangeRe.MatchString(line) || yearOpenRe.MatchString(line)
}

// splitMergedJobs re-splits a block holding several employment records
// without blank separators. A new record opens at a company or role line
// once the current record already saw its date line.
func splitMergedJobs(block []string) [][]string {
	var blocks [][]string
	var cur []string
	curHasDate := false
	for _, line := range block {
		opensJob := len(cur) > 0 && curHasDate && !isBulletLine(line) && !isDateLine(line) &&
			(containsAny(line, vocab.CompanySuffixes) || containsAny(line, vocab.RoleTitles))
		if opensJob {
			blocks = append(blocks, cur)
			cur = nil
			curHasDate = false
		}
		cur = append(cur, line)
		if isDateLine(line) {
			curHasDate = true
		}
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

func experienceFromBlock(block []string) (domain.ExperienceEntry, bool) {
	blockText := strings.Join(block, "\n")
	hasDate := monthYearRe.MatchString(blockText) || yearRe.MatchString(blockText)
	if !hasDate && !containsAny(blockText, vocab.RoleTitles) && !containsAny(blockText, vocab.CompanySuffixes) {
		return domain.ExperienceEntry{}, false
	}
	// schooling blocks belong to the education extractor
	if containsAny(blockText, vocab.InstitutionKeywords) && !containsAny(blockText, vocab.CompanySuffixes) {
		return domain.ExperienceEntry{}, false
	}

	e := domain.ExperienceEntry{
		Company:          domain.Unspecified,
		Title:            domain.Unspecified,
		Location:         domain.Unspecified,
		Responsibilities: []string{},
		SkillsUsed:       []string{},
	}

	companyLine := ""
	for _, line := range block {
		if containsAny(line, vocab.CompanySuffixes) {
			companyLine = stripBullet(line)
			break
		}
	}
	if companyLine == "" {
		companyLine = stripBullet(block[0])
	}
	e.Company = trimDateTail(companyLine)

	// Title: second line when it matches the role vocabulary, else a
	// "Company - Title" separator split of the first line.
	if len(block) > 1 && containsAny(block[1], vocab.RoleTitles) && !monthYearRe.MatchString(block[1]) {
		e.Title = trimDateTail(stripBullet(block[1]))
	} else if c, t, ok := splitCompanyTitle(e.Company); ok {
		e.Company, e.Title = c, t
	} else if containsAny(e.Company, vocab.RoleTitles) && !containsAny(e.Company, vocab.CompanySuffixes) {
		// first line is actually the title
		e.Title = e.Company
		e.Company = domain.Unspecified
	}

	e.StartYear, e.EndYear = experienceSpan(blockText)
	if city := findBlockLocation(blockText); city != "" {
		e.Location = city
	}
	e.Responsibilities = responsibilities(block, e.Company, e.Title)
	e.SkillsUsed = scanTechnologies(blockText)
	return e, true
}

// experienceSpan handles both bare year ranges and month-name ranges.
func experienceSpan(text string) (start, end *int) {
	if m := monthYearRangeRe.FindStringSubmatch(text); m != nil {
		start = atoiPtr(m[1])
		if m[3] != "" {
			return start, atoiPtr(m[3])
		}
		// "Month YYYY - word": ongoing markers leave end open
		return start, nil
	}
	return yearSpan(text)
}

// splitCompanyTitle handles "Company - Title" and "Title @ Company" lines.
func splitCompanyTitle(line string) (company, title string, ok bool) {
	for _, sep := range []string{" - ", " – ", " — ", " | ", " @ ", ", "} {
		i := strings.Index(line, sep)
		if i < 0 {
			continue
		}
		left := strings.TrimSpace(line[:i])
		right := strings.TrimSpace(line[i+len(sep):])
		if left == "" || right == "" {
			continue
		}
		switch {
		case containsAny(right, vocab.RoleTitles):
			return left, right, true
		case containsAny(left, vocab.RoleTitles):
			return right, left, true
		}
	}
	return "", "", false
}

// trimDateTail removes a trailing date range from a company or title line,
// e.g. "Acme Inc (2019-2022)".
func trimDateTail(line string) string {
	if i := monthYearRangeRe.FindStringIndex(line); i != nil && i[0] > 0 {
		line = line[:i[0]]
	} else if i := yearRangeRe.FindStringIndex(line); i != nil && i[0] > 0 {
		line = line[:i[0]]
	} else if i := yearOpenRe.FindStringIndex(line); i != nil && i[0] > 0 {
		line = line[:i[0]]
	}
	return strings.TrimRight(strings.TrimSpace(line), "(,-–|")
}

func findBlockLocation(text string) string {
	low := textx.Fold(text)
	for _, city := range vocab.KnownCities {
		if vocab.ContainsWord(low, textx.Fold(city)) {
			return city
		}
	}
	return ""
}

// responsibilities collects bullet lines, else sentence lines that are not
// the company/title/date lines, capped at maxResponsibilities.
func responsibilities(block []string, company, title string) []string {
	out := []string{}
	for _, line := range block {
		if isBulletLine(line) {
			out = append(out, stripBullet(line))
		}
	}
	if len(out) == 0 {
		for _, line := range block {
			line = stripBullet(line)
			if strings.Contains(line, company) && company != domain.Unspecified {
				continue
			}
			if strings.Contains(line, title) && title != domain.Unspecified {
				continue
			}
			if monthYearRe.MatchString(line) || yearRe.MatchString(line) {
				continue
			}
			if len([]rune(line)) < 15 {
				continue
			}
			out = append(out, line)
		}
	}
	if len(out) > maxResponsibilities {
		out = out[:maxResponsibilities]
	}
	return out
}

// sortExperience orders entries most recent first; entries with unknown
// start year sort last. The sort is stable so document order breaks ties.
func sortExperience(entries []domain.ExperienceEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].StartYear, entries[j].StartYear
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
}
