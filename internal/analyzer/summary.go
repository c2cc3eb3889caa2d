package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cvlens/cvlens/internal/domain"
	"github.com/cvlens/cvlens/internal/matching"
	"github.com/cvlens/cvlens/internal/vocab"
	"github.com/cvlens/cvlens/pkg/textx"
)

// buildSummary prefers the document's own summary section; otherwise it
// composes a one-line talent summary from the extracted entities.
func buildSummary(rec domain.CVRecord, summarySection string) string {
	if s := strings.TrimSpace(summarySection); s != "" {
		return textx.Truncate(s, 600)
	}
	var parts []string
	if years := matching.TotalYears(rec.Experience); years > 0 {
		parts = append(parts, fmt.Sprintf("%d years of experience across %d roles", years, len(rec.Experience)))
	} else if len(rec.Experience) > 0 {
		parts = append(parts, fmt.Sprintf("%d roles of professional experience", len(rec.Experience)))
	}
	if deg := bestDegree(rec.Education); deg != domain.DegreeNone {
		parts = append(parts, "highest degree "+strings.ReplaceAll(deg.String(), "_", " "))
	}
	if n := rec.Skills.Count(); n > 0 {
		top := topSkills(rec.Skills, 3)
		parts = append(parts, fmt.Sprintf("%d skills including %s", n, strings.Join(top, ", ")))
	}
	if len(parts) == 0 {
		return domain.Unspecified
	}
	return "Candidate with " + strings.Join(parts, "; ") + "."
}

func bestDegree(entries []domain.EducationEntry) domain.DegreeLevel {
	best := domain.DegreeNone
	bestOrd := 0
	for _, e := range entries {
		if o := e.Degree.Ordinal(); o > bestOrd {
			best, bestOrd = e.Degree, o
		}
	}
	return best
}

func topSkills(s domain.SkillSet, n int) []string {
	out := []string{}
	for _, bucket := range [][]string{s.ProgrammingLanguages, s.TechnicalSkills, s.SoftSkills} {
		for _, skill := range bucket {
			if len(out) == n {
				return out
			}
			out = append(out, skill)
		}
	}
	return out
}

// Keywords returns the topN most frequent non-stopword tokens of at least
// four characters, most frequent first, ties broken alphabetically so the
// result is deterministic.
func (a *Analyzer) Keywords(text string, topN int) []string {
	if topN <= 0 {
		return []string{}
	}
	counts := map[string]int{}
	for _, tok := range strings.FieldsFunc(textx.Fold(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r >= 0x80)
	}) {
		if len([]rune(tok)) < 4 {
			continue
		}
		if _, stop := vocab.Stopwords[tok]; stop {
			continue
		}
		counts[tok]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > topN {
		keys = keys[:topN]
	}
	return keys
}

// positionRules maps skill evidence to suggested position titles, in
// priority order.
var positionRules = []struct {
	title    string
	evidence []string
}{
	{"Machine Learning Engineer", []string{"tensorflow", "pytorch", "machine learning", "deep learning", "scikit-learn", "keras"}},
	{"Data Scientist", []string{"pandas", "numpy", "data science", "statistical analysis", "data mining", "r"}},
	{"DevOps Engineer", []string{"kubernetes", "docker", "terraform", "ansible", "jenkins", "ci/cd"}},
	{"Frontend Developer", []string{"react", "angular", "vue", "typescript", "css", "next.js"}},
	{"Backend Developer", []string{"go", "java", "django", "spring", "node.js", "postgresql", "microservices"}},
	{"Mobile Developer", []string{"swift", "kotlin", "flutter", "react native", "dart"}},
}

// maxSuggestions bounds SuggestPositions output.
const maxSuggestions = 3

// SuggestPositions proposes position titles supported by at least two
// pieces of skill evidence each, strongest first. With no specific
// evidence but some skills present, it falls back to a generalist title.
func (a *Analyzer) SuggestPositions(rec domain.CVRecord) []string {
	skills := map[string]struct{}{}
	for _, bucket := range [][]string{
		rec.Skills.TechnicalSkills, rec.Skills.ProgrammingLanguages, rec.Skills.SoftSkills,
	} {
		for _, s := range bucket {
			skills[textx.Fold(s)] = struct{}{}
		}
	}
	type scored struct {
		title string
		hits  int
	}
	var candidates []scored
	for _, rule := range positionRules {
		hits := 0
		for _, ev := range rule.evidence {
			if _, ok := skills[ev]; ok {
				hits++
			}
		}
		if hits >= 2 {
			candidates = append(candidates, scored{rule.title, hits})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].hits > candidates[j].hits })
	out := []string{}
	for _, c := range candidates {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.title)
	}
	if len(out) == 0 && rec.Skills.Count() > 0 {
		out = append(out, "Software Engineer")
	}
	return out
}
