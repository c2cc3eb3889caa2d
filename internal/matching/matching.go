// Package matching compares an extracted CV record against a position
// requirement and produces category sub-scores in [0,1], an aggregate match
// score, and deterministic strengths/weaknesses/recommendations.
package matching

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/cvlens/cvlens/internal/domain"
	"github.com/cvlens/cvlens/pkg/textx"
)

// Weights are the per-category aggregation weights. They must sum to 1.0;
// Validate enforces this before matching.
type Weights struct {
	Skills         float64 `validate:"gte=0,lte=1"`
	Experience     float64 `validate:"gte=0,lte=1"`
	Education      float64 `validate:"gte=0,lte=1"`
	Languages      float64 `validate:"gte=0,lte=1"`
	Certifications float64 `validate:"gte=0,lte=1"`
}

// DefaultWeights returns the canonical weight set.
func DefaultWeights() Weights {
	return Weights{
		Skills:         0.4,
		Experience:     0.3,
		Education:      0.2,
		Languages:      0.05,
		Certifications: 0.05,
	}
}

var validate = validator.New()

// Validate checks field ranges and that the weights sum to 1.0 (within a
// small epsilon for float composition).
func (w Weights) Validate() error {
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("op=matching.Validate: %w", err)
	}
	sum := w.Skills + w.Experience + w.Education + w.Languages + w.Certifications
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("op=matching.Validate: weights sum to %.3f, want 1.0: %w", sum, domain.ErrInvalidArgument)
	}
	return nil
}

// Thresholds for strength/weakness classification.
const (
	strengthThreshold = 0.8
	weaknessThreshold = 0.4
)

// Match compares a CV record against a position using the default weights.
func Match(rec domain.CVRecord, pos domain.PositionRequirement) domain.MatchResult {
	return MatchWeighted(rec, pos, DefaultWeights())
}

// MatchWeighted is Match with caller-supplied weights. Weights validity is
// the caller's responsibility; use Weights.Validate.
func MatchWeighted(rec domain.CVRecord, pos domain.PositionRequirement, w Weights) domain.MatchResult {
	cs := domain.CategoryScores{
		Skills:         setScore(allSkills(rec.Skills), pos.RequiredSkills),
		Experience:     experienceScore(rec.Experience, pos.MinExperienceYears),
		Education:      educationScore(rec.Education, pos.MinEducation),
		Languages:      setScore(rec.Skills.SpokenLanguages, pos.RequiredLanguages),
		Certifications: setScore(rec.Certifications, pos.RequiredCertifications),
	}
	res := domain.MatchResult{
		MatchScore: cs.Skills*w.Skills + cs.Experience*w.Experience +
			cs.Education*w.Education + cs.Languages*w.Languages +
			cs.Certifications*w.Certifications,
		CategoryScores:  cs,
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
	}
	for _, c := range categories {
		score := c.get(cs)
		switch {
		case score >= strengthThreshold:
			res.Strengths = append(res.Strengths, c.strength)
		case score <= weaknessThreshold:
			res.Weaknesses = append(res.Weaknesses, c.weakness)
			res.Recommendations = append(res.Recommendations, c.recommendation)
		}
	}
	return res
}

// categories drives strength/weakness generation in a fixed order so output
// is deterministic.
var categories = []struct {
	get            func(domain.CategoryScores) float64
	strength       string
	weakness       string
	recommendation string
}{
	{
		get:            func(c domain.CategoryScores) float64 { return c.Skills },
		strength:       "strong skill coverage for the position",
		weakness:       "several required skills are missing",
		recommendation: "gain hands-on experience with the missing required skills",
	},
	{
		get:            func(c domain.CategoryScores) float64 { return c.Experience },
		strength:       "experience meets or exceeds the requirement",
		weakness:       "experience falls short of the required years",
		recommendation: "build more professional experience in a similar role",
	},
	{
		get:            func(c domain.CategoryScores) float64 { return c.Education },
		strength:       "education level satisfies the requirement",
		weakness:       "education level is below the requirement",
		recommendation: "consider completing the required degree level",
	},
	{
		get:            func(c domain.CategoryScores) float64 { return c.Languages },
		strength:       "required languages are covered",
		weakness:       "required languages are not evidenced",
		recommendation: "document proficiency in the required languages",
	},
	{
		get:            func(c domain.CategoryScores) float64 { return c.Certifications },
		strength:       "required certifications are present",
		weakness:       "required certifications are missing",
		recommendation: "obtain the certifications the position asks for",
	},
}

// setScore is |matched| / |required| with case-insensitive substring
// containment in both directions. An empty requirement set grants full
// credit.
func setScore(have, required []string) float64 {
	if len(required) == 0 {
		return 1.0
	}
	folded := make([]string, len(have))
	for i, h := range have {
		folded[i] = textx.Fold(h)
	}
	matched := 0
	for _, req := range required {
		r := textx.Fold(strings.TrimSpace(req))
		if r == "" {
			matched++
			continue
		}
		for _, h := range folded {
			if strings.Contains(h, r) || strings.Contains(r, h) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(required))
}

func allSkills(s domain.SkillSet) []string {
	out := make([]string, 0, s.Count())
	out = append(out, s.TechnicalSkills...)
	out = append(out, s.ProgrammingLanguages...)
	out = append(out, s.SpokenLanguages...)
	out = append(out, s.SoftSkills...)
	return out
}

// experienceScore is min(1, total_years / max(1, required)). Open-ended
// roles count up to the current year.
func experienceScore(entries []domain.ExperienceEntry, requiredYears int) float64 {
	if requiredYears <= 0 {
		return 1.0
	}
	years := TotalYears(entries)
	score := float64(years) / float64(max(1, requiredYears))
	if score > 1.0 {
		return 1.0
	}
	return score
}

// TotalYears sums the year spans of all entries; an entry with no end year
// runs through the current year, an entry with no start year contributes
// nothing.
func TotalYears(entries []domain.ExperienceEntry) int {
	now := time.Now().Year()
	total := 0
	for _, e := range entries {
		if e.StartYear == nil {
			continue
		}
		end := now
		if e.EndYear != nil {
			end = *e.EndYear
		}
		if end > *e.StartYear {
			total += end - *e.StartYear
		}
	}
	return total
}

// educationScore compares the candidate's best degree ordinal against the
// required one: full credit at or above, proportional credit below, zero
// with no recognized level.
func educationScore(entries []domain.EducationEntry, required domain.DegreeLevel) float64 {
	reqOrd := required.Ordinal()
	if reqOrd == 0 {
		return 1.0
	}
	best := 0
	for _, e := range entries {
		if o := e.Degree.Ordinal(); o > best {
			best = o
		}
	}
	if best == 0 {
		return 0.0
	}
	if best >= reqOrd {
		return 1.0
	}
	return float64(best) / float64(reqOrd)
}
