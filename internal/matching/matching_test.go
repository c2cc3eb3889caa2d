package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvlens/cvlens/internal/domain"
)

func intPtr(n int) *int { return &n }

func TestMatch_SkillsTwoOfThree(t *testing.T) {
	t.Parallel()
	rec := domain.CVRecord{Skills: domain.SkillSet{TechnicalSkills: []string{"Python", "Docker"}}}
	pos := domain.PositionRequirement{RequiredSkills: []string{"Python", "Docker", "Kubernetes"}}

	res := Match(rec, pos)
	assert.InDelta(t, 2.0/3.0, res.CategoryScores.Skills, 1e-9)
}

func TestMatch_EmptyRequirementsGiveFullScore(t *testing.T) {
	t.Parallel()
	res := Match(domain.CVRecord{}, domain.PositionRequirement{})

	assert.Equal(t, 1.0, res.MatchScore)
	assert.Equal(t, 1.0, res.CategoryScores.Skills)
	assert.Equal(t, 1.0, res.CategoryScores.Experience)
	assert.Equal(t, 1.0, res.CategoryScores.Education)
	assert.Empty(t, res.Weaknesses)
	assert.Len(t, res.Strengths, 5)
}

func TestMatch_ScoreInRange(t *testing.T) {
	t.Parallel()
	rec := domain.CVRecord{Skills: domain.SkillSet{TechnicalSkills: []string{"Python"}}}
	pos := domain.PositionRequirement{
		RequiredSkills:     []string{"Rust", "Haskell"},
		MinExperienceYears: 10,
		MinEducation:       domain.DegreeDoctorate,
	}
	res := Match(rec, pos)
	assert.GreaterOrEqual(t, res.MatchScore, 0.0)
	assert.LessOrEqual(t, res.MatchScore, 1.0)
}

func TestMatch_ExperienceYears(t *testing.T) {
	t.Parallel()
	rec := domain.CVRecord{Experience: []domain.ExperienceEntry{
		{StartYear: intPtr(2015), EndYear: intPtr(2018)},
	}}
	res := Match(rec, domain.PositionRequirement{MinExperienceYears: 6})
	assert.InDelta(t, 0.5, res.CategoryScores.Experience, 1e-9)

	res = Match(rec, domain.PositionRequirement{MinExperienceYears: 2})
	assert.Equal(t, 1.0, res.CategoryScores.Experience)
}

func TestMatch_EducationOrdinal(t *testing.T) {
	t.Parallel()
	bachelor := domain.CVRecord{Education: []domain.EducationEntry{{Degree: domain.DegreeBachelor}}}

	res := Match(bachelor, domain.PositionRequirement{MinEducation: domain.DegreeMaster})
	assert.InDelta(t, 3.0/4.0, res.CategoryScores.Education, 1e-9)

	res = Match(bachelor, domain.PositionRequirement{MinEducation: domain.DegreeBachelor})
	assert.Equal(t, 1.0, res.CategoryScores.Education)

	none := domain.CVRecord{}
	res = Match(none, domain.PositionRequirement{MinEducation: domain.DegreeBachelor})
	assert.Equal(t, 0.0, res.CategoryScores.Education)
}

func TestMatch_CaseInsensitiveSubstringContainment(t *testing.T) {
	t.Parallel()
	rec := domain.CVRecord{Certifications: []string{"AWS Certified Solutions Architect"}}
	pos := domain.PositionRequirement{RequiredCertifications: []string{"aws certified"}}

	res := Match(rec, pos)
	assert.Equal(t, 1.0, res.CategoryScores.Certifications)
}

func TestMatch_LanguagesMatchDespiteLevelSuffix(t *testing.T) {
	t.Parallel()
	rec := domain.CVRecord{Skills: domain.SkillSet{SpokenLanguages: []string{"English (B2)"}}}
	pos := domain.PositionRequirement{RequiredLanguages: []string{"English"}}

	res := Match(rec, pos)
	assert.Equal(t, 1.0, res.CategoryScores.Languages)
}

func TestMatch_WeaknessesCarryRecommendations(t *testing.T) {
	t.Parallel()
	pos := domain.PositionRequirement{RequiredSkills: []string{"Rust"}, MinExperienceYears: 10}
	res := Match(domain.CVRecord{}, pos)

	require.Len(t, res.Weaknesses, 2)
	assert.Len(t, res.Recommendations, 2)
}

func TestMatch_Deterministic(t *testing.T) {
	t.Parallel()
	rec := domain.CVRecord{Skills: domain.SkillSet{TechnicalSkills: []string{"Python"}}}
	pos := domain.PositionRequirement{RequiredSkills: []string{"Python", "Go"}}

	assert.Equal(t, Match(rec, pos), Match(rec, pos))
}

func TestWeights_Validate(t *testing.T) {
	t.Parallel()
	require.NoError(t, DefaultWeights().Validate())

	bad := Weights{Skills: 0.5, Experience: 0.5, Education: 0.5}
	assert.Error(t, bad.Validate())
}
