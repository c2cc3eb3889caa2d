package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cvlens/cvlens/internal/domain"
)

func TestScore_EmptyRecordIsZero(t *testing.T) {
	t.Parallel()
	b := Score(domain.DefaultCVRecord("empty", ""))
	assert.Equal(t, domain.ScoreBreakdown{}, b)
}

func TestScore_EducationFloors(t *testing.T) {
	t.Parallel()
	rec := domain.CVRecord{Education: []domain.EducationEntry{{Degree: domain.DegreeBachelor}}}
	assert.Equal(t, 75, Score(rec).EducationScore)

	rec.Education[0].Degree = domain.DegreeMaster
	assert.Equal(t, 85, Score(rec).EducationScore)

	rec.Education[0].Degree = domain.DegreeDoctorate
	assert.Equal(t, 100, Score(rec).EducationScore)
}

func TestScore_EducationCountBeatsFloorWhenHigher(t *testing.T) {
	t.Parallel()
	rec := domain.CVRecord{Education: []domain.EducationEntry{
		{Degree: domain.DegreeBachelor}, {}, {}, {},
	}}
	// 4 entries x 25 = 100 > bachelor floor
	assert.Equal(t, 100, Score(rec).EducationScore)
}

func TestScore_ExperienceFormula(t *testing.T) {
	t.Parallel()
	rec := domain.CVRecord{Experience: []domain.ExperienceEntry{
		{Responsibilities: []string{"a", "b", "c"}},
		{Responsibilities: []string{"d"}},
	}}
	// 20*2 + 5*4 = 60
	assert.Equal(t, 60, Score(rec).ExperienceScore)
}

func TestScore_SkillsAndProjects(t *testing.T) {
	t.Parallel()
	rec := domain.CVRecord{
		Skills: domain.SkillSet{
			ProgrammingLanguages: []string{"Python", "Go"},
			TechnicalSkills:      []string{"Docker"},
		},
		Projects: []domain.Project{{Technologies: []string{"Python", "Docker"}}},
	}
	b := Score(rec)
	assert.Equal(t, 30, b.SkillsScore)
	// 25*1 + 5*2 = 35
	assert.Equal(t, 35, b.ProjectsScore)
}

func TestScore_TotalIsWeightedFloor(t *testing.T) {
	t.Parallel()
	rec := domain.CVRecord{
		Education:  []domain.EducationEntry{{Degree: domain.DegreeBachelor}},
		Experience: []domain.ExperienceEntry{{Responsibilities: []string{"a"}}},
		Skills:     domain.SkillSet{ProgrammingLanguages: []string{"Python"}},
	}
	b := Score(rec)
	// 75*.25 + 25*.35 + 10*.25 + 0*.15 = 18.75 + 8.75 + 2.5 = 30
	assert.Equal(t, 30, b.TotalScore)
}

func TestScore_CategoriesClampedTo100(t *testing.T) {
	t.Parallel()
	skills := make([]string, 50)
	for i := range skills {
		skills[i] = "s"
	}
	rec := domain.CVRecord{Skills: domain.SkillSet{TechnicalSkills: skills}}
	b := Score(rec)
	assert.Equal(t, 100, b.SkillsScore)
	assert.LessOrEqual(t, b.TotalScore, 100)
	assert.GreaterOrEqual(t, b.TotalScore, 0)
}
