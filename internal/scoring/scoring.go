// Package scoring computes the 0-100 quality breakdown of an extracted CV
// record. Scoring is a pure function: the same record always yields the same
// breakdown.
package scoring

import (
	"math"

	"github.com/cvlens/cvlens/internal/domain"
)

// Category weights for the total. They sum to 1.0.
const (
	WeightEducation  = 0.25
	WeightExperience = 0.35
	WeightSkills     = 0.25
	WeightProjects   = 0.15
)

// Degree floors raise the education score when an advanced degree is
// present; the highest applicable floor wins.
const (
	floorBachelor  = 75
	floorMaster    = 85
	floorDoctorate = 100
)

// Score computes the category scores and their weighted total. Every
// category is clamped to [0,100] before combination and the total rounds
// down.
func Score(rec domain.CVRecord) domain.ScoreBreakdown {
	b := domain.ScoreBreakdown{
		EducationScore:  educationScore(rec.Education),
		ExperienceScore: experienceScore(rec.Experience),
		SkillsScore:     clamp(10 * rec.Skills.Count()),
		ProjectsScore:   projectsScore(rec.Projects),
	}
	total := float64(b.EducationScore)*WeightEducation +
		float64(b.ExperienceScore)*WeightExperience +
		float64(b.SkillsScore)*WeightSkills +
		float64(b.ProjectsScore)*WeightProjects
	b.TotalScore = int(math.Floor(total))
	return b
}

func educationScore(entries []domain.EducationEntry) int {
	score := clamp(25 * len(entries))
	floor := 0
	for _, e := range entries {
		switch e.Degree {
		case domain.DegreeBachelor:
			floor = max(floor, floorBachelor)
		case domain.DegreeMaster:
			floor = max(floor, floorMaster)
		case domain.DegreeDoctorate:
			floor = max(floor, floorDoctorate)
		}
	}
	return max(score, floor)
}

func experienceScore(entries []domain.ExperienceEntry) int {
	resp := 0
	for _, e := range entries {
		resp += len(e.Responsibilities)
	}
	return clamp(20*len(entries) + 5*resp)
}

func projectsScore(projects []domain.Project) int {
	tech := 0
	for _, p := range projects {
		tech += len(p.Technologies)
	}
	return clamp(25*len(projects) + 5*tech)
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
