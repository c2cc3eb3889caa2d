// Package domain defines the core entities, sentinel values, and ports of
// the CV insight engine. It has no dependencies on adapters or transport.
package domain

import (
	"context"
	"errors"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUpstreamTimeout   = errors.New("upstream timeout")
	ErrUpstreamFailure   = errors.New("upstream failure")
	ErrSchemaInvalid     = errors.New("schema invalid")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Unspecified marks a field the extractors could not determine. It is an
// explicit sentinel, distinguishable from a genuinely empty value; record
// fields are never null and keys are never omitted.
const Unspecified = "unspecified"

// DegreeLevel is an ordinal education level. Higher is more advanced.
type DegreeLevel int

const (
	DegreeNone DegreeLevel = iota
	DegreeHighSchool
	DegreeBachelor
	DegreeMaster
	DegreeDoctorate
	DegreeOther
)

var degreeNames = map[DegreeLevel]string{
	DegreeNone:       "none",
	DegreeHighSchool: "high_school",
	DegreeBachelor:   "bachelor",
	DegreeMaster:     "master",
	DegreeDoctorate:  "doctorate",
	DegreeOther:      "other",
}

func (d DegreeLevel) String() string {
	if s, ok := degreeNames[d]; ok {
		return s
	}
	return "none"
}

// Ordinal returns the 5-level comparison scale used by the matching engine
// (high school = 1 ... doctorate = 5). DegreeNone and DegreeOther do not rank.
func (d DegreeLevel) Ordinal() int {
	switch d {
	case DegreeHighSchool:
		return 1
	case DegreeBachelor:
		return 3
	case DegreeMaster:
		return 4
	case DegreeDoctorate:
		return 5
	default:
		return 0
	}
}

// MarshalText serializes the degree as its snake_case name.
func (d DegreeLevel) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText accepts the snake_case names emitted by MarshalText.
// Unknown names map to DegreeNone rather than failing.
func (d *DegreeLevel) UnmarshalText(b []byte) error {
	s := string(b)
	for lvl, name := range degreeNames {
		if name == s {
			*d = lvl
			return nil
		}
	}
	*d = DegreeNone
	return nil
}

// PersonalInfo holds contact details. Fields carry Unspecified when no
// pattern matched; they are never empty strings for "not found".
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
	GitHub   string `json:"github"`
}

// NewPersonalInfo returns a PersonalInfo with every field set to the
// Unspecified sentinel.
func NewPersonalInfo() PersonalInfo {
	return PersonalInfo{
		Name:     Unspecified,
		Email:    Unspecified,
		Phone:    Unspecified,
		Location: Unspecified,
		LinkedIn: Unspecified,
		Website:  Unspecified,
		GitHub:   Unspecified,
	}
}

// EducationEntry is one schooling record. A nil EndYear means ongoing.
type EducationEntry struct {
	Institution string      `json:"institution"`
	Degree      DegreeLevel `json:"degree"`
	Field       string      `json:"field"`
	StartYear   *int        `json:"start_year"`
	EndYear     *int        `json:"end_year"`
	Grade       *float64    `json:"grade"`
}

// ExperienceEntry is one employment record. A nil EndYear means the role is
// current. Entries are kept most-recent-first.
type ExperienceEntry struct {
	Company          string   `json:"company"`
	Title            string   `json:"title"`
	StartYear        *int     `json:"start_year"`
	EndYear          *int     `json:"end_year"`
	Location         string   `json:"location"`
	Responsibilities []string `json:"responsibilities"`
	SkillsUsed       []string `json:"skills_used"`
}

// SkillSet groups skills into four disjoint buckets. A skill string belongs
// to at most one bucket and buckets hold no case-insensitive duplicates.
type SkillSet struct {
	TechnicalSkills      []string `json:"technical_skills"`
	ProgrammingLanguages []string `json:"programming_languages"`
	SpokenLanguages      []string `json:"spoken_languages"`
	SoftSkills           []string `json:"soft_skills"`
}

// NewSkillSet returns a SkillSet with empty (non-nil) buckets so the JSON
// contract always carries arrays.
func NewSkillSet() SkillSet {
	return SkillSet{
		TechnicalSkills:      []string{},
		ProgrammingLanguages: []string{},
		SpokenLanguages:      []string{},
		SoftSkills:           []string{},
	}
}

// Count returns the total number of skills across all buckets.
func (s SkillSet) Count() int {
	return len(s.TechnicalSkills) + len(s.ProgrammingLanguages) +
		len(s.SpokenLanguages) + len(s.SoftSkills)
}

// Project is a self-contained piece of work mentioned in the CV.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// ScoreBreakdown is the 0-100 quality scoring of a CV. Total is the fixed
// weighted combination of the four categories, rounded down.
type ScoreBreakdown struct {
	TotalScore      int `json:"total_score"`
	EducationScore  int `json:"education_score"`
	ExperienceScore int `json:"experience_score"`
	SkillsScore     int `json:"skills_score"`
	ProjectsScore   int `json:"projects_score"`
}

// Diagnostic carries failure context on a degraded record. RawText is
// truncated before being attached.
type Diagnostic struct {
	Reason  string `json:"reason"`
	RawText string `json:"raw_text"`
}

// CVRecord is the full analysis result for one document. It is built once
// per analysis call and treated as immutable afterwards.
type CVRecord struct {
	PersonalInfo   PersonalInfo      `json:"personal_info"`
	Education      []EducationEntry  `json:"education"`
	Experience     []ExperienceEntry `json:"experience"`
	Skills         SkillSet          `json:"skills"`
	Projects       []Project         `json:"projects"`
	Certifications []string          `json:"certifications"`
	Summary        string            `json:"summary"`
	Score          ScoreBreakdown    `json:"score"`
	Diagnostic     *Diagnostic       `json:"_error,omitempty"`
}

// DefaultCVRecord returns a structurally complete record with every field
// set to the Unspecified sentinel or an empty collection, plus a diagnostic
// describing why extraction degraded. Collections are never nil.
func DefaultCVRecord(reason, rawText string) CVRecord {
	const maxRaw = 300
	if len(rawText) > maxRaw {
		rawText = rawText[:maxRaw] + "..."
	}
	return CVRecord{
		PersonalInfo:   NewPersonalInfo(),
		Education:      []EducationEntry{},
		Experience:     []ExperienceEntry{},
		Skills:         NewSkillSet(),
		Projects:       []Project{},
		Certifications: []string{},
		Summary:        Unspecified,
		Score:          ScoreBreakdown{},
		Diagnostic:     &Diagnostic{Reason: reason, RawText: rawText},
	}
}

// PositionRequirement describes what a job posting asks for. Empty
// requirement sets mean "no requirement" and grant full credit when matched.
type PositionRequirement struct {
	Title                  string      `json:"title" yaml:"title" validate:"required"`
	Description            string      `json:"description" yaml:"description"`
	RequiredSkills         []string    `json:"required_skills" yaml:"required_skills"`
	MinExperienceYears     int         `json:"min_experience_years" yaml:"min_experience_years" validate:"gte=0"`
	MinEducation           DegreeLevel `json:"min_education" yaml:"min_education"`
	RequiredLanguages      []string    `json:"required_languages" yaml:"required_languages"`
	RequiredCertifications []string    `json:"required_certifications" yaml:"required_certifications"`
}

// CategoryScores are the per-category match sub-scores, each in [0,1].
type CategoryScores struct {
	Skills         float64 `json:"skills"`
	Experience     float64 `json:"experience"`
	Education      float64 `json:"education"`
	Languages      float64 `json:"languages"`
	Certifications float64 `json:"certifications"`
}

// MatchResult is the outcome of comparing a CVRecord to a position.
type MatchResult struct {
	MatchScore      float64        `json:"match_score"`
	CategoryScores  CategoryScores `json:"category_scores"`
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	Recommendations []string       `json:"recommendations"`
}

// Ports

// GenerateRequest is the fixed parameter set for the text-generation
// collaborator.
type GenerateRequest struct {
	Prompt      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Generator is the text-generation collaborator boundary. Implementations
// may be slow; callers bound them with a context deadline.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// TextExtractor is the document-extraction collaborator boundary. It returns
// a best-effort plain-text rendering of the file at path.
type TextExtractor interface {
	ExtractPath(ctx context.Context, fileName, path string) (string, error)
}

// AnalysisCache is a content-addressed cache from a hash of normalized input
// text to a previously computed record. It is a pure performance
// optimization; correctness never depends on it.
type AnalysisCache interface {
	Get(ctx context.Context, key string) (CVRecord, bool, error)
	Put(ctx context.Context, key string, rec CVRecord) error
}
