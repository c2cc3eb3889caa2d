// Package repair turns raw generator output suspected to contain a JSON
// object into valid structured data. It is modeled as a small state machine
// with a fixed, ordered cascade of textual fixups and exactly one re-parse
// attempt; a terminal failure yields a default-sentinel record, never an
// error to the caller.
package repair

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/cvlens/cvlens/internal/domain"
)

// State is the repair pipeline state.
type State int

const (
	StateRaw State = iota
	StateCandidate
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateRaw:
		return "raw"
	case StateCandidate:
		return "candidate"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Failure reasons.
const (
	ReasonNoStructure = "no JSON structure found"
	ReasonUnparseable = "unparseable after repair"
)

// snippetLen bounds the diagnostic payload kept on failure.
const snippetLen = 400

// Outcome is the terminal result of one repair run. Object is valid JSON
// exactly when State is StateDone; Snippet carries the truncated candidate
// region on failure.
type Outcome struct {
	State    State
	Reason   string
	Object   json.RawMessage
	Snippet  string
	Repaired bool
}

// Repair locates the candidate JSON region in text and parses it, applying
// the fixup cascade once if the strict parse fails. It never returns an
// error: inspect Outcome.State.
func Repair(text string) Outcome {
	candidate, ok := candidateRegion(text)
	if !ok {
		return Outcome{State: StateFailed, Reason: ReasonNoStructure, Snippet: snippet(text)}
	}
	if obj, ok := tryParse(candidate); ok {
		return Outcome{State: StateDone, Object: obj}
	}
	repaired := applyFixups(candidate)
	if obj, ok := tryParse(repaired); ok {
		return Outcome{State: StateDone, Object: obj, Repaired: true}
	}
	return Outcome{State: StateFailed, Reason: ReasonUnparseable, Snippet: snippet(candidate)}
}

// Record parses generator output into a CV record. Keys absent from the
// generated object keep their sentinel defaults; a failed repair or a
// schema-incompatible object degrades to the default record with a
// diagnostic attached.
func Record(text string) domain.CVRecord {
	out := Repair(text)
	if out.State != StateDone {
		return domain.DefaultCVRecord(out.Reason, out.Snippet)
	}
	rec := domain.DefaultCVRecord("", "")
	rec.Diagnostic = nil
	if err := json.Unmarshal(out.Object, &rec); err != nil {
		return domain.DefaultCVRecord("schema mismatch: "+err.Error(), snippet(string(out.Object)))
	}
	normalizeRecord(&rec)
	return rec
}

// candidateRegion delimits the text between the first '{' and the last '}'.
// Arbitrary prose around the object is tolerated.
func candidateRegion(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

func tryParse(candidate string) (json.RawMessage, bool) {
	var v map[string]any
	if err := json.Unmarshal([]byte(candidate), &v); err != nil {
		return nil, false
	}
	return json.RawMessage(candidate), true
}

var (
	fenceRe         = regexp.MustCompile("(?s)```(?:json)?")
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	nullValueRe     = regexp.MustCompile(`(?i):\s*(?:null|undefined)\b`)
)

// applyFixups runs the full cascade in its fixed order: strip code fences,
// single to double quotes, trailing commas, null/undefined values, stray
// control characters.
func applyFixups(candidate string) string {
	s := fenceRe.ReplaceAllString(candidate, "")
	s = strings.ReplaceAll(s, "'", `"`)
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = nullValueRe.ReplaceAllString(s, `: ""`)
	s = stripControl(s)
	return strings.TrimSpace(s)
}

func stripControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' || r >= 32 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > snippetLen {
		return s[:snippetLen]
	}
	return s
}

// normalizeRecord restores invariants after unmarshalling generator output:
// collections non-nil, string fields never empty, sentinel in place of
// blanks.
func normalizeRecord(rec *domain.CVRecord) {
	orDefault := func(s *string) {
		if strings.TrimSpace(*s) == "" {
			*s = domain.Unspecified
		}
	}
	orDefault(&rec.PersonalInfo.Name)
	orDefault(&rec.PersonalInfo.Email)
	orDefault(&rec.PersonalInfo.Phone)
	orDefault(&rec.PersonalInfo.Location)
	orDefault(&rec.PersonalInfo.LinkedIn)
	orDefault(&rec.PersonalInfo.Website)
	orDefault(&rec.PersonalInfo.GitHub)
	orDefault(&rec.Summary)
	if rec.Education == nil {
		rec.Education = []domain.EducationEntry{}
	}
	if rec.Experience == nil {
		rec.Experience = []domain.ExperienceEntry{}
	}
	if rec.Projects == nil {
		rec.Projects = []domain.Project{}
	}
	if rec.Certifications == nil {
		rec.Certifications = []string{}
	}
	if rec.Skills.TechnicalSkills == nil {
		rec.Skills.TechnicalSkills = []string{}
	}
	if rec.Skills.ProgrammingLanguages == nil {
		rec.Skills.ProgrammingLanguages = []string{}
	}
	if rec.Skills.SpokenLanguages == nil {
		rec.Skills.SpokenLanguages = []string{}
	}
	if rec.Skills.SoftSkills == nil {
		rec.Skills.SoftSkills = []string{}
	}
}
