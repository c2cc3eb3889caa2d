package repair

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvlens/cvlens/internal/domain"
)

func TestRepair_CleanJSONPassesThrough(t *testing.T) {
	t.Parallel()
	out := Repair(`{"summary": "ok", "score": {"total_score": 10}}`)

	require.Equal(t, StateDone, out.State)
	assert.False(t, out.Repaired)
}

func TestRepair_RoundTripThroughFences(t *testing.T) {
	t.Parallel()
	obj := map[string]any{"a": "b", "n": float64(3)}
	raw, err := json.Marshal(obj)
	require.NoError(t, err)

	out := Repair("Here is the result:\n```json\n" + string(raw) + "\n```\nthanks")
	require.Equal(t, StateDone, out.State)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Object, &got))
	assert.Equal(t, obj, got)
}

func TestRepair_SingleQuotes(t *testing.T) {
	t.Parallel()
	out := Repair(`{'summary': 'fine'}`)

	require.Equal(t, StateDone, out.State)
	assert.True(t, out.Repaired)
}

func TestRepair_TrailingCommas(t *testing.T) {
	t.Parallel()
	out := Repair(`{"items": ["a", "b",], "x": 1,}`)
	require.Equal(t, StateDone, out.State)
}

func TestRepair_NullAndUndefinedValues(t *testing.T) {
	t.Parallel()
	out := Repair(`{"name": null, "email": undefined,}`)
	require.Equal(t, StateDone, out.State)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Object, &got))
	assert.Equal(t, "", got["name"])
	assert.Equal(t, "", got["email"])
}

func TestRepair_NoBracesFails(t *testing.T) {
	t.Parallel()
	out := Repair("no structured data here at all")

	require.Equal(t, StateFailed, out.State)
	assert.Equal(t, ReasonNoStructure, out.Reason)
	assert.NotEmpty(t, out.Reason)
}

func TestRepair_UnparseableAfterCascade(t *testing.T) {
	t.Parallel()
	out := Repair(`{"a": [1, 2}`)

	require.Equal(t, StateFailed, out.State)
	assert.Equal(t, ReasonUnparseable, out.Reason)
	assert.NotEmpty(t, out.Snippet)
	assert.LessOrEqual(t, len(out.Snippet), 500)
}

func TestRecord_MissingKeysKeepSentinels(t *testing.T) {
	t.Parallel()
	rec := Record(`{"personal_info": {"name": "Ahmet Yılmaz"}}`)

	assert.Equal(t, "Ahmet Yılmaz", rec.PersonalInfo.Name)
	assert.Equal(t, domain.Unspecified, rec.PersonalInfo.Email)
	assert.Equal(t, domain.Unspecified, rec.Summary)
	assert.NotNil(t, rec.Education)
	assert.NotNil(t, rec.Skills.TechnicalSkills)
	assert.Nil(t, rec.Diagnostic)
}

func TestRecord_FailureYieldsDefaultRecordWithDiagnostic(t *testing.T) {
	t.Parallel()
	rec := Record("the model refused to answer")

	require.NotNil(t, rec.Diagnostic)
	assert.Equal(t, ReasonNoStructure, rec.Diagnostic.Reason)
	assert.Equal(t, domain.Unspecified, rec.PersonalInfo.Name)
	assert.Empty(t, rec.Education)
}

func TestRecord_NeverPanicsOnHostileInput(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "{", "}", "{{{{", "}{", "\x00\x01{", `{"a":`} {
		assert.NotPanics(t, func() { Record(in) })
	}
}
