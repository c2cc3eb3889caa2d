package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCVRecord_SerializesWithContractKeys(t *testing.T) {
	t.Parallel()
	raw, err := json.Marshal(DefaultCVRecord("", ""))
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{
		"personal_info", "education", "experience", "skills",
		"projects", "certifications", "summary", "score",
	} {
		assert.Contains(t, m, key)
	}

	var skills map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(m["skills"], &skills))
	for _, key := range []string{"technical_skills", "programming_languages", "spoken_languages", "soft_skills"} {
		assert.Contains(t, skills, key)
		assert.Equal(t, "[]", string(skills[key]))
	}
}

func TestCVRecord_DiagnosticOmittedWhenClean(t *testing.T) {
	t.Parallel()
	raw, err := json.Marshal(CVRecord{})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "_error")

	raw, err = json.Marshal(DefaultCVRecord("broken", "raw text"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "_error")
}

func TestDefaultCVRecord_TruncatesRawText(t *testing.T) {
	t.Parallel()
	rec := DefaultCVRecord("r", strings.Repeat("x", 1000))
	require.NotNil(t, rec.Diagnostic)
	assert.Len(t, rec.Diagnostic.RawText, 303)
	assert.True(t, strings.HasSuffix(rec.Diagnostic.RawText, "..."))
}

func TestDegreeLevel_TextRoundTrip(t *testing.T) {
	t.Parallel()
	for _, lvl := range []DegreeLevel{DegreeNone, DegreeHighSchool, DegreeBachelor, DegreeMaster, DegreeDoctorate, DegreeOther} {
		b, err := lvl.MarshalText()
		require.NoError(t, err)

		var back DegreeLevel
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, lvl, back)
	}

	var unknown DegreeLevel
	require.NoError(t, unknown.UnmarshalText([]byte("wizard")))
	assert.Equal(t, DegreeNone, unknown)
}

func TestDegreeLevel_Ordinals(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, DegreeHighSchool.Ordinal())
	assert.Equal(t, 3, DegreeBachelor.Ordinal())
	assert.Equal(t, 4, DegreeMaster.Ordinal())
	assert.Equal(t, 5, DegreeDoctorate.Ordinal())
	assert.Equal(t, 0, DegreeNone.Ordinal())
	assert.Equal(t, 0, DegreeOther.Ordinal())
}
