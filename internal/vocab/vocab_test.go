package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvlens/cvlens/internal/domain"
)

func TestLookup_FirstMatchWins(t *testing.T) {
	t.Parallel()
	table := Table[string]{
		{Keywords: []string{"alpha"}, Value: "first"},
		{Keywords: []string{"alpha", "beta"}, Value: "second"},
	}
	v, ok := Lookup(table, "text with alpha inside")
	require.True(t, ok)
	assert.Equal(t, "first", v)
}

func TestLookup_CaseAndTurkishFolding(t *testing.T) {
	t.Parallel()
	v, ok := Lookup(Sections, "EĞİTİM")
	require.True(t, ok)
	assert.Equal(t, SectionEducation, v)

	v, ok = Lookup(Sections, "Work Experience")
	require.True(t, ok)
	assert.Equal(t, SectionExperience, v)
}

func TestLookup_NoMatch(t *testing.T) {
	t.Parallel()
	_, ok := Lookup(Sections, "completely unrelated")
	assert.False(t, ok)
}

func TestLookupWord_RequiresBoundaries(t *testing.T) {
	t.Parallel()
	table := Table[string]{{Keywords: []string{"go"}, Value: "go"}}

	_, ok := LookupWord(table, "category")
	assert.False(t, ok)

	v, ok := LookupWord(table, "built in go since 2019")
	require.True(t, ok)
	assert.Equal(t, "go", v)
}

func TestContainsWord(t *testing.T) {
	t.Parallel()
	assert.True(t, ContainsWord("python, docker", "docker"))
	assert.True(t, ContainsWord("c++ and c#", "c++"))
	assert.False(t, ContainsWord("javascript", "java"))
	assert.False(t, ContainsWord("eğitimli", "eğitim"))
}

func TestDegrees_PriorityOrder(t *testing.T) {
	t.Parallel()
	v, ok := Lookup(Degrees, "completed bachelor then master degree")
	require.True(t, ok)
	assert.Equal(t, domain.DegreeMaster, v)

	v, ok = Lookup(Degrees, "PhD in physics, master, bachelor")
	require.True(t, ok)
	assert.Equal(t, domain.DegreeDoctorate, v)
}

func TestMonths_Bilingual(t *testing.T) {
	t.Parallel()
	v, ok := LookupWord(Months, "started in March")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = LookupWord(Months, "Eylül 2020")
	require.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestHeaderKeywords_Flattens(t *testing.T) {
	t.Parallel()
	kws := HeaderKeywords()
	assert.Contains(t, kws, "education")
	assert.Contains(t, kws, "eğitim")
	assert.Contains(t, kws, "work experience")
}
