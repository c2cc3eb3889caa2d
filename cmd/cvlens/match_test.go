package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvlens/cvlens/internal/domain"
)

func TestLoadPosition_YAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "pos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: Backend Developer
required_skills: [Python, Docker, Kubernetes]
min_experience_years: 3
min_education: bachelor
required_languages: [English]
`), 0o600))

	pos, err := loadPosition(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", pos.Title)
	assert.Equal(t, []string{"Python", "Docker", "Kubernetes"}, pos.RequiredSkills)
	assert.Equal(t, 3, pos.MinExperienceYears)
	assert.Equal(t, domain.DegreeBachelor, pos.MinEducation)
}

func TestLoadPosition_MissingTitleFails(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "pos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("required_skills: [Go]\n"), 0o600))

	_, err := loadPosition(path)
	assert.Error(t, err)
}

func TestAnalyzeCommand_EndToEnd(t *testing.T) {
	cv := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(cv, []byte("Ahmet Yılmaz\nahmet@x.com\n\nSKILLS\nPython, Docker"), 0o600))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"analyze", cv})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `"ahmet@x.com"`)
	assert.Contains(t, out.String(), `"Python"`)
}
