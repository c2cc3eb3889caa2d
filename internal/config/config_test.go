package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "http://localhost:11434", cfg.OllamaBaseURL)
	assert.Equal(t, 90*time.Second, cfg.GenTimeout)
	assert.Equal(t, 256, cfg.CacheCapacity)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("OLLAMA_MODEL", "mistral")
	t.Setenv("GEN_TIMEOUT", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, "mistral", cfg.OllamaModel)
	assert.Equal(t, 10*time.Second, cfg.GenTimeout)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("GEN_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
