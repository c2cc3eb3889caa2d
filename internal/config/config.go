// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config is the full runtime configuration. Defaults are chosen so the
// engine runs locally with no environment at all.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// generation collaborator
	OllamaBaseURL  string        `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaModel    string        `env:"OLLAMA_MODEL" envDefault:"llama3.1"`
	FallbackModel  string        `env:"OLLAMA_FALLBACK_MODEL" envDefault:""`
	GenTimeout     time.Duration `env:"GEN_TIMEOUT" envDefault:"90s"`
	GenMaxTokens   int           `env:"GEN_MAX_TOKENS" envDefault:"2048"`
	GenTemperature float64       `env:"GEN_TEMPERATURE" envDefault:"0.1"`
	GenMaxRetries  int           `env:"GEN_MAX_RETRIES" envDefault:"2"`

	// prompt budget
	MaxPromptTokens int    `env:"MAX_PROMPT_TOKENS" envDefault:"6000"`
	TokenizerModel  string `env:"TOKENIZER_MODEL" envDefault:"gpt-3.5-turbo"`

	// analysis cache
	CacheCapacity int           `env:"CACHE_CAPACITY" envDefault:"256"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:""`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"24h"`

	// document extraction
	TikaURL string `env:"TIKA_URL" envDefault:""`

	// metrics
	MetricsAddr string `env:"METRICS_ADDR" envDefault:""`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

func (c Config) IsDev() bool  { return c.AppEnv == "dev" }
func (c Config) IsProd() bool { return c.AppEnv == "prod" }
func (c Config) IsTest() bool { return c.AppEnv == "test" }
