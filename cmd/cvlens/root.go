package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cvlens/cvlens/internal/adapter/ai/ollama"
	"github.com/cvlens/cvlens/internal/adapter/textextractor/local"
	"github.com/cvlens/cvlens/internal/adapter/textextractor/tika"
	"github.com/cvlens/cvlens/internal/analyzer"
	"github.com/cvlens/cvlens/internal/cache"
	"github.com/cvlens/cvlens/internal/config"
	"github.com/cvlens/cvlens/internal/domain"
	"github.com/cvlens/cvlens/internal/observability"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cvlens",
		Short:         "CV analysis and position matching engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCmd(), newMatchCmd())
	return root
}

// buildAnalyzer wires the engine from environment configuration.
func buildAnalyzer(cfg config.Config, log *slog.Logger, withModel bool) *analyzer.Analyzer {
	opts := []analyzer.Option{
		analyzer.WithLogger(log),
		analyzer.WithCache(cache.NewMemory(cfg.CacheCapacity)),
		analyzer.WithPromptBudget(cfg.MaxPromptTokens, cfg.TokenizerModel),
	}
	if withModel {
		gen := ollama.New(cfg.OllamaBaseURL, cfg.GenTimeout, cfg.GenMaxRetries, log)
		opts = append(opts, analyzer.WithGenerator(gen, cfg.OllamaModel, cfg.FallbackModel, cfg.GenTemperature, cfg.GenMaxTokens))
	}
	return analyzer.New(opts...)
}

// loadCVText reads the document: "-" means stdin, .txt and friends go
// through the local extractor, and anything it rejects falls through to
// Tika when one is configured.
func loadCVText(ctx context.Context, cfg config.Config, path string) (string, error) {
	if path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}
	text, err := local.New().ExtractPath(ctx, path, path)
	if err == nil {
		return text, nil
	}
	if errors.Is(err, domain.ErrUnsupportedFormat) && cfg.TikaURL != "" {
		return tika.New(cfg.TikaURL, 60*time.Second).ExtractPath(ctx, path, path)
	}
	return "", err
}

func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	log := observability.SetupLogger(cfg.AppEnv, cfg.LogLevel)
	if cfg.MetricsAddr != "" {
		go func() {
			if err := observability.ServeMetrics(cfg.MetricsAddr); err != nil {
				log.Warn("metrics server stopped", slog.Any("error", err))
			}
		}()
	}
	return cfg, log, nil
}
