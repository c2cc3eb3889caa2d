// Package analyzer composes normalization, segmentation, extraction,
// scoring, matching, and the optional generation-assisted path into the
// engine's public entry points. Analyze and Match are total: they never
// return an error for malformed input.
package analyzer

import (
	"context"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cvlens/cvlens/internal/adapter/ai/tokencount"
	"github.com/cvlens/cvlens/internal/cache"
	"github.com/cvlens/cvlens/internal/domain"
	"github.com/cvlens/cvlens/internal/extract"
	"github.com/cvlens/cvlens/internal/matching"
	"github.com/cvlens/cvlens/internal/observability"
	"github.com/cvlens/cvlens/internal/repair"
	"github.com/cvlens/cvlens/internal/scoring"
	"github.com/cvlens/cvlens/internal/segment"
	"github.com/cvlens/cvlens/internal/textnorm"
	"github.com/cvlens/cvlens/internal/vocab"
)

// Analyzer is the orchestrator. The zero value is not usable; construct
// with New.
type Analyzer struct {
	cache           domain.AnalysisCache
	gen             domain.Generator
	log             *slog.Logger
	model           string
	fallbackModel   string
	temperature     float64
	maxTokens       int
	maxPromptTokens int
	tokenizerModel  string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithCache attaches a content-addressed result cache.
func WithCache(c domain.AnalysisCache) Option {
	return func(a *Analyzer) { a.cache = c }
}

// WithGenerator enables the generation-assisted path.
func WithGenerator(g domain.Generator, model, fallbackModel string, temperature float64, maxTokens int) Option {
	return func(a *Analyzer) {
		a.gen = g
		a.model = model
		a.fallbackModel = fallbackModel
		a.temperature = temperature
		a.maxTokens = maxTokens
	}
}

// WithPromptBudget bounds how many tokens of CV text are embedded in
// generation prompts.
func WithPromptBudget(maxPromptTokens int, tokenizerModel string) Option {
	return func(a *Analyzer) {
		a.maxPromptTokens = maxPromptTokens
		a.tokenizerModel = tokenizerModel
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *Analyzer) { a.log = log }
}

// New builds an Analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		log:             slog.Default(),
		maxPromptTokens: 6000,
		tokenizerModel:  "gpt-3.5-turbo",
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Analyze runs the heuristic pipeline: normalize, segment, extract, score.
// It always returns a structurally complete record.
func (a *Analyzer) Analyze(ctx context.Context, cvText string) domain.CVRecord {
	start := time.Now()
	id := ulid.Make().String()
	log := a.log.With(slog.String("analysis_id", id))

	normalized := textnorm.Normalize(cvText)
	key := cache.Key(normalized)
	if a.cache != nil {
		if rec, ok, err := a.cache.Get(ctx, key); err != nil {
			log.Warn("cache get failed", slog.Any("error", err))
		} else if ok {
			observability.CacheEvents.WithLabelValues("hit").Inc()
			observability.AnalysesTotal.WithLabelValues("cache").Inc()
			return rec
		} else {
			observability.CacheEvents.WithLabelValues("miss").Inc()
		}
	}

	rec := a.extractRecord(normalized)
	if a.cache != nil {
		if err := a.cache.Put(ctx, key, rec); err != nil {
			log.Warn("cache put failed", slog.Any("error", err))
		}
	}
	observability.AnalysesTotal.WithLabelValues("heuristic").Inc()
	observability.AnalysisDuration.Observe(time.Since(start).Seconds())
	log.Info("analysis complete",
		slog.Int("total_score", rec.Score.TotalScore),
		slog.Int("education_entries", len(rec.Education)),
		slog.Int("experience_entries", len(rec.Experience)),
		slog.Int("skills", rec.Skills.Count()))
	return rec
}

// extractRecord is the pure heuristic core shared by both analysis paths.
func (a *Analyzer) extractRecord(normalized string) domain.CVRecord {
	sections := segment.Split(normalized)

	rec := domain.CVRecord{
		PersonalInfo:   extract.Personal(sections.Get(vocab.SectionPersonal), normalized),
		Education:      extract.Education(sections.Get(vocab.SectionEducation), normalized),
		Experience:     extract.Experience(sections.Get(vocab.SectionExperience), normalized),
		Skills:         extract.Skills(sections.Get(vocab.SectionSkills), normalized),
		Projects:       extract.Projects(sections.Get(vocab.SectionProjects)),
		Certifications: extract.Certifications(sections.Get(vocab.SectionCertifications), normalized),
	}
	for _, lang := range extract.Languages(sections.Get(vocab.SectionLanguages), normalized) {
		rec.Skills.SpokenLanguages = appendUnique(rec.Skills.SpokenLanguages, lang)
	}
	rec.Summary = buildSummary(rec, sections.Get(vocab.SectionSummary))
	rec.Score = scoring.Score(rec)
	return rec
}

// AnalyzeWithModel runs the generation-assisted path: a primary prompt with
// the literal schema example, at most one retry with a simplified prompt,
// repair of the raw output, and a heuristic fallback with a diagnostic when
// both attempts fail. It never returns an error.
func (a *Analyzer) AnalyzeWithModel(ctx context.Context, cvText string) domain.CVRecord {
	if a.gen == nil {
		return a.Analyze(ctx, cvText)
	}
	start := time.Now()
	id := ulid.Make().String()
	log := a.log.With(slog.String("analysis_id", id))

	normalized := textnorm.Normalize(cvText)
	budgeted := tokencount.Truncate(normalized, a.tokenizerModel, a.maxPromptTokens)

	rec, diag := a.generateRecord(ctx, log, budgeted)
	if diag != nil {
		// degrade to the heuristic result, keeping the failure visible
		log.Warn("generation path failed, using heuristic fallback", slog.String("reason", diag.Reason))
		rec = a.extractRecord(normalized)
		rec.Diagnostic = diag
		observability.AnalysesTotal.WithLabelValues("fallback").Inc()
	} else {
		if rec.Score == (domain.ScoreBreakdown{}) {
			rec.Score = scoring.Score(rec)
		}
		observability.AnalysesTotal.WithLabelValues("generated").Inc()
	}
	observability.AnalysisDuration.Observe(time.Since(start).Seconds())
	return rec
}

// generateRecord issues the primary prompt and, on a failed call or a
// failed repair, one simplified retry (optionally on the fallback model).
func (a *Analyzer) generateRecord(ctx context.Context, log *slog.Logger, cvText string) (domain.CVRecord, *domain.Diagnostic) {
	attempts := []struct {
		prompt string
		model  string
	}{
		{primaryPrompt(cvText), a.model},
		{simplifiedPrompt(cvText), a.retryModel()},
	}
	var lastDiag *domain.Diagnostic
	for i, at := range attempts {
		raw, err := a.gen.Generate(ctx, domain.GenerateRequest{
			Prompt:      at.prompt,
			Model:       at.model,
			Temperature: a.temperature,
			MaxTokens:   a.maxTokens,
		})
		if err != nil {
			log.Warn("generation call failed", slog.Int("attempt", i+1), slog.Any("error", err))
			lastDiag = &domain.Diagnostic{Reason: "generation failed: " + err.Error()}
			continue
		}
		rec := repair.Record(raw)
		if rec.Diagnostic == nil {
			observability.RepairOutcomes.WithLabelValues("done").Inc()
			return rec, nil
		}
		observability.RepairOutcomes.WithLabelValues("failed").Inc()
		log.Warn("generated output unusable", slog.Int("attempt", i+1), slog.String("reason", rec.Diagnostic.Reason))
		lastDiag = rec.Diagnostic
	}
	return domain.CVRecord{}, lastDiag
}

func (a *Analyzer) retryModel() string {
	if a.fallbackModel != "" {
		return a.fallbackModel
	}
	return a.model
}

// Match compares a record against a position with the default weights.
func (a *Analyzer) Match(rec domain.CVRecord, pos domain.PositionRequirement) domain.MatchResult {
	observability.MatchesTotal.Inc()
	return matching.Match(rec, pos)
}

// MatchWeighted compares with caller-supplied weights; invalid weights fall
// back to the defaults rather than failing the call.
func (a *Analyzer) MatchWeighted(rec domain.CVRecord, pos domain.PositionRequirement, w matching.Weights) domain.MatchResult {
	observability.MatchesTotal.Inc()
	if err := w.Validate(); err != nil {
		a.log.Warn("invalid match weights, using defaults", slog.Any("error", err))
		w = matching.DefaultWeights()
	}
	return matching.MatchWeighted(rec, pos, w)
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
