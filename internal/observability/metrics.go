package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// AnalysesTotal counts completed analyses by outcome path.
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cvlens_analyses_total",
		Help: "Completed CV analyses by path (heuristic, generated, cache, fallback).",
	}, []string{"path"})

	// AnalysisDuration observes end-to-end analysis latency.
	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cvlens_analysis_duration_seconds",
		Help:    "End-to-end analysis duration.",
		Buckets: prometheus.DefBuckets,
	})

	// RepairOutcomes counts repair pipeline terminal states.
	RepairOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cvlens_repair_outcomes_total",
		Help: "Repair pipeline terminal states (done, done_repaired, failed).",
	}, []string{"state"})

	// GenerationRequests counts generation-collaborator calls by result.
	GenerationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cvlens_generation_requests_total",
		Help: "Generation collaborator calls by result (ok, timeout, error).",
	}, []string{"result"})

	// MatchesTotal counts position-match computations.
	MatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cvlens_matches_total",
		Help: "Position match computations.",
	})

	// CacheEvents counts cache hits and misses.
	CacheEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cvlens_cache_events_total",
		Help: "Analysis cache hits and misses.",
	}, []string{"event"})
)

// ServeMetrics exposes /metrics on addr. It blocks; run it in a goroutine.
func ServeMetrics(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	return srv.ListenAndServe()
}
