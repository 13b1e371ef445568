package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TurnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bondhu_turns_total",
			Help: "Total number of conversational turns processed, by intent and language.",
		},
		[]string{"intent", "language"},
	)

	TurnDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bondhu_turn_duration_seconds",
			Help:    "End-to-end duration of a conversational turn in seconds.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)

	HandlerFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bondhu_handler_failures_total",
			Help: "Total number of handler executions that failed.",
		},
		[]string{"handler"},
	)

	FallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bondhu_fallbacks_total",
			Help: "Total number of fallback transitions (ai->search, search->apology).",
		},
		[]string{"stage"},
	)

	AccessDeniedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bondhu_access_denied_total",
			Help: "Total number of intents refused by the role gate.",
		},
	)

	StoreRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bondhu_store_retries_total",
			Help: "Total number of retried persistence writes.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		TurnsTotal,
		TurnDuration,
		HandlerFailuresTotal,
		FallbacksTotal,
		AccessDeniedTotal,
		StoreRetriesTotal,
	)
}

// Serve exposes /metrics on addr. It blocks, so callers run it in a goroutine.
// An empty addr disables the listener.
func Serve(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	slog.Info("metrics listener started", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("metrics listener stopped", "error", err)
	}
}
