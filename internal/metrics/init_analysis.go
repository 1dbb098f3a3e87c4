package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "cdr_analyses_total",
			Help: "Total number of mock analysis runs",
		},
		[]string{"scenario", "status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cdr_analysis_duration_seconds",
			Help:    "Wall time of mock analysis runs, simulated delay included",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 2.5, 5},
		},
		[]string{"scenario"},
	)

	r.LookupFailures = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "cdr_scenario_lookup_failures_total",
			Help: "Lookups of scenario names that are not in the catalog",
		},
	)
}

func (r *Registry) initMonitoringMetrics() {
	r.FeedSessionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "cdr_feed_sessions_total",
			Help: "Live monitoring feeds started",
		},
	)

	r.FeedLinesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "cdr_feed_lines_total",
			Help: "Live monitoring feed lines emitted",
		},
	)
}
