package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry:  prometheus.NewRegistry(),
		startTime: time.Now(),
	}

	r.initHTTPMetrics()
	r.initAnalysisMetrics()
	r.initMonitoringMetrics()
	r.initSystemMetrics()

	return r
}

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordAnalysis records one mock analysis run. status is "success" or "cancelled".
func (r *Registry) RecordAnalysis(scenario, status string, duration time.Duration) {
	r.AnalysesTotal.WithLabelValues(scenario, status).Inc()
	r.AnalysisDuration.WithLabelValues(scenario).Observe(duration.Seconds())
}

func (r *Registry) RecordLookupFailure() {
	r.LookupFailures.Inc()
}

func (r *Registry) RecordFeedSession() {
	r.FeedSessionsTotal.Inc()
}

func (r *Registry) RecordFeedLine() {
	r.FeedLinesTotal.Inc()
}

// Handler serves the registry in Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
