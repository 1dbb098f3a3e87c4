package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Analysis Metrics
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	LookupFailures   prometheus.Counter

	// Monitoring Metrics
	FeedSessionsTotal prometheus.Counter
	FeedLinesTotal    prometheus.Counter

	// System Metrics
	UptimeSeconds prometheus.GaugeFunc

	registry  *prometheus.Registry
	startTime time.Time
}
