package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)

	assert.NotNil(t, r.HTTPRequestsTotal)
	assert.NotNil(t, r.AnalysesTotal)
	assert.NotNil(t, r.FeedLinesTotal)
	assert.NotNil(t, r.GetPrometheusRegistry())
}

func TestRecordAnalysis(t *testing.T) {
	r := NewRegistry()

	r.RecordAnalysis("Phishing Email Campaign", "success", 2*time.Second)
	r.RecordAnalysis("Phishing Email Campaign", "success", 2*time.Second)
	r.RecordAnalysis("Phishing Email Campaign", "cancelled", time.Second)

	counter, err := r.AnalysesTotal.GetMetricWithLabelValues("Phishing Email Campaign", "success")
	require.NoError(t, err)

	var metric dto.Metric
	require.NoError(t, counter.Write(&metric))
	assert.Equal(t, 2.0, metric.GetCounter().GetValue())
}

func TestRecordHTTPRequest(t *testing.T) {
	r := NewRegistry()
	r.RecordHTTPRequest("GET", "/v1/history", "200", 5*time.Millisecond)

	counter, err := r.HTTPRequestsTotal.GetMetricWithLabelValues("GET", "/v1/history", "200")
	require.NoError(t, err)

	var metric dto.Metric
	require.NoError(t, counter.Write(&metric))
	assert.Equal(t, 1.0, metric.GetCounter().GetValue())
}

func TestFeedCounters(t *testing.T) {
	r := NewRegistry()
	r.RecordFeedSession()
	for i := 0; i < 5; i++ {
		r.RecordFeedLine()
	}
	r.RecordLookupFailure()

	var metric dto.Metric
	require.NoError(t, r.FeedLinesTotal.Write(&metric))
	assert.Equal(t, 5.0, metric.GetCounter().GetValue())

	metric.Reset()
	require.NoError(t, r.LookupFailures.Write(&metric))
	assert.Equal(t, 1.0, metric.GetCounter().GetValue())
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := NewRegistry()
	r.RecordFeedSession()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "cdr_feed_sessions_total 1")
	assert.Contains(t, string(body), "cdr_uptime_seconds")
}
