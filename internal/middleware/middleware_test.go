package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/cyberdefense-reasoning/internal/infra/catalog"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/logging"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/metrics"
)

func TestValidateDashboardQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   DashboardQuery
		analyze bool
		wantErr bool
	}{
		{"empty", DashboardQuery{}, false, false},
		{"analyze true", DashboardQuery{Analyze: "true"}, true, false},
		{"analyze upper", DashboardQuery{Analyze: "YES"}, true, false},
		{"analyze zero", DashboardQuery{Analyze: "0"}, false, false},
		{"analyze junk", DashboardQuery{Analyze: "maybe"}, false, true},
		{"long scenario", DashboardQuery{Scenario: string(bytes.Repeat([]byte("a"), 200))}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, err := ValidateDashboardQuery(tt.query)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.analyze, got)
		})
	}
}

func TestValidateDashboardQueryReturnsCleanedValues(t *testing.T) {
	q, analyze, err := ValidateDashboardQuery(DashboardQuery{
		Mode:     "  live-monitoring\t",
		Scenario: " Phishing Email Campaign \x00",
		Analyze:  " TRUE ",
	})
	require.NoError(t, err)
	assert.True(t, analyze)
	assert.Equal(t, "live-monitoring", q.Mode)
	assert.Equal(t, "Phishing Email Campaign", q.Scenario)
	assert.Equal(t, "true", q.Analyze)
}

func TestValidateScenarioName(t *testing.T) {
	assert.NoError(t, ValidateScenarioName("Data Exfiltration Attempt"))
	assert.Error(t, ValidateScenarioName(""))
	assert.Error(t, ValidateScenarioName("bad\x00name"))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "abc", SanitizeString("  a\x00b\x07c \n"))
}

func TestTokenBucket(t *testing.T) {
	tb := NewTokenBucket(2, 1)
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())
}

func TestRateLimiterMiddleware(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 1, 1)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/scenarios/x/analyze", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// another port from the same host shares the bucket
	req.RemoteAddr = "10.0.0.1:6666"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	req.RemoteAddr = "10.0.0.2:5555"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	empty, err := catalog.NewStatic()
	require.NoError(t, err)

	tests := []struct {
		name   string
		c      *catalog.Static
		status int
		state  string
	}{
		{"seeded", catalog.Default(), http.StatusOK, "healthy"},
		{"empty", empty, http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HealthHandler(map[string]HealthChecker{"catalog": &CatalogHealthChecker{Catalog: tt.c}})
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.status, rec.Code)
			var body HealthStatus
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.state, body.Status)
			assert.Equal(t, tt.state, body.Checks["catalog"].Status)
		})
	}
}

func TestMetricsMiddlewareUsesRoutePattern(t *testing.T) {
	reg := metrics.NewRegistry()
	r := chi.NewRouter()
	r.Use(MetricsMiddleware(reg))
	r.Get("/v1/scenarios/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/scenarios/whatever", nil))

	counter, err := reg.HTTPRequestsTotal.GetMetricWithLabelValues("GET", "/v1/scenarios/{name}", "404")
	require.NoError(t, err)
	var m dto.Metric
	require.NoError(t, counter.Write(&m))
	assert.Equal(t, 1.0, m.GetCounter().GetValue())
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSONLogger(&buf, logging.InfoLevel)

	h := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/history", nil))

	var entry logging.LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request", entry.Message)
	assert.Equal(t, "/v1/history", entry.Fields["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry.Fields["status"])
	assert.Equal(t, float64(15), entry.Fields["bytes"])
}
