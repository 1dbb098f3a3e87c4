package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appdashboard "github.com/bryanwahyu/cyberdefense-reasoning/internal/application/dashboard"
	domain "github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/dashboard"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/threat"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/infra/websocket"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/logging"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/metrics"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/middleware"
)

// Options for NewRouter. Zero values disable the optional pieces.
type Options struct {
	Logger         logging.Logger
	Metrics        *metrics.Registry
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
}

type Router struct {
	dash   *appdashboard.Service
	logger logging.Logger
}

func NewRouter(dash *appdashboard.Service, opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger{}
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	r := &Router{dash: dash, logger: opts.Logger.With(logging.Component("httpserver"))}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	mux.Use(middleware.LoggingMiddleware(r.logger))
	if opts.Metrics != nil {
		mux.Use(middleware.MetricsMiddleware(opts.Metrics))
		mux.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	mux.Get("/health", middleware.HealthHandler(map[string]middleware.HealthChecker{
		"catalog": &middleware.CatalogHealthChecker{Catalog: dash.Catalog},
	}))
	mux.Get("/health/live", middleware.LivenessHandler)
	mux.Get("/health/ready", middleware.ReadinessHandler)

	limited := func(h http.Handler) http.Handler { return h }
	if opts.RateLimiter != nil {
		limited = opts.RateLimiter.Middleware
	}

	mux.Route("/v1", func(rt chi.Router) {
		rt.Get("/modes", r.wrap(r.handleModes))
		rt.Get("/scenarios", r.wrap(r.handleScenarios))
		rt.Get("/scenarios/{name}", r.wrap(r.handleScenario))
		rt.With(limited).Post("/scenarios/{name}/analyze", r.wrap(r.handleAnalyze))
		rt.Get("/dashboard", r.wrap(r.handleDashboard))
		rt.Get("/monitoring", r.wrap(r.handleMonitoring))
		rt.With(limited).Method(http.MethodGet, "/monitoring/feed",
			websocket.NewFeedHandler(dash, opts.Logger, opts.AllowedOrigins))
		rt.Get("/history", r.wrap(r.handleHistory))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			r.logger.Error("handler error", logging.String("path", req.URL.Path), logging.Error(err))
		}
		writeError(w, status, err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, threat.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidSelection), errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
