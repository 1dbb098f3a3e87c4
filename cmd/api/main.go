package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bryanwahyu/cyberdefense-reasoning/internal/application"
	appanalysis "github.com/bryanwahyu/cyberdefense-reasoning/internal/application/analysis"
	appdashboard "github.com/bryanwahyu/cyberdefense-reasoning/internal/application/dashboard"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/config"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/infra/catalog"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/infra/httpserver"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/logging"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/metrics"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, fromFile, err := config.LoadOrDefault(path)
	if err != nil {
		logging.NewFromEnv("error").Error("config load error", logging.Error(err))
		os.Exit(1)
	}

	logger := logging.NewFromEnv(cfg.Log.Level)
	if !fromFile {
		logger.Warn("config file not found, using defaults", logging.String("path", path))
	}
	logger.Info("config loaded",
		logging.String("path", path),
		logging.Bool("from_file", fromFile),
		logging.Duration("analysis_delay", cfg.Analysis.Delay),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := metrics.NewRegistry()

	// init services
	analyzer := appanalysis.NewService(application.SleepDelayer{})
	analyzer.Duration = cfg.Analysis.Delay
	analyzer.Metrics = reg
	analyzer.Logger = logger.With(logging.Component("analysis"))

	dash := appdashboard.NewService(catalog.Default(), analyzer)
	dash.FeedInterval = cfg.Monitoring.Interval
	dash.Metrics = reg
	dash.Logger = logger.With(logging.Component("dashboard"))

	// init router
	handler := httpserver.NewRouter(dash, httpserver.Options{
		Logger:         logger.With(logging.Component("http")),
		Metrics:        reg,
		RateLimiter:    middleware.NewRateLimiter(ctx, cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// run server
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", logging.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		logger.Error("server error", logging.Error(err))
		os.Exit(1)
	}

	// graceful shutdown
	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", logging.Error(err))
	}
}
