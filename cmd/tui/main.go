package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bryanwahyu/cyberdefense-reasoning/internal/application"
	appanalysis "github.com/bryanwahyu/cyberdefense-reasoning/internal/application/analysis"
	appdashboard "github.com/bryanwahyu/cyberdefense-reasoning/internal/application/dashboard"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/config"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/infra/catalog"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/logging"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/tui"
)

func main() {
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, _, err := config.LoadOrDefault(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	// stdout milik TUI, log hanya ke file kalau TUI_LOG di-set
	var logOut io.Writer = io.Discard
	if p := os.Getenv("TUI_LOG"); p != "" {
		f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.NewJSONLogger(logOut, logging.ParseLevel(cfg.Log.Level))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	analyzer := appanalysis.NewService(application.SleepDelayer{})
	analyzer.Duration = cfg.Analysis.Delay
	analyzer.Logger = logger.With(logging.Component("analysis"))

	dash := appdashboard.NewService(catalog.Default(), analyzer)
	dash.FeedInterval = cfg.Monitoring.Interval
	dash.Logger = logger.With(logging.Component("dashboard"))

	p := tea.NewProgram(tui.New(ctx, dash), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logger.Error("tui exited", logging.Error(err))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
