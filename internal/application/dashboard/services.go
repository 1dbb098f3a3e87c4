package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bryanwahyu/cyberdefense-reasoning/internal/application"
	domanalysis "github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/analysis"
	domain "github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/dashboard"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/threat"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/logging"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/metrics"
)

// Service is the mode controller. It keeps no state between calls: every
// render recomputes the selected mode from the catalog and the seed data.
type Service struct {
	Catalog      threat.Catalog
	Analyzer     domanalysis.Analyzer
	Clock        application.Clock
	Delay        application.Delayer
	FeedInterval time.Duration
	Metrics      *metrics.Registry // optional
	Logger       logging.Logger
}

// Selection is what the user picked on the control panel.
type Selection struct {
	Mode        domain.Mode
	Scenario    threat.ScenarioName
	RunAnalysis bool
}

// NewService wires the controller with real-time defaults.
func NewService(catalog threat.Catalog, analyzer domanalysis.Analyzer) *Service {
	return &Service{
		Catalog:      catalog,
		Analyzer:     analyzer,
		Clock:        application.SystemClock{},
		Delay:        application.SleepDelayer{},
		FeedInterval: DefaultFeedInterval,
		Logger:       logging.NopLogger{},
	}
}

// Render produces the view for the selected mode.
func (s *Service) Render(ctx context.Context, sel Selection) (domain.View, error) {
	mode := sel.Mode
	if mode == "" {
		mode = domain.DefaultMode
	}

	switch mode {
	case domain.ModeInvestigation:
		return s.Investigate(ctx, sel.Scenario, sel.RunAnalysis)
	case domain.ModeLiveMonitoring:
		return s.LiveMonitoring(), nil
	case domain.ModeHistoricalAnalysis:
		return s.Historical(), nil
	default:
		return nil, &domain.InvalidSelectionError{Field: "mode", Value: string(mode)}
	}
}

// Scenarios lists the selectable scenario names.
func (s *Service) Scenarios() []threat.ScenarioName {
	return s.Catalog.Names()
}

// DefaultScenario is the first catalog key.
func (s *Service) DefaultScenario() (threat.ScenarioName, error) {
	names := s.Catalog.Names()
	if len(names) == 0 {
		return "", fmt.Errorf("catalog is empty: %w", threat.ErrNotFound)
	}
	return names[0], nil
}

// Lookup finds one scenario.
func (s *Service) Lookup(name threat.ScenarioName) (threat.Scenario, error) {
	sc, err := s.Catalog.Lookup(name)
	if err != nil {
		if s.Metrics != nil && errors.Is(err, threat.ErrNotFound) {
			s.Metrics.RecordLookupFailure()
		}
		return threat.Scenario{}, err
	}
	return sc, nil
}

// Investigate renders the investigation mode. An empty name selects the
// default scenario. With run set, the mock engine is invoked and the fixed
// timeline attached.
func (s *Service) Investigate(ctx context.Context, name threat.ScenarioName, run bool) (*domain.InvestigationView, error) {
	if name == "" {
		def, err := s.DefaultScenario()
		if err != nil {
			return nil, err
		}
		name = def
	}

	sc, err := s.Lookup(name)
	if err != nil {
		return nil, err
	}

	view := &domain.InvestigationView{Scenario: sc}
	if !run {
		return view, nil
	}

	runID := uuid.NewString()
	res, err := s.Analyzer.Analyze(ctx, sc)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("analysis run",
		logging.RunID(runID),
		logging.Scenario(string(sc.Name)),
		logging.String("risk_level", string(res.RiskLevel)),
		logging.Float64("confidence", res.Confidence),
	)

	view.Analysis = &domain.AnalysisRun{
		ID:           runID,
		Result:       res,
		ReportedTime: domain.ReportedAnalysisTime,
		Timeline:     domain.Timeline(),
	}
	return view, nil
}

// LiveMonitoring renders the static headline metrics.
func (s *Service) LiveMonitoring() *domain.LiveMonitoringView {
	return &domain.LiveMonitoringView{Metrics: domain.LiveMetrics()}
}

// Historical renders the daily series and its commentary.
func (s *Service) Historical() *domain.HistoricalView {
	return &domain.HistoricalView{
		Series:     domain.HistorySeries(),
		Commentary: domain.TrendCommentary,
	}
}

// StartFeed begins a fresh live monitoring run.
func (s *Service) StartFeed() *Feed {
	f := &Feed{
		ID:       uuid.NewString(),
		clock:    s.Clock,
		delay:    s.Delay,
		interval: s.FeedInterval,
		metrics:  s.Metrics,
	}
	if s.Metrics != nil {
		s.Metrics.RecordFeedSession()
	}
	s.Logger.Debug("live feed started", logging.String("feed_id", f.ID))
	return f
}
