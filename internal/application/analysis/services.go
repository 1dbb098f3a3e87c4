package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/bryanwahyu/cyberdefense-reasoning/internal/application"
	domain "github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/analysis"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/threat"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/logging"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/metrics"
)

// DefaultDuration is how long the engine pretends to think.
const DefaultDuration = 2 * time.Second

// Service is the mock analysis engine. It never inspects the scenario beyond
// copying its reasoning and mitigation text; confidence and risk level are
// constants.
type Service struct {
	Delay    application.Delayer
	Duration time.Duration
	Metrics  *metrics.Registry // optional
	Logger   logging.Logger
}

var _ domain.Analyzer = (*Service)(nil)

// NewService returns an engine with the default simulated duration.
func NewService(delay application.Delayer) *Service {
	return &Service{
		Delay:    delay,
		Duration: DefaultDuration,
		Logger:   logging.NopLogger{},
	}
}

// Analyze waits the simulated duration, then returns the canned result.
// The only failure is ctx ending during the wait.
func (s *Service) Analyze(ctx context.Context, sc threat.Scenario) (domain.Result, error) {
	start := time.Now()

	if err := s.Delay.Wait(ctx, s.Duration); err != nil {
		s.record(sc, "cancelled", start)
		s.Logger.Warn("analysis interrupted", logging.Scenario(string(sc.Name)), logging.Error(err))
		return domain.Result{}, fmt.Errorf("analyze %q: %w", sc.Name, err)
	}

	res := domain.Result{
		Confidence:      domain.FixedConfidence,
		RiskLevel:       domain.RiskHigh,
		Reasoning:       sc.AdversarialReasoning,
		Recommendations: sc.Mitigation,
	}

	s.record(sc, "success", start)
	s.Logger.Debug("analysis completed",
		logging.Scenario(string(sc.Name)),
		logging.Latency(time.Since(start)),
	)
	return res, nil
}

func (s *Service) record(sc threat.Scenario, status string, start time.Time) {
	if s.Metrics != nil {
		s.Metrics.RecordAnalysis(string(sc.Name), status, time.Since(start))
	}
}
