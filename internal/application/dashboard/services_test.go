package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/cyberdefense-reasoning/internal/application"
	appanalysis "github.com/bryanwahyu/cyberdefense-reasoning/internal/application/analysis"
	domain "github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/dashboard"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/threat"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/infra/catalog"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/logging"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/metrics"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestService() *Service {
	svc := NewService(catalog.Default(), appanalysis.NewService(application.NoDelay{}))
	svc.Delay = application.NoDelay{}
	svc.Clock = fixedClock{t: time.Date(2024, 10, 26, 14, 3, 9, 0, time.Local)}
	return svc
}

func TestRenderDefaultsToInvestigation(t *testing.T) {
	svc := newTestService()

	v, err := svc.Render(context.Background(), Selection{})
	require.NoError(t, err)

	inv, ok := v.(*domain.InvestigationView)
	require.True(t, ok, "got %T", v)
	assert.Equal(t, catalog.PhishingEmailCampaign, inv.Scenario.Name)
	assert.Nil(t, inv.Analysis, "analysis must not run without a trigger")
}

func TestRenderInvestigationEndToEnd(t *testing.T) {
	svc := newTestService()

	v, err := svc.Render(context.Background(), Selection{
		Mode:        domain.ModeInvestigation,
		Scenario:    catalog.DataExfiltrationAttempt,
		RunAnalysis: true,
	})
	require.NoError(t, err)

	inv := v.(*domain.InvestigationView)
	require.NotNil(t, inv.Analysis)
	assert.NotEmpty(t, inv.Analysis.ID)
	assert.True(t, strings.HasPrefix(inv.Analysis.Result.Reasoning,
		"The attacker chose this exfiltration method because: 1) Off-hours reduce detection probability"))
	assert.Equal(t, "Block unauthorized cloud services, implement DLP policies, monitor admin account usage",
		inv.Analysis.Result.Recommendations)
	assert.Equal(t, 0.87, inv.Analysis.Result.Confidence)
	assert.Equal(t, "2.3s", inv.Analysis.ReportedTime)
	assert.Len(t, inv.Analysis.Timeline, 5)
	assert.Equal(t, []string{"Volume: 2.5GB", "Destination: dropbox.com", "Time: 2:30 AM", "User: admin_backup"}, inv.Scenario.Indicators)
}

func TestRenderUnknownScenario(t *testing.T) {
	reg := metrics.NewRegistry()
	svc := newTestService()
	svc.Metrics = reg

	_, err := svc.Render(context.Background(), Selection{Scenario: "nonexistent-key", RunAnalysis: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, threat.ErrNotFound))

	var m dto.Metric
	require.NoError(t, reg.LookupFailures.Write(&m))
	assert.Equal(t, 1.0, m.GetCounter().GetValue())
}

func TestRenderInvalidMode(t *testing.T) {
	_, err := newTestService().Render(context.Background(), Selection{Mode: "forensics"})
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
}

func TestRenderLiveMonitoring(t *testing.T) {
	v, err := newTestService().Render(context.Background(), Selection{Mode: domain.ModeLiveMonitoring})
	require.NoError(t, err)

	live := v.(*domain.LiveMonitoringView)
	require.Len(t, live.Metrics, 4)
	assert.Equal(t, "Active Threats", live.Metrics[0].Label)
}

func TestRenderHistorical(t *testing.T) {
	v, err := newTestService().Render(context.Background(), Selection{Mode: domain.ModeHistoricalAnalysis})
	require.NoError(t, err)

	hist := v.(*domain.HistoricalView)
	assert.Len(t, hist.Series, 26)
	assert.Equal(t, 5, hist.Series[0].Threats)
	assert.Equal(t, 4, hist.Series[25].Threats)
	assert.Contains(t, hist.Commentary, "23% increase")
}

func TestInvestigateCancelled(t *testing.T) {
	svc := NewService(catalog.Default(), appanalysis.NewService(application.SleepDelayer{}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Investigate(ctx, catalog.LateralMovementDetected, true)
	assert.ErrorIs(t, err, context.Canceled)

	// viewing without a trigger never waits
	v, err := svc.Investigate(ctx, catalog.LateralMovementDetected, false)
	require.NoError(t, err)
	assert.Equal(t, catalog.LateralMovementDetected, v.Scenario.Name)
}

func TestDefaultScenarioEmptyCatalog(t *testing.T) {
	empty, err := catalog.NewStatic()
	require.NoError(t, err)
	svc := NewService(empty, appanalysis.NewService(application.NoDelay{}))

	_, err = svc.Investigate(context.Background(), "", false)
	assert.ErrorIs(t, err, threat.ErrNotFound)
}

func TestInvestigateLogsRun(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService()
	svc.Logger = logging.NewJSONLogger(&buf, logging.InfoLevel)

	v, err := svc.Investigate(context.Background(), catalog.PhishingEmailCampaign, true)
	require.NoError(t, err)

	var entry logging.LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "analysis run", entry.Message)
	assert.Equal(t, v.Analysis.ID, entry.Fields["run_id"])
	assert.Equal(t, "HIGH", entry.Fields["risk_level"])
	assert.Equal(t, 0.87, entry.Fields["confidence"])
}
