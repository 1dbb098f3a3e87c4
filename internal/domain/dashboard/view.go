package dashboard

import (
	"time"

	"github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/analysis"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/threat"
)

// View is the rendered output of one mode. The set of implementations is
// closed: InvestigationView, LiveMonitoringView and HistoricalView.
type View interface {
	Mode() Mode
	view()
}

// TimelineEntry satu baris tabel rekonstruksi serangan
type TimelineEntry struct {
	Offset         string `json:"time"`
	AttackerAction string `json:"attacker_action"`
	SystemResponse string `json:"system_response"`
}

// Metric is a headline value with its delta annotation.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta"`
}

// DailyCount is one point of the historical series.
type DailyCount struct {
	Date    time.Time `json:"date"`
	Threats int       `json:"threats_detected"`
}

// FeedLine is one entry of the live monitoring feed.
type FeedLine struct {
	Sector int       `json:"sector"`
	Time   time.Time `json:"time"`
	Text   string    `json:"text"`
}

// AnalysisRun groups what is shown after "Run Analysis" was triggered.
type AnalysisRun struct {
	ID           string          `json:"id"`
	Result       analysis.Result `json:"result"`
	ReportedTime string          `json:"analysis_time"`
	Timeline     []TimelineEntry `json:"timeline"`
}

type InvestigationView struct {
	Scenario threat.Scenario `json:"scenario"`
	Analysis *AnalysisRun    `json:"analysis,omitempty"`
}

type LiveMonitoringView struct {
	Metrics []Metric `json:"metrics"`
}

type HistoricalView struct {
	Series     []DailyCount `json:"series"`
	Commentary string       `json:"commentary"`
}

func (*InvestigationView) Mode() Mode  { return ModeInvestigation }
func (*LiveMonitoringView) Mode() Mode { return ModeLiveMonitoring }
func (*HistoricalView) Mode() Mode     { return ModeHistoricalAnalysis }

func (*InvestigationView) view()  {}
func (*LiveMonitoringView) view() {}
func (*HistoricalView) view()     {}
