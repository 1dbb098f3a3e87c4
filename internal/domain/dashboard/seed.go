package dashboard

import (
	"fmt"
	"slices"
	"time"
)

// Illustrative content. Nothing here is computed; accessors return fresh
// copies so the package-level values are never written to.

// ReportedAnalysisTime is the static "Analysis Time" figure shown with a result.
const ReportedAnalysisTime = "2.3s"

// TrendCommentary accompanies the historical chart.
const TrendCommentary = "AI has identified a 23% increase in sophisticated attacks over the past week, with adversaries adapting to previous countermeasures."

// FeedLineFormat renders one live feed line from a wall-clock stamp and sector.
const FeedLineFormat = "[%s] Analyzing network traffic... Adversarial pattern detected in sector %d"

var timeline = []TimelineEntry{
	{Offset: "T-30min", AttackerAction: "Reconnaissance", SystemResponse: "Normal"},
	{Offset: "T-15min", AttackerAction: "Initial Access", SystemResponse: "Alert Generated"},
	{Offset: "T-5min", AttackerAction: "Persistence", SystemResponse: "Suspicious Activity"},
	{Offset: "T-0min", AttackerAction: "Privilege Escalation", SystemResponse: "Critical Alert"},
	{Offset: "T+10min", AttackerAction: "Data Access", SystemResponse: "Investigation Started"},
}

var liveMetrics = []Metric{
	{Label: "Active Threats", Value: "3", Delta: "↑1"},
	{Label: "Analysis Speed", Value: "1.2s", Delta: "↓0.3s"},
	{Label: "Accuracy Rate", Value: "94.2%", Delta: "↑2.1%"},
	{Label: "Threats Blocked", Value: "127", Delta: "↑15"},
}

var historyStart = time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)

var historyCounts = []int{5, 8, 12, 3, 15, 7, 9, 11, 6, 14, 4, 13, 8, 10, 16, 5, 7, 9, 12, 6, 8, 11, 13, 7, 9, 4}

// Timeline returns the 5-row attack timeline.
func Timeline() []TimelineEntry {
	return slices.Clone(timeline)
}

// LiveMetrics returns the four headline values of the monitoring mode.
func LiveMetrics() []Metric {
	return slices.Clone(liveMetrics)
}

// HistorySeries returns one point per day from 2024-10-01 to 2024-10-26.
func HistorySeries() []DailyCount {
	out := make([]DailyCount, len(historyCounts))
	for i, n := range historyCounts {
		out[i] = DailyCount{Date: historyStart.AddDate(0, 0, i), Threats: n}
	}
	return out
}

// FormatFeedLine builds the text of a feed entry.
func FormatFeedLine(at time.Time, sector int) string {
	return fmt.Sprintf(FeedLineFormat, at.Format(time.TimeOnly), sector)
}
