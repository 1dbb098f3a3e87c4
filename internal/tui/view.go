package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	domain "github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/dashboard"
)

const chartWidth = 40

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("🛡️  CyberDefense Reasoning"))
	s.WriteString("\n")
	s.WriteString(subtitleStyle.Render("AI-Powered Adversarial Threat Analysis"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n")

	var body string
	switch m.Mode() {
	case domain.ModeInvestigation:
		body = m.renderInvestigation()
	case domain.ModeLiveMonitoring:
		body = m.renderLiveMonitoring()
	case domain.ModeHistoricalAnalysis:
		body = m.renderHistorical()
	}
	s.WriteString(contentStyle.Render(body))

	if m.err != nil {
		s.WriteString("\n\n")
		s.WriteString(contentStyle.Render(errorStyle.Render("✗ " + m.err.Error())))
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return s.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.modes))
	for i, mode := range m.modes {
		if i == m.modeIdx {
			tabs = append(tabs, activeTabStyle.Render(mode.Title()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(mode.Title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderInvestigation() string {
	var s strings.Builder

	s.WriteString(labelStyle.Render("🔍 Threat Investigation Mode"))
	s.WriteString("\n\nSelect Threat Scenario:\n")
	for i, name := range m.scenarios {
		line := "  " + string(name)
		if i == m.cursor {
			line = selectedStyle.Render("▸ " + string(name))
		}
		s.WriteString(line + "\n")
	}

	if m.investigation == nil {
		return s.String()
	}
	sc := m.investigation.Scenario

	var box strings.Builder
	box.WriteString(labelStyle.Render("📋 Threat Description: "))
	box.WriteString(sc.Description)
	box.WriteString("\n")
	box.WriteString(labelStyle.Render("🔍 Key Indicators:"))
	for _, ind := range sc.Indicators {
		box.WriteString("\n• " + ind)
	}
	s.WriteString("\n")
	s.WriteString(threatBoxStyle.Render(box.String()))
	s.WriteString("\n\n")

	if m.analyzing {
		s.WriteString(m.spinner.View() + " " + AnalyzingText)
		return s.String()
	}

	run := m.investigation.Analysis
	if run == nil {
		s.WriteString(infoStyle.Render("Press enter to run adversarial analysis"))
		return s.String()
	}

	s.WriteString(successStyle.Render("✓ Analysis Complete!"))
	s.WriteString("\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		metricBox("AI Confidence", run.Result.ConfidencePercent(), ""),
		metricBox("Risk Level", string(run.Result.RiskLevel), ""),
		metricBox("Analysis Time", run.ReportedTime, ""),
	))
	s.WriteString("\n")
	s.WriteString(reasoningBoxStyle.Render(
		labelStyle.Render("🧠 Adversarial Reasoning Analysis:") + "\n" + run.Result.Reasoning,
	))
	s.WriteString("\n\n")
	s.WriteString(labelStyle.Render("🛡️ Recommended Actions:"))
	s.WriteString("\n")
	s.WriteString(infoStyle.Render(run.Result.Recommendations))
	s.WriteString("\n\n")
	s.WriteString(labelStyle.Render("⏱️ Attack Timeline Reconstruction:"))
	s.WriteString("\n")
	s.WriteString(m.timeline.View())
	return s.String()
}

func (m Model) renderLiveMonitoring() string {
	var s strings.Builder

	s.WriteString(labelStyle.Render("📡 Live Monitoring Dashboard"))
	s.WriteString("\n\n")

	live := m.dash.LiveMonitoring()
	boxes := make([]string, 0, len(live.Metrics))
	for _, mt := range live.Metrics {
		boxes = append(boxes, metricBox(mt.Label, mt.Value, mt.Delta))
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	s.WriteString("\n\n")

	s.WriteString(labelStyle.Render("🔴 Live Threat Feed:"))
	s.WriteString("\n")
	if m.lastLine != nil {
		s.WriteString(infoStyle.Render(m.lastLine.Text))
		s.WriteString("\n")
	}
	if m.feed == nil {
		s.WriteString("\nPress enter to start live monitoring")
	}
	return s.String()
}

func (m Model) renderHistorical() string {
	var s strings.Builder

	s.WriteString(labelStyle.Render("📊 Historical Threat Analysis"))
	s.WriteString("\n\n")

	hist := m.dash.Historical()
	s.WriteString(renderChart(hist.Series))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("📈 Trend Analysis:"))
	s.WriteString("\n")
	s.WriteString(infoStyle.Render(hist.Commentary))
	return s.String()
}

func metricBox(label, value, delta string) string {
	content := label + "\n" + labelStyle.Render(value)
	if delta != "" {
		content += " " + delta
	}
	return metricBoxStyle.Render(content)
}

// renderChart draws one horizontal bar per day, scaled to the busiest day.
func renderChart(series []domain.DailyCount) string {
	if len(series) == 0 {
		return ""
	}
	peak := slices.MaxFunc(series, func(a, b domain.DailyCount) int {
		return a.Threats - b.Threats
	}).Threats

	var s strings.Builder
	for _, p := range series {
		n := 0
		if peak > 0 {
			n = p.Threats * chartWidth / peak
		}
		fmt.Fprintf(&s, "%s │%s %d\n", p.Date.Format(time.DateOnly), strings.Repeat("█", n), p.Threats)
	}
	return s.String()
}
