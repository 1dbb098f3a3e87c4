// Package tui is the terminal rendition of the dashboard: a mode selector,
// the scenario picker with its mock analysis, the live feed and the
// historical chart.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appdashboard "github.com/bryanwahyu/cyberdefense-reasoning/internal/application/dashboard"
	domain "github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/dashboard"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/threat"
)

// AnalyzingText is shown next to the spinner while the engine runs.
const AnalyzingText = "AI analyzing attacker psychology and motivations..."

// Model holds only UI state: selected mode, selected scenario and whatever
// the last analysis or feed produced.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	dash   *appdashboard.Service

	modes     []domain.Mode
	modeIdx   int
	scenarios []threat.ScenarioName
	cursor    int

	investigation *domain.InvestigationView
	analyzing     bool
	spinner       spinner.Model
	timeline      table.Model

	feed     *appdashboard.Feed
	lastLine *domain.FeedLine // single display slot, each line replaces the previous

	help   help.Model
	keys   keyMap
	width  int
	height int
	err    error
}

type analysisDoneMsg struct {
	view *domain.InvestigationView
	err  error
}

type feedLineMsg struct {
	feed *appdashboard.Feed
	line domain.FeedLine
}

type feedEndMsg struct {
	feed *appdashboard.Feed
	err  error // nil when the feed ran to completion
}

// New builds the initial model. The context bounds every analysis wait and
// feed interval; quitting cancels it.
func New(ctx context.Context, dash *appdashboard.Service) Model {
	ctx, cancel := context.WithCancel(ctx)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = infoStyle

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Time", Width: 9},
			{Title: "Attacker Action", Width: 22},
			{Title: "System Response", Width: 24},
		}),
		table.WithHeight(len(domain.Timeline())+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#1f77b4")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	m := Model{
		ctx:       ctx,
		cancel:    cancel,
		dash:      dash,
		modes:     domain.Modes(),
		scenarios: dash.Scenarios(),
		spinner:   sp,
		timeline:  t,
		help:      help.New(),
		keys:      keys,
	}
	m.loadScenario()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Mode is the currently selected display mode.
func (m Model) Mode() domain.Mode {
	return m.modes[m.modeIdx]
}

// SelectedScenario is the scenario under the cursor, empty when the catalog
// has none.
func (m Model) SelectedScenario() threat.ScenarioName {
	if len(m.scenarios) == 0 {
		return ""
	}
	return m.scenarios[m.cursor]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.analyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case analysisDoneMsg:
		m.analyzing = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		// hasil lama dibuang kalau user sudah pindah scenario
		if msg.view.Scenario.Name != m.SelectedScenario() {
			return m, nil
		}
		m.investigation = msg.view
		m.timeline.SetRows(timelineRows(msg.view.Analysis))
		m.err = nil

	case feedLineMsg:
		if msg.feed != m.feed {
			return m, nil
		}
		line := msg.line
		m.lastLine = &line
		return m, nextFeedLine(m.ctx, msg.feed)

	case feedEndMsg:
		if msg.feed != m.feed {
			return m, nil
		}
		m.feed = nil
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.err = msg.err
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Tab):
		m.switchMode((m.modeIdx + 1) % len(m.modes))

	case key.Matches(msg, m.keys.ShiftTab):
		m.switchMode((m.modeIdx + len(m.modes) - 1) % len(m.modes))

	case key.Matches(msg, m.keys.Up):
		if m.Mode() == domain.ModeInvestigation && m.cursor > 0 {
			m.cursor--
			m.loadScenario()
		}

	case key.Matches(msg, m.keys.Down):
		if m.Mode() == domain.ModeInvestigation && m.cursor < len(m.scenarios)-1 {
			m.cursor++
			m.loadScenario()
		}

	case key.Matches(msg, m.keys.Enter):
		switch m.Mode() {
		case domain.ModeInvestigation:
			if m.analyzing || len(m.scenarios) == 0 {
				return m, nil
			}
			m.analyzing = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, runAnalysis(m.ctx, m.dash, m.SelectedScenario()))
		case domain.ModeLiveMonitoring:
			if m.feed != nil {
				return m, nil
			}
			m.feed = m.dash.StartFeed()
			m.lastLine = nil
			m.err = nil
			return m, nextFeedLine(m.ctx, m.feed)
		}
	}

	return m, nil
}

// switchMode changes the active mode. Leaving live monitoring abandons the
// running feed; its pending line is dropped when it arrives.
func (m *Model) switchMode(idx int) {
	if m.modes[idx] != domain.ModeLiveMonitoring {
		m.feed = nil
	}
	m.modeIdx = idx
	m.err = nil
}

// loadScenario shows the selected scenario without analysis, the same as a
// fresh selection on the control panel.
func (m *Model) loadScenario() {
	m.investigation = nil
	m.timeline.SetRows(nil)
	name := m.SelectedScenario()
	if name == "" {
		return
	}
	v, err := m.dash.Investigate(m.ctx, name, false)
	if err != nil {
		m.err = err
		return
	}
	m.investigation = v
}

func runAnalysis(ctx context.Context, dash *appdashboard.Service, name threat.ScenarioName) tea.Cmd {
	return func() tea.Msg {
		v, err := dash.Investigate(ctx, name, true)
		return analysisDoneMsg{view: v, err: err}
	}
}

func nextFeedLine(ctx context.Context, feed *appdashboard.Feed) tea.Cmd {
	return func() tea.Msg {
		line, err := feed.Next(ctx)
		if errors.Is(err, appdashboard.ErrFeedExhausted) {
			return feedEndMsg{feed: feed}
		}
		if err != nil {
			return feedEndMsg{feed: feed, err: err}
		}
		return feedLineMsg{feed: feed, line: line}
	}
}

func timelineRows(run *domain.AnalysisRun) []table.Row {
	if run == nil {
		return nil
	}
	rows := make([]table.Row, 0, len(run.Timeline))
	for _, e := range run.Timeline {
		rows = append(rows, table.Row{e.Offset, e.AttackerAction, e.SystemResponse})
	}
	return rows
}
