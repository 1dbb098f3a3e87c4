package dashboard

import "strings"

// Mode enum, satu mode aktif per render
type Mode string

const (
	ModeInvestigation      Mode = "investigation"
	ModeLiveMonitoring     Mode = "live-monitoring"
	ModeHistoricalAnalysis Mode = "historical-analysis"
)

// DefaultMode is selected when the caller does not pick one.
const DefaultMode = ModeInvestigation

var modeTitles = map[Mode]string{
	ModeInvestigation:      "Threat Investigation",
	ModeLiveMonitoring:     "Live Monitoring",
	ModeHistoricalAnalysis: "Historical Analysis",
}

// Modes returns every mode in selector order.
func Modes() []Mode {
	return []Mode{ModeInvestigation, ModeLiveMonitoring, ModeHistoricalAnalysis}
}

// Title is the human label used by the selector.
func (m Mode) Title() string {
	return modeTitles[m]
}

func (m Mode) Valid() bool {
	_, ok := modeTitles[m]
	return ok
}

// ParseMode accepts a mode key or its title, case-insensitively.
// An empty string selects DefaultMode.
func ParseMode(s string) (Mode, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return DefaultMode, nil
	}
	for _, m := range Modes() {
		if strings.EqualFold(v, string(m)) || strings.EqualFold(v, m.Title()) {
			return m, nil
		}
	}
	return "", &InvalidSelectionError{Field: "mode", Value: s}
}
