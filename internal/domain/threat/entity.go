package threat

import "slices"

// ScenarioName key unik di catalog
type ScenarioName string

// Scenario is a canned threat scenario shown by the dashboard.
// Reasoning and mitigation are static text, never derived from indicators.
type Scenario struct {
	Name                 ScenarioName `json:"name"`
	Description          string       `json:"description"`
	Indicators           []string     `json:"indicators"`
	AdversarialReasoning string       `json:"adversarial_reasoning"`
	Mitigation           string       `json:"mitigation"`
}

// Clone returns a deep copy so callers cannot mutate catalog state.
func (s Scenario) Clone() Scenario {
	s.Indicators = slices.Clone(s.Indicators)
	return s
}
