package analysis

import (
	"fmt"
	"math"
)

// RiskLevel enum
type RiskLevel string

const (
	RiskHigh RiskLevel = "HIGH"
)

// FixedConfidence is reported for every scenario. There is no scoring model
// behind it.
const FixedConfidence = 0.87

// Result value object, produced per trigger and never stored
type Result struct {
	Confidence      float64   `json:"confidence"`
	RiskLevel       RiskLevel `json:"risk_level"`
	Reasoning       string    `json:"reasoning"`
	Recommendations string    `json:"recommendations"`
}

// ConfidencePercent formats confidence as a whole percentage, e.g. "87%".
func (r Result) ConfidencePercent() string {
	return fmt.Sprintf("%d%%", int(math.Round(r.Confidence*100)))
}
