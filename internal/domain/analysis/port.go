package analysis

import (
	"context"

	"github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/threat"
)

// Analyzer port
type Analyzer interface {
	Analyze(ctx context.Context, s threat.Scenario) (Result, error)
}
