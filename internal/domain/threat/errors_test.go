package threat

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("lookup: %w", &NotFoundError{Name: "Ransomware"})

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), `"Ransomware"`)
}

func TestScenarioCloneDetachesIndicators(t *testing.T) {
	s := Scenario{Name: "x", Indicators: []string{"a", "b"}}
	c := s.Clone()
	c.Indicators[0] = "changed"

	assert.Equal(t, "a", s.Indicators[0])
}
