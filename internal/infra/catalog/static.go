package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/threat"
)

// Static is an in-memory Catalog built once and never written afterwards,
// so concurrent readers need no locking.
type Static struct {
	order  []threat.ScenarioName
	byName map[threat.ScenarioName]threat.Scenario
}

// NewStatic builds a catalog from scenarios, keeping their order.
func NewStatic(scenarios ...threat.Scenario) (*Static, error) {
	c := &Static{
		order:  make([]threat.ScenarioName, 0, len(scenarios)),
		byName: make(map[threat.ScenarioName]threat.Scenario, len(scenarios)),
	}
	for _, s := range scenarios {
		if strings.TrimSpace(string(s.Name)) == "" {
			return nil, fmt.Errorf("catalog: scenario name cannot be empty")
		}
		if _, dup := c.byName[s.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate scenario %q", s.Name)
		}
		c.order = append(c.order, s.Name)
		c.byName[s.Name] = s.Clone()
	}
	return c, nil
}

// Default returns the catalog with the seeded demo scenarios.
func Default() *Static {
	c, err := NewStatic(Seed()...)
	if err != nil {
		// seed is a literal; this only trips if someone breaks it
		panic(err)
	}
	return c
}

// Lookup implements threat.Catalog
func (c *Static) Lookup(name threat.ScenarioName) (threat.Scenario, error) {
	s, ok := c.byName[name]
	if !ok {
		return threat.Scenario{}, &threat.NotFoundError{Name: name}
	}
	return s.Clone(), nil
}

// Names implements threat.Catalog
func (c *Static) Names() []threat.ScenarioName {
	return slices.Clone(c.order)
}

// Len is the number of scenarios held.
func (c *Static) Len() int {
	return len(c.order)
}
