package threat

// Catalog port (read-only lookup of seeded scenarios)
type Catalog interface {
	Lookup(name ScenarioName) (Scenario, error)
	// Names returns keys in seed order; the first one is the default selection.
	Names() []ScenarioName
}
