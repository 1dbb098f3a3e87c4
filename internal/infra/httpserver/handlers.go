package httpserver

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	appdashboard "github.com/bryanwahyu/cyberdefense-reasoning/internal/application/dashboard"
	domain "github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/dashboard"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/threat"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/middleware"
)

type modeDTO struct {
	Key     domain.Mode `json:"key"`
	Title   string      `json:"title"`
	Default bool        `json:"default"`
}

// viewEnvelope tags a rendered view with its mode
type viewEnvelope struct {
	Mode domain.Mode `json:"mode"`
	View domain.View `json:"view"`
}

// GET /v1/modes
func (r *Router) handleModes(w http.ResponseWriter, req *http.Request) error {
	modes := domain.Modes()
	out := make([]modeDTO, 0, len(modes))
	for _, m := range modes {
		out = append(out, modeDTO{Key: m, Title: m.Title(), Default: m == domain.DefaultMode})
	}
	return writeJSON(w, http.StatusOK, out)
}

// GET /v1/scenarios
func (r *Router) handleScenarios(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]any{
		"scenarios": r.dash.Scenarios(),
	})
}

// GET /v1/scenarios/{name}
func (r *Router) handleScenario(w http.ResponseWriter, req *http.Request) error {
	name, err := scenarioParam(req)
	if err != nil {
		return err
	}
	sc, err := r.dash.Lookup(name)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, sc)
}

// POST /v1/scenarios/{name}/analyze
// Blocks for the simulated analysis time, then returns scenario, result and timeline.
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	name, err := scenarioParam(req)
	if err != nil {
		return err
	}
	view, err := r.dash.Investigate(req.Context(), name, true)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, viewEnvelope{Mode: view.Mode(), View: view})
}

// GET /v1/dashboard?mode=&scenario=&analyze=
func (r *Router) handleDashboard(w http.ResponseWriter, req *http.Request) error {
	q := req.URL.Query()
	query := middleware.DashboardQuery{
		Mode:     q.Get("mode"),
		Scenario: q.Get("scenario"),
		Analyze:  q.Get("analyze"),
	}
	query, analyze, err := middleware.ValidateDashboardQuery(query)
	if err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	mode, err := domain.ParseMode(query.Mode)
	if err != nil {
		return err
	}

	view, err := r.dash.Render(req.Context(), appdashboard.Selection{
		Mode:        mode,
		Scenario:    threat.ScenarioName(query.Scenario),
		RunAnalysis: analyze,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, viewEnvelope{Mode: view.Mode(), View: view})
}

// GET /v1/monitoring
func (r *Router) handleMonitoring(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, r.dash.LiveMonitoring())
}

// GET /v1/history
func (r *Router) handleHistory(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, r.dash.Historical())
}

func scenarioParam(req *http.Request) (threat.ScenarioName, error) {
	raw := chi.URLParam(req, "name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if err := middleware.ValidateScenarioName(name); err != nil {
		return "", fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return threat.ScenarioName(name), nil
}
