package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/lifepath/projector/internal/calculation"
	"github.com/lifepath/projector/internal/domain"
	"github.com/lifepath/projector/internal/output"
	"github.com/lifepath/projector/internal/service"
	"github.com/lifepath/projector/internal/store"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	svc      *service.Service
	defaults domain.SimulationParameters
	output   output.Options
	log      logrus.FieldLogger
}

// NewHandler creates a handler over svc. Requests that omit parameters run
// with defaults.
func NewHandler(svc *service.Service, defaults domain.SimulationParameters, opts output.Options, log logrus.FieldLogger) *Handler {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Handler{svc: svc, defaults: defaults, output: opts, log: log}
}

// Health reports liveness.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListScenarios returns all stored scenarios in creation order.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.svc.ListScenarios(r.Context())
	if err != nil {
		h.fail(w, r, "Failed to list scenarios", err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse[domain.Scenario]{Items: scenarios, Count: len(scenarios)})
}

// CreateScenario stores a new scenario with a fresh id.
// POST /api/scenarios
func (h *Handler) CreateScenario(w http.ResponseWriter, r *http.Request) {
	var sc domain.Scenario
	if err := decodeBody(w, r, &sc, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	created, err := h.svc.CreateScenario(r.Context(), sc)
	if err != nil {
		h.fail(w, r, "Failed to create scenario", err)
		return
	}
	w.Header().Set("Location", "/api/scenarios/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

// GetScenario returns one scenario.
// GET /api/scenarios/{id}
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	sc, err := h.svc.GetScenario(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "Failed to get scenario", err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

// UpdateScenario replaces a scenario's content, keeping its id.
// PUT /api/scenarios/{id}
func (h *Handler) UpdateScenario(w http.ResponseWriter, r *http.Request) {
	var sc domain.Scenario
	if err := decodeBody(w, r, &sc, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	updated, err := h.svc.UpdateScenario(r.Context(), chi.URLParam(r, "id"), sc)
	if err != nil {
		h.fail(w, r, "Failed to update scenario", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteScenario removes a scenario.
// DELETE /api/scenarios/{id}
func (h *Handler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteScenario(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "Failed to delete scenario", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SimulateScenario runs a stored scenario. The body is optional.
// POST /api/scenarios/{id}/simulate
func (h *Handler) SimulateScenario(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := decodeBody(w, r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	report, err := h.svc.Simulate(r.Context(), chi.URLParam(r, "id"), req.Parameters.apply(h.defaults))
	if err != nil {
		h.fail(w, r, "Simulation failed", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// SweepScenario runs a sensitivity analysis on a stored scenario.
// POST /api/scenarios/{id}/sweep
func (h *Handler) SweepScenario(w http.ResponseWriter, r *http.Request) {
	var req SweepRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	values := req.Values
	if len(values) == 0 && req.From != nil && req.To != nil && req.Step != nil {
		var err error
		if values, err = calculation.SweepRange(*req.From, *req.To, *req.Step, h.svc.Limits().MaxSweepPoints); err != nil {
			h.fail(w, r, "Sweep failed", err)
			return
		}
	}
	sweep, err := h.svc.Sweep(r.Context(), chi.URLParam(r, "id"), req.Parameters.apply(h.defaults), req.Parameter, values)
	if err != nil {
		h.fail(w, r, "Sweep failed", err)
		return
	}
	writeJSON(w, http.StatusOK, sweep)
}

// CompareScenarios compares two stored or inline scenarios.
// POST /api/compare
func (h *Handler) CompareScenarios(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	params := req.Parameters.apply(h.defaults)

	var (
		report *domain.Report
		err    error
	)
	switch {
	case req.FirstID != "" && req.SecondID != "":
		report, err = h.svc.Compare(r.Context(), req.FirstID, req.SecondID, params)
	case req.First != nil && req.Second != nil:
		report, err = h.svc.CompareScenarios(req.First, req.Second, params)
	default:
		writeError(w, http.StatusBadRequest, "Invalid request body", errors.New("provide first_id and second_id, or first and second scenarios"))
		return
	}
	if err != nil {
		h.fail(w, r, "Comparison failed", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// ExportScenario simulates a stored scenario and returns the report as a
// downloadable document. Parameters come from the query string.
// GET /api/scenarios/{id}/export?format=json&years=30
func (h *Handler) ExportScenario(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = "json"
	}
	f, err := output.NewFormatter(format, h.output)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unsupported format", err)
		return
	}
	params, err := queryParameters(q.Get, h.defaults)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	id := chi.URLParam(r, "id")
	report, err := h.svc.Simulate(r.Context(), id, params)
	if err != nil {
		h.fail(w, r, "Export failed", err)
		return
	}
	data, err := f.Format(report)
	if err != nil {
		h.fail(w, r, "Export failed", err)
		return
	}

	w.Header().Set("Content-Type", output.ContentType(f.Name()))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, exportName(report, id), output.Extension(f.Name())))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// queryParameters overlays years, inflation_rate and tax_rate query values on base.
func queryParameters(get func(string) string, base domain.SimulationParameters) (domain.SimulationParameters, error) {
	if v := get("years"); v != "" {
		years, err := strconv.Atoi(v)
		if err != nil {
			return base, fmt.Errorf("years: %w", err)
		}
		base.Years = years
	}
	for key, dst := range map[string]*decimal.Decimal{"inflation_rate": &base.InflationRate, "tax_rate": &base.TaxRate} {
		if v := get(key); v != "" {
			d, err := decimal.NewFromString(v)
			if err != nil {
				return base, fmt.Errorf("%s: %w", key, err)
			}
			*dst = d
		}
	}
	return base, nil
}

// exportName is a filesystem-friendly slug of the scenario name, or its id.
func exportName(report *domain.Report, id string) string {
	if len(report.Runs) == 0 {
		return id
	}
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, strings.TrimSpace(report.Runs[0].Scenario.Name))
	if strings.Trim(slug, "_") == "" {
		return id
	}
	return slug
}

// fail maps service errors to HTTP statuses.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, message string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidScenario):
		writeError(w, http.StatusBadRequest, message, err)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, message, err)
	default:
		h.log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err.Error(),
		}).Error(message)
		writeError(w, http.StatusInternalServerError, message, err)
	}
}

// decodeBody reads a JSON body into v. An empty body is accepted when optional.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, optional bool) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		if optional {
			return nil
		}
		return errors.New("request body is empty")
	}
	return json.Unmarshal(data, v)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
