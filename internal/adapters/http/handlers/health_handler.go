package handlers

import (
	"cmp"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/page-template-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

const (
	statusOK       = "ok"
	statusFailing  = "failing"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It never touches the page tree.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready: 200 when the page tree backend and
// template catalog are usable, 503 listing the failing checks otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.ReadinessResponse{Status: statusReady, Checks: make([]dto.CheckResult, 0, len(results))}
	for name, err := range results {
		check := dto.CheckResult{Name: name, Status: statusOK}
		if err != nil {
			check.Status = statusFailing
			check.Error = err.Error()
			resp.Status = statusNotReady
		}
		resp.Checks = append(resp.Checks, check)
	}
	slices.SortFunc(resp.Checks, func(a, b dto.CheckResult) int { return cmp.Compare(a.Name, b.Name) })

	code := http.StatusOK
	if resp.Status != statusReady {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}
