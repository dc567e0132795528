package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/page-template-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

// TemplateHandler serves the read-only template registry.
type TemplateHandler struct {
	svc ports.PageAdminService
}

// NewTemplateHandler creates a new TemplateHandler with the given service port.
func NewTemplateHandler(svc ports.PageAdminService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

// ListTemplates handles GET /api/v1/templates.
func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToTemplateListResponse(h.svc.ListTemplates(r.Context())))
}

// GetTemplate handles GET /api/v1/templates/{key}.
func (h *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetTemplate(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTemplateResponse(t))
}
