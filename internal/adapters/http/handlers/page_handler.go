// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/page-template-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

// PageHandler handles the page admin endpoints: the form choice listing,
// form submission, tree moves and basic page CRUD.
type PageHandler struct {
	svc ports.PageAdminService
}

// NewPageHandler creates a new PageHandler with the given service port.
func NewPageHandler(svc ports.PageAdminService) *PageHandler {
	return &PageHandler{svc: svc}
}

// ListPages handles GET /api/v1/pages.
func (h *PageHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.svc.ListPages(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPageListResponse(pages))
}

// GetPage handles GET /api/v1/pages/{id}.
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.GetPage(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPageResponse(p))
}

// CreateChoices handles GET /api/v1/pages/choices?parent={id}.
func (h *PageHandler) CreateChoices(w http.ResponseWriter, r *http.Request) {
	parentID, err := parseOptionalQueryID(r, "parent")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.writeChoices(w, r, nil, parentID)
}

// EditChoices handles GET /api/v1/pages/{id}/choices?parent={id}. Without a
// parent parameter the page's current parent is used.
func (h *PageHandler) EditChoices(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	parentID, err := parseOptionalQueryID(r, "parent")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.writeChoices(w, r, &id, parentID)
}

func (h *PageHandler) writeChoices(w http.ResponseWriter, r *http.Request, instanceID, parentID *int64) {
	choices, err := h.svc.TemplateChoices(r.Context(), instanceID, parentID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToChoicesResponse(choices))
}

// CreatePage handles POST /api/v1/pages.
func (h *PageHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	var req dto.PageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.SubmitPage(r.Context(), toPageForm(nil, &req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToPageResponse(created))
}

// UpdatePage handles PUT /api/v1/pages/{id}.
func (h *PageHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.PageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.SubmitPage(r.Context(), toPageForm(&id, &req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPageResponse(updated))
}

// MovePage handles POST /api/v1/pages/{id}/move.
func (h *PageHandler) MovePage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	moved, err := h.svc.MovePage(r.Context(), id, req.TargetID, page.Position(req.Position))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPageResponse(moved))
}

// DeletePage handles DELETE /api/v1/pages/{id}.
func (h *PageHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeletePage(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toPageForm(id *int64, req *dto.PageRequest) ports.PageForm {
	return ports.PageForm{
		ID:          id,
		Title:       req.Title,
		Slug:        req.Slug,
		TemplateKey: req.TemplateKey,
		ParentID:    req.ParentID,
	}
}
