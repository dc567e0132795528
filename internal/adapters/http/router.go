// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/page-template-admin/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	pageHandler *handlers.PageHandler,
	templateHandler *handlers.TemplateHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Template registry.
		r.Get("/templates", templateHandler.ListTemplates)
		r.Get("/templates/{key}", templateHandler.GetTemplate)

		// Page form: choices for the create and edit forms, then submit.
		r.Get("/pages/choices", pageHandler.CreateChoices)
		r.Get("/pages/{id}/choices", pageHandler.EditChoices)
		r.Post("/pages", pageHandler.CreatePage)
		r.Put("/pages/{id}", pageHandler.UpdatePage)

		// Tree move.
		r.Post("/pages/{id}/move", pageHandler.MovePage)

		r.Get("/pages", pageHandler.ListPages)
		r.Get("/pages/{id}", pageHandler.GetPage)
		r.Delete("/pages/{id}", pageHandler.DeletePage)
	})

	return r
}
