package ports

import (
	"context"

	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
)

// PageAdminService defines the service port for the page admin surface.
// Implemented by the application layer; called by inbound adapters.
// Every operation that assigns or moves a template runs the template
// validator first.
type PageAdminService interface {
	// ListTemplates returns the registered templates in registration order.
	ListTemplates(ctx context.Context) []template.Template

	// GetTemplate returns a registered template by key.
	// Returns domain.ErrNotFound if the key is not registered.
	GetTemplate(ctx context.Context, key string) (template.Template, error)

	// TemplateChoices returns the templates the page form may offer. A nil
	// instanceID means the create form; a nil parentID on the edit form
	// keeps the instance's current parent.
	// Returns domain.ErrNotFound if the instance or parent does not exist.
	TemplateChoices(ctx context.Context, instanceID, parentID *int64) (*Choices, error)

	// SubmitPage validates and persists a submitted page form.
	// Returns a *domain.ValidationError for field and template rule
	// failures, domain.ErrNotFound for an unknown instance or parent, and
	// domain.ErrConflict when storage rejects a concurrent unique claim.
	SubmitPage(ctx context.Context, form PageForm) (*page.Page, error)

	// MovePage moves a page relative to target after checking that its
	// template is legal in the new position.
	// Returns a *template.RuleError if the template rejects the move.
	MovePage(ctx context.Context, id, targetID int64, pos page.Position) (*page.Page, error)

	// GetPage returns a single page by ID.
	// Returns domain.ErrNotFound if the page does not exist.
	GetPage(ctx context.Context, id int64) (*page.Page, error)

	// ListPages returns every page in tree order.
	ListPages(ctx context.Context) ([]page.Page, error)

	// DeletePage removes a page and its descendants.
	// Returns domain.ErrNotFound if the page does not exist.
	DeletePage(ctx context.Context, id int64) error
}

// PageForm is a submitted create or edit form. ID is nil when creating.
type PageForm struct {
	ID          *int64
	Title       string
	Slug        string
	TemplateKey string
	ParentID    *int64
}

// Choices are the template options of a page form. Default is the key
// preselected by the form, empty when no template is legal.
type Choices struct {
	Templates []template.Template
	Default   string
}
