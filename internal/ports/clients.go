package ports

import (
	"context"

	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
)

// PageTree is the client port for the page tree storage backend.
// Implemented by the memstore, sqlite and CMS adapters; called by the
// application layer. The embedded template.Tree is the read view the
// template validator needs.
type PageTree interface {
	template.Tree

	// ListPages returns every page ordered by parent, then sibling order.
	ListPages(ctx context.Context) ([]page.Page, error)

	// CreatePage persists a new page as the last child of its parent and
	// returns it with ID and timestamps assigned. When uniqueTemplate is set
	// the backend claims the template key for the page and fails with
	// domain.ErrConflict if another page already holds it.
	CreatePage(ctx context.Context, p *page.Page, uniqueTemplate bool) (*page.Page, error)

	// UpdatePage replaces title, slug, template and parent of an existing
	// page. uniqueTemplate has the same meaning as for CreatePage.
	// Returns domain.ErrNotFound if the page does not exist.
	UpdatePage(ctx context.Context, p *page.Page, uniqueTemplate bool) (*page.Page, error)

	// MovePage places the page relative to target and returns it with its
	// new parent and sort order.
	// Returns domain.ErrNotFound if either page does not exist.
	MovePage(ctx context.Context, id, targetID int64, pos page.Position) (*page.Page, error)

	// DeletePage removes a page and all of its descendants.
	// Returns domain.ErrNotFound if the page does not exist.
	DeletePage(ctx context.Context, id int64) error
}
