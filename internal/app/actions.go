package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/page-template-admin/internal/domain"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

var (
	_ domain.Action = (*savePageAction)(nil)
	_ domain.Action = (*movePageAction)(nil)
)

// errNoOrigin is returned when a move of a first-level page is rolled back;
// the tree offers no target to restore it against.
var errNoOrigin = errors.New("first-level page has no parent to move back under")

// savePageAction persists a validated page form. previous is nil on create.
type savePageAction struct {
	tree           ports.PageTree
	page           *page.Page
	unique         bool
	previous       *page.Page
	previousUnique bool

	result *page.Page
}

func (a *savePageAction) Execute(ctx context.Context) error {
	var (
		saved *page.Page
		err   error
	)
	if a.previous == nil {
		saved, err = a.tree.CreatePage(ctx, a.page, a.unique)
	} else {
		saved, err = a.tree.UpdatePage(ctx, a.page, a.unique)
	}
	if err != nil {
		return err
	}
	a.result = saved
	return nil
}

func (a *savePageAction) Rollback(ctx context.Context) error {
	if a.result == nil {
		return nil
	}
	if a.previous == nil {
		return a.tree.DeletePage(ctx, a.result.ID)
	}
	_, err := a.tree.UpdatePage(ctx, a.previous, a.previousUnique)
	return err
}

func (a *savePageAction) Description() string {
	if a.previous == nil {
		return fmt.Sprintf("create page %q", a.page.Slug)
	}
	return fmt.Sprintf("update page %d", a.page.ID)
}

// movePageAction moves a page within the tree. Rollback puts the page back
// under its former parent as the last child; sibling order is not restored.
type movePageAction struct {
	tree     ports.PageTree
	id       int64
	targetID int64
	pos      page.Position
	origin   *int64

	result *page.Page
}

func (a *movePageAction) Execute(ctx context.Context) error {
	moved, err := a.tree.MovePage(ctx, a.id, a.targetID, a.pos)
	if err != nil {
		return err
	}
	a.result = moved
	return nil
}

func (a *movePageAction) Rollback(ctx context.Context) error {
	if a.origin == nil {
		return errNoOrigin
	}
	_, err := a.tree.MovePage(ctx, a.id, *a.origin, page.PositionLastChild)
	return err
}

func (a *movePageAction) Description() string {
	return fmt.Sprintf("move page %d %s of page %d", a.id, a.pos, a.targetID)
}
