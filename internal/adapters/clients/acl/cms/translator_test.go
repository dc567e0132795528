package cms_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/page-template-admin/internal/adapters/clients/acl/cms"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
)

func TestToDomainPage(t *testing.T) {
	t.Parallel()

	parent := int64(3)
	dto := &cms.PageDTO{
		ID: 7, Title: "About", Slug: "about", Template: "internalpage",
		Parent: &parent, Position: 2,
		CreatedAt: "2025-03-01T10:00:00Z", UpdatedAt: "2025-03-02T10:00:00Z",
	}

	got := cms.ToDomainPage(dto)

	if got.ID != 7 || got.TemplateKey != "internalpage" || got.SortOrder != 2 {
		t.Errorf("ToDomainPage() = %+v", got)
	}
	if got.ParentID == nil || *got.ParentID != 3 {
		t.Errorf("ParentID = %v, want 3", got.ParentID)
	}
	want := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	if !got.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want)
	}
}

func TestToDomainPage_BadTimestamps(t *testing.T) {
	t.Parallel()

	got := cms.ToDomainPage(&cms.PageDTO{ID: 1, CreatedAt: "yesterday"})
	if !got.CreatedAt.IsZero() {
		t.Errorf("CreatedAt = %v, want zero for unparseable timestamp", got.CreatedAt)
	}
}

func TestToWritePageRequest(t *testing.T) {
	t.Parallel()

	p := &page.Page{Title: "Home", Slug: "home", TemplateKey: "homepage"}
	got := cms.ToWritePageRequest(p, true)

	if got.Template != "homepage" || !got.ClaimUnique || got.Parent != nil {
		t.Errorf("ToWritePageRequest() = %+v", got)
	}
}

func TestToMoveRequest(t *testing.T) {
	t.Parallel()

	got := cms.ToMoveRequest(9, page.PositionRight)
	if got.Target != 9 || got.Position != "right" {
		t.Errorf("ToMoveRequest() = %+v", got)
	}
}
