package template_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jsamuelsen11/page-template-admin/internal/domain"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
)

func regions() []template.Region {
	return []template.Region{{Key: "main", Title: "Main Content"}}
}

var (
	internalPage = template.Template{
		Key: "internalpage", Title: "Internal Page", Path: "pages/internal.html", Regions: regions(),
	}
	homePage = template.Template{
		Key: "homepage", Title: "Home Page", Path: "pages/home_page.html", Regions: regions(), Unique: true,
	}
	landingPage = template.Template{
		Key: "landingpage", Title: "Landing Page", Path: "pages/landing.html", Regions: regions(), FirstLevelOnly: true,
	}
	leafPage = template.Template{
		Key: "leafpage", Title: "Leaf Page", Path: "pages/leaf.html", Regions: regions(), NoChildren: true,
	}
)

func newRegistry(t *testing.T, templates ...template.Template) *template.Registry {
	t.Helper()
	reg := template.NewRegistry()
	if err := reg.Register(templates...); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return reg
}

// fakeTree is a map-backed template.Tree for validator tests.
type fakeTree struct {
	pages map[int64]*page.Page
}

func newFakeTree(pages ...*page.Page) *fakeTree {
	ft := &fakeTree{pages: make(map[int64]*page.Page)}
	for _, p := range pages {
		ft.pages[p.ID] = p
	}
	return ft
}

func (f *fakeTree) Page(_ context.Context, id int64) (*page.Page, error) {
	p, ok := f.pages[id]
	if !ok {
		return nil, fmt.Errorf("page %d: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (f *fakeTree) CountByTemplate(_ context.Context, key string, excludeID int64) (int, error) {
	n := 0
	for id, p := range f.pages {
		if id != excludeID && p.TemplateKey == key {
			n++
		}
	}
	return n, nil
}

func (f *fakeTree) CountChildren(_ context.Context, id int64) (int, error) {
	n := 0
	for _, p := range f.pages {
		if p.ParentID != nil && *p.ParentID == id {
			n++
		}
	}
	return n, nil
}

func pg(id int64, key string, parent *int64) *page.Page {
	return &page.Page{ID: id, Title: fmt.Sprintf("Page %d", id), Slug: fmt.Sprintf("page-%d", id), TemplateKey: key, ParentID: parent}
}

func ptr(v int64) *int64 { return &v }

func templateKeys(ts []template.Template) []string {
	keys := make([]string, len(ts))
	for i, t := range ts {
		keys[i] = t.Key
	}
	return keys
}
