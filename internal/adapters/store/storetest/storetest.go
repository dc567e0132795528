// Package storetest holds the behavioral suite every ports.PageTree adapter
// must pass.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/page-template-admin/internal/domain"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

// Factory returns an empty tree for one test.
type Factory func(t *testing.T) ports.PageTree

// Run executes the suite against trees built by newTree.
func Run(t *testing.T, newTree Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, tree ports.PageTree)
	}{
		{"CreateAndGet", testCreateAndGet},
		{"GetMissing", testGetMissing},
		{"CreateUnderMissingParent", testCreateUnderMissingParent},
		{"Counts", testCounts},
		{"UniqueClaim", testUniqueClaim},
		{"UniqueReleasedOnUpdate", testUniqueReleasedOnUpdate},
		{"UpdateMissing", testUpdateMissing},
		{"MoveLastChild", testMoveLastChild},
		{"MoveSiblings", testMoveSiblings},
		{"MoveIntoOwnSubtree", testMoveIntoOwnSubtree},
		{"DeleteCascades", testDeleteCascades},
		{"ListTreeOrder", testListTreeOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newTree(t))
		})
	}
}

func create(t *testing.T, tree ports.PageTree, slug, key string, parent *int64, unique bool) *page.Page {
	t.Helper()
	p, err := tree.CreatePage(context.Background(), &page.Page{
		Title: slug, Slug: slug, TemplateKey: key, ParentID: parent,
	}, unique)
	require.NoError(t, err)
	require.True(t, p.IsPersisted())
	return p
}

func ids(pages []page.Page) []int64 {
	out := make([]int64, len(pages))
	for i, p := range pages {
		out[i] = p.ID
	}
	return out
}

func testCreateAndGet(t *testing.T, tree ports.PageTree) {
	ctx := context.Background()
	root := create(t, tree, "home", "homepage", nil, true)
	child := create(t, tree, "about", "internalpage", &root.ID, false)

	got, err := tree.Page(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, "about", got.Slug)
	assert.Equal(t, "internalpage", got.TemplateKey)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, root.ID, *got.ParentID)
	assert.False(t, got.CreatedAt.IsZero())
}

func testGetMissing(t *testing.T, tree ports.PageTree) {
	_, err := tree.Page(context.Background(), 404)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
}

func testCreateUnderMissingParent(t *testing.T, tree ports.PageTree) {
	missing := int64(77)
	_, err := tree.CreatePage(context.Background(), &page.Page{
		Title: "x", Slug: "x", TemplateKey: "internalpage", ParentID: &missing,
	}, false)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
}

func testCounts(t *testing.T, tree ports.PageTree) {
	ctx := context.Background()
	a := create(t, tree, "a", "internalpage", nil, false)
	create(t, tree, "b", "internalpage", &a.ID, false)
	create(t, tree, "c", "newsitem", &a.ID, false)

	n, err := tree.CountByTemplate(ctx, "internalpage", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = tree.CountByTemplate(ctx, "internalpage", a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = tree.CountChildren(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = tree.CountChildren(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func testUniqueClaim(t *testing.T, tree ports.PageTree) {
	ctx := context.Background()
	create(t, tree, "home", "homepage", nil, true)

	_, err := tree.CreatePage(ctx, &page.Page{Title: "Home 2", Slug: "home-2", TemplateKey: "homepage"}, true)
	assert.True(t, errors.Is(err, domain.ErrConflict), "got %v", err)

	other := create(t, tree, "other", "internalpage", nil, false)
	other.TemplateKey = "homepage"
	_, err = tree.UpdatePage(ctx, other, true)
	assert.True(t, errors.Is(err, domain.ErrConflict), "got %v", err)

	n, err := tree.CountByTemplate(ctx, "homepage", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "rejected claim must not change the tree")
}

func testUniqueReleasedOnUpdate(t *testing.T, tree ports.PageTree) {
	ctx := context.Background()
	home := create(t, tree, "home", "homepage", nil, true)

	home.TemplateKey = "internalpage"
	_, err := tree.UpdatePage(ctx, home, false)
	require.NoError(t, err)

	create(t, tree, "new-home", "homepage", nil, true)
}

func testUpdateMissing(t *testing.T, tree ports.PageTree) {
	_, err := tree.UpdatePage(context.Background(), &page.Page{
		ID: 55, Title: "x", Slug: "x", TemplateKey: "internalpage",
	}, false)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
}

func testMoveLastChild(t *testing.T, tree ports.PageTree) {
	ctx := context.Background()
	a := create(t, tree, "a", "internalpage", nil, false)
	b := create(t, tree, "b", "internalpage", nil, false)
	create(t, tree, "a-1", "internalpage", &a.ID, false)

	moved, err := tree.MovePage(ctx, b.ID, a.ID, page.PositionLastChild)
	require.NoError(t, err)
	require.NotNil(t, moved.ParentID)
	assert.Equal(t, a.ID, *moved.ParentID)

	n, err := tree.CountChildren(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := tree.ListPages(ctx)
	require.NoError(t, err)
	assert.Equal(t, b.ID, list[len(list)-1].ID, "last-child lands after existing children")
}

func testMoveSiblings(t *testing.T, tree ports.PageTree) {
	ctx := context.Background()
	a := create(t, tree, "a", "internalpage", nil, false)
	b := create(t, tree, "b", "internalpage", nil, false)
	c := create(t, tree, "c", "internalpage", nil, false)

	_, err := tree.MovePage(ctx, c.ID, a.ID, page.PositionLeft)
	require.NoError(t, err)
	list, err := tree.ListPages(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{c.ID, a.ID, b.ID}, ids(list))

	_, err = tree.MovePage(ctx, c.ID, b.ID, page.PositionRight)
	require.NoError(t, err)
	list, err = tree.ListPages(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, ids(list))

	child := create(t, tree, "a-1", "internalpage", &a.ID, false)
	moved, err := tree.MovePage(ctx, b.ID, child.ID, page.PositionLeft)
	require.NoError(t, err)
	require.NotNil(t, moved.ParentID)
	assert.Equal(t, a.ID, *moved.ParentID, "sibling move adopts target's parent")
}

func testMoveIntoOwnSubtree(t *testing.T, tree ports.PageTree) {
	ctx := context.Background()
	a := create(t, tree, "a", "internalpage", nil, false)
	b := create(t, tree, "b", "internalpage", &a.ID, false)

	_, err := tree.MovePage(ctx, a.ID, b.ID, page.PositionLastChild)
	assert.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)

	_, err = tree.MovePage(ctx, a.ID, 999, page.PositionLastChild)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
}

func testDeleteCascades(t *testing.T, tree ports.PageTree) {
	ctx := context.Background()
	home := create(t, tree, "home", "homepage", nil, true)
	child := create(t, tree, "child", "internalpage", &home.ID, false)
	grandchild := create(t, tree, "grandchild", "internalpage", &child.ID, false)
	other := create(t, tree, "other", "internalpage", nil, false)

	require.NoError(t, tree.DeletePage(ctx, home.ID))

	for _, id := range []int64{home.ID, child.ID, grandchild.ID} {
		_, err := tree.Page(ctx, id)
		assert.True(t, errors.Is(err, domain.ErrNotFound), "page %d: got %v", id, err)
	}
	_, err := tree.Page(ctx, other.ID)
	require.NoError(t, err)

	// Deleting the holder frees the unique template.
	create(t, tree, "home-again", "homepage", nil, true)

	err = tree.DeletePage(ctx, home.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
}

func testListTreeOrder(t *testing.T, tree ports.PageTree) {
	ctx := context.Background()
	a := create(t, tree, "a", "internalpage", nil, false)
	b := create(t, tree, "b", "internalpage", nil, false)
	a1 := create(t, tree, "a-1", "internalpage", &a.ID, false)
	b1 := create(t, tree, "b-1", "internalpage", &b.ID, false)
	a2 := create(t, tree, "a-2", "internalpage", &a.ID, false)

	list, err := tree.ListPages(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID, a1.ID, a2.ID, b.ID, b1.ID}, ids(list))
}
