package app

import (
	"context"
	"fmt"

	appctx "github.com/jsamuelsen11/page-template-admin/internal/app/context"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

var _ template.Tree = (*cachedTree)(nil)

// cachedTree is the validator's view of the page tree for one request. Every
// fact is fetched from the backend at most once per RequestContext, so
// listing choices for N templates does not issue N identical queries.
type cachedTree struct {
	rc   *appctx.RequestContext
	tree ports.PageTree
}

func pageKey(id int64) string { return fmt.Sprintf("page:%d", id) }

func countKey(key string, excludeID int64) string {
	return fmt.Sprintf("count:template:%s:%d", key, excludeID)
}

func childrenKey(id int64) string { return fmt.Sprintf("children:%d", id) }

func (c *cachedTree) Page(_ context.Context, id int64) (*page.Page, error) {
	p, err := appctx.GetOrFetch(c.rc, pageKey(id), func(ctx context.Context) (*page.Page, error) {
		return c.tree.Page(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

func (c *cachedTree) CountByTemplate(_ context.Context, key string, excludeID int64) (int, error) {
	return appctx.GetOrFetch(c.rc, countKey(key, excludeID), func(ctx context.Context) (int, error) {
		return c.tree.CountByTemplate(ctx, key, excludeID)
	})
}

func (c *cachedTree) CountChildren(_ context.Context, id int64) (int, error) {
	return appctx.GetOrFetch(c.rc, childrenKey(id), func(ctx context.Context) (int, error) {
		return c.tree.CountChildren(ctx, id)
	})
}

// insideSubtree reports whether candidate lies in the subtree rooted at
// rootID, walking parent links through the cache. A lookup error stops the
// walk and is returned.
func (c *cachedTree) insideSubtree(ctx context.Context, candidate, rootID int64) (bool, error) {
	var walkErr error
	inside := page.IsDescendant(candidate, rootID, func(id int64) (*int64, bool) {
		p, err := c.Page(ctx, id)
		if err != nil {
			walkErr = err
			return nil, false
		}
		return p.ParentID, true
	})
	if walkErr != nil {
		return false, walkErr
	}
	return inside, nil
}
