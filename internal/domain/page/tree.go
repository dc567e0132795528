package page

import (
	"cmp"
	"slices"
)

// TreeOrder returns pages depth-first: each parent directly followed by its
// descendants, siblings by SortOrder then ID. Pages whose parent is missing
// from the slice are treated as first-level.
func TreeOrder(pages []Page) []Page {
	known := make(map[int64]bool, len(pages))
	for _, p := range pages {
		known[p.ID] = true
	}

	children := make(map[int64][]Page)
	var roots []Page
	for _, p := range pages {
		if p.ParentID == nil || !known[*p.ParentID] {
			roots = append(roots, p)
			continue
		}
		children[*p.ParentID] = append(children[*p.ParentID], p)
	}

	bySiblingOrder := func(a, b Page) int {
		if c := cmp.Compare(a.SortOrder, b.SortOrder); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	}

	out := make([]Page, 0, len(pages))
	var walk func(level []Page)
	walk = func(level []Page) {
		slices.SortFunc(level, bySiblingOrder)
		for _, p := range level {
			out = append(out, p)
			walk(children[p.ID])
		}
	}
	walk(roots)
	return out
}

// IsDescendant reports whether the page with id lies in the subtree rooted
// at ancestorID, walking parent links through parentOf. A page is in its own
// subtree.
func IsDescendant(id, ancestorID int64, parentOf func(int64) (*int64, bool)) bool {
	seen := make(map[int64]bool)
	for cur := id; ; {
		if cur == ancestorID {
			return true
		}
		if seen[cur] {
			return false
		}
		seen[cur] = true

		parent, ok := parentOf(cur)
		if !ok || parent == nil {
			return false
		}
		cur = *parent
	}
}
