// Package memstore is an in-memory page tree used by the local profile and
// by application tests. It enforces the same storage invariants as the
// sqlite adapter: unique template claims and cascading deletes.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/page-template-admin/internal/domain"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

var _ ports.PageTree = (*Store)(nil)

// Store is an in-memory ports.PageTree safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	pages   map[int64]*page.Page
	holders map[string]int64 // unique template key -> holding page
	nextID  int64
	now     func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		pages:   make(map[int64]*page.Page),
		holders: make(map[string]int64),
		nextID:  1,
		now:     time.Now,
	}
}

// Name identifies the store in health reports.
func (s *Store) Name() string { return "memstore" }

// HealthCheck always succeeds.
func (s *Store) HealthCheck(context.Context) error { return nil }

func (s *Store) Page(_ context.Context, id int64) (*page.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pages[id]
	if !ok {
		return nil, fmt.Errorf("page %d: %w", id, domain.ErrNotFound)
	}
	return p.Clone(), nil
}

func (s *Store) CountByTemplate(_ context.Context, key string, excludeID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for id, p := range s.pages {
		if id != excludeID && p.TemplateKey == key {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountChildren(_ context.Context, id int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.childrenOf(&id)), nil
}

func (s *Store) ListPages(_ context.Context) ([]page.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]page.Page, 0, len(s.pages))
	for _, p := range s.pages {
		out = append(out, *p.Clone())
	}
	return page.TreeOrder(out), nil
}

func (s *Store) CreatePage(_ context.Context, p *page.Page, uniqueTemplate bool) (*page.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkParent(p.ParentID); err != nil {
		return nil, err
	}

	created := p.Clone()
	created.ID = s.nextID
	if err := s.claim(created.ID, created.TemplateKey, uniqueTemplate); err != nil {
		return nil, err
	}
	s.nextID++

	now := s.now().UTC()
	created.CreatedAt, created.UpdatedAt = now, now
	created.SortOrder = s.nextSortOrder(created.ParentID)
	s.pages[created.ID] = created
	return created.Clone(), nil
}

func (s *Store) UpdatePage(_ context.Context, p *page.Page, uniqueTemplate bool) (*page.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.pages[p.ID]
	if !ok {
		return nil, fmt.Errorf("page %d: %w", p.ID, domain.ErrNotFound)
	}
	if err := s.checkParent(p.ParentID); err != nil {
		return nil, err
	}
	if p.ParentID != nil && page.IsDescendant(*p.ParentID, p.ID, s.parentOf) {
		return nil, fmt.Errorf("page %d cannot be placed inside its own subtree: %w", p.ID, domain.ErrValidation)
	}
	if err := s.claim(p.ID, p.TemplateKey, uniqueTemplate); err != nil {
		return nil, err
	}

	updated := p.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.now().UTC()
	updated.SortOrder = existing.SortOrder
	if !sameParent(existing.ParentID, updated.ParentID) {
		updated.SortOrder = s.nextSortOrder(updated.ParentID)
	}
	s.pages[p.ID] = updated
	return updated.Clone(), nil
}

func (s *Store) MovePage(_ context.Context, id, targetID int64, pos page.Position) (*page.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	moved, ok := s.pages[id]
	if !ok {
		return nil, fmt.Errorf("page %d: %w", id, domain.ErrNotFound)
	}
	target, ok := s.pages[targetID]
	if !ok {
		return nil, fmt.Errorf("target page %d: %w", targetID, domain.ErrNotFound)
	}
	if !pos.IsValid() {
		return nil, fmt.Errorf("move position %q: %w", pos, domain.ErrValidation)
	}

	newParent := pos.NewParent(target)
	if newParent != nil && page.IsDescendant(*newParent, id, s.parentOf) {
		return nil, fmt.Errorf("page %d cannot be moved inside its own subtree: %w", id, domain.ErrValidation)
	}

	var order int
	switch pos {
	case page.PositionLastChild:
		order = s.nextSortOrder(newParent)
	case page.PositionLeft:
		order = target.SortOrder
		s.shiftSiblings(newParent, id, order)
	case page.PositionRight:
		order = target.SortOrder + 1
		s.shiftSiblings(newParent, id, order)
	}

	moved.ParentID = newParent
	moved.SortOrder = order
	moved.UpdatedAt = s.now().UTC()
	return moved.Clone(), nil
}

func (s *Store) DeletePage(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pages[id]; !ok {
		return fmt.Errorf("page %d: %w", id, domain.ErrNotFound)
	}

	doomed := []int64{id}
	for i := 0; i < len(doomed); i++ {
		parent := doomed[i]
		for _, child := range s.childrenOf(&parent) {
			doomed = append(doomed, child.ID)
		}
	}
	for _, pid := range doomed {
		delete(s.pages, pid)
		s.release(pid)
	}
	return nil
}

// claim records id as the holder of a unique template key, releasing any
// key the page held before.
func (s *Store) claim(id int64, key string, unique bool) error {
	if unique {
		if holder, ok := s.holders[key]; ok && holder != id {
			return fmt.Errorf("template %q already held by page %d: %w", key, holder, domain.ErrConflict)
		}
	}
	s.release(id)
	if unique {
		s.holders[key] = id
	}
	return nil
}

func (s *Store) release(id int64) {
	for key, holder := range s.holders {
		if holder == id {
			delete(s.holders, key)
		}
	}
}

func (s *Store) checkParent(parentID *int64) error {
	if parentID == nil {
		return nil
	}
	if _, ok := s.pages[*parentID]; !ok {
		return fmt.Errorf("parent page %d: %w", *parentID, domain.ErrNotFound)
	}
	return nil
}

func (s *Store) parentOf(id int64) (*int64, bool) {
	p, ok := s.pages[id]
	if !ok {
		return nil, false
	}
	return p.ParentID, true
}

func (s *Store) childrenOf(parentID *int64) []*page.Page {
	var out []*page.Page
	for _, p := range s.pages {
		if sameParent(p.ParentID, parentID) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) nextSortOrder(parentID *int64) int {
	next := 0
	for _, p := range s.childrenOf(parentID) {
		if p.SortOrder >= next {
			next = p.SortOrder + 1
		}
	}
	return next
}

// shiftSiblings makes room at order under parentID by moving every sibling
// at or after it one slot right.
func (s *Store) shiftSiblings(parentID *int64, skipID int64, order int) {
	for _, p := range s.childrenOf(parentID) {
		if p.ID != skipID && p.SortOrder >= order {
			p.SortOrder++
		}
	}
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
