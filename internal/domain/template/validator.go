package template

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
)

// Tree is the validator's read-only view of the page tree. It is defined in
// the domain so the validator does not depend on any storage adapter.
type Tree interface {
	// Page returns the page with the given ID.
	// Returns an error wrapping domain.ErrNotFound if it does not exist.
	Page(ctx context.Context, id int64) (*page.Page, error)

	// CountByTemplate returns how many pages use the template key, not
	// counting the page with excludeID. Pass 0 to count every page.
	CountByTemplate(ctx context.Context, key string, excludeID int64) (int, error)

	// CountChildren returns the number of direct children of the page.
	CountChildren(ctx context.Context, id int64) (int, error)
}

// Option describes the page a template is being checked for.
type Option func(*placement)

// placement is the instance/parent context of a single check.
type placement struct {
	instance *page.Page
	parent   *page.Page
	parentID *int64
}

// WithInstance names the existing page being edited or moved. Without it the
// check is for a page that does not exist yet.
func WithInstance(p *page.Page) Option {
	return func(pl *placement) {
		pl.instance = p
	}
}

// WithParent places the page under an already resolved parent. A nil parent
// means a first-level page.
func WithParent(p *page.Page) Option {
	return func(pl *placement) {
		pl.parent = p
		pl.parentID = nil
	}
}

// WithParentID places the page under the page with the given ID; the
// validator resolves it through the tree.
func WithParentID(id int64) Option {
	return func(pl *placement) {
		pl.parent = nil
		pl.parentID = &id
	}
}

func newPlacement(opts []Option) placement {
	var pl placement
	for _, opt := range opts {
		opt(&pl)
	}
	return pl
}

// excludeID is the ID that must not count as another holder of a unique
// template.
func (pl placement) excludeID() int64 {
	if pl.instance.IsPersisted() {
		return pl.instance.ID
	}
	return 0
}

// Validator evaluates template placement rules against the registry and the
// current state of the page tree. It holds no state of its own between calls.
type Validator struct {
	registry *Registry
	tree     Tree
}

// NewValidator creates a Validator reading templates from registry and page
// facts from tree.
func NewValidator(registry *Registry, tree Tree) *Validator {
	return &Validator{registry: registry, tree: tree}
}

// Check reports whether t may be assigned in the given placement. Rules run
// in a fixed order and the first failure is returned as a *RuleError:
//
//  1. a unique template already used by another page
//  2. a first-level-only template under a parent
//  3. a parent whose template forbids children
//  4. a no-children template on a page that already has children
//
// Any other error (unknown parent ID, unregistered parent template, tree
// failures) is returned wrapped and is never a *RuleError.
func (v *Validator) Check(ctx context.Context, t Template, opts ...Option) error {
	pl := newPlacement(opts)

	if t.Unique {
		n, err := v.tree.CountByTemplate(ctx, t.Key, pl.excludeID())
		if err != nil {
			return fmt.Errorf("counting pages using template %q: %w", t.Key, err)
		}
		if n > 0 {
			return &RuleError{Kind: KindDuplicateUnique, TemplateKey: t.Key}
		}
	}

	parent, err := v.resolveParent(ctx, pl)
	if err != nil {
		return err
	}

	if parent != nil {
		if t.FirstLevelOnly {
			return &RuleError{Kind: KindNotAllowedAsSubpage, TemplateKey: t.Key}
		}

		parentTemplate, err := v.registry.Lookup(parent.TemplateKey)
		if err != nil {
			return fmt.Errorf("resolving template of parent page %d: %w", parent.ID, err)
		}
		if parentTemplate.NoChildren {
			return &RuleError{Kind: KindParentForbidsChildren, TemplateKey: t.Key}
		}
	}

	if t.NoChildren && pl.instance.IsPersisted() {
		n, err := v.tree.CountChildren(ctx, pl.instance.ID)
		if err != nil {
			return fmt.Errorf("counting children of page %d: %w", pl.instance.ID, err)
		}
		if n > 0 {
			return &RuleError{Kind: KindHasChildrenButMarkedLeafOnly, TemplateKey: t.Key}
		}
	}

	return nil
}

// IsValid is Check reduced to a boolean. Only rule failures yield false;
// every other error is returned unchanged so lookup and storage failures are
// never mistaken for an illegal template.
func (v *Validator) IsValid(ctx context.Context, t Template, opts ...Option) (bool, error) {
	err := v.Check(ctx, t, opts...)
	if err == nil {
		return true, nil
	}
	if _, ok := AsRuleError(err); ok {
		return false, nil
	}
	return false, err
}

// ValidTemplates returns the registered templates that pass Check in the
// given placement, in registration order. The result is empty, never nil,
// when no template is legal.
func (v *Validator) ValidTemplates(ctx context.Context, opts ...Option) ([]Template, error) {
	all := v.registry.All()
	valid := make([]Template, 0, len(all))

	for _, t := range all {
		ok, err := v.IsValid(ctx, t, opts...)
		if err != nil {
			return nil, err
		}
		if ok {
			valid = append(valid, t)
		}
	}
	return valid, nil
}

// Lookup resolves a key through the validator's registry.
func (v *Validator) Lookup(key string) (Template, error) {
	return v.registry.Lookup(key)
}

func (v *Validator) resolveParent(ctx context.Context, pl placement) (*page.Page, error) {
	if pl.parent != nil {
		return pl.parent, nil
	}
	if pl.parentID == nil {
		return nil, nil
	}

	parent, err := v.tree.Page(ctx, *pl.parentID)
	if err != nil {
		return nil, fmt.Errorf("resolving parent page %d: %w", *pl.parentID, err)
	}
	return parent, nil
}
