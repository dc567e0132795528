// Package page defines the Page entity: a node in the page tree that
// references a registered template by key.
package page

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jsamuelsen11/page-template-admin/internal/domain"
)

// slugPattern allows lowercase letters, digits and single hyphens between them.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Page is a node in the page tree. ParentID is nil for first-level pages and
// SortOrder orders siblings. Children are not stored on the entity; the tree
// reports them on demand.
type Page struct {
	ID          int64
	Title       string
	Slug        string
	TemplateKey string
	ParentID    *int64
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPersisted reports whether the page has been assigned an identifier by
// the tree. Unsaved pages never count as the holder of a template.
func (p *Page) IsPersisted() bool {
	return p != nil && p.ID > 0
}

// IsRoot reports whether the page sits at the first level of the tree.
func (p *Page) IsRoot() bool {
	return p.ParentID == nil
}

// Validate checks business rules for the Page entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Page) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if p.Slug == "" {
		fields["slug"] = domain.MsgRequired
	} else if !slugPattern.MatchString(p.Slug) {
		fields["slug"] = fmt.Sprintf("invalid: %q", p.Slug)
	}
	if strings.TrimSpace(p.TemplateKey) == "" {
		fields["template_key"] = domain.MsgRequired
	}
	if p.ParentID != nil && *p.ParentID <= 0 {
		fields["parent"] = fmt.Sprintf("must be positive, got %d", *p.ParentID)
	}
	if p.ParentID != nil && p.ID > 0 && *p.ParentID == p.ID {
		fields["parent"] = "a page cannot be its own parent"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Clone returns a copy of the page that shares no pointers with the original.
func (p *Page) Clone() *Page {
	c := *p
	if p.ParentID != nil {
		parent := *p.ParentID
		c.ParentID = &parent
	}
	return &c
}
