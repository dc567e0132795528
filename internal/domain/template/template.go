// Package template defines page templates, the registry they are registered
// in at startup, and the validator that decides which templates a page may
// use given its position in the page tree.
package template

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/page-template-admin/internal/domain"
)

// Region is a named content slot within a template.
type Region struct {
	Key   string
	Title string
}

// Template is a named page layout with a fixed set of regions and placement
// constraints. Templates are immutable once registered.
type Template struct {
	Key          string
	Title        string
	Path         string
	Regions      []Region
	PreviewImage string

	// Unique templates may be used by at most one page at a time.
	Unique bool
	// FirstLevelOnly templates may only be used by pages without a parent.
	FirstLevelOnly bool
	// NoChildren templates forbid subpages.
	NoChildren bool
}

// HasPreview reports whether a preview image is configured.
func (t Template) HasPreview() bool {
	return strings.TrimSpace(t.PreviewImage) != ""
}

// Validate checks that the template is well-formed enough to register.
func (t Template) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Key) == "" {
		fields["key"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.Path) == "" {
		fields["path"] = domain.MsgRequired
	}
	if len(t.Regions) == 0 {
		fields["regions"] = "at least one region is required"
	}

	seen := make(map[string]bool, len(t.Regions))
	for i, r := range t.Regions {
		if strings.TrimSpace(r.Key) == "" {
			fields[fmt.Sprintf("regions[%d].key", i)] = domain.MsgRequired
			continue
		}
		if seen[r.Key] {
			fields[fmt.Sprintf("regions[%d].key", i)] = fmt.Sprintf("duplicate region %q", r.Key)
		}
		seen[r.Key] = true
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// clone copies the region slice so registered templates cannot be mutated
// through a caller's slice.
func (t Template) clone() Template {
	t.Regions = append([]Region(nil), t.Regions...)
	return t
}
