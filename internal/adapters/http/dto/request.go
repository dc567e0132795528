package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/page-template-admin/internal/domain"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
)

// PageRequest represents the JSON body of the create and edit page forms.
type PageRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	TemplateKey string `json:"template_key"`
	ParentID    *int64 `json:"parent_id,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *PageRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Slug) == "" {
		fields["slug"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.TemplateKey) == "" {
		fields["template_key"] = domain.MsgRequired
	}
	if r.ParentID != nil && *r.ParentID <= 0 {
		fields["parent_id"] = domain.MsgMustBePositive
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// MoveRequest represents the JSON body of a tree move.
type MoveRequest struct {
	TargetID int64  `json:"target_id"`
	Position string `json:"position"`
}

// Validate checks the target and position.
// Returns a *domain.ValidationError if any checks fail.
func (r *MoveRequest) Validate() error {
	fields := make(map[string]string)

	if r.TargetID <= 0 {
		fields["target_id"] = domain.MsgMustBePositive
	}
	if !page.Position(r.Position).IsValid() {
		fields["position"] = fmt.Sprintf("invalid: %q", r.Position)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
