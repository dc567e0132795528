package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/page-template-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/page-template-admin/internal/domain"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestPageRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.PageRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid first-level page",
			req:     dto.PageRequest{Title: "Home", Slug: "home", TemplateKey: "homepage"},
			wantErr: false,
		},
		{
			name:    "valid subpage",
			req:     dto.PageRequest{Title: "Team", Slug: "team", TemplateKey: "internalpage", ParentID: int64Ptr(3)},
			wantErr: false,
		},
		{
			name:      "missing title",
			req:       dto.PageRequest{Slug: "home", TemplateKey: "homepage"},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "whitespace title",
			req:       dto.PageRequest{Title: "   ", Slug: "home", TemplateKey: "homepage"},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "missing slug",
			req:       dto.PageRequest{Title: "Home", TemplateKey: "homepage"},
			wantErr:   true,
			wantField: "slug",
		},
		{
			name:      "missing template",
			req:       dto.PageRequest{Title: "Home", Slug: "home"},
			wantErr:   true,
			wantField: "template_key",
		},
		{
			name:      "non-positive parent",
			req:       dto.PageRequest{Title: "Home", Slug: "home", TemplateKey: "homepage", ParentID: int64Ptr(0)},
			wantErr:   true,
			wantField: "parent_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestMoveRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.MoveRequest
		wantErr   bool
		wantField string
	}{
		{"last child", dto.MoveRequest{TargetID: 1, Position: "last-child"}, false, ""},
		{"left", dto.MoveRequest{TargetID: 1, Position: "left"}, false, ""},
		{"right", dto.MoveRequest{TargetID: 1, Position: "right"}, false, ""},
		{"missing target", dto.MoveRequest{Position: "left"}, true, "target_id"},
		{"unknown position", dto.MoveRequest{TargetID: 1, Position: "first-child"}, true, "position"},
		{"empty position", dto.MoveRequest{TargetID: 1}, true, "position"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}
