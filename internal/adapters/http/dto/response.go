// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

// PageResponse represents a single page in HTTP responses.
type PageResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	TemplateKey string `json:"template_key"`
	ParentID    *int64 `json:"parent_id"`
	SortOrder   int    `json:"sort_order"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// PageListResponse represents the page tree in HTTP responses, depth-first.
type PageListResponse struct {
	Pages []PageResponse `json:"pages"`
	Count int            `json:"count"`
}

// ToPageResponse converts a domain Page entity to an HTTP response DTO.
func ToPageResponse(p *page.Page) PageResponse {
	return PageResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		TemplateKey: p.TemplateKey,
		ParentID:    p.ParentID,
		SortOrder:   p.SortOrder,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

// ToPageListResponse converts a slice of domain Page entities to an HTTP
// list response DTO.
func ToPageListResponse(pages []page.Page) PageListResponse {
	items := make([]PageResponse, len(pages))
	for i := range pages {
		items[i] = ToPageResponse(&pages[i])
	}
	return PageListResponse{
		Pages: items,
		Count: len(items),
	}
}

// RegionResponse is a template content region.
type RegionResponse struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// TemplateResponse represents a registered template in HTTP responses.
type TemplateResponse struct {
	Key            string           `json:"key"`
	Title          string           `json:"title"`
	Path           string           `json:"path"`
	Regions        []RegionResponse `json:"regions"`
	PreviewImage   string           `json:"preview_image,omitempty"`
	Unique         bool             `json:"unique"`
	FirstLevelOnly bool             `json:"first_level_only"`
	NoChildren     bool             `json:"no_children"`
}

// TemplateListResponse represents the registry in registration order.
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Count     int                `json:"count"`
}

// ToTemplateResponse converts a domain Template to an HTTP response DTO.
func ToTemplateResponse(t template.Template) TemplateResponse {
	regions := make([]RegionResponse, len(t.Regions))
	for i, r := range t.Regions {
		regions[i] = RegionResponse{Key: r.Key, Title: r.Title}
	}
	return TemplateResponse{
		Key:            t.Key,
		Title:          t.Title,
		Path:           t.Path,
		Regions:        regions,
		PreviewImage:   t.PreviewImage,
		Unique:         t.Unique,
		FirstLevelOnly: t.FirstLevelOnly,
		NoChildren:     t.NoChildren,
	}
}

// ToTemplateListResponse converts registered templates to an HTTP list
// response DTO.
func ToTemplateListResponse(templates []template.Template) TemplateListResponse {
	items := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		items[i] = ToTemplateResponse(t)
	}
	return TemplateListResponse{
		Templates: items,
		Count:     len(items),
	}
}

// ChoiceResponse is one option of the template choice field. Label is
// sanitized HTML.
type ChoiceResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ChoicesResponse lists the options of the template choice field.
type ChoicesResponse struct {
	Choices []ChoiceResponse `json:"choices"`
	Default string           `json:"default,omitempty"`
}

// ToChoicesResponse converts form choices to an HTTP response DTO.
func ToChoicesResponse(c *ports.Choices) ChoicesResponse {
	items := make([]ChoiceResponse, len(c.Templates))
	for i, t := range c.Templates {
		items[i] = ChoiceResponse{Value: t.Key, Label: ChoiceLabel(t)}
	}
	return ChoicesResponse{
		Choices: items,
		Default: c.Default,
	}
}

// ReadinessResponse is the body of GET /health/ready. Checks are sorted by
// name.
type ReadinessResponse struct {
	Status string        `json:"status"`
	Checks []CheckResult `json:"checks"`
}

// CheckResult is one dependency's readiness.
type CheckResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
