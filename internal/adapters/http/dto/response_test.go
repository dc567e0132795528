package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/page-template-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func int64Ptr(v int64) *int64 { return &v }

func validPage() page.Page {
	return page.Page{
		ID:          7,
		Title:       "Team",
		Slug:        "team",
		TemplateKey: "internalpage",
		ParentID:    int64Ptr(3),
		SortOrder:   2,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func homeTemplate() template.Template {
	return template.Template{
		Key:          "homepage",
		Title:        "Home Page",
		Path:         "pages/home.html",
		Regions:      []template.Region{{Key: "home_main", Title: "Main"}},
		PreviewImage: "/static/previews/home.png",
		Unique:       true,
	}
}

func TestToPageResponse(t *testing.T) {
	t.Parallel()

	p := validPage()
	got := dto.ToPageResponse(&p)

	want := dto.PageResponse{
		ID:          7,
		Title:       "Team",
		Slug:        "team",
		TemplateKey: "internalpage",
		ParentID:    int64Ptr(3),
		SortOrder:   2,
		CreatedAt:   "2026-02-12T15:04:05Z",
		UpdatedAt:   "2026-02-12T15:04:05Z",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToPageResponse() mismatch (-want +got):\n%s", diff)
	}
}

func TestToPageResponse_RootSerializesNullParent(t *testing.T) {
	t.Parallel()

	p := validPage()
	p.ParentID = nil

	data, err := json.Marshal(dto.ToPageResponse(&p))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if !strings.Contains(string(data), `"parent_id":null`) {
		t.Errorf("JSON = %s, want parent_id null", data)
	}
}

func TestToPageListResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pages     []page.Page
		wantCount int
	}{
		{"empty list", []page.Page{}, 0},
		{"nil list", nil, 0},
		{"two pages", []page.Page{validPage(), validPage()}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToPageListResponse(tt.pages)

			if got.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", got.Count, tt.wantCount)
			}
			if got.Pages == nil {
				t.Error("Pages is nil, want non-nil slice")
			}
		})
	}
}

func TestToTemplateResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToTemplateResponse(homeTemplate())

	want := dto.TemplateResponse{
		Key:          "homepage",
		Title:        "Home Page",
		Path:         "pages/home.html",
		Regions:      []dto.RegionResponse{{Key: "home_main", Title: "Main"}},
		PreviewImage: "/static/previews/home.png",
		Unique:       true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToTemplateResponse() mismatch (-want +got):\n%s", diff)
	}
}

func TestToTemplateListResponse_KeepsOrder(t *testing.T) {
	t.Parallel()

	internal := template.Template{Key: "internalpage", Title: "Internal Page"}
	got := dto.ToTemplateListResponse([]template.Template{internal, homeTemplate()})

	if got.Count != 2 {
		t.Fatalf("Count = %d, want 2", got.Count)
	}
	if got.Templates[0].Key != "internalpage" || got.Templates[1].Key != "homepage" {
		t.Errorf("order = [%s %s], want [internalpage homepage]", got.Templates[0].Key, got.Templates[1].Key)
	}
}

func TestToChoicesResponse(t *testing.T) {
	t.Parallel()

	internal := template.Template{Key: "internalpage", Title: "Internal Page"}
	got := dto.ToChoicesResponse(&ports.Choices{
		Templates: []template.Template{internal, homeTemplate()},
		Default:   "internalpage",
	})

	if got.Default != "internalpage" {
		t.Errorf("Default = %q, want internalpage", got.Default)
	}
	if len(got.Choices) != 2 {
		t.Fatalf("len(Choices) = %d, want 2", len(got.Choices))
	}
	if got.Choices[0] != (dto.ChoiceResponse{Value: "internalpage", Label: "Internal Page"}) {
		t.Errorf("Choices[0] = %+v", got.Choices[0])
	}
	if !strings.Contains(got.Choices[1].Label, "<img") {
		t.Errorf("Choices[1].Label = %q, want a preview image", got.Choices[1].Label)
	}
}

func TestToChoicesResponse_Empty(t *testing.T) {
	t.Parallel()

	got := dto.ToChoicesResponse(&ports.Choices{})

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `{"choices":[]}` {
		t.Errorf("JSON = %s, want {\"choices\":[]}", data)
	}
}
