package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func int64Ptr(v int64) *int64 { return &v }

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validPage() page.Page {
	return page.Page{
		ID:          1,
		Title:       "Home",
		Slug:        "home",
		TemplateKey: "homepage",
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func internalTemplate() template.Template {
	return template.Template{
		Key:     "internalpage",
		Title:   "Internal Page",
		Path:    "pages/internal.html",
		Regions: []template.Region{{Key: "main", Title: "Main Content"}},
	}
}

func homeTemplate() template.Template {
	return template.Template{
		Key:          "homepage",
		Title:        "Home Page",
		Path:         "pages/home.html",
		Regions:      []template.Region{{Key: "home_main", Title: "Main Content"}},
		PreviewImage: "/static/previews/home.png",
		Unique:       true,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
