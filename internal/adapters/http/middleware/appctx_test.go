package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/page-template-admin/internal/adapters/http/middleware"
	appctx "github.com/jsamuelsen11/page-template-admin/internal/app/context"
)

func TestAppContext_OnePerRequest(t *testing.T) {
	t.Parallel()

	var seen []*appctx.RequestContext
	handler := middleware.AppContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = append(seen, appctx.FromContext(r.Context()))
	}))

	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/pages/choices", http.NoBody))
	}

	if len(seen) != 2 || seen[0] == nil || seen[1] == nil {
		t.Fatalf("RequestContext not injected: %v", seen)
	}
	if seen[0] == seen[1] {
		t.Error("requests shared a RequestContext")
	}
}

func TestAppContext_InheritsTimeoutDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	handler := middleware.Timeout(time.Second)(middleware.AppContext()(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			rc := appctx.FromContext(r.Context())
			_, hasDeadline = rc.Deadline()
		}),
	))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/api/v1/pages/1", http.NoBody))

	if !hasDeadline {
		t.Error("RequestContext does not carry the request deadline")
	}
}

func TestFromContext_NilWithoutMiddleware(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pages", http.NoBody)
	if rc := appctx.FromContext(req.Context()); rc != nil {
		t.Error("FromContext returned a RequestContext without the middleware")
	}
}
