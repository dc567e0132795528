package middleware

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// routePattern returns the chi pattern the request matched, such as
// "/api/v1/pages/{id}/move". It is only complete once routing has run, and
// falls back to the raw path for requests chi did not route.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// pageID returns the {id} URL parameter of page routes, or 0 when the route
// has none or it is not a number.
func pageID(r *http.Request) int64 {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return 0
	}
	id, err := strconv.ParseInt(rctx.URLParam("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
