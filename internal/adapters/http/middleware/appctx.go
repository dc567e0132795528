package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/page-template-admin/internal/app/context"
)

// AppContext gives each request its own RequestContext, the cache and write
// stage the page admin service uses. The RequestContext wraps the request's
// context at this point in the pipeline, so register it after Timeout.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), rc)))
		})
	}
}
