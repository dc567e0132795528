package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/page-template-admin/internal/platform/logging"
)

// Logging stores a logger carrying the request and correlation IDs in the
// context and logs each request's start and completion. The completion entry
// names the matched route and, on page routes, the page ID.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request headers", headerAttrs(r.Header)...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			}
			if id := pageID(r); id > 0 {
				attrs = append(attrs, slog.Int64("page_id", id))
			}
			child.InfoContext(ctx, "request completed", attrs...)
		})
	}
}

// headerAttrs converts headers to log attributes, redacting credentials.
// Multi-value headers are joined with a comma.
func headerAttrs(headers http.Header) []any {
	attrs := make([]any, 0, len(headers))
	for key, vals := range headers {
		if logging.IsSensitiveHeader(key) {
			attrs = append(attrs, slog.String(key, "[REDACTED]"))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
	}
	return attrs
}
