// Package middleware provides the inbound request pipeline of the page admin
// API. Pipeline returns the middleware in the order the router applies them:
//
//	RequestID → CorrelationID → Recovery → OpenTelemetry → Logging → Timeout → AppContext → Handler
//
// Recovery runs inside the ID middleware so a recovered panic is logged with
// the request's IDs. AppContext runs last so the per-request cache of page
// tree lookups is bound to the deadline set by Timeout.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/page-template-admin/internal/platform/telemetry"
)

// Options configures Pipeline. A nil Metrics disables request metrics.
type Options struct {
	Logger  *slog.Logger
	Metrics *telemetry.Metrics
	Timeout time.Duration
}

// Pipeline returns the full middleware stack, outermost first.
func Pipeline(opts Options) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		RequestID(),
		CorrelationID(),
		Recovery(opts.Logger),
		OpenTelemetry(opts.Metrics),
		Logging(opts.Logger),
		Timeout(opts.Timeout),
		AppContext(),
	}
}
