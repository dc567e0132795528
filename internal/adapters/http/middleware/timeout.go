package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jsamuelsen11/page-template-admin/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler runs with a context carrying
// the deadline; if it has not finished in time the client receives a 504
// problem response and anything the handler writes afterwards is dropped.
//
// A timed-out page write may still complete in the page tree; the handler's
// context is cancelled but the backend decides whether it honours that.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			tw := &timeoutWriter{w: w}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				// Re-raise on the serving goroutine so Recovery sees it.
				panic(v)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flush()
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", d, ctx.Err()))
			}
		})
	}
}
