package httpclient

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderIdempotencyKey identifies a write across retries so the CMS applies
// it at most once.
const HeaderIdempotencyKey = "Idempotency-Key"

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request ID for outbound X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the inbound correlation ID for outbound
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// injectHeaders copies the request and correlation IDs from ctx onto req and
// gives a POST without one an Idempotency-Key. It runs once per Do, before
// the retry loop, so every attempt carries the same key.
func injectHeaders(ctx context.Context, req *http.Request) {
	if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, _ := ctx.Value(correlationIDKey{}).(string); id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
	if req.Method == http.MethodPost && req.Header.Get(HeaderIdempotencyKey) == "" {
		req.Header.Set(HeaderIdempotencyKey, uuid.NewString())
	}
}
