// Package appctx provides the request-scoped context used by the page admin
// service.
//
// RequestContext wraps a context.Context with a memoizing cache for page tree
// lookups and a queue of staged writes that are executed, or rolled back, as
// a unit:
//
//	rc := appctx.New(ctx)
//
//	// Read tree facts once per request.
//	parent, err := appctx.GetOrFetch(rc, "page:3", fetchPage)
//
//	// Stage the write that persists the validated page.
//	err = rc.Stage("page:12", updated, &savePageAction{...})
//
//	// Execute staged writes.
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jsamuelsen11/page-template-admin/internal/domain"
)

// ErrAlreadyCommitted is returned when Stage, AddAction or Commit is called
// on a RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is staged.
var ErrNilAction = errors.New("appctx: nil action")

// ErrRollbackIncomplete is joined into a Commit error when an action that had
// already run could not be undone; the page tree may hold a partial write.
var ErrRollbackIncomplete = errors.New("appctx: rollback incomplete")

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. The same cache key was used with two types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext is a request-scoped context with memoized reads and staged
// writes. Create one per request; the cache is not safe for concurrent use.
type RequestContext struct {
	context.Context
	cache map[string]cacheEntry

	queueMu   sync.Mutex
	queue     []domain.Action
	committed bool
}

// cacheEntry stores the result of a GetOrFetch call. Errors are cached too so
// a failing lookup is not repeated within the request.
type cacheEntry struct {
	value any
	err   error
}

// New creates a RequestContext wrapping ctx with an empty cache and queue.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// GetOrFetch returns the cached value for key, or calls fetchFn and caches
// its result. The same key must always be used with the same type T.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Forget drops every cached entry whose key has the given prefix. Writes call
// it for derived facts (counts) the staged entity alone cannot answer.
func (rc *RequestContext) Forget(prefix string) {
	for key := range rc.cache {
		if strings.HasPrefix(key, prefix) {
			delete(rc.cache, key)
		}
	}
}

type ctxKey struct{}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil if there is
// none. A *RequestContext passed directly as ctx is returned as is.
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.(*RequestContext); ok {
		return rc
	}
	rc, _ := ctx.Value(ctxKey{}).(*RequestContext)
	return rc
}
