// Package health backs the readiness probe: components register a check at
// startup and /health/ready runs them all.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry implements [ports.HealthRegistry]. Checks run concurrently, each
// bounded by the registry's timeout.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New returns an empty Registry. A non-positive timeout leaves checks bounded
// only by the caller's context.
func New(timeout time.Duration) *Registry {
	return &Registry{timeout: timeout}
}

// Register adds checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check and returns the results by name; nil means
// healthy. A check still running at the timeout reports a timeout error
// and is left to finish on its own.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	type result struct {
		name string
		err  error
	}
	results := make(chan result, len(checkers))
	for _, c := range checkers {
		go func() {
			results <- result{name: c.Name(), err: r.run(ctx, c)}
		}()
	}

	out := make(map[string]error, len(checkers))
	for range checkers {
		res := <-results
		out[res.name] = res.err
	}
	return out
}

func (r *Registry) run(ctx context.Context, c ports.HealthChecker) error {
	if r.timeout <= 0 {
		return c.HealthCheck(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: no answer within %s: %w", c.Name(), r.timeout, ctx.Err())
	}
}

// Func adapts a function to [ports.HealthChecker].
type Func struct {
	name  string
	check func(context.Context) error
}

// NewFunc returns a checker named name that runs check.
func NewFunc(name string, check func(context.Context) error) *Func {
	return &Func{name: name, check: check}
}

func (f *Func) Name() string { return f.name }

func (f *Func) HealthCheck(ctx context.Context) error { return f.check(ctx) }
