package ports

import "context"

// HealthChecker is a dependency the readiness probe asks about: the page
// tree backend ("memstore", "sqlite", "cms-api") or the template catalog.
type HealthChecker interface {
	Name() string
	// HealthCheck returns nil when the dependency can serve requests. It
	// must return promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects the checkers behind GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every check; a nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
