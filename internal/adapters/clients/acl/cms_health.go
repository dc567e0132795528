package acl

import "context"

// Name returns the identifier used with a [ports.HealthRegistry]; it is the
// service name the underlying client labels spans and metrics with.
func (c *CMSClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the CMS as failing while the client's breaker is open
// and degraded while it probes. It makes no network call, so readiness
// cannot keep an open breaker from recovering.
func (c *CMSClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
