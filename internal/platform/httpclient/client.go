// Package httpclient is the outbound HTTP client used to reach the CMS page
// API. Each call passes through, in order:
//
//	Circuit Breaker → Rate Limiter → Header Injection → OTEL Span → Retry → HTTP
//
// Writes are made safe to retry by tagging every POST with an
// Idempotency-Key that stays the same across attempts.
//
//	client := httpclient.New(&cfg.Client, "cms-api", metrics, logger)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/page-template-admin/internal/platform/config"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/telemetry"
)

// Client is an instrumented HTTP client bound to one downstream service.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	policy      retryPolicy
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New creates a Client for the service named serviceName, which labels its
// spans, metrics and breaker. A nil metrics disables metric recording.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// A caller giving up says nothing about the CMS.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     breaker,
		limiter:     limiter,
		policy:      newRetryPolicy(cfg.Retry),
		metrics:     metrics,
		logger:      logger,
	}
}

// Do sends req through the breaker, limiter and retry loop.
//
// A non-retryable response is returned with a nil error and an open body the
// caller must close. When retries run out on a retryable status, both the
// last response (body open) and an error are returned. Breaker rejections,
// rate limiter waits cut short by ctx, and transport failures return a nil
// response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		injectHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()
		req = req.WithContext(spanCtx)

		retryErr := c.doWithRetry(spanCtx, req, &resp)
		finishSpan(span, resp, retryErr)
		return struct{}{}, retryErr
	})

	c.recordMetrics(ctx, method, start, resp, err)
	return resp, err
}

// BaseURL returns the downstream service root, e.g. "http://cms-api:8080".
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream service name.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reports the downstream service's availability from the breaker
// state without calling it: half-open is degraded, open is failing.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
