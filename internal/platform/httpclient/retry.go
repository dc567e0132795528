package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/page-template-admin/internal/platform/config"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/logging"
)

// jitterFraction spreads each backoff delay by up to ±25%.
const jitterFraction = 0.25

type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts:     cfg.MaxAttempts,
		initialInterval: cfg.InitialInterval,
		maxInterval:     cfg.MaxInterval,
		multiplier:      cfg.Multiplier,
	}
}

// doWithRetry sends req up to maxAttempts times. Only requests that are safe
// to repeat are retried: idempotent methods, and POSTs that carry an
// Idempotency-Key. The body is buffered for replay. The response is written
// through resp so the caller owns closing it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.policy.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.policy.maxAttempts)
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	attempts := c.policy.maxAttempts
	if !replayable(req) {
		attempts = 1
	}

	var (
		lastErr    error
		retryAfter time.Duration
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, retryAfter, lastErr); err != nil {
				return err
			}
		}
		resetRequestBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			retryAfter = 0
			if !isRetryable(err) {
				return err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		retryAfter = parseRetryAfter(r.Header.Get("Retry-After"), time.Now())
		drainResponseBody(r)
	}
	return lastErr
}

// replayable reports whether sending req twice has the same effect as once.
func replayable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return true
	case http.MethodPost:
		return req.Header.Get(HeaderIdempotencyKey) != ""
	default:
		return false
	}
}

func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	return body, nil
}

func resetRequestBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drainResponseBody lets the connection be reused for the next attempt.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// waitForRetry sleeps for the backoff delay, or for the server's Retry-After
// when that is longer, capped at maxInterval.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, retryAfter time.Duration, lastErr error) error {
	delay := max(backoff(attempt, c.policy), min(retryAfter, c.policy.maxInterval))

	logging.FromContextOr(ctx, c.logger).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.policy.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff is the delay before retry number attempt (1 for the first retry):
// exponential, capped at maxInterval, then jittered.
func backoff(attempt int, p retryPolicy) time.Duration {
	delay := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	delay = min(delay, float64(p.maxInterval))
	delay += delay * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(max(delay, 0))
}

// parseRetryAfter reads a Retry-After value in either delay-seconds or
// HTTP-date form. Missing or malformed values yield 0.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus is true for 429 and every 5xx.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
