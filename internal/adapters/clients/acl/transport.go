package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/page-template-admin/internal/platform/logging"
)

// call is one request to the CMS page API.
type call struct {
	op     string // e.g. "MovePage", used in logs and error context
	method string
	path   string
	want   int
	in     any // JSON request body, nil for none
	out    any // decoded from the response when non-nil
}

// do sends c and checks the status. A response other than c.want becomes a
// domain error via TranslateHTTPError, including the last response of an
// exhausted retry loop.
func (cl *CMSClient) do(ctx context.Context, c call) error {
	req, err := cl.newRequest(ctx, c)
	if err != nil {
		return err
	}

	log := logging.FromContextOr(ctx, cl.logger).With(
		slog.String("operation", "cms."+c.op),
		slog.String("method", c.method),
		slog.String("path", c.path),
	)

	resp, err := cl.client.Do(ctx, req)
	if resp == nil {
		log.ErrorContext(ctx, "cms request failed", slog.Any("error", err))
		return fmt.Errorf("cms %s: %w", c.op, err)
	}
	defer closeBody(ctx, log, resp)

	if resp.StatusCode != c.want {
		log.WarnContext(ctx, "cms rejected request",
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", c.want),
		)
		return fmt.Errorf("cms %s: %w", c.op, TranslateHTTPError(resp))
	}

	if c.out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(c.out); err != nil {
		return fmt.Errorf("cms %s: decoding response: %w", c.op, err)
	}
	return nil
}

func (cl *CMSClient) newRequest(ctx context.Context, c call) (*http.Request, error) {
	body := io.Reader(http.NoBody)
	if c.in != nil {
		b, err := json.Marshal(c.in)
		if err != nil {
			return nil, fmt.Errorf("cms %s: encoding request: %w", c.op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, cl.client.BaseURL()+c.path, body)
	if err != nil {
		return nil, fmt.Errorf("cms %s: %w", c.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func closeBody(ctx context.Context, log *slog.Logger, resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	if err := resp.Body.Close(); err != nil {
		log.WarnContext(ctx, "closing cms response body", slog.Any("error", err))
	}
}
