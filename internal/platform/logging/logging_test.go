package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/page-template-admin/internal/platform/logging"
)

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   []string
	}{
		{format: "json", want: []string{`"level":"INFO"`, `"msg":"page saved"`, `"page_id":7`}},
		{format: "text", want: []string{"level=INFO", `msg="page saved"`, "page_id=7"}},
		{format: "logfmt", want: []string{`"msg":"page saved"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("page saved", slog.Int64("page_id", 7))

			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output = %q, want it to contain %q", buf.String(), w)
				}
			}
		})
	}
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		enabled   slog.Level
		disabled  slog.Level
		addSource bool
	}{
		{level: "debug", enabled: slog.LevelDebug, disabled: slog.LevelDebug - 1, addSource: true},
		{level: "INFO", enabled: slog.LevelInfo, disabled: slog.LevelDebug},
		{level: " warn ", enabled: slog.LevelWarn, disabled: slog.LevelInfo},
		{level: "error", enabled: slog.LevelError, disabled: slog.LevelWarn},
		{level: "verbose", enabled: slog.LevelInfo, disabled: slog.LevelDebug},
		{level: "", enabled: slog.LevelInfo, disabled: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := logging.New(tt.level, "json", &buf)
			ctx := context.Background()

			if !logger.Enabled(ctx, tt.enabled) {
				t.Errorf("level %v disabled, want enabled", tt.enabled)
			}
			if logger.Enabled(ctx, tt.disabled) {
				t.Errorf("level %v enabled, want disabled", tt.disabled)
			}

			logger.Log(ctx, tt.enabled, "check")
			if got := strings.Contains(buf.String(), `"source"`); got != tt.addSource {
				t.Errorf("source present = %v, want %v", got, tt.addSource)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != slog.Default() {
		t.Error("empty context: want slog.Default()")
	}

	fallback := slog.New(slog.DiscardHandler)
	if logging.FromContextOr(context.Background(), fallback) != fallback {
		t.Error("empty context: want fallback")
	}

	stored := slog.New(slog.DiscardHandler)
	ctx := logging.WithLogger(context.Background(), stored)
	if logging.FromContext(ctx) != stored {
		t.Error("FromContext did not return the stored logger")
	}
	if logging.FromContextOr(ctx, fallback) != stored {
		t.Error("FromContextOr preferred fallback over the stored logger")
	}
}

func TestWith_AccumulatesAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New("info", "json", &buf).With(slog.String("request_id", "req-1")))
	ctx = logging.With(ctx, slog.Int64("page_id", 3))
	ctx = logging.With(ctx, slog.String("template_key", "newsitem"))

	logging.FromContext(ctx).InfoContext(ctx, "move checked")

	for _, w := range []string{`"request_id":"req-1"`, `"page_id":3`, `"template_key":"newsitem"`} {
		if !strings.Contains(buf.String(), w) {
			t.Errorf("output = %q, want it to contain %q", buf.String(), w)
		}
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization header", attr: slog.String("authorization", "Bearer cms-service-token"), secret: "cms-service-token"},
		{name: "cookie header", attr: slog.String("cookie", "sessionid=abc123"), secret: "abc123"},
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "prefixed secret", attr: slog.String("secret_cms", "s3cr3t"), secret: "s3cr3t"},
		{name: "bearer in free text", attr: slog.String("error", "cms said: Bearer eyJhbGciOiJSUzI1NiJ9 invalid"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "api key in url", attr: slog.String("url", "http://cms/api/v1/pages?api_key=k-998877"), secret: "k-998877"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("cms call", tt.attr)

			if strings.Contains(buf.String(), tt.secret) {
				t.Errorf("output = %q, want %q redacted", buf.String(), tt.secret)
			}
			if !strings.Contains(buf.String(), "[REDACTED]") {
				t.Errorf("output = %q, missing [REDACTED] marker", buf.String())
			}
		})
	}
}

func TestNew_KeepsPageFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("page saved",
		slog.String("template_key", "homepage"),
		slog.String("path", "/api/v1/pages/1"),
		slog.String("version", "v1.2.3"),
	)

	for _, w := range []string{"homepage", "/api/v1/pages/1", "v1.2.3"} {
		if !strings.Contains(buf.String(), w) {
			t.Errorf("output = %q, want %q kept", buf.String(), w)
		}
	}
}

func TestIsSensitiveHeader(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]bool{
		"Authorization":       true,
		"proxy-authorization": true,
		"COOKIE":              true,
		"Set-Cookie":          true,
		"X-Api-Key":           true,
		"Accept":              false,
		"X-Request-ID":        false,
		"Idempotency-Key":     false,
	} {
		if got := logging.IsSensitiveHeader(name); got != want {
			t.Errorf("IsSensitiveHeader(%q) = %v, want %v", name, got, want)
		}
	}
}
