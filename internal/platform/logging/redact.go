package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders are lowercase header names whose values never reach a log.
var sensitiveHeaders = []string{
	"authorization",
	"proxy-authorization",
	"cookie",
	"set-cookie",
	"x-api-key",
}

// IsSensitiveHeader reports whether the named HTTP header carries
// credentials. Matching ignores case.
func IsSensitiveHeader(name string) bool {
	name = strings.ToLower(name)
	for _, h := range sensitiveHeaders {
		if h == name {
			return true
		}
	}
	return false
}

var (
	// "Bearer <token>" inside any string value.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// header.payload.signature; 10+ chars per segment so dotted versions
	// and template keys are left alone.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	// api_key=..., apikey: ... inside CMS URLs and error messages.
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// newRedactAttr builds the masq ReplaceAttr used by every handler New
// creates. It catches credentials that reach a log line other than through
// the request middleware, e.g. a CMS error body echoed into an error.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+8)
	for _, h := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(h))
	}
	for _, f := range []string{"password", "secret", "token"} {
		opts = append(opts, masq.WithFieldName(f))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)
	return masq.New(opts...)
}
