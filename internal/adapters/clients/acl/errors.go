// Package acl is the anti-corruption layer in front of the remote CMS page
// API. It implements ports.PageTree by translating CMS page documents (see
// acl/cms) to domain pages and CMS problem responses to domain errors.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/page-template-admin/internal/domain"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
)

const maxProblemSize = 64 << 10

// problem is the subset of an RFC 9457 body the CMS sends that this layer
// reads. rule and template are extensions set when the CMS itself rejects a
// template placement.
type problem struct {
	Detail   string `json:"detail"`
	Rule     string `json:"rule"`
	Template string `json:"template"`
	Errors   []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// TranslateHTTPError maps a CMS error response to a domain error:
//
//	400, 422 with a known rule   *template.RuleError
//	400, 422 with field errors   *domain.ValidationError
//	400, 422                     domain.ErrValidation
//	404                          domain.ErrNotFound
//	409                          domain.ErrConflict (lost unique claim)
//	401, 403                     domain.ErrForbidden
//	5xx                          domain.ErrUnavailable
//
// Only application/problem+json bodies are read; otherwise the status text
// is the detail.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)
	detail := p.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if kind, ok := template.ParseKind(p.Rule); ok {
			return &template.RuleError{Kind: kind, TemplateKey: p.Template}
		}
		if len(p.Errors) > 0 {
			fields := make(map[string]string, len(p.Errors))
			for _, e := range p.Errors {
				fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
			}
			return &domain.ValidationError{Fields: fields}
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case code == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", code, detail)
	}
}

// readProblem returns the zero problem for anything it cannot parse.
func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mt != "application/problem+json" {
		return p
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProblemSize)).Decode(&p); err != nil {
		return problem{}
	}
	return p
}
