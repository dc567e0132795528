package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/page-template-admin/internal/adapters/clients/acl/cms"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/httpclient"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

// Compile-time interface check.
var _ ports.PageTree = (*CMSClient)(nil)

const pagesPath = "/api/v1/pages"

// CMSClient is the outbound adapter for the remote CMS page API. It
// implements [ports.PageTree]; the CMS owns the tree and enforces unique
// template claims, this client only translates.
//
// Every call goes through [httpclient.Client]. HTTP errors become domain
// errors via [TranslateHTTPError].
type CMSClient struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewCMSClient creates a CMSClient sending requests through client, whose
// base URL is the CMS root (e.g. "http://cms-api.prod.svc:8080").
func NewCMSClient(client *httpclient.Client, logger *slog.Logger) *CMSClient {
	return &CMSClient{
		client: client,
		logger: logger,
	}
}

// Page fetches GET /api/v1/pages/{id}.
// Returns [domain.ErrNotFound] if the CMS returns 404.
func (c *CMSClient) Page(ctx context.Context, id int64) (*page.Page, error) {
	var dto cms.PageDTO
	if err := c.do(ctx, call{op: "Page", method: http.MethodGet, path: pagePath(id), want: http.StatusOK, out: &dto}); err != nil {
		return nil, err
	}
	p := cms.ToDomainPage(&dto)
	return &p, nil
}

// CountByTemplate fetches GET /api/v1/pages?template_key=&exclude= and
// returns the reported count.
func (c *CMSClient) CountByTemplate(ctx context.Context, key string, excludeID int64) (int, error) {
	q := url.Values{}
	q.Set("template_key", key)
	if excludeID > 0 {
		q.Set("exclude", strconv.FormatInt(excludeID, 10))
	}

	var dto cms.PageListResponseDTO
	if err := c.do(ctx, call{op: "CountByTemplate", method: http.MethodGet, path: pagesPath + "?" + q.Encode(), want: http.StatusOK, out: &dto}); err != nil {
		return 0, err
	}
	return int(dto.Count), nil
}

// CountChildren fetches GET /api/v1/pages/{id}/children/count.
func (c *CMSClient) CountChildren(ctx context.Context, id int64) (int, error) {
	var dto cms.CountResponseDTO
	if err := c.do(ctx, call{op: "CountChildren", method: http.MethodGet, path: pagePath(id) + "/children/count", want: http.StatusOK, out: &dto}); err != nil {
		return 0, err
	}
	return int(dto.Count), nil
}

// ListPages fetches GET /api/v1/pages and returns the pages in tree order.
func (c *CMSClient) ListPages(ctx context.Context) ([]page.Page, error) {
	var dto cms.PageListResponseDTO
	if err := c.do(ctx, call{op: "ListPages", method: http.MethodGet, path: pagesPath, want: http.StatusOK, out: &dto}); err != nil {
		return nil, err
	}
	return page.TreeOrder(cms.ToDomainPageList(dto)), nil
}

// CreatePage sends POST /api/v1/pages. Returns [domain.ErrConflict] when
// the CMS refuses a unique template claim. The request carries an
// Idempotency-Key, so a retried create cannot produce two pages.
func (c *CMSClient) CreatePage(ctx context.Context, p *page.Page, uniqueTemplate bool) (*page.Page, error) {
	reqDTO := cms.ToWritePageRequest(p, uniqueTemplate)

	var respDTO cms.PageDTO
	if err := c.do(ctx, call{op: "CreatePage", method: http.MethodPost, path: pagesPath, want: http.StatusCreated, in: reqDTO, out: &respDTO}); err != nil {
		return nil, err
	}
	created := cms.ToDomainPage(&respDTO)
	return &created, nil
}

// UpdatePage sends PUT /api/v1/pages/{id}.
func (c *CMSClient) UpdatePage(ctx context.Context, p *page.Page, uniqueTemplate bool) (*page.Page, error) {
	reqDTO := cms.ToWritePageRequest(p, uniqueTemplate)

	var respDTO cms.PageDTO
	if err := c.do(ctx, call{op: "UpdatePage", method: http.MethodPut, path: pagePath(p.ID), want: http.StatusOK, in: reqDTO, out: &respDTO}); err != nil {
		return nil, err
	}
	updated := cms.ToDomainPage(&respDTO)
	return &updated, nil
}

// MovePage sends POST /api/v1/pages/{id}/move.
func (c *CMSClient) MovePage(ctx context.Context, id, targetID int64, pos page.Position) (*page.Page, error) {
	reqDTO := cms.ToMoveRequest(targetID, pos)

	var respDTO cms.PageDTO
	if err := c.do(ctx, call{op: "MovePage", method: http.MethodPost, path: pagePath(id) + "/move", want: http.StatusOK, in: reqDTO, out: &respDTO}); err != nil {
		return nil, err
	}
	moved := cms.ToDomainPage(&respDTO)
	return &moved, nil
}

// DeletePage sends DELETE /api/v1/pages/{id}; the CMS removes descendants.
func (c *CMSClient) DeletePage(ctx context.Context, id int64) error {
	return c.do(ctx, call{op: "DeletePage", method: http.MethodDelete, path: pagePath(id), want: http.StatusNoContent})
}

func pagePath(id int64) string {
	return fmt.Sprintf("%s/%d", pagesPath, id)
}
