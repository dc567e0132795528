// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/page-template-admin/internal/app/context"
	"github.com/jsamuelsen11/page-template-admin/internal/domain"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/telemetry"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

// Compile-time check that PageAdminService implements ports.PageAdminService.
var _ ports.PageAdminService = (*PageAdminService)(nil)

// Field messages for placements the tree itself cannot represent.
const (
	msgOwnSubtree   = "a page cannot be placed inside its own subtree"
	msgTargetIsSelf = "a page cannot be moved relative to itself"
)

// PageAdminService implements ports.PageAdminService. It holds the template
// registry by reference and builds a validator over a request-scoped view of
// the page tree for every call, at the three points where a template is
// chosen: populating form choices, submitting the form and moving a page.
type PageAdminService struct {
	registry *template.Registry
	tree     ports.PageTree
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewPageAdminService creates a PageAdminService. metrics may be nil; a nil
// logger discards output.
func NewPageAdminService(
	registry *template.Registry,
	tree ports.PageTree,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *PageAdminService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PageAdminService{
		registry: registry,
		tree:     tree,
		metrics:  metrics,
		logger:   logger,
	}
}

// ListTemplates returns every registered template in registration order.
func (s *PageAdminService) ListTemplates(_ context.Context) []template.Template {
	return s.registry.All()
}

// GetTemplate returns a registered template by key.
func (s *PageAdminService) GetTemplate(_ context.Context, key string) (template.Template, error) {
	return s.registry.Lookup(key)
}

// TemplateChoices lists the templates a create or edit form may offer. The
// default is the instance's current template when it is still legal, else
// the first legal template.
func (s *PageAdminService) TemplateChoices(ctx context.Context, instanceID, parentID *int64) (*ports.Choices, error) {
	rc := requestContext(ctx)
	tree := s.cachedTree(rc)
	validator := template.NewValidator(s.registry, tree)

	var (
		opts     []template.Option
		instance *page.Page
	)
	if instanceID != nil {
		var err error
		instance, err = tree.Page(rc, *instanceID)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch page",
				slog.String("operation", "TemplateChoices"),
				slog.Int64("id", *instanceID),
				slog.Any("error", err),
			)
			return nil, err
		}
		opts = append(opts, template.WithInstance(instance))
		if parentID == nil {
			parentID = instance.ParentID
		}
	}
	if parentID != nil {
		opts = append(opts, template.WithParentID(*parentID))
	}

	valid, err := validator.ValidTemplates(rc, opts...)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list valid templates",
			slog.String("operation", "TemplateChoices"),
			slog.Any("error", err),
		)
		return nil, err
	}

	choices := &ports.Choices{Templates: valid}
	for _, t := range valid {
		if instance != nil && t.Key == instance.TemplateKey {
			choices.Default = t.Key
			break
		}
	}
	if choices.Default == "" && len(valid) > 0 {
		choices.Default = valid[0].Key
	}
	return choices, nil
}

// SubmitPage validates a submitted create or edit form and persists it.
// Template rule failures are reported on the parent field.
func (s *PageAdminService) SubmitPage(ctx context.Context, form ports.PageForm) (*page.Page, error) {
	s.logger.InfoContext(ctx, "submitting page",
		slog.String("slug", form.Slug),
		slog.String("template", form.TemplateKey),
	)

	rc := requestContext(ctx)
	tree := s.cachedTree(rc)

	p := &page.Page{
		Title:       form.Title,
		Slug:        form.Slug,
		TemplateKey: form.TemplateKey,
		ParentID:    form.ParentID,
	}

	var instance *page.Page
	if form.ID != nil {
		var err error
		instance, err = tree.Page(rc, *form.ID)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch page",
				slog.String("operation", "SubmitPage"),
				slog.Int64("id", *form.ID),
				slog.Any("error", err),
			)
			return nil, err
		}
		p.ID = instance.ID
		p.SortOrder = instance.SortOrder
		p.CreatedAt = instance.CreatedAt
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	t, err := s.registry.Lookup(p.TemplateKey)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewFieldError("template_key", domain.MsgInvalidChoice)
	}
	if err != nil {
		return nil, err
	}

	if instance != nil && p.ParentID != nil {
		inside, err := tree.insideSubtree(rc, *p.ParentID, instance.ID)
		if err != nil {
			return nil, err
		}
		if inside {
			return nil, domain.NewFieldError("parent", msgOwnSubtree)
		}
	}

	opts := []template.Option{template.WithInstance(instance)}
	if p.ParentID != nil {
		opts = append(opts, template.WithParentID(*p.ParentID))
	}

	err = template.NewValidator(s.registry, tree).Check(rc, t, opts...)
	s.recordCheck(ctx, "SubmitPage", t.Key, err)
	if rerr, ok := template.AsRuleError(err); ok {
		s.logger.InfoContext(ctx, "template rejected",
			slog.String("operation", "SubmitPage"),
			slog.String("template", t.Key),
			slog.String("rule", rerr.Kind.String()),
		)
		return nil, domain.NewFieldError("parent", rerr.Kind.Message())
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check template",
			slog.String("operation", "SubmitPage"),
			slog.String("template", t.Key),
			slog.Any("error", err),
		)
		return nil, err
	}

	action := &savePageAction{tree: s.tree, page: p, unique: t.Unique, previous: instance}
	if instance != nil {
		if prev, err := s.registry.Lookup(instance.TemplateKey); err == nil {
			action.previousUnique = prev.Unique
		}
	}

	key := "page:new"
	if instance != nil {
		key = pageKey(instance.ID)
	}
	if err := s.commit(ctx, rc, "SubmitPage", func() error { return rc.Stage(key, p, action) }); err != nil {
		return nil, err
	}
	return action.result, nil
}

// MovePage moves a page relative to target once its template is known to be
// legal under the new parent. A template rule failure is returned as the
// *template.RuleError itself.
func (s *PageAdminService) MovePage(ctx context.Context, id, targetID int64, pos page.Position) (*page.Page, error) {
	s.logger.InfoContext(ctx, "moving page",
		slog.Int64("id", id),
		slog.Int64("target_id", targetID),
		slog.String("position", pos.String()),
	)

	if !pos.IsValid() {
		return nil, domain.NewFieldError("position", domain.MsgInvalidChoice)
	}
	if id == targetID {
		return nil, domain.NewFieldError("target_id", msgTargetIsSelf)
	}

	rc := requestContext(ctx)
	tree := s.cachedTree(rc)

	cut, err := tree.Page(rc, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch page",
			slog.String("operation", "MovePage"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	target, err := tree.Page(rc, targetID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch target page",
			slog.String("operation", "MovePage"),
			slog.Int64("target_id", targetID),
			slog.Any("error", err),
		)
		return nil, err
	}

	newParent := pos.NewParent(target)
	if newParent != nil {
		inside, err := tree.insideSubtree(rc, *newParent, id)
		if err != nil {
			return nil, err
		}
		if inside {
			return nil, domain.NewFieldError("target_id", msgOwnSubtree)
		}
	}

	t, err := s.registry.Lookup(cut.TemplateKey)
	if err != nil {
		s.logger.ErrorContext(ctx, "page uses an unregistered template",
			slog.String("operation", "MovePage"),
			slog.Int64("id", id),
			slog.String("template", cut.TemplateKey),
			slog.Any("error", err),
		)
		return nil, err
	}

	opts := []template.Option{template.WithInstance(cut)}
	switch {
	case pos == page.PositionLastChild:
		opts = append(opts, template.WithParent(target))
	case newParent != nil:
		opts = append(opts, template.WithParentID(*newParent))
	default:
		opts = append(opts, template.WithParent(nil))
	}

	err = template.NewValidator(s.registry, tree).Check(rc, t, opts...)
	s.recordCheck(ctx, "MovePage", t.Key, err)
	if err != nil {
		if rerr, ok := template.AsRuleError(err); ok {
			s.logger.InfoContext(ctx, "move rejected by template",
				slog.String("operation", "MovePage"),
				slog.Int64("id", id),
				slog.String("template", t.Key),
				slog.String("rule", rerr.Kind.String()),
			)
		} else {
			s.logger.ErrorContext(ctx, "failed to check template",
				slog.String("operation", "MovePage"),
				slog.Int64("id", id),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	action := &movePageAction{tree: s.tree, id: id, targetID: targetID, pos: pos, origin: cut.ParentID}
	if err := s.commit(ctx, rc, "MovePage", func() error { return rc.AddAction(action) }); err != nil {
		return nil, err
	}
	return action.result, nil
}

// GetPage returns a single page by ID.
func (s *PageAdminService) GetPage(ctx context.Context, id int64) (*page.Page, error) {
	s.logger.InfoContext(ctx, "fetching page", slog.Int64("id", id))

	p, err := s.tree.Page(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch page",
			slog.String("operation", "GetPage"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return p, nil
}

// ListPages returns every page depth-first in sibling order.
func (s *PageAdminService) ListPages(ctx context.Context) ([]page.Page, error) {
	s.logger.InfoContext(ctx, "listing pages")

	pages, err := s.tree.ListPages(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list pages",
			slog.String("operation", "ListPages"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return page.TreeOrder(pages), nil
}

// DeletePage removes a page together with its descendants.
func (s *PageAdminService) DeletePage(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting page", slog.Int64("id", id))

	if err := s.tree.DeletePage(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete page",
			slog.String("operation", "DeletePage"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func (s *PageAdminService) cachedTree(rc *appctx.RequestContext) *cachedTree {
	return &cachedTree{rc: rc, tree: s.tree}
}

// commit queues one write through stage and executes it. Cached tree facts
// are dropped afterwards since the write may have changed any of them.
func (s *PageAdminService) commit(ctx context.Context, rc *appctx.RequestContext, op string, stage func() error) error {
	if err := stage(); err != nil {
		return err
	}
	err := rc.Commit(ctx)
	rc.Forget("")
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to persist page",
			slog.String("operation", op),
			slog.Bool("tree_consistent", !errors.Is(err, appctx.ErrRollbackIncomplete)),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func (s *PageAdminService) recordCheck(ctx context.Context, op, key string, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	if rerr, ok := template.AsRuleError(err); ok {
		outcome = rerr.Kind.String()
	} else if err != nil {
		outcome = "error"
	}
	s.metrics.TemplateCheckTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrTemplate.String(key),
		telemetry.AttrOutcome.String(outcome),
	))
}

// requestContext returns the RequestContext installed by the HTTP
// middleware, or a fresh one for callers outside a request.
func requestContext(ctx context.Context) *appctx.RequestContext {
	if rc := appctx.FromContext(ctx); rc != nil {
		return rc
	}
	return appctx.New(ctx)
}
