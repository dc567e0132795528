package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/page-template-admin/internal/adapters/store/memstore"
	appctx "github.com/jsamuelsen11/page-template-admin/internal/app/context"
	"github.com/jsamuelsen11/page-template-admin/internal/domain"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/telemetry"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
	"github.com/jsamuelsen11/page-template-admin/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func int64Ptr(v int64) *int64 { return &v }

func testTemplates() []template.Template {
	regions := []template.Region{{Key: "main", Title: "Main Content"}}
	return []template.Template{
		{Key: "internalpage", Title: "Internal Page", Path: "pages/internal.html", Regions: regions},
		{Key: "homepage", Title: "Home Page", Path: "pages/home.html", Regions: regions, Unique: true},
		{Key: "landingpage", Title: "Landing Page", Path: "pages/landing.html", Regions: regions, FirstLevelOnly: true},
		{Key: "newsitem", Title: "News Item", Path: "pages/news.html", Regions: regions, NoChildren: true},
	}
}

func testRegistry() *template.Registry {
	reg := template.NewRegistry()
	reg.MustRegister(testTemplates()...)
	return reg
}

func newMemService(t *testing.T) (*PageAdminService, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	return NewPageAdminService(testRegistry(), store, nil, discardLogger()), store
}

// seed creates a page directly in the store, bypassing validation.
func seed(t *testing.T, store *memstore.Store, slug, key string, parent *int64) *page.Page {
	t.Helper()
	unique := key == "homepage"
	p, err := store.CreatePage(context.Background(), &page.Page{
		Title: slug, Slug: slug, TemplateKey: key, ParentID: parent,
	}, unique)
	if err != nil {
		t.Fatalf("seeding %q: %v", slug, err)
	}
	return p
}

func choiceKeys(c *ports.Choices) []string {
	keys := make([]string, 0, len(c.Templates))
	for _, t := range c.Templates {
		keys = append(keys, t.Key)
	}
	return keys
}

func requireFieldError(t *testing.T, err error, field, want string) {
	t.Helper()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *domain.ValidationError", err)
	}
	if got := verr.Fields[field]; got != want {
		t.Fatalf("Fields[%q] = %q, want %q (all fields: %v)", field, got, want, verr.Fields)
	}
}

// --- NewPageAdminService ---

func TestNewPageAdminService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewPageAdminService(testRegistry(), memstore.New(), nil, nil)
	if svc.logger == nil {
		t.Fatal("NewPageAdminService(nil logger) should create a no-op logger, got nil")
	}
}

// --- Templates ---

func TestPageAdminService_Templates(t *testing.T) {
	t.Parallel()
	svc, _ := newMemService(t)

	all := svc.ListTemplates(context.Background())
	if len(all) != 4 || all[0].Key != "internalpage" {
		t.Fatalf("ListTemplates() = %v, want 4 templates starting with internalpage", all)
	}

	got, err := svc.GetTemplate(context.Background(), "homepage")
	if err != nil {
		t.Fatalf("GetTemplate(homepage) error = %v", err)
	}
	if !got.Unique {
		t.Error("GetTemplate(homepage).Unique = false, want true")
	}

	if _, err := svc.GetTemplate(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetTemplate(missing) error = %v, want ErrNotFound", err)
	}
}

// --- TemplateChoices ---

func TestPageAdminService_TemplateChoices(t *testing.T) {
	t.Parallel()

	t.Run("create form on an empty tree offers everything", func(t *testing.T) {
		t.Parallel()
		svc, _ := newMemService(t)

		got, err := svc.TemplateChoices(context.Background(), nil, nil)
		require.NoError(t, err)

		want := []string{"internalpage", "homepage", "landingpage", "newsitem"}
		if diff := cmp.Diff(want, choiceKeys(got)); diff != "" {
			t.Errorf("choices mismatch (-want +got):\n%s", diff)
		}
		if got.Default != "internalpage" {
			t.Errorf("Default = %q, want internalpage", got.Default)
		}
	})

	t.Run("create form under a parent hides used and first-level templates", func(t *testing.T) {
		t.Parallel()
		svc, store := newMemService(t)
		seed(t, store, "home", "homepage", nil)
		about := seed(t, store, "about", "internalpage", nil)

		got, err := svc.TemplateChoices(context.Background(), nil, int64Ptr(about.ID))
		require.NoError(t, err)

		if diff := cmp.Diff([]string{"internalpage", "newsitem"}, choiceKeys(got)); diff != "" {
			t.Errorf("choices mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nothing is legal under a leaf", func(t *testing.T) {
		t.Parallel()
		svc, store := newMemService(t)
		news := seed(t, store, "news", "newsitem", nil)

		got, err := svc.TemplateChoices(context.Background(), nil, int64Ptr(news.ID))
		require.NoError(t, err)

		if len(got.Templates) != 0 {
			t.Errorf("choices = %v, want none", choiceKeys(got))
		}
		if got.Default != "" {
			t.Errorf("Default = %q, want empty", got.Default)
		}
	})

	t.Run("edit form keeps the instance's unique template", func(t *testing.T) {
		t.Parallel()
		svc, store := newMemService(t)
		home := seed(t, store, "home", "homepage", nil)

		got, err := svc.TemplateChoices(context.Background(), int64Ptr(home.ID), nil)
		require.NoError(t, err)

		assert.Contains(t, choiceKeys(got), "homepage")
		assert.Equal(t, "homepage", got.Default)
	})

	t.Run("edit form defaults parent to the instance's parent", func(t *testing.T) {
		t.Parallel()
		svc, store := newMemService(t)
		about := seed(t, store, "about", "internalpage", nil)
		team := seed(t, store, "team", "internalpage", int64Ptr(about.ID))
		seed(t, store, "jobs", "internalpage", int64Ptr(team.ID))

		got, err := svc.TemplateChoices(context.Background(), int64Ptr(team.ID), nil)
		require.NoError(t, err)

		// landingpage is first-level only; newsitem is illegal because team has a child.
		if diff := cmp.Diff([]string{"internalpage", "homepage"}, choiceKeys(got)); diff != "" {
			t.Errorf("choices mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown instance", func(t *testing.T) {
		t.Parallel()
		svc, _ := newMemService(t)

		_, err := svc.TemplateChoices(context.Background(), int64Ptr(99), nil)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("unknown parent", func(t *testing.T) {
		t.Parallel()
		svc, _ := newMemService(t)

		_, err := svc.TemplateChoices(context.Background(), nil, int64Ptr(99))
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestPageAdminService_TemplateChoices_FetchesTreeFactsOnce(t *testing.T) {
	t.Parallel()
	tree := mocks.NewMockPageTree(t)
	svc := NewPageAdminService(testRegistry(), tree, nil, discardLogger())

	parent := &page.Page{ID: 5, Title: "About", Slug: "about", TemplateKey: "internalpage"}
	tree.EXPECT().CountByTemplate(mock.Anything, "homepage", int64(0)).Return(0, nil).Once()
	tree.EXPECT().Page(mock.Anything, int64(5)).Return(parent, nil).Once()

	got, err := svc.TemplateChoices(context.Background(), nil, int64Ptr(5))
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"internalpage", "homepage", "newsitem"}, choiceKeys(got)); diff != "" {
		t.Errorf("choices mismatch (-want +got):\n%s", diff)
	}
}

func TestPageAdminService_TemplateChoices_SharesRequestContext(t *testing.T) {
	t.Parallel()
	tree := mocks.NewMockPageTree(t)
	svc := NewPageAdminService(testRegistry(), tree, nil, discardLogger())

	parent := &page.Page{ID: 5, Title: "About", Slug: "about", TemplateKey: "internalpage"}
	tree.EXPECT().CountByTemplate(mock.Anything, "homepage", int64(0)).Return(1, nil).Once()
	tree.EXPECT().Page(mock.Anything, int64(5)).Return(parent, nil).Once()

	rc := appctx.New(context.Background())
	ctx := appctx.WithRequestContext(context.Background(), rc)

	for range 2 {
		if _, err := svc.TemplateChoices(ctx, nil, int64Ptr(5)); err != nil {
			t.Fatalf("TemplateChoices() error = %v", err)
		}
	}
}

func TestPageAdminService_TemplateChoices_TreeFailure(t *testing.T) {
	t.Parallel()
	tree := mocks.NewMockPageTree(t)
	svc := NewPageAdminService(testRegistry(), tree, nil, discardLogger())

	tree.EXPECT().CountByTemplate(mock.Anything, "homepage", int64(0)).Return(0, domain.ErrUnavailable)

	_, err := svc.TemplateChoices(context.Background(), nil, nil)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

// --- SubmitPage ---

func TestPageAdminService_SubmitPage_Create(t *testing.T) {
	t.Parallel()
	svc, store := newMemService(t)

	got, err := svc.SubmitPage(context.Background(), ports.PageForm{
		Title: "Home", Slug: "home", TemplateKey: "homepage",
	})
	require.NoError(t, err)

	if got.ID <= 0 {
		t.Errorf("created page ID = %d, want > 0", got.ID)
	}
	stored, err := store.Page(context.Background(), got.ID)
	require.NoError(t, err)
	assert.Equal(t, "homepage", stored.TemplateKey)
}

func TestPageAdminService_SubmitPage_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setup     func(t *testing.T, store *memstore.Store) ports.PageForm
		wantField string
		wantMsg   string
	}{
		{
			name: "unknown template",
			setup: func(_ *testing.T, _ *memstore.Store) ports.PageForm {
				return ports.PageForm{Title: "X", Slug: "x", TemplateKey: "nope"}
			},
			wantField: "template_key",
			wantMsg:   domain.MsgInvalidChoice,
		},
		{
			name: "missing title",
			setup: func(_ *testing.T, _ *memstore.Store) ports.PageForm {
				return ports.PageForm{Slug: "x", TemplateKey: "internalpage"}
			},
			wantField: "title",
			wantMsg:   domain.MsgRequired,
		},
		{
			name: "second homepage",
			setup: func(t *testing.T, store *memstore.Store) ports.PageForm {
				seed(t, store, "home", "homepage", nil)
				return ports.PageForm{Title: "Home 2", Slug: "home-2", TemplateKey: "homepage"}
			},
			wantField: "parent",
			wantMsg:   "Template already used somewhere else.",
		},
		{
			name: "first-level template under a parent",
			setup: func(t *testing.T, store *memstore.Store) ports.PageForm {
				about := seed(t, store, "about", "internalpage", nil)
				return ports.PageForm{Title: "L", Slug: "l", TemplateKey: "landingpage", ParentID: int64Ptr(about.ID)}
			},
			wantField: "parent",
			wantMsg:   "This template cannot be used for a subpage.",
		},
		{
			name: "parent forbids children",
			setup: func(t *testing.T, store *memstore.Store) ports.PageForm {
				news := seed(t, store, "news", "newsitem", nil)
				return ports.PageForm{Title: "C", Slug: "c", TemplateKey: "internalpage", ParentID: int64Ptr(news.ID)}
			},
			wantField: "parent",
			wantMsg:   "This template does not allow subpages.",
		},
		{
			name: "leaf template on a page with children",
			setup: func(t *testing.T, store *memstore.Store) ports.PageForm {
				about := seed(t, store, "about", "internalpage", nil)
				seed(t, store, "team", "internalpage", int64Ptr(about.ID))
				return ports.PageForm{ID: int64Ptr(about.ID), Title: "About", Slug: "about", TemplateKey: "newsitem"}
			},
			wantField: "parent",
			wantMsg:   "This template does not allow subpages.",
		},
		{
			name: "parent inside own subtree",
			setup: func(t *testing.T, store *memstore.Store) ports.PageForm {
				about := seed(t, store, "about", "internalpage", nil)
				team := seed(t, store, "team", "internalpage", int64Ptr(about.ID))
				return ports.PageForm{
					ID: int64Ptr(about.ID), Title: "About", Slug: "about",
					TemplateKey: "internalpage", ParentID: int64Ptr(team.ID),
				}
			},
			wantField: "parent",
			wantMsg:   msgOwnSubtree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, store := newMemService(t)
			form := tt.setup(t, store)

			_, err := svc.SubmitPage(context.Background(), form)
			requireFieldError(t, err, tt.wantField, tt.wantMsg)
		})
	}
}

func TestPageAdminService_SubmitPage_EditKeepsUniqueTemplate(t *testing.T) {
	t.Parallel()
	svc, store := newMemService(t)
	home := seed(t, store, "home", "homepage", nil)

	got, err := svc.SubmitPage(context.Background(), ports.PageForm{
		ID: int64Ptr(home.ID), Title: "Welcome", Slug: "welcome", TemplateKey: "homepage",
	})
	require.NoError(t, err)

	assert.Equal(t, home.ID, got.ID)
	assert.Equal(t, "Welcome", got.Title)
	assert.Equal(t, home.CreatedAt, got.CreatedAt)
}

func TestPageAdminService_SubmitPage_UnknownParent(t *testing.T) {
	t.Parallel()
	svc, _ := newMemService(t)

	_, err := svc.SubmitPage(context.Background(), ports.PageForm{
		Title: "X", Slug: "x", TemplateKey: "internalpage", ParentID: int64Ptr(42),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestPageAdminService_SubmitPage_UnknownInstance(t *testing.T) {
	t.Parallel()
	svc, _ := newMemService(t)

	_, err := svc.SubmitPage(context.Background(), ports.PageForm{
		ID: int64Ptr(42), Title: "X", Slug: "x", TemplateKey: "internalpage",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestPageAdminService_SubmitPage_StorageConflict(t *testing.T) {
	t.Parallel()
	tree := mocks.NewMockPageTree(t)
	svc := NewPageAdminService(testRegistry(), tree, nil, discardLogger())

	// The count says the template is free, but a concurrent request claims
	// it before the write lands.
	tree.EXPECT().CountByTemplate(mock.Anything, "homepage", int64(0)).Return(0, nil)
	tree.EXPECT().CreatePage(mock.Anything, mock.AnythingOfType("*page.Page"), true).
		Return(nil, domain.ErrConflict)

	_, err := svc.SubmitPage(context.Background(), ports.PageForm{
		Title: "Home", Slug: "home", TemplateKey: "homepage",
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
}

func TestPageAdminService_SubmitPage_PassesUniqueFlag(t *testing.T) {
	t.Parallel()
	tree := mocks.NewMockPageTree(t)
	svc := NewPageAdminService(testRegistry(), tree, nil, discardLogger())

	existing := &page.Page{ID: 3, Title: "Home", Slug: "home", TemplateKey: "homepage"}
	tree.EXPECT().Page(mock.Anything, int64(3)).Return(existing, nil)
	tree.EXPECT().UpdatePage(mock.Anything, mock.MatchedBy(func(p *page.Page) bool {
		return p.ID == 3 && p.TemplateKey == "internalpage"
	}), false).Return(&page.Page{ID: 3, Title: "Home", Slug: "home", TemplateKey: "internalpage"}, nil)

	got, err := svc.SubmitPage(context.Background(), ports.PageForm{
		ID: int64Ptr(3), Title: "Home", Slug: "home", TemplateKey: "internalpage",
	})
	require.NoError(t, err)
	assert.Equal(t, "internalpage", got.TemplateKey)
}

// --- MovePage ---

func TestPageAdminService_MovePage(t *testing.T) {
	t.Parallel()

	t.Run("moves under a new parent", func(t *testing.T) {
		t.Parallel()
		svc, store := newMemService(t)
		about := seed(t, store, "about", "internalpage", nil)
		team := seed(t, store, "team", "internalpage", nil)

		got, err := svc.MovePage(context.Background(), team.ID, about.ID, page.PositionLastChild)
		require.NoError(t, err)

		require.NotNil(t, got.ParentID)
		assert.Equal(t, about.ID, *got.ParentID)
	})

	t.Run("first-level template cannot become a subpage", func(t *testing.T) {
		t.Parallel()
		svc, store := newMemService(t)
		about := seed(t, store, "about", "internalpage", nil)
		landing := seed(t, store, "landing", "landingpage", nil)

		_, err := svc.MovePage(context.Background(), landing.ID, about.ID, page.PositionLastChild)
		if !template.IsKind(err, template.KindNotAllowedAsSubpage) {
			t.Errorf("error = %v, want KindNotAllowedAsSubpage", err)
		}
	})

	t.Run("sibling of a subpage is a subpage", func(t *testing.T) {
		t.Parallel()
		svc, store := newMemService(t)
		about := seed(t, store, "about", "internalpage", nil)
		team := seed(t, store, "team", "internalpage", int64Ptr(about.ID))
		landing := seed(t, store, "landing", "landingpage", nil)

		_, err := svc.MovePage(context.Background(), landing.ID, team.ID, page.PositionRight)
		if !template.IsKind(err, template.KindNotAllowedAsSubpage) {
			t.Errorf("error = %v, want KindNotAllowedAsSubpage", err)
		}
	})

	t.Run("first-level template may move among first-level pages", func(t *testing.T) {
		t.Parallel()
		svc, store := newMemService(t)
		about := seed(t, store, "about", "internalpage", nil)
		landing := seed(t, store, "landing", "landingpage", nil)

		got, err := svc.MovePage(context.Background(), landing.ID, about.ID, page.PositionLeft)
		require.NoError(t, err)
		assert.Nil(t, got.ParentID)
	})

	t.Run("leaf parent rejects the move", func(t *testing.T) {
		t.Parallel()
		svc, store := newMemService(t)
		news := seed(t, store, "news", "newsitem", nil)
		about := seed(t, store, "about", "internalpage", nil)

		_, err := svc.MovePage(context.Background(), about.ID, news.ID, page.PositionLastChild)
		if !template.IsKind(err, template.KindParentForbidsChildren) {
			t.Errorf("error = %v, want KindParentForbidsChildren", err)
		}
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("error = %v, want to unwrap to ErrValidation", err)
		}
	})

	t.Run("own subtree", func(t *testing.T) {
		t.Parallel()
		svc, store := newMemService(t)
		about := seed(t, store, "about", "internalpage", nil)
		team := seed(t, store, "team", "internalpage", int64Ptr(about.ID))

		_, err := svc.MovePage(context.Background(), about.ID, team.ID, page.PositionLastChild)
		requireFieldError(t, err, "target_id", msgOwnSubtree)
	})

	t.Run("relative to itself", func(t *testing.T) {
		t.Parallel()
		svc, store := newMemService(t)
		about := seed(t, store, "about", "internalpage", nil)

		_, err := svc.MovePage(context.Background(), about.ID, about.ID, page.PositionLeft)
		requireFieldError(t, err, "target_id", msgTargetIsSelf)
	})

	t.Run("invalid position", func(t *testing.T) {
		t.Parallel()
		svc, _ := newMemService(t)

		_, err := svc.MovePage(context.Background(), 1, 2, page.Position("first-child"))
		requireFieldError(t, err, "position", domain.MsgInvalidChoice)
	})

	t.Run("unknown page", func(t *testing.T) {
		t.Parallel()
		svc, store := newMemService(t)
		about := seed(t, store, "about", "internalpage", nil)

		_, err := svc.MovePage(context.Background(), 99, about.ID, page.PositionLastChild)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestPageAdminService_MovePage_StoreFailure(t *testing.T) {
	t.Parallel()
	tree := mocks.NewMockPageTree(t)
	svc := NewPageAdminService(testRegistry(), tree, nil, discardLogger())

	cut := &page.Page{ID: 1, Title: "A", Slug: "a", TemplateKey: "internalpage"}
	target := &page.Page{ID: 2, Title: "B", Slug: "b", TemplateKey: "internalpage"}
	tree.EXPECT().Page(mock.Anything, int64(1)).Return(cut, nil)
	tree.EXPECT().Page(mock.Anything, int64(2)).Return(target, nil)
	tree.EXPECT().MovePage(mock.Anything, int64(1), int64(2), page.PositionLastChild).
		Return(nil, domain.ErrUnavailable)

	_, err := svc.MovePage(context.Background(), 1, 2, page.PositionLastChild)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
	if _, ok := template.AsRuleError(err); ok {
		t.Error("storage failure reported as a template rule error")
	}
}

// --- Get / List / Delete ---

func TestPageAdminService_GetListDelete(t *testing.T) {
	t.Parallel()
	svc, store := newMemService(t)
	ctx := context.Background()

	about := seed(t, store, "about", "internalpage", nil)
	team := seed(t, store, "team", "internalpage", int64Ptr(about.ID))
	home := seed(t, store, "home", "homepage", nil)

	got, err := svc.GetPage(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "team", got.Slug)

	pages, err := svc.ListPages(ctx)
	require.NoError(t, err)
	slugs := make([]string, 0, len(pages))
	for _, p := range pages {
		slugs = append(slugs, p.Slug)
	}
	if diff := cmp.Diff([]string{"about", "team", "home"}, slugs); diff != "" {
		t.Errorf("ListPages() order mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, svc.DeletePage(ctx, about.ID))
	if _, err := svc.GetPage(ctx, team.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetPage(deleted child) error = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetPage(ctx, home.ID); err != nil {
		t.Errorf("GetPage(unrelated) error = %v", err)
	}
	if err := svc.DeletePage(ctx, about.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeletePage(twice) error = %v, want ErrNotFound", err)
	}
}

func TestPageAdminService_ListPages_Error(t *testing.T) {
	t.Parallel()
	tree := mocks.NewMockPageTree(t)
	svc := NewPageAdminService(testRegistry(), tree, nil, discardLogger())

	tree.EXPECT().ListPages(mock.Anything).Return(nil, domain.ErrUnavailable)

	if _, err := svc.ListPages(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

// --- Metrics ---

func TestPageAdminService_RecordsCheckOutcome(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(mp, "test-service")
	require.NoError(t, err)

	store := memstore.New()
	svc := NewPageAdminService(testRegistry(), store, metrics, discardLogger())
	seed(t, store, "home", "homepage", nil)

	_, err = svc.SubmitPage(context.Background(), ports.PageForm{
		Title: "Home 2", Slug: "home-2", TemplateKey: "homepage",
	})
	require.Error(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	outcomes := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "page_template.check.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "check counter data is %T", m.Data)
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value(telemetry.AttrOutcome)
				outcomes[v.AsString()] += dp.Value
			}
		}
	}

	assert.Equal(t, map[string]int64{"duplicate_unique": 1}, outcomes)
}
