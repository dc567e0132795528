package memstore_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/page-template-admin/internal/adapters/store/memstore"
	"github.com/jsamuelsen11/page-template-admin/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

func TestStore_PageTree(t *testing.T) {
	t.Parallel()

	storetest.Run(t, func(*testing.T) ports.PageTree { return memstore.New() })
}

func TestStore_ConcurrentUniqueClaims(t *testing.T) {
	t.Parallel()

	s := memstore.New()
	const writers = 16

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.CreatePage(context.Background(), &page.Page{
				Title: "Home", Slug: "home", TemplateKey: "homepage",
			}, true)
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	n, err := s.CountByTemplate(context.Background(), "homepage", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	s := memstore.New()
	created, err := s.CreatePage(context.Background(), &page.Page{Title: "A", Slug: "a", TemplateKey: "internalpage"}, false)
	require.NoError(t, err)

	created.Title = "mutated"
	got, err := s.Page(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Title)
}
