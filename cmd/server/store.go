package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/page-template-admin/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/page-template-admin/internal/adapters/store/memstore"
	"github.com/jsamuelsen11/page-template-admin/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/config"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/httpclient"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/telemetry"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

// pageStore is a page tree backend that also reports its own readiness.
type pageStore interface {
	ports.PageTree
	ports.HealthChecker
}

var (
	_ pageStore = (*memstore.Store)(nil)
	_ pageStore = (*sqlite.Store)(nil)
	_ pageStore = (*acl.CMSClient)(nil)
)

// newPageStore builds the backend selected by store.backend.
func newPageStore(cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (pageStore, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return memstore.New(), nil
	case config.BackendSQLite:
		store, err := sqlite.New(cfg.Store.DSN)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return store, nil
	case config.BackendCMS:
		client := httpclient.New(&cfg.Client, "cms-api", metrics, logger)
		return acl.NewCMSClient(client, logger), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func closeStore(store pageStore, logger *slog.Logger) {
	closer, ok := store.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Error("closing page store", slog.String("store", store.Name()), slog.Any("error", err))
	}
}
