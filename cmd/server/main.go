// Package main is the entry point for the page template admin API. It wires
// all dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/page-template-admin/internal/adapters/http"
	"github.com/jsamuelsen11/page-template-admin/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/page-template-admin/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/page-template-admin/internal/app"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/catalog"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/config"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/health"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/logging"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/telemetry"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	store := do.MustInvoke[pageStore](injector)
	templates := do.MustInvoke[*template.Registry](injector)
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)
	registry.Register(health.NewFunc("templates", func(context.Context) error {
		if templates.Len() == 0 {
			return errors.New("no templates registered")
		}
		return nil
	}))
	defer closeStore(store, logger)

	logger.Info("page tree ready",
		slog.String("backend", cfg.Store.Backend),
		slog.Int("templates", templates.Len()),
	)

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := server.Run(runCtx, serverShutdownTimeout)
	if runErr != nil {
		logger.Error("server stopped", slog.Any("error", runErr))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return runErr
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*template.Registry, error) {
		return catalog.NewRegistry(cfg.Templates.CatalogPath)
	})

	do.Provide(injector, func(i do.Injector) (pageStore, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return newPageStore(cfg, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.PageTree, error) {
		return do.MustInvoke[pageStore](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PageAdminService, error) {
		registry := do.MustInvoke[*template.Registry](i)
		tree := do.MustInvoke[ports.PageTree](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewPageAdminService(registry, tree, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(cfg.Server.ReadinessTimeout), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PageHandler, error) {
		svc := do.MustInvoke[ports.PageAdminService](i)
		return handlers.NewPageHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TemplateHandler, error) {
		svc := do.MustInvoke[ports.PageAdminService](i)
		return handlers.NewTemplateHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		pageH := do.MustInvoke[*handlers.PageHandler](i)
		templateH := do.MustInvoke[*handlers.TemplateHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(pageH, templateH, healthH, middleware.Pipeline(middleware.Options{
			Logger:  logger,
			Metrics: metrics,
			Timeout: cfg.Server.WriteTimeout,
		})...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
