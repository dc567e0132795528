package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/page-template-admin/internal/adapters/store/memstore"
	"github.com/jsamuelsen11/page-template-admin/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/catalog"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/logging"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	catalogPath string
	dsn         string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "pagectl",
		Short: "Inspect page templates and check where they may be used",
		Long: `pagectl reads the template catalog and, given a page database, reports
which templates a page may use.

Without --dsn the page tree is empty, so only first-level placements of new
pages can be checked.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "",
		"template catalog YAML file (default: built-in templates)")
	root.PersistentFlags().StringVar(&opts.dsn, "dsn", "",
		"SQLite page database, e.g. file:pages.db")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn",
		"log level: debug, info, warn, error")

	root.AddCommand(
		newTemplatesCmd(opts),
		newCheckCmd(opts),
		newChoicesCmd(opts),
	)
	return root
}

func (o *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	return logging.New(o.logLevel, "text", cmd.ErrOrStderr())
}

func (o *globalOptions) registry() (*template.Registry, error) {
	return catalog.NewRegistry(o.catalogPath)
}

// openTree opens the page database named by --dsn, or an empty in-memory
// tree when none is given. The returned func releases the database.
func (o *globalOptions) openTree(ctx context.Context, logger *slog.Logger) (ports.PageTree, func(), error) {
	if o.dsn == "" {
		return memstore.New(), func() {}, nil
	}

	store, err := sqlite.New(o.dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("opening page database: %w", err)
	}
	logger.DebugContext(ctx, "opened page database", slog.String("dsn", o.dsn))

	return store, func() {
		if err := store.Close(); err != nil {
			logger.WarnContext(ctx, "closing page database", slog.Any("error", err))
		}
	}, nil
}
