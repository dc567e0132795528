package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
)

// errRejected is returned when a template fails a placement rule, so the
// process exits non-zero after the rule has been printed.
var errRejected = errors.New("template rejected")

type placementFlags struct {
	instanceID int64
	parentID   int64
}

func (f *placementFlags) register(cmd *cobra.Command, parentHelp string) {
	cmd.Flags().Int64Var(&f.instanceID, "instance", 0, "ID of the existing page being edited")
	cmd.Flags().Int64Var(&f.parentID, "parent", 0, parentHelp)
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	var (
		placement   placementFlags
		templateKey string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a template may be used in a placement",
		Long: `Run the template placement rules for one template and print the first
rule that rejects it.

With --instance the check is for an existing page; its current parent is used
unless --parent is given. --parent 0 places the page at the first level.

Examples:
  pagectl check --dsn file:pages.db --template homepage
  pagectl check --dsn file:pages.db --template newsitem --instance 12
  pagectl check --dsn file:pages.db --template landingpage --instance 12 --parent 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := opts.logger(cmd)

			registry, err := opts.registry()
			if err != nil {
				return err
			}
			t, err := registry.Lookup(templateKey)
			if err != nil {
				return err
			}

			tree, closeTree, err := opts.openTree(ctx, logger)
			if err != nil {
				return err
			}
			defer closeTree()

			checkOpts := []template.Option{}
			if cmd.Flags().Changed("instance") {
				instance, err := tree.Page(ctx, placement.instanceID)
				if err != nil {
					return err
				}
				checkOpts = append(checkOpts, template.WithInstance(instance))
				if !cmd.Flags().Changed("parent") && instance.ParentID != nil {
					checkOpts = append(checkOpts, template.WithParentID(*instance.ParentID))
				}
			}
			if cmd.Flags().Changed("parent") && placement.parentID > 0 {
				checkOpts = append(checkOpts, template.WithParentID(placement.parentID))
			}

			err = template.NewValidator(registry, tree).Check(ctx, t, checkOpts...)
			if ruleErr, ok := template.AsRuleError(err); ok {
				logger.DebugContext(ctx, "template rejected",
					slog.String("template", t.Key),
					slog.String("rule", ruleErr.Kind.String()),
				)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", t.Key, ruleErr.Kind.Message(), ruleErr.Kind)
				return errRejected
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", t.Key)
			return nil
		},
	}

	placement.register(cmd, "ID of the parent page; 0 for a first-level page")
	cmd.Flags().StringVarP(&templateKey, "template", "t", "", "template key to check")
	_ = cmd.MarkFlagRequired("template")
	return cmd
}
