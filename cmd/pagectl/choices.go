package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/page-template-admin/internal/app"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

func newChoicesCmd(opts *globalOptions) *cobra.Command {
	var placement placementFlags

	cmd := &cobra.Command{
		Use:   "choices",
		Short: "List the templates a page form would offer",
		Long: `List the templates legal for a new page, or for an existing page with
--instance, in the order the admin form offers them. The preselected
template is marked with *.

Examples:
  pagectl choices --dsn file:pages.db
  pagectl choices --dsn file:pages.db --parent 3
  pagectl choices --dsn file:pages.db --instance 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := opts.logger(cmd)

			registry, err := opts.registry()
			if err != nil {
				return err
			}
			tree, closeTree, err := opts.openTree(ctx, logger)
			if err != nil {
				return err
			}
			defer closeTree()

			var instanceID, parentID *int64
			if cmd.Flags().Changed("instance") {
				instanceID = &placement.instanceID
			}
			if cmd.Flags().Changed("parent") {
				if placement.parentID <= 0 {
					return fmt.Errorf("--parent must be a positive page ID, got %d", placement.parentID)
				}
				parentID = &placement.parentID
			}

			svc := app.NewPageAdminService(registry, tree, nil, logger)
			choices, err := svc.TemplateChoices(ctx, instanceID, parentID)
			if err != nil {
				return err
			}
			return writeChoices(cmd.OutOrStdout(), choices)
		},
	}

	placement.register(cmd, "ID of the parent page (default: the instance's parent, or first level)")
	return cmd
}

func writeChoices(w io.Writer, choices *ports.Choices) error {
	if len(choices.Templates) == 0 {
		_, err := fmt.Fprintln(w, "no template may be used here")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, t := range choices.Templates {
		mark := " "
		if t.Key == choices.Default {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", mark, t.Key, t.Title)
	}
	return tw.Flush()
}
