package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
	"github.com/jsamuelsen11/page-template-admin/internal/platform/catalog"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

func newTemplatesCmd(opts *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the registered templates",
		Long: `List the registered templates in registration order with their placement
flags.

Examples:
  pagectl templates
  pagectl templates --catalog configs/templates.yaml -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := opts.registry()
			if err != nil {
				return err
			}

			switch output {
			case outputTable:
				return writeTemplateTable(cmd.OutOrStdout(), registry.All())
			case outputYAML:
				return catalog.Encode(cmd.OutOrStdout(), registry.All())
			default:
				return fmt.Errorf("unsupported output %q (want %s or %s)", output, outputTable, outputYAML)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or yaml")
	return cmd
}

func writeTemplateTable(w io.Writer, templates []template.Template) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tTITLE\tFLAGS\tREGIONS")
	for _, t := range templates {
		regions := make([]string, 0, len(t.Regions))
		for _, r := range t.Regions {
			regions = append(regions, r.Key)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Key, t.Title, flagList(t), strings.Join(regions, ","))
	}
	return tw.Flush()
}

func flagList(t template.Template) string {
	var flags []string
	if t.Unique {
		flags = append(flags, "unique")
	}
	if t.FirstLevelOnly {
		flags = append(flags, "first_level_only")
	}
	if t.NoChildren {
		flags = append(flags, "no_children")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}
