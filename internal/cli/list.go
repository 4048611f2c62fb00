package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/renato0307/keyhelp/internal/catalog"
)

func newListCommand(opts *options) *cobra.Command {
	var category string
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the shortcut catalog",
		Long: `Print every shortcut of the catalog, optionally limited to one category.
The yaml output is a valid catalog file for --catalog.`,
		Example: `  keyhelp list
  keyhelp list --category git
  keyhelp list -o yaml > my-catalog.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, _, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			if category != "" {
				c, err := catalog.ParseCategory(category)
				if err != nil {
					return err
				}
				items = catalog.FilterByCategory(items, c)
			}

			return printItems(cmd.OutOrStdout(), items, output)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list this category")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, yaml or json")
	return cmd
}

func printItems(w io.Writer, items []catalog.Item, output string) error {
	switch output {
	case "yaml":
		data, err := catalog.Marshal(items)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(items)

	case "table":
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Keys", "Description", "Category", "Mode"})
		for _, item := range items {
			t.AppendRow(table.Row{item.Notation, item.Description, item.Category.Label(), item.Mode})
		}
		t.AppendFooter(table.Row{"", fmt.Sprintf("%d shortcuts", len(items))})
		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil

	default:
		return fmt.Errorf("unknown output format %q (want table, yaml or json)", output)
	}
}
