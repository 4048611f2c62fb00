package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/renato0307/keyhelp/internal/search"
)

func newSearchCommand(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Rank the catalog against a query",
		Long: `Fuzzy-search the catalog the same way the TUI does and print the
ranked matches with their scores. Description matches weigh 3x, notation
matches 2x and category matches 1x.`,
		Example: `  keyhelp search split window
  keyhelp search "<leader>g" --limit 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, _, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = opts.cfg.Limit()
			}

			engine := search.NewEngine(items, limit)
			matches := engine.Search(strings.Join(args, " "))
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching shortcuts")
				return nil
			}
			printMatches(cmd.OutOrStdout(), matches)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of results (0 = no limit)")
	return cmd
}

func printMatches(w io.Writer, matches []search.Match) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Keys", "Description", "Category", "Mode", "Score"})
	for i, m := range matches {
		t.AppendRow(table.Row{i + 1, m.Item.Notation, m.Item.Description, m.Item.Category.Label(), m.Item.Mode, m.Score})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
