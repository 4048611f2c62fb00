package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/renato0307/keyhelp/internal/diagram"
	"github.com/renato0307/keyhelp/internal/notation"
	"github.com/renato0307/keyhelp/internal/ui"
)

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <notation>",
		Short: "Show how a key notation is split into frames",
		Long: `Parse a Vim key notation and print its frames, the legend bar and the
keyboard diagram. In animation mode one diagram is printed per frame.`,
		Example: `  keyhelp parse "<leader>ff"
  keyhelp parse "<C-w>v" --mode animation`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := ui.GetTheme(opts.cfg.Theme)
			printParse(cmd.OutOrStdout(), theme, opts.cfg.DiagramMode(), args[0])
			return nil
		},
	}
}

func printParse(w io.Writer, theme *ui.Theme, mode diagram.Mode, text string) {
	seq := notation.Parse(text)

	fmt.Fprintf(w, "Notation: %s\n", text)
	fmt.Fprintf(w, "Frames:   %d\n", len(seq))
	for i, frame := range seq {
		fmt.Fprintf(w, "  %d. %s\n", i+1, frame)
	}

	if mode == diagram.ModeLegend {
		d := diagram.Render(diagram.ModeLegend, seq, 0)
		fmt.Fprintf(w, "Legend:   %s\n\n", theme.RenderLegendBar(d.Legend))
		printLines(w, theme, d.Lines)
		return
	}

	if len(seq) == 0 {
		fmt.Fprintln(w)
		printLines(w, theme, diagram.Render(diagram.ModeAnimation, seq, 0).Lines)
		return
	}
	for i := range seq {
		d := diagram.Render(diagram.ModeAnimation, seq, i)
		fmt.Fprintf(w, "\nFrame %d/%d\n", i+1, len(seq))
		printLines(w, theme, d.Lines)
	}
}

func printLines(w io.Writer, theme *ui.Theme, lines []diagram.Line) {
	for _, line := range lines {
		fmt.Fprintln(w, theme.RenderLine(line))
	}
}
