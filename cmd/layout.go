package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/alertkit/internal/output"
	"github.com/marcus/alertkit/pkg/alert"
	"github.com/marcus/alertkit/pkg/overlay"
)

const (
	defaultTerminalCols = 80
	defaultTerminalRows = 24
)

var layoutFlags contentFlags

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the computed geometry of an alert without showing it",
	Example: `  alertkit layout -t Title -s "Body text" -b OK
  alertkit layout --width 375 --height 667 --keyboard 216 --input Email --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		keyboard, _ := cmd.Flags().GetFloat64("keyboard")
		depth, _ := cmd.Flags().GetInt("depth")

		spec, err := resolveSpec(&layoutFlags, appConfig, getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		viewport, err := layoutViewport(cmd)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		host := overlay.NewHost()
		if spec.markdown {
			spec.subtitle = renderMarkdown(spec.subtitle, bodyCols(host.Metrics(), spec.appearance(), viewport))
		}
		a, err := spec.build(&tapRecorder{}, alert.WithMeasurer(host.Measurer()), alert.WithLogger(logger))
		if err != nil {
			output.Error("%v", err)
			return err
		}
		g := a.Layout(viewport, keyboard)

		if jsonOutput {
			return output.JSON(output.SummarizeGeometry(g))
		}

		w := cmd.OutOrStdout()
		root := output.GeometryTree(g)
		fmt.Fprintf(w, "%s %s\n", root.ID, root.Title)
		fmt.Fprintln(w, output.RenderTree(root, output.TreeRenderOptions{
			MaxDepth:  depth,
			ShowKind:  true,
			ShowFlags: true,
		}))
		return nil
	},
}

// layoutViewport resolves the viewport in layout units. Explicit unit
// flags win over cell flags, which win over the current terminal size.
func layoutViewport(cmd *cobra.Command) (alert.Size, error) {
	width, _ := cmd.Flags().GetFloat64("width")
	height, _ := cmd.Flags().GetFloat64("height")
	if width > 0 && height > 0 {
		return alert.Size{W: width, H: height}, nil
	}
	if width != 0 || height != 0 {
		return alert.Size{}, fmt.Errorf("--width and --height must both be positive")
	}

	cols, _ := cmd.Flags().GetInt("cols")
	rows, _ := cmd.Flags().GetInt("rows")
	if cols <= 0 || rows <= 0 {
		cols, rows = terminalSize()
	}
	return overlay.DefaultCellMetrics.Units(cols, rows), nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (cols, rows int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultTerminalCols, defaultTerminalRows
	}
	return w, h
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	addContentFlags(layoutCmd.Flags(), &layoutFlags)
	layoutCmd.Flags().Float64("width", 0, "viewport width in layout units")
	layoutCmd.Flags().Float64("height", 0, "viewport height in layout units")
	layoutCmd.Flags().Int("cols", 0, "viewport width in terminal cells (default: current terminal)")
	layoutCmd.Flags().Int("rows", 0, "viewport height in terminal cells (default: current terminal)")
	layoutCmd.Flags().Float64("keyboard", 0, "keyboard inset in layout units")
	layoutCmd.Flags().Int("depth", 0, "maximum tree depth (0 = unlimited)")
	layoutCmd.Flags().Bool("json", false, "JSON output")
}
