package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/alertkit/internal/output"
	"github.com/marcus/alertkit/pkg/alert"
	"github.com/marcus/alertkit/pkg/overlay"
)

var showFlags contentFlags

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Present an alert and print how it was dismissed",
	Example: `  alertkit show --category warning -t "Disk almost full" -s "Free some space" -b Cancel -b "Open Finder"
  alertkit show -t Login --input Username --secure-input Password -b "Sign in" --json
  alertkit show --category info -t Saved --duration 3 --duration-button OK`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		noRecord, _ := cmd.Flags().GetBool("no-record")

		spec, err := resolveSpec(&showFlags, appConfig, getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		a, err := runAlert(spec)
		if err != nil {
			if jsonOutput {
				output.JSONError("present_failed", err)
			} else {
				output.Error("%v", err)
			}
			return err
		}

		o := newOutcome(a)
		if !noRecord {
			recordOutcome(cmd.Context(), projectPaths().Journal, o)
		}
		if jsonOutput {
			return output.JSON(o)
		}
		o.writeText(cmd.OutOrStdout())
		return nil
	},
}

// runAlert presents spec in a full-screen program and blocks until the
// alert is dismissed.
func runAlert(spec alertSpec) (*alert.Alert, error) {
	rec := &tapRecorder{logger: logger}
	return runOverlay(func(h *overlay.Host) (*alert.Responder, error) {
		s := spec
		if s.markdown {
			size, _ := h.Size()
			s.subtitle = renderMarkdown(s.subtitle, bodyCols(h.Metrics(), s.appearance(), size))
		}
		a, err := s.build(rec, h.AlertOptions()...)
		if err != nil {
			return nil, err
		}
		return a.Present(s.presentOptions()...)
	}, nil)
}

// runOverlay runs one alert program to completion and returns the alert.
func runOverlay(present overlay.PresentFunc, background overlay.BackgroundFunc) (*alert.Alert, error) {
	host := overlay.NewHost(overlay.WithHostLogger(logger))

	var opts []overlay.ModelOption
	if background != nil {
		opts = append(opts, overlay.WithBackground(background))
	}
	p := tea.NewProgram(overlay.NewModel(host, present, opts...), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run alert: %w", err)
	}

	m, ok := final.(overlay.Model)
	if !ok {
		return nil, errors.New("run alert: unexpected model")
	}
	if err := m.Err(); err != nil {
		return nil, err
	}
	a := m.Alert()
	if a == nil {
		return nil, errors.New("run alert: alert was never presented")
	}
	// ctrl+c quits before the fade-out completes.
	if a.State() != alert.StateDismissed {
		host.Loop().Flush()
	}
	logger.Debug("alert finished", "alert", a.ID(), "reason", a.Reason().String())
	return a, nil
}

// bodyCols is the width in cells available to the subtitle.
func bodyCols(m overlay.CellMetrics, ap alert.Appearance, viewport alert.Size) int {
	return m.Cols(viewport.W - 2*ap.Margin - 2*ap.Padding)
}

func init() {
	rootCmd.AddCommand(showCmd)

	addContentFlags(showCmd.Flags(), &showFlags)
	showCmd.Flags().Bool("json", false, "JSON output")
	showCmd.Flags().Bool("no-record", false, "do not write the outcome to the journal")
}
