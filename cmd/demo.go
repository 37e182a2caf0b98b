package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/marcus/alertkit/internal/config"
	"github.com/marcus/alertkit/internal/output"
	"github.com/marcus/alertkit/pkg/alert"
	"github.com/marcus/alertkit/pkg/overlay"
)

const (
	demoSubtitle = "You've just displayed this awesome Pop Up View"
	demoQuit     = "quit"
)

// demoEntry is one gallery item. build receives the current theme, which
// may be nil.
type demoEntry struct {
	name  string
	build func(th *config.Theme, opts []alert.Option) (*alert.Alert, []alert.PresentOption, error)
}

func themed(th *config.Theme, c alert.Category, extra ...alert.AppearanceOption) alert.Appearance {
	ap := alert.AppearanceFor(c)
	if th != nil {
		ap = th.Appearance(c)
	}
	return ap.With(extra...)
}

// simpleEntry is a category alert with a single Done button.
func simpleEntry(c alert.Category, title, subtitle string) demoEntry {
	return demoEntry{
		name: c.String(),
		build: func(th *config.Theme, opts []alert.Option) (*alert.Alert, []alert.PresentOption, error) {
			a := alert.New(title, subtitle, append(opts, alert.WithAppearance(themed(th, c)))...)
			_, err := a.AddButton("Done", alert.Callback(func() { logger.Info("done tapped", "category", c.String()) }))
			return a, nil, err
		},
	}
}

// statusCard is custom content drawn in place of the subtitle.
type statusCard struct {
	rows [][2]string
}

func (s statusCard) Size() alert.Size { return alert.Size{W: 216, H: 70} }

func (s statusCard) Render(width, height int) string {
	key := lipgloss.NewStyle().Faint(true)
	var lines []string
	for _, r := range s.rows {
		lines = append(lines, key.Render(r[0]+":")+" "+r[1])
	}
	return lipgloss.NewStyle().Width(width).MaxHeight(height).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

func demoEntries() []demoEntry {
	return []demoEntry{
		{
			name: "success",
			build: func(th *config.Theme, opts []alert.Option) (*alert.Alert, []alert.PresentOption, error) {
				a := alert.New("Congratulations you've won the best prize ever", demoSubtitle,
					append(opts, alert.WithAppearance(themed(th, alert.CategorySuccess)))...)
				rec := &tapRecorder{logger: logger}
				if _, err := a.AddButton("First Button", alert.TargetMethod(rec, "firstButton")); err != nil {
					return nil, nil, err
				}
				_, err := a.AddButton("Second Button", alert.Callback(func() { logger.Info("second button tapped") }))
				return a, nil, err
			},
		},
		simpleEntry(alert.CategoryError, "Hold On...",
			"You have not saved your Submission yet. Please save the Submission before accessing the Responses list. "+
				strings.Repeat("Blah de blah de blah, blah. ", 6)),
		simpleEntry(alert.CategoryNotice, "Notice", demoSubtitle),
		simpleEntry(alert.CategoryWarning, "Warning", demoSubtitle),
		simpleEntry(alert.CategoryInfo, "Info", demoSubtitle),
		{
			name: "edit",
			build: func(th *config.Theme, opts []alert.Option) (*alert.Alert, []alert.PresentOption, error) {
				a := alert.New("Info", demoSubtitle, append(opts, alert.WithAppearance(themed(th, alert.CategoryEdit)))...)
				field, err := a.AddInput("Enter your name")
				if err != nil {
					return nil, nil, err
				}
				_, err = a.AddButton("Show Name", alert.Callback(func() { logger.Info("show name", "value", field.Value()) }))
				return a, nil, err
			},
		},
		{
			name: "wait",
			build: func(th *config.Theme, opts []alert.Option) (*alert.Alert, []alert.PresentOption, error) {
				a := alert.New("Please wait", "Closing by itself in a few seconds",
					append(opts, alert.WithAppearance(themed(th, alert.CategoryWait)))...)
				_, err := a.AddButton("Close", alert.NoAction(), alert.WithDurationStatus())
				return a, []alert.PresentOption{alert.WithDuration(5 * time.Second)}, err
			},
		},
		{
			name: "login",
			build: func(th *config.Theme, opts []alert.Option) (*alert.Alert, []alert.PresentOption, error) {
				ap := themed(th, alert.CategorySuccess, alert.WithTitleBottomMargin(42))
				a := alert.New("Login", "", append(opts, alert.WithAppearance(ap))...)
				user, err := a.AddInput("Username")
				if err != nil {
					return nil, nil, err
				}
				if _, err := a.AddSecureInput("Password"); err != nil {
					return nil, nil, err
				}
				if _, err := a.AddButton("Login", alert.Callback(func() { logger.Info("logged in", "user", user.Value()) })); err != nil {
					return nil, nil, err
				}
				_, err = a.AddButton("Duration Button", alert.Callback(func() { logger.Info("duration button tapped") }),
					alert.WithButtonColors("#A52A2A", "#FFFF00"), alert.WithDurationStatus())
				return a, []alert.PresentOption{alert.WithDuration(10 * time.Second)}, err
			},
		},
		{
			name: "custom-content",
			build: func(th *config.Theme, opts []alert.Option) (*alert.Alert, []alert.PresentOption, error) {
				a := alert.New("Build finished", "", append(opts, alert.WithAppearance(themed(th, alert.CategoryInfo)))...)
				card := statusCard{rows: [][2]string{{"target", "alertkit"}, {"status", "passed"}, {"took", "3m12s"}}}
				if err := a.SetCustomContent(card); err != nil {
					return nil, nil, err
				}
				_, err := a.AddButton("Done", alert.NoAction())
				return a, []alert.PresentOption{alert.WithAnimation(alert.AnimationBottomToTop)}, err
			},
		},
		{
			name: "custom-color",
			build: func(th *config.Theme, opts []alert.Option) (*alert.Alert, []alert.PresentOption, error) {
				ap := themed(th, alert.CategorySuccess, alert.WithCustomIcon("★", "#FFA500"), alert.WithAccentColor("#FFA500"))
				a := alert.New("Custom Color", "Custom Color", append(opts, alert.WithAppearance(ap))...)
				rec := &tapRecorder{logger: logger}
				if _, err := a.AddButton("First Button", alert.TargetMethod(rec, "firstButton")); err != nil {
					return nil, nil, err
				}
				_, err := a.AddButton("Second Button", alert.Callback(func() { logger.Info("second button tapped") }))
				return a, []alert.PresentOption{alert.WithAnimation(alert.AnimationLeftToRight)}, err
			},
		},
	}
}

// themeStore holds the latest theme. A reload affects the next alert only.
type themeStore struct {
	p atomic.Pointer[config.Theme]
}

func (s *themeStore) Load() *config.Theme { return s.p.Load() }

func (s *themeStore) Store(th config.Theme) { s.p.Store(&th) }

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Browse a gallery of alert styles",
	Long: `Pick an alert from the gallery, watch it animate in, dismiss it and pick
again. When a theme file is configured it is watched, and edits apply to
the next alert.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := projectPaths()
		themePath, _ := cmd.Flags().GetString("theme")
		if themePath == "" {
			themePath = paths.Theme
		}

		store := &themeStore{}
		var watcher *config.ThemeWatcher
		if themePath != "" {
			th, err := config.LoadTheme(themePath)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			store.Store(th)

			watcher, err = config.WatchTheme(themePath, config.DefaultReloadDebounce, logger)
			if err != nil {
				output.Warning("theme reload disabled: %v", err)
			} else {
				defer watcher.Close()
			}
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		g, ctx := errgroup.WithContext(ctx)

		if watcher != nil {
			g.Go(func() error {
				return watcher.Run(ctx, store.Store)
			})
		}
		g.Go(func() error {
			defer cancel()
			return runGallery(ctx, store, paths.Journal)
		})
		return g.Wait()
	},
}

func runGallery(ctx context.Context, store *themeStore, journalPath string) error {
	entries := demoEntries()
	names := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		names = append(names, e.name)
	}
	names = append(names, demoQuit)

	choice := entries[0].name
	for {
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("alertkit gallery").
				Description("Pick an alert to present").
				Options(huh.NewOptions(names...)...).
				Value(&choice),
		))
		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) || ctx.Err() != nil {
				return nil
			}
			return err
		}
		if choice == demoQuit {
			return nil
		}

		entry, ok := findEntry(entries, choice)
		if !ok {
			return fmt.Errorf("unknown gallery entry %q", choice)
		}
		a, err := runOverlay(func(h *overlay.Host) (*alert.Responder, error) {
			a, popts, err := entry.build(store.Load(), h.AlertOptions())
			if err != nil {
				return nil, err
			}
			return a.Present(popts...)
		}, galleryBackground(entry.name))
		if err != nil {
			return err
		}

		o := newOutcome(a)
		recordOutcome(ctx, journalPath, o)
		output.Success("%s: %s %s", entry.name, o.Reason, o.Button)
	}
}

func findEntry(entries []demoEntry, name string) (demoEntry, bool) {
	for _, e := range entries {
		if e.name == name {
			return e, true
		}
	}
	return demoEntry{}, false
}

// galleryBackground draws a faint caption behind the alert.
func galleryBackground(name string) overlay.BackgroundFunc {
	style := lipgloss.NewStyle().Faint(true)
	return func(width, height int) string {
		caption := style.Render(" alertkit demo · " + name + " · esc closes, f1 help")
		return caption + strings.Repeat("\n", max(0, height-1))
	}
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().String("theme", "", "TOML theme file to apply and watch")
}
