package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/marcus/alertkit/internal/config"
	"github.com/marcus/alertkit/pkg/alert"
)

const defaultButtonLabel = "Done"

// alertSpec is a contentFlags resolved against the app config and theme.
type alertSpec struct {
	category  alert.Category
	animation alert.AnimationStyle
	duration  time.Duration

	title        string
	subtitle     string
	buttons      []buttonFlag
	inputs       []string
	secureInputs []string
	textBlocks   []string
	noIcon       bool
	markdown     bool

	theme *config.Theme
}

func resolveSpec(f *contentFlags, cfg *config.Config, base string) (alertSpec, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	s := alertSpec{
		category:     alert.CategorySuccess,
		animation:    alert.AnimationTopToBottom,
		title:        f.title,
		subtitle:     f.subtitle,
		buttons:      f.buttons,
		inputs:       f.inputs,
		secureInputs: f.secureInputs,
		textBlocks:   f.textBlocks,
		noIcon:       f.noIcon,
		markdown:     f.markdown,
	}

	switch {
	case f.category.set:
		s.category = f.category.c
	case cfg.Category != "":
		c, err := alert.ParseCategory(cfg.Category)
		if err != nil {
			return alertSpec{}, fmt.Errorf("config category: %w", err)
		}
		s.category = c
	}

	switch {
	case f.animation.set:
		s.animation = f.animation.s
	case cfg.Animation != "":
		st, err := alert.ParseAnimationStyle(cfg.Animation)
		if err != nil {
			return alertSpec{}, fmt.Errorf("config animation: %w", err)
		}
		s.animation = st
	}

	seconds := cfg.DurationSeconds
	if f.duration.set {
		seconds = f.duration.n
	}
	if seconds < 0 {
		return alertSpec{}, fmt.Errorf("duration must not be negative: %d", seconds)
	}
	s.duration = time.Duration(seconds) * time.Second

	themePath := f.themeFile
	if themePath == "" {
		themePath = cfg.Theme(base)
	}
	if themePath != "" {
		th, err := config.LoadTheme(themePath)
		if err != nil {
			return alertSpec{}, err
		}
		s.theme = &th
	}

	if len(s.buttons) == 0 {
		s.buttons = []buttonFlag{{label: defaultButtonLabel}}
	}
	return s, nil
}

func (s alertSpec) appearance() alert.Appearance {
	ap := alert.AppearanceFor(s.category)
	if s.theme != nil {
		ap = s.theme.Appearance(s.category)
	}
	if s.noIcon {
		ap = ap.With(alert.WithCircularIcon(false))
	}
	return ap
}

// build creates the alert. Button taps are reported to rec.
func (s alertSpec) build(rec *tapRecorder, opts ...alert.Option) (*alert.Alert, error) {
	opts = append(opts, alert.WithAppearance(s.appearance()))
	a := alert.New(s.title, s.subtitle, opts...)

	for _, p := range s.inputs {
		if _, err := a.AddInput(p); err != nil {
			return nil, err
		}
	}
	for _, p := range s.secureInputs {
		if _, err := a.AddSecureInput(p); err != nil {
			return nil, err
		}
	}
	for _, text := range s.textBlocks {
		if _, err := a.AddTextBlock(text); err != nil {
			return nil, err
		}
	}
	for _, b := range s.buttons {
		var opts []alert.ButtonOption
		if b.duration {
			opts = append(opts, alert.WithDurationStatus())
		}
		if _, err := a.AddButton(b.label, alert.TargetMethod(rec, b.label), opts...); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (s alertSpec) presentOptions() []alert.PresentOption {
	opts := []alert.PresentOption{alert.WithAnimation(s.animation)}
	if s.duration > 0 {
		opts = append(opts, alert.WithDuration(s.duration))
	}
	return opts
}

// tapRecorder is the target of every CLI button.
type tapRecorder struct {
	logger *slog.Logger
	label  string
	taps   int
}

func (r *tapRecorder) Perform(selector string) {
	r.label = selector
	r.taps++
	if r.logger != nil {
		r.logger.Info("button tapped", "button", selector)
	}
}
