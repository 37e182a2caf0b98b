package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/marcus/alertkit/pkg/alert"
)

// Theme is a TOML file of appearance overrides. Unset fields keep the
// category defaults.
type Theme struct {
	Accent string `toml:"accent,omitempty"`

	Box      BoxTheme      `toml:"box"`
	Text     TextTheme     `toml:"text"`
	Buttons  ButtonTheme   `toml:"buttons"`
	Icon     IconTheme     `toml:"icon"`
	Behavior BehaviorTheme `toml:"behavior"`
}

type BoxTheme struct {
	Padding      *float64 `toml:"padding,omitempty"`
	Margin       *float64 `toml:"margin,omitempty"`
	Background   string   `toml:"background,omitempty"`
	Border       string   `toml:"border,omitempty"`
	CornerRadius *float64 `toml:"corner_radius,omitempty"`
}

type TextTheme struct {
	TitleColor    string `toml:"title_color,omitempty"`
	SubtitleColor string `toml:"subtitle_color,omitempty"`
	TitleAlign    string `toml:"title_align,omitempty"`
	TextAlign     string `toml:"text_align,omitempty"`
}

type ButtonTheme struct {
	Height         *float64 `toml:"height,omitempty"`
	SeparatorColor string   `toml:"separator_color,omitempty"`
}

type IconTheme struct {
	Show       *bool  `toml:"show,omitempty"`
	Glyph      string `toml:"glyph,omitempty"`
	Background string `toml:"background,omitempty"`
}

type BehaviorTheme struct {
	AutoDismiss         *bool    `toml:"auto_dismiss,omitempty"`
	DropShadow          *bool    `toml:"drop_shadow,omitempty"`
	ShadowOpacity       *float64 `toml:"shadow_opacity,omitempty"`
	HideOnBackgroundTap *bool    `toml:"hide_on_background_tap,omitempty"`
}

// DefaultTheme mirrors DefaultAppearance with every field spelled out.
func DefaultTheme() Theme {
	d := alert.DefaultAppearance()
	return Theme{
		Box: BoxTheme{
			Padding:      &d.Padding,
			Margin:       &d.Margin,
			Background:   d.ContentViewColor,
			CornerRadius: &d.ContentViewCornerRadius,
		},
		Text: TextTheme{
			TitleColor:    d.TitleColor,
			SubtitleColor: d.SubtitleColor,
			TitleAlign:    d.TitleAlignment.String(),
			TextAlign:     d.TextAlignment.String(),
		},
		Buttons: ButtonTheme{
			Height:         &d.ButtonHeight,
			SeparatorColor: d.ButtonSeparatorColor,
		},
		Icon: IconTheme{Show: &d.ShowCircularIcon},
		Behavior: BehaviorTheme{
			AutoDismiss:         &d.ShouldAutoDismiss,
			DropShadow:          &d.ShowDropShadow,
			ShadowOpacity:       &d.ShadowOpacity,
			HideOnBackgroundTap: &d.HideWhenBackgroundTapped,
		},
	}
}

// LoadTheme decodes a theme file.
func LoadTheme(path string) (Theme, error) {
	var th Theme
	if _, err := toml.DecodeFile(path, &th); err != nil {
		return Theme{}, fmt.Errorf("load theme %s: %w", path, err)
	}
	return th, nil
}

// SaveTheme writes th to path, creating parent directories.
func SaveTheme(path string, th Theme) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(th); err != nil {
		f.Close()
		return fmt.Errorf("encode theme: %w", err)
	}
	return f.Close()
}

// Options converts the theme to appearance options.
func (th Theme) Options() []alert.AppearanceOption {
	var opts []alert.AppearanceOption
	add := func(o alert.AppearanceOption) { opts = append(opts, o) }

	if th.Accent != "" {
		add(alert.WithAccentColor(th.Accent))
	}
	if th.Box.Padding != nil {
		add(alert.WithPadding(*th.Box.Padding))
	}
	if th.Box.Margin != nil {
		add(alert.WithMargin(*th.Box.Margin))
	}
	if th.Box.Background != "" || th.Box.Border != "" {
		bg, border := th.Box.Background, th.Box.Border
		add(func(a *alert.Appearance) {
			if bg != "" {
				a.ContentViewColor = bg
			}
			a.ContentViewBorderColor = border
		})
	}
	if th.Box.CornerRadius != nil {
		r := *th.Box.CornerRadius
		add(func(a *alert.Appearance) { a.ContentViewCornerRadius = r })
	}
	if th.Text.TitleColor != "" || th.Text.SubtitleColor != "" {
		title, sub := th.Text.TitleColor, th.Text.SubtitleColor
		add(func(a *alert.Appearance) {
			if title != "" {
				a.TitleColor = title
			}
			if sub != "" {
				a.SubtitleColor = sub
			}
		})
	}
	if th.Text.TitleAlign != "" || th.Text.TextAlign != "" {
		ta, xa := th.Text.TitleAlign, th.Text.TextAlign
		add(func(a *alert.Appearance) {
			if ta != "" {
				a.TitleAlignment = alert.ParseAlignment(ta)
			}
			if xa != "" {
				a.TextAlignment = alert.ParseAlignment(xa)
			}
		})
	}
	if th.Buttons.Height != nil {
		add(alert.WithButtonHeight(*th.Buttons.Height))
	}
	if th.Buttons.SeparatorColor != "" {
		add(alert.WithButtonSeparatorColor(th.Buttons.SeparatorColor))
	}
	if th.Icon.Show != nil {
		add(alert.WithCircularIcon(*th.Icon.Show))
	}
	if th.Icon.Glyph != "" || th.Icon.Background != "" {
		add(alert.WithCustomIcon(th.Icon.Glyph, th.Icon.Background))
	}
	if th.Behavior.AutoDismiss != nil {
		add(alert.WithAutoDismiss(*th.Behavior.AutoDismiss))
	}
	if th.Behavior.DropShadow != nil {
		add(alert.WithDropShadow(*th.Behavior.DropShadow))
	}
	if th.Behavior.ShadowOpacity != nil {
		add(alert.WithShadowOpacity(*th.Behavior.ShadowOpacity))
	}
	if th.Behavior.HideOnBackgroundTap != nil {
		add(alert.WithHideOnBackgroundTap(*th.Behavior.HideOnBackgroundTap))
	}
	return opts
}

// Appearance returns the category's appearance with the theme applied.
func (th Theme) Appearance(c alert.Category) alert.Appearance {
	return alert.AppearanceFor(c).With(th.Options()...)
}
