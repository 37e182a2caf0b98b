package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marcus/alertkit/pkg/alert"
)

func TestDefaultThemeMatchesDefaults(t *testing.T) {
	got := DefaultTheme().Appearance(alert.CategorySuccess)
	want := alert.AppearanceFor(alert.CategorySuccess)
	if got != want {
		t.Errorf("default theme: got %+v, want %+v", got, want)
	}
}

func TestSaveLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes", "dark.toml")
	if err := SaveTheme(path, DefaultTheme()); err != nil {
		t.Fatalf("SaveTheme failed: %v", err)
	}

	th, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}
	if th.Box.Padding == nil || *th.Box.Padding != 25 {
		t.Errorf("padding: got %v, want 25", th.Box.Padding)
	}
	if th.Icon.Show == nil || !*th.Icon.Show {
		t.Errorf("icon.show: got %v, want true", th.Icon.Show)
	}
}

func TestLoadThemePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	src := `accent = "#112233"

[box]
padding = 10
background = "#000000"
border = "#444444"

[text]
title_align = "left"

[icon]
show = false
glyph = "*"

[behavior]
auto_dismiss = false
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("setup: write failed: %v", err)
	}

	th, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}
	a := th.Appearance(alert.CategoryWarning)
	def := alert.AppearanceFor(alert.CategoryWarning)

	if a.Accent() != "#112233" {
		t.Errorf("accent: got %q, want %q", a.Accent(), "#112233")
	}
	if a.Padding != 10 {
		t.Errorf("padding: got %v, want 10", a.Padding)
	}
	if a.Margin != def.Margin {
		t.Errorf("margin: got %v, want default %v", a.Margin, def.Margin)
	}
	if a.ContentViewColor != "#000000" || a.ContentViewBorderColor != "#444444" {
		t.Errorf("box colors: got %q/%q", a.ContentViewColor, a.ContentViewBorderColor)
	}
	if a.TitleAlignment != alert.AlignLeft {
		t.Errorf("title align: got %v, want left", a.TitleAlignment)
	}
	if a.TextAlignment != def.TextAlignment {
		t.Errorf("text align: got %v, want %v", a.TextAlignment, def.TextAlignment)
	}
	if a.ShowCircularIcon {
		t.Error("icon: expected hidden")
	}
	if a.Icon != "*" {
		t.Errorf("glyph: got %q, want %q", a.Icon, "*")
	}
	if a.ShouldAutoDismiss {
		t.Error("auto dismiss: expected false")
	}
	if !a.ShowDropShadow {
		t.Error("drop shadow: expected default true")
	}
}

func TestLoadThemeErrors(t *testing.T) {
	if _, err := LoadTheme(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file: expected error")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[box\npadding = "), 0644); err != nil {
		t.Fatalf("setup: write failed: %v", err)
	}
	if _, err := LoadTheme(path); err == nil {
		t.Error("malformed file: expected error")
	}
}
