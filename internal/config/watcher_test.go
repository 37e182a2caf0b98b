package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestThemeWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	if err := os.WriteFile(path, []byte("accent = \"#000001\"\n"), 0644); err != nil {
		t.Fatalf("setup: write failed: %v", err)
	}

	tw, err := WatchTheme(path, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("WatchTheme failed: %v", err)
	}
	defer tw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Theme, 4)
	go tw.Run(ctx, func(th Theme) { got <- th })

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0644); err != nil {
		t.Fatalf("write other failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("accent = \"#ABCDEF\"\n"), 0644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}

	select {
	case th := <-got:
		if th.Accent != "#ABCDEF" {
			t.Errorf("accent: got %q, want %q", th.Accent, "#ABCDEF")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestThemeWatcherStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("setup: write failed: %v", err)
	}
	tw, err := WatchTheme(path, 0, nil)
	if err != nil {
		t.Fatalf("WatchTheme failed: %v", err)
	}
	defer tw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tw.Run(ctx, func(Theme) {}) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: got %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
