package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/marcus/alertkit/internal/config"
	"github.com/marcus/alertkit/internal/journal"
)

func TestLayoutCommandJSON(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "layout",
		"--width", "400", "--height", "800",
		"-t", "Title", "-s", "Body", "-b", "OK", "-b", "Cancel",
		"--json")
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}

	var got struct {
		Alert struct {
			X, W float64
		} `json:"alert"`
		Elements []struct {
			Kind  string `json:"kind"`
			Index int    `json:"index"`
		} `json:"elements"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal failed: %v\n%s", err, out)
	}
	if got.Alert.X != 40 || got.Alert.W != 320 {
		t.Errorf("alert: got x=%v w=%v, want 40/320", got.Alert.X, got.Alert.W)
	}
	buttons := 0
	for _, e := range got.Elements {
		if e.Kind == "button" {
			buttons++
		}
	}
	if buttons != 2 {
		t.Errorf("buttons: got %d, want 2", buttons)
	}
}

func TestHistoryCommand(t *testing.T) {
	dir := t.TempDir()
	j, err := journal.Open(filepath.Join(dir, config.DefaultJournalFile))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	now := time.Now()
	for _, id := range []string{"first-alert", "second-alert"} {
		o := journal.Outcome{AlertID: id, Category: "notice", Title: id, Reason: "close", PresentedAt: now, DismissedAt: now}
		if _, err := j.Record(context.Background(), o); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	j.Close()

	out, err := runCLI(t, dir, "history", "--limit", "1", "--json")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	var entries []journal.Outcome
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("unmarshal failed: %v\n%s", err, out)
	}
	if len(entries) != 1 || entries[0].AlertID != "second-alert" {
		t.Errorf("history: got %+v", entries)
	}
}

func TestConfigInitTheme(t *testing.T) {
	dir := t.TempDir()
	if _, err := runCLI(t, dir, "config", "init-theme", "themes/mine.toml"); err != nil {
		t.Fatalf("init-theme failed: %v", err)
	}

	if _, err := config.LoadTheme(filepath.Join(dir, "themes", "mine.toml")); err != nil {
		t.Errorf("written theme does not load: %v", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ThemeFile != "themes/mine.toml" {
		t.Errorf("theme_file: got %q, want themes/mine.toml", cfg.ThemeFile)
	}
	if _, err := os.Stat(filepath.Join(dir, ".alertkit", "alertkit.log")); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestConfigSet(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "config", "set", "--category", "warning", "--duration", "4")
	if err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if !strings.Contains(out, "SAVED") {
		t.Errorf("output: got %q", out)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Category != "warning" || cfg.DurationSeconds != 4 {
		t.Errorf("config: got %+v", *cfg)
	}
}
