package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDebounce coalesces the burst of events an editor save produces.
const DefaultReloadDebounce = 150 * time.Millisecond

// ThemeWatcher reloads a theme file whenever it changes on disk.
type ThemeWatcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	watcher  *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
}

// WatchTheme starts watching path. The parent directory is watched so
// rename-and-replace saves are seen.
func WatchTheme(path string, debounce time.Duration, logger *slog.Logger) (*ThemeWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultReloadDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	return &ThemeWatcher{path: abs, debounce: debounce, logger: logger, watcher: w}, nil
}

// Path returns the absolute path being watched.
func (tw *ThemeWatcher) Path() string { return tw.path }

// Run delivers reloaded themes to onChange until ctx is cancelled. Files
// that fail to decode are logged and skipped.
func (tw *ThemeWatcher) Run(ctx context.Context, onChange func(Theme)) error {
	defer tw.stopTimer()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-tw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			tw.schedule(ctx, onChange)

		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return nil
			}
			tw.logger.Warn("theme watcher", "err", err)
		}
	}
}

// Close stops the underlying watcher.
func (tw *ThemeWatcher) Close() error {
	tw.stopTimer()
	return tw.watcher.Close()
}

func (tw *ThemeWatcher) schedule(ctx context.Context, onChange func(Theme)) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timer != nil {
		tw.timer.Stop()
	}
	tw.timer = time.AfterFunc(tw.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		th, err := LoadTheme(tw.path)
		if err != nil {
			tw.logger.Warn("reload theme", "path", tw.path, "err", err)
			return
		}
		tw.logger.Info("theme reloaded", "path", tw.path)
		onChange(th)
	})
}

func (tw *ThemeWatcher) stopTimer() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timer != nil {
		tw.timer.Stop()
		tw.timer = nil
	}
}
