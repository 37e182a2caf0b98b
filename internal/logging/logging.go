// Package logging configures the process-wide slog logger.
//
// The alert overlay owns the terminal, so logs go to a file as JSON lines
// rather than to stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Stderr is accepted as a path to log to standard error.
const Stderr = "-"

// Options controls Setup.
type Options struct {
	Path  string
	Debug bool
}

// Level returns the minimum level for the options.
func (o Options) Level() slog.Level {
	if o.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// New builds a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup opens the log destination, installs the logger as the slog
// default and returns it with a close func. An empty path discards.
func Setup(opts Options) (*slog.Logger, func() error, error) {
	var (
		w       io.Writer
		closeFn = func() error { return nil }
	)
	switch opts.Path {
	case "":
		w = io.Discard
	case Stderr:
		w = os.Stderr
	default:
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = f.Close
	}

	logger := New(w, opts.Level())
	slog.SetDefault(logger)
	return logger, closeFn, nil
}
