// Package logging builds the charmbracelet/log logger used across domsel.
// The TUI owns the terminal, so output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// EnvLogFile names a log file when --log-file is not given.
const EnvLogFile = "DOMSEL_LOG"

// New creates a logger writing to w at the given level ("debug", "info", ...).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "domsel",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}), nil
}

// Open returns a logger appending to path, or a discarding logger when path
// is empty. The returned close func is always non-nil.
func Open(path, level string) (*log.Logger, func() error, error) {
	if path == "" {
		path = os.Getenv(EnvLogFile)
	}
	if path == "" {
		logger, err := New(io.Discard, level)
		return logger, func() error { return nil }, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}

	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
