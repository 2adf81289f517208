// Package util provides logging setup and file system helpers.
package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// OpenLog opens the log file at path, creating parent directories, and
// returns a text logger writing to it. The caller closes the returned file.
func OpenLog(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return NewLogger(f, level), f, nil
}

// NewLogger returns a text logger at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// DiscardLogger drops every record.
func DiscardLogger() *slog.Logger {
	return NewLogger(io.Discard, slog.LevelError)
}

// OrDefault returns l, or the process default logger when l is nil.
func OrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		slog.Error(context, "err", err)
	}
}
