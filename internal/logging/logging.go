// Package logging sets up the structured logger. The terminal belongs to the UI, so
// records go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFile is used when no log file is configured
const DefaultFile = "burrow.log"

// ParseLevel maps a config level name to a slog level, defaulting to info
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a JSON logger writing to w
func New(w io.Writer, level string) *slog.Logger {
	levelVar := &slog.LevelVar{}
	levelVar.Set(ParseLevel(level))
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: false,
	}))
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Open creates the parent directories of path and returns a logger appending to it.
// The returned closer releases the file. If the file cannot be opened the logger
// discards records and the error says why.
func Open(path, level string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		path = DefaultFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Discard(), io.NopCloser(nil), fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return Discard(), io.NopCloser(nil), fmt.Errorf("could not open log file: %w", err)
	}
	return New(f, level), f, nil
}
