package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// openLogger writes slog text records to path. The terminal belongs to the
// TUI (or to report output), so nothing is logged to stderr.
func openLogger(path string, verbose bool) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(handler), file, nil
}
