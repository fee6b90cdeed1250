package logger

import (
	"io"
	"log/slog"
)

// NewConsoleLogger creates a text logger writing to w (normally os.Stderr so that
// command output on stdout stays clean).
func NewConsoleLogger(level string, w io.Writer) Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	return newSlogLogger(slog.NewTextHandler(w, opts))
}
