// Package logging provides the slog logger used by the CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/zerr"
)

// Logger owns the process logger. It writes human-readable text to
// stderr and supports adjusting the minimum level and the output
// destination at runtime.
type Logger struct {
	mu    sync.RWMutex
	slog  *slog.Logger
	level *slog.LevelVar
}

// New creates a new Logger instance writing to stderr at info level.
func New() *Logger {
	level := new(slog.LevelVar)
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		slog:  slog.New(handler),
		level: level,
	}
}

// Slog returns the underlying slog logger.
func (l *Logger) Slog() *slog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.slog
}

// SetLevel adjusts the minimum level of the logger at runtime.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// SetOutput updates the logger's output destination. The configured
// level carries over to the new destination.
func (l *Logger) SetOutput(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: l.level,
	})
	l.mu.Lock()
	defer l.mu.Unlock()
	l.slog = slog.New(handler)
}

// ParseLevel maps a level name from the command line to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, zerr.With(zerr.New("unknown log level"), "level", name)
	}
}
