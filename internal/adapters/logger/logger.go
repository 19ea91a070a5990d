// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/lmittmann/tint"
	"go.stackforge.dev/stackforge/internal/core/ports"
)

// Logger implements ports.Logger using log/slog with a tint handler.
type Logger struct {
	mu     sync.RWMutex
	level  slog.Level
	logger *slog.Logger
}

// New creates a new Logger writing to stderr at the given level.
func New(level string) ports.Logger {
	l := &Logger{level: ParseLevel(level)}
	l.logger = slog.New(l.newHandler(os.Stderr))
	return l
}

// ParseLevel converts a textual log level into a slog.Level, defaulting to
// info for unknown values.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
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

func (l *Logger) newHandler(w io.Writer) slog.Handler {
	return tint.NewHandler(w, &tint.Options{Level: l.level})
}

// SetOutput updates the logger's output destination. Used by tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(l.newHandler(w))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", tint.Err(err))
}
