// Package log provides logging functionality for unitgraph.
package log

import (
	"log/slog"
	"os"
)

// Logger defines the interface for logging operations.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// slogAdapter wraps slog.Logger to implement the Logger interface.
type slogAdapter struct {
	logger *slog.Logger
}

func (s *slogAdapter) Debug(msg string, args ...any) { s.logger.Debug(msg, args...) }
func (s *slogAdapter) Info(msg string, args ...any)  { s.logger.Info(msg, args...) }
func (s *slogAdapter) Warn(msg string, args ...any)  { s.logger.Warn(msg, args...) }
func (s *slogAdapter) Error(msg string, args ...any) { s.logger.Error(msg, args...) }

// NewLogger creates a logger with the specified verbosity. Verbose mode
// lowers the level to debug; the default stays at warn so normal CLI output
// is not interleaved with log lines.
func NewLogger(verbose bool) Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	return &slogAdapter{logger: slog.New(slog.NewTextHandler(os.Stdout, opts))}
}

var defaultLogger Logger

// GetLogger returns the default logger, creating a non-verbose one if Init
// has not run yet.
func GetLogger() Logger {
	if defaultLogger == nil {
		defaultLogger = NewLogger(false)
	}
	return defaultLogger
}

// Init initializes the default logger. Called once at application startup.
func Init(verbose bool) {
	defaultLogger = NewLogger(verbose)
}
