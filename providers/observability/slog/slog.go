// Package slog adapts Go's standard library structured logger to the
// observability.Logger interface.
package slog

import (
	"log/slog"

	"genbridge/providers/observability"
)

// Logger implements observability.Logger on top of a *slog.Logger.
type Logger struct {
	logger *slog.Logger
}

// New creates a new slog-backed logger. A nil slog.Logger falls back to
// slog.Default().
func New(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger}
}

// Ensure Logger implements observability.Logger
var _ observability.Logger = (*Logger)(nil)

func (l *Logger) Debug(msg string, attrs ...observability.Attribute) {
	l.logger.Debug(msg, toArgs(attrs)...)
}

func (l *Logger) Info(msg string, attrs ...observability.Attribute) {
	l.logger.Info(msg, toArgs(attrs)...)
}

func (l *Logger) Warn(msg string, attrs ...observability.Attribute) {
	l.logger.Warn(msg, toArgs(attrs)...)
}

func (l *Logger) Error(msg string, attrs ...observability.Attribute) {
	l.logger.Error(msg, toArgs(attrs)...)
}

// toArgs flattens attributes into slog's alternating key/value argument form.
func toArgs(attrs []observability.Attribute) []any {
	args := make([]any, 0, len(attrs)*2)
	for _, attr := range attrs {
		args = append(args, attr.Key, attr.Value)
	}
	return args
}
