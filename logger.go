package midos

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with midos-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithK adds a k (result count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithFunction adds the quality function name to the logger.
func (l *Logger) WithFunction(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("function", name),
	}
}

// LogLoad logs loading a dataset.
func (l *Logger) LogLoad(ctx context.Context, source string, instances, attributes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"source", source,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "dataset loaded",
			"source", source,
			"instances", instances,
			"attributes", attributes,
		)
	}
}

// LogSearch logs a completed or aborted search.
func (l *Logger) LogSearch(ctx context.Context, k int, stats Stats, results int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"k", k,
			"expanded", stats.Expanded,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "search completed",
			"k", k,
			"results", results,
			"expanded", stats.Expanded,
			"generated", stats.Generated,
			"pruned", stats.Pruned,
			"duration", stats.Duration,
		)
	}
}
