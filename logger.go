package nearpoint

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger with nearpoint-specific context.
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
	return NewFormatLogger(os.Stderr, "json", level)
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewFormatLogger(os.Stderr, "text", level)
}

// NewFormatLogger creates a Logger writing to w in the given format ("json" or "text").
// Unknown formats fall back to text.
func NewFormatLogger(w io.Writer, format string, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return NewLogger(slog.NewJSONHandler(w, opts))
	}
	return NewLogger(slog.NewTextHandler(w, opts))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// ParseLevel parses "debug", "info", "warn" or "error".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// WithPoints adds a points field to the logger.
func (l *Logger) WithPoints(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("points", n),
	}
}

// WithKernel adds a kernel field to the logger.
func (l *Logger) WithKernel(k Kernel) *Logger {
	return &Logger{
		Logger: l.Logger.With("kernel", k.String()),
	}
}

// WithWorkers adds a workers field to the logger.
func (l *Logger) WithWorkers(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", n),
	}
}

// LogSearch logs a nearest-point search.
func (l *Logger) LogSearch(ctx context.Context, candidates int, res Result, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"candidates", candidates,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "search completed",
		"candidates", candidates,
		"index", res.Index,
		"dist2", res.Dist2,
		"duration", duration,
	)
}

// LogRun logs a completed benchmark run.
func (l *Logger) LogRun(ctx context.Context, repeats int, elapsed time.Duration, bandwidthGBs float64) {
	l.InfoContext(ctx, "benchmark completed",
		"repeats", repeats,
		"elapsed", elapsed,
		"bandwidth_gbs", bandwidthGBs,
	)
}
