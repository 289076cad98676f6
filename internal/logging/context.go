package logging

import (
	"context"
	"log/slog"
)

// LevelTrace is more verbose than slog.LevelDebug, enabled at -vvv.
const LevelTrace = slog.LevelDebug - 4

type contextKey struct{}

// NewContext returns a copy of ctx carrying the logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, falling back to the
// process default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// LevelFromVerbosity maps a -v flag count to a slog level.
// 0 is Warn, 1 is Info, 2 is Debug, 3+ is Trace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}
