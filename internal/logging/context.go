// internal/logging/context.go
package logging

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// loggerCtxKey is the context key for Logger.
type loggerCtxKey struct{}

// WithLogger stores logger in context.
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// FromContext retrieves logger from context.
// Returns a logger that discards everything if none is stored.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok && l != nil {
		return l
	}
	return NewNop()
}

// NewNop returns a logger that writes nothing and forwards nothing.
func NewNop() *Logger {
	return &Logger{
		console:   NewZapConsole(zap.NewNop()),
		reporter:  NopReporter{},
		bench:     benchmarkOff{},
		threshold: LevelNone,
		now:       time.Now,
	}
}
