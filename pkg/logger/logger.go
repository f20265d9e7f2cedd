// Package logger provides the structured, levelled logger used across
// Vastra, built on log/slog.
//
// The key extension over plain slog is WithCtx: the request-logging
// middleware stores a logger pre-tagged with the request_id in the request
// context, so every log line from a handler or service is automatically
// correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order placed", "order_id", id)
//	// → time=... level=INFO msg="order placed" request_id=a1b2c3d4 order_id=...
package logger

import (
	"context"
	"log/slog"
	"os"
)

// New builds a logger for the given environment: structured JSON for
// production log aggregators, human-readable text everywhere else.
func New(env string) *slog.Logger {
	var handler slog.Handler
	switch env {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// Inject stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the request-logging middleware; not usually needed elsewhere.
func Inject(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// WithCtx returns the per-request logger stored in ctx, or slog.Default()
// when the request did not pass through the logging middleware.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}
