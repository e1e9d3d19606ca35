package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithSession tags the contextual logger with the workspace session id so
// every line a service writes for the request can be tied back to a tab.
func WithSession(ctx context.Context, sessionID string) context.Context {
	l := FromContext(ctx)
	return WithContext(ctx, l.With("session_id", sessionID))
}
