package httpx

import "context"

type ctxKey string

const CtxKeySessionID ctxKey = "session_id"

// SessionIDFromContext returns the workspace session id placed by
// SessionMiddleware, or "" when the request is unauthenticated.
func SessionIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeySessionID).(string); ok {
		return v
	}
	return ""
}
