package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/creatordesk/pkg/idx"
	"github.com/aussiebroadwan/creatordesk/pkg/jwtx"
	"github.com/aussiebroadwan/creatordesk/pkg/slogx"
)

// SessionMiddleware requires a bearer session token, verifies it and injects
// the workspace session id into the request context.
func SessionMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session token verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			// Workspace ids are ULIDs; anything else was never issued here.
			sid, err := idx.Parse(claims.SID)
			if err != nil {
				log.Warn("session token carries malformed session id", "err", err)
				writeBearerError(w, "malformed session id")
				return
			}

			ctx = contextWithSession(ctx, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithSession(ctx context.Context, sid idx.ID) context.Context {
	ctx = context.WithValue(ctx, CtxKeySessionID, sid.String())
	return slogx.WithSession(ctx, sid.String())
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "invalid_token", desc)
}
