package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/creatordesk/pkg/httpx"
	"github.com/aussiebroadwan/creatordesk/pkg/idx"
	"github.com/aussiebroadwan/creatordesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler(), tag("outer"), tag("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestSessionMiddleware(t *testing.T) {
	signer, err := jwtx.NewHS256([]byte(strings.Repeat("k", 32)), "creatordesk", nil)
	require.NoError(t, err)

	var gotSID string
	h := httpx.SessionMiddleware(signer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSID = httpx.SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		sid := idx.New()
		raw, err := signer.Sign(jwtx.NewSessionClaims(sid.String(), "creatordesk", nil, time.Hour, time.Now()))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, sid.String(), gotSID)
	})

	t.Run("signed token with non-ulid session id", func(t *testing.T) {
		gotSID = ""
		raw, err := signer.Sign(jwtx.NewSessionClaims("sess-42", "creatordesk", nil, time.Hour, time.Now()))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
		require.Empty(t, gotSID)
	})
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Status string `json:"status"`
	}

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"accepted"}`))
		require.NoError(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &dst))
		require.Equal(t, "accepted", dst.Status)
	})

	t.Run("unknown field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"state":"accepted"}`))
		require.Error(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &dst))
	})

	t.Run("trailing data", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"a"}{"status":"b"}`))
		require.Error(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &dst))
	})
}
