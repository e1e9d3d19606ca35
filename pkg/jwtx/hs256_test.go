package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/creatordesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte(strings.Repeat("s", jwtx.MinSecretSize))

func newTestHS256(t *testing.T) *jwtx.HS256 {
	t.Helper()
	h, err := jwtx.NewHS256(testSecret, "creatordesk", []string{"dashboard"})
	require.NoError(t, err)
	return h
}

func TestNewHS256RejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewHS256([]byte("short"), "creatordesk", nil)
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestHS256RoundTrip(t *testing.T) {
	h := newTestHS256(t)
	require.Equal(t, "HS256", h.Alg())

	claims := jwtx.NewSessionClaims("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", h.Issuer(), h.Audience(), time.Hour, time.Now())
	raw, err := h.Sign(claims)
	require.NoError(t, err)

	got, err := h.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", got.SID)
	require.Equal(t, got.SID, got.Subject)
}

func TestHS256Verify(t *testing.T) {
	h := newTestHS256(t)

	t.Run("expired token", func(t *testing.T) {
		claims := jwtx.NewSessionClaims("sid", h.Issuer(), h.Audience(), time.Minute, time.Now().Add(-time.Hour))
		raw, err := h.Sign(claims)
		require.NoError(t, err)

		_, err = h.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := h.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewHS256([]byte(strings.Repeat("x", 40)), "creatordesk", []string{"dashboard"})
		require.NoError(t, err)

		raw, err := other.Sign(jwtx.NewSessionClaims("sid", "creatordesk", []string{"dashboard"}, time.Hour, time.Now()))
		require.NoError(t, err)

		_, err = h.Verify(raw)
		require.Error(t, err)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		raw, err := h.Sign(jwtx.NewSessionClaims("sid", "someone-else", h.Audience(), time.Hour, time.Now()))
		require.NoError(t, err)

		_, err = h.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("missing sid", func(t *testing.T) {
		raw, err := h.Sign(jwtx.NewSessionClaims("", h.Issuer(), h.Audience(), time.Hour, time.Now()))
		require.NoError(t, err)

		_, err = h.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})
}
