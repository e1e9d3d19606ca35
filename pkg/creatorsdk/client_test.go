package creatorsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateSessionAndAuthHeader(t *testing.T) {
	t.Parallel()

	var gotAuth, gotContentType string

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/sessions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(SessionResponse{SessionID: "s1", Token: "tok", TokenType: "Bearer", ExpiresIn: 60})
	})
	mux.HandleFunc("POST /v1/invites/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")

		var req UpdateInviteStatusRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		_ = json.NewEncoder(w).Encode(ListInvitesResponse{
			Invites: []Invite{{ID: r.PathValue("id"), Status: req.Status}},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL + "/")
	sess, err := client.CreateSession(context.Background())
	require.NoError(t, err)
	require.Equal(t, "s1", sess.ID())
	require.Equal(t, "tok", sess.Token())
	require.False(t, sess.ExpiresAt().IsZero())

	out, err := sess.UpdateInviteStatus(context.Background(), "7", "accepted")
	require.NoError(t, err)
	require.Equal(t, "7", out.Invites[0].ID)
	require.Equal(t, "accepted", out.Invites[0].Status)
	require.Equal(t, "Bearer tok", gotAuth)
	require.Equal(t, "application/json", gotContentType)
}

func TestErrorResponses(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/invites/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: ErrorCodeInvalidTransition, ErrorDescription: "nope"})
	})
	mux.HandleFunc("GET /v1/drafts", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway trouble", http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	sess := NewClient(srv.URL).NewSessionFromToken("s1", "tok")

	_, err := sess.GetInvite(context.Background(), "1")
	require.True(t, IsCode(err, ErrorCodeInvalidTransition))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, "invalid_transition: nope", apiErr.Error())

	_, err = sess.ListDrafts(context.Background())
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
	require.Equal(t, "gateway trouble", apiErr.Description)

	require.False(t, IsCode(nil, ErrorCodeNotFound))
}
