package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/seed"
	"github.com/aussiebroadwan/creatordesk/internal/creator/service"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store/drivers/memory"
	"github.com/aussiebroadwan/creatordesk/pkg/creatorsdk"
	"github.com/aussiebroadwan/creatordesk/pkg/jwtx"
	"github.com/aussiebroadwan/creatordesk/pkg/slogx"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *Router
	store  *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	signer, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), "creatordesk-test", []string{"creatordesk"})
	require.NoError(t, err)

	sd, err := seed.Default()
	require.NoError(t, err)

	st := memory.NewStore()
	r := NewRouter(signer, "test", st, slogx.Discard())
	r.SessionService = &service.SessionService{
		Store:    st,
		Signer:   signer,
		Issuer:   signer.Issuer(),
		Audience: signer.Audience(),
		TTL:      time.Hour,
		Seed:     sd,
	}
	r.InviteService = &service.InviteService{Store: st}
	r.FinanceService = &service.FinanceService{Store: st, Locale: domain.DefaultLocale}
	r.DraftService = &service.DraftService{Store: st}
	r.ContentStudio = &service.ContentStudio{
		Store: st,
		Delay: time.Minute,
		Sleep: func(ctx context.Context, _ time.Duration) error { return ctx.Err() },
	}
	r.ApplyRoutes()

	return &testServer{router: r, store: st}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) newSession(t *testing.T) creatorsdk.SessionResponse {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/v1/sessions", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp creatorsdk.SessionResponse
	decode(t, rec, &resp)
	return resp
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())

	var errResp creatorsdk.ErrorResponse
	decode(t, rec, &errResp)
	require.Equal(t, code, errResp.Error)
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var live creatorsdk.HealthResponse
	decode(t, rec, &live)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	rec = s.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ready creatorsdk.HealthResponse
	decode(t, rec, &ready)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestReadyzDegradedWhenStoreClosed(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.store.Close())

	rec := s.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var ready creatorsdk.HealthResponse
	decode(t, rec, &ready)
	require.Equal(t, "degraded", ready.Status)
}

func TestCreateSession(t *testing.T) {
	s := newTestServer(t)
	sess := s.newSession(t)

	require.NotEmpty(t, sess.SessionID)
	require.NotEmpty(t, sess.Token)
	require.Equal(t, "Bearer", sess.TokenType)
	require.Positive(t, sess.ExpiresIn)
}

func TestSecuredRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/v1/invites", "/v1/finance/entries", "/v1/finance/summary", "/v1/drafts", "/v1/content/latest"} {
		rec := s.do(t, http.MethodGet, path, "", nil)
		requireErrorCode(t, rec, http.StatusUnauthorized, creatorsdk.ErrorCodeInvalidToken)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")

		rec = s.do(t, http.MethodGet, path, "not-a-jwt", nil)
		requireErrorCode(t, rec, http.StatusUnauthorized, creatorsdk.ErrorCodeInvalidToken)
	}
}

func TestEvictedSessionIsRejected(t *testing.T) {
	s := newTestServer(t)
	sess := s.newSession(t)

	_, err := s.store.Sessions().DeleteIdleSessions(context.Background(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	rec := s.do(t, http.MethodGet, "/v1/invites", sess.Token, nil)
	requireErrorCode(t, rec, http.StatusUnauthorized, creatorsdk.ErrorCodeInvalidToken)
}

func TestInviteLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.newSession(t).Token

	rec := s.do(t, http.MethodGet, "/v1/invites", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list creatorsdk.ListInvitesResponse
	decode(t, rec, &list)
	require.Len(t, list.Invites, 3)
	require.Equal(t, 2, list.PendingCount)
	require.Equal(t, "TechGear Pro", list.Invites[0].BrandName)
	require.Equal(t, "1500.00", list.Invites[0].Offer)
	require.ElementsMatch(t, []string{"accepted", "declined"}, list.Invites[0].NextStatuses)

	rec = s.do(t, http.MethodPost, "/v1/invites/1/status", token, creatorsdk.UpdateInviteStatusRequest{Status: "accepted"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &list)
	require.Equal(t, "accepted", list.Invites[0].Status)
	require.Equal(t, 1, list.PendingCount)
	require.Equal(t, []string{"ongoing"}, list.Invites[0].NextStatuses)

	rec = s.do(t, http.MethodPost, "/v1/invites/1/status", token, creatorsdk.UpdateInviteStatusRequest{Status: "ongoing"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &list)
	require.Equal(t, "ongoing", list.Invites[0].Status)
	require.Equal(t, []string{"completed"}, list.Invites[0].NextStatuses)

	rec = s.do(t, http.MethodPost, "/v1/invites/1/status", token, creatorsdk.UpdateInviteStatusRequest{Status: "completed"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/v1/invites/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var inv creatorsdk.Invite
	decode(t, rec, &inv)
	require.Equal(t, "completed", inv.Status)
	require.Empty(t, inv.NextStatuses)
}

func TestInviteStatusErrors(t *testing.T) {
	s := newTestServer(t)
	token := s.newSession(t).Token

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		code   string
	}{
		{"unknown invite", "/v1/invites/99/status", creatorsdk.UpdateInviteStatusRequest{Status: "accepted"}, http.StatusNotFound, creatorsdk.ErrorCodeNotFound},
		{"unknown status", "/v1/invites/1/status", creatorsdk.UpdateInviteStatusRequest{Status: "maybe"}, http.StatusBadRequest, creatorsdk.ErrorCodeInvalidRequest},
		{"accepted cannot be declined", "/v1/invites/3/status", creatorsdk.UpdateInviteStatusRequest{Status: "declined"}, http.StatusConflict, creatorsdk.ErrorCodeInvalidTransition},
		{"accepted cannot skip to completed", "/v1/invites/3/status", creatorsdk.UpdateInviteStatusRequest{Status: "completed"}, http.StatusConflict, creatorsdk.ErrorCodeInvalidTransition},
		{"pending cannot start", "/v1/invites/1/status", creatorsdk.UpdateInviteStatusRequest{Status: "ongoing"}, http.StatusConflict, creatorsdk.ErrorCodeInvalidTransition},
		{"unknown field", "/v1/invites/1/status", map[string]string{"state": "accepted"}, http.StatusBadRequest, creatorsdk.ErrorCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, tt.path, token, tt.body)
			requireErrorCode(t, rec, tt.status, tt.code)
		})
	}

	rec := s.do(t, http.MethodGet, "/v1/invites/99", token, nil)
	requireErrorCode(t, rec, http.StatusNotFound, creatorsdk.ErrorCodeNotFound)

	// Nothing above changed the collection.
	rec = s.do(t, http.MethodGet, "/v1/invites", token, nil)
	var list creatorsdk.ListInvitesResponse
	decode(t, rec, &list)
	require.Equal(t, 2, list.PendingCount)
	require.Equal(t, "accepted", list.Invites[2].Status)
}

func TestSessionsAreIsolated(t *testing.T) {
	s := newTestServer(t)
	a := s.newSession(t).Token
	b := s.newSession(t).Token

	rec := s.do(t, http.MethodPost, "/v1/invites/1/status", a, creatorsdk.UpdateInviteStatusRequest{Status: "declined"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/invites/1", b, nil)
	var inv creatorsdk.Invite
	decode(t, rec, &inv)
	require.Equal(t, "pending", inv.Status)
}

func TestFinanceEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.newSession(t).Token

	rec := s.do(t, http.MethodGet, "/v1/finance/entries", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries creatorsdk.FinanceEntriesResponse
	decode(t, rec, &entries)
	require.Len(t, entries.Entries, 3)
	require.Equal(t, "TechGear Pro Campaign", entries.Entries[0].Source)
	require.Equal(t, creatorsdk.Totals{TotalIncome: "2300.00", TotalExpenses: "200.00", NetProfit: "2100.00"}, entries.Totals)

	rec = s.do(t, http.MethodPost, "/v1/finance/entries", token, creatorsdk.AddFinanceEntryRequest{
		Type:   "expense",
		Amount: "100",
		Source: "Editing software",
		Date:   "2024-02-01",
		Tag:    "Software",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	decode(t, rec, &entries)
	require.Len(t, entries.Entries, 4)
	require.Equal(t, "Editing software", entries.Entries[0].Source)
	require.Equal(t, "100.00", entries.Entries[0].Amount)
	require.Equal(t, creatorsdk.Totals{TotalIncome: "2300.00", TotalExpenses: "300.00", NetProfit: "2000.00"}, entries.Totals)

	rec = s.do(t, http.MethodGet, "/v1/finance/summary", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary creatorsdk.FinanceSummaryResponse
	decode(t, rec, &summary)
	require.Equal(t, 4, summary.EntryCount)
	require.Equal(t, "2000.00", summary.Totals.NetProfit)
	require.Equal(t, "$2,000.00", summary.Formatted.NetProfit)
	require.Contains(t, summary.Tags, "Brand Collaboration")
}

func TestAddFinanceEntryRejectsBadInput(t *testing.T) {
	s := newTestServer(t)
	token := s.newSession(t).Token

	for _, amount := range []string{"abc", "", "-5", "12.5.0"} {
		rec := s.do(t, http.MethodPost, "/v1/finance/entries", token, creatorsdk.AddFinanceEntryRequest{
			Type:   "income",
			Amount: amount,
			Source: "Sponsor",
			Date:   "2024-02-01",
			Tag:    "Sponsorship",
		})
		requireErrorCode(t, rec, http.StatusBadRequest, creatorsdk.ErrorCodeInvalidRequest)
	}

	rec := s.do(t, http.MethodGet, "/v1/finance/entries", token, nil)
	var entries creatorsdk.FinanceEntriesResponse
	decode(t, rec, &entries)
	require.Len(t, entries.Entries, 3)
}

func TestContentStudioFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.newSession(t).Token

	rec := s.do(t, http.MethodGet, "/v1/content/latest", token, nil)
	requireErrorCode(t, rec, http.StatusConflict, creatorsdk.ErrorCodeNothingGenerated)

	rec = s.do(t, http.MethodPost, "/v1/drafts/generated", token, nil)
	requireErrorCode(t, rec, http.StatusConflict, creatorsdk.ErrorCodeNothingGenerated)

	rec = s.do(t, http.MethodPost, "/v1/content/generate", token, creatorsdk.GenerateContentRequest{ContentType: "caption"})
	requireErrorCode(t, rec, http.StatusBadRequest, creatorsdk.ErrorCodeMissingInput)

	rec = s.do(t, http.MethodPost, "/v1/content/generate", token, creatorsdk.GenerateContentRequest{
		ContentType: "caption",
		Topic:       "home studio",
		Tone:        "casual",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var generated creatorsdk.GeneratedContent
	decode(t, rec, &generated)
	require.Contains(t, generated.Content, "home studio")
	require.Contains(t, generated.Content, "#homestudio")

	rec = s.do(t, http.MethodGet, "/v1/content/latest", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var latest creatorsdk.GeneratedContent
	decode(t, rec, &latest)
	require.Equal(t, generated, latest)

	rec = s.do(t, http.MethodPost, "/v1/drafts/generated", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var drafts creatorsdk.DraftsResponse
	decode(t, rec, &drafts)
	require.Len(t, drafts.Drafts, 1)
	require.Equal(t, "caption about home studio", drafts.Drafts[0].Title)
	require.Equal(t, generated.Content, drafts.Drafts[0].Content)
}

func TestDraftEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.newSession(t).Token

	rec := s.do(t, http.MethodGet, "/v1/drafts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var drafts creatorsdk.DraftsResponse
	decode(t, rec, &drafts)
	require.Empty(t, drafts.Drafts)

	rec = s.do(t, http.MethodPost, "/v1/drafts", token, creatorsdk.SaveDraftRequest{Type: "tweet", Content: "first"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = s.do(t, http.MethodPost, "/v1/drafts", token, creatorsdk.SaveDraftRequest{Type: "tweet", Title: "Second", Content: "second"})
	require.Equal(t, http.StatusCreated, rec.Code)
	decode(t, rec, &drafts)
	require.Len(t, drafts.Drafts, 2)
	require.Equal(t, "Second", drafts.Drafts[0].Title)
	require.Equal(t, "tweet draft", drafts.Drafts[1].Title)

	rec = s.do(t, http.MethodPost, "/v1/drafts", token, creatorsdk.SaveDraftRequest{Type: "poem", Content: "x"})
	requireErrorCode(t, rec, http.StatusBadRequest, creatorsdk.ErrorCodeInvalidRequest)

	rec = s.do(t, http.MethodPost, "/v1/drafts", token, creatorsdk.SaveDraftRequest{Type: "tweet"})
	requireErrorCode(t, rec, http.StatusBadRequest, creatorsdk.ErrorCodeInvalidRequest)
}

func TestSessionCreationIsRateLimited(t *testing.T) {
	s := newTestServer(t)

	var limited bool
	for range 50 {
		rec := s.do(t, http.MethodPost, "/v1/sessions", "", nil)
		if rec.Code == http.StatusTooManyRequests {
			limited = true
			require.NotEmpty(t, rec.Header().Get("Retry-After"))
			break
		}
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	require.True(t, limited)
}
