package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/seed"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store/drivers/memory"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store/drivers/sqlite"
	"github.com/aussiebroadwan/creatordesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store    store.Store
	signer   *jwtx.HS256
	now      time.Time
	sessions *SessionService
	invites  *InviteService
	finance  *FinanceService
	drafts   *DraftService
	studio   *ContentStudio
	slept    []time.Duration
}

func newTestEnv(t *testing.T, s store.Store) *testEnv {
	t.Helper()

	signer, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), "creatordesk-test", []string{"creatordesk"})
	require.NoError(t, err)

	sd, err := seed.Default()
	require.NoError(t, err)

	env := &testEnv{store: s, signer: signer, now: time.Now().UTC().Truncate(time.Second)}
	now := func() time.Time { return env.now }

	env.sessions = &SessionService{
		Store:    s,
		Signer:   signer,
		Issuer:   signer.Issuer(),
		Audience: signer.Audience(),
		TTL:      time.Hour,
		Seed:     sd,
		Now:      now,
	}
	env.invites = &InviteService{Store: s, Now: now}
	env.finance = &FinanceService{Store: s, Locale: domain.DefaultLocale, Now: now}
	env.drafts = &DraftService{Store: s, Now: now}
	env.studio = &ContentStudio{
		Store: s,
		Delay: DefaultGenerationDelay,
		Now:   now,
		Sleep: func(ctx context.Context, d time.Duration) error {
			env.slept = append(env.slept, d)
			return ctx.Err()
		},
	}
	return env
}

func newMemoryEnv(t *testing.T) *testEnv {
	return newTestEnv(t, memory.NewStore())
}

func (e *testEnv) newSession(t *testing.T) string {
	t.Helper()
	issued, err := e.sessions.Create(context.Background())
	require.NoError(t, err)
	return issued.Session.ID
}

func TestSessionCreateSeedsWorkspace(t *testing.T) {
	ctx := context.Background()
	env := newMemoryEnv(t)

	issued, err := env.sessions.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, issued.Token)
	require.True(t, env.now.Add(time.Hour).Equal(issued.ExpiresAt))

	claims, err := env.signer.Verify(issued.Token)
	require.NoError(t, err)
	require.Equal(t, issued.Session.ID, claims.SID)

	invites, err := env.invites.List(ctx, issued.Session.ID)
	require.NoError(t, err)
	require.Len(t, invites, 3)
	require.Equal(t, []string{"1", "2", "3"}, []string{invites[0].ID, invites[1].ID, invites[2].ID})

	entries, err := env.finance.List(ctx, issued.Session.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "TechGear Pro Campaign", entries[0].Source)
	require.Equal(t, "Video Equipment", entries[2].Source)

	other := env.newSession(t)
	require.NotEqual(t, issued.Session.ID, other)
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	env := newMemoryEnv(t)

	a := env.newSession(t)
	b := env.newSession(t)

	_, err := env.invites.UpdateStatus(ctx, a, "1", domain.InviteStatusAccepted)
	require.NoError(t, err)

	invites, err := env.invites.List(ctx, b)
	require.NoError(t, err)
	require.Equal(t, domain.InviteStatusPending, invites[0].Status)
}

func TestUnknownSession(t *testing.T) {
	ctx := context.Background()
	env := newMemoryEnv(t)

	_, err := env.invites.List(ctx, "nope")
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = env.finance.AddEntry(ctx, "nope", domain.FinanceEntryInput{Type: "income", Amount: "1", Source: "s", Date: "2024-01-01", Tag: "Other"})
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = env.drafts.Save(ctx, "", domain.ContentDraftInput{Type: "tweet", Content: "x"})
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = env.studio.Generate(ctx, "nope", domain.GenerateRequest{ContentType: "tweet", Topic: "x"})
	require.ErrorIs(t, err, ErrSessionNotFound)
	require.Empty(t, env.slept)
}

func TestActivityTouchesSession(t *testing.T) {
	ctx := context.Background()
	env := newMemoryEnv(t)
	sid := env.newSession(t)

	env.now = env.now.Add(30 * time.Minute)
	_, err := env.drafts.List(ctx, sid)
	require.NoError(t, err)

	sess, err := env.store.Sessions().GetSession(ctx, sid)
	require.NoError(t, err)
	require.True(t, sess.LastSeenAt.Equal(env.now))
	require.True(t, sess.CreatedAt.Before(sess.LastSeenAt))
}

func TestServicesOnSQLite(t *testing.T) {
	ctx := context.Background()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	env := newTestEnv(t, s)
	sid := env.newSession(t)

	entries, err := env.finance.List(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, "TechGear Pro Campaign", entries[0].Source)

	invites, err := env.invites.UpdateStatus(ctx, sid, "3", domain.InviteStatusOngoing)
	require.NoError(t, err)
	require.Equal(t, domain.InviteStatusOngoing, invites[2].Status)

	_, err = env.studio.Generate(ctx, sid, domain.GenerateRequest{ContentType: "caption", Topic: "desk setup"})
	require.NoError(t, err)
	drafts, err := env.drafts.SaveGenerated(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, "caption about desk setup", drafts[0].Title)
}
