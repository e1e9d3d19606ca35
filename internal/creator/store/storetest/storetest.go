// Package storetest holds behaviour every store driver must share.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
	"github.com/aussiebroadwan/creatordesk/pkg/idx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Run exercises a driver. newStore must return a fresh, migrated store.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("sessions", func(t *testing.T) { testSessions(t, newStore(t)) })
	t.Run("invites keep insertion order", func(t *testing.T) { testInvites(t, newStore(t)) })
	t.Run("entries newest first", func(t *testing.T) { testEntries(t, newStore(t)) })
	t.Run("drafts newest first", func(t *testing.T) { testDrafts(t, newStore(t)) })
	t.Run("studio", func(t *testing.T) { testStudio(t, newStore(t)) })
	t.Run("rollback discards writes", func(t *testing.T) { testRollback(t, newStore(t)) })
	t.Run("idle sessions are evicted", func(t *testing.T) { testEviction(t, newStore(t)) })
	t.Run("concurrent transactions", func(t *testing.T) { testConcurrentTx(t, newStore(t)) })
}

func newSession(t *testing.T, s store.Store, lastSeen time.Time) string {
	t.Helper()
	id := idx.New().String()
	require.NoError(t, s.Sessions().CreateSession(context.Background(), domain.Session{
		ID:         id,
		CreatedAt:  lastSeen,
		LastSeenAt: lastSeen,
	}))
	return id
}

func invite(id string, status domain.InviteStatus) domain.BrandInvite {
	return domain.BrandInvite{
		ID:           id,
		BrandName:    "Brand " + id,
		Description:  "desc",
		Offer:        decimal.RequireFromString("1500.25"),
		Deadline:     "2024-01-15",
		Requirements: []string{"one", "two"},
		Platform:     domain.PlatformYouTube,
		Status:       status,
	}
}

func entry(id string, typ domain.EntryType, amount string) domain.FinanceEntry {
	return domain.FinanceEntry{
		ID:     id,
		Type:   typ,
		Amount: decimal.RequireFromString(amount),
		Source: "source " + id,
		Date:   "2024-01-10",
		Tag:    "Other",
	}
}

func testSessions(t *testing.T, s store.Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	id := newSession(t, s, now)

	got, err := s.Sessions().GetSession(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.True(t, got.LastSeenAt.Equal(now))

	later := now.Add(time.Minute)
	require.NoError(t, s.Sessions().TouchSession(ctx, id, later))
	got, err = s.Sessions().GetSession(ctx, id)
	require.NoError(t, err)
	require.True(t, got.LastSeenAt.Equal(later))
	require.True(t, got.CreatedAt.Equal(now))

	err = s.Sessions().CreateSession(ctx, got)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = s.Sessions().GetSession(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Sessions().TouchSession(ctx, "missing", later), store.ErrNotFound)
}

func testInvites(t *testing.T, s store.Store) {
	ctx := context.Background()
	sid := newSession(t, s, time.Now())
	other := newSession(t, s, time.Now())

	list, err := s.Invites().ListInvites(ctx, sid)
	require.NoError(t, err)
	require.Empty(t, list)

	require.NoError(t, s.Invites().CreateInvites(ctx, sid, []domain.BrandInvite{
		invite("1", domain.InviteStatusPending),
		invite("2", domain.InviteStatusPending),
	}))
	require.NoError(t, s.Invites().CreateInvites(ctx, sid, []domain.BrandInvite{
		invite("3", domain.InviteStatusAccepted),
	}))
	require.NoError(t, s.Invites().CreateInvites(ctx, other, []domain.BrandInvite{
		invite("1", domain.InviteStatusDeclined),
	}))

	list, err = s.Invites().ListInvites(ctx, sid)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, []string{"1", "2", "3"}, []string{list[0].ID, list[1].ID, list[2].ID})
	require.Equal(t, invite("1", domain.InviteStatusPending).Requirements, list[0].Requirements)
	require.Equal(t, "1500.25", list[0].Offer.String())

	require.NoError(t, s.Invites().UpdateInviteStatus(ctx, sid, "2", domain.InviteStatusDeclined))
	list, err = s.Invites().ListInvites(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, domain.InviteStatusPending, list[0].Status)
	require.Equal(t, domain.InviteStatusDeclined, list[1].Status)

	otherList, err := s.Invites().ListInvites(ctx, other)
	require.NoError(t, err)
	require.Len(t, otherList, 1)
	require.Equal(t, domain.InviteStatusDeclined, otherList[0].Status)

	err = s.Invites().UpdateInviteStatus(ctx, sid, "9", domain.InviteStatusDeclined)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.Invites().CreateInvites(ctx, sid, []domain.BrandInvite{invite("1", domain.InviteStatusPending)})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func testEntries(t *testing.T, s store.Store) {
	ctx := context.Background()
	sid := newSession(t, s, time.Now())

	for _, e := range []domain.FinanceEntry{
		entry("a", domain.EntryTypeIncome, "100"),
		entry("b", domain.EntryTypeExpense, "40"),
		entry("c", domain.EntryTypeIncome, "0.10"),
	} {
		require.NoError(t, s.FinanceEntries().CreateEntry(ctx, sid, e))
	}

	list, err := s.FinanceEntries().ListEntries(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b", "a"}, []string{list[0].ID, list[1].ID, list[2].ID})

	totals := domain.ComputeTotals(list)
	require.Equal(t, "60.1", totals.Net.String())

	err = s.FinanceEntries().CreateEntry(ctx, sid, entry("a", domain.EntryTypeIncome, "1"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func testDrafts(t *testing.T, s store.Store) {
	ctx := context.Background()
	sid := newSession(t, s, time.Now())

	a := domain.ContentDraft{ID: "a", Type: domain.ContentTypeTweet, Title: "A", Content: "first", CreatedAt: "2024-01-01"}
	b := domain.ContentDraft{ID: "b", Type: domain.ContentTypeCaption, Title: "B", Content: "second", CreatedAt: "2024-01-02"}
	require.NoError(t, s.Drafts().CreateDraft(ctx, sid, a))
	require.NoError(t, s.Drafts().CreateDraft(ctx, sid, b))

	list, err := s.Drafts().ListDrafts(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, []domain.ContentDraft{b, a}, list)
}

func testStudio(t *testing.T, s store.Store) {
	ctx := context.Background()
	sid := newSession(t, s, time.Now())

	_, err := s.Studio().GetStudio(ctx, sid)
	require.ErrorIs(t, err, store.ErrNotFound)

	first := domain.StudioState{ContentType: domain.ContentTypeTweet, Topic: "AI", Tone: "funny", Length: "short", Content: "one"}
	require.NoError(t, s.Studio().PutStudio(ctx, sid, first))

	second := first
	second.Content = "two"
	require.NoError(t, s.Studio().PutStudio(ctx, sid, second))

	got, err := s.Studio().GetStudio(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, second, got)
}

func testRollback(t *testing.T, s store.Store) {
	ctx := context.Background()
	sid := newSession(t, s, time.Now())
	require.NoError(t, s.Invites().CreateInvites(ctx, sid, []domain.BrandInvite{invite("1", domain.InviteStatusPending)}))

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invites().UpdateInviteStatus(ctx, sid, "1", domain.InviteStatusAccepted); err != nil {
			return err
		}
		if err := tx.FinanceEntries().CreateEntry(ctx, sid, entry("x", domain.EntryTypeIncome, "5")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := s.Invites().ListInvites(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, domain.InviteStatusPending, list[0].Status)

	entries, err := s.FinanceEntries().ListEntries(ctx, sid)
	require.NoError(t, err)
	require.Empty(t, entries)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Invites().UpdateInviteStatus(ctx, sid, "1", domain.InviteStatusAccepted)
	}))
	list, err = s.Invites().ListInvites(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, domain.InviteStatusAccepted, list[0].Status)
}

func testEviction(t *testing.T, s store.Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	idle := newSession(t, s, now.Add(-2*time.Hour))
	active := newSession(t, s, now)
	require.NoError(t, s.Invites().CreateInvites(ctx, idle, []domain.BrandInvite{invite("1", domain.InviteStatusPending)}))
	require.NoError(t, s.FinanceEntries().CreateEntry(ctx, idle, entry("a", domain.EntryTypeIncome, "1")))

	n, err := s.Sessions().DeleteIdleSessions(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = s.Sessions().GetSession(ctx, idle)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Sessions().GetSession(ctx, active)
	require.NoError(t, err)

	invites, err := s.Invites().ListInvites(ctx, idle)
	require.NoError(t, err)
	require.Empty(t, invites)
	entries, err := s.FinanceEntries().ListEntries(ctx, idle)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func testConcurrentTx(t *testing.T, s store.Store) {
	ctx := context.Background()
	sid := newSession(t, s, time.Now())

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.WithTx(ctx, func(tx store.Tx) error {
				if _, err := tx.Sessions().GetSession(ctx, sid); err != nil {
					return err
				}
				id := string(rune('a' + i))
				return tx.FinanceEntries().CreateEntry(ctx, sid, entry(id, domain.EntryTypeIncome, "1"))
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	list, err := s.FinanceEntries().ListEntries(ctx, sid)
	require.NoError(t, err)
	require.Len(t, list, workers)
	require.Equal(t, "8", domain.ComputeTotals(list).Income.String())
}
