package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/creatordesk/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingEvictsIdleSessions(t *testing.T) {
	ctx := context.Background()
	env := newMemoryEnv(t)

	idle := env.newSession(t)
	env.now = env.now.Add(90 * time.Minute)
	active := env.newSession(t)

	hk := NewHousekeepingService(env.store, slogx.Discard(), time.Minute, time.Hour)
	hk.Now = func() time.Time { return env.now }

	require.EqualValues(t, 1, hk.cleanup())
	require.EqualValues(t, 0, hk.cleanup())

	_, err := env.invites.List(ctx, idle)
	require.ErrorIs(t, err, ErrSessionNotFound)
	_, err = env.invites.List(ctx, active)
	require.NoError(t, err)
}

func TestHousekeepingStartStop(t *testing.T) {
	env := newMemoryEnv(t)

	hk := NewHousekeepingService(env.store, slogx.Discard(), 0, 0)
	require.Equal(t, 10*time.Minute, hk.Interval)
	require.Equal(t, DefaultSessionIdleTTL, hk.IdleTTL)

	hk.Start()
	hk.Stop()
}
