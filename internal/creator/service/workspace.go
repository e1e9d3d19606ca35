package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
)

// ErrSessionNotFound is returned for a session that never existed or has
// been evicted.
var ErrSessionNotFound = errors.New("session not found")

func clock(now func() time.Time) time.Time {
	if now == nil {
		return time.Now().UTC()
	}
	return now()
}

// openWorkspace confirms the session exists and records activity on it. It
// must run inside the same transaction as the work it guards.
func openWorkspace(ctx context.Context, tx store.Tx, sessionID string, at time.Time) error {
	if sessionID == "" {
		return ErrSessionNotFound
	}
	if err := tx.Sessions().TouchSession(ctx, sessionID, at); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}
