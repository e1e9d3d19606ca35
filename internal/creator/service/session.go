package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
	"github.com/aussiebroadwan/creatordesk/pkg/idx"
	"github.com/aussiebroadwan/creatordesk/pkg/jwtx"
	"github.com/aussiebroadwan/creatordesk/pkg/slogx"
)

type SessionService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	Audience []string
	TTL      time.Duration
	Seed     domain.Seed
	Now      func() time.Time
}

// IssuedSession is a freshly seeded workspace and the bearer token for it.
type IssuedSession struct {
	Session   domain.Session
	Token     string
	ExpiresAt time.Time
}

// Create opens a new workspace seeded with the configured invites and ledger
// entries and signs a session token for it.
func (s *SessionService) Create(ctx context.Context) (IssuedSession, error) {
	log := slogx.FromContext(ctx)
	now := clock(s.Now)

	sess := domain.Session{
		ID:         idx.NewAt(now).String(),
		CreatedAt:  now,
		LastSeenAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Sessions().CreateSession(ctx, sess); err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		if err := tx.Invites().CreateInvites(ctx, sess.ID, s.Seed.Invites); err != nil {
			return fmt.Errorf("seed invites: %w", err)
		}
		// Entries list newest first, so insert the seed backwards to keep
		// its order on screen.
		for _, e := range slices.Backward(s.Seed.Entries) {
			if err := tx.FinanceEntries().CreateEntry(ctx, sess.ID, e); err != nil {
				return fmt.Errorf("seed entries: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to create session", slog.Any("error", err))
		return IssuedSession{}, err
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	claims := jwtx.NewSessionClaims(sess.ID, s.Issuer, s.Audience, ttl, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return IssuedSession{}, err
	}

	log.Info("session created",
		slog.String("session_id", sess.ID),
		slog.Int("invites", len(s.Seed.Invites)),
		slog.Int("entries", len(s.Seed.Entries)),
	)
	return IssuedSession{
		Session:   sess,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
