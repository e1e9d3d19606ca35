package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
	"github.com/aussiebroadwan/creatordesk/pkg/slogx"
)

type InviteService struct {
	Store store.Store
	Now   func() time.Time
}

// List returns the session's invites in seed order.
func (s *InviteService) List(ctx context.Context, sessionID string) ([]domain.BrandInvite, error) {
	var invites []domain.BrandInvite
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := openWorkspace(ctx, tx, sessionID, clock(s.Now)); err != nil {
			return err
		}
		var err error
		invites, err = tx.Invites().ListInvites(ctx, sessionID)
		return err
	})
	return invites, err
}

// Get returns a single invite for the detail view.
func (s *InviteService) Get(ctx context.Context, sessionID, inviteID string) (domain.BrandInvite, error) {
	invites, err := s.List(ctx, sessionID)
	if err != nil {
		return domain.BrandInvite{}, err
	}
	inv, ok := domain.FindInvite(invites, inviteID)
	if !ok {
		return domain.BrandInvite{}, domain.ErrInviteNotFound
	}
	return inv, nil
}

// UpdateStatus moves one invite along its lifecycle and returns the whole
// updated collection. Rejected transitions leave the collection untouched.
func (s *InviteService) UpdateStatus(
	ctx context.Context,
	sessionID string,
	inviteID string,
	status domain.InviteStatus,
) ([]domain.BrandInvite, error) {
	log := slogx.FromContext(ctx)

	var updated []domain.BrandInvite
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := openWorkspace(ctx, tx, sessionID, clock(s.Now)); err != nil {
			return err
		}

		current, err := tx.Invites().ListInvites(ctx, sessionID)
		if err != nil {
			return err
		}

		next, err := domain.UpdateInviteStatus(current, inviteID, status)
		if err != nil {
			return err
		}

		if err := tx.Invites().UpdateInviteStatus(ctx, sessionID, inviteID, status); err != nil {
			return err
		}
		updated = next
		return nil
	})

	switch {
	case err == nil:
		log.Info("invite status updated",
			slog.String("invite_id", inviteID),
			slog.String("status", string(status)),
			slog.Int("pending", domain.PendingCount(updated)),
		)
		return updated, nil
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInviteNotFound):
		log.Warn("invite status update rejected",
			slog.String("invite_id", inviteID),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)
		return nil, err
	case errors.Is(err, ErrSessionNotFound):
		return nil, err
	default:
		log.Error("failed to update invite status", slog.String("invite_id", inviteID), slog.Any("error", err))
		return nil, err
	}
}
