package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
	"github.com/aussiebroadwan/creatordesk/pkg/idx"
	"github.com/aussiebroadwan/creatordesk/pkg/slogx"
)

type DraftService struct {
	Store store.Store
	Now   func() time.Time
}

// List returns the session's drafts newest first.
func (s *DraftService) List(ctx context.Context, sessionID string) ([]domain.ContentDraft, error) {
	var drafts []domain.ContentDraft
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := openWorkspace(ctx, tx, sessionID, clock(s.Now)); err != nil {
			return err
		}
		var err error
		drafts, err = tx.Drafts().ListDrafts(ctx, sessionID)
		return err
	})
	return drafts, err
}

// Save stores an explicit draft and returns the updated collection.
func (s *DraftService) Save(
	ctx context.Context,
	sessionID string,
	in domain.ContentDraftInput,
) ([]domain.ContentDraft, error) {
	log := slogx.FromContext(ctx)

	now := clock(s.Now)
	draft, err := domain.NewContentDraft(idx.NewAt(now).String(), in, now)
	if err != nil {
		log.Warn("draft rejected", slog.Any("error", err))
		return nil, err
	}

	var updated []domain.ContentDraft
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := openWorkspace(ctx, tx, sessionID, now); err != nil {
			return err
		}
		var err error
		updated, err = saveDraft(ctx, tx, sessionID, draft)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			log.Error("failed to save draft", slog.Any("error", err))
		}
		return nil, err
	}

	log.Info("draft saved", slog.String("draft_id", draft.ID), slog.String("type", string(draft.Type)))
	return updated, nil
}

// SaveGenerated turns the session's last generated content into a draft.
// With nothing generated it fails with domain.ErrNothingGenerated.
func (s *DraftService) SaveGenerated(ctx context.Context, sessionID string) ([]domain.ContentDraft, error) {
	log := slogx.FromContext(ctx)
	now := clock(s.Now)

	var (
		updated []domain.ContentDraft
		draft   domain.ContentDraft
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := openWorkspace(ctx, tx, sessionID, now); err != nil {
			return err
		}

		state, err := tx.Studio().GetStudio(ctx, sessionID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}

		in, err := domain.DraftFromStudio(state)
		if err != nil {
			return err
		}
		draft, err = domain.NewContentDraft(idx.NewAt(now).String(), in, now)
		if err != nil {
			return err
		}

		updated, err = saveDraft(ctx, tx, sessionID, draft)
		return err
	})

	switch {
	case err == nil:
		log.Info("generated content saved as draft", slog.String("draft_id", draft.ID), slog.String("title", draft.Title))
		return updated, nil
	case errors.Is(err, domain.ErrNothingGenerated), errors.Is(err, domain.ErrValidation):
		log.Warn("save generated content rejected", slog.Any("error", err))
		return nil, err
	case errors.Is(err, ErrSessionNotFound):
		return nil, err
	default:
		log.Error("failed to save generated content", slog.Any("error", err))
		return nil, err
	}
}

func saveDraft(ctx context.Context, tx store.Tx, sessionID string, draft domain.ContentDraft) ([]domain.ContentDraft, error) {
	current, err := tx.Drafts().ListDrafts(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := tx.Drafts().CreateDraft(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return domain.SaveDraft(current, draft), nil
}
