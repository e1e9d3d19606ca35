package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
	"github.com/aussiebroadwan/creatordesk/pkg/slogx"
)

// DefaultGenerationDelay is how long the studio pretends to think.
const DefaultGenerationDelay = 2 * time.Second

// ContentStudio renders template content for a session.
type ContentStudio struct {
	Store store.Store
	Delay time.Duration
	Now   func() time.Time

	// Sleep waits for d or until ctx is done. Tests swap it out so no real
	// time passes.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Generate waits for the configured delay, renders the template and keeps
// the result as the session's latest generation. Missing input or an
// aborted wait leaves the previous generation in place.
func (s *ContentStudio) Generate(ctx context.Context, sessionID string, req domain.GenerateRequest) (domain.StudioState, error) {
	log := slogx.FromContext(ctx)

	if err := req.Validate(); err != nil {
		log.Warn("content generation rejected", slog.Any("error", err))
		return domain.StudioState{}, err
	}

	// Fail fast on a dead session before making the caller wait.
	if err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return openWorkspace(ctx, tx, sessionID, clock(s.Now))
	}); err != nil {
		return domain.StudioState{}, err
	}

	sleep := s.Sleep
	if sleep == nil {
		sleep = SleepContext
	}
	if err := sleep(ctx, s.Delay); err != nil {
		log.Info("content generation aborted", slog.Any("error", err))
		return domain.StudioState{}, err
	}

	contentType := domain.ContentType(strings.TrimSpace(req.ContentType))
	topic := strings.TrimSpace(req.Topic)
	state := domain.StudioState{
		ContentType: contentType,
		Topic:       topic,
		Tone:        req.Tone,
		Length:      req.Length,
		Content:     domain.RenderContent(contentType, topic, req.Tone),
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := openWorkspace(ctx, tx, sessionID, clock(s.Now)); err != nil {
			return err
		}
		return tx.Studio().PutStudio(ctx, sessionID, state)
	})
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			log.Error("failed to store generated content", slog.Any("error", err))
		}
		return domain.StudioState{}, err
	}

	log.Info("content generated",
		slog.String("content_type", string(contentType)),
		slog.Bool("fallback", !contentType.Valid()),
	)
	return state, nil
}

// Latest returns the session's last generation, or domain.ErrNothingGenerated.
func (s *ContentStudio) Latest(ctx context.Context, sessionID string) (domain.StudioState, error) {
	var state domain.StudioState
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := openWorkspace(ctx, tx, sessionID, clock(s.Now)); err != nil {
			return err
		}
		var err error
		state, err = tx.Studio().GetStudio(ctx, sessionID)
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrNothingGenerated
		}
		return err
	})
	return state, err
}

// SleepContext blocks for d or until ctx is done, whichever comes first.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
