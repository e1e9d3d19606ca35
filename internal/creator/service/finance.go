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
	"golang.org/x/text/language"
)

type FinanceService struct {
	Store  store.Store
	Locale language.Tag
	Now    func() time.Time
}

// Summary is the ledger overview shown on the finance cards.
type Summary struct {
	Totals    domain.Totals
	Formatted domain.FormattedTotals
	Entries   int
}

// List returns the session's ledger newest first.
func (s *FinanceService) List(ctx context.Context, sessionID string) ([]domain.FinanceEntry, error) {
	var entries []domain.FinanceEntry
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := openWorkspace(ctx, tx, sessionID, clock(s.Now)); err != nil {
			return err
		}
		var err error
		entries, err = tx.FinanceEntries().ListEntries(ctx, sessionID)
		return err
	})
	return entries, err
}

// AddEntry validates the submission, records it as the newest entry and
// returns the updated ledger.
func (s *FinanceService) AddEntry(
	ctx context.Context,
	sessionID string,
	in domain.FinanceEntryInput,
) ([]domain.FinanceEntry, error) {
	log := slogx.FromContext(ctx)

	entry, err := domain.NewFinanceEntry(idx.NewAt(clock(s.Now)).String(), in)
	if err != nil {
		log.Warn("finance entry rejected", slog.Any("error", err))
		return nil, err
	}

	var updated []domain.FinanceEntry
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := openWorkspace(ctx, tx, sessionID, clock(s.Now)); err != nil {
			return err
		}

		current, err := tx.FinanceEntries().ListEntries(ctx, sessionID)
		if err != nil {
			return err
		}
		if err := tx.FinanceEntries().CreateEntry(ctx, sessionID, entry); err != nil {
			return err
		}
		updated = domain.AddFinanceEntry(current, entry)
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			log.Error("failed to add finance entry", slog.Any("error", err))
		}
		return nil, err
	}

	log.Info("finance entry added",
		slog.String("entry_id", entry.ID),
		slog.String("type", string(entry.Type)),
		slog.String("amount", entry.Amount.String()),
	)
	return updated, nil
}

// Summary recomputes the totals from the full ledger.
func (s *FinanceService) Summary(ctx context.Context, sessionID string) (Summary, error) {
	entries, err := s.List(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	return s.Summarize(entries), nil
}

// Summarize computes and formats totals for entries.
func (s *FinanceService) Summarize(entries []domain.FinanceEntry) Summary {
	locale := s.Locale
	if locale == language.Und {
		locale = domain.DefaultLocale
	}
	totals := domain.ComputeTotals(entries)
	return Summary{
		Totals:    totals,
		Formatted: totals.Format(locale),
		Entries:   len(entries),
	}
}
