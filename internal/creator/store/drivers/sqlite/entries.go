package sqlite

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/shopspring/decimal"
)

type entriesRepo struct {
	q *queries
}

func (r *entriesRepo) ListEntries(ctx context.Context, sessionID string) ([]domain.FinanceEntry, error) {
	rows, err := r.q.db.QueryContext(ctx, listEntries, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.FinanceEntry{}
	for rows.Next() {
		var (
			e      domain.FinanceEntry
			amount string
		)
		if err := rows.Scan(&e.ID, &e.Type, &amount, &e.Source, &e.Date, &e.Tag, &e.Description); err != nil {
			return nil, err
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("entry %s: amount: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *entriesRepo) CreateEntry(ctx context.Context, sessionID string, e domain.FinanceEntry) error {
	_, err := r.q.db.ExecContext(ctx, createEntry,
		sessionID,
		e.ID,
		string(e.Type),
		e.Amount.String(),
		e.Source,
		e.Date,
		e.Tag,
		e.Description,
	)
	return mapConstraint(err)
}
