package sqlite

import (
	"context"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
)

type draftsRepo struct {
	q *queries
}

func (r *draftsRepo) ListDrafts(ctx context.Context, sessionID string) ([]domain.ContentDraft, error) {
	rows, err := r.q.db.QueryContext(ctx, listDrafts, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ContentDraft{}
	for rows.Next() {
		var d domain.ContentDraft
		if err := rows.Scan(&d.ID, &d.Type, &d.Title, &d.Content, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *draftsRepo) CreateDraft(ctx context.Context, sessionID string, d domain.ContentDraft) error {
	_, err := r.q.db.ExecContext(ctx, createDraft,
		sessionID,
		d.ID,
		string(d.Type),
		d.Title,
		d.Content,
		d.CreatedAt,
	)
	return mapConstraint(err)
}
