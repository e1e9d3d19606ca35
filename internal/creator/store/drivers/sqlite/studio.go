package sqlite

import (
	"context"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
)

type studioRepo struct {
	q *queries
}

func (r *studioRepo) GetStudio(ctx context.Context, sessionID string) (domain.StudioState, error) {
	var s domain.StudioState
	err := r.q.db.QueryRowContext(ctx, getStudio, sessionID).
		Scan(&s.ContentType, &s.Topic, &s.Tone, &s.Length, &s.Content)
	if err != nil {
		return domain.StudioState{}, mapNotFound(err)
	}
	return s, nil
}

func (r *studioRepo) PutStudio(ctx context.Context, sessionID string, s domain.StudioState) error {
	_, err := r.q.db.ExecContext(ctx, putStudio,
		sessionID,
		string(s.ContentType),
		s.Topic,
		s.Tone,
		s.Length,
		s.Content,
	)
	return mapConstraint(err)
}
