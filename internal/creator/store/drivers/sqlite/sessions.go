package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
)

type sessionsRepo struct {
	q *queries
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.q.db.ExecContext(ctx, createSession, s.ID, s.CreatedAt.UnixNano(), s.LastSeenAt.UnixNano())
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSession(ctx context.Context, id string) (domain.Session, error) {
	var (
		s                   domain.Session
		createdAt, lastSeen int64
	)
	err := r.q.db.QueryRowContext(ctx, getSession, id).Scan(&s.ID, &createdAt, &lastSeen)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	s.CreatedAt = mapUnixNano(createdAt)
	s.LastSeenAt = mapUnixNano(lastSeen)
	return s, nil
}

func (r *sessionsRepo) TouchSession(ctx context.Context, id string, at time.Time) error {
	res, err := r.q.db.ExecContext(ctx, touchSession, at.UnixNano(), id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *sessionsRepo) DeleteIdleSessions(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.q.db.ExecContext(ctx, deleteIdleSessions, before.UnixNano())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func requireAffected(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
