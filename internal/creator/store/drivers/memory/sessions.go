package memory

import (
	"context"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
)

type sessionsRepo struct {
	h handle
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	return r.h.update(s.ID, func(db *database) error {
		if _, ok := db.sessions[s.ID]; ok {
			return store.ErrAlreadyExists
		}
		db.sessions[s.ID] = s
		return nil
	})
}

func (r *sessionsRepo) GetSession(ctx context.Context, id string) (domain.Session, error) {
	var out domain.Session
	err := r.h.view(func(db *database) error {
		s, ok := db.sessions[id]
		if !ok {
			return store.ErrNotFound
		}
		out = s
		return nil
	})
	return out, err
}

func (r *sessionsRepo) TouchSession(ctx context.Context, id string, at time.Time) error {
	return r.h.update(id, func(db *database) error {
		s, ok := db.sessions[id]
		if !ok {
			return store.ErrNotFound
		}
		s.LastSeenAt = at
		db.sessions[id] = s
		return nil
	})
}

func (r *sessionsRepo) DeleteIdleSessions(ctx context.Context, before time.Time) (int64, error) {
	var idle []string
	err := r.h.view(func(db *database) error {
		for id, s := range db.sessions {
			if s.LastSeenAt.Before(before) {
				idle = append(idle, id)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// Each session is removed on its own; one touched in between survives.
	var n int64
	for _, id := range idle {
		err := r.h.update(id, func(db *database) error {
			if s, ok := db.sessions[id]; ok && s.LastSeenAt.Before(before) {
				db.deleteSession(id)
				n++
			}
			return nil
		})
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
