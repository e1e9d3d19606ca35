// Package memory is a process-local store. Workspaces live only as long as
// the process, which matches a dashboard opened in a browser tab.
package memory

import (
	"context"
	"sync"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
)

// database holds every collection keyed by session id. Slices stored here
// are never modified in place; writers always swap in a new slice so copying
// a session's entries is a consistent snapshot of it.
type database struct {
	sessions map[string]domain.Session
	invites  map[string][]domain.BrandInvite
	entries  map[string][]domain.FinanceEntry
	drafts   map[string][]domain.ContentDraft
	studio   map[string]domain.StudioState
}

func newDatabase() *database {
	return &database{
		sessions: make(map[string]domain.Session),
		invites:  make(map[string][]domain.BrandInvite),
		entries:  make(map[string][]domain.FinanceEntry),
		drafts:   make(map[string][]domain.ContentDraft),
		studio:   make(map[string]domain.StudioState),
	}
}

// extract copies the records of one session into a new database.
func (db *database) extract(id string) *database {
	out := newDatabase()
	copyKey(out.sessions, db.sessions, id)
	copyKey(out.invites, db.invites, id)
	copyKey(out.entries, db.entries, id)
	copyKey(out.drafts, db.drafts, id)
	copyKey(out.studio, db.studio, id)
	return out
}

// restore replaces the records of session id with those held by from.
func (db *database) restore(id string, from *database) {
	db.deleteSession(id)
	copyKey(db.sessions, from.sessions, id)
	copyKey(db.invites, from.invites, id)
	copyKey(db.entries, from.entries, id)
	copyKey(db.drafts, from.drafts, id)
	copyKey(db.studio, from.studio, id)
}

func copyKey[V any](dst, src map[string]V, id string) {
	if v, ok := src[id]; ok {
		dst[id] = v
	}
}

func (db *database) deleteSession(id string) {
	delete(db.sessions, id)
	delete(db.invites, id)
	delete(db.entries, id)
	delete(db.drafts, id)
	delete(db.studio, id)
}

// handle gives repos access to a database. The Store takes its lock per
// call; a transaction already holds it. update names the session it writes
// so a transaction can journal that session before the first change.
type handle interface {
	view(fn func(db *database) error) error
	update(sessionID string, fn func(db *database) error) error
}

type Store struct {
	mu     sync.RWMutex
	db     *database
	closed bool
}

func NewStore() *Store {
	return &Store{db: newDatabase()}
}

func (s *Store) view(fn func(db *database) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.db)
}

func (s *Store) update(_ string, fn func(db *database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.db)
}

// ApplyMigrations is a no-op; there is no schema.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Ping fails once the store has been closed.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return errClosed
	}
	return ctx.Err()
}

// Tx locks the store until Commit or Rollback. Writes go straight to the live
// data; the first write to each session journals that session so Rollback
// can put it back.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, errClosed
	}
	return &txStore{parent: s, journal: make(map[string]*database)}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Sessions() store.Sessions             { return &sessionsRepo{h: s} }
func (s *Store) Invites() store.Invites               { return &invitesRepo{h: s} }
func (s *Store) FinanceEntries() store.FinanceEntries { return &entriesRepo{h: s} }
func (s *Store) Drafts() store.Drafts                 { return &draftsRepo{h: s} }
func (s *Store) Studio() store.Studio                 { return &studioRepo{h: s} }
