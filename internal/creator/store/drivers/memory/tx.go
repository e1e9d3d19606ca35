package memory

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
)

var (
	errClosed = errors.New("memory: store closed")
	errTxDone = errors.New("memory: transaction already committed or rolled back")
)

type txStore struct {
	parent  *Store
	journal map[string]*database // session id -> records before the first write
	done    bool
}

func (t *txStore) view(fn func(db *database) error) error {
	if t.done {
		return errTxDone
	}
	return fn(t.parent.db)
}

func (t *txStore) update(sessionID string, fn func(db *database) error) error {
	if t.done {
		return errTxDone
	}
	if _, ok := t.journal[sessionID]; !ok {
		t.journal[sessionID] = t.parent.db.extract(sessionID)
	}
	return fn(t.parent.db)
}

func (t *txStore) Commit() error {
	if t.done {
		return errTxDone
	}
	t.done = true
	t.journal = nil
	t.parent.mu.Unlock()
	return nil
}

func (t *txStore) Rollback() error {
	if t.done {
		return errTxDone
	}
	t.done = true
	for id, before := range t.journal {
		t.parent.db.restore(id, before)
	}
	t.journal = nil
	t.parent.mu.Unlock()
	return nil
}

func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported.
	return nil, errTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported.
	return errTxDone
}

func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Sessions() store.Sessions             { return &sessionsRepo{h: t} }
func (t *txStore) Invites() store.Invites               { return &invitesRepo{h: t} }
func (t *txStore) FinanceEntries() store.FinanceEntries { return &entriesRepo{h: t} }
func (t *txStore) Drafts() store.Drafts                 { return &draftsRepo{h: t} }
func (t *txStore) Studio() store.Studio                 { return &studioRepo{h: t} }
