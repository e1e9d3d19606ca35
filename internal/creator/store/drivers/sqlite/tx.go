package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
)

type txStore struct {
	tx *sql.Tx
	q  *queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  &queries{db: tx},
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller will commit/rollback and outer DB stays open

// Ping is a no-op for transactions; the connection is already held.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Sessions() store.Sessions             { return &sessionsRepo{q: t.q} }
func (t *txStore) Invites() store.Invites               { return &invitesRepo{q: t.q} }
func (t *txStore) FinanceEntries() store.FinanceEntries { return &entriesRepo{q: t.q} }
func (t *txStore) Drafts() store.Drafts                 { return &draftsRepo{q: t.q} }
func (t *txStore) Studio() store.Studio                 { return &studioRepo{q: t.q} }

func (t *txStore) ApplyMigrations() error { return nil } // no-op; migrations should be applied before starting a tx
