package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (memory, sqlite)
// implement this. Every collection belongs to exactly one session and is
// removed with it.
type Store interface {
	Sessions() Sessions
	Invites() Invites
	FinanceEntries() FinanceEntries
	Drafts() Drafts
	Studio() Studio

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing storage is still reachable.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Sessions interface {
	// CreateSession inserts a new, empty workspace.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSession returns ErrNotFound for unknown or evicted sessions.
	GetSession(ctx context.Context, id string) (domain.Session, error)

	// TouchSession bumps last_seen_at.
	TouchSession(ctx context.Context, id string, at time.Time) error

	// DeleteIdleSessions removes every session last seen before the cutoff,
	// together with its collections, and reports how many went.
	DeleteIdleSessions(ctx context.Context, before time.Time) (int64, error)
}

type Invites interface {
	// ListInvites returns a session's invites in insertion order.
	ListInvites(ctx context.Context, sessionID string) ([]domain.BrandInvite, error)

	// CreateInvites appends invites to the end of the session's collection.
	CreateInvites(ctx context.Context, sessionID string, invites []domain.BrandInvite) error

	// UpdateInviteStatus overwrites one invite's status. No transition
	// checks happen here.
	UpdateInviteStatus(ctx context.Context, sessionID, inviteID string, status domain.InviteStatus) error
}

type FinanceEntries interface {
	// ListEntries returns a session's ledger newest first.
	ListEntries(ctx context.Context, sessionID string) ([]domain.FinanceEntry, error)

	// CreateEntry records e as the newest entry.
	CreateEntry(ctx context.Context, sessionID string, e domain.FinanceEntry) error
}

type Drafts interface {
	// ListDrafts returns a session's drafts newest first.
	ListDrafts(ctx context.Context, sessionID string) ([]domain.ContentDraft, error)

	// CreateDraft records d as the newest draft.
	CreateDraft(ctx context.Context, sessionID string, d domain.ContentDraft) error
}

type Studio interface {
	// GetStudio returns ErrNotFound until something has been generated.
	GetStudio(ctx context.Context, sessionID string) (domain.StudioState, error)

	// PutStudio replaces the session's last generation.
	PutStudio(ctx context.Context, sessionID string, s domain.StudioState) error
}
