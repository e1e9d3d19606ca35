package sqlite

import (
	"context"
	"database/sql"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	db dbtx
}

const (
	createSession = `INSERT INTO sessions (id, created_at, last_seen_at) VALUES (?, ?, ?)`

	getSession = `SELECT id, created_at, last_seen_at FROM sessions WHERE id = ?`

	touchSession = `UPDATE sessions SET last_seen_at = ? WHERE id = ?`

	deleteIdleSessions = `DELETE FROM sessions WHERE last_seen_at < ?`

	listInvites = `
SELECT id, brand_name, description, offer, deadline, requirements, platform, status
FROM brand_invites
WHERE session_id = ?
ORDER BY position`

	nextInvitePosition = `SELECT COALESCE(MAX(position) + 1, 0) FROM brand_invites WHERE session_id = ?`

	createInvite = `
INSERT INTO brand_invites (session_id, id, position, brand_name, description, offer, deadline, requirements, platform, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updateInviteStatus = `UPDATE brand_invites SET status = ? WHERE session_id = ? AND id = ?`

	listEntries = `
SELECT id, type, amount, source, date, tag, description
FROM finance_entries
WHERE session_id = ?
ORDER BY seq DESC`

	createEntry = `
INSERT INTO finance_entries (session_id, id, type, amount, source, date, tag, description)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	listDrafts = `
SELECT id, type, title, content, created_at
FROM content_drafts
WHERE session_id = ?
ORDER BY seq DESC`

	createDraft = `
INSERT INTO content_drafts (session_id, id, type, title, content, created_at)
VALUES (?, ?, ?, ?, ?, ?)`

	getStudio = `
SELECT content_type, topic, tone, length, content
FROM studio_states
WHERE session_id = ?`

	putStudio = `
INSERT INTO studio_states (session_id, content_type, topic, tone, length, content)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (session_id) DO UPDATE SET
    content_type = excluded.content_type,
    topic        = excluded.topic,
    tone         = excluded.tone,
    length       = excluded.length,
    content      = excluded.content`
)
