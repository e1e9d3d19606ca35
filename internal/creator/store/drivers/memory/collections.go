package memory

import (
	"context"
	"slices"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/aussiebroadwan/creatordesk/internal/creator/store"
)

func requireSession(db *database, sessionID string) error {
	if _, ok := db.sessions[sessionID]; !ok {
		return store.ErrNotFound
	}
	return nil
}

type invitesRepo struct {
	h handle
}

func (r *invitesRepo) ListInvites(ctx context.Context, sessionID string) ([]domain.BrandInvite, error) {
	var out []domain.BrandInvite
	err := r.h.view(func(db *database) error {
		out = cloneInvites(db.invites[sessionID])
		return nil
	})
	return out, err
}

func (r *invitesRepo) CreateInvites(ctx context.Context, sessionID string, invites []domain.BrandInvite) error {
	return r.h.update(sessionID, func(db *database) error {
		if err := requireSession(db, sessionID); err != nil {
			return err
		}
		current := db.invites[sessionID]
		for _, inv := range invites {
			if slices.ContainsFunc(current, func(c domain.BrandInvite) bool { return c.ID == inv.ID }) {
				return store.ErrAlreadyExists
			}
		}
		db.invites[sessionID] = append(slices.Clip(current), cloneInvites(invites)...)
		return nil
	})
}

func (r *invitesRepo) UpdateInviteStatus(ctx context.Context, sessionID, inviteID string, status domain.InviteStatus) error {
	return r.h.update(sessionID, func(db *database) error {
		current := db.invites[sessionID]
		i := slices.IndexFunc(current, func(inv domain.BrandInvite) bool { return inv.ID == inviteID })
		if i < 0 {
			return store.ErrNotFound
		}
		next := slices.Clone(current)
		next[i].Status = status
		db.invites[sessionID] = next
		return nil
	})
}

// cloneInvites copies the requirement lists too so callers cannot reach
// stored data.
func cloneInvites(in []domain.BrandInvite) []domain.BrandInvite {
	if in == nil {
		return []domain.BrandInvite{}
	}
	out := slices.Clone(in)
	for i := range out {
		out[i].Requirements = slices.Clone(out[i].Requirements)
	}
	return out
}

type entriesRepo struct {
	h handle
}

func (r *entriesRepo) ListEntries(ctx context.Context, sessionID string) ([]domain.FinanceEntry, error) {
	var out []domain.FinanceEntry
	err := r.h.view(func(db *database) error {
		out = append([]domain.FinanceEntry{}, db.entries[sessionID]...)
		return nil
	})
	return out, err
}

func (r *entriesRepo) CreateEntry(ctx context.Context, sessionID string, e domain.FinanceEntry) error {
	return r.h.update(sessionID, func(db *database) error {
		if err := requireSession(db, sessionID); err != nil {
			return err
		}
		current := db.entries[sessionID]
		if slices.ContainsFunc(current, func(c domain.FinanceEntry) bool { return c.ID == e.ID }) {
			return store.ErrAlreadyExists
		}
		db.entries[sessionID] = domain.AddFinanceEntry(current, e)
		return nil
	})
}

type draftsRepo struct {
	h handle
}

func (r *draftsRepo) ListDrafts(ctx context.Context, sessionID string) ([]domain.ContentDraft, error) {
	var out []domain.ContentDraft
	err := r.h.view(func(db *database) error {
		out = append([]domain.ContentDraft{}, db.drafts[sessionID]...)
		return nil
	})
	return out, err
}

func (r *draftsRepo) CreateDraft(ctx context.Context, sessionID string, d domain.ContentDraft) error {
	return r.h.update(sessionID, func(db *database) error {
		if err := requireSession(db, sessionID); err != nil {
			return err
		}
		current := db.drafts[sessionID]
		if slices.ContainsFunc(current, func(c domain.ContentDraft) bool { return c.ID == d.ID }) {
			return store.ErrAlreadyExists
		}
		db.drafts[sessionID] = domain.SaveDraft(current, d)
		return nil
	})
}

type studioRepo struct {
	h handle
}

func (r *studioRepo) GetStudio(ctx context.Context, sessionID string) (domain.StudioState, error) {
	var out domain.StudioState
	err := r.h.view(func(db *database) error {
		s, ok := db.studio[sessionID]
		if !ok {
			return store.ErrNotFound
		}
		out = s
		return nil
	})
	return out, err
}

func (r *studioRepo) PutStudio(ctx context.Context, sessionID string, s domain.StudioState) error {
	return r.h.update(sessionID, func(db *database) error {
		if err := requireSession(db, sessionID); err != nil {
			return err
		}
		db.studio[sessionID] = s
		return nil
	})
}
