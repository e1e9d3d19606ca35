package sqlite

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/creatordesk/internal/creator/domain"
	"github.com/shopspring/decimal"
)

type invitesRepo struct {
	q *queries
}

func (r *invitesRepo) ListInvites(ctx context.Context, sessionID string) ([]domain.BrandInvite, error) {
	rows, err := r.q.db.QueryContext(ctx, listInvites, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.BrandInvite{}
	for rows.Next() {
		var (
			inv                 domain.BrandInvite
			offer, requirements string
		)
		if err := rows.Scan(
			&inv.ID,
			&inv.BrandName,
			&inv.Description,
			&offer,
			&inv.Deadline,
			&requirements,
			&inv.Platform,
			&inv.Status,
		); err != nil {
			return nil, err
		}

		if inv.Offer, err = decimal.NewFromString(offer); err != nil {
			return nil, fmt.Errorf("invite %s: offer: %w", inv.ID, err)
		}
		if inv.Requirements, err = mapRequirements(requirements); err != nil {
			return nil, fmt.Errorf("invite %s: requirements: %w", inv.ID, err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitesRepo) CreateInvites(ctx context.Context, sessionID string, invites []domain.BrandInvite) error {
	var next int64
	if err := r.q.db.QueryRowContext(ctx, nextInvitePosition, sessionID).Scan(&next); err != nil {
		return err
	}

	for i, inv := range invites {
		requirements, err := encodeRequirements(inv.Requirements)
		if err != nil {
			return err
		}
		_, err = r.q.db.ExecContext(ctx, createInvite,
			sessionID,
			inv.ID,
			next+int64(i),
			inv.BrandName,
			inv.Description,
			inv.Offer.String(),
			inv.Deadline,
			requirements,
			string(inv.Platform),
			string(inv.Status),
		)
		if err != nil {
			return mapConstraint(err)
		}
	}
	return nil
}

func (r *invitesRepo) UpdateInviteStatus(ctx context.Context, sessionID, inviteID string, status domain.InviteStatus) error {
	res, err := r.q.db.ExecContext(ctx, updateInviteStatus, string(status), sessionID, inviteID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
