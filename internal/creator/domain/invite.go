package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Platform is the channel a brand wants the collaboration published on.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
)

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformYouTube, PlatformInstagram, PlatformTwitter:
		return true
	default:
		return false
	}
}

// InviteStatus is the lifecycle label of a BrandInvite.
type InviteStatus string

const (
	InviteStatusPending   InviteStatus = "pending"
	InviteStatusAccepted  InviteStatus = "accepted"
	InviteStatusDeclined  InviteStatus = "declined"
	InviteStatusOngoing   InviteStatus = "ongoing"
	InviteStatusCompleted InviteStatus = "completed"
)

// Valid reports whether s is a known lifecycle status.
func (s InviteStatus) Valid() bool {
	switch s {
	case InviteStatusPending, InviteStatusAccepted, InviteStatusDeclined,
		InviteStatusOngoing, InviteStatusCompleted:
		return true
	default:
		return false
	}
}

// inviteTransitions is the whole lifecycle. Declined and completed are terminal.
var inviteTransitions = map[InviteStatus][]InviteStatus{
	InviteStatusPending:  {InviteStatusAccepted, InviteStatusDeclined},
	InviteStatusAccepted: {InviteStatusOngoing},
	InviteStatusOngoing:  {InviteStatusCompleted},
}

// AllowedTransitions returns the statuses an invite in s may move to next.
// The returned slice is a copy.
func AllowedTransitions(s InviteStatus) []InviteStatus {
	return slices.Clone(inviteTransitions[s])
}

// CanTransition reports whether from -> to is in the lifecycle table.
func CanTransition(from, to InviteStatus) bool {
	return slices.Contains(inviteTransitions[from], to)
}

// IsTerminal reports whether no transition leaves s.
func (s InviteStatus) IsTerminal() bool {
	return s.Valid() && len(inviteTransitions[s]) == 0
}

// BrandInvite is a brand's collaboration offer.
type BrandInvite struct {
	ID           string
	BrandName    string
	Description  string
	Offer        decimal.Decimal
	Deadline     string // YYYY-MM-DD
	Requirements []string
	Platform     Platform
	Status       InviteStatus
}

// Validate checks an invite coming from seed data.
func (inv BrandInvite) Validate() error {
	switch {
	case inv.ID == "":
		return invalid("id", "required")
	case inv.BrandName == "":
		return invalid("brand_name", "required")
	case inv.Offer.IsNegative():
		return invalid("offer", "must not be negative")
	case !inv.Platform.Valid():
		return invalid("platform", "must be one of youtube, instagram, twitter")
	case !inv.Status.Valid():
		return invalid("status", "unknown status")
	}
	if err := validateDate("deadline", inv.Deadline); err != nil {
		return err
	}
	return nil
}

// FindInvite returns the invite with id. It never modifies the collection.
func FindInvite(invites []BrandInvite, id string) (BrandInvite, bool) {
	i := slices.IndexFunc(invites, func(inv BrandInvite) bool { return inv.ID == id })
	if i < 0 {
		return BrandInvite{}, false
	}
	return invites[i], true
}

// UpdateInviteStatus moves the invite with id to status and returns a new
// collection. The input slice and the invites in it are left untouched, and
// every other invite is carried over as is.
func UpdateInviteStatus(invites []BrandInvite, id string, status InviteStatus) ([]BrandInvite, error) {
	if !status.Valid() {
		return nil, invalid("status", "unknown status "+string(status))
	}

	i := slices.IndexFunc(invites, func(inv BrandInvite) bool { return inv.ID == id })
	if i < 0 {
		return nil, ErrInviteNotFound
	}

	current := invites[i]
	if !CanTransition(current.Status, status) {
		return nil, &InvalidTransitionError{InviteID: id, From: current.Status, To: status}
	}

	out := slices.Clone(invites)
	updated := current
	updated.Status = status
	out[i] = updated
	return out, nil
}

// PendingCount counts invites still waiting on a decision.
func PendingCount(invites []BrandInvite) int {
	n := 0
	for _, inv := range invites {
		if inv.Status == InviteStatusPending {
			n++
		}
	}
	return n
}
