package domain

import "time"

// Session is one dashboard workspace. All collections hang off its ID and
// disappear with it.
type Session struct {
	ID         string
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// Seed is the initial content of a new workspace, in display order.
type Seed struct {
	Invites []BrandInvite
	Entries []FinanceEntry
}
