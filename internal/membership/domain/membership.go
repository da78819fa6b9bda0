package domain

import (
	"time"

	"github.com/aussiebroadwan/barcommun/pkg/idx"
)

// Membership is a plan a user can subscribe to, valid between StartAt and
// EndAt. Price is in cents.
type Membership struct {
	ID          idx.ID
	Name        string
	Description string
	Price       int64
	StartAt     time.Time
	EndAt       time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// ActiveAt reports whether t falls within the plan window, bounds included.
func (m Membership) ActiveAt(t time.Time) bool {
	return !t.Before(m.StartAt) && !t.After(m.EndAt)
}

// ValidWindow reports whether the plan starts strictly before it ends.
func (m Membership) ValidWindow() bool {
	return m.StartAt.Before(m.EndAt)
}

// UserMembership ties a user to a plan. At most one exists per pair.
type UserMembership struct {
	ID                        idx.ID
	UserID                    idx.ID
	MembershipID              idx.ID
	IsPaid                    bool
	HasNewsletterSubscription bool
	HasShiftsSubscription     bool
	CreatedAt                 time.Time
	UpdatedAt                 time.Time

	// Membership is populated by reads that join the plan.
	Membership *Membership
}
