package query

import (
	"database/sql"
	"time"
)

type User struct {
	ID        string
	Email     string
	Firstname string
	Lastname  string
	Phone     string
	Roles     string // space delimited role keys
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt sql.NullTime
}

type Membership struct {
	ID          string
	Name        string
	Description string
	Price       int64
	StartAt     time.Time
	EndAt       time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   sql.NullTime
}

type UserMembership struct {
	ID                        string
	UserID                    string
	MembershipID              string
	IsPaid                    bool
	HasNewsletterSubscription bool
	HasShiftsSubscription     bool
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// UserMembershipRow is an association joined with its plan.
type UserMembershipRow struct {
	UserMembership
	Membership Membership
}
