package domain

import (
	"time"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
)

// User is a person known to the association. Deleted users are soft deleted
// and invisible to every read.
type User struct {
	ID        idx.ID
	Email     string
	Firstname string
	Lastname  string
	Phone     string // optional
	Roles     authz.Roles
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// DefaultRoles is the role set of a freshly created user.
func DefaultRoles() authz.Roles { return authz.Roles{authz.RoleUser} }

