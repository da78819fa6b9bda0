package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories hang off it so a Tx exposes exactly the
// same surface and nothing can start a transaction within a transaction.
type Store interface {
	Users() Users
	Memberships() Memberships
	UserMemberships() UserMemberships

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn within a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Page bounds list queries. A zero Limit means no limit.
type Page struct {
	Limit  int
	Offset int
}

type Users interface {
	// CreateUser inserts u. A taken email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a live (not deleted) user.
	GetUserByID(ctx context.Context, id idx.ID) (domain.User, error)

	// GetUserByEmail looks up a live user by exact email. Callers normalise
	// emails before writing and looking up.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns live users, oldest first.
	ListUsers(ctx context.Context, page Page) ([]domain.User, error)

	// UpdateUser writes the profile fields (email, names, phone) and bumps
	// updated_at. Roles are left alone.
	UpdateUser(ctx context.Context, u domain.User) error

	// UpdateUserRoles replaces the role set and bumps updated_at.
	UpdateUserRoles(ctx context.Context, id idx.ID, roles authz.Roles) error

	// SoftDeleteUser stamps deleted_at. Deleting twice yields ErrNotFound.
	SoftDeleteUser(ctx context.Context, id idx.ID, at time.Time) error
}

type Memberships interface {
	CreateMembership(ctx context.Context, m domain.Membership) error

	// GetMembershipByID returns a live plan.
	GetMembershipByID(ctx context.Context, id idx.ID) (domain.Membership, error)

	// ListMemberships returns live plans ordered by start date, newest first.
	ListMemberships(ctx context.Context, page Page) ([]domain.Membership, error)

	UpdateMembership(ctx context.Context, m domain.Membership) error

	SoftDeleteMembership(ctx context.Context, id idx.ID, at time.Time) error
}

type UserMemberships interface {
	// CreateUserMembership inserts an association. A second row for the same
	// (user, plan) pair yields ErrAlreadyExists.
	CreateUserMembership(ctx context.Context, um domain.UserMembership) error

	GetUserMembershipByID(ctx context.Context, id idx.ID) (domain.UserMembership, error)

	// GetUserMembershipByPair returns the association of userID with
	// membershipID, plan joined.
	GetUserMembershipByPair(ctx context.Context, userID, membershipID idx.ID) (domain.UserMembership, error)

	// ListUserMemberships returns every association, newest first.
	ListUserMemberships(ctx context.Context, page Page) ([]domain.UserMembership, error)

	// ListUserMembershipsByUser returns the associations of one user, newest
	// first, plan joined.
	ListUserMembershipsByUser(ctx context.Context, userID idx.ID) ([]domain.UserMembership, error)

	// GetActiveUserMembership returns the newest association of userID whose
	// plan window contains at.
	GetActiveUserMembership(ctx context.Context, userID idx.ID, at time.Time) (domain.UserMembership, error)

	// UpdateUserMembership writes the flags and bumps updated_at.
	UpdateUserMembership(ctx context.Context, um domain.UserMembership) error

	DeleteUserMembership(ctx context.Context, id idx.ID) error
}
