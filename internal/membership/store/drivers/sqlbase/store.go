// Package sqlbase implements store.Store over database/sql. The sqlite and
// postgres drivers wrap it with their own connection setup, migrations and
// error classification.
package sqlbase

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/internal/membership/store/drivers/query"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
)

// Options describe what differs between drivers.
type Options struct {
	Dialect query.Dialect

	// IsUniqueViolation classifies driver errors for unique constraints.
	IsUniqueViolation func(error) bool

	// Migrate applies the driver's embedded migrations.
	Migrate func(db *sql.DB) error
}

type Store struct {
	db   *sql.DB
	q    *query.Queries
	opts Options
	now  func() time.Time
}

func New(db *sql.DB, opts Options) *Store {
	if opts.IsUniqueViolation == nil {
		opts.IsUniqueViolation = func(error) bool { return false }
	}
	return &Store{
		db:   db,
		q:    query.New(db, opts.Dialect),
		opts: opts,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// DB exposes the pool, mainly for tests.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ApplyMigrations applies any pending embedded migrations.
func (s *Store) ApplyMigrations() error {
	if s.opts.Migrate == nil {
		return errors.New("sqlbase: no migrations configured")
	}
	return s.opts.Migrate(s.db)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx, repos: s.repos(s.q.WithTx(tx))}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Rollback after a successful commit is a harmless ErrTxDone.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users                     { return s.repos(s.q).users }
func (s *Store) Memberships() store.Memberships         { return s.repos(s.q).memberships }
func (s *Store) UserMemberships() store.UserMemberships { return s.repos(s.q).userMemberships }

type repos struct {
	users           *usersRepo
	memberships     *membershipsRepo
	userMemberships *userMembershipsRepo
}

func (s *Store) repos(q *query.Queries) repos {
	b := base{q: q, unique: s.opts.IsUniqueViolation, now: s.now}
	return repos{
		users:           &usersRepo{b},
		memberships:     &membershipsRepo{b},
		userMemberships: &userMembershipsRepo{b},
	}
}

// base is shared by every repo.
type base struct {
	q      *query.Queries
	unique func(error) bool
	now    func() time.Time
}

func (b base) mapWriteErr(err error) error {
	if err != nil && b.unique(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mustAffect turns an update that touched nothing into ErrNotFound.
func mustAffect(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func orNow(t time.Time, now func() time.Time) time.Time {
	if t.IsZero() {
		return now()
	}
	return t.UTC()
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time.UTC()
		return &val
	}
	return nil
}

// joinRoles stores roles space delimited, the same way they travel in tokens.
func joinRoles(roles authz.Roles) string {
	return strings.Join(roles.Strings(), " ")
}

// splitRoles is lenient: rows written by an older catalog may carry keys that
// no longer exist, and those are dropped rather than failing the read.
func splitRoles(s string) authz.Roles {
	fields := strings.Fields(s)
	out := make(authz.Roles, 0, len(fields))
	for _, f := range fields {
		r, err := authz.ParseRole(f)
		if err != nil || out.Has(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func mapUser(row query.User) domain.User {
	return domain.User{
		ID:        idx.ID(row.ID),
		Email:     row.Email,
		Firstname: row.Firstname,
		Lastname:  row.Lastname,
		Phone:     row.Phone,
		Roles:     splitRoles(row.Roles),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
		DeletedAt: mapNullTimePtr(row.DeletedAt),
	}
}

func mapMembership(row query.Membership) domain.Membership {
	return domain.Membership{
		ID:          idx.ID(row.ID),
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		StartAt:     row.StartAt.UTC(),
		EndAt:       row.EndAt.UTC(),
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
		DeletedAt:   mapNullTimePtr(row.DeletedAt),
	}
}

func mapUserMembership(row query.UserMembershipRow) domain.UserMembership {
	plan := mapMembership(row.Membership)
	return domain.UserMembership{
		ID:                        idx.ID(row.ID),
		UserID:                    idx.ID(row.UserID),
		MembershipID:              idx.ID(row.MembershipID),
		IsPaid:                    row.IsPaid,
		HasNewsletterSubscription: row.HasNewsletterSubscription,
		HasShiftsSubscription:     row.HasShiftsSubscription,
		CreatedAt:                 row.CreatedAt.UTC(),
		UpdatedAt:                 row.UpdatedAt.UTC(),
		Membership:                &plan,
	}
}
