// Package storetest is a behavioural suite every store driver must pass.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Factory returns a migrated, empty store.
type Factory func(t *testing.T) store.Store

// Run executes the suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("memberships", func(t *testing.T) { testMemberships(t, newStore(t)) })
	t.Run("user memberships", func(t *testing.T) { testUserMemberships(t, newStore(t)) })
	t.Run("transactions", func(t *testing.T) { testTransactions(t, newStore(t)) })
}

var base = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

// User returns a fixture user with a unique email.
func User(roles ...authz.Role) domain.User {
	id := idx.New()
	if len(roles) == 0 {
		roles = []authz.Role{authz.RoleUser}
	}
	return domain.User{
		ID:        id,
		Email:     "member-" + id.String() + "@barcommun.example",
		Firstname: "Camille",
		Lastname:  "Martin",
		Roles:     roles,
	}
}

// Plan returns a fixture plan running from start for the given duration.
func Plan(name string, start time.Time, d time.Duration) domain.Membership {
	return domain.Membership{
		ID:      idx.New(),
		Name:    name,
		Price:   1500,
		StartAt: start,
		EndAt:   start.Add(d),
	}
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()
	users := s.Users()

	u := User(authz.RoleBoard, authz.RoleMember)
	u.Phone = "+33 6 12 34 56 78"
	require.NoError(t, users.CreateUser(ctx, u))

	got, err := users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, u.Phone, got.Phone)
	require.Equal(t, authz.Roles{authz.RoleBoard, authz.RoleMember}, got.Roles)
	require.False(t, got.CreatedAt.IsZero())
	require.Nil(t, got.DeletedAt)

	byEmail, err := users.GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	dup := User()
	dup.Email = u.Email
	require.ErrorIs(t, users.CreateUser(ctx, dup), store.ErrAlreadyExists)

	got.Firstname = "Camila"
	got.Phone = ""
	require.NoError(t, users.UpdateUser(ctx, got))
	require.NoError(t, users.UpdateUserRoles(ctx, u.ID, authz.Roles{authz.RoleActiveMember}))

	got, err = users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Camila", got.Firstname)
	require.Empty(t, got.Phone)
	require.Equal(t, authz.Roles{authz.RoleActiveMember}, got.Roles)

	other := User()
	require.NoError(t, users.CreateUser(ctx, other))

	list, err := users.ListUsers(ctx, store.Page{})
	require.NoError(t, err)
	require.Len(t, list, 2)

	list, err = users.ListUsers(ctx, store.Page{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, list, 1)

	// Soft delete hides the user from every read and frees the email.
	require.NoError(t, users.SoftDeleteUser(ctx, u.ID, base))
	_, err = users.GetUserByID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = users.GetUserByEmail(ctx, u.Email)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, users.SoftDeleteUser(ctx, u.ID, base), store.ErrNotFound)
	require.ErrorIs(t, users.UpdateUserRoles(ctx, u.ID, authz.Roles{authz.RoleUser}), store.ErrNotFound)

	list, err = users.ListUsers(ctx, store.Page{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	again := User()
	again.Email = u.Email
	require.NoError(t, users.CreateUser(ctx, again))

	_, err = users.GetUserByID(ctx, idx.New())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testMemberships(t *testing.T, s store.Store) {
	ctx := context.Background()
	plans := s.Memberships()

	older := Plan("2025-2026", base.AddDate(-1, 0, 0), 365*24*time.Hour)
	newer := Plan("2026-2027", base, 365*24*time.Hour)
	newer.Description = "Cotisation annuelle"
	require.NoError(t, plans.CreateMembership(ctx, older))
	require.NoError(t, plans.CreateMembership(ctx, newer))

	got, err := plans.GetMembershipByID(ctx, newer.ID)
	require.NoError(t, err)
	require.Equal(t, newer.Name, got.Name)
	require.Equal(t, newer.Description, got.Description)
	require.Equal(t, int64(1500), got.Price)
	require.True(t, newer.StartAt.Equal(got.StartAt))
	require.True(t, newer.EndAt.Equal(got.EndAt))

	list, err := plans.ListMemberships(ctx, store.Page{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, newer.ID, list[0].ID, "newest plan first")

	got.Price = 2000
	got.EndAt = got.EndAt.Add(24 * time.Hour)
	require.NoError(t, plans.UpdateMembership(ctx, got))
	got, err = plans.GetMembershipByID(ctx, newer.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2000), got.Price)

	// The database refuses an inverted window even if a caller skips validation.
	bad := Plan("inverted", base, -time.Hour)
	require.Error(t, plans.CreateMembership(ctx, bad))

	require.NoError(t, plans.SoftDeleteMembership(ctx, older.ID, base))
	_, err = plans.GetMembershipByID(ctx, older.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, plans.UpdateMembership(ctx, older), store.ErrNotFound)
}

func testUserMemberships(t *testing.T, s store.Store) {
	ctx := context.Background()

	u := User()
	require.NoError(t, s.Users().CreateUser(ctx, u))

	past := Plan("past", base.AddDate(-2, 0, 0), 30*24*time.Hour)
	current := Plan("current", base.Add(-24*time.Hour), 30*24*time.Hour)
	also := Plan("also current", base.Add(-48*time.Hour), 60*24*time.Hour)
	for _, p := range []domain.Membership{past, current, also} {
		require.NoError(t, s.Memberships().CreateMembership(ctx, p))
	}

	ums := s.UserMemberships()
	mk := func(plan domain.Membership, created time.Time) domain.UserMembership {
		um := domain.UserMembership{
			ID:           idx.NewAt(created),
			UserID:       u.ID,
			MembershipID: plan.ID,
			CreatedAt:    created,
		}
		require.NoError(t, ums.CreateUserMembership(ctx, um))
		return um
	}
	first := mk(past, base.Add(-3*time.Hour))
	second := mk(also, base.Add(-2*time.Hour))
	third := mk(current, base.Add(-1*time.Hour))

	dup := domain.UserMembership{ID: idx.New(), UserID: u.ID, MembershipID: past.ID}
	require.ErrorIs(t, ums.CreateUserMembership(ctx, dup), store.ErrAlreadyExists)

	orphan := domain.UserMembership{ID: idx.New(), UserID: idx.New(), MembershipID: past.ID}
	require.Error(t, ums.CreateUserMembership(ctx, orphan), "foreign keys are enforced")

	got, err := ums.GetUserMembershipByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.UserID)
	require.NotNil(t, got.Membership)
	require.Equal(t, "past", got.Membership.Name)

	pair, err := ums.GetUserMembershipByPair(ctx, u.ID, current.ID)
	require.NoError(t, err)
	require.Equal(t, third.ID, pair.ID)

	byUser, err := ums.ListUserMembershipsByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []idx.ID{third.ID, second.ID, first.ID}, ids(byUser))

	all, err := ums.ListUserMemberships(ctx, store.Page{Limit: 2})
	require.NoError(t, err)
	require.Equal(t, []idx.ID{third.ID, second.ID}, ids(all))

	active, err := ums.GetActiveUserMembership(ctx, u.ID, base)
	require.NoError(t, err)
	require.Equal(t, third.ID, active.ID, "newest association wins when several plans are active")

	_, err = ums.GetActiveUserMembership(ctx, u.ID, base.AddDate(5, 0, 0))
	require.ErrorIs(t, err, store.ErrNotFound)

	// Window bounds are inclusive.
	active, err = ums.GetActiveUserMembership(ctx, u.ID, past.EndAt)
	require.NoError(t, err)
	require.Equal(t, first.ID, active.ID)

	third.IsPaid = true
	third.HasShiftsSubscription = true
	require.NoError(t, ums.UpdateUserMembership(ctx, third))
	got, err = ums.GetUserMembershipByID(ctx, third.ID)
	require.NoError(t, err)
	require.True(t, got.IsPaid)
	require.True(t, got.HasShiftsSubscription)
	require.False(t, got.HasNewsletterSubscription)

	// A soft deleted plan no longer counts as active but history remains.
	require.NoError(t, s.Memberships().SoftDeleteMembership(ctx, current.ID, base))
	active, err = ums.GetActiveUserMembership(ctx, u.ID, base)
	require.NoError(t, err)
	require.Equal(t, second.ID, active.ID)
	_, err = ums.GetUserMembershipByID(ctx, third.ID)
	require.NoError(t, err)

	require.NoError(t, ums.DeleteUserMembership(ctx, third.ID))
	_, err = ums.GetUserMembershipByID(ctx, third.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, ums.DeleteUserMembership(ctx, third.ID), store.ErrNotFound)
	require.ErrorIs(t, ums.UpdateUserMembership(ctx, third), store.ErrNotFound)
}

func testTransactions(t *testing.T, s store.Store) {
	ctx := context.Background()
	errBoom := errors.New("boom")

	rolledBack := User()
	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Users().CreateUser(ctx, rolledBack))
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	_, err = s.Users().GetUserByID(ctx, rolledBack.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	committed := User()
	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, committed); err != nil {
			return err
		}
		return tx.Users().UpdateUserRoles(ctx, committed.ID, authz.Roles{authz.RoleMember})
	}))
	got, err := s.Users().GetUserByID(ctx, committed.ID)
	require.NoError(t, err)
	require.Equal(t, authz.Roles{authz.RoleMember}, got.Roles)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		require.Error(t, tx.WithTx(ctx, func(store.Tx) error { return nil }), "nested transactions are refused")
		return nil
	}))
}

func ids(items []domain.UserMembership) []idx.ID {
	out := make([]idx.ID, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
