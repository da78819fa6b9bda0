package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/internal/membership/store/drivers/sqlite"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
)

type fixture struct {
	users       *UserService
	memberships *MembershipService
	assoc       *UserMembershipService
}

func newFixture(t *testing.T) fixture {
	s := newTestStore(t)
	return fixture{
		users:       &UserService{Store: s},
		memberships: &MembershipService{Store: s},
		assoc:       &UserMembershipService{Store: s},
	}
}

func (f fixture) roles(t *testing.T, id idx.ID) authz.Roles {
	t.Helper()
	u, err := f.users.GetUser(testContext(), id)
	require.NoError(t, err)
	return u.Roles
}

func TestCreateUserMembershipGrantsBaseline(t *testing.T) {
	ctx := testContext()
	f := newFixture(t)

	u := seedUser(t, f.users, "gina@example.com")
	plan := seedPlan(t, f.memberships, "current")

	um, err := f.assoc.CreateUserMembership(ctx, AssociationInput{
		UserID:                u.ID,
		MembershipID:          plan.ID,
		HasShiftsSubscription: true,
	})
	require.NoError(t, err)
	require.False(t, um.IsPaid)
	require.True(t, um.HasShiftsSubscription)
	require.NotNil(t, um.Membership)
	require.Equal(t, plan.Name, um.Membership.Name)

	require.Equal(t, authz.Roles{authz.RoleUser, authz.RoleMember}, f.roles(t, u.ID))

	_, err = f.assoc.CreateUserMembership(ctx, AssociationInput{UserID: u.ID, MembershipID: plan.ID})
	require.ErrorIs(t, err, ErrAlreadyAssociated)
	require.Equal(t, authz.Roles{authz.RoleUser, authz.RoleMember}, f.roles(t, u.ID))
}

func TestCreatePaidUserMembershipPromotes(t *testing.T) {
	ctx := testContext()
	f := newFixture(t)

	u := seedUser(t, f.users, "hugo@example.com")
	_, err := f.users.UpdateUserRoles(ctx, nil, u.ID, []string{"user", "barista"})
	require.NoError(t, err)
	plan := seedPlan(t, f.memberships, "current")

	_, err = f.assoc.CreateUserMembership(ctx, AssociationInput{UserID: u.ID, MembershipID: plan.ID, IsPaid: true})
	require.NoError(t, err)
	require.Equal(t, authz.Roles{authz.RoleBarista, authz.RoleActiveMember}, f.roles(t, u.ID))
}

func TestCreateUserMembershipLookups(t *testing.T) {
	ctx := testContext()
	f := newFixture(t)

	u := seedUser(t, f.users, "ines@example.com")
	plan := seedPlan(t, f.memberships, "current")

	_, err := f.assoc.CreateUserMembership(ctx, AssociationInput{UserID: idx.New(), MembershipID: plan.ID})
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = f.assoc.CreateUserMembership(ctx, AssociationInput{UserID: u.ID, MembershipID: idx.New()})
	require.ErrorIs(t, err, ErrMembershipNotFound)

	require.NoError(t, f.memberships.DeleteMembership(ctx, plan.ID))
	_, err = f.assoc.CreateUserMembership(ctx, AssociationInput{UserID: u.ID, MembershipID: plan.ID})
	require.ErrorIs(t, err, ErrMembershipNotFound)

	require.Equal(t, authz.Roles{authz.RoleUser}, f.roles(t, u.ID), "failed creations leave roles alone")
}

func TestValidateUserMembership(t *testing.T) {
	ctx := testContext()
	f := newFixture(t)

	u := seedUser(t, f.users, "jade@example.com")
	plan := seedPlan(t, f.memberships, "current")

	um, err := f.assoc.CreateUserMembership(ctx, AssociationInput{UserID: u.ID, MembershipID: plan.ID})
	require.NoError(t, err)
	require.Equal(t, authz.Roles{authz.RoleUser, authz.RoleMember}, f.roles(t, u.ID))

	validated, err := f.assoc.ValidateUserMembership(ctx, um.ID)
	require.NoError(t, err)
	require.True(t, validated.IsPaid)
	require.Equal(t, authz.Roles{authz.RoleActiveMember}, f.roles(t, u.ID))

	again, err := f.assoc.ValidateUserMembership(ctx, um.ID)
	require.NoError(t, err)
	require.True(t, again.IsPaid)
	require.Equal(t, authz.Roles{authz.RoleActiveMember}, f.roles(t, u.ID))

	_, err = f.assoc.ValidateUserMembership(ctx, idx.New())
	require.ErrorIs(t, err, ErrAssociationNotFound)
}

func TestPatchUserMembership(t *testing.T) {
	ctx := testContext()
	f := newFixture(t)

	u := seedUser(t, f.users, "karim@example.com")
	plan := seedPlan(t, f.memberships, "current")
	um, err := f.assoc.CreateUserMembership(ctx, AssociationInput{UserID: u.ID, MembershipID: plan.ID})
	require.NoError(t, err)

	yes, no := true, false

	got, err := f.assoc.PatchUserMembership(ctx, um.ID, AssociationPatch{HasNewsletterSubscription: &yes})
	require.NoError(t, err)
	require.True(t, got.HasNewsletterSubscription)
	require.False(t, got.IsPaid)
	require.Equal(t, authz.Roles{authz.RoleUser, authz.RoleMember}, f.roles(t, u.ID))

	_, err = f.assoc.PatchUserMembership(ctx, um.ID, AssociationPatch{IsPaid: &yes})
	require.NoError(t, err)
	require.Equal(t, authz.Roles{authz.RoleActiveMember}, f.roles(t, u.ID))

	// Marking unpaid again does not demote.
	got, err = f.assoc.PatchUserMembership(ctx, um.ID, AssociationPatch{IsPaid: &no})
	require.NoError(t, err)
	require.False(t, got.IsPaid)
	require.Equal(t, authz.Roles{authz.RoleActiveMember}, f.roles(t, u.ID))
}

func TestReplaceUserMembership(t *testing.T) {
	ctx := testContext()
	f := newFixture(t)

	u := seedUser(t, f.users, "lea@example.com")
	other := seedUser(t, f.users, "marc@example.com")
	plan := seedPlan(t, f.memberships, "current")

	id := idx.New()
	um, created, err := f.assoc.ReplaceUserMembership(ctx, id, AssociationInput{UserID: u.ID, MembershipID: plan.ID})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, id, um.ID)
	require.Equal(t, authz.Roles{authz.RoleUser, authz.RoleMember}, f.roles(t, u.ID))

	um, created, err = f.assoc.ReplaceUserMembership(ctx, id, AssociationInput{
		UserID:       u.ID,
		MembershipID: plan.ID,
		IsPaid:       true,
	})
	require.NoError(t, err)
	require.False(t, created)
	require.True(t, um.IsPaid)
	require.Equal(t, authz.Roles{authz.RoleActiveMember}, f.roles(t, u.ID))

	_, _, err = f.assoc.ReplaceUserMembership(ctx, id, AssociationInput{UserID: other.ID, MembershipID: plan.ID})
	require.ErrorIs(t, err, ErrAssociationConflict, "an association cannot move to another user")

	_, _, err = f.assoc.ReplaceUserMembership(ctx, idx.New(), AssociationInput{UserID: u.ID, MembershipID: plan.ID})
	require.ErrorIs(t, err, ErrAssociationConflict, "the pair is already held under another id")
}

func TestUserMembershipQueries(t *testing.T) {
	ctx := testContext()
	f := newFixture(t)

	u := seedUser(t, f.users, "nina@example.com")
	current := seedPlan(t, f.memberships, "current")

	lastYear := time.Now().UTC().AddDate(-1, 0, 0).Truncate(time.Second)
	expired, err := f.memberships.CreateMembership(ctx, MembershipInput{
		Name:    "expired",
		StartAt: lastYear.AddDate(0, -1, 0),
		EndAt:   lastYear,
	})
	require.NoError(t, err)

	_, err = f.assoc.GetActiveForUser(ctx, u.ID)
	require.ErrorIs(t, err, ErrNoActiveMembership)

	old, err := f.assoc.CreateUserMembership(ctx, AssociationInput{UserID: u.ID, MembershipID: expired.ID})
	require.NoError(t, err)
	_, err = f.assoc.GetActiveForUser(ctx, u.ID)
	require.ErrorIs(t, err, ErrNoActiveMembership)

	live, err := f.assoc.CreateUserMembership(ctx, AssociationInput{UserID: u.ID, MembershipID: current.ID})
	require.NoError(t, err)

	active, err := f.assoc.GetActiveForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, live.ID, active.ID)

	pair, err := f.assoc.GetUserMembershipByPair(ctx, u.ID, expired.ID)
	require.NoError(t, err)
	require.Equal(t, old.ID, pair.ID)

	_, err = f.assoc.GetUserMembershipByPair(ctx, idx.New(), expired.ID)
	require.ErrorIs(t, err, ErrAssociationNotFound)

	mine, err := f.assoc.ListForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, live.ID, mine[0].ID)

	all, err := f.assoc.ListUserMemberships(ctx, store.Page{Limit: 1})
	require.NoError(t, err)
	require.Len(t, all, 1)

	_, err = f.assoc.ListForUser(ctx, idx.New())
	require.ErrorIs(t, err, ErrUserNotFound)
	_, err = f.assoc.GetActiveForUser(ctx, idx.New())
	require.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, f.assoc.DeleteUserMembership(ctx, live.ID))
	require.ErrorIs(t, f.assoc.DeleteUserMembership(ctx, live.ID), ErrAssociationNotFound)
	require.Equal(t, authz.Roles{authz.RoleUser, authz.RoleMember}, f.roles(t, u.ID), "deleting does not revoke roles")
}

func TestConcurrentPaidSubscriptionsOnFileStore(t *testing.T) {
	ctx := testContext()

	s, err := sqlite.NewStore(sqlite.DSN(t.TempDir() + "/membership.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	f := fixture{
		users:       &UserService{Store: s},
		memberships: &MembershipService{Store: s},
		assoc:       &UserMembershipService{Store: s},
	}
	plan := seedPlan(t, f.memberships, "current")

	const subscribers = 40
	ids := make([]idx.ID, subscribers)
	for i := range ids {
		ids[i] = seedUser(t, f.users, fmt.Sprintf("member%02d@example.com", i)).ID
	}

	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			_, err := f.assoc.CreateUserMembership(ctx, AssociationInput{UserID: id, MembershipID: plan.ID, IsPaid: true})
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, id := range ids {
		require.Equal(t, authz.Roles{authz.RoleActiveMember}, f.roles(t, id))
	}
}
