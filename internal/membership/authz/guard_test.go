package authz_test

import (
	"testing"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	read := []authz.Permission{authz.PermissionMembershipRead}

	t.Run("public operations allow anyone", func(t *testing.T) {
		require.True(t, authz.Authorize(nil, nil).Allowed)
		require.True(t, authz.Authorize([]authz.Permission{}, &authz.Principal{}).Allowed)
	})

	t.Run("missing principal is denied", func(t *testing.T) {
		d := authz.Authorize(read, nil)
		require.False(t, d.Allowed)
		require.Equal(t, authz.KindUnauthenticated, d.Kind)
		require.Equal(t, "not authenticated", d.Reason)
	})

	t.Run("principal without roles is denied", func(t *testing.T) {
		d := authz.Authorize(read, &authz.Principal{Subject: "01J"})
		require.False(t, d.Allowed)
		require.Equal(t, authz.KindUnauthenticated, d.Kind)
	})

	t.Run("board scenario", func(t *testing.T) {
		board := &authz.Principal{Subject: "01J", Roles: authz.Roles{authz.RoleBoard}}

		d := authz.Authorize([]authz.Permission{authz.PermissionMembershipDelete}, board)
		require.False(t, d.Allowed)
		require.Equal(t, authz.KindInsufficientPermission, d.Kind)
		require.Equal(t, []authz.Permission{authz.PermissionMembershipDelete}, d.Missing)
		require.Equal(t, "insufficient permissions: missing membership:delete", d.Reason)

		d = authz.Authorize(read, board)
		require.True(t, d.Allowed)
		require.Equal(t, authz.KindAllowed, d.Kind)
	})

	t.Run("never partially authorizes", func(t *testing.T) {
		barista := &authz.Principal{Roles: authz.Roles{authz.RoleBarista}}
		d := authz.Authorize([]authz.Permission{authz.PermissionUserRead, authz.PermissionUserWrite}, barista)
		require.False(t, d.Allowed)
		require.Equal(t, []authz.Permission{authz.PermissionUserWrite}, d.Missing)
	})
}

func TestGuard(t *testing.T) {
	t.Parallel()

	const (
		opListPlans  authz.Operation = "memberships.list"
		opDeletePlan authz.Operation = "memberships.delete"
		opCatalog    authz.Operation = "roles.list"
	)

	policy := authz.Policy{
		opListPlans:  {authz.PermissionMembershipRead},
		opDeletePlan: {authz.PermissionMembershipDelete},
		opCatalog:    {},
	}
	guard, err := authz.NewGuard(policy)
	require.NoError(t, err)

	t.Run("policy is copied at construction", func(t *testing.T) {
		policy[opCatalog] = []authz.Permission{authz.PermissionAll}
		perms, err := guard.Requirements(opCatalog)
		require.NoError(t, err)
		require.Empty(t, perms)
	})

	t.Run("checks declared operations", func(t *testing.T) {
		member := &authz.Principal{Roles: authz.Roles{authz.RoleActiveMember}}

		d, err := guard.Check(opListPlans, member)
		require.NoError(t, err)
		require.True(t, d.Allowed)

		d, err = guard.Check(opDeletePlan, member)
		require.NoError(t, err)
		require.False(t, d.Allowed)

		d, err = guard.Check(opCatalog, nil)
		require.NoError(t, err)
		require.True(t, d.Allowed)
	})

	t.Run("undeclared operations fail closed", func(t *testing.T) {
		admin := &authz.Principal{Roles: authz.Roles{authz.RoleAdmin}}
		d, err := guard.Check("memberships.archive", admin)
		require.ErrorIs(t, err, authz.ErrUnknownOperation)
		require.False(t, d.Allowed)

		_, err = guard.Requirements("memberships.archive")
		require.ErrorIs(t, err, authz.ErrUnknownOperation)
	})

	t.Run("rejects unknown permissions", func(t *testing.T) {
		_, err := authz.NewGuard(authz.Policy{"bar.open": {"bar:open"}})
		require.ErrorIs(t, err, authz.ErrUnknownPermission)
	})

	t.Run("lists operations", func(t *testing.T) {
		require.Equal(t, []authz.Operation{opDeletePlan, opListPlans, opCatalog}, guard.Operations())
	})
}
