package authz_test

import (
	"testing"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRoleHasPermission(t *testing.T) {
	t.Parallel()

	require.True(t, authz.RoleHasPermission(authz.RoleBarista, authz.PermissionUserRead))
	require.False(t, authz.RoleHasPermission(authz.RoleBarista, authz.PermissionUserWrite))
	require.False(t, authz.RoleHasPermission(authz.RoleUser, authz.PermissionUserRead))
	require.True(t, authz.RoleHasPermission(authz.RoleAdmin, authz.PermissionMembershipDelete))
}

func TestWildcardSupremacy(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		// Includes permissions that do not exist in the catalog yet.
		raw := rapid.StringMatching(`[a-z][a-z-]{0,12}:[a-z:*]{1,12}`).Draw(t, "permission")
		p := authz.Permission(raw)

		for _, r := range authz.AllRoles() {
			if authz.PermissionsOf(r).Has(authz.PermissionAll) {
				require.True(t, authz.RoleHasPermission(r, p), "role %s permission %s", r, p)
			}
		}
	})
}

func TestAnyRoleHasPermission(t *testing.T) {
	t.Parallel()

	t.Run("or across roles", func(t *testing.T) {
		// Only board can validate of the two.
		p := authz.PermissionUserMembershipValidate
		require.True(t, authz.AnyRoleHasPermission(authz.Roles{authz.RoleMember, authz.RoleBoard}, p))
		require.False(t, authz.AnyRoleHasPermission(authz.Roles{authz.RoleMember}, p))
	})

	t.Run("empty roles never grant", func(t *testing.T) {
		for _, p := range authz.AllPermissions() {
			require.False(t, authz.AnyRoleHasPermission(nil, p))
		}
	})
}

func TestAllPermissionsSatisfied(t *testing.T) {
	t.Parallel()

	p1 := authz.PermissionUserRead
	p2 := authz.PermissionMembershipDelete

	t.Run("and across required", func(t *testing.T) {
		roles := authz.Roles{authz.RoleMember}
		require.False(t, authz.AllPermissionsSatisfied(roles, []authz.Permission{p1, p2}))
		require.True(t, authz.AllPermissionsSatisfied(append(roles, authz.RoleAdmin), []authz.Permission{p1, p2}))
	})

	t.Run("empty requirement is vacuously true", func(t *testing.T) {
		require.True(t, authz.AllPermissionsSatisfied(nil, nil))
		require.True(t, authz.AllPermissionsSatisfied(authz.Roles{authz.RoleGuest}, []authz.Permission{}))
	})

	t.Run("satisfied set matches per-permission checks", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			roles := authz.Roles(rapid.SliceOf(rapid.SampledFrom(authz.AllRoles())).Draw(t, "roles"))
			required := rapid.SliceOf(rapid.SampledFrom(authz.AllPermissions())).Draw(t, "required")

			want := true
			for _, p := range required {
				want = want && authz.AnyRoleHasPermission(roles, p)
			}
			require.Equal(t, want, authz.AllPermissionsSatisfied(roles, required))
			require.Equal(t, want, len(authz.MissingPermissions(roles, required)) == 0)
		})
	})
}

func TestEffectivePermissions(t *testing.T) {
	t.Parallel()

	got := authz.EffectivePermissions(authz.Roles{authz.RoleBarista, authz.RoleActiveMember})
	require.Equal(t, []authz.Permission{
		authz.PermissionMembershipRead,
		authz.PermissionUserMembershipRead,
		authz.PermissionUserRead,
	}, got.Sorted())

	require.Empty(t, authz.EffectivePermissions(authz.Roles{authz.RoleGuest, authz.RoleUser}))
}

func TestMissingPermissions(t *testing.T) {
	t.Parallel()

	missing := authz.MissingPermissions(authz.Roles{authz.RoleReferant}, []authz.Permission{
		authz.PermissionUserMembershipDelete,
		authz.PermissionUserRead,
		authz.PermissionUserWrite,
		authz.PermissionUserMembershipDelete,
	})
	require.Equal(t, []authz.Permission{
		authz.PermissionUserMembershipDelete,
		authz.PermissionUserWrite,
	}, missing)
}
