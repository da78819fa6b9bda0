package service

import (
	"testing"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestUserServiceCreate(t *testing.T) {
	ctx := testContext()
	svc := &UserService{Store: newTestStore(t)}

	u, err := svc.CreateUser(ctx, UserInput{Email: "  Alice@Example.COM ", Firstname: "Alice", Lastname: "Durand"})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", u.Email)
	require.Equal(t, authz.Roles{authz.RoleUser}, u.Roles)
	require.False(t, u.CreatedAt.IsZero())

	_, err = svc.CreateUser(ctx, UserInput{Email: "ALICE@example.com", Firstname: "A", Lastname: "D"})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.GetUser(ctx, idx.New())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServicePatchAndReplace(t *testing.T) {
	ctx := testContext()
	svc := &UserService{Store: newTestStore(t)}

	u := seedUser(t, svc, "bob@example.com")
	seedUser(t, svc, "carol@example.com")

	phone := "0601020304"
	patched, err := svc.PatchUser(ctx, u.ID, UserPatch{Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, phone, patched.Phone)
	require.Equal(t, "Lou", patched.Firstname)

	taken := "carol@example.com"
	_, err = svc.PatchUser(ctx, u.ID, UserPatch{Email: &taken})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.PatchUser(ctx, idx.New(), UserPatch{Phone: &phone})
	require.ErrorIs(t, err, ErrUserNotFound)

	replaced, created, err := svc.ReplaceUser(ctx, u.ID, UserInput{Email: "bob@example.com", Firstname: "Robert", Lastname: "Petit"})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, "Robert", replaced.Firstname)
	require.Empty(t, replaced.Phone, "replace clears omitted fields")

	newID := idx.New()
	fresh, created, err := svc.ReplaceUser(ctx, newID, UserInput{Email: "dan@example.com", Firstname: "Dan", Lastname: "Roux"})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, newID, fresh.ID)
	require.Equal(t, authz.Roles{authz.RoleUser}, fresh.Roles)
}

func TestUserServiceDelete(t *testing.T) {
	ctx := testContext()
	svc := &UserService{Store: newTestStore(t)}

	u := seedUser(t, svc, "erin@example.com")
	require.NoError(t, svc.DeleteUser(ctx, u.ID))
	require.ErrorIs(t, svc.DeleteUser(ctx, u.ID), ErrUserNotFound)

	_, err := svc.GetUser(ctx, u.ID)
	require.ErrorIs(t, err, ErrUserNotFound)

	users, err := svc.ListUsers(ctx, store.Page{})
	require.NoError(t, err)
	require.Empty(t, users)

	// The id of a deleted user stays reserved.
	_, _, err = svc.ReplaceUser(ctx, u.ID, UserInput{Email: "other@example.com", Firstname: "O", Lastname: "T"})
	require.ErrorIs(t, err, ErrUserIDTaken)

	// Its email does not.
	_, err = svc.CreateUser(ctx, UserInput{Email: "erin@example.com", Firstname: "Erin", Lastname: "Blanc"})
	require.NoError(t, err)
}

func TestUserServiceUpdateRoles(t *testing.T) {
	ctx := testContext()
	svc := &UserService{Store: newTestStore(t)}

	board := &authz.Principal{Subject: "board", Roles: authz.Roles{authz.RoleBoard}}
	admin := &authz.Principal{Subject: "admin", Roles: authz.Roles{authz.RoleAdmin}}

	u := seedUser(t, svc, "fred@example.com")

	t.Run("sets roles", func(t *testing.T) {
		got, err := svc.UpdateUserRoles(ctx, board, u.ID, []string{"barista", "member", "barista"})
		require.NoError(t, err)
		require.Equal(t, authz.Roles{authz.RoleBarista, authz.RoleMember}, got.Roles)
	})

	t.Run("empty set falls back to user", func(t *testing.T) {
		got, err := svc.UpdateUserRoles(ctx, board, u.ID, nil)
		require.NoError(t, err)
		require.Equal(t, authz.Roles{authz.RoleUser}, got.Roles)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.UpdateUserRoles(ctx, board, u.ID, []string{"president"})
		require.ErrorIs(t, err, ErrInvalidRoles)
		require.ErrorIs(t, err, authz.ErrUnknownRole)
	})

	t.Run("only admins grant admin", func(t *testing.T) {
		_, err := svc.UpdateUserRoles(ctx, board, u.ID, []string{"admin"})
		require.ErrorIs(t, err, ErrAdminGrantForbidden)

		_, err = svc.UpdateUserRoles(ctx, nil, u.ID, []string{"admin"})
		require.ErrorIs(t, err, ErrAdminGrantForbidden)

		got, err := svc.UpdateUserRoles(ctx, admin, u.ID, []string{"admin"})
		require.NoError(t, err)
		require.Equal(t, authz.Roles{authz.RoleAdmin}, got.Roles)
	})

	t.Run("only admins revoke admin", func(t *testing.T) {
		_, err := svc.UpdateUserRoles(ctx, board, u.ID, []string{"member"})
		require.ErrorIs(t, err, ErrAdminGrantForbidden)

		// Keeping admin while changing other roles is fine for a board member.
		got, err := svc.UpdateUserRoles(ctx, board, u.ID, []string{"admin", "barista"})
		require.NoError(t, err)
		require.Equal(t, authz.Roles{authz.RoleAdmin, authz.RoleBarista}, got.Roles)

		got, err = svc.UpdateUserRoles(ctx, admin, u.ID, []string{"member"})
		require.NoError(t, err)
		require.Equal(t, authz.Roles{authz.RoleMember}, got.Roles)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := svc.UpdateUserRoles(ctx, admin, idx.New(), []string{"member"})
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
