package http

import "github.com/aussiebroadwan/barcommun/internal/membership/authz"

// Operations guarded by the access guard. Every route under /v1 names one.
const (
	OpListRoles authz.Operation = "roles.list"
	OpWhoAmI    authz.Operation = "me.get"

	OpListUsers       authz.Operation = "users.list"
	OpCreateUser      authz.Operation = "users.create"
	OpGetUser         authz.Operation = "users.get"
	OpPatchUser       authz.Operation = "users.patch"
	OpReplaceUser     authz.Operation = "users.replace"
	OpDeleteUser      authz.Operation = "users.delete"
	OpUpdateUserRoles authz.Operation = "users.roles.update"

	OpListMembershipsOfUser     authz.Operation = "users.memberships.list"
	OpGetActiveMembershipOfUser authz.Operation = "users.memberships.active"
	OpGetUserMembershipByPair   authz.Operation = "users.memberships.get"

	OpListMemberships   authz.Operation = "memberships.list"
	OpCreateMembership  authz.Operation = "memberships.create"
	OpGetMembership     authz.Operation = "memberships.get"
	OpPatchMembership   authz.Operation = "memberships.patch"
	OpReplaceMembership authz.Operation = "memberships.replace"
	OpDeleteMembership  authz.Operation = "memberships.delete"

	OpListUserMemberships    authz.Operation = "user_memberships.list"
	OpCreateUserMembership   authz.Operation = "user_memberships.create"
	OpGetUserMembership      authz.Operation = "user_memberships.get"
	OpPatchUserMembership    authz.Operation = "user_memberships.patch"
	OpReplaceUserMembership  authz.Operation = "user_memberships.replace"
	OpValidateUserMembership authz.Operation = "user_memberships.validate"
	OpDeleteUserMembership   authz.Operation = "user_memberships.delete"
)

// Policy is the permission table of the API. An empty list makes an
// operation public.
var Policy = authz.Policy{
	OpListRoles: {},
	OpWhoAmI:    {},

	OpListUsers:       {authz.PermissionUserRead},
	OpCreateUser:      {authz.PermissionUserWrite},
	OpGetUser:         {authz.PermissionUserRead},
	OpPatchUser:       {authz.PermissionUserWrite},
	OpReplaceUser:     {authz.PermissionUserWrite},
	OpDeleteUser:      {authz.PermissionUserDelete},
	OpUpdateUserRoles: {authz.PermissionUserUpdateRoles},

	OpListMembershipsOfUser:     {authz.PermissionUserRead, authz.PermissionUserMembershipRead},
	OpGetActiveMembershipOfUser: {authz.PermissionUserRead, authz.PermissionUserMembershipRead},
	OpGetUserMembershipByPair:   {authz.PermissionUserRead, authz.PermissionUserMembershipRead},

	OpListMemberships:   {authz.PermissionMembershipRead},
	OpCreateMembership:  {authz.PermissionMembershipWrite},
	OpGetMembership:     {authz.PermissionMembershipRead},
	OpPatchMembership:   {authz.PermissionMembershipWrite},
	OpReplaceMembership: {authz.PermissionMembershipWrite},
	OpDeleteMembership:  {authz.PermissionMembershipDelete},

	OpListUserMemberships:    {authz.PermissionUserMembershipRead},
	OpCreateUserMembership:   {authz.PermissionUserMembershipWrite},
	OpGetUserMembership:      {authz.PermissionUserMembershipRead},
	OpPatchUserMembership:    {authz.PermissionUserMembershipWrite},
	OpReplaceUserMembership:  {authz.PermissionUserMembershipWrite},
	OpValidateUserMembership: {authz.PermissionUserMembershipValidate},
	OpDeleteUserMembership:   {authz.PermissionUserMembershipDelete},
}
