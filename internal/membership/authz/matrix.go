package authz

// matrix is the authority table. Every catalog role must have an entry, even
// an empty one; MatrixGaps reports the ones that do not.
var matrix = map[Role]PermissionSet{
	RoleAdmin: NewPermissionSet(PermissionAll),
	RoleCommitee: NewPermissionSet(
		PermissionUserRead,
		PermissionUserWrite,
		PermissionMembershipRead,
		PermissionMembershipWrite,
		PermissionUserMembershipRead,
		PermissionUserMembershipWrite,
	),
	RoleBoard: NewPermissionSet(
		PermissionUserRead,
		PermissionUserWrite,
		PermissionUserUpdateRoles,
		PermissionMembershipRead,
		PermissionMembershipWrite,
		PermissionUserMembershipRead,
		PermissionUserMembershipWrite,
		PermissionUserMembershipValidate,
	),
	// Services board may change roles so it can appoint referents and baristas.
	RoleServicesBoard: NewPermissionSet(
		PermissionUserRead,
		PermissionUserWrite,
		PermissionUserUpdateRoles,
		PermissionUserMembershipRead,
	),
	RoleReferant: NewPermissionSet(
		PermissionUserRead,
		PermissionUserMembershipRead,
		PermissionUserMembershipValidate,
	),
	RoleBarista: NewPermissionSet(
		PermissionUserRead,
		PermissionUserMembershipRead,
	),
	RoleActiveMember: NewPermissionSet(
		PermissionUserRead,
		PermissionMembershipRead,
		PermissionUserMembershipRead,
	),
	RoleMember: NewPermissionSet(PermissionUserRead),
	RoleUser:   NewPermissionSet(),
	RoleGuest:  NewPermissionSet(),
}

// PermissionsOf returns a copy of the permissions granted to role. Roles
// without an entry get the empty set.
func PermissionsOf(role Role) PermissionSet {
	return permissionsOf(role).Clone()
}

// permissionsOf is the allocation-free lookup used by the evaluator. Callers
// must not mutate the result.
func permissionsOf(role Role) PermissionSet {
	if set, ok := matrix[role]; ok {
		return set
	}
	return PermissionSet{}
}

// MatrixGaps returns catalog roles that have no matrix entry.
func MatrixGaps() []Role {
	var gaps []Role
	for _, r := range AllRoles() {
		if _, ok := matrix[r]; !ok {
			gaps = append(gaps, r)
		}
	}
	return gaps
}
