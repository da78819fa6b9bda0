package authz

// RoleHasPermission reports whether role grants p. The wildcard is checked
// first so a wildcard holder passes for any permission.
func RoleHasPermission(role Role, p Permission) bool {
	granted := permissionsOf(role)
	if granted.Has(PermissionAll) {
		return true
	}
	return granted.Has(p)
}

// AnyRoleHasPermission reports whether at least one of roles grants p.
func AnyRoleHasPermission(roles Roles, p Permission) bool {
	for _, r := range roles {
		if RoleHasPermission(r, p) {
			return true
		}
	}
	return false
}

// AllPermissionsSatisfied reports whether every required permission is granted
// by at least one of roles. An empty requirement is always satisfied.
func AllPermissionsSatisfied(roles Roles, required []Permission) bool {
	for _, p := range required {
		if !AnyRoleHasPermission(roles, p) {
			return false
		}
	}
	return true
}

// MissingPermissions returns the required permissions that none of roles
// grants, in declaration order without duplicates.
func MissingPermissions(roles Roles, required []Permission) []Permission {
	var missing []Permission
	seen := make(map[Permission]struct{}, len(required))
	for _, p := range required {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		if !AnyRoleHasPermission(roles, p) {
			missing = append(missing, p)
		}
	}
	return missing
}

// EffectivePermissions is the union of the permissions of every role.
func EffectivePermissions(roles Roles) PermissionSet {
	out := PermissionSet{}
	for _, r := range roles {
		for p := range permissionsOf(r) {
			out[p] = struct{}{}
		}
	}
	return out
}
