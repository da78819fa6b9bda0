package authz

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Permission is a resource:action capability, or the wildcard PermissionAll.
type Permission string

const (
	// PermissionAll grants every permission, including ones added later.
	PermissionAll Permission = "admin:*"

	PermissionMembershipRead   Permission = "membership:read"
	PermissionMembershipWrite  Permission = "membership:write"
	PermissionMembershipDelete Permission = "membership:delete"

	PermissionUserRead        Permission = "user:read"
	PermissionUserWrite       Permission = "user:write"
	PermissionUserDelete      Permission = "user:delete"
	PermissionUserUpdateRoles Permission = "user:update:roles"

	PermissionUserMembershipRead     Permission = "user-membership:read"
	PermissionUserMembershipWrite    Permission = "user-membership:write"
	PermissionUserMembershipValidate Permission = "user-membership:validate"
	PermissionUserMembershipDelete   Permission = "user-membership:delete"
)

var ErrUnknownPermission = errors.New("authz: unknown permission")

var permissionCatalog = []Permission{
	PermissionMembershipRead,
	PermissionMembershipWrite,
	PermissionMembershipDelete,
	PermissionUserRead,
	PermissionUserWrite,
	PermissionUserDelete,
	PermissionUserUpdateRoles,
	PermissionUserMembershipRead,
	PermissionUserMembershipWrite,
	PermissionUserMembershipValidate,
	PermissionUserMembershipDelete,
}

// AllPermissions returns every concrete permission. The wildcard is not part
// of the list.
func AllPermissions() []Permission {
	return slices.Clone(permissionCatalog)
}

// IsWildcard reports whether p is PermissionAll.
func (p Permission) IsWildcard() bool { return p == PermissionAll }

// Valid reports whether p is a catalog permission or the wildcard.
func (p Permission) Valid() bool {
	return p.IsWildcard() || slices.Contains(permissionCatalog, p)
}

func (p Permission) String() string { return string(p) }

// ParsePermission converts a raw permission string into a Permission.
func ParsePermission(s string) (Permission, error) {
	p := Permission(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPermission, s)
	}
	return p, nil
}

// PermissionSet is an unordered set of permissions.
type PermissionSet map[Permission]struct{}

func NewPermissionSet(perms ...Permission) PermissionSet {
	s := make(PermissionSet, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

func (s PermissionSet) Clone() PermissionSet {
	out := make(PermissionSet, len(s))
	for p := range s {
		out[p] = struct{}{}
	}
	return out
}

// Sorted returns the permissions in lexical order, for stable output.
func (s PermissionSet) Sorted() []Permission {
	out := make([]Permission, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// JoinPermissions renders a permission list as "a, b, c".
func JoinPermissions(perms []Permission) string {
	parts := make([]string, len(perms))
	for i, p := range perms {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}
