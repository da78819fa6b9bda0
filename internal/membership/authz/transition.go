package authz

import "slices"

// GrantBaselineMembership adds MEMBER to roles when it is missing. The input
// is never modified.
func GrantBaselineMembership(roles Roles) Roles {
	out := slices.Clone(roles)
	if !out.Has(RoleMember) {
		out = append(out, RoleMember)
	}
	return out
}

// lowerTiers are replaced by ACTIVE_MEMBER on promotion.
var lowerTiers = Roles{RoleUser, RoleGuest, RoleMember}

// PromoteToActiveOnPaidMembership drops the USER, GUEST and MEMBER tiers and
// adds ACTIVE_MEMBER. Every other role passes through untouched, so elevated
// roles are never revoked. The input is never modified.
func PromoteToActiveOnPaidMembership(roles Roles) Roles {
	out := make(Roles, 0, len(roles)+1)
	for _, r := range roles {
		if lowerTiers.Has(r) {
			continue
		}
		out = append(out, r)
	}
	if !out.Has(RoleActiveMember) {
		out = append(out, RoleActiveMember)
	}
	return out
}
