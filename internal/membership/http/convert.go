package http

import (
	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	"github.com/aussiebroadwan/barcommun/pkg/membersdk"
)

func toUserResponse(u domain.User) membersdk.UserResponse {
	return membersdk.UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Phone:     u.Phone,
		Roles:     u.Roles.Strings(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toMembershipResponse(m domain.Membership) membersdk.MembershipResponse {
	return membersdk.MembershipResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		StartAt:     m.StartAt,
		EndAt:       m.EndAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toUserMembershipResponse(um domain.UserMembership) membersdk.UserMembershipResponse {
	out := membersdk.UserMembershipResponse{
		ID:                        um.ID.String(),
		UserID:                    um.UserID.String(),
		MembershipID:              um.MembershipID.String(),
		IsPaid:                    um.IsPaid,
		HasNewsletterSubscription: um.HasNewsletterSubscription,
		HasShiftsSubscription:     um.HasShiftsSubscription,
		CreatedAt:                 um.CreatedAt,
		UpdatedAt:                 um.UpdatedAt,
	}
	if um.Membership != nil {
		m := toMembershipResponse(*um.Membership)
		out.Membership = &m
	}
	return out
}

func toUserMembershipResponses(items []domain.UserMembership) []membersdk.UserMembershipResponse {
	out := make([]membersdk.UserMembershipResponse, 0, len(items))
	for _, um := range items {
		out = append(out, toUserMembershipResponse(um))
	}
	return out
}

func permissionStrings(perms []authz.Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = p.String()
	}
	return out
}
