package sqlbase

import (
	"context"
	"time"

	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/internal/membership/store/drivers/query"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
)

type userMembershipsRepo struct{ base }

func (r *userMembershipsRepo) CreateUserMembership(ctx context.Context, um domain.UserMembership) error {
	created := orNow(um.CreatedAt, r.now)
	err := r.q.CreateUserMembership(ctx, query.CreateUserMembershipParams{
		ID:                        um.ID.String(),
		UserID:                    um.UserID.String(),
		MembershipID:              um.MembershipID.String(),
		IsPaid:                    um.IsPaid,
		HasNewsletterSubscription: um.HasNewsletterSubscription,
		HasShiftsSubscription:     um.HasShiftsSubscription,
		CreatedAt:                 created,
		UpdatedAt:                 orNow(um.UpdatedAt, func() time.Time { return created }),
	})
	return r.mapWriteErr(err)
}

func (r *userMembershipsRepo) GetUserMembershipByID(ctx context.Context, id idx.ID) (domain.UserMembership, error) {
	row, err := r.q.GetUserMembershipByID(ctx, id.String())
	if err != nil {
		return domain.UserMembership{}, mapNotFound(err)
	}
	return mapUserMembership(row), nil
}

func (r *userMembershipsRepo) GetUserMembershipByPair(
	ctx context.Context,
	userID, membershipID idx.ID,
) (domain.UserMembership, error) {
	row, err := r.q.GetUserMembershipByPair(ctx, userID.String(), membershipID.String())
	if err != nil {
		return domain.UserMembership{}, mapNotFound(err)
	}
	return mapUserMembership(row), nil
}

func (r *userMembershipsRepo) ListUserMemberships(ctx context.Context, page store.Page) ([]domain.UserMembership, error) {
	rows, err := r.q.ListUserMemberships(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return mapUserMemberships(rows), nil
}

func (r *userMembershipsRepo) ListUserMembershipsByUser(ctx context.Context, userID idx.ID) ([]domain.UserMembership, error) {
	rows, err := r.q.ListUserMembershipsByUser(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	return mapUserMemberships(rows), nil
}

func (r *userMembershipsRepo) GetActiveUserMembership(
	ctx context.Context,
	userID idx.ID,
	at time.Time,
) (domain.UserMembership, error) {
	row, err := r.q.GetActiveUserMembership(ctx, userID.String(), at.UTC())
	if err != nil {
		return domain.UserMembership{}, mapNotFound(err)
	}
	return mapUserMembership(row), nil
}

func (r *userMembershipsRepo) UpdateUserMembership(ctx context.Context, um domain.UserMembership) error {
	return mustAffect(r.q.UpdateUserMembership(ctx, query.UpdateUserMembershipParams{
		ID:                        um.ID.String(),
		IsPaid:                    um.IsPaid,
		HasNewsletterSubscription: um.HasNewsletterSubscription,
		HasShiftsSubscription:     um.HasShiftsSubscription,
		UpdatedAt:                 r.now(),
	}))
}

func (r *userMembershipsRepo) DeleteUserMembership(ctx context.Context, id idx.ID) error {
	return mustAffect(r.q.DeleteUserMembership(ctx, id.String()))
}

func mapUserMemberships(rows []query.UserMembershipRow) []domain.UserMembership {
	out := make([]domain.UserMembership, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapUserMembership(row))
	}
	return out
}
