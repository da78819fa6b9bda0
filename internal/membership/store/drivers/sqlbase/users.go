package sqlbase

import (
	"context"
	"time"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/internal/membership/store/drivers/query"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
)

type usersRepo struct{ base }

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	created := orNow(u.CreatedAt, r.now)
	err := r.q.CreateUser(ctx, query.CreateUserParams{
		ID:        u.ID.String(),
		Email:     u.Email,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Phone:     u.Phone,
		Roles:     joinRoles(u.Roles),
		CreatedAt: created,
		UpdatedAt: orNow(u.UpdatedAt, func() time.Time { return created }),
	})
	return r.mapWriteErr(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id idx.ID) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id.String())
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) ListUsers(ctx context.Context, page store.Page) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapUser(row))
	}
	return out, nil
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	n, err := r.q.UpdateUser(ctx, query.UpdateUserParams{
		ID:        u.ID.String(),
		Email:     u.Email,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Phone:     u.Phone,
		UpdatedAt: r.now(),
	})
	return mustAffect(n, r.mapWriteErr(err))
}

func (r *usersRepo) UpdateUserRoles(ctx context.Context, id idx.ID, roles authz.Roles) error {
	return mustAffect(r.q.UpdateUserRoles(ctx, id.String(), joinRoles(roles), r.now()))
}

func (r *usersRepo) SoftDeleteUser(ctx context.Context, id idx.ID, at time.Time) error {
	return mustAffect(r.q.SoftDeleteUser(ctx, id.String(), at.UTC()))
}
