package sqlbase

import (
	"context"
	"time"

	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/internal/membership/store/drivers/query"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
)

type membershipsRepo struct{ base }

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	created := orNow(m.CreatedAt, r.now)
	err := r.q.CreateMembership(ctx, query.CreateMembershipParams{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		StartAt:     m.StartAt.UTC(),
		EndAt:       m.EndAt.UTC(),
		CreatedAt:   created,
		UpdatedAt:   orNow(m.UpdatedAt, func() time.Time { return created }),
	})
	return r.mapWriteErr(err)
}

func (r *membershipsRepo) GetMembershipByID(ctx context.Context, id idx.ID) (domain.Membership, error) {
	row, err := r.q.GetMembershipByID(ctx, id.String())
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return mapMembership(row), nil
}

func (r *membershipsRepo) ListMemberships(ctx context.Context, page store.Page) ([]domain.Membership, error) {
	rows, err := r.q.ListMemberships(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Membership, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMembership(row))
	}
	return out, nil
}

func (r *membershipsRepo) UpdateMembership(ctx context.Context, m domain.Membership) error {
	n, err := r.q.UpdateMembership(ctx, query.UpdateMembershipParams{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		StartAt:     m.StartAt.UTC(),
		EndAt:       m.EndAt.UTC(),
		UpdatedAt:   r.now(),
	})
	return mustAffect(n, r.mapWriteErr(err))
}

func (r *membershipsRepo) SoftDeleteMembership(ctx context.Context, id idx.ID, at time.Time) error {
	return mustAffect(r.q.SoftDeleteMembership(ctx, id.String(), at.UTC()))
}
