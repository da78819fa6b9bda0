package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/pkg/cachex"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
	"github.com/aussiebroadwan/barcommun/pkg/slogx"
)

var (
	ErrMembershipNotFound      = errors.New("membership not found")
	ErrMembershipIDTaken       = errors.New("membership id belongs to a deleted membership")
	ErrInvalidMembershipWindow = errors.New("membership must start before it ends")
	ErrInvalidPrice            = errors.New("membership price cannot be negative")
)

// MembershipInput carries every writable plan field.
type MembershipInput struct {
	Name        string
	Description string
	Price       int64
	StartAt     time.Time
	EndAt       time.Time
}

// MembershipPatch carries the fields to change. Nil fields are left alone.
type MembershipPatch struct {
	Name        *string
	Description *string
	Price       *int64
	StartAt     *time.Time
	EndAt       *time.Time
}

type MembershipService struct {
	Store store.Store

	// Cache is optional. When set, plans are read through it and evicted on
	// every write.
	Cache *cachex.Store[domain.Membership]
}

func validateMembership(m domain.Membership) error {
	if m.Price < 0 {
		return ErrInvalidPrice
	}
	if !m.ValidWindow() {
		return ErrInvalidMembershipWindow
	}
	return nil
}

// CreateMembership adds a plan.
func (s *MembershipService) CreateMembership(ctx context.Context, in MembershipInput) (domain.Membership, error) {
	return s.create(ctx, idx.New(), in)
}

func (s *MembershipService) create(ctx context.Context, id idx.ID, in MembershipInput) (domain.Membership, error) {
	l := slogx.FromContext(ctx)

	m := domain.Membership{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		StartAt:     in.StartAt.UTC(),
		EndAt:       in.EndAt.UTC(),
	}
	if err := validateMembership(m); err != nil {
		return domain.Membership{}, err
	}

	if err := s.Store.Memberships().CreateMembership(ctx, m); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Membership{}, ErrMembershipIDTaken
		}
		l.Error("failed to create membership", "error", err)
		return domain.Membership{}, err
	}

	l.Info("membership created", "membership_id", m.ID, "name", m.Name)
	return s.load(ctx, m.ID)
}

// GetMembership fetches a live plan, from the cache when one is configured.
func (s *MembershipService) GetMembership(ctx context.Context, id idx.ID) (domain.Membership, error) {
	if s.Cache == nil {
		return s.load(ctx, id)
	}

	l := slogx.FromContext(ctx)

	m, err := s.Cache.Get(ctx, id.String())
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, cachex.ErrMiss) {
		l.Warn("membership cache read failed", "membership_id", id, "error", err)
	}

	m, err = s.load(ctx, id)
	if err != nil {
		return domain.Membership{}, err
	}
	if err := s.Cache.Set(ctx, id.String(), m); err != nil {
		l.Warn("membership cache write failed", "membership_id", id, "error", err)
		return m, nil
	}

	// A write may have committed and evicted between load and Set, leaving
	// the entry stale. Drop it when the row has moved on.
	fresh, err := s.load(ctx, id)
	if err != nil || !samePlan(m, fresh) {
		s.evict(ctx, id)
	}
	return m, nil
}

func samePlan(a, b domain.Membership) bool {
	return a.Name == b.Name &&
		a.Description == b.Description &&
		a.Price == b.Price &&
		a.StartAt.Equal(b.StartAt) &&
		a.EndAt.Equal(b.EndAt) &&
		a.UpdatedAt.Equal(b.UpdatedAt)
}

// load bypasses the cache.
func (s *MembershipService) load(ctx context.Context, id idx.ID) (domain.Membership, error) {
	m, err := s.Store.Memberships().GetMembershipByID(ctx, id)
	return m, mapNotFound(err, ErrMembershipNotFound)
}

// ListMemberships returns live plans, newest first.
func (s *MembershipService) ListMemberships(ctx context.Context, page store.Page) ([]domain.Membership, error) {
	return s.Store.Memberships().ListMemberships(ctx, page)
}

// PatchMembership applies the non-nil fields of p. The window is checked
// after merging, so moving only one bound is validated against the other.
func (s *MembershipService) PatchMembership(
	ctx context.Context,
	id idx.ID,
	p MembershipPatch,
) (domain.Membership, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return domain.Membership{}, err
	}

	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.StartAt != nil {
		m.StartAt = p.StartAt.UTC()
	}
	if p.EndAt != nil {
		m.EndAt = p.EndAt.UTC()
	}

	return s.update(ctx, m)
}

// ReplaceMembership overwrites plan id, creating it when it does not exist.
func (s *MembershipService) ReplaceMembership(
	ctx context.Context,
	id idx.ID,
	in MembershipInput,
) (m domain.Membership, created bool, err error) {
	current, err := s.load(ctx, id)
	if errors.Is(err, ErrMembershipNotFound) {
		m, err = s.create(ctx, id, in)
		return m, err == nil, err
	}
	if err != nil {
		return domain.Membership{}, false, err
	}

	current.Name = in.Name
	current.Description = in.Description
	current.Price = in.Price
	current.StartAt = in.StartAt.UTC()
	current.EndAt = in.EndAt.UTC()

	m, err = s.update(ctx, current)
	return m, false, err
}

func (s *MembershipService) update(ctx context.Context, m domain.Membership) (domain.Membership, error) {
	if err := validateMembership(m); err != nil {
		return domain.Membership{}, err
	}

	if err := s.Store.Memberships().UpdateMembership(ctx, m); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Error("failed to update membership", "membership_id", m.ID, "error", err)
		}
		return domain.Membership{}, mapNotFound(err, ErrMembershipNotFound)
	}
	s.evict(ctx, m.ID)

	return s.load(ctx, m.ID)
}

// DeleteMembership soft deletes the plan. Existing associations keep pointing
// at it but it no longer counts as active.
func (s *MembershipService) DeleteMembership(ctx context.Context, id idx.ID) error {
	if err := s.Store.Memberships().SoftDeleteMembership(ctx, id, now()); err != nil {
		return mapNotFound(err, ErrMembershipNotFound)
	}
	s.evict(ctx, id)

	slogx.FromContext(ctx).Info("membership deleted", "membership_id", id)
	return nil
}

func (s *MembershipService) evict(ctx context.Context, id idx.ID) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, id.String()); err != nil {
		slogx.FromContext(ctx).Warn("membership cache eviction failed", "membership_id", id, "error", err)
	}
}
