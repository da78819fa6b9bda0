package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
	"github.com/aussiebroadwan/barcommun/pkg/slogx"
)

var (
	ErrAssociationNotFound = errors.New("user membership not found")
	ErrAlreadyAssociated   = errors.New("user already holds this membership")
	ErrAssociationConflict = errors.New("user membership conflicts with an existing one")
	ErrNoActiveMembership  = errors.New("user has no active membership")
)

// AssociationInput carries every writable field of a user-membership.
type AssociationInput struct {
	UserID                    idx.ID
	MembershipID              idx.ID
	IsPaid                    bool
	HasNewsletterSubscription bool
	HasShiftsSubscription     bool
}

// AssociationPatch carries the flags to change. Nil fields are left alone.
type AssociationPatch struct {
	IsPaid                    *bool
	HasNewsletterSubscription *bool
	HasShiftsSubscription     *bool
}

// UserMembershipService manages the association between users and plans and
// fires the role transitions that come with it.
type UserMembershipService struct {
	Store store.Store
}

// CreateUserMembership subscribes a user to a plan. An unpaid subscription
// grants MEMBER, a paid one promotes the user to ACTIVE_MEMBER. The roles are
// written in the same transaction as the association.
func (s *UserMembershipService) CreateUserMembership(
	ctx context.Context,
	in AssociationInput,
) (domain.UserMembership, error) {
	return s.create(ctx, idx.New(), in)
}

func (s *UserMembershipService) create(
	ctx context.Context,
	id idx.ID,
	in AssociationInput,
) (domain.UserMembership, error) {
	l := slogx.FromContext(ctx).With("user_id", in.UserID, "membership_id", in.MembershipID)

	if err := s.lookupPair(ctx, in.UserID, in.MembershipID); err != nil {
		return domain.UserMembership{}, err
	}

	um := domain.UserMembership{
		ID:                        id,
		UserID:                    in.UserID,
		MembershipID:              in.MembershipID,
		IsPaid:                    in.IsPaid,
		HasNewsletterSubscription: in.HasNewsletterSubscription,
		HasShiftsSubscription:     in.HasShiftsSubscription,
	}

	transition := authz.GrantBaselineMembership
	if um.IsPaid {
		transition = authz.PromoteToActiveOnPaidMembership
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.UserMemberships().CreateUserMembership(ctx, um); err != nil {
			return err
		}
		return applyTransition(ctx, tx, um.UserID, transition)
	})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.UserMembership{}, s.conflictCause(ctx, in)
	case errors.Is(err, store.ErrNotFound):
		// The user was deleted between the lookup and the transaction.
		return domain.UserMembership{}, ErrUserNotFound
	case err != nil:
		l.Error("failed to create user membership", "error", err)
		return domain.UserMembership{}, err
	}

	l.Info("user membership created", "user_membership_id", um.ID, "is_paid", um.IsPaid)
	return s.GetUserMembership(ctx, um.ID)
}

// lookupPair checks that both sides of an association exist, concurrently.
func (s *UserMembershipService) lookupPair(ctx context.Context, userID, membershipID idx.ID) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.Store.Users().GetUserByID(gctx, userID)
		return mapNotFound(err, ErrUserNotFound)
	})
	g.Go(func() error {
		_, err := s.Store.Memberships().GetMembershipByID(gctx, membershipID)
		return mapNotFound(err, ErrMembershipNotFound)
	})
	return g.Wait()
}

// conflictCause tells a duplicate pair apart from a reused id.
func (s *UserMembershipService) conflictCause(ctx context.Context, in AssociationInput) error {
	_, err := s.Store.UserMemberships().GetUserMembershipByPair(ctx, in.UserID, in.MembershipID)
	if err == nil {
		return ErrAlreadyAssociated
	}
	return ErrAssociationConflict
}

// applyTransition rewrites the roles of userID inside tx. Nothing is written
// when the transition leaves the set unchanged.
func applyTransition(
	ctx context.Context,
	tx store.Tx,
	userID idx.ID,
	transition func(authz.Roles) authz.Roles,
) error {
	u, err := tx.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	next := transition(u.Roles)
	if next.Equal(u.Roles) {
		return nil
	}
	if err := tx.Users().UpdateUserRoles(ctx, userID, next); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("user roles transitioned",
		"user_id", userID,
		"from", u.Roles.Strings(),
		"to", next.Strings(),
	)
	return nil
}

// GetUserMembership fetches an association with its plan.
func (s *UserMembershipService) GetUserMembership(ctx context.Context, id idx.ID) (domain.UserMembership, error) {
	um, err := s.Store.UserMemberships().GetUserMembershipByID(ctx, id)
	return um, mapNotFound(err, ErrAssociationNotFound)
}

// GetUserMembershipByPair fetches the association of a user with a plan.
func (s *UserMembershipService) GetUserMembershipByPair(
	ctx context.Context,
	userID, membershipID idx.ID,
) (domain.UserMembership, error) {
	um, err := s.Store.UserMemberships().GetUserMembershipByPair(ctx, userID, membershipID)
	return um, mapNotFound(err, ErrAssociationNotFound)
}

// ListUserMemberships returns every association, newest first.
func (s *UserMembershipService) ListUserMemberships(
	ctx context.Context,
	page store.Page,
) ([]domain.UserMembership, error) {
	return s.Store.UserMemberships().ListUserMemberships(ctx, page)
}

// ListForUser returns the associations of a live user, newest first.
func (s *UserMembershipService) ListForUser(ctx context.Context, userID idx.ID) ([]domain.UserMembership, error) {
	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		return nil, mapNotFound(err, ErrUserNotFound)
	}
	return s.Store.UserMemberships().ListUserMembershipsByUser(ctx, userID)
}

// GetActiveForUser returns the newest association of userID whose plan is
// running now.
func (s *UserMembershipService) GetActiveForUser(ctx context.Context, userID idx.ID) (domain.UserMembership, error) {
	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		return domain.UserMembership{}, mapNotFound(err, ErrUserNotFound)
	}
	um, err := s.Store.UserMemberships().GetActiveUserMembership(ctx, userID, now())
	return um, mapNotFound(err, ErrNoActiveMembership)
}

// ValidateUserMembership marks the association as paid and promotes the user.
// Validating a paid association changes nothing.
func (s *UserMembershipService) ValidateUserMembership(ctx context.Context, id idx.ID) (domain.UserMembership, error) {
	paid := true
	return s.PatchUserMembership(ctx, id, AssociationPatch{IsPaid: &paid})
}

// PatchUserMembership applies the non-nil flags of p. Flipping IsPaid from
// false to true promotes the user; the reverse flip leaves roles alone.
func (s *UserMembershipService) PatchUserMembership(
	ctx context.Context,
	id idx.ID,
	p AssociationPatch,
) (domain.UserMembership, error) {
	um, err := s.GetUserMembership(ctx, id)
	if err != nil {
		return domain.UserMembership{}, err
	}

	next := um
	if p.IsPaid != nil {
		next.IsPaid = *p.IsPaid
	}
	if p.HasNewsletterSubscription != nil {
		next.HasNewsletterSubscription = *p.HasNewsletterSubscription
	}
	if p.HasShiftsSubscription != nil {
		next.HasShiftsSubscription = *p.HasShiftsSubscription
	}

	return s.update(ctx, um, next)
}

// ReplaceUserMembership overwrites association id, creating it when missing.
// An existing association cannot be moved to another user or plan, and a new
// one cannot reuse a pair held under a different id.
func (s *UserMembershipService) ReplaceUserMembership(
	ctx context.Context,
	id idx.ID,
	in AssociationInput,
) (um domain.UserMembership, created bool, err error) {
	current, err := s.GetUserMembership(ctx, id)
	if errors.Is(err, ErrAssociationNotFound) {
		um, err = s.create(ctx, id, in)
		if errors.Is(err, ErrAlreadyAssociated) {
			err = ErrAssociationConflict
		}
		return um, err == nil, err
	}
	if err != nil {
		return domain.UserMembership{}, false, err
	}

	if current.UserID != in.UserID || current.MembershipID != in.MembershipID {
		return domain.UserMembership{}, false, ErrAssociationConflict
	}

	next := current
	next.IsPaid = in.IsPaid
	next.HasNewsletterSubscription = in.HasNewsletterSubscription
	next.HasShiftsSubscription = in.HasShiftsSubscription

	um, err = s.update(ctx, current, next)
	return um, false, err
}

func (s *UserMembershipService) update(
	ctx context.Context,
	current, next domain.UserMembership,
) (domain.UserMembership, error) {
	l := slogx.FromContext(ctx).With("user_membership_id", current.ID, "user_id", current.UserID)

	promote := !current.IsPaid && next.IsPaid

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.UserMemberships().UpdateUserMembership(ctx, next); err != nil {
			return mapNotFound(err, ErrAssociationNotFound)
		}
		if !promote {
			return nil
		}
		err := applyTransition(ctx, tx, next.UserID, authz.PromoteToActiveOnPaidMembership)
		// A deleted user keeps its history; there is no role left to promote.
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrAssociationNotFound) {
			l.Error("failed to update user membership", "error", err)
		}
		return domain.UserMembership{}, err
	}

	if promote {
		l.Info("user membership validated")
	}
	return s.GetUserMembership(ctx, current.ID)
}

// DeleteUserMembership removes the association. Roles are not revoked.
func (s *UserMembershipService) DeleteUserMembership(ctx context.Context, id idx.ID) error {
	if err := s.Store.UserMemberships().DeleteUserMembership(ctx, id); err != nil {
		return mapNotFound(err, ErrAssociationNotFound)
	}
	slogx.FromContext(ctx).Info("user membership deleted", "user_membership_id", id)
	return nil
}
