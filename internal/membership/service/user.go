package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
	"github.com/aussiebroadwan/barcommun/pkg/slogx"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already taken")
	ErrUserIDTaken         = errors.New("user id belongs to a deleted user")
	ErrInvalidRoles        = errors.New("invalid roles")
	ErrAdminGrantForbidden = errors.New("only admins may grant or revoke the admin role")
)

// UserInput carries every writable profile field.
type UserInput struct {
	Email     string
	Firstname string
	Lastname  string
	Phone     string
}

// UserPatch carries the fields to change. Nil fields are left alone.
type UserPatch struct {
	Email     *string
	Firstname *string
	Lastname  *string
	Phone     *string
}

type UserService struct {
	Store store.Store
}

// CreateUser registers a new user holding the default role set.
func (s *UserService) CreateUser(ctx context.Context, in UserInput) (domain.User, error) {
	return s.create(ctx, idx.New(), in)
}

func (s *UserService) create(ctx context.Context, id idx.ID, in UserInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	u := domain.User{
		ID:        id,
		Email:     normaliseEmail(in.Email),
		Firstname: in.Firstname,
		Lastname:  in.Lastname,
		Phone:     in.Phone,
		Roles:     domain.DefaultRoles(),
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, s.conflictCause(ctx, u.Email)
		}
		l.Error("failed to create user", "error", err)
		return domain.User{}, err
	}

	l.Info("user created", "user_id", u.ID)
	return s.GetUser(ctx, u.ID)
}

// conflictCause tells a taken email apart from an id kept by a soft deleted
// user, which ReplaceUser can run into.
func (s *UserService) conflictCause(ctx context.Context, email string) error {
	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserIDTaken
	}
	return ErrEmailTaken
}

// GetUser fetches a live user by id.
func (s *UserService) GetUser(ctx context.Context, id idx.ID) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	return u, mapNotFound(err, ErrUserNotFound)
}

// ListUsers returns live users, oldest first.
func (s *UserService) ListUsers(ctx context.Context, page store.Page) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx, page)
}

// PatchUser applies the non-nil fields of p.
func (s *UserService) PatchUser(ctx context.Context, id idx.ID, p UserPatch) (domain.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if p.Email != nil {
		u.Email = normaliseEmail(*p.Email)
	}
	if p.Firstname != nil {
		u.Firstname = *p.Firstname
	}
	if p.Lastname != nil {
		u.Lastname = *p.Lastname
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}

	return s.update(ctx, u)
}

// ReplaceUser overwrites the profile of id, creating the user when it does
// not exist yet. created reports which of the two happened.
func (s *UserService) ReplaceUser(ctx context.Context, id idx.ID, in UserInput) (u domain.User, created bool, err error) {
	current, err := s.GetUser(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		u, err = s.create(ctx, id, in)
		return u, err == nil, err
	}
	if err != nil {
		return domain.User{}, false, err
	}

	current.Email = normaliseEmail(in.Email)
	current.Firstname = in.Firstname
	current.Lastname = in.Lastname
	current.Phone = in.Phone

	u, err = s.update(ctx, current)
	return u, false, err
}

func (s *UserService) update(ctx context.Context, u domain.User) (domain.User, error) {
	err := s.Store.Users().UpdateUser(ctx, u)
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.User{}, ErrEmailTaken
	case err != nil:
		if !errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Error("failed to update user", "user_id", u.ID, "error", err)
		}
		return domain.User{}, mapNotFound(err, ErrUserNotFound)
	}
	return s.GetUser(ctx, u.ID)
}

// DeleteUser soft deletes the user. Its memberships stay on record.
func (s *UserService) DeleteUser(ctx context.Context, id idx.ID) error {
	if err := s.Store.Users().SoftDeleteUser(ctx, id, now()); err != nil {
		return mapNotFound(err, ErrUserNotFound)
	}
	slogx.FromContext(ctx).Info("user deleted", "user_id", id)
	return nil
}

// UpdateUserRoles replaces the role set of id. An empty set falls back to the
// default roles. Granting or revoking ADMIN requires caller to be an admin.
func (s *UserService) UpdateUserRoles(
	ctx context.Context,
	caller *authz.Principal,
	id idx.ID,
	raw []string,
) (domain.User, error) {
	l := slogx.FromContext(ctx)

	roles, err := authz.ParseRoles(raw)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", ErrInvalidRoles, err)
	}
	if len(roles) == 0 {
		roles = domain.DefaultRoles()
	}

	u, err := s.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if u.Roles.Has(authz.RoleAdmin) != roles.Has(authz.RoleAdmin) {
		if caller == nil || !caller.Roles.Has(authz.RoleAdmin) {
			l.Warn("admin role change refused", "user_id", id)
			return domain.User{}, ErrAdminGrantForbidden
		}
	}

	if err := s.Store.Users().UpdateUserRoles(ctx, id, roles); err != nil {
		return domain.User{}, mapNotFound(err, ErrUserNotFound)
	}

	l.Info("user roles updated", "user_id", id, "roles", roles.Strings())
	return s.GetUser(ctx, id)
}
