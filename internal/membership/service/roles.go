package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
)

// Identity describes the caller of a request.
type Identity struct {
	Subject     string
	Roles       authz.Roles
	Permissions []authz.Permission

	// User is set when the subject is a known user.
	User *domain.User
}

type RolesService struct {
	Store store.Store
}

// ListRoles returns the role catalog with the permissions each role grants.
func (s *RolesService) ListRoles() []RoleDescription {
	catalog := authz.Catalog()
	out := make([]RoleDescription, 0, len(catalog))
	for _, info := range catalog {
		out = append(out, RoleDescription{
			RoleInfo:    info,
			Permissions: authz.PermissionsOf(info.ID).Sorted(),
		})
	}
	return out
}

// RoleDescription is a catalog entry plus its granted permissions.
type RoleDescription struct {
	authz.RoleInfo
	Permissions []authz.Permission
}

// Describe resolves the effective permissions of p and, when its subject is a
// user id, the matching user.
func (s *RolesService) Describe(ctx context.Context, p *authz.Principal) (Identity, error) {
	id := Identity{
		Subject:     p.Subject,
		Roles:       p.Roles,
		Permissions: authz.EffectivePermissions(p.Roles).Sorted(),
	}

	userID, err := idx.Parse(p.Subject)
	if err != nil {
		return id, nil
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return id, nil
	case err != nil:
		return Identity{}, err
	}
	id.User = &u
	return id, nil
}
