package authz

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Role is one of the fixed association roles. Roles are compile-time
// constants; nothing creates or destroys them at runtime.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleCommitee      Role = "commitee"
	RoleBoard         Role = "board"
	RoleServicesBoard Role = "services_board"
	RoleReferant      Role = "referent"
	RoleBarista       Role = "barista"
	RoleActiveMember  Role = "active_member"
	RoleMember        Role = "member"
	RoleUser          Role = "user"
	RoleGuest         Role = "guest"
)

var ErrUnknownRole = errors.New("authz: unknown role")

// RoleInfo is the display metadata of a role. It never affects authorization.
type RoleInfo struct {
	ID          Role
	Label       string
	Description string
}

// roleCatalog lists every role, most privileged first.
var roleCatalog = []RoleInfo{
	{
		ID:          RoleAdmin,
		Label:       "Administrateur",
		Description: "Can only be granted by another administrator. Has access to every feature and may grant any role.",
	},
	{
		ID:          RoleCommitee,
		Label:       "Bureau",
		Description: "Elected to the association's executive committee by the board.",
	},
	{
		ID:          RoleBoard,
		Label:       "Conseil d'administration",
		Description: "Elected to the board by the active members. May appoint active members.",
	},
	{
		ID:          RoleServicesBoard,
		Label:       "Bureau des services",
		Description: "Together with administrators, the only ones allowed to grant the referent or barista roles.",
	},
	{
		ID:          RoleReferant,
		Label:       "Référent",
		Description: "Responsible for the bar during a shift. Can validate memberships at the counter.",
	},
	{
		ID:          RoleBarista,
		Label:       "Barista",
		Description: "Completed the training to serve behind the bar.",
	},
	{
		ID:          RoleActiveMember,
		Label:       "Membre actif",
		Description: "Got involved in the bar at least once during the year.",
	},
	{
		ID:          RoleMember,
		Label:       "Membre",
		Description: "Basic member level. The membership fee is paid and validated.",
	},
	{
		ID:          RoleUser,
		Label:       "Utilisateur",
		Description: "Registered, but the membership is not paid or not validated yet.",
	},
	{
		ID:          RoleGuest,
		Label:       "Invité",
		Description: "Not registered with the association. Cannot reach the membership validation interface.",
	},
}

// AllRoles returns every role in catalog order.
func AllRoles() []Role {
	out := make([]Role, len(roleCatalog))
	for i, info := range roleCatalog {
		out[i] = info.ID
	}
	return out
}

// Catalog returns the display metadata of every role in catalog order.
func Catalog() []RoleInfo {
	return slices.Clone(roleCatalog)
}

// Valid reports whether r belongs to the catalog.
func (r Role) Valid() bool {
	_, ok := r.lookup()
	return ok
}

// Info returns the metadata of r. Unknown roles get a zero description.
func (r Role) Info() RoleInfo {
	if info, ok := r.lookup(); ok {
		return info
	}
	return RoleInfo{ID: r, Label: string(r)}
}

func (r Role) String() string { return string(r) }

func (r Role) lookup() (RoleInfo, bool) {
	for _, info := range roleCatalog {
		if info.ID == r {
			return info, true
		}
	}
	return RoleInfo{}, false
}

// ParseRole converts a raw role key into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// Roles is the role set held by a single user. Order carries no meaning.
type Roles []Role

// ParseRoles parses raw role keys, dropping duplicates. The first unknown key
// fails the whole set.
func ParseRoles(raw []string) (Roles, error) {
	out := make(Roles, 0, len(raw))
	for _, s := range raw {
		r, err := ParseRole(s)
		if err != nil {
			return nil, err
		}
		if !out.Has(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Has reports whether r is part of the set.
func (rs Roles) Has(r Role) bool {
	return slices.Contains(rs, r)
}

// Strings returns the raw role keys.
func (rs Roles) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

// Equal reports set equality, ignoring order and duplicates.
func (rs Roles) Equal(other Roles) bool {
	for _, r := range rs {
		if !other.Has(r) {
			return false
		}
	}
	for _, r := range other {
		if !rs.Has(r) {
			return false
		}
	}
	return true
}
