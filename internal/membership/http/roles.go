package http

import (
	"net/http"

	"github.com/aussiebroadwan/barcommun/internal/membership/service"
	"github.com/aussiebroadwan/barcommun/pkg/httpx"
	"github.com/aussiebroadwan/barcommun/pkg/membersdk"
)

// RolesHandler serves the role catalog and the caller description.
type RolesHandler struct {
	RolesService *service.RolesService
}

// HandleList handles GET /v1/roles
//
//	@Summary		List Roles
//	@Description	Returns every role with the permissions it grants. Public.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	membersdk.ListRolesResponse	"Role catalog"
//	@Failure		429	{object}	membersdk.ErrorResponse		"error, error_description"
//	@Router			/v1/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	roles := h.RolesService.ListRoles()

	out := make([]membersdk.RoleInfo, 0, len(roles))
	for _, role := range roles {
		out = append(out, membersdk.RoleInfo{
			ID:          role.ID.String(),
			Label:       role.Label,
			Description: role.Description,
			Permissions: permissionStrings(role.Permissions),
		})
	}

	httpx.WriteJSON(w, http.StatusOK, membersdk.ListRolesResponse{Roles: out})
}

// HandleWhoAmI handles GET /v1/me
//
//	@Summary		Describe Caller
//	@Description	Returns the roles and effective permissions of the bearer token, and the matching user when the subject is a user id.
//	@Tags			Roles
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	membersdk.WhoAmIResponse	"subject, roles, permissions, user"
//	@Failure		401	{object}	membersdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	membersdk.ErrorResponse		"error, error_description"
//	@Router			/v1/me [get].
func (h *RolesHandler) HandleWhoAmI(w http.ResponseWriter, r *http.Request) {
	principal := PrincipalFromContext(r.Context())
	if principal == nil {
		writeUnauthenticated(w, "not authenticated")
		return
	}

	id, err := h.RolesService.Describe(r.Context(), principal)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := membersdk.WhoAmIResponse{
		Subject:     id.Subject,
		Roles:       id.Roles.Strings(),
		Permissions: permissionStrings(id.Permissions),
	}
	if id.User != nil {
		u := toUserResponse(*id.User)
		resp.User = &u
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
