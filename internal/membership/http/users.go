package http

import (
	"net/http"

	"github.com/aussiebroadwan/barcommun/internal/membership/service"
	"github.com/aussiebroadwan/barcommun/pkg/httpx"
	"github.com/aussiebroadwan/barcommun/pkg/membersdk"
)

// UsersHandler handles the user endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleList handles GET /v1/users
//
//	@Summary		List Users
//	@Description	Returns live users, oldest first.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			limit	query		int							false	"Page size (1-200, default 50)"
//	@Param			offset	query		int							false	"Rows to skip"
//	@Success		200		{object}	membersdk.ListUsersResponse	"users"
//	@Failure		400		{object}	membersdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	membersdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	membersdk.ErrorResponse		"error, error_description"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	users, err := h.UserService.ListUsers(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]membersdk.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, membersdk.ListUsersResponse{Users: out})
}

// HandleCreate handles POST /v1/users
//
//	@Summary		Create User
//	@Description	Registers a user. New users hold the user role only.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		membersdk.UserRequest	true	"User"
//	@Success		201		{object}	membersdk.UserResponse	"Created user"
//	@Failure		400		{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	membersdk.ErrorResponse	"email already taken"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req membersdk.UserRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	u, err := h.UserService.CreateUser(r.Context(), userInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}

// HandleGet handles GET /v1/users/{id}
//
//	@Summary		Get User
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"User ID (ULID)"
//	@Success		200	{object}	membersdk.UserResponse	"User"
//	@Failure		400	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		401	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Router			/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	u, err := h.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandlePatch handles PATCH /v1/users/{id}
//
//	@Summary		Update User
//	@Description	Changes the fields present in the body.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"User ID (ULID)"
//	@Param			request	body		membersdk.PatchUserRequest	true	"Fields to change"
//	@Success		200		{object}	membersdk.UserResponse		"Updated user"
//	@Failure		400		{object}	membersdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	membersdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	membersdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	membersdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	membersdk.ErrorResponse		"email already taken"
//	@Router			/v1/users/{id} [patch].
func (h *UsersHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req membersdk.PatchUserRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	u, err := h.UserService.PatchUser(r.Context(), id, service.UserPatch{
		Email:     req.Email,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Phone:     req.Phone,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandleReplace handles PUT /v1/users/{id}
//
//	@Summary		Create or Replace User
//	@Description	Overwrites the user profile, creating the user under this id when it does not exist. Roles are not affected.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"User ID (ULID)"
//	@Param			request	body		membersdk.UserRequest	true	"User"
//	@Success		200		{object}	membersdk.UserResponse	"Replaced user"
//	@Success		201		{object}	membersdk.UserResponse	"Created user"
//	@Failure		400		{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	membersdk.ErrorResponse	"error, error_description"
//	@Router			/v1/users/{id} [put].
func (h *UsersHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req membersdk.UserRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	u, created, err := h.UserService.ReplaceUser(r.Context(), id, userInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, createdStatus(created), toUserResponse(u))
}

// HandleDelete handles DELETE /v1/users/{id}
//
//	@Summary		Delete User
//	@Description	Soft deletes the user. Its memberships stay on record.
//	@Tags			Users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ID (ULID)"
//	@Success		204	"User deleted"
//	@Failure		400	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		401	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Router			/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUpdateRoles handles PUT /v1/users/{id}/roles
//
//	@Summary		Replace User Roles
//	@Description	Replaces the role set. An empty list resets the user to the user role. Granting or revoking admin requires the caller to be an admin.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"User ID (ULID)"
//	@Param			request	body		membersdk.UpdateRolesRequest	true	"Roles"
//	@Success		200		{object}	membersdk.UserResponse			"Updated user"
//	@Failure		400		{object}	membersdk.ErrorResponse			"unknown role"
//	@Failure		401		{object}	membersdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	membersdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	membersdk.ErrorResponse			"error, error_description"
//	@Router			/v1/users/{id}/roles [put].
func (h *UsersHandler) HandleUpdateRoles(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req membersdk.UpdateRolesRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	u, err := h.UserService.UpdateUserRoles(r.Context(), PrincipalFromContext(r.Context()), id, req.Roles)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

func userInput(req membersdk.UserRequest) service.UserInput {
	return service.UserInput{
		Email:     req.Email,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Phone:     req.Phone,
	}
}

func createdStatus(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}
