package http

import (
	"net/http"

	"github.com/aussiebroadwan/barcommun/internal/membership/service"
	"github.com/aussiebroadwan/barcommun/pkg/httpx"
	"github.com/aussiebroadwan/barcommun/pkg/membersdk"
)

// MembershipsHandler handles the membership plan endpoints.
type MembershipsHandler struct {
	MembershipService *service.MembershipService
}

// HandleList handles GET /v1/memberships
//
//	@Summary		List Memberships
//	@Description	Returns live membership plans, oldest first.
//	@Tags			Memberships
//	@Produce		json
//	@Security		BearerAuth
//	@Param			limit	query		int									false	"Page size (1-200, default 50)"
//	@Param			offset	query		int									false	"Rows to skip"
//	@Success		200		{object}	membersdk.ListMembershipsResponse	"memberships"
//	@Failure		400		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Router			/v1/memberships [get].
func (h *MembershipsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	plans, err := h.MembershipService.ListMemberships(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]membersdk.MembershipResponse, 0, len(plans))
	for _, m := range plans {
		out = append(out, toMembershipResponse(m))
	}
	httpx.WriteJSON(w, http.StatusOK, membersdk.ListMembershipsResponse{Memberships: out})
}

// HandleCreate handles POST /v1/memberships
//
//	@Summary		Create Membership
//	@Description	Adds a membership plan. The window must end after it starts.
//	@Tags			Memberships
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		membersdk.MembershipRequest		true	"Plan"
//	@Success		201		{object}	membersdk.MembershipResponse	"Created plan"
//	@Failure		400		{object}	membersdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	membersdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	membersdk.ErrorResponse			"error, error_description"
//	@Router			/v1/memberships [post].
func (h *MembershipsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req membersdk.MembershipRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	m, err := h.MembershipService.CreateMembership(r.Context(), membershipInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toMembershipResponse(m))
}

// HandleGet handles GET /v1/memberships/{id}
//
//	@Summary		Get Membership
//	@Tags			Memberships
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string							true	"Membership ID (ULID)"
//	@Success		200	{object}	membersdk.MembershipResponse	"Plan"
//	@Failure		400	{object}	membersdk.ErrorResponse			"error, error_description"
//	@Failure		401	{object}	membersdk.ErrorResponse			"error, error_description"
//	@Failure		403	{object}	membersdk.ErrorResponse			"error, error_description"
//	@Failure		404	{object}	membersdk.ErrorResponse			"error, error_description"
//	@Router			/v1/memberships/{id} [get].
func (h *MembershipsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	m, err := h.MembershipService.GetMembership(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMembershipResponse(m))
}

// HandlePatch handles PATCH /v1/memberships/{id}
//
//	@Summary		Update Membership
//	@Description	Changes the fields present in the body. The resulting window is validated.
//	@Tags			Memberships
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"Membership ID (ULID)"
//	@Param			request	body		membersdk.PatchMembershipRequest	true	"Fields to change"
//	@Success		200		{object}	membersdk.MembershipResponse		"Updated plan"
//	@Failure		400		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Router			/v1/memberships/{id} [patch].
func (h *MembershipsHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req membersdk.PatchMembershipRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	m, err := h.MembershipService.PatchMembership(r.Context(), id, service.MembershipPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMembershipResponse(m))
}

// HandleReplace handles PUT /v1/memberships/{id}
//
//	@Summary		Create or Replace Membership
//	@Description	Overwrites the plan, creating it under this id when it does not exist.
//	@Tags			Memberships
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Membership ID (ULID)"
//	@Param			request	body		membersdk.MembershipRequest		true	"Plan"
//	@Success		200		{object}	membersdk.MembershipResponse	"Replaced plan"
//	@Success		201		{object}	membersdk.MembershipResponse	"Created plan"
//	@Failure		400		{object}	membersdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	membersdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	membersdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	membersdk.ErrorResponse			"error, error_description"
//	@Router			/v1/memberships/{id} [put].
func (h *MembershipsHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req membersdk.MembershipRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	m, created, err := h.MembershipService.ReplaceMembership(r.Context(), id, membershipInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, createdStatus(created), toMembershipResponse(m))
}

// HandleDelete handles DELETE /v1/memberships/{id}
//
//	@Summary		Delete Membership
//	@Description	Soft deletes the plan. Subscriptions to it stop counting as active.
//	@Tags			Memberships
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Membership ID (ULID)"
//	@Success		204	"Plan deleted"
//	@Failure		400	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		401	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Router			/v1/memberships/{id} [delete].
func (h *MembershipsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.MembershipService.DeleteMembership(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func membershipInput(req membersdk.MembershipRequest) service.MembershipInput {
	return service.MembershipInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
	}
}
