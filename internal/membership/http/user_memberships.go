package http

import (
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/barcommun/internal/membership/service"
	"github.com/aussiebroadwan/barcommun/pkg/httpx"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
	"github.com/aussiebroadwan/barcommun/pkg/membersdk"
)

// UserMembershipsHandler handles subscriptions of users to plans.
type UserMembershipsHandler struct {
	UserMembershipService *service.UserMembershipService
}

// HandleList handles GET /v1/user-memberships
//
//	@Summary		List User Memberships
//	@Description	Returns every subscription, newest first.
//	@Tags			User Memberships
//	@Produce		json
//	@Security		BearerAuth
//	@Param			limit	query		int										false	"Page size (1-200, default 50)"
//	@Param			offset	query		int										false	"Rows to skip"
//	@Success		200		{object}	membersdk.ListUserMembershipsResponse	"user_memberships"
//	@Failure		400		{object}	membersdk.ErrorResponse					"error, error_description"
//	@Failure		401		{object}	membersdk.ErrorResponse					"error, error_description"
//	@Failure		403		{object}	membersdk.ErrorResponse					"error, error_description"
//	@Router			/v1/user-memberships [get].
func (h *UserMembershipsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	items, err := h.UserMembershipService.ListUserMemberships(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, membersdk.ListUserMembershipsResponse{
		UserMemberships: toUserMembershipResponses(items),
	})
}

// HandleCreate handles POST /v1/user-memberships
//
//	@Summary		Subscribe User
//	@Description	Subscribes a user to a plan. An unpaid subscription grants the member role, a paid one the active_member role.
//	@Tags			User Memberships
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		membersdk.UserMembershipRequest		true	"Subscription"
//	@Success		201		{object}	membersdk.UserMembershipResponse	"Created subscription"
//	@Failure		400		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	membersdk.ErrorResponse				"user or plan not found"
//	@Failure		409		{object}	membersdk.ErrorResponse				"already subscribed"
//	@Router			/v1/user-memberships [post].
func (h *UserMembershipsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req membersdk.UserMembershipRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	in, err := associationInput(req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	um, err := h.UserMembershipService.CreateUserMembership(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUserMembershipResponse(um))
}

// HandleGet handles GET /v1/user-memberships/{id}
//
//	@Summary		Get User Membership
//	@Tags			User Memberships
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string								true	"User membership ID (ULID)"
//	@Success		200	{object}	membersdk.UserMembershipResponse	"Subscription"
//	@Failure		400	{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		401	{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		403	{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		404	{object}	membersdk.ErrorResponse				"error, error_description"
//	@Router			/v1/user-memberships/{id} [get].
func (h *UserMembershipsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	um, err := h.UserMembershipService.GetUserMembership(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserMembershipResponse(um))
}

// HandlePatch handles PATCH /v1/user-memberships/{id}
//
//	@Summary		Update User Membership
//	@Description	Changes the flags present in the body. Marking the subscription paid promotes the user.
//	@Tags			User Memberships
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"User membership ID (ULID)"
//	@Param			request	body		membersdk.PatchUserMembershipRequest	true	"Flags to change"
//	@Success		200		{object}	membersdk.UserMembershipResponse	"Updated subscription"
//	@Failure		400		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Router			/v1/user-memberships/{id} [patch].
func (h *UserMembershipsHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req membersdk.PatchUserMembershipRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	um, err := h.UserMembershipService.PatchUserMembership(r.Context(), id, service.AssociationPatch{
		IsPaid:                    req.IsPaid,
		HasNewsletterSubscription: req.HasNewsletterSubscription,
		HasShiftsSubscription:     req.HasShiftsSubscription,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserMembershipResponse(um))
}

// HandleReplace handles PUT /v1/user-memberships/{id}
//
//	@Summary		Create or Replace User Membership
//	@Description	Overwrites the subscription flags, creating it under this id when it does not exist. The user and plan cannot change.
//	@Tags			User Memberships
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"User membership ID (ULID)"
//	@Param			request	body		membersdk.UserMembershipRequest		true	"Subscription"
//	@Success		200		{object}	membersdk.UserMembershipResponse	"Replaced subscription"
//	@Success		201		{object}	membersdk.UserMembershipResponse	"Created subscription"
//	@Failure		400		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	membersdk.ErrorResponse				"user or plan not found"
//	@Failure		409		{object}	membersdk.ErrorResponse				"error, error_description"
//	@Router			/v1/user-memberships/{id} [put].
func (h *UserMembershipsHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req membersdk.UserMembershipRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	in, err := associationInput(req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	um, created, err := h.UserMembershipService.ReplaceUserMembership(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, createdStatus(created), toUserMembershipResponse(um))
}

// HandleValidate handles POST /v1/user-memberships/{id}/validate
//
//	@Summary		Validate User Membership
//	@Description	Marks the subscription as paid and promotes the user to active_member.
//	@Tags			User Memberships
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string								true	"User membership ID (ULID)"
//	@Success		200	{object}	membersdk.UserMembershipResponse	"Validated subscription"
//	@Failure		400	{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		401	{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		403	{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		404	{object}	membersdk.ErrorResponse				"error, error_description"
//	@Router			/v1/user-memberships/{id}/validate [post].
func (h *UserMembershipsHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	um, err := h.UserMembershipService.ValidateUserMembership(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserMembershipResponse(um))
}

// HandleDelete handles DELETE /v1/user-memberships/{id}
//
//	@Summary		Delete User Membership
//	@Description	Removes the subscription. Roles already granted are kept.
//	@Tags			User Memberships
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User membership ID (ULID)"
//	@Success		204	"Subscription deleted"
//	@Failure		400	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		401	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	membersdk.ErrorResponse	"error, error_description"
//	@Router			/v1/user-memberships/{id} [delete].
func (h *UserMembershipsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.UserMembershipService.DeleteUserMembership(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListForUser handles GET /v1/users/{id}/memberships
//
//	@Summary		List Memberships of User
//	@Description	Returns the subscriptions of a user with their plans, newest first.
//	@Tags			User Memberships
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string									true	"User ID (ULID)"
//	@Success		200	{object}	membersdk.ListUserMembershipsResponse	"user_memberships"
//	@Failure		400	{object}	membersdk.ErrorResponse					"error, error_description"
//	@Failure		401	{object}	membersdk.ErrorResponse					"error, error_description"
//	@Failure		403	{object}	membersdk.ErrorResponse					"error, error_description"
//	@Failure		404	{object}	membersdk.ErrorResponse					"error, error_description"
//	@Router			/v1/users/{id}/memberships [get].
func (h *UserMembershipsHandler) HandleListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	items, err := h.UserMembershipService.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, membersdk.ListUserMembershipsResponse{
		UserMemberships: toUserMembershipResponses(items),
	})
}

// HandleActiveForUser handles GET /v1/users/{id}/memberships/active
//
//	@Summary		Get Active Membership of User
//	@Description	Returns the newest subscription of the user whose plan is running now.
//	@Tags			User Memberships
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string								true	"User ID (ULID)"
//	@Success		200	{object}	membersdk.UserMembershipResponse	"Subscription"
//	@Failure		400	{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		401	{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		403	{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		404	{object}	membersdk.ErrorResponse				"no active membership"
//	@Router			/v1/users/{id}/memberships/active [get].
func (h *UserMembershipsHandler) HandleActiveForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	um, err := h.UserMembershipService.GetActiveForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserMembershipResponse(um))
}

// HandleGetByPair handles GET /v1/users/{id}/memberships/{membershipID}
//
//	@Summary		Get Membership of User
//	@Description	Returns the subscription of the user to one plan.
//	@Tags			User Memberships
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id				path		string								true	"User ID (ULID)"
//	@Param			membershipID	path		string								true	"Membership ID (ULID)"
//	@Success		200				{object}	membersdk.UserMembershipResponse	"Subscription"
//	@Failure		400				{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		401				{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		403				{object}	membersdk.ErrorResponse				"error, error_description"
//	@Failure		404				{object}	membersdk.ErrorResponse				"error, error_description"
//	@Router			/v1/users/{id}/memberships/{membershipID} [get].
func (h *UserMembershipsHandler) HandleGetByPair(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	membershipID, err := pathID(r, "membershipID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	um, err := h.UserMembershipService.GetUserMembershipByPair(r.Context(), userID, membershipID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserMembershipResponse(um))
}

// associationInput parses the ids of req. The ulid validator already ran, so
// errors here only come from hand-built requests.
func associationInput(req membersdk.UserMembershipRequest) (service.AssociationInput, error) {
	userID, err := idx.Parse(req.UserID)
	if err != nil {
		return service.AssociationInput{}, fmt.Errorf("%w: user_id must be a valid ULID", httpx.ErrBadRequest)
	}
	membershipID, err := idx.Parse(req.MembershipID)
	if err != nil {
		return service.AssociationInput{}, fmt.Errorf("%w: membership_id must be a valid ULID", httpx.ErrBadRequest)
	}
	return service.AssociationInput{
		UserID:                    userID,
		MembershipID:              membershipID,
		IsPaid:                    req.IsPaid,
		HasNewsletterSubscription: req.HasNewsletterSubscription,
		HasShiftsSubscription:     req.HasShiftsSubscription,
	}, nil
}
