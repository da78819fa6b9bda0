package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/barcommun/internal/membership/service"
	"github.com/aussiebroadwan/barcommun/pkg/httpx"
	"github.com/aussiebroadwan/barcommun/pkg/membersdk"
	"github.com/aussiebroadwan/barcommun/pkg/slogx"
)

// writeServiceError maps service sentinels onto HTTP responses. Anything it
// does not recognise is logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, httpx.ErrBadRequest):
		httpx.WriteError(w, http.StatusBadRequest, membersdk.ErrorCodeInvalidRequest,
			strings.TrimPrefix(err.Error(), httpx.ErrBadRequest.Error()+": "))

	case errors.Is(err, service.ErrInvalidRoles),
		errors.Is(err, service.ErrInvalidMembershipWindow),
		errors.Is(err, service.ErrInvalidPrice):
		httpx.WriteError(w, http.StatusBadRequest, membersdk.ErrorCodeInvalidRequest, err.Error())

	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrMembershipNotFound),
		errors.Is(err, service.ErrAssociationNotFound),
		errors.Is(err, service.ErrNoActiveMembership):
		httpx.WriteError(w, http.StatusNotFound, membersdk.ErrorCodeNotFound, err.Error())

	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUserIDTaken),
		errors.Is(err, service.ErrMembershipIDTaken),
		errors.Is(err, service.ErrAlreadyAssociated),
		errors.Is(err, service.ErrAssociationConflict):
		httpx.WriteError(w, http.StatusConflict, membersdk.ErrorCodeConflict, err.Error())

	case errors.Is(err, service.ErrAdminGrantForbidden):
		httpx.WriteError(w, http.StatusForbidden, membersdk.ErrorCodeInsufficientPermissions, err.Error())

	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, membersdk.ErrorCodeServerError, "internal server error")
	}
}
