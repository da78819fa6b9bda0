package membersdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListUserMemberships requires user-membership:read.
func (s *Session) ListUserMemberships(ctx context.Context, page Page) (*ListUserMembershipsResponse, error) {
	return s.associationList(ctx, withPage("/v1/user-memberships", page))
}

// ListMembershipsOfUser requires user:read and user-membership:read.
func (s *Session) ListMembershipsOfUser(ctx context.Context, userID string) (*ListUserMembershipsResponse, error) {
	return s.associationList(ctx, "/v1/users/"+url.PathEscape(userID)+"/memberships")
}

// GetActiveMembershipOfUser requires user:read and user-membership:read.
func (s *Session) GetActiveMembershipOfUser(ctx context.Context, userID string) (*UserMembershipResponse, error) {
	return s.associationCall(ctx, http.MethodGet,
		"/v1/users/"+url.PathEscape(userID)+"/memberships/active", nil, http.StatusOK)
}

// GetUserMembershipByPair requires user:read and user-membership:read.
func (s *Session) GetUserMembershipByPair(ctx context.Context, userID, membershipID string) (*UserMembershipResponse, error) {
	return s.associationCall(ctx, http.MethodGet,
		"/v1/users/"+url.PathEscape(userID)+"/memberships/"+url.PathEscape(membershipID), nil, http.StatusOK)
}

// CreateUserMembership requires user-membership:write.
func (s *Session) CreateUserMembership(ctx context.Context, req UserMembershipRequest) (*UserMembershipResponse, error) {
	return s.associationCall(ctx, http.MethodPost, "/v1/user-memberships", req, http.StatusCreated)
}

// GetUserMembership requires user-membership:read.
func (s *Session) GetUserMembership(ctx context.Context, id string) (*UserMembershipResponse, error) {
	return s.associationCall(ctx, http.MethodGet, "/v1/user-memberships/"+url.PathEscape(id), nil, http.StatusOK)
}

// PatchUserMembership requires user-membership:write.
func (s *Session) PatchUserMembership(
	ctx context.Context,
	id string,
	req PatchUserMembershipRequest,
) (*UserMembershipResponse, error) {
	return s.associationCall(ctx, http.MethodPatch, "/v1/user-memberships/"+url.PathEscape(id), req, http.StatusOK)
}

// ReplaceUserMembership requires user-membership:write.
func (s *Session) ReplaceUserMembership(
	ctx context.Context,
	id string,
	req UserMembershipRequest,
) (um *UserMembershipResponse, created bool, err error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/user-memberships/"+url.PathEscape(id), req)
	if err != nil {
		return nil, false, err
	}

	var out UserMembershipResponse
	status, err := decodeJSON(resp, &out, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, false, err
	}
	return &out, status == http.StatusCreated, nil
}

// ValidateUserMembership requires user-membership:validate. It marks the
// association paid, which promotes the user to active member.
func (s *Session) ValidateUserMembership(ctx context.Context, id string) (*UserMembershipResponse, error) {
	return s.associationCall(ctx, http.MethodPost,
		"/v1/user-memberships/"+url.PathEscape(id)+"/validate", nil, http.StatusOK)
}

// DeleteUserMembership requires user-membership:delete.
func (s *Session) DeleteUserMembership(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/user-memberships/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (s *Session) associationList(ctx context.Context, path string) (*ListUserMembershipsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var list ListUserMembershipsResponse
	if _, err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *Session) associationCall(
	ctx context.Context,
	method, path string,
	body any,
	expected int,
) (*UserMembershipResponse, error) {
	resp, err := s.doAuthRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	var um UserMembershipResponse
	if _, err := decodeJSON(resp, &um, expected); err != nil {
		return nil, err
	}
	return &um, nil
}
