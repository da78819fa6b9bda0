package membersdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListMemberships requires membership:read.
func (s *Session) ListMemberships(ctx context.Context, page Page) (*ListMembershipsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, withPage("/v1/memberships", page), nil)
	if err != nil {
		return nil, err
	}

	var list ListMembershipsResponse
	if _, err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateMembership requires membership:write.
func (s *Session) CreateMembership(ctx context.Context, req MembershipRequest) (*MembershipResponse, error) {
	return s.membershipCall(ctx, http.MethodPost, "/v1/memberships", req, http.StatusCreated)
}

// GetMembership requires membership:read.
func (s *Session) GetMembership(ctx context.Context, id string) (*MembershipResponse, error) {
	return s.membershipCall(ctx, http.MethodGet, "/v1/memberships/"+url.PathEscape(id), nil, http.StatusOK)
}

// PatchMembership requires membership:write.
func (s *Session) PatchMembership(ctx context.Context, id string, req PatchMembershipRequest) (*MembershipResponse, error) {
	return s.membershipCall(ctx, http.MethodPatch, "/v1/memberships/"+url.PathEscape(id), req, http.StatusOK)
}

// ReplaceMembership requires membership:write.
func (s *Session) ReplaceMembership(
	ctx context.Context,
	id string,
	req MembershipRequest,
) (m *MembershipResponse, created bool, err error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/memberships/"+url.PathEscape(id), req)
	if err != nil {
		return nil, false, err
	}

	var out MembershipResponse
	status, err := decodeJSON(resp, &out, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, false, err
	}
	return &out, status == http.StatusCreated, nil
}

// DeleteMembership requires membership:delete.
func (s *Session) DeleteMembership(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/memberships/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (s *Session) membershipCall(ctx context.Context, method, path string, body any, expected int) (*MembershipResponse, error) {
	resp, err := s.doAuthRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	var m MembershipResponse
	if _, err := decodeJSON(resp, &m, expected); err != nil {
		return nil, err
	}
	return &m, nil
}
