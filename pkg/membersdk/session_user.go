package membersdk

import (
	"context"
	"net/http"
	"net/url"
)

// WhoAmI describes the caller: roles, effective permissions and, when the
// token subject is a known user, the user record.
func (s *Session) WhoAmI(ctx context.Context) (*WhoAmIResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/me", nil)
	if err != nil {
		return nil, err
	}

	var me WhoAmIResponse
	if _, err := decodeJSON(resp, &me, http.StatusOK); err != nil {
		return nil, err
	}
	return &me, nil
}

// ListUsers requires user:read.
func (s *Session) ListUsers(ctx context.Context, page Page) (*ListUsersResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, withPage("/v1/users", page), nil)
	if err != nil {
		return nil, err
	}

	var users ListUsersResponse
	if _, err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}
	return &users, nil
}

// CreateUser requires user:write.
func (s *Session) CreateUser(ctx context.Context, req UserRequest) (*UserResponse, error) {
	return s.userCall(ctx, http.MethodPost, "/v1/users", req, http.StatusCreated)
}

// GetUser requires user:read.
func (s *Session) GetUser(ctx context.Context, id string) (*UserResponse, error) {
	return s.userCall(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(id), nil, http.StatusOK)
}

// PatchUser requires user:write.
func (s *Session) PatchUser(ctx context.Context, id string, req PatchUserRequest) (*UserResponse, error) {
	return s.userCall(ctx, http.MethodPatch, "/v1/users/"+url.PathEscape(id), req, http.StatusOK)
}

// ReplaceUser requires user:write. created reports whether the user was
// created by this call.
func (s *Session) ReplaceUser(ctx context.Context, id string, req UserRequest) (user *UserResponse, created bool, err error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/users/"+url.PathEscape(id), req)
	if err != nil {
		return nil, false, err
	}

	var u UserResponse
	status, err := decodeJSON(resp, &u, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, false, err
	}
	return &u, status == http.StatusCreated, nil
}

// DeleteUser requires user:delete.
func (s *Session) DeleteUser(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/users/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// UpdateUserRoles requires user:update:roles. Granting or revoking admin also
// requires the caller to be an admin.
func (s *Session) UpdateUserRoles(ctx context.Context, id string, roles []string) (*UserResponse, error) {
	return s.userCall(ctx, http.MethodPut, "/v1/users/"+url.PathEscape(id)+"/roles",
		UpdateRolesRequest{Roles: roles}, http.StatusOK)
}

func (s *Session) userCall(ctx context.Context, method, path string, body any, expected int) (*UserResponse, error) {
	resp, err := s.doAuthRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	var u UserResponse
	if _, err := decodeJSON(resp, &u, expected); err != nil {
		return nil, err
	}
	return &u, nil
}
