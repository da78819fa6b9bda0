package membersdk

import (
	"context"
	"net/http"
)

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if _, err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service and its dependencies are ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if _, err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// ListRoles returns the role catalog. It needs no token.
func (c *SDKClient) ListRoles(ctx context.Context) (*ListRolesResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/roles", nil)
	if err != nil {
		return nil, err
	}

	var roles ListRolesResponse
	if _, err := decodeJSON(resp, &roles, http.StatusOK); err != nil {
		return nil, err
	}
	return &roles, nil
}
