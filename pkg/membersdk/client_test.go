package membersdk

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionSendsBearerToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		require.Equal(t, "/v1/users", r.URL.Path)
		require.Equal(t, "10", r.URL.Query().Get("limit"))
		require.Empty(t, r.URL.Query().Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ListUsersResponse{Users: []UserResponse{{ID: "u1", Email: "a@example.com"}}})
	}))
	t.Cleanup(srv.Close)

	session := NewSDKClient(srv.URL + "/").NewSession("tok-1")
	users, err := session.ListUsers(t.Context(), Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, users.Users, 1)
	require.Equal(t, "a@example.com", users.Users[0].Email)
}

func TestReplaceReportsCreation(t *testing.T) {
	t.Parallel()

	status := http.StatusCreated
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req UserRequest
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &req))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(UserResponse{ID: "u1", Email: req.Email})
	}))
	t.Cleanup(srv.Close)

	session := NewSDKClient(srv.URL).NewSession("tok")

	u, created, err := session.ReplaceUser(t.Context(), "u1", UserRequest{Email: "b@example.com"})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "b@example.com", u.Email)

	status = http.StatusOK
	_, created, err = session.ReplaceUser(t.Context(), "u1", UserRequest{Email: "b@example.com"})
	require.NoError(t, err)
	require.False(t, created)
}

func TestErrorResponses(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/memberships/missing":
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: ErrorCodeNotFound, ErrorDescription: "membership not found"})
		case "/v1/memberships/forbidden":
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(ErrorResponse{
				Error:            ErrorCodeInsufficientPermissions,
				ErrorDescription: "insufficient permissions: missing membership:delete",
			})
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}
	}))
	t.Cleanup(srv.Close)

	session := NewSDKClient(srv.URL).NewSession("tok")

	_, err := session.GetMembership(t.Context(), "missing")
	require.True(t, IsNotFound(err))

	err = session.DeleteMembership(t.Context(), "forbidden")
	require.True(t, IsForbidden(err))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeInsufficientPermissions, apiErr.Code)
	require.Contains(t, apiErr.Description, "membership:delete")

	_, err = session.GetMembership(t.Context(), "other")
	require.Equal(t, http.StatusBadGateway, StatusOf(err))
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
}

func TestWithPage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/v1/users", withPage("/v1/users", Page{}))
	require.Equal(t, "/v1/users?limit=5&offset=10", withPage("/v1/users", Page{Limit: 5, Offset: 10}))
}
