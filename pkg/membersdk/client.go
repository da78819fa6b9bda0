package membersdk

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// SDKClient talks to the membership service. It serves public endpoints and
// hands out Sessions for authenticated calls.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client with a 10 second timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSession returns a Session sending accessToken as its bearer token.
func (c *SDKClient) NewSession(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// Session performs calls on behalf of one caller.
type Session struct {
	client *SDKClient

	mu          sync.RWMutex
	accessToken string
}

// AccessToken returns the current bearer token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// SetAccessToken swaps the bearer token, e.g. after the caller refreshed it
// with the identity provider.
func (s *Session) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}
