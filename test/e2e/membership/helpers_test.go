//go:build e2e

package membership_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/barcommun/pkg/jwtx"
	"github.com/aussiebroadwan/barcommun/pkg/membersdk"
)

/*
 * Common constants and helpers for the membership service end-to-end tests.
 * The service only verifies tokens, so the tests play the identity provider:
 * they hold an Ed25519 key, hand its public half to the container and mint
 * tokens for whatever roles a scenario needs.
 */

const (
	testImageName = "barcommun-membership-test:latest"

	tokenIssuer   = "https://auth.barcommun.test"
	tokenAudience = "membership"
	tokenKeyID    = "e2e-key-001"
	publicKeyPath = "/data/issuer.pem"
)

// issuerKey signs every token of the run. It is generated once in TestMain.
var issuerKey ed25519.PrivateKey

// TestMain builds the Docker image once before all tests and removes it after.
func TestMain(m *testing.M) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate issuer key: %v\n", err)
		os.Exit(1)
	}
	issuerKey = priv

	fmt.Fprintf(os.Stdout, "Building Membership Service Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Membership Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/membership/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// writePublicKey stores the PEM public half of issuerKey in a temp dir.
func writePublicKey(t *testing.T) string {
	t.Helper()

	der, err := x509.MarshalPKIXPublicKey(issuerKey.Public())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "issuer.pem")
	block := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	require.NoError(t, os.WriteFile(path, block, 0o644))
	return path
}

// setupMembershipContainer starts the service and returns its base URL.
// extraEnv overrides the defaults, e.g. to restore production rate limits.
func setupMembershipContainer(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"ENV":                  "test",
		"LOG_LEVEL":            "info",
		"LOG_FORMAT":           "json",
		"DATABASE_DRIVER":      "sqlite",
		"DATABASE_FILE":        "/data/membership.db",
		"AUTH_ISSUER":          tokenIssuer,
		"AUTH_AUDIENCE":        tokenAudience,
		"AUTH_PUBLIC_KEY_FILE": publicKeyPath,
		"AUTH_KEY_ID":          tokenKeyID,
		// Scenarios fire many requests in a row.
		"RATE_LIMIT_READ":  "10000",
		"RATE_LIMIT_WRITE": "10000",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		Files: []testcontainers.ContainerFile{{
			HostFilePath:      writePublicKey(t),
			ContainerFilePath: publicKeyPath,
			FileMode:          0o644,
		}},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// mintToken signs an access token for sub holding roles.
func mintToken(t *testing.T, sub string, roles ...string) string {
	t.Helper()

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodEdDSA, jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   sub,
			Audience:  jwt.ClaimStrings{tokenAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
		},
		Roles: roles,
	})
	tok.Header["kid"] = tokenKeyID

	signed, err := tok.SignedString(issuerKey)
	require.NoError(t, err)
	return signed
}

// sessionFor returns a session acting as sub with roles.
func sessionFor(t *testing.T, client *membersdk.SDKClient, sub string, roles ...string) *membersdk.Session {
	t.Helper()
	return client.NewSession(mintToken(t, sub, roles...))
}

// currentPlan is a plan that started an hour ago and runs for a year.
func currentPlan(name string) membersdk.MembershipRequest {
	start := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	return membersdk.MembershipRequest{
		Name:    name,
		Price:   1500,
		StartAt: start,
		EndAt:   start.AddDate(1, 0, 0),
	}
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *membersdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertStatus verifies err is an API error with the given status code.
func assertStatus(t *testing.T, err error, code int, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.Equal(t, code, membersdk.StatusOf(err), "%s: unexpected error %v", context, err)
}
