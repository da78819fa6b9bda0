package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/internal/membership/store/drivers/sqlite"
	"github.com/aussiebroadwan/barcommun/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testContext() context.Context {
	return slogx.WithContext(context.Background(), slogx.Discard())
}

func seedUser(t *testing.T, svc *UserService, email string) domain.User {
	t.Helper()
	u, err := svc.CreateUser(testContext(), UserInput{Email: email, Firstname: "Lou", Lastname: "Bernard"})
	require.NoError(t, err)
	return u
}

// seedPlan creates a plan that is running right now.
func seedPlan(t *testing.T, svc *MembershipService, name string) domain.Membership {
	t.Helper()
	start := time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Second)
	m, err := svc.CreateMembership(testContext(), MembershipInput{
		Name:    name,
		Price:   1000,
		StartAt: start,
		EndAt:   start.AddDate(1, 0, 0),
	})
	require.NoError(t, err)
	return m
}
