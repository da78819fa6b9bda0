package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	"github.com/stretchr/testify/require"
)

func TestMembershipWindow(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 8, 31, 23, 59, 59, 0, time.UTC)
	m := domain.Membership{StartAt: start, EndAt: end}

	require.True(t, m.ValidWindow())
	require.True(t, m.ActiveAt(start))
	require.True(t, m.ActiveAt(end))
	require.True(t, m.ActiveAt(start.Add(24*time.Hour)))
	require.False(t, m.ActiveAt(start.Add(-time.Second)))
	require.False(t, m.ActiveAt(end.Add(time.Second)))

	require.False(t, domain.Membership{StartAt: start, EndAt: start}.ValidWindow())
	require.False(t, domain.Membership{StartAt: end, EndAt: start}.ValidWindow())
}

func TestDefaultRoles(t *testing.T) {
	require.Equal(t, authz.Roles{authz.RoleUser}, domain.DefaultRoles())
}
