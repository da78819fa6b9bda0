package sqlite_test

import (
	"testing"

	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/internal/membership/store/drivers/sqlite"
	"github.com/aussiebroadwan/barcommun/internal/membership/store/storetest"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestStore(t *testing.T) {
	storetest.Run(t, newMemoryStore)
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newMemoryStore(t)
	require.NoError(t, s.ApplyMigrations())
}

func TestFileStore(t *testing.T) {
	dsn := sqlite.DSN(t.TempDir() + "/membership.db")

	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(t.Context()))
	require.NoError(t, s.Close())
}
