package cachex_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aussiebroadwan/barcommun/pkg/cachex"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type plan struct {
	ID    string `json:"id"`
	Price int64  `json:"price"`
}

func newStore(t *testing.T, ttl time.Duration) (*cachex.Store[plan], *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return cachex.NewStore[plan](rdb, "membership", ttl), mr
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("miss then hit", func(t *testing.T) {
		s, mr := newStore(t, time.Minute)

		_, err := s.Get(ctx, "a")
		require.ErrorIs(t, err, cachex.ErrMiss)

		require.NoError(t, s.Set(ctx, "a", plan{ID: "a", Price: 2500}))
		require.True(t, mr.Exists("membership:a"))

		got, err := s.Get(ctx, "a")
		require.NoError(t, err)
		require.Equal(t, plan{ID: "a", Price: 2500}, got)
	})

	t.Run("entries expire", func(t *testing.T) {
		s, mr := newStore(t, time.Minute)
		require.NoError(t, s.Set(ctx, "a", plan{ID: "a"}))

		mr.FastForward(2 * time.Minute)
		_, err := s.Get(ctx, "a")
		require.ErrorIs(t, err, cachex.ErrMiss)
	})

	t.Run("delete", func(t *testing.T) {
		s, _ := newStore(t, 0)
		require.NoError(t, s.Set(ctx, "a", plan{ID: "a"}))
		require.NoError(t, s.Set(ctx, "b", plan{ID: "b"}))

		require.NoError(t, s.Delete(ctx, "a", "b", "missing"))
		require.NoError(t, s.Delete(ctx))

		_, err := s.Get(ctx, "b")
		require.ErrorIs(t, err, cachex.ErrMiss)
	})

	t.Run("corrupt entries surface as errors", func(t *testing.T) {
		s, mr := newStore(t, 0)
		require.NoError(t, mr.Set("membership:a", "{not json"))

		_, err := s.Get(ctx, "a")
		require.Error(t, err)
		require.NotErrorIs(t, err, cachex.ErrMiss)
	})

	t.Run("connection errors surface", func(t *testing.T) {
		s, mr := newStore(t, 0)
		mr.Close()

		_, err := s.Get(ctx, "a")
		require.Error(t, err)
		require.NotErrorIs(t, err, cachex.ErrMiss)
	})
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := cachex.Connect(context.Background(), mr.Addr())
	require.NoError(t, err)
	require.NoError(t, client.Close())

	addr := mr.Addr()
	mr.Close()
	_, err = cachex.Connect(context.Background(), addr)
	require.Error(t, err)
}
