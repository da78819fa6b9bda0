// Package cachex is a small typed read-through cache on top of redis.
package cachex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cachex: miss")

// Connect opens a redis client and pings it.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cachex: ping: %w", err)
	}
	return client, nil
}

// Store caches JSON encoded values of T under prefix:key.
type Store[T any] struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewStore returns a Store. A zero ttl keeps entries until they are deleted.
func NewStore[T any](rdb redis.Cmdable, prefix string, ttl time.Duration) *Store[T] {
	return &Store[T]{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *Store[T]) key(k string) string { return s.prefix + ":" + k }

// Get loads key. It returns ErrMiss when nothing is cached.
func (s *Store[T]) Get(ctx context.Context, key string) (T, error) {
	var v T

	raw, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, ErrMiss
	}
	if err != nil {
		return v, fmt.Errorf("cachex: get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("cachex: decode %s: %w", key, err)
	}
	return v, nil
}

// Set stores v under key.
func (s *Store[T]) Set(ctx context.Context, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cachex: encode %s: %w", key, err)
	}
	if err := s.rdb.Set(ctx, s.key(key), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("cachex: set %s: %w", key, err)
	}
	return nil
}

// Delete removes keys. Missing keys are not an error.
func (s *Store[T]) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	if err := s.rdb.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("cachex: delete: %w", err)
	}
	return nil
}
