package store

import (
	"context"
	"fmt"
	"time"

	"github.com/layer-3/gatecheck/core"
	"github.com/layer-3/gatecheck/ports"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis implementation of the ResultStore interface.
// Settled results are shared across replicas, so a token verified by one
// instance is served from cache by all of them.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a new Redis store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "gatecheck:result:",
	}
}

var _ ports.ResultStore = (*RedisStore)(nil)

// key digests the token so raw captcha tokens never land in Redis
func (s *RedisStore) key(token string) string {
	return s.prefix + core.TokenDigest(token)
}

// Get returns the cached outcome for a token. Expiry is native to Redis,
// so a missing key covers both unknown and expired tokens.
func (s *RedisStore) Get(ctx context.Context, token string) (bool, bool, error) {
	val, err := s.client.Get(ctx, s.key(token)).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("failed to read result: %w", err)
	}

	return val == "1", true, nil
}

// Set records a settled outcome with an expiration time
func (s *RedisStore) Set(ctx context.Context, token string, ok bool, ttl time.Duration) error {
	val := "0"
	if ok {
		val = "1"
	}

	if err := s.client.Set(ctx, s.key(token), val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store result: %w", err)
	}

	return nil
}
