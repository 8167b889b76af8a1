// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisKey namespaces roster lists in Redis.
func redisKey(key string) string {
	return "roster:" + key
}

// RedisStore persists lists in Redis, one list per key. Useful when several
// gateway instances share a roster.
type RedisStore struct {
	client redis.Cmdable
}

// NewRedisStore creates a store over an existing Redis client.
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key string) ([]string, error) {
	names, err := s.client.LRange(ctx, redisKey(key), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: failed to read roster %q: %w", key, err)
	}
	return names, nil
}

// Set implements Store by atomically replacing the list.
func (s *RedisStore) Set(ctx context.Context, key string, names []string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, redisKey(key))
	if len(names) > 0 {
		args := make([]interface{}, len(names))
		for i, n := range names {
			args[i] = n
		}
		pipe.RPush(ctx, redisKey(key), args...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis: failed to write roster %q: %w", key, err)
	}
	return nil
}
