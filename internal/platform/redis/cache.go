// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON-encoded values of type T under a fixed key prefix.
//
// # Concurrency
//
// Cache is safe for concurrent use; it holds no state besides the client.
type Cache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCache creates a [Cache] writing keys as prefix+id with the given TTL.
func NewCache[T any](client *redis.Client, prefix string, ttl time.Duration) *Cache[T] {
	return &Cache[T]{client: client, prefix: prefix, ttl: ttl}
}

// Key returns the Redis key for id.
func (cache *Cache[T]) Key(id string) string {
	return cache.prefix + id
}

/*
Get loads the value stored for id.

Returns:
  - *T: The decoded value, nil on a miss
  - error: Connectivity or decoding failures (a miss is not an error)
*/
func (cache *Cache[T]) Get(context context.Context, id string) (*T, error) {
	raw, err := cache.client.Get(context, cache.Key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_cache_get_failed: %w", err)
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("redis_cache_decode_failed: %w", err)
	}

	return &value, nil
}

// Set stores value for id with the cache TTL.
func (cache *Cache[T]) Set(context context.Context, id string, value *T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, cache.Key(id), raw, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_cache_set_failed: %w", err)
	}

	return nil
}

// Add stores value for id only when no entry exists yet. It reports whether
// the value was written.
func (cache *Cache[T]) Add(context context.Context, id string, value *T) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("redis_cache_encode_failed: %w", err)
	}

	added, err := cache.client.SetNX(context, cache.Key(id), raw, cache.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis_cache_add_failed: %w", err)
	}

	return added, nil
}

// Delete evicts the entry for id. Evicting a missing key is not an error.
func (cache *Cache[T]) Delete(context context.Context, id string) error {
	if err := cache.client.Del(context, cache.Key(id)).Err(); err != nil {
		return fmt.Errorf("redis_cache_delete_failed: %w", err)
	}
	return nil
}
