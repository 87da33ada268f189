// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/quill/internal/platform/redis"
)

type entry struct {
	ID string `json:"id"`
}

// unreachableClient points at a closed port so every command fails fast.
func unreachableClient(t *testing.T) *goredis.Client {
	t.Helper()
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

/*
TestCache_Key verifies key composition.
*/
func TestCache_Key(t *testing.T) {
	cache := redis.NewCache[entry](unreachableClient(t), "quill:author:", time.Minute)
	assert.Equal(t, "quill:author:abc", cache.Key("abc"))
}

/*
TestCache_Unreachable verifies that connectivity failures surface as errors.
*/
func TestCache_Unreachable(t *testing.T) {
	cache := redis.NewCache[entry](unreachableClient(t), "quill:test:", time.Minute)
	ctx := context.Background()

	value, err := cache.Get(ctx, "abc")
	require.Error(t, err)
	assert.Nil(t, value)

	assert.Error(t, cache.Set(ctx, "abc", &entry{ID: "abc"}))

	added, err := cache.Add(ctx, "abc", &entry{ID: "abc"})
	require.Error(t, err)
	assert.False(t, added)

	assert.Error(t, cache.Delete(ctx, "abc"))
}
