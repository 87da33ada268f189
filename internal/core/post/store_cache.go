// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"log/slog"

	"github.com/taibuivan/quill/internal/platform/redis"
)

// CachedRepository serves FindByID from Redis when possible. Posts are never
// modified after creation, so entries only expire by TTL.
type CachedRepository struct {
	Repository
	cache  *redis.Cache[Post]
	logger *slog.Logger
}

// NewCachedRepository wraps inner with cache.
func NewCachedRepository(inner Repository, cache *redis.Cache[Post], logger *slog.Logger) *CachedRepository {
	return &CachedRepository{Repository: inner, cache: cache, logger: logger}
}

func (repository *CachedRepository) FindByID(context context.Context, id string) (*Post, error) {
	cached, err := repository.cache.Get(context, id)
	if err != nil {
		repository.logger.Warn("post_cache_read_failed", slog.String("post_id", id), slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	post, err := repository.Repository.FindByID(context, id)
	if err != nil || post == nil {
		return post, err
	}

	if err := repository.cache.Set(context, id, post); err != nil {
		repository.logger.Warn("post_cache_write_failed", slog.String("post_id", id), slog.Any("error", err))
	}

	return post, nil
}
