// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"log/slog"
)

// EntryCache is the key/value cache behind [CachedRepository]. It is
// satisfied by a Redis cache of [Author] values.
type EntryCache interface {
	Get(context context.Context, id string) (*Author, error)
	Set(context context.Context, id string, value *Author) error
	// Add writes only when the key is absent.
	Add(context context.Context, id string, value *Author) (bool, error)
	Delete(context context.Context, id string) error
}

// CachedRepository is a read-through cache in front of another [Repository]
// for lookups by id.
//
// # Consistency
//
// Read-through fills use [EntryCache.Add], so they never overwrite a value
// written by a concurrent Update. Update evicts before the write and stores
// the new row after it. Delete evicts both before and after the write.
//
// A reader that loaded a row before a concurrent Delete committed can still
// re-add it once the final eviction has run; that entry lives until the TTL.
//
// Cache failures never fail a request: they are logged and the inner
// repository answers.
type CachedRepository struct {
	Repository
	cache  EntryCache
	logger *slog.Logger
}

// NewCachedRepository wraps inner with cache.
func NewCachedRepository(inner Repository, cache EntryCache, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{Repository: inner, cache: cache, logger: logger}
}

func (repository *CachedRepository) FindByID(context context.Context, id string) (*Author, error) {
	cached, err := repository.cache.Get(context, id)
	if err != nil {
		repository.logger.Warn("author_cache_read_failed", slog.String("author_id", id), slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	author, err := repository.Repository.FindByID(context, id)
	if err != nil || author == nil {
		return author, err
	}

	if _, err := repository.cache.Add(context, id, author); err != nil {
		repository.logger.Warn("author_cache_write_failed", slog.String("author_id", id), slog.Any("error", err))
	}

	return author, nil
}

func (repository *CachedRepository) Update(context context.Context, a *Author) (*Author, error) {
	repository.evict(context, a.ID)

	updated, err := repository.Repository.Update(context, a)
	if err != nil {
		return nil, err
	}

	if err := repository.cache.Set(context, updated.ID, updated); err != nil {
		repository.logger.Warn("author_cache_write_failed", slog.String("author_id", updated.ID), slog.Any("error", err))
		repository.evict(context, updated.ID)
	}
	return updated, nil
}

func (repository *CachedRepository) Delete(context context.Context, id string) (*Author, error) {
	repository.evict(context, id)

	deleted, err := repository.Repository.Delete(context, id)
	if err != nil {
		return nil, err
	}

	repository.evict(context, id)
	return deleted, nil
}

func (repository *CachedRepository) evict(context context.Context, id string) {
	if err := repository.cache.Delete(context, id); err != nil {
		repository.logger.Warn("author_cache_evict_failed", slog.String("author_id", id), slog.Any("error", err))
	}
}
