// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/taibuivan/quill/internal/platform/apperr"
	"github.com/taibuivan/quill/pkg/pagination"
	"github.com/taibuivan/quill/pkg/uuid"
)

// MemoryRepository is a process-local [Repository]. Author references are
// checked through an [AuthorFinder] at creation time only.
type MemoryRepository struct {
	mu      sync.RWMutex
	authors AuthorFinder
	byID    map[string]*Post
	bySlug  map[string]string
	order   []string
	now     func() time.Time
}

// MemoryOption configures a [MemoryRepository].
type MemoryOption func(*MemoryRepository)

// WithClock overrides the clock used for CreatedAt.
func WithClock(now func() time.Time) MemoryOption {
	return func(repository *MemoryRepository) {
		repository.now = now
	}
}

// NewMemoryRepository returns an empty [MemoryRepository].
func NewMemoryRepository(authors AuthorFinder, opts ...MemoryOption) *MemoryRepository {
	repository := &MemoryRepository{
		authors: authors,
		byID:    make(map[string]*Post),
		bySlug:  make(map[string]string),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(repository)
	}
	return repository
}

func (repository *MemoryRepository) Create(context context.Context, input CreateInput) (*Post, error) {
	owner, err := repository.authors.FindByID(context, input.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("post_memory_author_lookup_failed: %w", err)
	}
	if owner == nil {
		return nil, apperr.NotFoundByID(authorResource, input.AuthorID)
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, taken := repository.bySlug[input.Slug]; taken {
		return nil, apperr.Conflict(apperr.MsgSlugInUse)
	}

	post := &Post{
		ID:        uuid.New(),
		Title:     input.Title,
		Content:   input.Content,
		Slug:      input.Slug,
		AuthorID:  input.AuthorID,
		Published: input.Published,
		CreatedAt: repository.now(),
	}

	repository.byID[post.ID] = post
	repository.bySlug[post.Slug] = post.ID
	repository.order = append(repository.order, post.ID)

	return clone(post), nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Post, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	post, ok := repository.byID[id]
	if !ok {
		return nil, nil
	}
	return clone(post), nil
}

// HasPostsBy reports whether any stored post belongs to authorID.
func (repository *MemoryRepository) HasPostsBy(_ context.Context, authorID string) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, post := range repository.byID {
		if post.AuthorID == authorID {
			return true, nil
		}
	}
	return false, nil
}

func (repository *MemoryRepository) Search(_ context.Context, request pagination.Request) ([]*Post, int, error) {
	repository.mu.RLock()
	snapshot := make([]*Post, 0, len(repository.order))
	for _, id := range repository.order {
		snapshot = append(snapshot, clone(repository.byID[id]))
	}
	repository.mu.RUnlock()

	result := pagination.Search(snapshot, request, SearchSchema)
	return result.Items, result.Total, nil
}

func clone(post *Post) *Post {
	copied := *post
	return &copied
}
