// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/taibuivan/quill/internal/platform/apperr"
	"github.com/taibuivan/quill/pkg/pagination"
	"github.com/taibuivan/quill/pkg/uuid"
)

// MemoryRepository is a process-local [Repository].
//
// # Concurrency
//
// All methods are safe for concurrent use. Writes hold an exclusive lock so
// the email uniqueness check and the insert are atomic. Returned values are
// copies; callers may mutate them freely.
type MemoryRepository struct {
	mu         sync.RWMutex
	byID       map[string]*Author
	order      []string // ids in creation order
	now        func() time.Time
	referenced ReferenceChecker
}

// ReferenceChecker reports whether other records still point at an author.
type ReferenceChecker func(context context.Context, authorID string) (bool, error)

// MemoryOption configures a [MemoryRepository].
type MemoryOption func(*MemoryRepository)

// WithClock overrides the clock used for CreatedAt.
func WithClock(now func() time.Time) MemoryOption {
	return func(repository *MemoryRepository) {
		repository.now = now
	}
}

// RestrictDelete makes Delete fail with a Conflict while check reports the
// author as referenced, matching the foreign key of the SQL store.
//
// The check runs before the delete lock is taken, so a post created in
// between is not seen.
func (repository *MemoryRepository) RestrictDelete(check ReferenceChecker) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.referenced = check
}

// NewMemoryRepository returns an empty [MemoryRepository].
func NewMemoryRepository(opts ...MemoryOption) *MemoryRepository {
	repository := &MemoryRepository{
		byID: make(map[string]*Author),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(repository)
	}
	return repository
}

func (repository *MemoryRepository) Create(_ context.Context, input CreateInput) (*Author, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.emailOwner(input.Email) != "" {
		return nil, apperr.Conflict(apperr.MsgEmailInUse)
	}

	author := &Author{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: repository.now(),
	}

	repository.byID[author.ID] = author
	repository.order = append(repository.order, author.ID)

	return clone(author), nil
}

func (repository *MemoryRepository) Update(_ context.Context, author *Author) (*Author, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	current, ok := repository.byID[author.ID]
	if !ok {
		return nil, apperr.NotFoundByID(resource, author.ID)
	}

	if owner := repository.emailOwner(author.Email); owner != "" && owner != author.ID {
		return nil, apperr.Conflict(apperr.MsgEmailInUse)
	}

	// Identity and creation time are immutable
	current.Name = author.Name
	current.Email = author.Email

	return clone(current), nil
}

func (repository *MemoryRepository) Delete(context context.Context, id string) (*Author, error) {
	repository.mu.RLock()
	referenced := repository.referenced
	repository.mu.RUnlock()

	if referenced != nil {
		inUse, err := referenced(context, id)
		if err != nil {
			return nil, fmt.Errorf("author_memory_reference_check_failed: %w", err)
		}
		if inUse {
			return nil, apperr.Conflict(apperr.MsgAuthorHasPosts)
		}
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	author, ok := repository.byID[id]
	if !ok {
		return nil, apperr.NotFoundByID(resource, id)
	}

	delete(repository.byID, id)
	for i, existing := range repository.order {
		if existing == id {
			repository.order = append(repository.order[:i], repository.order[i+1:]...)
			break
		}
	}

	return author, nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Author, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	author, ok := repository.byID[id]
	if !ok {
		return nil, nil
	}
	return clone(author), nil
}

func (repository *MemoryRepository) FindByEmail(_ context.Context, email string) (*Author, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	id := repository.emailOwner(email)
	if id == "" {
		return nil, nil
	}
	return clone(repository.byID[id]), nil
}

// Search snapshots the authors in creation order and hands them to the
// shared engine.
func (repository *MemoryRepository) Search(_ context.Context, request pagination.Request) ([]*Author, int, error) {
	repository.mu.RLock()
	snapshot := make([]*Author, 0, len(repository.order))
	for _, id := range repository.order {
		snapshot = append(snapshot, clone(repository.byID[id]))
	}
	repository.mu.RUnlock()

	result := pagination.Search(snapshot, request, SearchSchema)
	return result.Items, result.Total, nil
}

// emailOwner returns the id holding email, or "". Caller must hold the lock.
func (repository *MemoryRepository) emailOwner(email string) string {
	for id, author := range repository.byID {
		if author.Email == email {
			return id
		}
	}
	return ""
}

func clone(author *Author) *Author {
	copied := *author
	return &copied
}
