// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/quill/internal/platform/apperr"
	"github.com/taibuivan/quill/internal/platform/validate"
	"github.com/taibuivan/quill/pkg/pagination"
)

// # Service Layer

// Service orchestrates the Author use-cases.
//
// Input is validated before any repository access. Typed errors
// (BAD_REQUEST, NOT_FOUND, CONFLICT) reach the caller unchanged; anything
// else is wrapped with the failing step.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Queries

/*
ListAuthors runs a paginated search over all authors.

Description: The filter matches the name case-insensitively. Sort is limited
to [SortableFields]; anything else falls back to newest first.

Parameters:
  - context: context.Context
  - request: pagination.Request (normalized here)

Returns:
  - pagination.Result[*Author]: One page with metadata
  - error: Storage failures
*/
func (service *Service) ListAuthors(context context.Context, request pagination.Request) (pagination.Result[*Author], error) {
	request = request.Normalize(SortableFields)

	items, total, err := service.repo.Search(context, request)
	if err != nil {
		return pagination.Result[*Author]{}, wrap(err, "list")
	}

	return pagination.NewResult(items, total, request), nil
}

/*
GetAuthor retrieves one author by id.

Returns:
  - *Author: The stored author
  - error: BAD_REQUEST for a blank id, NOT_FOUND when absent
*/
func (service *Service) GetAuthor(context context.Context, id string) (*Author, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.BadRequest(apperr.MsgIDNotProvided)
	}

	author, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, wrap(err, "get")
	}
	if author == nil {
		return nil, apperr.NotFoundByID(resource, id)
	}

	return author, nil
}

// # Commands

/*
CreateAuthor registers a new author.

Description: Name and email are required and the email must be a bare
address. The email must not already belong to another author.

Returns:
  - *Author: The created author with id and createdAt assigned
  - error: BAD_REQUEST on invalid input, CONFLICT on a taken email
*/
func (service *Service) CreateAuthor(context context.Context, input CreateInput) (*Author, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, maxNameLength)
	validator.Required(FieldEmail, input.Email).MaxLen(FieldEmail, input.Email, maxEmailLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Business: Email must be unique
	existing, err := service.repo.FindByEmail(context, input.Email)
	if err != nil {
		return nil, wrap(err, "create_lookup")
	}
	if existing != nil {
		return nil, apperr.Conflict(apperr.MsgEmailInUse)
	}

	author, err := service.repo.Create(context, input)
	if err != nil {
		return nil, wrap(err, "create")
	}

	service.logger.Info("author_created",
		slog.String("author_id", author.ID),
		slog.String("email", author.Email),
	)

	return author, nil
}

/*
UpdateAuthor applies a partial update to an existing author.

Description: Provided fields are validated first, then the author is
loaded and the delta applied. Changing the email to one owned by a
different author is a conflict; keeping the current email is not.

Parameters:
  - context: context.Context
  - id: string
  - input: UpdateInput (nil fields are left unchanged)

Returns:
  - *Author: The updated author
  - error: BAD_REQUEST, NOT_FOUND or CONFLICT
*/
func (service *Service) UpdateAuthor(context context.Context, id string, input UpdateInput) (*Author, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.BadRequest(apperr.MsgIDNotProvided)
	}

	validator := &validate.Validator{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		input.Name = &name
		validator.Required(FieldName, name).MaxLen(FieldName, name, maxNameLength)
	}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		input.Email = &email
		validator.Required(FieldEmail, email).MaxLen(FieldEmail, email, maxEmailLength)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	author, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, wrap(err, "update_lookup")
	}
	if author == nil {
		return nil, apperr.NotFoundByID(resource, id)
	}

	// Business: The new email must not belong to someone else
	if input.Email != nil && *input.Email != author.Email {
		owner, err := service.repo.FindByEmail(context, *input.Email)
		if err != nil {
			return nil, wrap(err, "update_email_lookup")
		}
		if owner != nil && owner.ID != author.ID {
			return nil, apperr.Conflict(apperr.MsgEmailInUse)
		}
	}

	// Apply delta updates
	if input.Name != nil {
		author.Name = *input.Name
	}
	if input.Email != nil {
		author.Email = *input.Email
	}

	updated, err := service.repo.Update(context, author)
	if err != nil {
		return nil, wrap(err, "update")
	}

	service.logger.Info("author_updated", slog.String("author_id", updated.ID))

	return updated, nil
}

/*
DeleteAuthor removes an author and returns its last state.

Returns:
  - *Author: The author as it was before deletion
  - error: BAD_REQUEST for a blank id, NOT_FOUND when absent, CONFLICT
    while posts still reference the author
*/
func (service *Service) DeleteAuthor(context context.Context, id string) (*Author, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.BadRequest(apperr.MsgIDNotProvided)
	}

	deleted, err := service.repo.Delete(context, id)
	if err != nil {
		return nil, wrap(err, "delete")
	}

	service.logger.Warn("author_deleted", slog.String("author_id", id))

	return deleted, nil
}

// wrap leaves typed application errors untouched and annotates the rest.
func wrap(err error, step string) error {
	if apperr.IsAppError(err) {
		return err
	}
	return fmt.Errorf("author_service_%s_failed: %w", step, err)
}
