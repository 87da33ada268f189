// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/quill/internal/platform/apperr"
	"github.com/taibuivan/quill/internal/platform/validate"
	"github.com/taibuivan/quill/pkg/pagination"
	"github.com/taibuivan/quill/pkg/slug"
)

// Service orchestrates the Post use-cases.
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

// ListPosts runs a paginated search over all posts. The filter matches the title.
func (service *Service) ListPosts(context context.Context, request pagination.Request) (pagination.Result[*Post], error) {
	request = request.Normalize(SortableFields)

	items, total, err := service.repo.Search(context, request)
	if err != nil {
		return pagination.Result[*Post]{}, wrap(err, "list")
	}

	return pagination.NewResult(items, total, request), nil
}

// GetPost retrieves one post by id.
func (service *Service) GetPost(context context.Context, id string) (*Post, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.BadRequest(apperr.MsgIDNotProvided)
	}

	post, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, wrap(err, "get")
	}
	if post == nil {
		return nil, apperr.NotFoundByID(resource, id)
	}

	return post, nil
}

/*
CreatePost publishes or drafts a new post.

Description: Title, content and author id are required. A blank slug is
derived from the title; the result must be a valid slug either way.

Returns:
  - *Post: The created post
  - error: BAD_REQUEST on invalid input, NOT_FOUND for an unknown author,
    CONFLICT on a taken slug
*/
func (service *Service) CreatePost(context context.Context, input CreateInput) (*Post, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.AuthorID = strings.TrimSpace(input.AuthorID)
	input.Slug = strings.TrimSpace(input.Slug)
	if input.Slug == "" {
		input.Slug = slug.From(input.Title)
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, maxTitleLength)
	validator.Required(FieldContent, input.Content)
	validator.Required(FieldAuthorID, input.AuthorID)
	validator.Slug(FieldSlug, input.Slug).MaxLen(FieldSlug, input.Slug, slug.MaxLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	post, err := service.repo.Create(context, input)
	if err != nil {
		return nil, wrap(err, "create")
	}

	service.logger.Info("post_created",
		slog.String("post_id", post.ID),
		slog.String("author_id", post.AuthorID),
		slog.String("slug", post.Slug),
	)

	return post, nil
}

// wrap leaves typed application errors untouched and annotates the rest.
func wrap(err error, step string) error {
	if apperr.IsAppError(err) {
		return err
	}
	return fmt.Errorf("post_service_%s_failed: %w", step, err)
}
