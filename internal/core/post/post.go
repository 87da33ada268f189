// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package post implements the Post use-cases: create, get and search.
//
// Posts are immutable once created. Each post references an existing
// author and carries a unique slug.
package post

import (
	"context"
	"time"

	"github.com/taibuivan/quill/internal/core/author"
	"github.com/taibuivan/quill/pkg/pagination"
)

// Post is a published or draft article written by one author.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	AuthorID  string    `json:"authorId"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateInput carries the fields of a new [Post]. An empty Slug is derived
// from the title.
type CreateInput struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Slug      string `json:"slug"`
	AuthorID  string `json:"authorId"`
	Published bool   `json:"published"`
}

// AuthorFinder resolves the author a post references.
// [author.Repository] satisfies it.
type AuthorFinder interface {
	FindByID(context context.Context, id string) (*author.Author, error)
}

// Global field names for validation
const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldSlug     = "slug"
	FieldAuthorID = "authorId"
)

const maxTitleLength = 300

// Sortable field names accepted in a search request.
const (
	SortTitle     = "title"
	SortSlug      = "slug"
	SortCreatedAt = "created_at"
)

// SortableFields is the search whitelist.
var SortableFields = []string{SortTitle, SortSlug, SortCreatedAt}

// SearchSchema drives the in-memory search engine: the filter matches Title.
var SearchSchema = pagination.Schema[*Post]{
	FilterOn:  func(p *Post) string { return p.Title },
	CreatedAt: func(p *Post) time.Time { return p.CreatedAt },
	Sortable: map[string]pagination.Field[*Post]{
		SortTitle:     pagination.TextField(func(p *Post) string { return p.Title }),
		SortSlug:      pagination.TextField(func(p *Post) string { return p.Slug }),
		SortCreatedAt: pagination.TimeField(func(p *Post) time.Time { return p.CreatedAt }),
	},
}

const (
	resource       = "Post"
	authorResource = "Author"
)
