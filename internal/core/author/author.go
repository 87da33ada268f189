// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package author implements the Author use-cases: create, get, update, delete
// and search, plus the stores that back them.
package author

import (
	"time"

	"github.com/taibuivan/quill/pkg/pagination"
)

// Author is a writer identified by a unique email.
//
// ID and CreatedAt are assigned by the store on creation and never change.
type Author struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateInput carries the fields required to create an [Author].
type CreateInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateInput carries a partial update. A nil field is left unchanged.
type UpdateInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Global field names for validation
const (
	FieldName  = "name"
	FieldEmail = "email"
)

// Field limits
const (
	maxNameLength  = 200
	maxEmailLength = 254
)

// Sortable field names accepted in a search request.
const (
	SortName      = "name"
	SortEmail     = "email"
	SortCreatedAt = "created_at"
)

// SortableFields is the search whitelist.
var SortableFields = []string{SortName, SortEmail, SortCreatedAt}

// SearchSchema drives the in-memory search engine: the filter matches Name,
// default ordering is newest first.
var SearchSchema = pagination.Schema[*Author]{
	FilterOn:  func(a *Author) string { return a.Name },
	CreatedAt: func(a *Author) time.Time { return a.CreatedAt },
	Sortable: map[string]pagination.Field[*Author]{
		SortName:      pagination.TextField(func(a *Author) string { return a.Name }),
		SortEmail:     pagination.TextField(func(a *Author) string { return a.Email }),
		SortCreatedAt: pagination.TimeField(func(a *Author) time.Time { return a.CreatedAt }),
	},
}

// resource names the entity in error messages.
const resource = "Author"
