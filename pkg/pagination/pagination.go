// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for search/list endpoints.
//
// # Overview
//
// It standardizes how a search is requested (page, perPage, filter, sort, sortDir),
// how the request is normalized against an entity's sortable fields, and how the
// resulting page is delivered. [Search] is a pure in-memory engine; PostgreSQL stores
// push the same semantics into SQL and only use [Request] and [NewResult].
package pagination

import (
	"math"
	"net/http"
	"slices"
	"strings"

	"github.com/taibuivan/quill/pkg/convert"
)

const (
	// DefaultPerPage is the number of items per page if not specified.
	DefaultPerPage = 15
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Request holds one search invocation. The zero value lists the first page
// with default ordering.
type Request struct {
	Page    int       `json:"page"`
	PerPage int       `json:"perPage"`
	Filter  string    `json:"filter,omitempty"`
	Sort    string    `json:"sort,omitempty"`
	SortDir Direction `json:"sortDir,omitempty"`
}

// Normalize applies defaults and validates the sort against sortable.
//
// # Rules
//
//   - Page < 1 becomes [DefaultPage]; PerPage < 1 becomes [DefaultPerPage].
//   - A sort field outside sortable is dropped, which selects default ordering.
//   - SortDir is lowercased; anything other than "desc" becomes "asc".
func (r Request) Normalize(sortable []string) Request {
	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.PerPage < 1 {
		r.PerPage = DefaultPerPage
	}

	if !slices.Contains(sortable, r.Sort) {
		r.Sort = ""
	}

	if Direction(strings.ToLower(string(r.SortDir))) == Desc {
		r.SortDir = Desc
	} else {
		r.SortDir = Asc
	}

	return r
}

// HasSort reports whether an explicit (whitelisted) sort was requested.
// Only meaningful after [Request.Normalize].
func (r Request) HasSort() bool {
	return r.Sort != ""
}

// Offset returns the SQL OFFSET value derived from Page and PerPage.
// It saturates at [math.MaxInt] instead of overflowing.
func (r Request) Offset() int {
	if r.Page <= 1 || r.PerPage <= 0 {
		return 0
	}
	if r.Page-1 > math.MaxInt/r.PerPage {
		return math.MaxInt
	}
	return (r.Page - 1) * r.PerPage
}

// Result is one page of a search.
type Result[T any] struct {
	Items       []T `json:"items"`
	Total       int `json:"total"`
	CurrentPage int `json:"currentPage"`
	PerPage     int `json:"perPage"`
	LastPage    int `json:"lastPage"`
}

// NewResult assembles a [Result] for a normalized request.
//
// Items is never nil so that an empty page encodes as [] rather than null.
func NewResult[T any](items []T, total int, request Request) Result[T] {
	if items == nil {
		items = []T{}
	}

	return Result[T]{
		Items:       items,
		Total:       total,
		CurrentPage: request.Page,
		PerPage:     request.PerPage,
		LastPage:    LastPage(total, request.PerPage),
	}
}

// LastPage returns ceil(total/perPage), never less than 1.
func LastPage(total, perPage int) int {
	if perPage < 1 || total <= 0 {
		return 1
	}
	return (total-1)/perPage + 1
}

// FromRequest parses "page", "perPage", "filter", "sort" and "sortDir" query
// parameters from an HTTP request.
//
// # Fallback
//
// Missing or non-numeric page values are left at zero; [Request.Normalize]
// replaces them with the defaults.
func FromRequest(r *http.Request) Request {
	query := r.URL.Query()

	return Request{
		Page:    convert.IntOr(query.Get("page"), 0),
		PerPage: convert.IntOr(query.Get("perPage"), 0),
		Filter:  query.Get("filter"),
		Sort:    query.Get("sort"),
		SortDir: Direction(query.Get("sortDir")),
	}
}
