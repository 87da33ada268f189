// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/quill/pkg/pagination"
)

/*
TestRequest_Normalize verifies defaults and sort whitelisting.
*/
func TestRequest_Normalize(t *testing.T) {
	sortable := []string{"name", "email", "created_at"}

	tests := []struct {
		name     string
		input    pagination.Request
		expected pagination.Request
	}{
		{
			name:     "zero_value",
			input:    pagination.Request{},
			expected: pagination.Request{Page: 1, PerPage: 15, SortDir: pagination.Asc},
		},
		{
			name:     "negative_values",
			input:    pagination.Request{Page: -3, PerPage: -1},
			expected: pagination.Request{Page: 1, PerPage: 15, SortDir: pagination.Asc},
		},
		{
			name:     "known_sort_desc_uppercase",
			input:    pagination.Request{Page: 2, PerPage: 5, Sort: "email", SortDir: "DESC"},
			expected: pagination.Request{Page: 2, PerPage: 5, Sort: "email", SortDir: pagination.Desc},
		},
		{
			name:     "unknown_sort_dropped",
			input:    pagination.Request{Sort: "password", SortDir: "sideways", Filter: "x"},
			expected: pagination.Request{Page: 1, PerPage: 15, Filter: "x", SortDir: pagination.Asc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Normalize(sortable))
		})
	}
}

/*
TestRequest_Offset verifies the slice start index.
*/
func TestRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Request{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 0, pagination.Request{Page: 0, PerPage: 10}.Offset())
	assert.Equal(t, 20, pagination.Request{Page: 3, PerPage: 10}.Offset())

	// Huge values saturate rather than wrapping negative.
	assert.Equal(t, math.MaxInt, pagination.Request{Page: 2, PerPage: math.MaxInt}.Offset())
	assert.Equal(t, math.MaxInt, pagination.Request{Page: math.MaxInt / 10, PerPage: 15}.Offset())
	assert.Equal(t, math.MaxInt-1, pagination.Request{Page: 2, PerPage: math.MaxInt - 1}.Offset())
}

/*
TestLastPage checks ceil division with the minimum of one page.
*/
func TestLastPage(t *testing.T) {
	tests := []struct {
		total, perPage, expected int
	}{
		{0, 15, 1},
		{1, 15, 1},
		{15, 15, 1},
		{16, 15, 2},
		{7, 2, 4},
		{3, 2, 2},
		{10, 0, 1},
		{5, math.MaxInt, 1},
		{math.MaxInt, math.MaxInt, 1},
		{math.MaxInt, 1, math.MaxInt},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, pagination.LastPage(tt.total, tt.perPage), "total=%d perPage=%d", tt.total, tt.perPage)
	}
}

/*
TestNewResult verifies metadata and the non-nil items guarantee.
*/
func TestNewResult(t *testing.T) {
	request := pagination.Request{Page: 3, PerPage: 2}

	result := pagination.NewResult[string](nil, 5, request)

	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 3, result.CurrentPage)
	assert.Equal(t, 2, result.PerPage)
	assert.Equal(t, 3, result.LastPage)
}

/*
TestFromRequest verifies query string parsing.
*/
func TestFromRequest(t *testing.T) {
	request := httptest.NewRequest("GET", "/authors?page=2&perPage=5&filter=ann&sort=name&sortDir=desc", nil)

	parsed := pagination.FromRequest(request)

	assert.Equal(t, pagination.Request{Page: 2, PerPage: 5, Filter: "ann", Sort: "name", SortDir: pagination.Desc}, parsed)

	malformed := pagination.FromRequest(httptest.NewRequest("GET", "/authors?page=abc&perPage=", nil))
	assert.Equal(t, 0, malformed.Page)
	assert.Equal(t, 0, malformed.PerPage)
}
