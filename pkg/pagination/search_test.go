// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/quill/pkg/pagination"
)

type row struct {
	Name      string
	Email     string
	CreatedAt time.Time
}

var rowSchema = pagination.Schema[row]{
	FilterOn:  func(r row) string { return r.Name },
	CreatedAt: func(r row) time.Time { return r.CreatedAt },
	Sortable: map[string]pagination.Field[row]{
		"name":       pagination.TextField(func(r row) string { return r.Name }),
		"email":      pagination.TextField(func(r row) string { return r.Email }),
		"created_at": pagination.TimeField(func(r row) time.Time { return r.CreatedAt }),
	},
}

// rowsNamed builds rows in creation order with strictly increasing timestamps.
func rowsNamed(names ...string) []row {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]row, len(names))
	for i, name := range names {
		rows[i] = row{
			Name:      name,
			Email:     fmt.Sprintf("author%d@a.com", i),
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		}
	}
	return rows
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

/*
TestSearch_DefaultParams verifies default paging and newest-first ordering.
*/
func TestSearch_DefaultParams(t *testing.T) {
	labels := make([]string, 16)
	for i := range labels {
		labels[i] = fmt.Sprintf("author-%02d", i)
	}
	rows := rowsNamed(labels...)

	result := pagination.Search(rows, pagination.Request{}, rowSchema)

	assert.Equal(t, 16, result.Total)
	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, 15, result.PerPage)
	assert.Equal(t, 2, result.LastPage)
	require.Len(t, result.Items, 15)

	// Newest first: author-15 down to author-01
	for i, item := range result.Items {
		assert.Equal(t, fmt.Sprintf("author-%02d", 15-i), item.Name)
	}

	page2 := pagination.Search(rows, pagination.Request{Page: 2}, rowSchema)
	require.Len(t, page2.Items, 1)
	assert.Equal(t, "author-00", page2.Items[0].Name)
}

/*
TestSearch_SortAndPaginate covers the g,b,a,f,e,c,d scenario.
*/
func TestSearch_SortAndPaginate(t *testing.T) {
	rows := rowsNamed(strings.Split("gbafecd", "")...)

	expected := [][]string{{"a", "b"}, {"c", "d"}, {"e", "f"}, {"g"}}

	for i, want := range expected {
		page := i + 1
		result := pagination.Search(rows, pagination.Request{Page: page, PerPage: 2, Sort: "name", SortDir: pagination.Asc}, rowSchema)

		assert.Equal(t, want, names(result.Items), "page %d", page)
		assert.Equal(t, 7, result.Total)
		assert.Equal(t, 4, result.LastPage)
		assert.Equal(t, page, result.CurrentPage)
	}
}

/*
TestSearch_FilterSortAndPaginate covers the case-insensitive filter scenario.
*/
func TestSearch_FilterSortAndPaginate(t *testing.T) {
	rows := rowsNamed("test", "a", "TEST", "b", "Test")
	request := pagination.Request{Page: 1, PerPage: 2, Sort: "name", SortDir: pagination.Asc, Filter: "TEST"}

	page1 := pagination.Search(rows, request, rowSchema)

	assert.Equal(t, []string{"test", "Test"}, names(page1.Items))
	assert.Equal(t, 3, page1.Total)
	assert.Equal(t, 2, page1.LastPage)

	request.Page = 2
	page2 := pagination.Search(rows, request, rowSchema)

	assert.Equal(t, []string{"TEST"}, names(page2.Items))
	assert.Equal(t, 3, page2.Total)
	assert.Equal(t, 2, page2.CurrentPage)
}

/*
TestSearch_DescendingAndTimeFields checks sort direction on text and time fields.
*/
func TestSearch_DescendingAndTimeFields(t *testing.T) {
	rows := rowsNamed("b", "c", "a")

	byNameDesc := pagination.Search(rows, pagination.Request{Sort: "name", SortDir: pagination.Desc}, rowSchema)
	assert.Equal(t, []string{"c", "b", "a"}, names(byNameDesc.Items))

	byCreatedAsc := pagination.Search(rows, pagination.Request{Sort: "created_at"}, rowSchema)
	assert.Equal(t, []string{"b", "c", "a"}, names(byCreatedAsc.Items))

	byEmailDesc := pagination.Search(rows, pagination.Request{Sort: "email", SortDir: "desc"}, rowSchema)
	assert.Equal(t, []string{"a", "c", "b"}, names(byEmailDesc.Items))
}

/*
TestSearch_UnknownSortFallsBack verifies that a non-whitelisted field uses default ordering.
*/
func TestSearch_UnknownSortFallsBack(t *testing.T) {
	rows := rowsNamed("a", "b", "c")

	result := pagination.Search(rows, pagination.Request{Sort: "password", SortDir: pagination.Asc}, rowSchema)

	assert.Equal(t, []string{"c", "b", "a"}, names(result.Items))
}

/*
TestSearch_StableTies verifies equal keys keep creation order in both directions.
*/
func TestSearch_StableTies(t *testing.T) {
	rows := rowsNamed("x", "y", "x", "x")
	rows[0].Email, rows[2].Email, rows[3].Email = "first", "second", "third"

	asc := pagination.Search(rows, pagination.Request{Sort: "name"}, rowSchema)
	desc := pagination.Search(rows, pagination.Request{Sort: "name", SortDir: pagination.Desc}, rowSchema)

	emails := func(items []row) []string {
		out := []string{}
		for _, item := range items {
			if item.Name == "x" {
				out = append(out, item.Email)
			}
		}
		return out
	}

	assert.Equal(t, []string{"first", "second", "third"}, emails(asc.Items))
	assert.Equal(t, []string{"first", "second", "third"}, emails(desc.Items))
	assert.Equal(t, "y", desc.Items[0].Name)
}

/*
TestSearch_OutOfRange verifies that pages past the end are empty, not errors.
*/
func TestSearch_OutOfRange(t *testing.T) {
	rows := rowsNamed("a", "b", "c")

	result := pagination.Search(rows, pagination.Request{Page: 9, PerPage: 2}, rowSchema)

	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.LastPage)
	assert.Equal(t, 9, result.CurrentPage)
}

/*
TestSearch_HugePageValues verifies that extreme page and perPage values
never overflow the slice bounds.
*/
func TestSearch_HugePageValues(t *testing.T) {
	rows := rowsNamed("a", "b", "c", "d", "e")

	t.Run("huge_per_page", func(t *testing.T) {
		first := pagination.Search(rows, pagination.Request{Page: 1, PerPage: math.MaxInt}, rowSchema)
		assert.Len(t, first.Items, 5)
		assert.Equal(t, 1, first.LastPage)

		second := pagination.Search(rows, pagination.Request{Page: 2, PerPage: math.MaxInt}, rowSchema)
		assert.NotNil(t, second.Items)
		assert.Empty(t, second.Items)
		assert.Equal(t, 5, second.Total)
		assert.Equal(t, 1, second.LastPage)
	})

	t.Run("huge_page", func(t *testing.T) {
		result := pagination.Search(rows, pagination.Request{Page: math.MaxInt / 10, PerPage: 15}, rowSchema)
		assert.NotNil(t, result.Items)
		assert.Empty(t, result.Items)
		assert.Equal(t, math.MaxInt/10, result.CurrentPage)
		assert.Equal(t, 1, result.LastPage)
	})

	t.Run("max_page", func(t *testing.T) {
		result := pagination.Search(rows, pagination.Request{Page: math.MaxInt, PerPage: math.MaxInt}, rowSchema)
		assert.Empty(t, result.Items)
		assert.Equal(t, 1, result.LastPage)
	})
}

/*
TestSearch_EmptyAndUnicode covers empty sources and accented filters.
*/
func TestSearch_EmptyAndUnicode(t *testing.T) {
	empty := pagination.Search([]row{}, pagination.Request{}, rowSchema)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 1, empty.LastPage)
	assert.Empty(t, empty.Items)

	rows := rowsNamed("École Normale", "ecole", "Émile")
	result := pagination.Search(rows, pagination.Request{Filter: "ÉCOLE"}, rowSchema)
	assert.Equal(t, []string{"École Normale"}, names(result.Items))
}

/*
TestSearch_Deterministic verifies repeated invocations yield identical pages
and that the input slice is left untouched.
*/
func TestSearch_Deterministic(t *testing.T) {
	rows := rowsNamed("d", "a", "c", "a", "b")
	snapshot := append([]row(nil), rows...)
	request := pagination.Request{Page: 1, PerPage: 3, Sort: "name", Filter: ""}

	first := pagination.Search(rows, request, rowSchema)
	for range 5 {
		assert.Equal(t, first, pagination.Search(rows, request, rowSchema))
	}
	assert.Equal(t, snapshot, rows)
}
