// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/quill/internal/platform/postgres"
	"github.com/taibuivan/quill/pkg/pagination"
)

var query = postgres.SearchQuery{
	Table:           "core.author",
	Columns:         []string{"id", "name", "email", "createdat"},
	FilterColumn:    "name",
	CreatedAtColumn: "createdat",
	IDColumn:        "id",
	SortColumns:     map[string]string{"name": "name", "created_at": "createdat"},
}

/*
TestSearchQuery_Default verifies newest-first ordering without a filter.
*/
func TestSearchQuery_Default(t *testing.T) {
	request := pagination.Request{}.Normalize([]string{"name", "created_at"})

	list, listArgs, count, countArgs := query.Build(request)

	assert.Equal(t, `SELECT id, name, email, createdat FROM core.author ORDER BY createdat DESC, id ASC LIMIT $1 OFFSET $2`, list)
	assert.Equal(t, []any{15, 0}, listArgs)
	assert.Equal(t, `SELECT count(*) FROM core.author`, count)
	assert.Empty(t, countArgs)
}

/*
TestSearchQuery_FilterAndSort verifies argument numbering and tie-breaking.
*/
func TestSearchQuery_FilterAndSort(t *testing.T) {
	request := pagination.Request{Page: 3, PerPage: 2, Filter: "50%_off", Sort: "name", SortDir: pagination.Desc}.
		Normalize([]string{"name", "created_at"})

	list, listArgs, count, countArgs := query.Build(request)

	assert.Equal(t, `SELECT id, name, email, createdat FROM core.author WHERE name ILIKE $1 ESCAPE '\' ORDER BY name DESC, createdat ASC, id ASC LIMIT $2 OFFSET $3`, list)
	assert.Equal(t, []any{`%50\%\_off%`, 2, 4}, listArgs)
	assert.Equal(t, `SELECT count(*) FROM core.author WHERE name ILIKE $1 ESCAPE '\'`, count)
	assert.Equal(t, []any{`%50\%\_off%`}, countArgs)
}

/*
TestSearchQuery_HugePage verifies that the OFFSET argument never goes negative.
*/
func TestSearchQuery_HugePage(t *testing.T) {
	request := pagination.Request{Page: 2, PerPage: math.MaxInt}.Normalize([]string{"name"})

	_, listArgs, _, _ := query.Build(request)

	assert.Equal(t, []any{math.MaxInt, math.MaxInt}, listArgs)
}

/*
TestContainsPattern verifies LIKE metacharacter escaping.
*/
func TestContainsPattern(t *testing.T) {
	assert.Equal(t, `%ann%`, postgres.ContainsPattern("ann"))
	assert.Equal(t, `%a\\b%`, postgres.ContainsPattern(`a\b`))
	assert.Equal(t, `%\%\_%`, postgres.ContainsPattern("%_"))
}
