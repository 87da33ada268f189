// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taibuivan/quill/pkg/pagination"
)

// SearchQuery translates a [pagination.Request] into SQL for one table.
//
// # Semantics
//
//   - The filter is a case-insensitive substring match (ILIKE) on FilterColumn
//     with LIKE wildcards in the needle escaped.
//   - An explicit sort orders by the mapped column, then by creation time and
//     id ascending so ties keep insertion order in both directions.
//   - Without a sort, rows come newest first.
type SearchQuery struct {
	Table           string
	Columns         []string
	FilterColumn    string
	CreatedAtColumn string
	IDColumn        string

	// SortColumns maps whitelisted sort names to column names.
	SortColumns map[string]string
}

/*
Build renders the page query and the matching count query.

Parameters:
  - request: pagination.Request (must already be normalized)

Returns:
  - list: SELECT with ORDER BY, LIMIT and OFFSET
  - listArgs: Positional arguments for list
  - count: SELECT count(*) over the same filter
  - countArgs: Positional arguments for count
*/
func (q SearchQuery) Build(request pagination.Request) (list string, listArgs []any, count string, countArgs []any) {
	where := ""
	if request.Filter != "" {
		where = fmt.Sprintf(` WHERE %s ILIKE $1 ESCAPE '\'`, q.FilterColumn)
		countArgs = append(countArgs, ContainsPattern(request.Filter))
	}

	count = fmt.Sprintf(`SELECT count(*) FROM %s%s`, q.Table, where)

	listArgs = append(listArgs, countArgs...)
	limitPos := len(listArgs) + 1
	listArgs = append(listArgs, request.PerPage, request.Offset())

	list = fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s LIMIT $%s OFFSET $%s`,
		strings.Join(q.Columns, ", "), q.Table, where, q.orderBy(request),
		strconv.Itoa(limitPos), strconv.Itoa(limitPos+1),
	)

	return list, listArgs, count, countArgs
}

func (q SearchQuery) orderBy(request pagination.Request) string {
	column, ok := q.SortColumns[request.Sort]
	if !request.HasSort() || !ok {
		return fmt.Sprintf("%s DESC, %s ASC", q.CreatedAtColumn, q.IDColumn)
	}

	direction := "ASC"
	if request.SortDir == pagination.Desc {
		direction = "DESC"
	}

	// Text columns use the database collation; ties fall back to insertion order
	return fmt.Sprintf("%s %s, %s ASC, %s ASC", column, direction, q.CreatedAtColumn, q.IDColumn)
}

// ContainsPattern wraps needle for an ILIKE substring match, escaping the
// LIKE metacharacters so they match literally.
func ContainsPattern(needle string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(needle) + "%"
}
