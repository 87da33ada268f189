// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/taibuivan/quill/pkg/slice"
)

// Field describes how to order candidates by one sortable field.
// Exactly one of Text or Time is set.
type Field[T any] struct {
	Text func(T) string
	Time func(T) time.Time
}

// TextField orders by a string using locale-aware collation.
func TextField[T any](get func(T) string) Field[T] {
	return Field[T]{Text: get}
}

// TimeField orders by a timestamp chronologically.
func TimeField[T any](get func(T) time.Time) Field[T] {
	return Field[T]{Time: get}
}

// Schema tells [Search] how to read one entity kind.
type Schema[T any] struct {
	// FilterOn returns the designated text field matched by Request.Filter.
	FilterOn func(T) string
	// CreatedAt drives the default ordering (newest first).
	CreatedAt func(T) time.Time
	// Sortable is the whitelist of fields a caller may sort by.
	Sortable map[string]Field[T]
}

// SortableFields returns the whitelist names in a stable order.
func (s Schema[T]) SortableFields() []string {
	names := make([]string, 0, len(s.Sortable))
	for name := range s.Sortable {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Search filters, orders and slices candidates.
//
// Candidates must be supplied in creation order; ties under an explicit sort keep
// that order. The slice passed in is never modified.
func Search[T any](candidates []T, request Request, schema Schema[T]) Result[T] {
	request = request.Normalize(schema.SortableFields())

	matched := filter(candidates, request.Filter, schema.FilterOn)
	slices.SortStableFunc(matched, comparator(request, schema))

	total := len(matched)
	start := min(request.Offset(), total)
	end := start + min(request.PerPage, total-start)

	return NewResult(slices.Clone(matched[start:end]), total, request)
}

// filter keeps candidates whose text contains needle under Unicode case folding.
func filter[T any](candidates []T, needle string, text func(T) string) []T {
	if needle == "" || text == nil {
		return slices.Clone(candidates)
	}

	folder := cases.Fold()
	needle = folder.String(needle)

	return slice.Filter(candidates, func(candidate T) bool {
		return strings.Contains(folder.String(text(candidate)), needle)
	})
}

// comparator builds the ordering for a normalized request.
func comparator[T any](request Request, schema Schema[T]) func(a, b T) int {
	field, ok := schema.Sortable[request.Sort]
	if !request.HasSort() || !ok {
		return func(a, b T) int {
			return schema.CreatedAt(b).Compare(schema.CreatedAt(a))
		}
	}

	sign := 1
	if request.SortDir == Desc {
		sign = -1
	}

	if field.Time != nil {
		return func(a, b T) int {
			return sign * field.Time(a).Compare(field.Time(b))
		}
	}

	// Collator keeps internal buffers; one per search.
	collator := collate.New(language.English)
	return func(a, b T) int {
		return sign * collator.CompareString(field.Text(a), field.Text(b))
	}
}
