// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Partial-update inputs model "field omitted" as a nil pointer; [To] builds
such a field from a literal.
*/
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}
