// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for query parameters.

A malformed value is indistinguishable from a missing one here; callers that
need to tell them apart should use [strconv] directly.
*/
package convert

import (
	"strconv"
	"strings"
)

// IntOr parses s as a base-10 integer, returning fallback when s is blank
// or malformed.
func IntOr(s string, fallback int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}

	if v, err := strconv.Atoi(s); err == nil {
		return v
	}

	return fallback
}
