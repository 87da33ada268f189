// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/quill/pkg/slice"
)

/*
TestMap verifies element-wise transformation.
*/
func TestMap(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, slice.Map([]string{"a", "b"}, strings.ToUpper))
	assert.Equal(t, []int{}, slice.Map(nil, func(s string) int { return len(s) }))
}

/*
TestFilter verifies order preservation and that the input is untouched.
*/
func TestFilter(t *testing.T) {
	input := []int{5, 2, 8, 1}

	even := slice.Filter(input, func(n int) bool { return n%2 == 0 })

	assert.Equal(t, []int{2, 8}, even)
	assert.Equal(t, []int{5, 2, 8, 1}, input)
	assert.NotNil(t, slice.Filter(nil, func(int) bool { return true }))
}
