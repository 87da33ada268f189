// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/quill/internal/platform/migration"
)

/*
TestToPgx5DSN verifies scheme rewriting for golang-migrate.
*/
func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"postgres://u:p@db:5432/quill?sslmode=disable", "pgx5://u:p@db:5432/quill?sslmode=disable"},
		{"postgresql://u:p@db/quill", "pgx5://u:p@db/quill"},
		{"pgx5://u:p@db/quill", "pgx5://u:p@db/quill"},
		{"host=db user=u dbname=quill", "host=db user=u dbname=quill"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, migration.ToPgx5DSN(tt.input))
		})
	}
}
