// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"

	"github.com/taibuivan/quill/pkg/pagination"
)

// Repository is the storage port the [Service] depends on.
//
// # Contract
//
//   - Create assigns ID and CreatedAt.
//   - Update writes the full entity; a missing id fails with NOT_FOUND.
//   - Delete returns the prior state; a missing id fails with NOT_FOUND.
//   - FindByID and FindByEmail return (nil, nil) when nothing matches.
//   - Search receives a normalized request and returns one page plus the
//     total number of filtered matches.
//
// Stores are the authoritative guard for email uniqueness and report
// violations as CONFLICT.
type Repository interface {
	Create(context context.Context, input CreateInput) (*Author, error)
	Update(context context.Context, author *Author) (*Author, error)
	Delete(context context.Context, id string) (*Author, error)
	FindByID(context context.Context, id string) (*Author, error)
	FindByEmail(context context.Context, email string) (*Author, error)
	Search(context context.Context, request pagination.Request) ([]*Author, int, error)
}
