// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"

	"github.com/taibuivan/quill/pkg/pagination"
)

// Repository is the storage port the [Service] depends on.
//
// # Contract
//
//   - Create receives a validated input with the slug already set. It fails
//     with NOT_FOUND when the author does not exist and CONFLICT when the
//     slug is taken.
//   - FindByID returns (nil, nil) when nothing matches.
//   - Search receives a normalized request.
type Repository interface {
	Create(context context.Context, input CreateInput) (*Post, error)
	FindByID(context context.Context, id string) (*Post, error)
	Search(context context.Context, request pagination.Request) ([]*Post, int, error)
}
