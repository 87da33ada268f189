// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/quill/internal/platform/apperr"
	"github.com/taibuivan/quill/internal/platform/database/schema"
	"github.com/taibuivan/quill/internal/platform/dberr"
	"github.com/taibuivan/quill/internal/platform/postgres"
	"github.com/taibuivan/quill/pkg/pagination"
	"github.com/taibuivan/quill/pkg/uuid"
)

// PostgresRepository implements [Repository] on core.post. The author
// reference is enforced by the post_authorid_fkey foreign key.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var searchQuery = postgres.SearchQuery{
	Table:           schema.CorePost.Table,
	Columns:         schema.CorePost.Columns(),
	FilterColumn:    schema.CorePost.Title,
	CreatedAtColumn: schema.CorePost.CreatedAt,
	IDColumn:        schema.CorePost.ID,
	SortColumns: map[string]string{
		SortTitle:     schema.CorePost.Title,
		SortSlug:      schema.CorePost.Slug,
		SortCreatedAt: schema.CorePost.CreatedAt,
	},
}

var selectColumns = strings.Join(schema.CorePost.Columns(), ", ")

func (repository *PostgresRepository) Create(context context.Context, input CreateInput) (*Post, error) {
	// A malformed id cannot reference any author row
	if !uuid.Valid(input.AuthorID) {
		return nil, apperr.NotFoundByID(authorResource, input.AuthorID)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s
	`,
		schema.CorePost.Table, schema.CorePost.ID, schema.CorePost.Title, schema.CorePost.Content,
		schema.CorePost.Slug, schema.CorePost.AuthorID, schema.CorePost.Published, schema.CorePost.CreatedAt,
		selectColumns,
	)

	row := repository.db.QueryRow(context, query,
		uuid.New(), input.Title, input.Content, input.Slug, input.AuthorID, input.Published,
	)

	post, err := scanPost(row)
	switch {
	case dberr.IsForeignKeyViolation(err):
		return nil, apperr.NotFoundByID(authorResource, input.AuthorID).WithCause(err)
	case dberr.IsUniqueViolation(err) && dberr.ConstraintName(err) == schema.CorePost.SlugKey:
		return nil, apperr.Conflict(apperr.MsgSlugInUse).WithCause(err)
	case err != nil:
		return nil, dberr.Wrap(err, "create_post")
	}

	return post, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Post, error) {
	if !uuid.Valid(id) {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.CorePost.Table, schema.CorePost.ID,
	)

	post, err := scanPost(repository.db.QueryRow(context, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_post_by_id")
	}

	return post, nil
}

func (repository *PostgresRepository) Search(context context.Context, request pagination.Request) ([]*Post, int, error) {
	query, args, countQuery, countArgs := searchQuery.Build(request)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_posts")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_posts")
	}
	defer rows.Close()

	posts := []*Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_posts")
	}

	return posts, total, nil
}

// scanPost reads the columns of [schema.CorePostTable.Columns] in order.
func scanPost(row pgx.Row) (*Post, error) {
	p := &Post{}
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Slug, &p.AuthorID, &p.Published, &p.CreatedAt); err != nil {
		return nil, err
	}
	return p, nil
}
