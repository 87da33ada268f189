// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

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

// PostgresRepository implements [Repository] on core.author.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// searchQuery maps the search whitelist onto core.author columns.
var searchQuery = postgres.SearchQuery{
	Table:           schema.CoreAuthor.Table,
	Columns:         schema.CoreAuthor.Columns(),
	FilterColumn:    schema.CoreAuthor.Name,
	CreatedAtColumn: schema.CoreAuthor.CreatedAt,
	IDColumn:        schema.CoreAuthor.ID,
	SortColumns: map[string]string{
		SortName:      schema.CoreAuthor.Name,
		SortEmail:     schema.CoreAuthor.Email,
		SortCreatedAt: schema.CoreAuthor.CreatedAt,
	},
}

var selectColumns = strings.Join(schema.CoreAuthor.Columns(), ", ")

func (repository *PostgresRepository) Create(context context.Context, input CreateInput) (*Author, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s
	`,
		schema.CoreAuthor.Table, schema.CoreAuthor.ID, schema.CoreAuthor.Name, schema.CoreAuthor.Email,
		schema.CoreAuthor.CreatedAt, selectColumns,
	)

	author, err := scanAuthor(repository.db.QueryRow(context, query, uuid.New(), input.Name, input.Email))
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, apperr.Conflict(apperr.MsgEmailInUse).WithCause(err)
		}
		return nil, dberr.Wrap(err, "create_author")
	}

	return author, nil
}

func (repository *PostgresRepository) Update(context context.Context, a *Author) (*Author, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CoreAuthor.Table, schema.CoreAuthor.Name, schema.CoreAuthor.Email,
		schema.CoreAuthor.ID, selectColumns,
	)

	if !uuid.Valid(a.ID) {
		return nil, apperr.NotFoundByID(resource, a.ID)
	}

	author, err := scanAuthor(repository.db.QueryRow(context, query, a.ID, a.Name, a.Email))
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, apperr.NotFoundByID(resource, a.ID)
	case dberr.IsUniqueViolation(err):
		return nil, apperr.Conflict(apperr.MsgEmailInUse).WithCause(err)
	case err != nil:
		return nil, dberr.Wrap(err, "update_author")
	}

	return author, nil
}

// Delete removes the row and returns it. Authors still referenced by posts
// are rejected by the foreign key and surface as CONFLICT.
func (repository *PostgresRepository) Delete(context context.Context, id string) (*Author, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		schema.CoreAuthor.Table, schema.CoreAuthor.ID, selectColumns,
	)

	if !uuid.Valid(id) {
		return nil, apperr.NotFoundByID(resource, id)
	}

	author, err := scanAuthor(repository.db.QueryRow(context, query, id))
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, apperr.NotFoundByID(resource, id)
	case dberr.IsForeignKeyViolation(err):
		return nil, apperr.Conflict(apperr.MsgAuthorHasPosts).WithCause(err)
	case err != nil:
		return nil, dberr.Wrap(err, "delete_author")
	}

	return author, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Author, error) {
	// A malformed id cannot match a uuid column
	if !uuid.Valid(id) {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.CoreAuthor.Table, schema.CoreAuthor.ID,
	)

	return findOne(repository.db.QueryRow(context, query, id), "find_author_by_id")
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.CoreAuthor.Table, schema.CoreAuthor.Email,
	)

	return findOne(repository.db.QueryRow(context, query, email), "find_author_by_email")
}

func (repository *PostgresRepository) Search(context context.Context, request pagination.Request) ([]*Author, int, error) {
	query, args, countQuery, countArgs := searchQuery.Build(request)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_authors")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "search_authors")
	}
	defer rows.Close()

	authors := []*Author{}
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, author)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_authors")
	}

	return authors, total, nil
}

// findOne scans a single row, mapping "no rows" to (nil, nil).
func findOne(row pgx.Row, action string) (*Author, error) {
	author, err := scanAuthor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return author, nil
}

// scanAuthor reads the columns of [schema.CoreAuthorTable.Columns] in order.
func scanAuthor(row pgx.Row) (*Author, error) {
	a := &Author{}
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.CreatedAt); err != nil {
		return nil, err
	}
	return a, nil
}
