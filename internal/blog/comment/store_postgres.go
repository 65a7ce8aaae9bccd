// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

// PostgreSQL implementation of the comment storage contract.
package comment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhanhvo/plume/internal/platform/apperr"
	"github.com/minhanhvo/plume/internal/platform/database/schema"
	"github.com/minhanhvo/plume/internal/platform/dberr"
)

// commentColumns is the canonical select list built from the schema definition.
var commentColumns = strings.Join(schema.BlogComment.Columns(), ", ")

// PostgresCommentRepository implements the CommentRepository interface using pgx.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository creates a new PostgreSQL implementation of the CommentRepository.
func NewCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

/*
FindByID returns the comment with the given ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Comment: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresCommentRepository) FindByID(context context.Context, id string) (*Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		commentColumns, schema.BlogComment.Table, schema.BlogComment.ID)

	found := &Comment{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&found.ID,
		&found.Content,
		&found.AuthorID,
		&found.PostID,
		&found.CreatedAt,
		&found.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Comment not found")
		}
		return nil, dberr.Wrap(err, "postgres_comment_repo_find_failed")
	}

	return found, nil
}

/*
Create persists a new comment record into the blog.comment table.

Parameters:
  - context: context.Context
  - comment: *Comment

Returns:
  - error: Persistence failures
*/
func (repository *PostgresCommentRepository) Create(context context.Context, comment *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s`,
		schema.BlogComment.Table, commentColumns,
		schema.BlogComment.CreatedAt, schema.BlogComment.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		comment.ID,
		comment.Content,
		comment.AuthorID,
		comment.PostID,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt)

	if err != nil {
		return dberr.Wrap(err, "postgres_comment_repo_create_failed")
	}

	return nil
}

/*
UpdateContent replaces the content of an existing comment.

Description: Author and post linkage are deliberately absent from the SET
list; they are immutable after insert.

Parameters:
  - context: context.Context
  - id: string
  - content: string

Returns:
  - *Comment: The row as stored after the update
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresCommentRepository) UpdateContent(context context.Context, id, content string) (*Comment, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.BlogComment.Table,
		schema.BlogComment.Content, schema.BlogComment.UpdatedAt,
		schema.BlogComment.ID,
		commentColumns,
	)

	updated := &Comment{}
	err := repository.pool.QueryRow(context, query, id, content).Scan(
		&updated.ID,
		&updated.Content,
		&updated.AuthorID,
		&updated.PostID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Comment not found")
		}
		return nil, dberr.Wrap(err, "postgres_comment_repo_update_failed")
	}

	return updated, nil
}

/*
Delete removes a comment permanently.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresCommentRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		schema.BlogComment.Table, schema.BlogComment.ID, schema.BlogComment.ID)

	var deletedID string
	if err := repository.pool.QueryRow(context, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Comment not found")
		}
		return dberr.Wrap(err, "postgres_comment_repo_delete_failed")
	}

	return nil
}
