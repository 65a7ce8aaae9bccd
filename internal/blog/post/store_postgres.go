// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

// PostgreSQL implementation of the post storage contracts.
//
// # Concurrency
//
// Every counter and reference-list mutation is a single UPDATE with the
// arithmetic or array operator evaluated inside the statement. There is no
// read-modify-write window, so concurrent likes and comment linkages cannot
// lose updates.
package post

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
	"github.com/minhanhvo/plume/pkg/query"
)

// postColumns is the canonical select list built from the schema definition;
// scanPost's target order matches it.
var postColumns = strings.Join(schema.BlogPost.Columns(), ", ")

// PostgresPostRepository implements the PostRepository interface using pgx.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository creates a new PostgreSQL implementation of the PostRepository.
func NewPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

// scanPost hydrates one post from a scannable row.
func scanPost(row pgx.Row, post *Post, extra ...any) error {
	targets := []any{
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.Keywords,
		&post.LikesAmount,
		&post.PostComments,
		&post.CommentsAmount,
		&post.CreatedAt,
		&post.UpdatedAt,
	}
	targets = append(targets, extra...)

	if err := row.Scan(targets...); err != nil {
		return err
	}

	if post.Keywords == nil {
		post.Keywords = []string{}
	}
	if post.PostComments == nil {
		post.PostComments = []string{}
	}

	return nil
}

/*
List returns one sorted page of posts plus the total count.

Description: Uses COUNT(*) OVER() to piggyback the total on the page query.
A page beyond the end returns no window rows, so the total is re-read with a
plain COUNT in that case to keep pagination links correct. The sort column
and direction come from a whitelist, never from raw request input.

Parameters:
  - context: context.Context
  - sort: query.Sort
  - limit: int
  - offset: int

Returns:
  - []*Post: Page of posts
  - int: Total post count
  - error: Database execution errors
*/
func (repository *PostgresPostRepository) List(context context.Context, sort query.Sort, limit, offset int) ([]*Post, int, error) {
	listQuery := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		ORDER BY %s %s
		LIMIT $1 OFFSET $2`, postColumns, schema.BlogPost.Table, sort.Column, sort.Direction)

	rows, err := repository.pool.Query(context, listQuery, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "postgres_post_repo_list_failed")
	}
	defer rows.Close()

	posts := []*Post{}
	total := 0

	for rows.Next() {
		post := &Post{}
		if err := scanPost(rows, post, &total); err != nil {
			return nil, 0, dberr.Wrap(err, "postgres_post_repo_scan_failed")
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "postgres_post_repo_rows_failed")
	}

	// Beyond-range page: the window function saw no rows, re-read the total.
	if len(posts) == 0 {
		countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.BlogPost.Table)
		if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
			return nil, 0, dberr.Wrap(err, "postgres_post_repo_count_failed")
		}
	}

	return posts, total, nil
}

/*
FindByID returns the post with the given ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Post: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresPostRepository) FindByID(context context.Context, id string) (*Post, error) {
	findQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		postColumns, schema.BlogPost.Table, schema.BlogPost.ID)

	post := &Post{}
	if err := scanPost(repository.pool.QueryRow(context, findQuery, id), post); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, dberr.Wrap(err, "postgres_post_repo_find_failed")
	}

	return post, nil
}

/*
Create persists a new post record into the blog.post table.

Parameters:
  - context: context.Context
  - post: *Post

Returns:
  - error: Persistence failures
*/
func (repository *PostgresPostRepository) Create(context context.Context, post *Post) error {
	createQuery := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, 0, $6, 0, NOW(), NOW())
		RETURNING %s`, schema.BlogPost.Table, postColumns, postColumns)

	if err := scanPost(repository.pool.QueryRow(context, createQuery,
		post.ID,
		post.Title,
		post.Content,
		post.AuthorID,
		post.Keywords,
		post.PostComments,
	), post); err != nil {
		return dberr.Wrap(err, "postgres_post_repo_create_failed")
	}

	return nil
}

/*
Update applies a sparse patch to a post's mutable fields.

Description: COALESCE keeps columns whose input is nil, making the partial
update a single round-trip with no prior read.

Parameters:
  - context: context.Context
  - id: string
  - patch: Patch

Returns:
  - *Post: The row as stored after the update
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresPostRepository) Update(context context.Context, id string, patch Patch) (*Post, error) {
	updateQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s),
		    %s = COALESCE($4, %s),
		    %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.BlogPost.Table,
		schema.BlogPost.Title, schema.BlogPost.Title,
		schema.BlogPost.Content, schema.BlogPost.Content,
		schema.BlogPost.Keywords, schema.BlogPost.Keywords,
		schema.BlogPost.UpdatedAt,
		schema.BlogPost.ID,
		postColumns,
	)

	post := &Post{}
	err := scanPost(repository.pool.QueryRow(context, updateQuery, id, patch.Title, patch.Content, patch.Keywords), post)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, dberr.Wrap(err, "postgres_post_repo_update_failed")
	}

	return post, nil
}

/*
Delete removes a post permanently.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresPostRepository) Delete(context context.Context, id string) error {
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		schema.BlogPost.Table, schema.BlogPost.ID, schema.BlogPost.ID)

	var deletedID string
	if err := repository.pool.QueryRow(context, deleteQuery, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Post not found")
		}
		return dberr.Wrap(err, "postgres_post_repo_delete_failed")
	}

	return nil
}

/*
Like atomically increments the like counter.

Description: The arithmetic happens inside the UPDATE, so two concurrent
likes both land.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Post: The row after the increment
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresPostRepository) Like(context context.Context, id string) (*Post, error) {
	likeQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s = %s + 1
		WHERE %s = $1
		RETURNING %s`,
		schema.BlogPost.Table,
		schema.BlogPost.LikesAmount, schema.BlogPost.LikesAmount,
		schema.BlogPost.ID,
		postColumns,
	)

	post := &Post{}
	if err := scanPost(repository.pool.QueryRow(context, likeQuery, id), post); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, dberr.Wrap(err, "postgres_post_repo_like_failed")
	}

	return post, nil
}

/*
AttachComment links a comment to its post in one atomic statement.

Description: Appends the comment ID to post_comments and increments
comments_amount together; both expressions see the same pre-update row.

Parameters:
  - context: context.Context
  - postID: string
  - commentID: string

Returns:
  - *Post: The row after the linkage
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresPostRepository) AttachComment(context context.Context, postID, commentID string) (*Post, error) {
	attachQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s = array_append(%s, $2::uuid),
		    %s = %s + 1
		WHERE %s = $1
		RETURNING %s`,
		schema.BlogPost.Table,
		schema.BlogPost.PostComments, schema.BlogPost.PostComments,
		schema.BlogPost.CommentsAmount, schema.BlogPost.CommentsAmount,
		schema.BlogPost.ID,
		postColumns,
	)

	post := &Post{}
	if err := scanPost(repository.pool.QueryRow(context, attachQuery, postID, commentID), post); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, dberr.Wrap(err, "postgres_post_repo_attach_failed")
	}

	return post, nil
}

/*
DetachComment unlinks a comment from its post in one atomic statement.

Description: The counter decrement is guarded by a presence check on the
pre-update array, so detaching an ID that was never attached leaves the
counter untouched instead of driving it negative.

Parameters:
  - context: context.Context
  - postID: string
  - commentID: string

Returns:
  - *Post: The row after the unlink
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresPostRepository) DetachComment(context context.Context, postID, commentID string) (*Post, error) {
	detachQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s = %s - (CASE WHEN $2::uuid = ANY(%s) THEN 1 ELSE 0 END),
		    %s = array_remove(%s, $2::uuid)
		WHERE %s = $1
		RETURNING %s`,
		schema.BlogPost.Table,
		schema.BlogPost.CommentsAmount, schema.BlogPost.CommentsAmount, schema.BlogPost.PostComments,
		schema.BlogPost.PostComments, schema.BlogPost.PostComments,
		schema.BlogPost.ID,
		postColumns,
	)

	post := &Post{}
	if err := scanPost(repository.pool.QueryRow(context, detachQuery, postID, commentID), post); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, dberr.Wrap(err, "postgres_post_repo_detach_failed")
	}

	return post, nil
}

/*
CommentsWindow returns one page of the post_comments array plus its length.

Description: Postgres array slicing is 1-based, so the zero-based offset is
shifted by one. Slicing past the end yields an empty array.

Parameters:
  - context: context.Context
  - postID: string
  - offset: int (Zero-based start index)
  - limit: int

Returns:
  - []string: Comment IDs in insertion order
  - int: Total comments on the post
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresPostRepository) CommentsWindow(context context.Context, postID string, offset, limit int) ([]string, int, error) {
	windowQuery := fmt.Sprintf(`
		SELECT %s[$2:$3], COALESCE(array_length(%s, 1), 0)
		FROM %s
		WHERE %s = $1`,
		schema.BlogPost.PostComments, schema.BlogPost.PostComments,
		schema.BlogPost.Table, schema.BlogPost.ID,
	)

	var ids []string
	var total int

	err := repository.pool.QueryRow(context, windowQuery, postID, offset+1, offset+limit).Scan(&ids, &total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, apperr.NotFound("Post not found")
		}
		return nil, 0, dberr.Wrap(err, "postgres_post_repo_comments_window_failed")
	}

	if ids == nil {
		ids = []string{}
	}

	return ids, total, nil
}
