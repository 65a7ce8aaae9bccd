// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

// PostgreSQL implementation of the account storage contracts.
//
// # Concurrency
//
// Saved-post mutations are single UPDATE statements using guarded array
// operators, so two concurrent requests can never interleave a read-modify-
// write on the same list.
package account

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
	"github.com/minhanhvo/plume/internal/users/auth"
)

// accountColumns is the canonical select list built from the schema definition.
var accountColumns = strings.Join(schema.UserAccount.Columns(), ", ")

// PostgresAccountRepository implements the AccountRepository interface using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL implementation of the AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

/*
FindByID retrieves a user record by their unique ID.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *auth.User: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*auth.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		accountColumns, schema.UserAccount.Table, schema.UserAccount.ID)

	user := &auth.User{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.DisplayName,
		&user.AvatarURL,
		&user.Bio,
		&user.Role,
		&user.SavedPosts,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, dberr.Wrap(err, "postgres_account_repo_find_by_id_failed")
	}

	return user, nil
}

/*
UpdateProfile applies a sparse patch to the mutable profile columns.

Description: COALESCE keeps any column whose input pointer is nil, so the
entire partial update is one round-trip with no prior read.

Parameters:
  - context: context.Context
  - userID: string
  - input: ProfilePatch

Returns:
  - *auth.User: The row as stored after the update
  - error: apperr.NotFound or storage failures
*/
func (repository *PostgresAccountRepository) UpdateProfile(context context.Context, userID string, input ProfilePatch) (*auth.User, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s),
		    %s = COALESCE($4, %s),
		    %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.UserAccount.Table,
		schema.UserAccount.DisplayName, schema.UserAccount.DisplayName,
		schema.UserAccount.AvatarURL, schema.UserAccount.AvatarURL,
		schema.UserAccount.Bio, schema.UserAccount.Bio,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		accountColumns,
	)

	user := &auth.User{}
	err := repository.pool.QueryRow(context, query, userID, input.DisplayName, input.AvatarURL, input.Bio).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.DisplayName,
		&user.AvatarURL,
		&user.Bio,
		&user.Role,
		&user.SavedPosts,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, dberr.Wrap(err, "postgres_account_repo_update_profile_failed")
	}

	return user, nil
}

/*
SavedPostsWindow returns one page of the saved_posts array plus its length.

Description: Postgres array slicing is 1-based, so the zero-based offset is
shifted by one. Slicing past the end yields an empty array, matching the
beyond-range pagination contract.

Parameters:
  - context: context.Context
  - userID: string
  - offset: int (Zero-based start index)
  - limit: int

Returns:
  - []string: Post IDs in insertion order
  - int: Total number of saved posts
  - error: apperr.NotFound or storage failures
*/
func (repository *PostgresAccountRepository) SavedPostsWindow(context context.Context, userID string, offset, limit int) ([]string, int, error) {
	query := fmt.Sprintf(`
		SELECT %s[$2:$3], COALESCE(array_length(%s, 1), 0)
		FROM %s
		WHERE %s = $1`,
		schema.UserAccount.SavedPosts, schema.UserAccount.SavedPosts,
		schema.UserAccount.Table, schema.UserAccount.ID,
	)

	var ids []string
	var total int

	err := repository.pool.QueryRow(context, query, userID, offset+1, offset+limit).Scan(&ids, &total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, apperr.NotFound("User not found")
		}
		return nil, 0, dberr.Wrap(err, "postgres_account_repo_saved_window_failed")
	}

	if ids == nil {
		ids = []string{}
	}

	return ids, total, nil
}

/*
AddSavedPost appends a post ID to the saved list unless already present.

Description: The CASE guard makes the append idempotent inside a single
atomic UPDATE. Duplicates can never appear regardless of request interleaving.

Parameters:
  - context: context.Context
  - userID: string
  - postID: string

Returns:
  - []string: The saved list after the mutation
  - error: apperr.NotFound or storage failures
*/
func (repository *PostgresAccountRepository) AddSavedPost(context context.Context, userID, postID string) ([]string, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = CASE
		        WHEN $2::uuid = ANY(%s) THEN %s
		        ELSE array_append(%s, $2::uuid)
		    END,
		    %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.UserAccount.Table,
		schema.UserAccount.SavedPosts, schema.UserAccount.SavedPosts, schema.UserAccount.SavedPosts,
		schema.UserAccount.SavedPosts,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		schema.UserAccount.SavedPosts,
	)

	return repository.scanSavedPosts(context, query, userID, postID, "postgres_account_repo_add_saved_failed")
}

/*
RemoveSavedPost removes a post ID from the saved list.

Description: array_remove is a no-op when the ID is absent, so removal is
idempotent by construction.

Parameters:
  - context: context.Context
  - userID: string
  - postID: string

Returns:
  - []string: The saved list after the mutation
  - error: apperr.NotFound or storage failures
*/
func (repository *PostgresAccountRepository) RemoveSavedPost(context context.Context, userID, postID string) ([]string, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = array_remove(%s, $2::uuid),
		    %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.UserAccount.Table,
		schema.UserAccount.SavedPosts, schema.UserAccount.SavedPosts,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		schema.UserAccount.SavedPosts,
	)

	return repository.scanSavedPosts(context, query, userID, postID, "postgres_account_repo_remove_saved_failed")
}

// scanSavedPosts executes a saved-post mutation and scans the resulting list.
func (repository *PostgresAccountRepository) scanSavedPosts(context context.Context, query, userID, postID, action string) ([]string, error) {
	var saved []string

	err := repository.pool.QueryRow(context, query, userID, postID).Scan(&saved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, dberr.Wrap(err, action)
	}

	if saved == nil {
		saved = []string{}
	}

	return saved, nil
}
