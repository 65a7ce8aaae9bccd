// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package admin

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

// PostgresUserAdminRepository implements the UserAdminRepository interface using pgx.
type PostgresUserAdminRepository struct {
	pool *pgxpool.Pool
}

// NewUserAdminRepository creates a new PostgreSQL implementation of the UserAdminRepository.
func NewUserAdminRepository(pool *pgxpool.Pool) *PostgresUserAdminRepository {
	return &PostgresUserAdminRepository{pool: pool}
}

/*
List returns one page of accounts plus the total count.

Description: Uses COUNT(*) OVER() to retrieve the total without a second
query. Newest accounts first (createdat DESC, time-sortable UUIDv7 keys make
this an index walk).

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*auth.User: Page of accounts
  - int: Total account count
  - error: Database execution errors
*/
func (repository *PostgresUserAdminRepository) List(context context.Context, limit, offset int) ([]*auth.User, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2`,
		accountColumns, schema.UserAccount.Table, schema.UserAccount.CreatedAt)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "postgres_admin_repo_list_failed")
	}
	defer rows.Close()

	users := []*auth.User{}
	total := 0

	for rows.Next() {
		user := &auth.User{}
		err := rows.Scan(
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
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "postgres_admin_repo_scan_failed")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "postgres_admin_repo_rows_failed")
	}

	// Beyond-range page: the window function saw no rows, re-read the total.
	if len(users) == 0 {
		countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.UserAccount.Table)
		if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
			return nil, 0, dberr.Wrap(err, "postgres_admin_repo_count_failed")
		}
	}

	return users, total, nil
}

/*
Delete removes a user account permanently.

Description: RETURNING hands back the deleted row in the same statement, so
the "was it there" check and the removal cannot race.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *auth.User: The account as it was before deletion
  - error: apperr.NotFound or storage failures
*/
func (repository *PostgresUserAdminRepository) Delete(context context.Context, id string) (*auth.User, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		schema.UserAccount.Table, schema.UserAccount.ID, accountColumns)

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
		return nil, dberr.Wrap(err, "postgres_admin_repo_delete_failed")
	}

	return user, nil
}
