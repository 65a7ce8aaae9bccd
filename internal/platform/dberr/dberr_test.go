// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package dberr_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhanhvo/plume/internal/platform/apperr"
	"github.com/minhanhvo/plume/internal/platform/dberr"
)

/*
TestWrap_Classification verifies the mapping from pgx errors to application
error codes.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		code       string
		httpStatus int
	}{
		{
			"no_rows_is_not_found",
			pgx.ErrNoRows,
			"NOT_FOUND", 404,
		},
		{
			"wrapped_no_rows_is_not_found",
			errors.Join(errors.New("query failed"), pgx.ErrNoRows),
			"NOT_FOUND", 404,
		},
		{
			"unique_violation_is_conflict",
			&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "account_email_key"},
			"CONFLICT", 409,
		},
		{
			"invalid_uuid_text_is_not_found",
			&pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation},
			"NOT_FOUND", 404,
		},
		{
			"not_null_violation_is_validation",
			&pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "title"},
			"VALIDATION_ERROR", 400,
		},
		{
			"check_violation_is_validation",
			&pgconn.PgError{Code: pgerrcode.CheckViolation},
			"VALIDATION_ERROR", 400,
		},
		{
			"truncation_is_validation",
			&pgconn.PgError{Code: pgerrcode.StringDataRightTruncationDataException},
			"VALIDATION_ERROR", 400,
		},
		{
			"unknown_pg_error_is_internal",
			&pgconn.PgError{Code: pgerrcode.SerializationFailure},
			"INTERNAL_ERROR", 500,
		},
		{
			"arbitrary_error_is_internal",
			errors.New("connection reset"),
			"INTERNAL_ERROR", 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "test action")

			appErr := apperr.As(wrapped)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.httpStatus, appErr.HTTPStatus)
		})
	}
}

/*
TestWrap_Nil verifies nil passes through untouched.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

/*
TestWrap_NotFoundSentinel verifies the sentinel is detectable with errors.Is
so services can attach resource-specific messages.
*/
func TestWrap_NotFoundSentinel(t *testing.T) {
	wrapped := dberr.Wrap(pgx.ErrNoRows, "find post")
	assert.True(t, errors.Is(wrapped, dberr.ErrNotFound))
}

/*
TestWrap_ConflictFieldName verifies the constraint name is reduced to the
offending field in the client message.
*/
func TestWrap_ConflictFieldName(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		message    string
	}{
		{
			"username_constraint",
			"account_username_key",
			"Duplicate value entered for username field, please choose another value",
		},
		{
			"email_constraint",
			"account_email_key",
			"Duplicate value entered for email field, please choose another value",
		},
		{
			"missing_constraint_name",
			"",
			"Duplicate value entered for unknown field, please choose another value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(&pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: tt.constraint,
			}, "create user")

			appErr := apperr.As(wrapped)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

/*
TestWrap_InternalHidesCause verifies the client message for internal errors
never carries database details.
*/
func TestWrap_InternalHidesCause(t *testing.T) {
	wrapped := dberr.Wrap(errors.New("pq: relation blog.post does not exist"), "list posts")

	appErr := apperr.As(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, "Something went wrong, try again later", appErr.Message)
	assert.NotContains(t, appErr.Message, "blog.post")
	require.Error(t, appErr.Cause)
	assert.Contains(t, appErr.Cause.Error(), "list posts")
}
