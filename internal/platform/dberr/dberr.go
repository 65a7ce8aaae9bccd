// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Handlers and services never inspect pgx errors directly; repositories wrap
// every storage failure through [Wrap] so the classification lives in one place.
package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/minhanhvo/plume/internal/platform/apperr"
)

var (
	// ErrNotFound is the sentinel returned when a queried row doesn't exist.
	// Services test for it with errors.Is and attach the resource-specific message.
	ErrNotFound = apperr.NotFound("Resource not found")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Classification
//
//   - pgx.ErrNoRows                  -> ErrNotFound
//   - 23505 unique_violation         -> Conflict naming the offending field
//   - 22P02 invalid_text_repr (uuid) -> ErrNotFound (a malformed id can never match a row)
//   - 23502 / 23514 / 22001          -> ValidationError (schema constraint violation)
//   - anything else                  -> Internal
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			field := constraintField(pgErr.ConstraintName)
			return apperr.Conflict("Duplicate value entered for " + field + " field, please choose another value")

		case pgerrcode.InvalidTextRepresentation:
			return ErrNotFound

		case pgerrcode.NotNullViolation:
			return apperr.ValidationError(pgErr.ColumnName + ": This field is required")

		case pgerrcode.CheckViolation, pgerrcode.StringDataRightTruncationDataException:
			return apperr.ValidationError("Value violates a schema constraint")
		}
	}

	return apperr.Internal(&actionError{action: action, cause: err})
}

// constraintField derives the column name from a unique-constraint identifier.
//
// Postgres names unique constraints "<table>_<column>_key" by default;
// the table prefix and the suffix are stripped to report just the field.
func constraintField(constraint string) string {
	if constraint == "" {
		return "unknown"
	}

	name := strings.TrimSuffix(constraint, "_key")
	name = strings.TrimSuffix(name, "_idx")

	if i := strings.IndexByte(name, '_'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// actionError retains the repository action for server-side logs.
type actionError struct {
	action string
	cause  error
}

func (e *actionError) Error() string { return e.action + ": " + e.cause.Error() }

func (e *actionError) Unwrap() error { return e.cause }
