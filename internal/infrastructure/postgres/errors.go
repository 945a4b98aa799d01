package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidText         = "22P02"
	codeNumericOutOfRange   = "22003"
)

// pgError extracts the PostgreSQL error, if any.
func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// isUniqueViolation reports a unique constraint violation (23505) and the constraint name.
func isUniqueViolation(err error) (string, bool) {
	if pgErr, ok := pgError(err); ok && pgErr.Code == codeUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// isForeignKeyViolation reports a foreign key violation (23503) and the constraint name.
func isForeignKeyViolation(err error) (string, bool) {
	if pgErr, ok := pgError(err); ok && pgErr.Code == codeForeignKeyViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// isInvalidText reports a malformed literal such as a bad UUID (22P02).
func isInvalidText(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == codeInvalidText
}

// isNumericOutOfRange reports a value that does not fit its NUMERIC column (22003).
func isNumericOutOfRange(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == codeNumericOutOfRange
}
