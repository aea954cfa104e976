package store

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

const defaultListLimit = 100

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// listWindow normalizes skip/limit pagination. Negative values fall back to
// the defaults (skip=0, limit=100).
func listWindow(skip, limit int) (uint64, uint64) {
	if skip < 0 {
		skip = 0
	}

	if limit < 0 {
		limit = defaultListLimit
	}

	return uint64(skip), uint64(limit)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// violatedConstraint returns the constraint name behind a unique or foreign
// key violation, or "" when the error is anything else. Repositories map the
// name back to the entity-level sentinel error.
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}

	switch pgErr.Code {
	case pgUniqueViolation, pgForeignKeyViolation:
		return pgErr.ConstraintName
	}

	return ""
}
