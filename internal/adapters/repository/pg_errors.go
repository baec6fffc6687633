package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	uniqueViolation     = "unique_violation"
	foreignKeyViolation = "foreign_key_violation"

	// a malformed UUID in a lookup
	invalidTextRepresentation = "invalid_text_representation"
)

// sqlState returns the condition name of a Postgres error, whichever driver
// produced it, or "" for anything else.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pq.ErrorCode(pgErr.Code).Name()
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name()
	}
	return ""
}
