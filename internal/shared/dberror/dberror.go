package dberror

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique-constraint violation on
// the named constraint. PostgreSQL errors are matched by SQLSTATE and
// constraint name; other drivers by message, where columns ("table.col")
// identify the index SQLite reports.
func IsUniqueViolation(err error, constraint string, columns ...string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") && strings.Contains(msg, strings.ToLower(constraint)) {
		return true
	}
	if strings.Contains(msg, "unique constraint failed") {
		for _, col := range columns {
			if strings.Contains(msg, strings.ToLower(col)) {
				return true
			}
		}
	}
	return false
}
