package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	sqlStateUniqueViolation    = "23505"
	sqlStateForeignKeyViolated = "23503"
	sqlStateCheckViolation     = "23514"
	sqlStateExclusionViolation = "23P01"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return pgErrorCode(err) == sqlStateUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return pgErrorCode(err) == sqlStateForeignKeyViolated
}

// isExclusionViolation reports a breach of the bookings no-overlap constraint.
// GORM has no translated error for exclusion constraints.
func isExclusionViolation(err error) bool {
	return pgErrorCode(err) == sqlStateExclusionViolation
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	// Check for GORM's check constraint violation error
	if errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == sqlStateCheckViolation {
		return true
	}

	// Not every dialect translates check failures
	return strings.Contains(strings.ToLower(err.Error()), "check constraint")
}
