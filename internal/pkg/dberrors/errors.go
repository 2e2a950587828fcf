package dberrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
)

// PostgreSQL SQLSTATE codes the application reacts to.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeNotNullViolation    = "23502"
	CodeCheckViolation      = "23514"
	CodeUndefinedTable      = "42P01"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == CodeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsUndefinedTable reports whether the statement failed because the table does not exist.
func IsUndefinedTable(err error) bool {
	return hasCode(err, CodeUndefinedTable)
}

// IsForeignKeyViolation reports whether a referenced parent row is missing.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, CodeForeignKeyViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// Classify wraps a database error with the matching apperrors kind so that callers
// can branch with errors.Is. Errors that already carry a kind are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if apperrors.Is(err, apperrors.ErrConnection,
		apperrors.ErrValidationFailed,
		apperrors.ErrConstraintViolation,
		apperrors.ErrResourceNotFound,
		apperrors.ErrQuery) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == CodeUniqueViolation:
			return fmt.Errorf("%w: %w", apperrors.NewConstraintError("a record with the same key already exists"), err)
		case pgErr.Code == CodeForeignKeyViolation:
			return fmt.Errorf("%w: %w", apperrors.NewConstraintError("a referenced record does not exist"), err)
		case pgErr.Code == CodeNotNullViolation, pgErr.Code == CodeCheckViolation:
			return fmt.Errorf("%w: %w", apperrors.NewConstraintError("the record violates a table constraint"), err)
		case strings.HasPrefix(pgErr.Code, "22"):
			// data exceptions: out of range numbers, malformed dates, oversized strings
			return fmt.Errorf("%w: %w", apperrors.NewValidationError("a value is not valid for its column"), err)
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
			return fmt.Errorf("%w: %w", apperrors.ErrConnection, err)
		default:
			return fmt.Errorf("%w: %w", apperrors.ErrQuery, err)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", apperrors.ErrConnection, err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return fmt.Errorf("%w: %w", apperrors.ErrConnection, err)
	}

	return fmt.Errorf("%w: %w", apperrors.ErrQuery, err)
}
