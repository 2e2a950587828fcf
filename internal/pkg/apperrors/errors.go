package apperrors

import "errors"

// Error kinds surfaced by the record operations and the query catalog.
var (
	// Connection errors
	ErrConnection = errors.New("database connection error")
	// ErrPoolExhausted is returned when no pooled connection was released in time.
	ErrPoolExhausted = &CustomError{Err: ErrConnection, Message: "connection pool exhausted"}

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Data errors
	ErrConstraintViolation = errors.New("constraint violation")
	ErrResourceNotFound    = errors.New("resource not found")

	// Statement errors
	ErrQuery = errors.New("query error")
)

// Domain specific not-found errors
var (
	ErrInmateNotFound   = NewResourceNotFoundError("inmate not found")
	ErrCellNotFound     = NewResourceNotFoundError("holding cell not found")
	ErrSentenceNotFound = NewResourceNotFoundError("no sentence found for inmate")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying a client facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewConstraintError creates a constraint violation error with a message
func NewConstraintError(message string) error {
	return &CustomError{
		Err:     ErrConstraintViolation,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// UserMessage returns the first client facing message found in the error chain.
// Messages are only taken from CustomError values, never from driver errors.
func UserMessage(err error, fallback string) string {
	var custom *CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
