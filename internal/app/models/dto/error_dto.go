package dto

import "time"

// ErrorCode classifies a failed request for clients
type ErrorCode string

const (
	// Resource errors
	ErrorCodeResourceNotFound   ErrorCode = "RES_001"
	ErrorCodeConstraintViolated ErrorCode = "RES_002"

	// Request errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInvalidRequest   ErrorCode = "VAL_002"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeDatabaseError  ErrorCode = "SRV_002"
	ErrorCodeConnection     ErrorCode = "SRV_003"
)

// ErrorDetail is the error object of a failure envelope
type ErrorDetail struct {
	Code    ErrorCode `json:"code" example:"VAL_001"`
	Message string    `json:"message" example:"inmateId is required"`
	Field   string    `json:"field,omitempty" example:"inmateId"`
	// Retryable is set when the same request may succeed later, e.g. once the database is reachable
	Retryable bool        `json:"retryable,omitempty" example:"false"`
	Details   interface{} `json:"details,omitempty"`
}

// FieldError names one rejected request field
type FieldError struct {
	Field   string `json:"field" example:"holdingCell"`
	Message string `json:"message" example:"holdingCell is required"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{Code: code, Message: message}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithDetails attaches extra context, such as every failing field
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// AsRetryable marks the failure as transient
func (e *ErrorDetail) AsRetryable() *ErrorDetail {
	e.Retryable = true
	return e
}

// NewErrorResponse creates the failure envelope. The message doubles as the
// top-level message the page scripts display.
func NewErrorResponse(errorDetail *ErrorDetail) APIResponse {
	return APIResponse{
		Success:   false,
		Message:   errorDetail.Message,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}
