package dto

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts binding errors into a client facing error detail.
// Field names are reported by their JSON tag.
func HandleValidationError(err error) *ErrorDetail {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fields := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: formatFieldError(fe)})
		}
		detail := NewErrorDetail(ErrorCodeValidationFailed, fields[0].Message).WithField(fields[0].Field)
		if len(fields) > 1 {
			detail = detail.WithDetails(fields)
		}
		return detail
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return NewErrorDetail(ErrorCodeInvalidRequest, fmt.Sprintf("%s has the wrong type", typeErr.Field)).
			WithField(typeErr.Field)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return NewErrorDetail(ErrorCodeInvalidRequest, "Request body is not valid JSON")
	}

	return NewErrorDetail(ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "gte", "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "lte", "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "isodate":
		return fe.Field() + " must be a date in YYYY-MM-DD format"
	case "bloodtype":
		return fe.Field() + " must be a blood type such as A+ or O-"
	default:
		return fe.Field() + " validation failed: " + fe.Tag()
	}
}
