package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/prisonadmin/internal/app/models/dto"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
	"github.com/yigit/prisonadmin/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	RespondWithError(c, err, "")
}

// RespondWithError writes the failure envelope for err. Client errors carry the
// error's own user message; server errors carry fallback (or a generic message)
// and never the underlying driver text.
func RespondWithError(c *gin.Context, err error, fallback string) {
	status, detail := classify(err, fallback)

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Str("requestId", c.GetString(RequestIDKey)).
		Str("path", c.FullPath()).
		Int("status", status).
		Msg("Request failed")

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func classify(err error, fallback string) (int, *dto.ErrorDetail) {
	message := func(def string) string {
		if fallback != "" {
			return fallback
		}
		return def
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed,
			apperrors.UserMessage(err, message("Validation failed")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound,
			apperrors.UserMessage(err, message("Resource not found")))
	case errors.Is(err, apperrors.ErrConstraintViolation):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeConstraintViolated,
			apperrors.UserMessage(err, message("Constraint violation")))
	case errors.Is(err, apperrors.ErrConnection):
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeConnection,
			message("Database unavailable")).AsRetryable()
	case errors.Is(err, apperrors.ErrQuery):
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeDatabaseError,
			message("Database error"))
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer,
			message("Internal server error"))
	}
}

// RespondWithValidationError writes a 400 for a request that failed binding.
func RespondWithValidationError(c *gin.Context, err error) {
	detail := dto.HandleValidationError(err)
	logger.Debug().Err(err).Str("path", c.FullPath()).Msg("Request validation failed")
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
