package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
)

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s is required", name))
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a positive integer", name))
	}
	return id, nil
}

// IntParamOrDefault reads an integer path parameter, falling back to def when it
// is missing, unparsable or zero. Negative values are returned as given.
func IntParamOrDefault(c *gin.Context, name string, def int) int {
	value, err := strconv.Atoi(strings.TrimSpace(c.Param(name)))
	if err != nil || value == 0 {
		return def
	}
	return value
}
