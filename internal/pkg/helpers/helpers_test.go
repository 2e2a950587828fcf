package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
)

func contextWithParam(name, value string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: name, Value: value}}
	return c
}

func TestParseIDParam(t *testing.T) {
	id, err := ParseIDParam(contextWithParam("inmateId", "12"), "inmateId")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, raw := range []string{"", "abc", "0", "-3"} {
		_, err := ParseIDParam(contextWithParam("inmateId", raw), "inmateId")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "value %q", raw)
	}
}

func TestIntParamOrDefault(t *testing.T) {
	assert.Equal(t, 5, IntParamOrDefault(contextWithParam("minimumCount", "5"), "minimumCount", 2))
	assert.Equal(t, 2, IntParamOrDefault(contextWithParam("minimumCount", "abc"), "minimumCount", 2))
	assert.Equal(t, 2, IntParamOrDefault(contextWithParam("minimumCount", "0"), "minimumCount", 2))
	assert.Equal(t, 2, IntParamOrDefault(contextWithParam("minimumCount", ""), "minimumCount", 2))
}

func TestIntParamOrDefaultKeepsNegatives(t *testing.T) {
	assert.Equal(t, -1, IntParamOrDefault(contextWithParam("minimumCount", "-1"), "minimumCount", 2))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 3*time.Second, ParseDuration("3s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}

func TestParseDateField(t *testing.T) {
	d, err := ParseDateField("startDate", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, models.NewDate(2024, time.February, 29), d)

	_, err = ParseDateField("startDate", "2023-02-29")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "startDate must be a date in YYYY-MM-DD format", err.Error())
}
