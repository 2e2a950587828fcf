package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2024-01-10"))
	assert.True(t, IsISODate("2024-02-29"))
	assert.False(t, IsISODate("2023-02-29"))
	assert.False(t, IsISODate("2024-1-10"))
	assert.False(t, IsISODate("10/01/2024"))
	assert.False(t, IsISODate(""))
}

func TestIsBloodType(t *testing.T) {
	for _, ok := range []string{"A+", "A-", "B+", "AB-", "O+"} {
		assert.True(t, IsBloodType(ok), ok)
	}
	for _, bad := range []string{"C+", "AB", "o+", "A+ "} {
		assert.False(t, IsBloodType(bad), bad)
	}
}

func TestIsCellType(t *testing.T) {
	assert.True(t, IsCellType("A"))
	assert.True(t, IsCellType("SOLITARY-2"))
	assert.False(t, IsCellType(""))
	assert.False(t, IsCellType("cell with spaces"))
	assert.False(t, IsCellType("ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
}

func TestNumericValidation(t *testing.T) {
	assert.True(t, NewNumericValidation(7).WithMin(SeverityMin).WithMax(SeverityMax).Validate())
	assert.False(t, NewNumericValidation(11).WithMax(SeverityMax).Validate())
	assert.False(t, NewNumericValidation(2).WithMin(3).Validate())
}
