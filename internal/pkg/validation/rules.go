package validation

import (
	"regexp"
	"time"
)

// Validation rule patterns
var (
	// Holding cell identifiers are short codes such as "A" or "SOLITARY-2"
	CellTypePattern = `^[A-Za-z0-9_\-]{1,20}$`

	// ABO group with Rh factor
	BloodTypePattern = `^(A|B|AB|O)[+-]$`

	// Calendar date as exchanged over HTTP
	DatePattern = `^\d{4}-\d{2}-\d{2}$`

	// Severity score bounds
	SeverityMin = 0
	SeverityMax = 10

	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	CellType  *regexp.Regexp
	BloodType *regexp.Regexp
	Date      *regexp.Regexp
}{
	CellType:  regexp.MustCompile(CellTypePattern),
	BloodType: regexp.MustCompile(BloodTypePattern),
	Date:      regexp.MustCompile(DatePattern),
}

// IsISODate reports whether value is a real calendar date in YYYY-MM-DD form.
func IsISODate(value string) bool {
	if !CompiledPatterns.Date.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// IsBloodType reports whether value is a blood type such as "AB-".
func IsBloodType(value string) bool {
	return CompiledPatterns.BloodType.MatchString(value)
}

// IsCellType reports whether value can name a holding cell.
func IsCellType(value string) bool {
	return NewStringValidation(value).WithPattern(CompiledPatterns.CellType).Validate()
}

// StringValidation checks a required string against a length bound and a pattern
type StringValidation struct {
	Value   string
	MaxLen  int
	Pattern *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{Value: value}
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return false
	}
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}
	return v.Pattern == nil || v.Pattern.MatchString(v.Value)
}

// NumericValidation checks an integer against optional bounds. A zero bound is unset.
type NumericValidation struct {
	Value int
	Min   int
	Max   int
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{Value: value}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = max
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	// Check min value
	if v.Min != 0 && v.Value < v.Min {
		return false
	}

	// Check max value
	if v.Max != 0 && v.Value > v.Max {
		return false
	}

	return true
}
