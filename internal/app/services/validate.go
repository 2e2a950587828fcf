package services

import (
	"fmt"
	"strings"

	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
	"github.com/yigit/prisonadmin/internal/pkg/validation"
)

func invalid(format string, args ...any) error {
	return apperrors.NewValidationError(fmt.Sprintf(format, args...))
}

func validateCellType(cellType string) error {
	if strings.TrimSpace(cellType) == "" {
		return invalid("holding cell is required")
	}
	if !validation.IsCellType(cellType) {
		return invalid("holding cell %q is not a valid cell identifier", cellType)
	}
	return nil
}

func validateInmate(inmate models.Inmate) error {
	if inmate.InmateID <= 0 {
		return invalid("inmate id must be positive")
	}
	if err := validateCellType(inmate.HoldingCell); err != nil {
		return err
	}
	if inmate.HealthNum <= 0 {
		return invalid("health number must be positive")
	}
	if inmate.StartDate.IsZero() || inmate.EndDate.IsZero() {
		return invalid("start date and end date are required")
	}
	if inmate.EndDate.Before(inmate.StartDate.Time) {
		return invalid("end date %s is before start date %s", inmate.EndDate, inmate.StartDate)
	}
	return nil
}

func validateSentence(s models.Sentence) error {
	if s.Duration <= 0 {
		return invalid("duration must be a positive number of months")
	}
	if strings.TrimSpace(s.CrimeName) == "" {
		return invalid("crime name is required")
	}
	if strings.TrimSpace(s.CrimeType) == "" {
		return invalid("crime type is required")
	}
	// NumericValidation treats a zero minimum as unset
	if s.Severity < validation.SeverityMin ||
		!validation.NewNumericValidation(s.Severity).WithMax(validation.SeverityMax).Validate() {
		return invalid("severity must be between %d and %d", validation.SeverityMin, validation.SeverityMax)
	}
	return nil
}

func validateMedical(m models.MedicalRecord) error {
	if m.RecordNum <= 0 {
		return invalid("record number must be positive")
	}
	if !validation.IsBloodType(m.BloodType) {
		return invalid("blood type %q is not valid", m.BloodType)
	}
	if m.Weight <= 0 || m.Height <= 0 {
		return invalid("weight and height must be positive")
	}
	switch m.Sex {
	case "M", "F", "X":
	default:
		return invalid("sex must be one of M, F, X")
	}
	return nil
}
