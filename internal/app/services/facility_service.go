package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
	"github.com/yigit/prisonadmin/internal/pkg/validation"
)

// FacilityService handles prisons, their security levels, cells, amenities and clubs
type FacilityService struct {
	facilities FacilityStore
}

// NewFacilityService creates a new facility service instance
func NewFacilityService(facilities FacilityStore) *FacilityService {
	return &FacilityService{facilities: facilities}
}

func validName(value string) bool {
	return validation.NewStringValidation(strings.TrimSpace(value)).
		WithMaxLength(validation.NameMaxLength).
		Validate()
}

// GetSecurityLevels lists every security level
func (s *FacilityService) GetSecurityLevels(ctx context.Context) ([]models.PrisonSecurity, error) {
	return s.facilities.GetSecurityLevels(ctx)
}

// AddSecurityLevel stores a security level
func (s *FacilityService) AddSecurityLevel(ctx context.Context, p models.PrisonSecurity) error {
	if p.SecurityLevel <= 0 {
		return invalid("security level must be positive")
	}
	if p.GuardCount < 0 {
		return invalid("guard count cannot be negative")
	}
	if !validName(p.Location) {
		return invalid("location is required")
	}
	return s.facilities.CreateSecurityLevel(ctx, p)
}

// GetPrisons lists every prison
func (s *FacilityService) GetPrisons(ctx context.Context) ([]models.Prison, error) {
	return s.facilities.GetPrisons(ctx)
}

// AddPrison stores a prison
func (s *FacilityService) AddPrison(ctx context.Context, p models.Prison) error {
	if p.PrisonNum <= 0 {
		return invalid("prison number must be positive")
	}
	if p.SecurityLevel <= 0 {
		return invalid("security level must be positive")
	}
	return s.facilities.CreatePrison(ctx, p)
}

// GetCells lists every holding cell
func (s *FacilityService) GetCells(ctx context.Context) ([]models.HoldingCell, error) {
	return s.facilities.GetCells(ctx)
}

// CountCells returns the number of holding cells
func (s *FacilityService) CountCells(ctx context.Context) (int, error) {
	return s.facilities.CountCells(ctx)
}

// AddCell stores a holding cell
func (s *FacilityService) AddCell(ctx context.Context, c models.HoldingCell) error {
	if err := validateCellType(c.CellType); err != nil {
		return err
	}
	if c.PrisonNum <= 0 {
		return invalid("prison number must be positive")
	}
	return s.facilities.CreateCell(ctx, c)
}

// RemoveCell deletes a holding cell and, by cascade, the inmates held in it.
// It reports false when no cell has that identifier.
func (s *FacilityService) RemoveCell(ctx context.Context, cellType string) (bool, error) {
	if err := validateCellType(cellType); err != nil {
		return false, err
	}

	err := s.facilities.DeleteCell(ctx, cellType)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetAmenities lists every amenity
func (s *FacilityService) GetAmenities(ctx context.Context) ([]models.Amenity, error) {
	return s.facilities.GetAmenities(ctx)
}

// AddAmenity stores an amenity
func (s *FacilityService) AddAmenity(ctx context.Context, a models.Amenity) error {
	if !validName(a.AmenType) || !validName(a.Name) {
		return invalid("amenity type and name are required")
	}
	if a.PrisonNum <= 0 {
		return invalid("prison number must be positive")
	}
	return s.facilities.CreateAmenity(ctx, a)
}

// GetClubs lists every club
func (s *FacilityService) GetClubs(ctx context.Context) ([]models.Club, error) {
	return s.facilities.GetClubs(ctx)
}

// AddClub stores a club
func (s *FacilityService) AddClub(ctx context.Context, c models.Club) error {
	if !validName(c.Name) || !validName(c.ClubType) {
		return invalid("club name and type are required")
	}
	return s.facilities.CreateClub(ctx, c)
}
