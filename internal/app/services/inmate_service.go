package services

import (
	"context"
	"errors"

	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
)

// LeavingSoonDays is the release window, in days from today, reported as leaving soon
const LeavingSoonDays = 30

// InmateService handles inmate-related operations
type InmateService struct {
	inmates InmateStore
	clock   Clock
}

// NewInmateService creates a new inmate service instance
func NewInmateService(inmates InmateStore, clock Clock) *InmateService {
	return &InmateService{
		inmates: inmates,
		clock:   clock,
	}
}

// GetAll lists every inmate
func (s *InmateService) GetAll(ctx context.Context) ([]models.Inmate, error) {
	return s.inmates.GetAll(ctx)
}

// GetByID retrieves a single inmate
func (s *InmateService) GetByID(ctx context.Context, inmateID int64) (*models.Inmate, error) {
	if inmateID <= 0 {
		return nil, invalid("inmate id must be positive")
	}
	return s.inmates.GetByID(ctx, inmateID)
}

// Add validates and stores a new inmate
func (s *InmateService) Add(ctx context.Context, inmate models.Inmate) error {
	if err := validateInmate(inmate); err != nil {
		return err
	}
	return s.inmates.Create(ctx, inmate)
}

// AddComplete stores an inmate with its sentence and medical record in one transaction
func (s *InmateService) AddComplete(ctx context.Context, record *models.CompleteInmate) error {
	if record == nil {
		return invalid("inmate record is required")
	}
	if err := validateInmate(record.Inmate); err != nil {
		return err
	}
	if err := validateSentence(record.Sentence); err != nil {
		return err
	}
	if err := validateMedical(record.Medical); err != nil {
		return err
	}
	return s.inmates.CreateComplete(ctx, record)
}

// Remove deletes an inmate. It reports false when no inmate has that id.
func (s *InmateService) Remove(ctx context.Context, inmateID int64) (bool, error) {
	if inmateID <= 0 {
		return false, invalid("inmate id must be positive")
	}

	err := s.inmates.Delete(ctx, inmateID)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Transfer moves an inmate to another holding cell as of today.
// It reports false when no inmate has that id.
func (s *InmateService) Transfer(ctx context.Context, inmateID int64, newCell string) (bool, error) {
	if inmateID <= 0 {
		return false, invalid("inmate id must be positive")
	}
	if err := validateCellType(newCell); err != nil {
		return false, err
	}

	err := s.inmates.Transfer(ctx, inmateID, newCell, s.clock.today())
	if errors.Is(err, apperrors.ErrInmateNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// LeavingSoon lists inmates whose sentence ends within the next LeavingSoonDays days,
// today included, earliest release first
func (s *InmateService) LeavingSoon(ctx context.Context) ([]models.Inmate, error) {
	today := s.clock.today()
	return s.inmates.GetEndingBetween(ctx, today, today.AddDays(LeavingSoonDays))
}

// GetByCell lists the inmates currently held in cellType
func (s *InmateService) GetByCell(ctx context.Context, cellType string) ([]models.Inmate, error) {
	if err := validateCellType(cellType); err != nil {
		return nil, err
	}
	return s.inmates.GetByCell(ctx, cellType)
}

// GetBasicInfo lists id, cell and end date of every inmate
func (s *InmateService) GetBasicInfo(ctx context.Context) ([]models.InmateBasic, error) {
	return s.inmates.GetBasicInfo(ctx)
}

// Count returns the number of inmates
func (s *InmateService) Count(ctx context.Context) (int, error) {
	return s.inmates.Count(ctx)
}

// GetHistory lists the cell assignments of an inmate
func (s *InmateService) GetHistory(ctx context.Context, inmateID int64) ([]models.CellAssignment, error) {
	if inmateID <= 0 {
		return nil, invalid("inmate id must be positive")
	}
	return s.inmates.GetHistory(ctx, inmateID)
}
