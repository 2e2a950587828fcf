package services

import (
	"context"

	"github.com/yigit/prisonadmin/internal/app/models"
)

// MedicalService handles medical record operations
type MedicalService struct {
	records MedicalStore
	reports ReportStore
}

// NewMedicalService creates a new medical service instance
func NewMedicalService(records MedicalStore, reports ReportStore) *MedicalService {
	return &MedicalService{
		records: records,
		reports: reports,
	}
}

// GetAll lists every medical record
func (s *MedicalService) GetAll(ctx context.Context) ([]models.MedicalRecord, error) {
	return s.records.GetAll(ctx)
}

// Add validates and stores a medical record
func (s *MedicalService) Add(ctx context.Context, rec models.MedicalRecord) error {
	if rec.InmateID <= 0 {
		return invalid("inmate id must be positive")
	}
	if err := validateMedical(rec); err != nil {
		return err
	}
	return s.records.Create(ctx, rec)
}

// InmatesWithMedical joins inmates with their medical records
func (s *MedicalService) InmatesWithMedical(ctx context.Context) ([]models.InmateMedical, error) {
	return s.records.GetInmatesWithMedical(ctx)
}

// InmatesWithMedicalAndSentence joins inmates with medical records and sentences
func (s *MedicalService) InmatesWithMedicalAndSentence(ctx context.Context) ([]models.InmateMedicalSentence, error) {
	return s.reports.InmatesWithMedicalAndSentence(ctx)
}
