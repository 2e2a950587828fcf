package services

import (
	"context"

	"github.com/yigit/prisonadmin/internal/app/models"
)

// DefaultCrowdedMinimum is the inmate count used when no usable minimum is supplied
const DefaultCrowdedMinimum = 2

// ReportService runs the analytical queries
type ReportService struct {
	reports ReportStore
}

// NewReportService creates a new report service instance
func NewReportService(reports ReportStore) *ReportService {
	return &ReportService{reports: reports}
}

// CountByCell counts inmates per holding cell
func (s *ReportService) CountByCell(ctx context.Context) ([]models.CellCount, error) {
	return s.reports.CountByCell(ctx)
}

// CrowdedCells lists cells holding at least minimum inmates.
// A zero minimum falls back to DefaultCrowdedMinimum; a negative one matches every cell.
func (s *ReportService) CrowdedCells(ctx context.Context, minimum int) ([]models.CellCount, error) {
	if minimum == 0 {
		minimum = DefaultCrowdedMinimum
	}
	return s.reports.CrowdedCells(ctx, minimum)
}

// HighSeverityCells lists the cells holding the most inmates with a sentence
// severity above models.HighSeverityThreshold
func (s *ReportService) HighSeverityCells(ctx context.Context) ([]models.HighSeverityCell, error) {
	return s.reports.HighSeverityCells(ctx, models.HighSeverityThreshold)
}

// InmatesInAllCells lists inmates that have been held in every recorded cell
func (s *ReportService) InmatesInAllCells(ctx context.Context) ([]models.InmateRef, error) {
	return s.reports.InmatesInAllCells(ctx)
}
