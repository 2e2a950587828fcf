package controllers

import (
	"context"

	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/app/services"
)

// InmateService is the inmate behaviour the HTTP layer needs
type InmateService interface {
	GetAll(ctx context.Context) ([]models.Inmate, error)
	GetByID(ctx context.Context, inmateID int64) (*models.Inmate, error)
	Add(ctx context.Context, inmate models.Inmate) error
	AddComplete(ctx context.Context, record *models.CompleteInmate) error
	Remove(ctx context.Context, inmateID int64) (bool, error)
	Transfer(ctx context.Context, inmateID int64, newCell string) (bool, error)
	LeavingSoon(ctx context.Context) ([]models.Inmate, error)
	GetByCell(ctx context.Context, cellType string) ([]models.Inmate, error)
	GetBasicInfo(ctx context.Context) ([]models.InmateBasic, error)
	Count(ctx context.Context) (int, error)
	GetHistory(ctx context.Context, inmateID int64) ([]models.CellAssignment, error)
}

// MedicalService is the medical record behaviour the HTTP layer needs
type MedicalService interface {
	GetAll(ctx context.Context) ([]models.MedicalRecord, error)
	Add(ctx context.Context, rec models.MedicalRecord) error
	InmatesWithMedical(ctx context.Context) ([]models.InmateMedical, error)
	InmatesWithMedicalAndSentence(ctx context.Context) ([]models.InmateMedicalSentence, error)
}

// SentenceService is the sentence behaviour the HTTP layer needs
type SentenceService interface {
	GetAll(ctx context.Context) ([]models.Sentence, error)
	Add(ctx context.Context, sentence *models.Sentence) error
	Reduce(ctx context.Context, inmateID int64, months int) (bool, error)
}

// FacilityService is the facility behaviour the HTTP layer needs
type FacilityService interface {
	GetSecurityLevels(ctx context.Context) ([]models.PrisonSecurity, error)
	AddSecurityLevel(ctx context.Context, p models.PrisonSecurity) error
	GetPrisons(ctx context.Context) ([]models.Prison, error)
	AddPrison(ctx context.Context, p models.Prison) error
	GetCells(ctx context.Context) ([]models.HoldingCell, error)
	CountCells(ctx context.Context) (int, error)
	AddCell(ctx context.Context, c models.HoldingCell) error
	RemoveCell(ctx context.Context, cellType string) (bool, error)
	GetAmenities(ctx context.Context) ([]models.Amenity, error)
	AddAmenity(ctx context.Context, a models.Amenity) error
	GetClubs(ctx context.Context) ([]models.Club, error)
	AddClub(ctx context.Context, c models.Club) error
}

// StaffService is the staff behaviour the HTTP layer needs
type StaffService interface {
	GetAll(ctx context.Context) ([]models.Employee, error)
	Add(ctx context.Context, e models.Employee) error
	Assign(ctx context.Context, w models.WorksAt) error
	AddCertification(ctx context.Context, c models.Certification) error
	HighSecurityAssignments(ctx context.Context) ([]models.HighSecurityAssignment, error)
}

// ReportService runs the analytical queries
type ReportService interface {
	CountByCell(ctx context.Context) ([]models.CellCount, error)
	CrowdedCells(ctx context.Context, minimum int) ([]models.CellCount, error)
	HighSeverityCells(ctx context.Context) ([]models.HighSeverityCell, error)
	InmatesInAllCells(ctx context.Context) ([]models.InmateRef, error)
}

// AdminService covers connectivity and database lifecycle
type AdminService interface {
	CheckConnection(ctx context.Context) bool
	InitializeDatabase(ctx context.Context) error
	InsertDefaultData(ctx context.Context) error
}

// Controllers holds all the controller instances
type Controllers struct {
	Inmate   *InmateController
	Medical  *MedicalController
	Sentence *SentenceController
	Facility *FacilityController
	Staff    *StaffController
	Report   *ReportController
	Admin    *AdminController
}

// NewControllers creates every controller on top of the services
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Inmate:   NewInmateController(svcs.InmateService),
		Medical:  NewMedicalController(svcs.MedicalService),
		Sentence: NewSentenceController(svcs.SentenceService),
		Facility: NewFacilityController(svcs.FacilityService),
		Staff:    NewStaffController(svcs.StaffService),
		Report:   NewReportController(svcs.ReportService),
		Admin:    NewAdminController(svcs.AdminService),
	}
}
