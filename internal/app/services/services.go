package services

import (
	"context"
	"time"

	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/app/repositories"
)

// Services defined in this package:
// - InmateService: inmate records, transfers and release windows
// - MedicalService: medical records and their joins with inmates
// - SentenceService: sentences and good behaviour reductions
// - FacilityService: security levels, prisons, cells, amenities and clubs
// - StaffService: employees, roles, assignments and certifications
// - ReportService: the analytical query catalog
// - AdminService: connectivity check, schema initialization and seeding

// InmateStore is the persistence used by InmateService
type InmateStore interface {
	GetAll(ctx context.Context) ([]models.Inmate, error)
	GetByID(ctx context.Context, inmateID int64) (*models.Inmate, error)
	Create(ctx context.Context, inmate models.Inmate) error
	CreateComplete(ctx context.Context, record *models.CompleteInmate) error
	Delete(ctx context.Context, inmateID int64) error
	Transfer(ctx context.Context, inmateID int64, newCell string, on models.Date) error
	GetEndingBetween(ctx context.Context, from, to models.Date) ([]models.Inmate, error)
	GetByCell(ctx context.Context, cellType string) ([]models.Inmate, error)
	GetBasicInfo(ctx context.Context) ([]models.InmateBasic, error)
	Count(ctx context.Context) (int, error)
	GetHistory(ctx context.Context, inmateID int64) ([]models.CellAssignment, error)
}

// MedicalStore is the persistence used by MedicalService
type MedicalStore interface {
	GetAll(ctx context.Context) ([]models.MedicalRecord, error)
	Create(ctx context.Context, rec models.MedicalRecord) error
	GetInmatesWithMedical(ctx context.Context) ([]models.InmateMedical, error)
}

// SentenceStore is the persistence used by SentenceService
type SentenceStore interface {
	GetAll(ctx context.Context) ([]models.Sentence, error)
	Create(ctx context.Context, s *models.Sentence) error
	Reduce(ctx context.Context, inmateID int64, months int) error
}

// FacilityStore is the persistence used by FacilityService
type FacilityStore interface {
	GetSecurityLevels(ctx context.Context) ([]models.PrisonSecurity, error)
	CreateSecurityLevel(ctx context.Context, p models.PrisonSecurity) error
	GetPrisons(ctx context.Context) ([]models.Prison, error)
	CreatePrison(ctx context.Context, p models.Prison) error
	GetCells(ctx context.Context) ([]models.HoldingCell, error)
	CountCells(ctx context.Context) (int, error)
	CreateCell(ctx context.Context, c models.HoldingCell) error
	DeleteCell(ctx context.Context, cellType string) error
	GetAmenities(ctx context.Context) ([]models.Amenity, error)
	CreateAmenity(ctx context.Context, a models.Amenity) error
	GetClubs(ctx context.Context) ([]models.Club, error)
	CreateClub(ctx context.Context, c models.Club) error
}

// StaffStore is the persistence used by StaffService
type StaffStore interface {
	GetAll(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, e models.Employee) error
	Assign(ctx context.Context, w models.WorksAt) error
	AddCertification(ctx context.Context, c models.Certification) error
}

// ReportStore runs the analytical queries
type ReportStore interface {
	CountByCell(ctx context.Context) ([]models.CellCount, error)
	CrowdedCells(ctx context.Context, minimum int) ([]models.CellCount, error)
	HighSeverityCells(ctx context.Context, threshold int) ([]models.HighSeverityCell, error)
	InmatesWithMedicalAndSentence(ctx context.Context) ([]models.InmateMedicalSentence, error)
	InmatesInAllCells(ctx context.Context) ([]models.InmateRef, error)
	EmployeesAtSecurityLevel(ctx context.Context, minLevel int) ([]models.HighSecurityAssignment, error)
}

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

func (c Clock) today() models.Date {
	if c == nil {
		return models.DateOf(time.Now())
	}
	return models.DateOf(c())
}

// Services holds all the service instances
type Services struct {
	InmateService   *InmateService
	MedicalService  *MedicalService
	SentenceService *SentenceService
	FacilityService *FacilityService
	StaffService    *StaffService
	ReportService   *ReportService
	AdminService    *AdminService
}

// NewServices initializes all services on top of the repositories
func NewServices(repos *repositories.Repositories, admin *AdminService, clock Clock) *Services {
	return &Services{
		InmateService:   NewInmateService(repos.InmateRepository, clock),
		MedicalService:  NewMedicalService(repos.MedicalRepository, repos.ReportRepository),
		SentenceService: NewSentenceService(repos.SentenceRepository),
		FacilityService: NewFacilityService(repos.FacilityRepository),
		StaffService:    NewStaffService(repos.StaffRepository, repos.ReportRepository),
		ReportService:   NewReportService(repos.ReportRepository),
		AdminService:    admin,
	}
}
