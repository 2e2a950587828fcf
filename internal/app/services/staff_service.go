package services

import (
	"context"
	"strings"

	"github.com/yigit/prisonadmin/internal/app/models"
)

// HighSecurityLevel is the lowest security level reported as high security
const HighSecurityLevel = 8

// StaffService handles employees, their roles and assignments
type StaffService struct {
	staff   StaffStore
	reports ReportStore
}

// NewStaffService creates a new staff service instance
func NewStaffService(staff StaffStore, reports ReportStore) *StaffService {
	return &StaffService{
		staff:   staff,
		reports: reports,
	}
}

// GetAll lists every employee with its role
func (s *StaffService) GetAll(ctx context.Context) ([]models.Employee, error) {
	return s.staff.GetAll(ctx)
}

// Add stores an employee and, when a role is given, its role record
func (s *StaffService) Add(ctx context.Context, e models.Employee) error {
	if e.EmpID <= 0 {
		return invalid("employee id must be positive")
	}
	if !validName(e.Name) {
		return invalid("employee name is required")
	}
	if !e.Role.Valid() {
		return invalid("role %q is not one of GUARD, CHEF, MAINTENANCE, MEDICAL", e.Role)
	}
	if e.Role != models.RoleNone && strings.TrimSpace(e.RoleDetail) == "" {
		return invalid("role detail is required for role %s", e.Role)
	}
	return s.staff.Create(ctx, e)
}

// Assign places an employee at a prison
func (s *StaffService) Assign(ctx context.Context, w models.WorksAt) error {
	if w.EmpID <= 0 || w.PrisonNum <= 0 {
		return invalid("employee id and prison number must be positive")
	}
	if w.Salary < 0 {
		return invalid("salary cannot be negative")
	}
	return s.staff.Assign(ctx, w)
}

// AddCertification records a certification held by an employee
func (s *StaffService) AddCertification(ctx context.Context, c models.Certification) error {
	if c.EmpID <= 0 {
		return invalid("employee id must be positive")
	}
	if !validName(c.Certificate) {
		return invalid("certificate is required")
	}
	return s.staff.AddCertification(ctx, c)
}

// HighSecurityAssignments lists employees working at prisons of level HighSecurityLevel or above
func (s *StaffService) HighSecurityAssignments(ctx context.Context) ([]models.HighSecurityAssignment, error) {
	return s.reports.EmployeesAtSecurityLevel(ctx, HighSecurityLevel)
}
