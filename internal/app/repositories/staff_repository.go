package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/pkg/logger"
)

// roleTables maps each employee role to its specialization table and detail column
var roleTables = map[models.EmployeeRole]struct {
	table  string
	column string
}{
	models.RoleGuard:       {"guards", "guard_area"},
	models.RoleChef:        {"chefs", "meal_to_cook"},
	models.RoleMaintenance: {"maintenance", "maintenance_type"},
	models.RoleMedical:     {"medical_staff", "medical_type"},
}

// StaffRepository handles employees, their roles, assignments and certifications
type StaffRepository struct {
	db  Database
	log zerolog.Logger
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(database Database) *StaffRepository {
	return &StaffRepository{
		db:  database,
		log: logger.Component("repository.staff"),
	}
}

// GetAll retrieves every employee with its role, if any
func (r *StaffRepository) GetAll(ctx context.Context) ([]models.Employee, error) {
	employees, err := selectAll(ctx, r.db,
		psql.Select(
			"e.emp_id", "e.name",
			`CASE
				WHEN g.emp_id IS NOT NULL THEN 'GUARD'
				WHEN c.emp_id IS NOT NULL THEN 'CHEF'
				WHEN m.emp_id IS NOT NULL THEN 'MAINTENANCE'
				WHEN ms.emp_id IS NOT NULL THEN 'MEDICAL'
				ELSE ''
			END`,
			"COALESCE(g.guard_area, c.meal_to_cook, m.maintenance_type, ms.medical_type, '')",
		).
			From("employees e").
			LeftJoin("guards g ON g.emp_id = e.emp_id").
			LeftJoin("chefs c ON c.emp_id = e.emp_id").
			LeftJoin("maintenance m ON m.emp_id = e.emp_id").
			LeftJoin("medical_staff ms ON ms.emp_id = e.emp_id").
			OrderBy("e.emp_id"),
		func(row pgx.CollectableRow) (models.Employee, error) {
			var e models.Employee
			var role string
			err := row.Scan(&e.EmpID, &e.Name, &role, &e.RoleDetail)
			e.Role = models.EmployeeRole(role)
			return e, err
		})
	if err != nil {
		r.log.Error().Err(err).Msg("Error fetching employees")
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	return employees, nil
}

// Create inserts an employee and, when a role is given, its specialization row
func (r *StaffRepository) Create(ctx context.Context, e models.Employee) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := execAffected(ctx, tx, psql.Insert("employees").
			Columns("emp_id", "name").
			Values(e.EmpID, e.Name)); err != nil {
			return err
		}

		spec, ok := roleTables[e.Role]
		if !ok {
			return nil
		}
		_, err := execAffected(ctx, tx, psql.Insert(spec.table).
			Columns("emp_id", spec.column).
			Values(e.EmpID, e.RoleDetail))
		return err
	})
	if err != nil {
		r.log.Error().Err(err).Int64("empId", e.EmpID).Str("role", string(e.Role)).Msg("Error adding employee")
		return fmt.Errorf("failed to add employee: %w", err)
	}
	return nil
}

// Assign places an employee at a prison with a salary
func (r *StaffRepository) Assign(ctx context.Context, w models.WorksAt) error {
	_, err := execInTx(ctx, r.db, psql.Insert("works_at").
		Columns("prison_num", "emp_id", "salary").
		Values(w.PrisonNum, w.EmpID, w.Salary))
	if err != nil {
		r.log.Error().Err(err).Int64("empId", w.EmpID).Int64("prisonNum", w.PrisonNum).Msg("Error assigning employee")
		return fmt.Errorf("failed to assign employee: %w", err)
	}
	return nil
}

// AddCertification records a certification held by an employee
func (r *StaffRepository) AddCertification(ctx context.Context, c models.Certification) error {
	_, err := execInTx(ctx, r.db, psql.Insert("certifications").
		Columns("certificate", "skills", "emp_id").
		Values(c.Certificate, c.Skills, c.EmpID))
	if err != nil {
		r.log.Error().Err(err).Int64("empId", c.EmpID).Str("certificate", c.Certificate).Msg("Error adding certification")
		return fmt.Errorf("failed to add certification: %w", err)
	}
	return nil
}
