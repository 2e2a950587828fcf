package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/pkg/logger"
)

// ReportRepository runs the read-only analytical queries
type ReportRepository struct {
	db  Database
	log zerolog.Logger
}

// NewReportRepository creates a new report repository
func NewReportRepository(database Database) *ReportRepository {
	return &ReportRepository{
		db:  database,
		log: logger.Component("repository.report"),
	}
}

func scanCellCount(row pgx.CollectableRow) (models.CellCount, error) {
	var c models.CellCount
	err := row.Scan(&c.HoldingCell, &c.Count)
	return c, err
}

func inmatesPerCell() squirrel.SelectBuilder {
	return psql.Select("holding_cell", "COUNT(*) AS inmate_count").
		From("inmates").
		GroupBy("holding_cell")
}

// CountByCell counts inmates per holding cell, ordered by cell
func (r *ReportRepository) CountByCell(ctx context.Context) ([]models.CellCount, error) {
	counts, err := selectAll(ctx, r.db, inmatesPerCell().OrderBy("holding_cell"), scanCellCount)
	if err != nil {
		r.log.Error().Err(err).Msg("Error counting inmates by cell")
		return nil, fmt.Errorf("failed to count inmates by cell: %w", err)
	}
	return counts, nil
}

// CrowdedCells returns the cells holding at least minimum inmates, fullest first
func (r *ReportRepository) CrowdedCells(ctx context.Context, minimum int) ([]models.CellCount, error) {
	counts, err := selectAll(ctx, r.db,
		inmatesPerCell().
			Having("COUNT(*) >= ?", minimum).
			OrderBy("inmate_count DESC", "holding_cell"),
		scanCellCount)
	if err != nil {
		r.log.Error().Err(err).Int("minimum", minimum).Msg("Error finding crowded cells")
		return nil, fmt.Errorf("failed to find crowded cells: %w", err)
	}
	return counts, nil
}

// HighSeverityCells returns the cells whose number of inmates serving a sentence
// above threshold equals the largest such number across all cells.
func (r *ReportRepository) HighSeverityCells(ctx context.Context, threshold int) ([]models.HighSeverityCell, error) {
	// Built with '?' placeholders; the outer builder renumbers them.
	perCell := squirrel.Select("COUNT(DISTINCT i2.inmate_id) AS severe_count").
		From("inmates i2").
		Join("sentences s2 ON s2.inmate_id = i2.inmate_id").
		Where("s2.severity > ?", threshold).
		GroupBy("i2.holding_cell")
	maxPerCell := squirrel.Select("MAX(per_cell.severe_count)").
		FromSelect(perCell, "per_cell")

	query := psql.Select("i.holding_cell", "c.prison_num", "COUNT(DISTINCT i.inmate_id) AS severe_count").
		From("inmates i").
		Join("cells c ON c.cell_type = i.holding_cell").
		Join("sentences s ON s.inmate_id = i.inmate_id").
		Where("s.severity > ?", threshold).
		GroupBy("i.holding_cell", "c.prison_num").
		Having(squirrel.Expr("COUNT(DISTINCT i.inmate_id) = (?)", maxPerCell)).
		OrderBy("i.holding_cell")

	cells, err := selectAll(ctx, r.db, query, func(row pgx.CollectableRow) (models.HighSeverityCell, error) {
		var c models.HighSeverityCell
		err := row.Scan(&c.HoldingCell, &c.PrisonNum, &c.HighSeverityCount)
		return c, err
	})
	if err != nil {
		r.log.Error().Err(err).Int("threshold", threshold).Msg("Error finding high severity cells")
		return nil, fmt.Errorf("failed to find high severity cells: %w", err)
	}
	return cells, nil
}

// InmatesWithMedicalAndSentence joins inmates, medical data and sentences, longest sentence first
func (r *ReportRepository) InmatesWithMedicalAndSentence(ctx context.Context) ([]models.InmateMedicalSentence, error) {
	rows, err := selectAll(ctx, r.db,
		psql.Select("i.inmate_id", "i.holding_cell", "m.blood_type", "m.weight", "m.height",
			"s.crime_name", "s.severity", "s.duration").
			From("inmates i").
			Join("medical_data m ON m.inmate_id = i.inmate_id").
			Join("sentences s ON s.inmate_id = i.inmate_id").
			OrderBy("s.duration DESC", "i.inmate_id"),
		func(row pgx.CollectableRow) (models.InmateMedicalSentence, error) {
			var m models.InmateMedicalSentence
			err := row.Scan(&m.InmateID, &m.HoldingCell, &m.BloodType, &m.Weight, &m.Height,
				&m.CrimeName, &m.Severity, &m.Duration)
			return m, err
		})
	if err != nil {
		r.log.Error().Err(err).Msg("Error joining inmates with medical and sentence data")
		return nil, fmt.Errorf("failed to fetch inmates with medical and sentence data: %w", err)
	}
	return rows, nil
}

// InmatesInAllCells returns the inmates whose assignment history covers every
// holding cell that appears in any history. With no history at all every inmate qualifies.
func (r *ReportRepository) InmatesInAllCells(ctx context.Context) ([]models.InmateRef, error) {
	query := psql.Select("i.inmate_id", "i.holding_cell").
		From("inmates i").
		Where(`NOT EXISTS (
			SELECT 1
			FROM (SELECT DISTINCT holding_cell FROM inmate_cell_history) hc
			WHERE NOT EXISTS (
				SELECT 1
				FROM inmate_cell_history h
				WHERE h.inmate_id = i.inmate_id
				AND h.holding_cell = hc.holding_cell
			)
		)`).
		OrderBy("i.inmate_id")

	refs, err := selectAll(ctx, r.db, query, func(row pgx.CollectableRow) (models.InmateRef, error) {
		var ref models.InmateRef
		err := row.Scan(&ref.InmateID, &ref.HoldingCell)
		return ref, err
	})
	if err != nil {
		r.log.Error().Err(err).Msg("Error finding inmates in all cells")
		return nil, fmt.Errorf("failed to find inmates in all cells: %w", err)
	}
	return refs, nil
}

// EmployeesAtSecurityLevel returns the assignments of employees working at prisons
// whose security level is at least minLevel
func (r *ReportRepository) EmployeesAtSecurityLevel(ctx context.Context, minLevel int) ([]models.HighSecurityAssignment, error) {
	rows, err := selectAll(ctx, r.db,
		psql.Select("e.emp_id", "e.name", "w.prison_num", "ps.security_level", "ps.location", "w.salary").
			From("employees e").
			Join("works_at w ON w.emp_id = e.emp_id").
			Join("prison_info p ON p.prison_num = w.prison_num").
			Join("prison_security ps ON ps.security_level = p.security_level").
			Where(squirrel.GtOrEq{"ps.security_level": minLevel}).
			OrderBy("e.emp_id", "w.prison_num"),
		func(row pgx.CollectableRow) (models.HighSecurityAssignment, error) {
			var a models.HighSecurityAssignment
			err := row.Scan(&a.EmpID, &a.Name, &a.PrisonNum, &a.SecurityLevel, &a.Location, &a.Salary)
			return a, err
		})
	if err != nil {
		r.log.Error().Err(err).Int("minLevel", minLevel).Msg("Error fetching employees at high security prisons")
		return nil, fmt.Errorf("failed to fetch employees at high security prisons: %w", err)
	}
	return rows, nil
}
