package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
	"github.com/yigit/prisonadmin/internal/pkg/logger"
)

var inmateColumns = []string{"inmate_id", "holding_cell", "health_num", "start_date", "end_date"}

// InmateRepository handles database operations for inmates
type InmateRepository struct {
	db  Database
	log zerolog.Logger
}

// NewInmateRepository creates a new inmate repository
func NewInmateRepository(database Database) *InmateRepository {
	return &InmateRepository{
		db:  database,
		log: logger.Component("repository.inmate"),
	}
}

func scanInmate(row pgx.CollectableRow) (models.Inmate, error) {
	var i models.Inmate
	err := row.Scan(&i.InmateID, &i.HoldingCell, &i.HealthNum, &i.StartDate.Time, &i.EndDate.Time)
	return i, err
}

func scanInmateBasic(row pgx.CollectableRow) (models.InmateBasic, error) {
	var i models.InmateBasic
	err := row.Scan(&i.InmateID, &i.HoldingCell, &i.EndDate.Time)
	return i, err
}

func insertInmate(inmate models.Inmate) squirrel.InsertBuilder {
	return psql.Insert("inmates").
		Columns(inmateColumns...).
		Values(inmate.InmateID, inmate.HoldingCell, inmate.HealthNum, inmate.StartDate.Time, inmate.EndDate.Time)
}

func insertAssignment(inmateID int64, cell string, on models.Date) squirrel.InsertBuilder {
	return psql.Insert("inmate_cell_history").
		Columns("inmate_id", "holding_cell", "assigned_on").
		Values(inmateID, cell, on.Time).
		Suffix("ON CONFLICT DO NOTHING")
}

// GetAll retrieves all inmates ordered by id
func (r *InmateRepository) GetAll(ctx context.Context) ([]models.Inmate, error) {
	inmates, err := selectAll(ctx, r.db,
		psql.Select(inmateColumns...).From("inmates").OrderBy("inmate_id"),
		scanInmate)
	if err != nil {
		r.log.Error().Err(err).Msg("Error fetching inmates")
		return nil, fmt.Errorf("failed to fetch inmates: %w", err)
	}
	return inmates, nil
}

// GetByID retrieves a single inmate
func (r *InmateRepository) GetByID(ctx context.Context, inmateID int64) (*models.Inmate, error) {
	inmates, err := selectAll(ctx, r.db,
		psql.Select(inmateColumns...).From("inmates").Where(squirrel.Eq{"inmate_id": inmateID}),
		scanInmate)
	if err != nil {
		r.log.Error().Err(err).Int64("inmateId", inmateID).Msg("Error fetching inmate")
		return nil, fmt.Errorf("failed to fetch inmate: %w", err)
	}
	if len(inmates) == 0 {
		return nil, apperrors.ErrInmateNotFound
	}
	return &inmates[0], nil
}

// Create inserts an inmate and records its first cell assignment
func (r *InmateRepository) Create(ctx context.Context, inmate models.Inmate) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := execAffected(ctx, tx, insertInmate(inmate)); err != nil {
			return err
		}
		_, err := execAffected(ctx, tx, insertAssignment(inmate.InmateID, inmate.HoldingCell, inmate.StartDate))
		return err
	})
	if err != nil {
		r.log.Error().Err(err).Int64("inmateId", inmate.InmateID).Str("holdingCell", inmate.HoldingCell).Msg("Error adding inmate")
		return fmt.Errorf("failed to add inmate: %w", err)
	}
	return nil
}

// CreateComplete inserts an inmate with its sentence and medical record atomically.
// Nothing is persisted unless all inserts succeed.
func (r *InmateRepository) CreateComplete(ctx context.Context, record *models.CompleteInmate) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := execAffected(ctx, tx, insertInmate(record.Inmate)); err != nil {
			return fmt.Errorf("inmate: %w", err)
		}

		if _, err := execAffected(ctx, tx, insertAssignment(record.Inmate.InmateID, record.Inmate.HoldingCell, record.Inmate.StartDate)); err != nil {
			return fmt.Errorf("cell history: %w", err)
		}

		record.Sentence.InmateID = record.Inmate.InmateID
		if err := insertSentence(ctx, tx, &record.Sentence); err != nil {
			return fmt.Errorf("sentence: %w", err)
		}

		record.Medical.InmateID = record.Inmate.InmateID
		if _, err := execAffected(ctx, tx, insertMedical(record.Medical)); err != nil {
			return fmt.Errorf("medical record: %w", err)
		}
		return nil
	})
	if err != nil {
		r.log.Error().Err(err).
			Int64("inmateId", record.Inmate.InmateID).
			Int64("recordNum", record.Medical.RecordNum).
			Msg("Error adding complete inmate record, rolled back")
		return fmt.Errorf("failed to add complete inmate record: %w", err)
	}
	return nil
}

// Delete removes an inmate; sentences, medical data and cell history cascade.
func (r *InmateRepository) Delete(ctx context.Context, inmateID int64) error {
	affected, err := execInTx(ctx, r.db, psql.Delete("inmates").Where(squirrel.Eq{"inmate_id": inmateID}))
	if err != nil {
		r.log.Error().Err(err).Int64("inmateId", inmateID).Msg("Error removing inmate")
		return fmt.Errorf("failed to remove inmate: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrInmateNotFound
	}
	return nil
}

// Transfer moves an inmate to another cell and appends the assignment to its history
func (r *InmateRepository) Transfer(ctx context.Context, inmateID int64, newCell string, on models.Date) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		affected, err := execAffected(ctx, tx, psql.Update("inmates").
			Set("holding_cell", newCell).
			Where(squirrel.Eq{"inmate_id": inmateID}))
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperrors.ErrInmateNotFound
		}

		_, err = execAffected(ctx, tx, insertAssignment(inmateID, newCell, on))
		return err
	})
	if errors.Is(err, apperrors.ErrInmateNotFound) {
		return err
	}
	if err != nil {
		r.log.Error().Err(err).Int64("inmateId", inmateID).Str("newHoldingCell", newCell).Msg("Error transferring inmate")
		return fmt.Errorf("failed to transfer inmate: %w", err)
	}
	return nil
}

// GetEndingBetween retrieves inmates whose end date falls in [from, to], earliest first
func (r *InmateRepository) GetEndingBetween(ctx context.Context, from, to models.Date) ([]models.Inmate, error) {
	inmates, err := selectAll(ctx, r.db,
		psql.Select(inmateColumns...).From("inmates").
			Where(squirrel.GtOrEq{"end_date": from.Time}).
			Where(squirrel.LtOrEq{"end_date": to.Time}).
			OrderBy("end_date", "inmate_id"),
		scanInmate)
	if err != nil {
		r.log.Error().Err(err).Str("from", from.String()).Str("to", to.String()).Msg("Error fetching upcoming releases")
		return nil, fmt.Errorf("failed to fetch upcoming releases: %w", err)
	}
	return inmates, nil
}

// GetByCell retrieves the inmates currently held in a cell
func (r *InmateRepository) GetByCell(ctx context.Context, cellType string) ([]models.Inmate, error) {
	inmates, err := selectAll(ctx, r.db,
		psql.Select(inmateColumns...).From("inmates").
			Where(squirrel.Eq{"holding_cell": cellType}).
			OrderBy("inmate_id"),
		scanInmate)
	if err != nil {
		r.log.Error().Err(err).Str("cellType", cellType).Msg("Error fetching inmates by cell")
		return nil, fmt.Errorf("failed to fetch inmates by cell: %w", err)
	}
	return inmates, nil
}

// GetBasicInfo retrieves the id, cell and end date of every inmate
func (r *InmateRepository) GetBasicInfo(ctx context.Context) ([]models.InmateBasic, error) {
	inmates, err := selectAll(ctx, r.db,
		psql.Select("inmate_id", "holding_cell", "end_date").From("inmates").OrderBy("inmate_id"),
		scanInmateBasic)
	if err != nil {
		r.log.Error().Err(err).Msg("Error fetching basic inmate info")
		return nil, fmt.Errorf("failed to fetch basic inmate info: %w", err)
	}
	return inmates, nil
}

// Count returns the number of inmates
func (r *InmateRepository) Count(ctx context.Context) (int, error) {
	count, err := countRows(ctx, r.db, psql.Select("COUNT(*)").From("inmates"))
	if err != nil {
		r.log.Error().Err(err).Msg("Error counting inmates")
		return 0, fmt.Errorf("failed to count inmates: %w", err)
	}
	return count, nil
}

// GetHistory retrieves the cell assignments of an inmate, oldest first
func (r *InmateRepository) GetHistory(ctx context.Context, inmateID int64) ([]models.CellAssignment, error) {
	history, err := selectAll(ctx, r.db,
		psql.Select("inmate_id", "holding_cell", "assigned_on").From("inmate_cell_history").
			Where(squirrel.Eq{"inmate_id": inmateID}).
			OrderBy("assigned_on", "holding_cell"),
		func(row pgx.CollectableRow) (models.CellAssignment, error) {
			var a models.CellAssignment
			err := row.Scan(&a.InmateID, &a.HoldingCell, &a.AssignedOn.Time)
			return a, err
		})
	if err != nil {
		r.log.Error().Err(err).Int64("inmateId", inmateID).Msg("Error fetching cell history")
		return nil, fmt.Errorf("failed to fetch cell history: %w", err)
	}
	return history, nil
}
