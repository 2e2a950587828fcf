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

// MedicalRepository handles database operations for medical records
type MedicalRepository struct {
	db  Database
	log zerolog.Logger
}

// NewMedicalRepository creates a new medical repository
func NewMedicalRepository(database Database) *MedicalRepository {
	return &MedicalRepository{
		db:  database,
		log: logger.Component("repository.medical"),
	}
}

func insertMedical(rec models.MedicalRecord) squirrel.InsertBuilder {
	return psql.Insert("medical_data").
		Columns("record_num", "blood_type", "weight", "height", "sex", "inmate_id").
		Values(rec.RecordNum, rec.BloodType, rec.Weight, rec.Height, rec.Sex, rec.InmateID)
}

// GetAll retrieves every medical record
func (r *MedicalRepository) GetAll(ctx context.Context) ([]models.MedicalRecord, error) {
	records, err := selectAll(ctx, r.db,
		psql.Select("record_num", "blood_type", "weight", "height", "sex", "inmate_id").
			From("medical_data").
			OrderBy("record_num"),
		func(row pgx.CollectableRow) (models.MedicalRecord, error) {
			var m models.MedicalRecord
			err := row.Scan(&m.RecordNum, &m.BloodType, &m.Weight, &m.Height, &m.Sex, &m.InmateID)
			return m, err
		})
	if err != nil {
		r.log.Error().Err(err).Msg("Error fetching medical records")
		return nil, fmt.Errorf("failed to fetch medical records: %w", err)
	}
	return records, nil
}

// Create inserts a medical record for an existing inmate
func (r *MedicalRepository) Create(ctx context.Context, rec models.MedicalRecord) error {
	if _, err := execInTx(ctx, r.db, insertMedical(rec)); err != nil {
		r.log.Error().Err(err).Int64("recordNum", rec.RecordNum).Int64("inmateId", rec.InmateID).Msg("Error adding medical record")
		return fmt.Errorf("failed to add medical record: %w", err)
	}
	return nil
}

// GetInmatesWithMedical joins inmates with their medical records, ordered by inmate
func (r *MedicalRepository) GetInmatesWithMedical(ctx context.Context) ([]models.InmateMedical, error) {
	rows, err := selectAll(ctx, r.db,
		psql.Select("i.inmate_id", "i.holding_cell", "m.record_num", "m.blood_type", "m.weight", "m.height", "m.sex").
			From("inmates i").
			Join("medical_data m ON m.inmate_id = i.inmate_id").
			OrderBy("i.inmate_id", "m.record_num"),
		func(row pgx.CollectableRow) (models.InmateMedical, error) {
			var m models.InmateMedical
			err := row.Scan(&m.InmateID, &m.HoldingCell, &m.RecordNum, &m.BloodType, &m.Weight, &m.Height, &m.Sex)
			return m, err
		})
	if err != nil {
		r.log.Error().Err(err).Msg("Error fetching inmates with medical data")
		return nil, fmt.Errorf("failed to fetch inmates with medical data: %w", err)
	}
	return rows, nil
}
