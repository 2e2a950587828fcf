package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/db"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
	"github.com/yigit/prisonadmin/internal/pkg/dberrors"
	"github.com/yigit/prisonadmin/internal/pkg/logger"
)

// SentenceRepository handles database operations for sentences
type SentenceRepository struct {
	db  Database
	log zerolog.Logger
}

// NewSentenceRepository creates a new sentence repository
func NewSentenceRepository(database Database) *SentenceRepository {
	return &SentenceRepository{
		db:  database,
		log: logger.Component("repository.sentence"),
	}
}

// insertSentence inserts a sentence and fills in its generated id
func insertSentence(ctx context.Context, q db.Querier, s *models.Sentence) error {
	query, args, err := buildSQL(psql.Insert("sentences").
		Columns("duration", "crime_name", "crime_type", "severity", "inmate_id").
		Values(s.Duration, s.CrimeName, s.CrimeType, s.Severity, s.InmateID).
		Suffix("RETURNING sentence_id"))
	if err != nil {
		return err
	}

	if err := q.QueryRow(ctx, query, args...).Scan(&s.SentenceID); err != nil {
		return dberrors.Classify(err)
	}
	return nil
}

// GetAll retrieves every sentence
func (r *SentenceRepository) GetAll(ctx context.Context) ([]models.Sentence, error) {
	sentences, err := selectAll(ctx, r.db,
		psql.Select("sentence_id", "duration", "crime_name", "crime_type", "severity", "inmate_id").
			From("sentences").
			OrderBy("inmate_id", "sentence_id"),
		func(row pgx.CollectableRow) (models.Sentence, error) {
			var s models.Sentence
			err := row.Scan(&s.SentenceID, &s.Duration, &s.CrimeName, &s.CrimeType, &s.Severity, &s.InmateID)
			return s, err
		})
	if err != nil {
		r.log.Error().Err(err).Msg("Error fetching sentences")
		return nil, fmt.Errorf("failed to fetch sentences: %w", err)
	}
	return sentences, nil
}

// Create inserts a sentence for an existing inmate
func (r *SentenceRepository) Create(ctx context.Context, s *models.Sentence) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return insertSentence(ctx, tx, s)
	})
	if err != nil {
		r.log.Error().Err(err).Int64("inmateId", s.InmateID).Str("crimeName", s.CrimeName).Msg("Error adding sentence")
		return fmt.Errorf("failed to add sentence: %w", err)
	}
	return nil
}

// Reduce shortens every sentence of an inmate by months, never below zero
func (r *SentenceRepository) Reduce(ctx context.Context, inmateID int64, months int) error {
	affected, err := execInTx(ctx, r.db, psql.Update("sentences").
		Set("duration", squirrel.Expr("GREATEST(duration - ?, 0)", months)).
		Where(squirrel.Eq{"inmate_id": inmateID}))
	if err != nil {
		r.log.Error().Err(err).Int64("inmateId", inmateID).Int("months", months).Msg("Error reducing sentence")
		return fmt.Errorf("failed to reduce sentence: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSentenceNotFound
	}
	return nil
}
