package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/prisonadmin/internal/db"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
	"github.com/yigit/prisonadmin/internal/pkg/dberrors"
)

// Database is the part of the connection manager the repositories use.
type Database interface {
	WithConnection(ctx context.Context, fn db.ConnFn) error
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// psql builds every statement with PostgreSQL placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	InmateRepository   *InmateRepository
	MedicalRepository  *MedicalRepository
	SentenceRepository *SentenceRepository
	FacilityRepository *FacilityRepository
	StaffRepository    *StaffRepository
	ReportRepository   *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database Database) *Repositories {
	return &Repositories{
		InmateRepository:   NewInmateRepository(database),
		MedicalRepository:  NewMedicalRepository(database),
		SentenceRepository: NewSentenceRepository(database),
		FacilityRepository: NewFacilityRepository(database),
		StaffRepository:    NewStaffRepository(database),
		ReportRepository:   NewReportRepository(database),
	}
}

func buildSQL(b squirrel.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: failed to build SQL: %w", apperrors.ErrQuery, err)
	}
	return query, args, nil
}

// collect runs a select and maps every row with scan.
func collect[T any](ctx context.Context, q db.Querier, b squirrel.Sqlizer, scan pgx.RowToFunc[T]) ([]T, error) {
	query, args, err := buildSQL(b)
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, dberrors.Classify(err)
	}

	items, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, dberrors.Classify(err)
	}
	return items, nil
}

// selectAll runs a read-only select on a borrowed connection.
func selectAll[T any](ctx context.Context, database Database, b squirrel.Sqlizer, scan pgx.RowToFunc[T]) ([]T, error) {
	var items []T
	err := database.WithConnection(ctx, func(ctx context.Context, q db.Querier) error {
		var err error
		items, err = collect(ctx, q, b, scan)
		return err
	})
	return items, err
}

// execAffected runs a write statement and reports the number of affected rows.
func execAffected(ctx context.Context, q db.Querier, b squirrel.Sqlizer) (int64, error) {
	query, args, err := buildSQL(b)
	if err != nil {
		return 0, err
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, dberrors.Classify(err)
	}
	return tag.RowsAffected(), nil
}

// execInTx runs a single write statement inside its own transaction.
func execInTx(ctx context.Context, database Database, b squirrel.Sqlizer) (int64, error) {
	var affected int64
	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		affected, err = execAffected(ctx, tx, b)
		return err
	})
	return affected, err
}

// countRows runs a single-value count query.
func countRows(ctx context.Context, database Database, b squirrel.Sqlizer) (int, error) {
	query, args, err := buildSQL(b)
	if err != nil {
		return 0, err
	}

	var count int64
	err = database.WithConnection(ctx, func(ctx context.Context, q db.Querier) error {
		if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
			return dberrors.Classify(err)
		}
		return nil
	})
	return int(count), err
}
