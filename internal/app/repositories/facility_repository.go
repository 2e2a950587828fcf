package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
	"github.com/yigit/prisonadmin/internal/pkg/logger"
)

// FacilityRepository handles prisons, security levels, cells, amenities and clubs
type FacilityRepository struct {
	db  Database
	log zerolog.Logger
}

// NewFacilityRepository creates a new facility repository
func NewFacilityRepository(database Database) *FacilityRepository {
	return &FacilityRepository{
		db:  database,
		log: logger.Component("repository.facility"),
	}
}

// GetSecurityLevels retrieves every security level
func (r *FacilityRepository) GetSecurityLevels(ctx context.Context) ([]models.PrisonSecurity, error) {
	levels, err := selectAll(ctx, r.db,
		psql.Select("security_level", "guard_count", "location").From("prison_security").OrderBy("security_level"),
		func(row pgx.CollectableRow) (models.PrisonSecurity, error) {
			var p models.PrisonSecurity
			err := row.Scan(&p.SecurityLevel, &p.GuardCount, &p.Location)
			return p, err
		})
	if err != nil {
		r.log.Error().Err(err).Msg("Error fetching security levels")
		return nil, fmt.Errorf("failed to fetch security levels: %w", err)
	}
	return levels, nil
}

// CreateSecurityLevel inserts a security level
func (r *FacilityRepository) CreateSecurityLevel(ctx context.Context, p models.PrisonSecurity) error {
	_, err := execInTx(ctx, r.db, psql.Insert("prison_security").
		Columns("security_level", "guard_count", "location").
		Values(p.SecurityLevel, p.GuardCount, p.Location))
	if err != nil {
		r.log.Error().Err(err).Int("securityLevel", p.SecurityLevel).Msg("Error adding security level")
		return fmt.Errorf("failed to add security level: %w", err)
	}
	return nil
}

// GetPrisons retrieves every prison
func (r *FacilityRepository) GetPrisons(ctx context.Context) ([]models.Prison, error) {
	prisons, err := selectAll(ctx, r.db,
		psql.Select("prison_num", "security_level").From("prison_info").OrderBy("prison_num"),
		func(row pgx.CollectableRow) (models.Prison, error) {
			var p models.Prison
			err := row.Scan(&p.PrisonNum, &p.SecurityLevel)
			return p, err
		})
	if err != nil {
		r.log.Error().Err(err).Msg("Error fetching prisons")
		return nil, fmt.Errorf("failed to fetch prisons: %w", err)
	}
	return prisons, nil
}

// CreatePrison inserts a prison
func (r *FacilityRepository) CreatePrison(ctx context.Context, p models.Prison) error {
	_, err := execInTx(ctx, r.db, psql.Insert("prison_info").
		Columns("prison_num", "security_level").
		Values(p.PrisonNum, p.SecurityLevel))
	if err != nil {
		r.log.Error().Err(err).Int64("prisonNum", p.PrisonNum).Msg("Error adding prison")
		return fmt.Errorf("failed to add prison: %w", err)
	}
	return nil
}

// GetCells retrieves every holding cell
func (r *FacilityRepository) GetCells(ctx context.Context) ([]models.HoldingCell, error) {
	cells, err := selectAll(ctx, r.db,
		psql.Select("cell_type", "prison_num").From("cells").OrderBy("cell_type"),
		func(row pgx.CollectableRow) (models.HoldingCell, error) {
			var c models.HoldingCell
			err := row.Scan(&c.CellType, &c.PrisonNum)
			return c, err
		})
	if err != nil {
		r.log.Error().Err(err).Msg("Error fetching cells")
		return nil, fmt.Errorf("failed to fetch cells: %w", err)
	}
	return cells, nil
}

// CountCells returns the number of holding cells
func (r *FacilityRepository) CountCells(ctx context.Context) (int, error) {
	count, err := countRows(ctx, r.db, psql.Select("COUNT(*)").From("cells"))
	if err != nil {
		r.log.Error().Err(err).Msg("Error counting cells")
		return 0, fmt.Errorf("failed to count cells: %w", err)
	}
	return count, nil
}

// CreateCell inserts a holding cell
func (r *FacilityRepository) CreateCell(ctx context.Context, c models.HoldingCell) error {
	_, err := execInTx(ctx, r.db, psql.Insert("cells").
		Columns("cell_type", "prison_num").
		Values(c.CellType, c.PrisonNum))
	if err != nil {
		r.log.Error().Err(err).Str("cellType", c.CellType).Msg("Error adding cell")
		return fmt.Errorf("failed to add cell: %w", err)
	}
	return nil
}

// DeleteCell removes a holding cell; its inmates cascade.
func (r *FacilityRepository) DeleteCell(ctx context.Context, cellType string) error {
	affected, err := execInTx(ctx, r.db, psql.Delete("cells").Where(squirrel.Eq{"cell_type": cellType}))
	if err != nil {
		r.log.Error().Err(err).Str("cellType", cellType).Msg("Error removing cell")
		return fmt.Errorf("failed to remove cell: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCellNotFound
	}
	return nil
}

// GetAmenities retrieves every amenity
func (r *FacilityRepository) GetAmenities(ctx context.Context) ([]models.Amenity, error) {
	amenities, err := selectAll(ctx, r.db,
		psql.Select("amen_type", "name", "COALESCE(recreation, '')", "prison_num").
			From("amenities").
			OrderBy("prison_num", "amen_type", "name"),
		func(row pgx.CollectableRow) (models.Amenity, error) {
			var a models.Amenity
			err := row.Scan(&a.AmenType, &a.Name, &a.Recreation, &a.PrisonNum)
			return a, err
		})
	if err != nil {
		r.log.Error().Err(err).Msg("Error fetching amenities")
		return nil, fmt.Errorf("failed to fetch amenities: %w", err)
	}
	return amenities, nil
}

// CreateAmenity inserts an amenity
func (r *FacilityRepository) CreateAmenity(ctx context.Context, a models.Amenity) error {
	_, err := execInTx(ctx, r.db, psql.Insert("amenities").
		Columns("amen_type", "name", "recreation", "prison_num").
		Values(a.AmenType, a.Name, a.Recreation, a.PrisonNum))
	if err != nil {
		r.log.Error().Err(err).Str("name", a.Name).Int64("prisonNum", a.PrisonNum).Msg("Error adding amenity")
		return fmt.Errorf("failed to add amenity: %w", err)
	}
	return nil
}

// GetClubs retrieves every club
func (r *FacilityRepository) GetClubs(ctx context.Context) ([]models.Club, error) {
	clubs, err := selectAll(ctx, r.db,
		psql.Select("name", "club_type").From("clubs").OrderBy("name"),
		func(row pgx.CollectableRow) (models.Club, error) {
			var c models.Club
			err := row.Scan(&c.Name, &c.ClubType)
			return c, err
		})
	if err != nil {
		r.log.Error().Err(err).Msg("Error fetching clubs")
		return nil, fmt.Errorf("failed to fetch clubs: %w", err)
	}
	return clubs, nil
}

// CreateClub inserts a club
func (r *FacilityRepository) CreateClub(ctx context.Context, c models.Club) error {
	_, err := execInTx(ctx, r.db, psql.Insert("clubs").
		Columns("name", "club_type").
		Values(c.Name, c.ClubType))
	if err != nil {
		r.log.Error().Err(err).Str("name", c.Name).Msg("Error adding club")
		return fmt.Errorf("failed to add club: %w", err)
	}
	return nil
}
