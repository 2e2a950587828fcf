package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/prisonadmin/internal/pkg/logger"
)

// Pinger checks that the database answers
type Pinger interface {
	Ping(ctx context.Context) error
}

// SchemaInitializer drops and recreates the schema
type SchemaInitializer interface {
	Initialize(ctx context.Context) error
}

// DataSeeder replaces table contents with the sample data set
type DataSeeder interface {
	Seed(ctx context.Context) error
}

// AdminService handles connectivity checks, schema initialization and seeding
type AdminService struct {
	pinger      Pinger
	initializer SchemaInitializer
	seeder      DataSeeder
	log         zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(pinger Pinger, initializer SchemaInitializer, seeder DataSeeder) *AdminService {
	return &AdminService{
		pinger:      pinger,
		initializer: initializer,
		seeder:      seeder,
		log:         logger.Component("service.admin"),
	}
}

// CheckConnection reports whether a connection can be borrowed and used
func (s *AdminService) CheckConnection(ctx context.Context) bool {
	if err := s.pinger.Ping(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Database connectivity check failed")
		return false
	}
	return true
}

// InitializeDatabase drops and recreates every table
func (s *AdminService) InitializeDatabase(ctx context.Context) error {
	if err := s.initializer.Initialize(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("Database schema initialized")
	return nil
}

// InsertDefaultData loads the sample data set
func (s *AdminService) InsertDefaultData(ctx context.Context) error {
	if err := s.seeder.Seed(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("Sample data inserted")
	return nil
}
