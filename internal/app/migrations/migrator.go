package migrations

import (
	"context"
	"fmt"

	"github.com/yigit/prisonadmin/internal/db"
	"github.com/yigit/prisonadmin/internal/pkg/logger"
)

// StepRunner applies a step batch atomically. *db.Manager implements it.
type StepRunner interface {
	RunSteps(ctx context.Context, steps []db.Step) (db.BatchReport, error)
}

// Initializer drops and recreates the prison schema
type Initializer struct {
	runner StepRunner
	tables []Table
}

// NewInitializer creates a new schema initializer
func NewInitializer(runner StepRunner) *Initializer {
	return &Initializer{
		runner: runner,
		tables: Tables,
	}
}

// Steps builds the batch: drops in reverse dependency order, then creates in dependency order.
// Drops may fail without aborting; any failed create aborts the whole batch.
func (i *Initializer) Steps() []db.Step {
	steps := make([]db.Step, 0, 2*len(i.tables))

	for idx := len(i.tables) - 1; idx >= 0; idx-- {
		name := i.tables[idx].Name
		steps = append(steps, db.Step{
			Name:   "drop " + name,
			SQL:    fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", name),
			Policy: db.IgnorableOnFailure,
		})
	}

	for _, t := range i.tables {
		steps = append(steps, db.Step{
			Name:   "create " + t.Name,
			SQL:    t.DDL,
			Policy: db.FatalOnFailure,
		})
	}

	return steps
}

// Initialize recreates every table. The previous schema stays in place if any create fails.
func (i *Initializer) Initialize(ctx context.Context) error {
	log := logger.Component("schema")
	log.Info().Int("tables", len(i.tables)).Msg("Initializing schema")

	report, err := i.runner.RunSteps(ctx, i.Steps())
	for _, ignored := range report.Ignored {
		log.Warn().Err(ignored.Err).Str("step", ignored.Step).Msg("Ignored schema step failure")
	}
	if err != nil {
		log.Error().Err(err).Int("applied", report.Applied).Msg("Schema initialization failed")
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Info().Int("applied", report.Applied).Msg("Schema initialized")
	return nil
}
