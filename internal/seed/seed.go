package seed

import (
	"context"
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/prisonadmin/internal/db"
)

//go:embed data.sql
var defaultData string

// statementEnd matches a semicolon that closes a line.
var statementEnd = regexp.MustCompile(`;[ \t]*(\r?\n)+`)

// StepRunner applies a step batch atomically. *db.Manager implements it.
type StepRunner interface {
	RunSteps(ctx context.Context, steps []db.Step) (db.BatchReport, error)
}

// Seeder clears every table and loads the sample data set.
type Seeder struct {
	runner StepRunner
	tables []string
	script string
	lgr    zerolog.Logger
}

// NewSeeder creates a seeder for the given tables, listed in dependency order.
func NewSeeder(runner StepRunner, tables []string, lgr zerolog.Logger) *Seeder {
	return &Seeder{
		runner: runner,
		tables: tables,
		script: defaultData,
		lgr:    lgr,
	}
}

// Steps builds the seeding batch: deletes in reverse dependency order followed by the inserts.
// Seeding is all-or-nothing, not best effort: no step is ignorable, so a failing insert
// rolls back the deletes too and the tables keep their previous rows. Only the schema
// initializer's drops are ignorable.
func (s *Seeder) Steps() []db.Step {
	statements := SplitStatements(s.script)
	steps := make([]db.Step, 0, len(s.tables)+len(statements))

	for i := len(s.tables) - 1; i >= 0; i-- {
		steps = append(steps, db.Step{
			Name:   "clear " + s.tables[i],
			SQL:    "DELETE FROM " + s.tables[i],
			Policy: db.FatalOnFailure,
		})
	}

	for i, stmt := range statements {
		steps = append(steps, db.Step{
			Name:   fmt.Sprintf("insert #%d", i+1),
			SQL:    stmt,
			Policy: db.FatalOnFailure,
		})
	}

	return steps
}

// Seed replaces the contents of every table with the sample data in one transaction.
func (s *Seeder) Seed(ctx context.Context) error {
	s.lgr.Info().Int("tables", len(s.tables)).Msg("Seeding sample data")

	report, err := s.runner.RunSteps(ctx, s.Steps())
	if err != nil {
		s.lgr.Error().Err(err).Int("applied", report.Applied).Msg("Seeding failed, nothing was changed")
		return fmt.Errorf("failed to seed data: %w", err)
	}

	s.lgr.Info().Int("statements", report.Applied).Msg("Sample data loaded")
	return nil
}

// SplitStatements splits a SQL script into statements. A statement ends with a
// semicolon at the end of a line; lines starting with "--" are dropped.
func SplitStatements(script string) []string {
	var kept []string
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	cleaned := strings.Join(kept, "\n") + "\n"

	var statements []string
	for _, part := range statementEnd.Split(cleaned, -1) {
		part = strings.TrimSpace(part)
		part = strings.TrimSuffix(part, ";")
		if part != "" {
			statements = append(statements, part)
		}
	}
	return statements
}
