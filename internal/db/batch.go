package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/prisonadmin/internal/pkg/logger"
)

// Execer runs a single statement. pgx.Tx satisfies it.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// FailurePolicy decides what a failing step does to the rest of its batch.
type FailurePolicy int

const (
	// FatalOnFailure aborts the batch and rolls back the transaction.
	FatalOnFailure FailurePolicy = iota
	// IgnorableOnFailure records the failure and continues with the next step.
	IgnorableOnFailure
)

func (p FailurePolicy) String() string {
	if p == IgnorableOnFailure {
		return "ignorable"
	}
	return "fatal"
}

// Step is one statement of an ordered batch.
type Step struct {
	Name   string
	SQL    string
	Args   []any
	Policy FailurePolicy
}

// StepFailure describes an ignorable step that failed.
type StepFailure struct {
	Step string
	Err  error
}

// BatchReport summarizes an applied batch.
type BatchReport struct {
	Applied int
	Ignored []StepFailure
}

// StepError is returned when a fatal step fails.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ApplySteps executes steps in order on ex, which is expected to be an open transaction.
// Ignorable steps run under a savepoint so their failure leaves the transaction usable.
func ApplySteps(ctx context.Context, ex Execer, steps []Step) (BatchReport, error) {
	var report BatchReport

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if step.Policy == FatalOnFailure {
			if _, err := ex.Exec(ctx, step.SQL, step.Args...); err != nil {
				logger.Error().Err(err).Str("step", step.Name).Msg("Fatal step failed")
				return report, &StepError{Step: step.Name, Err: err}
			}
			report.Applied++
			continue
		}

		savepoint := fmt.Sprintf("step_%d", i)
		if _, err := ex.Exec(ctx, "SAVEPOINT "+savepoint); err != nil {
			return report, &StepError{Step: step.Name, Err: err}
		}

		if _, err := ex.Exec(ctx, step.SQL, step.Args...); err != nil {
			logger.Debug().Err(err).Str("step", step.Name).Msg("Ignoring failed step")
			if _, rbErr := ex.Exec(ctx, "ROLLBACK TO SAVEPOINT "+savepoint); rbErr != nil {
				return report, &StepError{Step: step.Name, Err: rbErr}
			}
			report.Ignored = append(report.Ignored, StepFailure{Step: step.Name, Err: err})
			continue
		}

		if _, err := ex.Exec(ctx, "RELEASE SAVEPOINT "+savepoint); err != nil {
			return report, &StepError{Step: step.Name, Err: err}
		}
		report.Applied++
	}

	return report, nil
}
