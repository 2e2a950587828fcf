package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	statements []string
	failOn     map[string]error
}

func (r *recordingExecer) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	r.statements = append(r.statements, sql)
	if err, ok := r.failOn[sql]; ok {
		return pgconn.CommandTag{}, err
	}
	return pgconn.NewCommandTag("OK"), nil
}

func TestApplyStepsIgnorableFailureContinues(t *testing.T) {
	ex := &recordingExecer{failOn: map[string]error{
		"DROP TABLE missing": errors.New("table does not exist"),
	}}

	steps := []Step{
		{Name: "drop missing", SQL: "DROP TABLE missing", Policy: IgnorableOnFailure},
		{Name: "create cells", SQL: "CREATE TABLE cells ()", Policy: FatalOnFailure},
	}

	report, err := ApplySteps(context.Background(), ex, steps)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Applied)
	require.Len(t, report.Ignored, 1)
	assert.Equal(t, "drop missing", report.Ignored[0].Step)
	assert.Equal(t, []string{
		"SAVEPOINT step_0",
		"DROP TABLE missing",
		"ROLLBACK TO SAVEPOINT step_0",
		"CREATE TABLE cells ()",
	}, ex.statements)
}

func TestApplyStepsReleasesSavepointOnSuccess(t *testing.T) {
	ex := &recordingExecer{}

	report, err := ApplySteps(context.Background(), ex, []Step{
		{Name: "drop inmates", SQL: "DROP TABLE IF EXISTS inmates CASCADE", Policy: IgnorableOnFailure},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Applied)
	assert.Empty(t, report.Ignored)
	assert.Equal(t, "RELEASE SAVEPOINT step_0", ex.statements[len(ex.statements)-1])
}

func TestApplyStepsFatalFailureStopsBatch(t *testing.T) {
	boom := errors.New("syntax error")
	ex := &recordingExecer{failOn: map[string]error{"CREATE TABLE bad": boom}}

	steps := []Step{
		{Name: "create cells", SQL: "CREATE TABLE cells ()", Policy: FatalOnFailure},
		{Name: "create bad", SQL: "CREATE TABLE bad", Policy: FatalOnFailure},
		{Name: "create never", SQL: "CREATE TABLE never ()", Policy: FatalOnFailure},
	}

	report, err := ApplySteps(context.Background(), ex, steps)
	require.Error(t, err)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "create bad", stepErr.Step)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, report.Applied)
	for _, stmt := range ex.statements {
		assert.False(t, strings.Contains(stmt, "never"), "no statement may run after a fatal failure")
	}
}

func TestApplyStepsHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ex := &recordingExecer{}
	_, err := ApplySteps(ctx, ex, []Step{{Name: "any", SQL: "SELECT 1"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ex.statements)
}

func TestFailurePolicyString(t *testing.T) {
	assert.Equal(t, "fatal", FatalOnFailure.String())
	assert.Equal(t, "ignorable", IgnorableOnFailure.String())
}
