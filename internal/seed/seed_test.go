package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/prisonadmin/internal/app/migrations"
	"github.com/yigit/prisonadmin/internal/db"
)

type fakeRunner struct {
	steps []db.Step
	err   error
}

func (f *fakeRunner) RunSteps(_ context.Context, steps []db.Step) (db.BatchReport, error) {
	f.steps = steps
	if f.err != nil {
		return db.BatchReport{}, f.err
	}
	return db.BatchReport{Applied: len(steps)}, nil
}

func TestSplitStatements(t *testing.T) {
	script := "-- header\nINSERT INTO clubs VALUES ('a; b', 'x');\r\n\nINSERT INTO clubs\n  VALUES ('c', 'y');\nDELETE FROM clubs"

	got := SplitStatements(script)
	require.Len(t, got, 3)
	assert.Equal(t, "INSERT INTO clubs VALUES ('a; b', 'x')", got[0])
	assert.Equal(t, "INSERT INTO clubs\n  VALUES ('c', 'y')", got[1])
	assert.Equal(t, "DELETE FROM clubs", got[2])
}

func TestEmbeddedDataCoversEveryTable(t *testing.T) {
	statements := SplitStatements(defaultData)
	require.NotEmpty(t, statements)

	for _, name := range migrations.TableNames() {
		found := false
		for _, stmt := range statements {
			if strings.HasPrefix(stmt, "INSERT INTO "+name+" ") {
				found = true
				break
			}
		}
		assert.Truef(t, found, "no sample rows for %s", name)
	}
}

func TestStepsClearInReverseOrderFirst(t *testing.T) {
	tables := migrations.TableNames()
	s := NewSeeder(&fakeRunner{}, tables, zerolog.Nop())

	steps := s.Steps()
	require.Greater(t, len(steps), len(tables))

	assert.Equal(t, "DELETE FROM medical_staff", steps[0].SQL)
	assert.Equal(t, "DELETE FROM prison_security", steps[len(tables)-1].SQL)
	assert.True(t, strings.HasPrefix(steps[len(tables)].SQL, "INSERT INTO prison_security"))
}

func TestSeedingIsAllOrNothing(t *testing.T) {
	s := NewSeeder(&fakeRunner{}, migrations.TableNames(), zerolog.Nop())

	inserts := 0
	for _, step := range s.Steps() {
		assert.Equal(t, db.FatalOnFailure, step.Policy, step.Name)
		if strings.HasPrefix(step.SQL, "INSERT") {
			inserts++
		}
	}
	assert.Positive(t, inserts)
}

func TestSeedPropagatesFailure(t *testing.T) {
	boom := errors.New("duplicate key")
	s := NewSeeder(&fakeRunner{err: boom}, migrations.TableNames(), zerolog.Nop())

	err := s.Seed(context.Background())
	assert.ErrorIs(t, err, boom)
}
