//go:build integration

package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/prisonadmin/internal/app/migrations"
	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/db"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
)

// connectForTest opens a manager on the database named by POSTGRES_TEST_URL.
func connectForTest(t *testing.T) *db.Manager {
	t.Helper()

	url := os.Getenv("POSTGRES_TEST_URL")
	if url == "" {
		t.Skip("POSTGRES_TEST_URL not set")
	}

	manager, err := db.Connect(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close(db.DrainGracePeriod) })
	return manager
}

// setupRepositories recreates the schema and loads one prison with cells A and B.
func setupRepositories(t *testing.T) *Repositories {
	t.Helper()

	ctx := context.Background()
	manager := connectForTest(t)
	require.NoError(t, migrations.NewInitializer(manager).Initialize(ctx))

	repos := NewRepositories(manager)
	facilities := repos.FacilityRepository
	require.NoError(t, facilities.CreateSecurityLevel(ctx, models.PrisonSecurity{SecurityLevel: 8, GuardCount: 10, Location: "North"}))
	require.NoError(t, facilities.CreatePrison(ctx, models.Prison{PrisonNum: 1, SecurityLevel: 8}))
	require.NoError(t, facilities.CreateCell(ctx, models.HoldingCell{CellType: "A", PrisonNum: 1}))
	require.NoError(t, facilities.CreateCell(ctx, models.HoldingCell{CellType: "B", PrisonNum: 1}))

	return repos
}

func TestInitializeTwice(t *testing.T) {
	manager := connectForTest(t)
	ctx := context.Background()
	initializer := migrations.NewInitializer(manager)

	require.NoError(t, initializer.Initialize(ctx))
	repos := NewRepositories(manager)
	require.NoError(t, repos.FacilityRepository.CreateSecurityLevel(ctx, models.PrisonSecurity{SecurityLevel: 3, GuardCount: 5, Location: "South"}))

	require.NoError(t, initializer.Initialize(ctx))

	levels, err := repos.FacilityRepository.GetSecurityLevels(ctx)
	require.NoError(t, err)
	assert.Empty(t, levels, "second run starts from empty tables")

	count, err := repos.InmateRepository.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func newInmate(id int64, cell string, end models.Date) models.Inmate {
	return models.Inmate{
		InmateID:    id,
		HoldingCell: cell,
		HealthNum:   100 + id,
		StartDate:   models.NewDate(2024, time.January, 1),
		EndDate:     end,
	}
}

func TestInmateInsertThenFetch(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	inmate := newInmate(1, "A", models.NewDate(2024, time.January, 10))
	require.NoError(t, repos.InmateRepository.Create(ctx, inmate))

	got, err := repos.InmateRepository.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, inmate.InmateID, got.InmateID)
	assert.Equal(t, inmate.HoldingCell, got.HoldingCell)
	assert.Equal(t, inmate.HealthNum, got.HealthNum)
	assert.Equal(t, "2024-01-01", got.StartDate.String())
	assert.Equal(t, "2024-01-10", got.EndDate.String())
}

func TestCountByCellScenario(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	require.NoError(t, repos.InmateRepository.Create(ctx, models.Inmate{
		InmateID:    1,
		HoldingCell: "A",
		HealthNum:   100,
		StartDate:   models.NewDate(2024, time.January, 1),
		EndDate:     models.NewDate(2024, time.January, 10),
	}))

	counts, err := repos.ReportRepository.CountByCell(ctx)
	require.NoError(t, err)
	assert.Contains(t, counts, models.CellCount{HoldingCell: "A", Count: 1})
}

func TestDeleteInmate(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	assert.ErrorIs(t, repos.InmateRepository.Delete(ctx, 999), apperrors.ErrInmateNotFound)

	require.NoError(t, repos.InmateRepository.Create(ctx, newInmate(5, "A", models.NewDate(2030, time.May, 1))))
	require.NoError(t, repos.InmateRepository.Delete(ctx, 5))

	_, err := repos.InmateRepository.GetByID(ctx, 5)
	assert.ErrorIs(t, err, apperrors.ErrInmateNotFound)
}

func TestCreateCompleteIsAtomic(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	first := &models.CompleteInmate{
		Inmate:   newInmate(1, "A", models.NewDate(2030, time.May, 1)),
		Sentence: models.Sentence{Duration: 24, CrimeName: "Fraud", CrimeType: "Financial", Severity: 4},
		Medical:  models.MedicalRecord{RecordNum: 500, BloodType: "O+", Weight: 80, Height: 180, Sex: "M"},
	}
	require.NoError(t, repos.InmateRepository.CreateComplete(ctx, first))
	assert.NotZero(t, first.Sentence.SentenceID)

	duplicate := &models.CompleteInmate{
		Inmate:   newInmate(2, "B", models.NewDate(2031, time.May, 1)),
		Sentence: models.Sentence{Duration: 12, CrimeName: "Theft", CrimeType: "Property", Severity: 3},
		Medical:  models.MedicalRecord{RecordNum: 500, BloodType: "A-", Weight: 70, Height: 170, Sex: "F"},
	}
	err := repos.InmateRepository.CreateComplete(ctx, duplicate)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)

	_, err = repos.InmateRepository.GetByID(ctx, 2)
	assert.ErrorIs(t, err, apperrors.ErrInmateNotFound)

	sentences, err := repos.SentenceRepository.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	assert.Equal(t, int64(1), sentences[0].InmateID)
}

func TestCrowdedCells(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	end := models.NewDate(2030, time.May, 1)
	require.NoError(t, repos.InmateRepository.Create(ctx, newInmate(1, "A", end)))
	require.NoError(t, repos.InmateRepository.Create(ctx, newInmate(2, "A", end)))
	require.NoError(t, repos.InmateRepository.Create(ctx, newInmate(3, "B", end)))

	crowded, err := repos.ReportRepository.CrowdedCells(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []models.CellCount{{HoldingCell: "A", Count: 2}, {HoldingCell: "B", Count: 1}}, crowded)

	crowded, err = repos.ReportRepository.CrowdedCells(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []models.CellCount{{HoldingCell: "A", Count: 2}}, crowded)

	crowded, err = repos.ReportRepository.CrowdedCells(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, crowded)
}

func TestGetEndingBetween(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	today := models.DateOf(time.Now())
	require.NoError(t, repos.InmateRepository.Create(ctx, newInmate(1, "A", today.AddDays(30))))
	require.NoError(t, repos.InmateRepository.Create(ctx, newInmate(2, "A", today.AddDays(31))))
	require.NoError(t, repos.InmateRepository.Create(ctx, newInmate(3, "B", today.AddDays(10))))
	require.NoError(t, repos.InmateRepository.Create(ctx, newInmate(4, "B", today.AddDays(-1))))

	leaving, err := repos.InmateRepository.GetEndingBetween(ctx, today, today.AddDays(30))
	require.NoError(t, err)
	require.Len(t, leaving, 2)
	assert.Equal(t, int64(3), leaving[0].InmateID)
	assert.Equal(t, int64(1), leaving[1].InmateID)
}

func TestTransferAndDivision(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	end := models.NewDate(2030, time.May, 1)
	require.NoError(t, repos.InmateRepository.Create(ctx, newInmate(1, "A", end)))
	require.NoError(t, repos.InmateRepository.Create(ctx, newInmate(2, "A", end)))
	require.NoError(t, repos.InmateRepository.Transfer(ctx, 1, "B", models.NewDate(2024, time.June, 1)))

	assert.ErrorIs(t, repos.InmateRepository.Transfer(ctx, 42, "B", end), apperrors.ErrInmateNotFound)

	history, err := repos.InmateRepository.GetHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "A", history[0].HoldingCell)
	assert.Equal(t, "B", history[1].HoldingCell)

	everywhere, err := repos.ReportRepository.InmatesInAllCells(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.InmateRef{{InmateID: 1, HoldingCell: "B"}}, everywhere)
}

func TestReduceSentenceNeverBelowZero(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	require.NoError(t, repos.InmateRepository.Create(ctx, newInmate(1, "A", models.NewDate(2030, time.May, 1))))
	require.NoError(t, repos.SentenceRepository.Create(ctx, &models.Sentence{Duration: 10, CrimeName: "Theft", CrimeType: "Property", Severity: 3, InmateID: 1}))

	require.NoError(t, repos.SentenceRepository.Reduce(ctx, 1, 4))
	require.NoError(t, repos.SentenceRepository.Reduce(ctx, 1, 100))
	assert.ErrorIs(t, repos.SentenceRepository.Reduce(ctx, 2, 1), apperrors.ErrSentenceNotFound)

	sentences, err := repos.SentenceRepository.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	assert.Equal(t, 0, sentences[0].Duration)
}

func TestHighSeverityCells(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	end := models.NewDate(2030, time.May, 1)
	for id, cell := range map[int64]string{1: "A", 2: "A", 3: "B"} {
		require.NoError(t, repos.InmateRepository.Create(ctx, newInmate(id, cell, end)))
		require.NoError(t, repos.SentenceRepository.Create(ctx, &models.Sentence{
			Duration: 60, CrimeName: "Robbery", CrimeType: "Violent", Severity: 9, InmateID: id,
		}))
	}

	cells, err := repos.ReportRepository.HighSeverityCells(ctx, models.HighSeverityThreshold)
	require.NoError(t, err)
	assert.Equal(t, []models.HighSeverityCell{{HoldingCell: "A", PrisonNum: 1, HighSeverityCount: 2}}, cells)
}

func TestEmployeesAtHighSecurity(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	require.NoError(t, repos.StaffRepository.Create(ctx, models.Employee{EmpID: 10, Name: "Dana", Role: models.RoleGuard, RoleDetail: "Yard"}))
	require.NoError(t, repos.StaffRepository.Assign(ctx, models.WorksAt{PrisonNum: 1, EmpID: 10, Salary: 50000}))

	employees, err := repos.StaffRepository.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, models.RoleGuard, employees[0].Role)
	assert.Equal(t, "Yard", employees[0].RoleDetail)

	assigned, err := repos.ReportRepository.EmployeesAtSecurityLevel(ctx, 8)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, "North", assigned[0].Location)

	assigned, err = repos.ReportRepository.EmployeesAtSecurityLevel(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, assigned)
}
