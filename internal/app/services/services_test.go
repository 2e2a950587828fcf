package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
)

func TestSentenceServiceReduce(t *testing.T) {
	store := &fakeSentenceStore{}
	svc := NewSentenceService(store)
	ctx := context.Background()

	sentence := &models.Sentence{Duration: 10, CrimeName: "Fraud", CrimeType: "Financial", Severity: 4, InmateID: 1}
	require.NoError(t, svc.Add(ctx, sentence))
	assert.Equal(t, int64(1), sentence.SentenceID)

	reduced, err := svc.Reduce(ctx, 1, 4)
	require.NoError(t, err)
	assert.True(t, reduced)
	assert.Equal(t, 6, store.sentences[0].Duration)

	reduced, err = svc.Reduce(ctx, 1, 100)
	require.NoError(t, err)
	assert.True(t, reduced)
	assert.Equal(t, 0, store.sentences[0].Duration)

	reduced, err = svc.Reduce(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, reduced)

	_, err = svc.Reduce(ctx, 1, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSentenceServiceSeverityBounds(t *testing.T) {
	svc := NewSentenceService(&fakeSentenceStore{})
	ctx := context.Background()

	for _, severity := range []int{0, 10} {
		s := &models.Sentence{Duration: 1, CrimeName: "x", CrimeType: "y", Severity: severity, InmateID: 1}
		assert.NoError(t, svc.Add(ctx, s), "severity %d", severity)
	}
	for _, severity := range []int{-1, 11} {
		s := &models.Sentence{Duration: 1, CrimeName: "x", CrimeType: "y", Severity: severity, InmateID: 1}
		assert.ErrorIs(t, svc.Add(ctx, s), apperrors.ErrValidationFailed, "severity %d", severity)
	}
}

func TestReportServiceDefaults(t *testing.T) {
	reports := &fakeReportStore{}
	svc := NewReportService(reports)
	ctx := context.Background()

	_, err := svc.CrowdedCells(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultCrowdedMinimum, reports.minimum)

	_, err = svc.CrowdedCells(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, reports.minimum)

	_, err = svc.CrowdedCells(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, -1, reports.minimum)

	_, err = svc.HighSeverityCells(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.HighSeverityThreshold, reports.threshold)
}

func TestStaffServiceRoles(t *testing.T) {
	staff := &fakeStaffStore{}
	reports := &fakeReportStore{}
	svc := NewStaffService(staff, reports)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, models.Employee{EmpID: 10, Name: "Dana", Role: models.RoleGuard, RoleDetail: "Yard"}))
	require.NoError(t, svc.Add(ctx, models.Employee{EmpID: 11, Name: "Lee"}))

	err := svc.Add(ctx, models.Employee{EmpID: 12, Name: "Sam", Role: "WARDEN", RoleDetail: "x"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.Add(ctx, models.Employee{EmpID: 13, Name: "Kim", Role: models.RoleChef})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Len(t, staff.created, 2)

	_, err = svc.HighSecurityAssignments(ctx)
	require.NoError(t, err)
	assert.Equal(t, HighSecurityLevel, reports.minLevel)
}

func TestFacilityServiceRemoveCell(t *testing.T) {
	store := &fakeFacilityStore{cells: map[string]models.HoldingCell{}}
	svc := NewFacilityService(store)
	ctx := context.Background()

	require.NoError(t, svc.AddCell(ctx, models.HoldingCell{CellType: "A", PrisonNum: 1}))

	removed, err := svc.RemoveCell(ctx, "A")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.RemoveCell(ctx, "A")
	require.NoError(t, err)
	assert.False(t, removed)

	assert.ErrorIs(t, svc.AddCell(ctx, models.HoldingCell{CellType: "B", PrisonNum: 0}), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, svc.AddSecurityLevel(ctx, models.PrisonSecurity{SecurityLevel: 3}), apperrors.ErrValidationFailed)
}

func TestMedicalServiceValidates(t *testing.T) {
	svc := NewMedicalService(nil, &fakeReportStore{})

	err := svc.Add(context.Background(), models.MedicalRecord{RecordNum: 1, BloodType: "O+", Weight: 60, Height: 170, Sex: "Q", InmateID: 1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.Add(context.Background(), models.MedicalRecord{RecordNum: 1, BloodType: "O+", Weight: 60, Height: 170, Sex: "F"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAdminService(t *testing.T) {
	pinger := &stubCall{}
	initializer := &stubCall{}
	seeder := &stubCall{err: errors.New("boom")}
	svc := NewAdminService(pinger, initializer, seeder)
	ctx := context.Background()

	assert.True(t, svc.CheckConnection(ctx))
	pinger.err = apperrors.ErrConnection
	assert.False(t, svc.CheckConnection(ctx))

	require.NoError(t, svc.InitializeDatabase(ctx))
	assert.Equal(t, 1, initializer.calls)

	assert.EqualError(t, svc.InsertDefaultData(ctx), "boom")
	assert.Equal(t, 1, seeder.calls)
}
