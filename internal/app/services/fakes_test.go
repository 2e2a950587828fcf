package services

import (
	"context"
	"sort"

	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
)

type fakeInmateStore struct {
	inmates   map[int64]models.Inmate
	history   []models.CellAssignment
	completes []models.CompleteInmate
	err       error

	lastFrom, lastTo models.Date
}

func newFakeInmateStore(inmates ...models.Inmate) *fakeInmateStore {
	f := &fakeInmateStore{inmates: map[int64]models.Inmate{}}
	for _, i := range inmates {
		f.inmates[i.InmateID] = i
	}
	return f
}

func (f *fakeInmateStore) sorted() []models.Inmate {
	out := make([]models.Inmate, 0, len(f.inmates))
	for _, i := range f.inmates {
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].InmateID < out[b].InmateID })
	return out
}

func (f *fakeInmateStore) GetAll(context.Context) ([]models.Inmate, error) {
	return f.sorted(), f.err
}

func (f *fakeInmateStore) GetByID(_ context.Context, id int64) (*models.Inmate, error) {
	i, ok := f.inmates[id]
	if !ok {
		return nil, apperrors.ErrInmateNotFound
	}
	return &i, nil
}

func (f *fakeInmateStore) Create(_ context.Context, i models.Inmate) error {
	if f.err != nil {
		return f.err
	}
	f.inmates[i.InmateID] = i
	return nil
}

func (f *fakeInmateStore) CreateComplete(_ context.Context, r *models.CompleteInmate) error {
	if f.err != nil {
		return f.err
	}
	f.completes = append(f.completes, *r)
	f.inmates[r.Inmate.InmateID] = r.Inmate
	return nil
}

func (f *fakeInmateStore) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.inmates[id]; !ok {
		return apperrors.ErrInmateNotFound
	}
	delete(f.inmates, id)
	return nil
}

func (f *fakeInmateStore) Transfer(_ context.Context, id int64, cell string, on models.Date) error {
	if f.err != nil {
		return f.err
	}
	i, ok := f.inmates[id]
	if !ok {
		return apperrors.ErrInmateNotFound
	}
	i.HoldingCell = cell
	f.inmates[id] = i
	f.history = append(f.history, models.CellAssignment{InmateID: id, HoldingCell: cell, AssignedOn: on})
	return nil
}

func (f *fakeInmateStore) GetEndingBetween(_ context.Context, from, to models.Date) ([]models.Inmate, error) {
	f.lastFrom, f.lastTo = from, to
	var out []models.Inmate
	for _, i := range f.sorted() {
		if !i.EndDate.Before(from.Time) && !i.EndDate.After(to.Time) {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].EndDate.Before(out[b].EndDate.Time) })
	return out, f.err
}

func (f *fakeInmateStore) GetByCell(_ context.Context, cell string) ([]models.Inmate, error) {
	var out []models.Inmate
	for _, i := range f.sorted() {
		if i.HoldingCell == cell {
			out = append(out, i)
		}
	}
	return out, f.err
}

func (f *fakeInmateStore) GetBasicInfo(context.Context) ([]models.InmateBasic, error) {
	var out []models.InmateBasic
	for _, i := range f.sorted() {
		out = append(out, models.InmateBasic{InmateID: i.InmateID, HoldingCell: i.HoldingCell, EndDate: i.EndDate})
	}
	return out, f.err
}

func (f *fakeInmateStore) Count(context.Context) (int, error) {
	return len(f.inmates), f.err
}

func (f *fakeInmateStore) GetHistory(_ context.Context, id int64) ([]models.CellAssignment, error) {
	var out []models.CellAssignment
	for _, a := range f.history {
		if a.InmateID == id {
			out = append(out, a)
		}
	}
	return out, f.err
}

type fakeSentenceStore struct {
	sentences []models.Sentence
	nextID    int64
	err       error
}

func (f *fakeSentenceStore) GetAll(context.Context) ([]models.Sentence, error) {
	return f.sentences, f.err
}

func (f *fakeSentenceStore) Create(_ context.Context, s *models.Sentence) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	s.SentenceID = f.nextID
	f.sentences = append(f.sentences, *s)
	return nil
}

func (f *fakeSentenceStore) Reduce(_ context.Context, inmateID int64, months int) error {
	if f.err != nil {
		return f.err
	}
	found := false
	for i := range f.sentences {
		if f.sentences[i].InmateID == inmateID {
			found = true
			f.sentences[i].Duration = max(f.sentences[i].Duration-months, 0)
		}
	}
	if !found {
		return apperrors.ErrSentenceNotFound
	}
	return nil
}

type fakeReportStore struct {
	minimum   int
	threshold int
	minLevel  int
}

func (f *fakeReportStore) CountByCell(context.Context) ([]models.CellCount, error) {
	return []models.CellCount{{HoldingCell: "A", Count: 2}}, nil
}

func (f *fakeReportStore) CrowdedCells(_ context.Context, minimum int) ([]models.CellCount, error) {
	f.minimum = minimum
	return nil, nil
}

func (f *fakeReportStore) HighSeverityCells(_ context.Context, threshold int) ([]models.HighSeverityCell, error) {
	f.threshold = threshold
	return nil, nil
}

func (f *fakeReportStore) InmatesWithMedicalAndSentence(context.Context) ([]models.InmateMedicalSentence, error) {
	return nil, nil
}

func (f *fakeReportStore) InmatesInAllCells(context.Context) ([]models.InmateRef, error) {
	return nil, nil
}

func (f *fakeReportStore) EmployeesAtSecurityLevel(_ context.Context, minLevel int) ([]models.HighSecurityAssignment, error) {
	f.minLevel = minLevel
	return nil, nil
}

type fakeFacilityStore struct {
	cells map[string]models.HoldingCell
}

func (f *fakeFacilityStore) GetSecurityLevels(context.Context) ([]models.PrisonSecurity, error) {
	return nil, nil
}
func (f *fakeFacilityStore) CreateSecurityLevel(context.Context, models.PrisonSecurity) error {
	return nil
}
func (f *fakeFacilityStore) GetPrisons(context.Context) ([]models.Prison, error) { return nil, nil }
func (f *fakeFacilityStore) CreatePrison(context.Context, models.Prison) error   { return nil }
func (f *fakeFacilityStore) GetCells(context.Context) ([]models.HoldingCell, error) {
	return nil, nil
}
func (f *fakeFacilityStore) CountCells(context.Context) (int, error) { return len(f.cells), nil }
func (f *fakeFacilityStore) CreateCell(_ context.Context, c models.HoldingCell) error {
	f.cells[c.CellType] = c
	return nil
}
func (f *fakeFacilityStore) DeleteCell(_ context.Context, cellType string) error {
	if _, ok := f.cells[cellType]; !ok {
		return apperrors.ErrCellNotFound
	}
	delete(f.cells, cellType)
	return nil
}
func (f *fakeFacilityStore) GetAmenities(context.Context) ([]models.Amenity, error) {
	return nil, nil
}
func (f *fakeFacilityStore) CreateAmenity(context.Context, models.Amenity) error { return nil }
func (f *fakeFacilityStore) GetClubs(context.Context) ([]models.Club, error)     { return nil, nil }
func (f *fakeFacilityStore) CreateClub(context.Context, models.Club) error       { return nil }

type fakeStaffStore struct {
	created []models.Employee
}

func (f *fakeStaffStore) GetAll(context.Context) ([]models.Employee, error) { return f.created, nil }
func (f *fakeStaffStore) Create(_ context.Context, e models.Employee) error {
	f.created = append(f.created, e)
	return nil
}
func (f *fakeStaffStore) Assign(context.Context, models.WorksAt) error                 { return nil }
func (f *fakeStaffStore) AddCertification(context.Context, models.Certification) error { return nil }

type stubCall struct {
	calls int
	err   error
}

func (s *stubCall) Ping(context.Context) error       { s.calls++; return s.err }
func (s *stubCall) Initialize(context.Context) error { s.calls++; return s.err }
func (s *stubCall) Seed(context.Context) error       { s.calls++; return s.err }
