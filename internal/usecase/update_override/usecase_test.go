package update_override

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	slotsRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/slots"
	"github.com/m04kA/DWS-ScheduleService/internal/rules"
	"github.com/m04kA/DWS-ScheduleService/pkg/ptr"
)

type fakeSlotsRepo struct {
	templates []*domain.SlotTemplate
	overrides map[domain.SlotID]*domain.WeekOverride
	nextID    int64
}

func newFakeSlotsRepo() *fakeSlotsRepo {
	f := &fakeSlotsRepo{overrides: make(map[domain.SlotID]*domain.WeekOverride)}
	for _, day := range domain.Weekdays {
		for _, block := range domain.Blocks {
			f.templates = append(f.templates, &domain.SlotTemplate{
				SlotID:          domain.NewSlotID(day, block),
				Day:             day,
				Block:           block,
				DefaultWalkType: domain.WalkCollective,
				DefaultSector:   "nord",
				DefaultCapacity: 6,
			})
		}
	}
	return f
}

func (f *fakeSlotsRepo) GetTemplates(ctx context.Context) ([]*domain.SlotTemplate, error) {
	return f.templates, nil
}

func (f *fakeSlotsRepo) GetOverrides(ctx context.Context, year, week int) ([]*domain.WeekOverride, error) {
	var out []*domain.WeekOverride
	for _, ovr := range f.overrides {
		out = append(out, ovr)
	}
	return out, nil
}

func (f *fakeSlotsRepo) UpsertOverride(ctx context.Context, ovr *domain.WeekOverride) (*domain.WeekOverride, error) {
	f.nextID++
	saved := *ovr
	saved.ID = f.nextID
	f.overrides[ovr.SlotID] = &saved
	return &saved, nil
}

func (f *fakeSlotsRepo) DeleteOverride(ctx context.Context, year, week int, slotID domain.SlotID) error {
	if _, ok := f.overrides[slotID]; !ok {
		return slotsRepo.ErrOverrideNotFound
	}
	delete(f.overrides, slotID)
	return nil
}

type fakeAssignmentRepo struct {
	assignments []*domain.Assignment
}

func (f *fakeAssignmentRepo) GetByWeek(ctx context.Context, year, week int) ([]*domain.Assignment, error) {
	return f.assignments, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(slots *fakeSlotsRepo, assignments *fakeAssignmentRepo) *UseCase {
	return NewUseCase(slots, assignments, fakeTxManager{}, domain.DefaultEngineConfig(), nopLogger{})
}

func TestUpdateOverrideApplies(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotsRepo()
	uc := newTestUseCase(slots, &fakeAssignmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Year:     2026,
		Week:     20,
		SlotID:   "MA-B2",
		Capacity: ptr.Ptr(4),
		Sector:   ptr.Ptr("sud"),
	})

	require.NoError(t, err)
	require.True(t, resp.Applied)
	require.NotNil(t, resp.Override)
	require.Equal(t, 4, *resp.Override.Capacity)
	require.Contains(t, slots.overrides, domain.SlotID("MA-B2"))
}

func TestUpdateOverrideRefusesShrinkBelowOccupancy(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotsRepo()
	assignments := &fakeAssignmentRepo{assignments: []*domain.Assignment{
		{ID: 1, DogID: 1, SlotID: "MA-B2", Year: 2026, Week: 20},
		{ID: 2, DogID: 2, SlotID: "MA-B2", Year: 2026, Week: 20},
		{ID: 3, DogID: 3, SlotID: "MA-B2", Year: 2026, Week: 20},
	}}
	uc := newTestUseCase(slots, assignments)

	resp, err := uc.Execute(context.Background(), &Request{
		Year:     2026,
		Week:     20,
		SlotID:   "MA-B2",
		Capacity: ptr.Ptr(2),
	})

	require.NoError(t, err)
	require.False(t, resp.Applied)
	require.True(t, resp.Report.HasViolations())
	require.Equal(t, rules.CodeSlotOverbooked, resp.Report.Violations[0].Code)
	require.NotContains(t, slots.overrides, domain.SlotID("MA-B2"))
}

func TestUpdateOverrideRefusesBlockingOccupiedSlot(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotsRepo()
	assignments := &fakeAssignmentRepo{assignments: []*domain.Assignment{
		{ID: 1, DogID: 1, SlotID: "LU-B1", Year: 2026, Week: 20},
	}}
	uc := newTestUseCase(slots, assignments)

	resp, err := uc.Execute(context.Background(), &Request{
		Year:          2026,
		Week:          20,
		SlotID:        "LU-B1",
		Blocked:       true,
		BlockedReason: ptr.Ptr("staff sick"),
	})

	require.NoError(t, err)
	require.False(t, resp.Applied)
	require.Equal(t, rules.CodeBlockedNotEmpty, resp.Report.Violations[0].Code)
}

func TestUpdateOverrideReset(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotsRepo()
	slots.overrides["MA-B2"] = &domain.WeekOverride{
		ID:       1,
		Year:     2026,
		Week:     20,
		SlotID:   "MA-B2",
		Capacity: ptr.Ptr(2),
	}
	uc := newTestUseCase(slots, &fakeAssignmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Week: 20, SlotID: "MA-B2", Reset: true})

	require.NoError(t, err)
	require.True(t, resp.Applied)
	require.NotContains(t, slots.overrides, domain.SlotID("MA-B2"))
}

func TestUpdateOverrideResetWithoutOverrideIsNoop(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotsRepo()
	uc := newTestUseCase(slots, &fakeAssignmentRepo{})

	// nothing to delete: the slot is already on its template
	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Week: 20, SlotID: "JE-B1", Reset: true})

	require.NoError(t, err)
	require.True(t, resp.Applied)
}

func TestUpdateOverrideResetRefusedWhenTemplateOverbooks(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotsRepo()
	// the template seats 2, the week override lifted capacity to 4
	for _, tpl := range slots.templates {
		if tpl.SlotID == "VE-B1" {
			tpl.DefaultCapacity = 2
		}
	}
	slots.overrides["VE-B1"] = &domain.WeekOverride{
		ID:       1,
		Year:     2026,
		Week:     20,
		SlotID:   "VE-B1",
		Capacity: ptr.Ptr(4),
	}
	assignments := &fakeAssignmentRepo{assignments: []*domain.Assignment{
		{ID: 1, DogID: 1, SlotID: "VE-B1", Year: 2026, Week: 20},
		{ID: 2, DogID: 2, SlotID: "VE-B1", Year: 2026, Week: 20},
		{ID: 3, DogID: 3, SlotID: "VE-B1", Year: 2026, Week: 20},
	}}
	uc := newTestUseCase(slots, assignments)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Week: 20, SlotID: "VE-B1", Reset: true})

	require.NoError(t, err)
	require.False(t, resp.Applied)
	require.Equal(t, rules.CodeSlotOverbooked, resp.Report.Violations[0].Code)
	require.Equal(t, 3, resp.Report.Violations[0].Context["currentGroupCount"])
	require.Equal(t, 2, resp.Report.Violations[0].Context["maxCapacity"])
	// the override survives the refused reset
	require.Contains(t, slots.overrides, domain.SlotID("VE-B1"))
}

func TestUpdateOverrideValidation(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(newFakeSlotsRepo(), &fakeAssignmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{Year: 2026, Week: 20, SlotID: "bad"})
	require.ErrorIs(t, err, ErrInvalidInput)

	// reset combined with override fields is contradictory
	_, err = uc.Execute(context.Background(), &Request{
		Year:     2026,
		Week:     20,
		SlotID:   "MA-B2",
		Reset:    true,
		Capacity: ptr.Ptr(3),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
