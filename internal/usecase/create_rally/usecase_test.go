package create_rally

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/internal/rules"
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

type fakeAssignmentRepo struct {
	assignments []*domain.Assignment
}

func (f *fakeAssignmentRepo) GetByWeek(ctx context.Context, year, week int) ([]*domain.Assignment, error) {
	return f.assignments, nil
}

type fakeRallyRepo struct {
	rallies []*domain.RallyEvent
	nextID  int64
}

func (f *fakeRallyRepo) Create(ctx context.Context, event *domain.RallyEvent) (*domain.RallyEvent, error) {
	f.nextID++
	created := *event
	created.ID = f.nextID
	f.rallies = append(f.rallies, &created)
	return &created, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(slots *fakeSlotsRepo, assignments *fakeAssignmentRepo, rallies *fakeRallyRepo) *UseCase {
	return NewUseCase(slots, assignments, rallies, fakeTxManager{}, domain.DefaultEngineConfig(), nopLogger{})
}

func TestCreateRallyBlocksCoveredSlots(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotsRepo()
	rallies := &fakeRallyRepo{}
	uc := newTestUseCase(slots, &fakeAssignmentRepo{}, rallies)

	resp, err := uc.Execute(context.Background(), &Request{
		Year:       2026,
		Week:       20,
		Day:        domain.Thursday,
		StartBlock: domain.Block1,
		DogIDs:     []int64{1, 2, 3},
	})

	require.NoError(t, err)
	require.True(t, resp.Created)
	require.NotNil(t, resp.Rally)
	require.Equal(t, domain.RallyCapacity, resp.Rally.Capacity)
	require.Equal(t, []domain.SlotID{"JE-B1", "JE-B2"}, resp.Rally.Slots())

	// both covered slots are blocked by rally overrides
	for _, slotID := range []domain.SlotID{"JE-B1", "JE-B2"} {
		ovr, ok := slots.overrides[slotID]
		require.True(t, ok, "missing override for %s", slotID)
		require.True(t, ovr.Blocked)
		require.Equal(t, domain.WalkRally, *ovr.WalkType)
		require.Equal(t, "reserved by rally #1", *ovr.BlockedReason)
	}
}

func TestCreateRallyRefusesOccupiedSlot(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotsRepo()
	assignments := &fakeAssignmentRepo{assignments: []*domain.Assignment{
		{ID: 1, DogID: 9, SlotID: "JE-B2", Year: 2026, Week: 20},
	}}
	rallies := &fakeRallyRepo{}
	uc := newTestUseCase(slots, assignments, rallies)

	resp, err := uc.Execute(context.Background(), &Request{
		Year:       2026,
		Week:       20,
		Day:        domain.Thursday,
		StartBlock: domain.Block1,
		DogIDs:     []int64{1},
	})

	require.NoError(t, err)
	require.False(t, resp.Created)
	require.Equal(t, rules.CodeBlockedNotEmpty, resp.Report.Violations[0].Code)
	require.Empty(t, rallies.rallies)
	require.Empty(t, slots.overrides)
}

func TestCreateRallyRefusesBlockedSlot(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotsRepo()
	slots.overrides["ME-B2"] = &domain.WeekOverride{
		ID:      1,
		Year:    2026,
		Week:    20,
		SlotID:  "ME-B2",
		Blocked: true,
	}
	uc := newTestUseCase(slots, &fakeAssignmentRepo{}, &fakeRallyRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Year:       2026,
		Week:       20,
		Day:        domain.Wednesday,
		StartBlock: domain.Block2,
		DogIDs:     []int64{1},
	})

	require.NoError(t, err)
	require.False(t, resp.Created)
	require.Equal(t, rules.CodeSlotBlocked, resp.Report.Violations[0].Code)
}

func TestCreateRallyCountsTowardsWeeklyCap(t *testing.T) {
	t.Parallel()

	slots := newFakeSlotsRepo()
	// dog 5 is already at the weekly cap elsewhere in the week
	assignments := &fakeAssignmentRepo{assignments: []*domain.Assignment{
		{ID: 1, DogID: 5, SlotID: "LU-B1", Year: 2026, Week: 20},
		{ID: 2, DogID: 5, SlotID: "LU-B3", Year: 2026, Week: 20},
		{ID: 3, DogID: 5, SlotID: "MA-B1", Year: 2026, Week: 20},
		{ID: 4, DogID: 5, SlotID: "MA-B3", Year: 2026, Week: 20},
		{ID: 5, DogID: 5, SlotID: "ME-B1", Year: 2026, Week: 20},
	}}
	uc := newTestUseCase(slots, assignments, &fakeRallyRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Year:       2026,
		Week:       20,
		Day:        domain.Thursday,
		StartBlock: domain.Block2,
		DogIDs:     []int64{5},
	})

	require.NoError(t, err)
	require.False(t, resp.Created)
	require.Equal(t, rules.CodeWeeklyCapExceeded, resp.Report.Violations[0].Code)
}

func TestCreateRallyValidation(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(newFakeSlotsRepo(), &fakeAssignmentRepo{}, &fakeRallyRepo{})

	// last block of the day leaves no room for the second block
	_, err := uc.Execute(context.Background(), &Request{
		Year:       2026,
		Week:       20,
		Day:        domain.Monday,
		StartBlock: domain.Block3,
		DogIDs:     []int64{1},
	})
	require.ErrorIs(t, err, ErrInvalidStartBlock)

	_, err = uc.Execute(context.Background(), &Request{
		Year:       2026,
		Week:       20,
		Day:        domain.Monday,
		StartBlock: domain.Block1,
		DogIDs:     []int64{1, 2, 3, 4},
	})
	require.ErrorIs(t, err, ErrTooManyParticipants)

	_, err = uc.Execute(context.Background(), &Request{
		Year:       2026,
		Week:       20,
		Day:        domain.Monday,
		StartBlock: domain.Block1,
		DogIDs:     []int64{1, 1},
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Year:       2026,
		Week:       20,
		Day:        domain.Monday,
		StartBlock: domain.Block1,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
