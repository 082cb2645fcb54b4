package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/DWS-ScheduleService/pkg/ptr"
)

func testTemplate(day Weekday, block Block) *SlotTemplate {
	return &SlotTemplate{
		SlotID:          NewSlotID(day, block),
		Day:             day,
		Block:           block,
		PickupMinutes:   30,
		WalkMinutes:     60,
		ReturnMinutes:   30,
		WalkStartTime:   "09:30",
		DefaultWalkType: WalkCollective,
		DefaultSector:   "nord",
		DefaultCapacity: 6,
	}
}

func TestMergeSlotWithoutOverride(t *testing.T) {
	t.Parallel()

	week := WeekRef{Year: 2026, Week: 12}
	view := MergeSlot(testTemplate(Monday, Block1), nil, week)

	require.Equal(t, SlotID("LU-B1"), view.SlotID)
	require.Equal(t, 2026, view.Year)
	require.Equal(t, 12, view.Week)
	require.Equal(t, WalkCollective, view.WalkType)
	require.Equal(t, "nord", view.Sector)
	require.Equal(t, 6, view.Capacity)
	require.False(t, view.Blocked)
	require.Nil(t, view.BlockedReason)
}

func TestMergeSlotOverrideWins(t *testing.T) {
	t.Parallel()

	week := WeekRef{Year: 2026, Week: 12}
	ovr := &WeekOverride{
		SlotID:        "LU-B1",
		WalkType:      ptr.Ptr(WalkIndividual),
		Sector:        ptr.Ptr("sud"),
		Capacity:      ptr.Ptr(1),
		Blocked:       true,
		BlockedReason: ptr.Ptr("vet day"),
	}
	view := MergeSlot(testTemplate(Monday, Block1), ovr, week)

	require.Equal(t, WalkIndividual, view.WalkType)
	require.Equal(t, "sud", view.Sector)
	require.Equal(t, 1, view.Capacity)
	require.True(t, view.Blocked)
	require.Equal(t, "vet day", *view.BlockedReason)
	// template values survive where the override is silent
	require.Equal(t, 30, view.PickupMinutes)
	require.Equal(t, 60, view.WalkMinutes)
}

func TestMergeSlotPartialOverride(t *testing.T) {
	t.Parallel()

	week := WeekRef{Year: 2026, Week: 12}
	ovr := &WeekOverride{SlotID: "LU-B1", Capacity: ptr.Ptr(4)}
	view := MergeSlot(testTemplate(Monday, Block1), ovr, week)

	require.Equal(t, 4, view.Capacity)
	require.Equal(t, WalkCollective, view.WalkType)
	require.Equal(t, "nord", view.Sector)
	require.False(t, view.Blocked)
}

func TestEffectiveSlotViewOccupancy(t *testing.T) {
	t.Parallel()

	view := EffectiveSlotView{Capacity: 4}
	require.Equal(t, 0, view.Occupancy())
	require.Equal(t, 4, view.Remaining())
	require.False(t, view.IsFull())
	require.False(t, view.IsOverbooked())
	require.False(t, view.IsNearCapacity())

	for i := int64(1); i <= 3; i++ {
		view.Assignments = append(view.Assignments, AssignmentView{Assignment: Assignment{DogID: i}})
	}
	require.Equal(t, 3, view.Occupancy())
	require.Equal(t, 1, view.Remaining())
	require.False(t, view.IsFull())
	require.True(t, view.IsNearCapacity())
	require.InDelta(t, 75.0, view.OccupancyRate(), 0.001)
	require.True(t, view.HasDog(2))
	require.False(t, view.HasDog(9))

	view.Assignments = append(view.Assignments, AssignmentView{Assignment: Assignment{DogID: 4}})
	require.True(t, view.IsFull())
	require.False(t, view.IsOverbooked())
	require.False(t, view.IsNearCapacity())
	require.Equal(t, 0, view.Remaining())

	view.Assignments = append(view.Assignments, AssignmentView{Assignment: Assignment{DogID: 5}})
	require.True(t, view.IsOverbooked())
	require.Equal(t, 0, view.Remaining())
}

func TestAssembleWeek(t *testing.T) {
	t.Parallel()

	week := WeekRef{Year: 2026, Week: 12}
	var templates []*SlotTemplate
	for _, day := range Weekdays {
		for _, block := range Blocks {
			templates = append(templates, testTemplate(day, block))
		}
	}

	overrides := []*WeekOverride{
		{SlotID: "MA-B2", Capacity: ptr.Ptr(3)},
	}
	assignments := []*Assignment{
		{ID: 1, DogID: 101, SlotID: "LU-B1", Year: 2026, Week: 12},
		{ID: 2, DogID: 102, SlotID: "LU-B1", Year: 2026, Week: 12},
		{ID: 3, DogID: 101, SlotID: "ME-B3", Year: 2026, Week: 12},
	}
	dogs := map[int64]DogDisplay{
		101: {DogID: 101, Name: "Rex", OwnerName: "Dupont", Sector: "nord"},
		102: {DogID: 102, Name: "Luna", OwnerName: "Martin", Sector: "sud"},
	}

	view := AssembleWeek(week, templates, overrides, assignments, dogs)
	require.Len(t, view.Slots, 15)

	monday := view.Slot("LU-B1")
	require.NotNil(t, monday)
	require.Equal(t, 2, monday.Occupancy())
	require.Equal(t, "Rex", monday.Assignments[0].Dog.Name)
	require.Equal(t, "Luna", monday.Assignments[1].Dog.Name)

	tuesday := view.Slot("MA-B2")
	require.NotNil(t, tuesday)
	require.Equal(t, 3, tuesday.Capacity)

	require.Nil(t, view.Slot("XX-B9"))

	ofDog := view.AssignmentsOf(101)
	require.Len(t, ofDog, 2)

	// nil dogs map skips display data
	bare := AssembleWeek(week, templates, nil, assignments, nil)
	require.Equal(t, DogDisplay{}, bare.Slot("LU-B1").Assignments[0].Dog)
}
