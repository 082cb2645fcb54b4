package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/pkg/ptr"
)

func TestCheckOverrideClean(t *testing.T) {
	t.Parallel()

	week := buildWeek(nil, nil)
	proposed := &domain.WeekOverride{SlotID: "LU-B1", Capacity: ptr.Ptr(4)}

	report := CheckOverride(domain.DefaultEngineConfig(), week, proposed)
	require.False(t, report.HasViolations())
}

func TestCheckOverrideInvalidSlot(t *testing.T) {
	t.Parallel()

	week := buildWeek(nil, nil)
	proposed := &domain.WeekOverride{SlotID: "LU-B9"}

	report := CheckOverride(domain.DefaultEngineConfig(), week, proposed)
	require.Len(t, report.Violations, 1)
	require.Equal(t, CodeInvalidSlotID, report.Violations[0].Code)
}

func TestCheckOverrideCapacityOutOfRange(t *testing.T) {
	t.Parallel()

	week := buildWeek(nil, nil)

	report := CheckOverride(domain.DefaultEngineConfig(), week, &domain.WeekOverride{SlotID: "LU-B1", Capacity: ptr.Ptr(0)})
	require.Contains(t, findingCodes(report.Violations), CodeCapacityOutOfRange)

	report = CheckOverride(domain.DefaultEngineConfig(), week, &domain.WeekOverride{SlotID: "LU-B1", Capacity: ptr.Ptr(7)})
	require.Contains(t, findingCodes(report.Violations), CodeCapacityOutOfRange)
}

func TestCheckOverrideShrinkBelowOccupancy(t *testing.T) {
	t.Parallel()

	assignments := []*domain.Assignment{
		assigned(1, "MA-B1"),
		assigned(2, "MA-B1"),
		assigned(3, "MA-B1"),
	}
	week := buildWeek(nil, assignments)

	report := CheckOverride(domain.DefaultEngineConfig(), week, &domain.WeekOverride{SlotID: "MA-B1", Capacity: ptr.Ptr(2)})

	require.True(t, report.HasViolations())
	require.Contains(t, findingCodes(report.Violations), CodeSlotOverbooked)

	var f Finding
	for _, v := range report.Violations {
		if v.Code == CodeSlotOverbooked {
			f = v
		}
	}
	require.Equal(t, 3, f.Context["currentGroupCount"])
	require.Equal(t, 2, f.Context["maxCapacity"])

	// shrinking down to the exact occupancy is legal
	report = CheckOverride(domain.DefaultEngineConfig(), week, &domain.WeekOverride{SlotID: "MA-B1", Capacity: ptr.Ptr(3)})
	require.False(t, report.HasViolations())
}

func TestCheckOverrideBlockNonEmptySlot(t *testing.T) {
	t.Parallel()

	week := buildWeek(nil, []*domain.Assignment{assigned(1, "ME-B2")})

	report := CheckOverride(domain.DefaultEngineConfig(), week, &domain.WeekOverride{SlotID: "ME-B2", Blocked: true})

	require.Contains(t, findingCodes(report.Violations), CodeBlockedNotEmpty)
}

func TestCheckOverrideIndividualPinsCapacity(t *testing.T) {
	t.Parallel()

	week := buildWeek(nil, nil)
	proposed := &domain.WeekOverride{SlotID: "JE-B3", WalkType: ptr.Ptr(domain.WalkIndividual)}

	// switching to individual without shrinking capacity to 1 is refused
	report := CheckOverride(domain.DefaultEngineConfig(), week, proposed)
	require.Contains(t, findingCodes(report.Violations), CodeIndividualCapacity)

	proposed.Capacity = ptr.Ptr(1)
	report = CheckOverride(domain.DefaultEngineConfig(), week, proposed)
	require.False(t, report.HasViolations())
}

func TestCheckOverrideSectorChangeWarnsWithDogs(t *testing.T) {
	t.Parallel()

	week := buildWeek(nil, []*domain.Assignment{assigned(1, "VE-B1")})

	report := CheckOverride(domain.DefaultEngineConfig(), week, &domain.WeekOverride{SlotID: "VE-B1", Sector: ptr.Ptr("sud")})
	require.False(t, report.HasViolations())
	require.Contains(t, findingCodes(report.Warnings), CodeSectorMismatch)

	// empty slot: sector change is silent
	report = CheckOverride(domain.DefaultEngineConfig(), week, &domain.WeekOverride{SlotID: "VE-B2", Sector: ptr.Ptr("sud")})
	require.False(t, report.HasViolations())
	require.Empty(t, report.Warnings)
}
