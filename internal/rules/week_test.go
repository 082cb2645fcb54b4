package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/pkg/ptr"
)

func TestCheckWeekClean(t *testing.T) {
	t.Parallel()

	week := buildWeek(nil, []*domain.Assignment{assigned(1, "LU-B1")})
	report := CheckWeek(domain.DefaultEngineConfig(), week)

	require.True(t, report.IsClean())
}

func TestCheckWeekInvalidRef(t *testing.T) {
	t.Parallel()

	week := &domain.WeekView{WeekRef: domain.WeekRef{Year: 2026, Week: 60}}
	report := CheckWeek(domain.DefaultEngineConfig(), week)

	require.Len(t, report.Violations, 1)
	require.Equal(t, CodeInvalidWeek, report.Violations[0].Code)
}

func TestCheckWeekMissingSlots(t *testing.T) {
	t.Parallel()

	full := buildWeek(nil, nil)
	partial := &domain.WeekView{WeekRef: full.WeekRef, Slots: full.Slots[:14]}

	report := CheckWeek(domain.DefaultEngineConfig(), partial)

	require.True(t, report.HasViolations())
	require.Contains(t, findingCodes(report.Violations), CodeInvalidSlotID)
	require.Equal(t, "VE-B3", report.Violations[0].Context["slotId"])
}

func TestCheckWeekOverbookedSlot(t *testing.T) {
	t.Parallel()

	overrides := []*domain.WeekOverride{{SlotID: "LU-B1", Capacity: ptr.Ptr(1)}}
	assignments := []*domain.Assignment{assigned(1, "LU-B1"), assigned(2, "LU-B1")}
	week := buildWeek(overrides, assignments)

	report := CheckWeek(domain.DefaultEngineConfig(), week)

	require.Contains(t, findingCodes(report.Violations), CodeSlotOverbooked)
}

func TestCheckWeekBlockedSlotWithDogs(t *testing.T) {
	t.Parallel()

	overrides := []*domain.WeekOverride{{SlotID: "MA-B3", Blocked: true}}
	assignments := []*domain.Assignment{assigned(1, "MA-B3")}
	week := buildWeek(overrides, assignments)

	report := CheckWeek(domain.DefaultEngineConfig(), week)

	require.Contains(t, findingCodes(report.Violations), CodeBlockedNotEmpty)
}

func TestCheckWeekCrossDogConflicts(t *testing.T) {
	t.Parallel()

	assignments := []*domain.Assignment{
		assigned(7, "JE-B1"),
		assigned(7, "JE-B2"),
	}
	week := buildWeek(nil, assignments)

	report := CheckWeek(domain.DefaultEngineConfig(), week)

	require.False(t, report.HasViolations())
	require.Contains(t, findingCodes(report.Warnings), CodeConsecutiveBlocks)
}
