package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/pkg/ptr"
)

func TestAnalyzeWeekUtilization(t *testing.T) {
	t.Parallel()

	assignments := []*domain.Assignment{
		assigned(1, "LU-B1"),
		assigned(2, "LU-B1"),
		assigned(3, "MA-B2"),
	}
	week := buildWeek(nil, assignments)

	analysis := AnalyzeWeek(domain.DefaultEngineConfig(), week, nil)

	require.Equal(t, 15*6, analysis.TotalCapacity)
	require.Equal(t, 3, analysis.TotalAssigned)
	require.InDelta(t, float64(3)/float64(90)*100, analysis.UtilizationPercent, 0.001)
	require.Len(t, analysis.EmptySlots, 13)
	require.Empty(t, analysis.OverbookedSlots)
	require.Empty(t, analysis.BlockedSlots)

	require.Equal(t, 2, analysis.ByDay[domain.Monday])
	require.Equal(t, 1, analysis.ByDay[domain.Tuesday])
	require.Equal(t, 2, analysis.ByBlock[domain.Block1])
	require.Equal(t, 1, analysis.ByBlock[domain.Block2])
	require.Equal(t, 3, analysis.BySector["nord"])
}

func TestAnalyzeWeekBlockedSlotsExcluded(t *testing.T) {
	t.Parallel()

	overrides := []*domain.WeekOverride{{SlotID: "VE-B3", Blocked: true}}
	week := buildWeek(overrides, nil)

	analysis := AnalyzeWeek(domain.DefaultEngineConfig(), week, nil)

	// blocked slots contribute neither capacity nor an empty-slot entry
	require.Equal(t, 14*6, analysis.TotalCapacity)
	require.Equal(t, []domain.SlotID{"VE-B3"}, analysis.BlockedSlots)
	require.Len(t, analysis.EmptySlots, 14)
}

func TestAnalyzeWeekBlockedSlotStillHoldingDogs(t *testing.T) {
	t.Parallel()

	overrides := []*domain.WeekOverride{{SlotID: "JE-B2", Blocked: true}}
	assignments := []*domain.Assignment{
		assigned(9, "JE-B2"),
		assigned(9, "JE-B3"),
	}
	week := buildWeek(overrides, assignments)

	routines := map[int64]*domain.DogRoutine{9: {DogID: 9, Tier: domain.TierR2}}
	analysis := AnalyzeWeek(domain.DefaultEngineConfig(), week, routines)

	// the blocked slot gives no capacity but its occupant is not invisible
	require.Equal(t, 14*6, analysis.TotalCapacity)
	codes := findingCodes(analysis.Conflicts)
	require.Contains(t, codes, CodeBlockedNotEmpty)
	require.Contains(t, codes, CodeConsecutiveBlocks)

	require.Len(t, analysis.DogQuotas, 1)
	require.Equal(t, 2, analysis.DogQuotas[0].Assigned)
	require.Equal(t, "met", analysis.DogQuotas[0].Status)
}

func TestAnalyzeWeekHotspots(t *testing.T) {
	t.Parallel()

	overrides := []*domain.WeekOverride{
		{SlotID: "LU-B1", Capacity: ptr.Ptr(2)},
		{SlotID: "MA-B1", Capacity: ptr.Ptr(4)},
	}
	assignments := []*domain.Assignment{
		// LU-B1 overbooked: 3 dogs for 2 seats
		assigned(1, "LU-B1"), assigned(2, "LU-B1"), assigned(3, "LU-B1"),
		// MA-B1 near capacity: 3 of 4
		assigned(4, "MA-B1"), assigned(5, "MA-B1"), assigned(6, "MA-B1"),
	}
	week := buildWeek(overrides, assignments)

	analysis := AnalyzeWeek(domain.DefaultEngineConfig(), week, nil)

	require.Equal(t, []domain.SlotID{"LU-B1"}, analysis.OverbookedSlots)
	require.Equal(t, []domain.SlotID{"MA-B1"}, analysis.NearCapacitySlots)
	require.Contains(t, findingCodes(analysis.Conflicts), CodeSlotOverbooked)
}

func TestAnalyzeWeekDogQuotas(t *testing.T) {
	t.Parallel()

	assignments := []*domain.Assignment{
		assigned(1, "LU-B1"), // R2: under
		assigned(2, "LU-B2"), assigned(2, "MA-B2"), // R2: met
		assigned(3, "LU-B3"), assigned(3, "MA-B3"), // R1: over
		assigned(4, "ME-B1"), // PONCTUEL: excluded
	}
	week := buildWeek(nil, assignments)

	routines := map[int64]*domain.DogRoutine{
		1: {DogID: 1, Tier: domain.TierR2},
		2: {DogID: 2, Tier: domain.TierR2},
		3: {DogID: 3, Tier: domain.TierR1},
		4: {DogID: 4, Tier: domain.TierOnDemand},
	}

	analysis := AnalyzeWeek(domain.DefaultEngineConfig(), week, routines)

	byDog := make(map[int64]DogQuotaStatus)
	for _, q := range analysis.DogQuotas {
		byDog[q.DogID] = q
	}

	require.Equal(t, "under", byDog[1].Status)
	require.Equal(t, "met", byDog[2].Status)
	require.Equal(t, "over", byDog[3].Status)
	require.NotContains(t, byDog, int64(4))
}

func TestAnalyzeWeekCrossDogConflicts(t *testing.T) {
	t.Parallel()

	assignments := []*domain.Assignment{
		assigned(9, "JE-B2"),
		assigned(9, "JE-B3"),
	}
	week := buildWeek(nil, assignments)

	analysis := AnalyzeWeek(domain.DefaultEngineConfig(), week, nil)

	require.Contains(t, findingCodes(analysis.Conflicts), CodeConsecutiveBlocks)
}
