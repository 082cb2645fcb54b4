package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/pkg/ptr"
)

// buildWeek собирает сетку из 15 слотов с дефолтными шаблонами
func buildWeek(overrides []*domain.WeekOverride, assignments []*domain.Assignment) *domain.WeekView {
	week := domain.WeekRef{Year: 2026, Week: 20}
	var templates []*domain.SlotTemplate
	for _, day := range domain.Weekdays {
		for _, block := range domain.Blocks {
			templates = append(templates, &domain.SlotTemplate{
				SlotID:          domain.NewSlotID(day, block),
				Day:             day,
				Block:           block,
				PickupMinutes:   30,
				WalkMinutes:     60,
				ReturnMinutes:   30,
				WalkStartTime:   "09:30",
				DefaultWalkType: domain.WalkCollective,
				DefaultSector:   "nord",
				DefaultCapacity: 6,
			})
		}
	}
	return domain.AssembleWeek(week, templates, overrides, assignments, nil)
}

func assigned(dogID int64, slotID domain.SlotID) *domain.Assignment {
	return &domain.Assignment{DogID: dogID, SlotID: slotID, Year: 2026, Week: 20}
}

func findingCodes(findings []Finding) []Code {
	codes := make([]Code, 0, len(findings))
	for _, f := range findings {
		codes = append(codes, f.Code)
	}
	return codes
}

func TestCheckAssignmentClean(t *testing.T) {
	t.Parallel()

	week := buildWeek(nil, nil)
	report := CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 1, SlotID: "LU-B1"})

	require.False(t, report.HasViolations())
	require.Empty(t, report.Warnings)
}

func TestCheckAssignmentInvalidSlotID(t *testing.T) {
	t.Parallel()

	week := buildWeek(nil, nil)
	report := CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 1, SlotID: "SA-B1"})

	require.True(t, report.HasViolations())
	require.Len(t, report.Violations, 1)
	require.Equal(t, CodeInvalidSlotID, report.Violations[0].Code)
}

func TestCheckAssignmentGroupFull(t *testing.T) {
	t.Parallel()

	var assignments []*domain.Assignment
	for dog := int64(1); dog <= 6; dog++ {
		assignments = append(assignments, assigned(dog, "LU-B1"))
	}
	week := buildWeek(nil, assignments)

	report := CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 7, SlotID: "LU-B1"})

	require.True(t, report.HasViolations())
	require.Contains(t, findingCodes(report.Violations), CodeGroupFull)

	var full Finding
	for _, f := range report.Violations {
		if f.Code == CodeGroupFull {
			full = f
		}
	}
	require.Equal(t, "LU-B1", full.Context["groupId"])
	require.Equal(t, 6, full.Context["currentGroupCount"])
	require.Equal(t, 6, full.Context["maxCapacity"])
	require.NotEmpty(t, full.Suggestions)
}

func TestCheckAssignmentDogAlreadyInGroup(t *testing.T) {
	t.Parallel()

	week := buildWeek(nil, []*domain.Assignment{assigned(5, "MA-B2")})
	report := CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 5, SlotID: "MA-B2"})

	require.Contains(t, findingCodes(report.Violations), CodeDogAlreadyInGroup)
}

func TestCheckAssignmentSlotBlocked(t *testing.T) {
	t.Parallel()

	overrides := []*domain.WeekOverride{{
		SlotID:        "VE-B3",
		Blocked:       true,
		BlockedReason: ptr.Ptr("public holiday"),
	}}
	week := buildWeek(overrides, nil)

	report := CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 1, SlotID: "VE-B3"})

	require.True(t, report.HasViolations())
	require.Contains(t, findingCodes(report.Violations), CodeSlotBlocked)
	require.Equal(t, "public holiday", report.Violations[0].Context["reason"])
}

func TestCheckAssignmentWeeklyCap(t *testing.T) {
	t.Parallel()

	assignments := []*domain.Assignment{
		assigned(3, "LU-B1"),
		assigned(3, "MA-B1"),
		assigned(3, "ME-B1"),
		assigned(3, "JE-B1"),
		assigned(3, "VE-B1"),
	}
	week := buildWeek(nil, assignments)

	report := CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 3, SlotID: "LU-B3"})

	require.Contains(t, findingCodes(report.Violations), CodeWeeklyCapExceeded)
}

func TestCheckAssignmentRoutineQuotaWarning(t *testing.T) {
	t.Parallel()

	week := buildWeek(nil, []*domain.Assignment{assigned(3, "LU-B1")})
	routine := &domain.DogRoutine{DogID: 3, Tier: domain.TierR1}

	report := CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 3, SlotID: "ME-B2", Routine: routine})

	// going over the routine quota is allowed but flagged
	require.False(t, report.HasViolations())
	require.Contains(t, findingCodes(report.Warnings), CodeRoutineQuotaExceeded)
}

func TestCheckAssignmentSectorMismatchWarning(t *testing.T) {
	t.Parallel()

	week := buildWeek(nil, nil)
	routine := &domain.DogRoutine{DogID: 3, Tier: domain.TierR2, PreferredSector: ptr.Ptr("sud")}

	report := CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 3, SlotID: "LU-B1", Routine: routine})

	require.False(t, report.HasViolations())
	require.Contains(t, findingCodes(report.Warnings), CodeSectorMismatch)
}

func TestCheckAssignmentSectorFlexibleIsSilent(t *testing.T) {
	t.Parallel()

	week := buildWeek(nil, nil)
	routine := &domain.DogRoutine{DogID: 3, Tier: domain.TierR2}

	report := CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 3, SlotID: "LU-B1", Routine: routine})

	require.NotContains(t, findingCodes(report.Warnings), CodeSectorMismatch)
}

func TestCheckAssignmentConsecutiveBlocksWarning(t *testing.T) {
	t.Parallel()

	week := buildWeek(nil, []*domain.Assignment{assigned(4, "ME-B1")})

	report := CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 4, SlotID: "ME-B2"})
	require.Contains(t, findingCodes(report.Warnings), CodeConsecutiveBlocks)

	// B1 and B3 are not adjacent
	report = CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 4, SlotID: "ME-B3"})
	require.NotContains(t, findingCodes(report.Warnings), CodeConsecutiveBlocks)

	// same blocks on different days never collide
	report = CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 4, SlotID: "JE-B2"})
	require.NotContains(t, findingCodes(report.Warnings), CodeConsecutiveBlocks)
}

func TestCheckAssignmentIndividualCapacity(t *testing.T) {
	t.Parallel()

	overrides := []*domain.WeekOverride{{
		SlotID:   "JE-B2",
		WalkType: ptr.Ptr(domain.WalkIndividual),
		// capacity left at the collective default of 6
	}}
	week := buildWeek(overrides, nil)

	report := CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 1, SlotID: "JE-B2"})

	require.Contains(t, findingCodes(report.Violations), CodeIndividualCapacity)
}

func TestCheckAssignmentNearCapacityInfo(t *testing.T) {
	t.Parallel()

	assignments := []*domain.Assignment{
		assigned(1, "LU-B1"),
		assigned(2, "LU-B1"),
		assigned(3, "LU-B1"),
		assigned(4, "LU-B1"),
	}
	week := buildWeek(nil, assignments)

	// the fifth seat of six lands at 83% projected occupancy
	report := CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 5, SlotID: "LU-B1"})

	require.False(t, report.HasViolations())
	require.Contains(t, findingCodes(report.Infos), CodeNearCapacity)
}

func TestCheckAssignmentCollectsAllViolations(t *testing.T) {
	t.Parallel()

	// blocked AND full AND duplicate at once: the report carries all of them
	overrides := []*domain.WeekOverride{{
		SlotID:   "LU-B1",
		Capacity: ptr.Ptr(1),
		Blocked:  true,
	}}
	week := buildWeek(overrides, []*domain.Assignment{assigned(9, "LU-B1")})

	report := CheckAssignment(domain.DefaultEngineConfig(), week, ProposedAssignment{DogID: 9, SlotID: "LU-B1"})

	codes := findingCodes(report.Violations)
	require.Contains(t, codes, CodeSlotBlocked)
	require.Contains(t, codes, CodeGroupFull)
	require.Contains(t, codes, CodeDogAlreadyInGroup)
}
