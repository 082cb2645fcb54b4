package rules

import (
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

// CheckWeek validates an entire week snapshot at once, e.g. before importing
// a planned week. It applies the per-slot configuration rules plus the
// cross-dog integrity rules to every slot of the grid
func CheckWeek(cfg domain.EngineConfig, week *domain.WeekView) Report {
	var report Report

	if err := week.WeekRef.Validate(); err != nil {
		report.add(violation(CodeInvalidWeek,
			err.Error(),
			map[string]interface{}{"year": week.WeekRef.Year, "week": week.WeekRef.Week}))
		return report
	}

	// Сетка недели должна содержать ровно 15 слотов без пропусков и дублей
	expected := domain.AllSlotIDs()
	seen := make(map[domain.SlotID]int, len(week.Slots))
	for i := range week.Slots {
		seen[week.Slots[i].SlotID]++
	}
	for _, id := range expected {
		if seen[id] == 0 {
			report.add(violation(CodeInvalidSlotID,
				fmt.Sprintf("week %s is missing slot %s", week.WeekRef, id),
				map[string]interface{}{"slotId": id.String(), "week": week.WeekRef.String()}))
		}
	}
	for id, count := range seen {
		if count > 1 {
			report.add(violation(CodeInvalidSlotID,
				fmt.Sprintf("week %s contains slot %s %d times", week.WeekRef, id, count),
				map[string]interface{}{"slotId": id.String(), "count": count}))
		}
	}

	perDog := make(map[int64][]domain.AssignmentView)

	for i := range week.Slots {
		slot := &week.Slots[i]

		report.Merge(checkSlotConfiguration(cfg, slot))

		if slot.Blocked && slot.Occupancy() > 0 {
			report.add(violation(CodeBlockedNotEmpty,
				fmt.Sprintf("blocked slot %s still holds %d assignments", slot.SlotID, slot.Occupancy()),
				map[string]interface{}{
					"groupId":     slot.SlotID.String(),
					"assignments": slot.Occupancy(),
				}))
		}

		if slot.IsOverbooked() {
			report.add(violation(CodeSlotOverbooked,
				fmt.Sprintf("slot %s holds %d dogs for %d seats", slot.SlotID, slot.Occupancy(), slot.Capacity),
				map[string]interface{}{
					"groupId":           slot.SlotID.String(),
					"currentGroupCount": slot.Occupancy(),
					"maxCapacity":       slot.Capacity,
				}))
		}

		for _, a := range slot.Assignments {
			perDog[a.DogID] = append(perDog[a.DogID], a)
		}
	}

	for dogID, assignments := range perDog {
		if len(assignments) > cfg.WeeklyAssignmentCap {
			report.add(violation(CodeWeeklyCapExceeded,
				fmt.Sprintf("dog %d has %d assignments this week (hard cap %d)",
					dogID, len(assignments), cfg.WeeklyAssignmentCap),
				map[string]interface{}{
					"dogId":     dogID,
					"assigned":  len(assignments),
					"weeklyCap": cfg.WeeklyAssignmentCap,
				}))
		}
	}

	for _, f := range crossDogConflicts(perDog) {
		report.add(f)
	}

	return report
}
