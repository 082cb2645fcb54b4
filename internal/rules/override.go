package rules

import (
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

// CheckOverride evaluates a proposed per-week override change against the
// current effective state of the slot. The override has not been applied yet;
// the check merges it in first and validates the resulting slot
func CheckOverride(cfg domain.EngineConfig, week *domain.WeekView, proposed *domain.WeekOverride) Report {
	var report Report

	if !proposed.SlotID.Valid() {
		report.add(violation(CodeInvalidSlotID,
			fmt.Sprintf("slot id %q does not match the DAY-BLOCK pattern", proposed.SlotID),
			map[string]interface{}{"slotId": proposed.SlotID.String()}))
		return report
	}

	current := week.Slot(proposed.SlotID)
	if current == nil {
		report.add(violation(CodeInvalidSlotID,
			fmt.Sprintf("slot %s is not part of week %s", proposed.SlotID, week.WeekRef),
			map[string]interface{}{"slotId": proposed.SlotID.String(), "week": week.WeekRef.String()}))
		return report
	}

	// Собираем слот таким, каким он станет после применения оверрайда
	next := *current
	if proposed.WalkType != nil {
		next.WalkType = *proposed.WalkType
	}
	if proposed.Sector != nil {
		next.Sector = *proposed.Sector
	}
	if proposed.Capacity != nil {
		next.Capacity = *proposed.Capacity
	}
	next.Blocked = proposed.Blocked
	next.BlockedReason = proposed.BlockedReason

	report.Merge(checkSlotConfiguration(cfg, &next))

	if next.Blocked && current.Occupancy() > 0 {
		report.add(violation(CodeBlockedNotEmpty,
			fmt.Sprintf("slot %s still has %d assignments and cannot be blocked",
				current.SlotID, current.Occupancy()),
			map[string]interface{}{
				"groupId":     current.SlotID.String(),
				"assignments": current.Occupancy(),
			},
			"move or remove the assignments before blocking the slot"))
	}

	if !next.Blocked && next.Capacity < current.Occupancy() {
		report.add(violation(CodeSlotOverbooked,
			fmt.Sprintf("slot %s holds %d dogs; shrinking capacity to %d would overbook it",
				current.SlotID, current.Occupancy(), next.Capacity),
			map[string]interface{}{
				"groupId":           current.SlotID.String(),
				"currentGroupCount": current.Occupancy(),
				"maxCapacity":       next.Capacity,
			},
			"remove assignments first or keep a larger capacity"))
	}

	if proposed.Sector != nil && current.Sector != *proposed.Sector && current.Occupancy() > 0 {
		report.add(warning(CodeSectorMismatch,
			fmt.Sprintf("slot %s changes sector from %s to %s with %d dogs already assigned",
				current.SlotID, current.Sector, *proposed.Sector, current.Occupancy()),
			map[string]interface{}{
				"groupId":    current.SlotID.String(),
				"fromSector": current.Sector,
				"toSector":   *proposed.Sector,
			},
			"review the assigned dogs' preferred sectors"))
	}

	if !next.Blocked && next.Capacity > 0 && current.Occupancy() > 0 &&
		float64(current.Occupancy())/float64(next.Capacity) >= domain.NearCapacityThreshold &&
		current.Occupancy() <= next.Capacity {
		report.add(info(CodeNearCapacity,
			fmt.Sprintf("slot %s will be %d/%d after the override", current.SlotID, current.Occupancy(), next.Capacity),
			map[string]interface{}{
				"groupId":     current.SlotID.String(),
				"occupancy":   current.Occupancy(),
				"maxCapacity": next.Capacity,
			}))
	}

	return report
}
