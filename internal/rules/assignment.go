package rules

import (
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

// ProposedAssignment is a new (dog, slot) booking candidate for one week
// Routine may be nil when the dog has no configured routine
type ProposedAssignment struct {
	DogID   int64
	SlotID  domain.SlotID
	Routine *domain.DogRoutine
}

// CheckAssignment evaluates every assignment rule against the current week view
// and returns the full report. Rules are evaluated independently; a violation
// does not stop the remaining checks
func CheckAssignment(cfg domain.EngineConfig, week *domain.WeekView, proposed ProposedAssignment) Report {
	var report Report

	// Malformed slot ids are rejected before any rule evaluation:
	// no other rule is answerable for a slot that cannot exist
	if !proposed.SlotID.Valid() {
		report.add(violation(CodeInvalidSlotID,
			fmt.Sprintf("slot id %q does not match the DAY-BLOCK pattern", proposed.SlotID),
			map[string]interface{}{"slotId": proposed.SlotID.String()}))
		return report
	}

	slot := week.Slot(proposed.SlotID)
	if slot == nil {
		report.add(violation(CodeInvalidSlotID,
			fmt.Sprintf("slot %s is not part of week %s", proposed.SlotID, week.WeekRef),
			map[string]interface{}{"slotId": proposed.SlotID.String(), "week": week.WeekRef.String()}))
		return report
	}

	report.Merge(checkSlotConfiguration(cfg, slot))

	if slot.Blocked {
		ctx := map[string]interface{}{"groupId": slot.SlotID.String()}
		if slot.BlockedReason != nil {
			ctx["reason"] = *slot.BlockedReason
		}
		report.add(violation(CodeSlotBlocked,
			fmt.Sprintf("slot %s is blocked this week and accepts no assignment", slot.SlotID),
			ctx,
			"pick another slot or lift the block for this week"))
	}

	if slot.IsFull() {
		report.add(violation(CodeGroupFull,
			fmt.Sprintf("slot %s is full (%d/%d)", slot.SlotID, slot.Occupancy(), slot.Capacity),
			map[string]interface{}{
				"groupId":           slot.SlotID.String(),
				"currentGroupCount": slot.Occupancy(),
				"maxCapacity":       slot.Capacity,
			},
			"pick another slot with remaining capacity"))
	}

	if slot.HasDog(proposed.DogID) {
		report.add(violation(CodeDogAlreadyInGroup,
			fmt.Sprintf("dog %d is already assigned to slot %s this week", proposed.DogID, slot.SlotID),
			map[string]interface{}{
				"groupId": slot.SlotID.String(),
				"dogId":   proposed.DogID,
			}))
	}

	weekAssignments := week.AssignmentsOf(proposed.DogID)
	if len(weekAssignments) >= cfg.WeeklyAssignmentCap {
		report.add(violation(CodeWeeklyCapExceeded,
			fmt.Sprintf("dog %d already has %d assignments this week (hard cap %d)",
				proposed.DogID, len(weekAssignments), cfg.WeeklyAssignmentCap),
			map[string]interface{}{
				"dogId":     proposed.DogID,
				"assigned":  len(weekAssignments),
				"weeklyCap": cfg.WeeklyAssignmentCap,
			}))
	}

	if proposed.Routine != nil && !proposed.Routine.Tier.IsOnDemand() {
		expected := cfg.ExpectedWeeklyWalks(proposed.Routine.Tier)
		if len(weekAssignments) >= expected {
			// Превышение квоты рутины допустимо, но помечается для проверки оператором
			report.add(warning(CodeRoutineQuotaExceeded,
				fmt.Sprintf("dog %d has %d assignments this week, routine %s expects %d",
					proposed.DogID, len(weekAssignments), proposed.Routine.Tier, expected),
				map[string]interface{}{
					"dogId":    proposed.DogID,
					"tier":     string(proposed.Routine.Tier),
					"expected": expected,
					"assigned": len(weekAssignments),
				}))
		}
	}

	if proposed.Routine != nil {
		dogSector := proposed.Routine.SectorOrEmpty()
		if dogSector != "" && slot.Sector != "" && dogSector != slot.Sector {
			report.add(warning(CodeSectorMismatch,
				fmt.Sprintf("dog %d prefers sector %s but slot %s runs in sector %s",
					proposed.DogID, dogSector, slot.SlotID, slot.Sector),
				map[string]interface{}{
					"dogId":      proposed.DogID,
					"dogSector":  dogSector,
					"slotSector": slot.Sector,
					"groupId":    slot.SlotID.String(),
				},
				"expect a longer pickup drive; consider a same-sector slot"))
		}
	}

	report.Merge(checkConsecutiveBlocks(slot, proposed.DogID, weekAssignments))

	// Projected occupancy advisory: the seat being taken brings the slot near capacity
	if !slot.IsFull() && slot.Capacity > 0 {
		projected := float64(slot.Occupancy()+1) / float64(slot.Capacity)
		if projected >= domain.NearCapacityThreshold {
			report.add(info(CodeNearCapacity,
				fmt.Sprintf("slot %s will be %d/%d after this assignment", slot.SlotID, slot.Occupancy()+1, slot.Capacity),
				map[string]interface{}{
					"groupId":     slot.SlotID.String(),
					"occupancy":   slot.Occupancy() + 1,
					"maxCapacity": slot.Capacity,
				}))
		}
	}

	return report
}

// checkConsecutiveBlocks flags a back-to-back booking of the same dog on the same day
// Adjacent walks are legal (the dog simply stays out longer) but flagged
func checkConsecutiveBlocks(slot *domain.EffectiveSlotView, dogID int64, weekAssignments []domain.AssignmentView) Report {
	var report Report

	for _, existing := range weekAssignments {
		if existing.SlotID.Day() != slot.Day {
			continue
		}
		distance := existing.SlotID.Block().Index() - slot.Block.Index()
		if distance < 0 {
			distance = -distance
		}
		if distance == domain.ConsecutiveBlockDistance {
			report.add(warning(CodeConsecutiveBlocks,
				fmt.Sprintf("dog %d would walk back-to-back blocks %s and %s on %s",
					dogID, existing.SlotID.Block(), slot.Block, slot.Day),
				map[string]interface{}{
					"dogId":        dogID,
					"groupId":      slot.SlotID.String(),
					"adjacentSlot": existing.SlotID.String(),
				}))
		}
	}

	return report
}

// checkSlotConfiguration validates the effective capacity of a slot:
// absolute bounds plus the individual-walk pin to exactly one seat
func checkSlotConfiguration(cfg domain.EngineConfig, slot *domain.EffectiveSlotView) Report {
	var report Report

	if slot.Capacity < cfg.MinCapacity || slot.Capacity > cfg.MaxCapacity {
		report.add(violation(CodeCapacityOutOfRange,
			fmt.Sprintf("slot %s capacity %d is outside [%d, %d]",
				slot.SlotID, slot.Capacity, cfg.MinCapacity, cfg.MaxCapacity),
			map[string]interface{}{
				"groupId":     slot.SlotID.String(),
				"capacity":    slot.Capacity,
				"minCapacity": cfg.MinCapacity,
				"maxCapacity": cfg.MaxCapacity,
			}))
	}

	if slot.WalkType.IsSingleDog() && slot.Capacity != 1 {
		report.add(violation(CodeIndividualCapacity,
			fmt.Sprintf("slot %s is an %s walk and must have capacity 1, got %d",
				slot.SlotID, slot.WalkType, slot.Capacity),
			map[string]interface{}{
				"groupId":  slot.SlotID.String(),
				"walkType": string(slot.WalkType),
				"capacity": slot.Capacity,
			}))
	}

	return report
}
