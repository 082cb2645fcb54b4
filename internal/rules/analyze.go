package rules

import (
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

// DogQuotaStatus compares a dog's weekly assignments with its routine expectation
type DogQuotaStatus struct {
	DogID    int64              `json:"dogId"`
	Tier     domain.RoutineTier `json:"tier"`
	Expected int                `json:"expected"`
	Assigned int                `json:"assigned"`
	// Status is one of "under", "met", "over"
	Status string `json:"status"`
}

// WeekAnalysis is the aggregate load analysis of one full week snapshot,
// consumed read-only by the alerting and dashboard surface
type WeekAnalysis struct {
	Week domain.WeekRef `json:"week"`

	TotalCapacity      int     `json:"totalCapacity"`
	TotalAssigned      int     `json:"totalAssigned"`
	UtilizationPercent float64 `json:"utilizationPercent"`

	OverbookedSlots   []domain.SlotID `json:"overbookedSlots"`
	EmptySlots        []domain.SlotID `json:"emptySlots"`
	NearCapacitySlots []domain.SlotID `json:"nearCapacitySlots"`
	BlockedSlots      []domain.SlotID `json:"blockedSlots"`

	BySector map[string]int         `json:"bySector"`
	ByDay    map[domain.Weekday]int `json:"byDay"`
	ByBlock  map[domain.Block]int   `json:"byBlock"`

	// Conflicts lists cross-dog double bookings and consecutive-walk collisions
	// detected over all dogs of the week simultaneously
	Conflicts []Finding `json:"conflicts"`

	DogQuotas []DogQuotaStatus `json:"dogQuotas"`
}

// AnalyzeWeek runs the whole-week snapshot analysis: utilization, hotspot slot
// lists, distribution by sector/day/block and cross-dog conflicts
// Blocked slots contribute neither capacity nor occupancy to utilization
func AnalyzeWeek(cfg domain.EngineConfig, week *domain.WeekView, routines map[int64]*domain.DogRoutine) *WeekAnalysis {
	analysis := &WeekAnalysis{
		Week:     week.WeekRef,
		BySector: make(map[string]int),
		ByDay:    make(map[domain.Weekday]int),
		ByBlock:  make(map[domain.Block]int),
	}

	perDog := make(map[int64][]domain.AssignmentView)

	for i := range week.Slots {
		slot := &week.Slots[i]

		if slot.Blocked {
			analysis.BlockedSlots = append(analysis.BlockedSlots, slot.SlotID)
			// собаки в заблокированном слоте все равно считаются в квотах
			// и конфликтах; сам слот не дает вместимости
			for _, a := range slot.Assignments {
				perDog[a.DogID] = append(perDog[a.DogID], a)
			}
			if slot.Occupancy() > 0 {
				analysis.Conflicts = append(analysis.Conflicts, violation(CodeBlockedNotEmpty,
					fmt.Sprintf("blocked slot %s still holds %d dogs", slot.SlotID, slot.Occupancy()),
					map[string]interface{}{
						"groupId":           slot.SlotID.String(),
						"currentGroupCount": slot.Occupancy(),
					}))
			}
			continue
		}

		analysis.TotalCapacity += slot.Capacity
		analysis.TotalAssigned += slot.Occupancy()

		switch {
		case slot.IsOverbooked():
			analysis.OverbookedSlots = append(analysis.OverbookedSlots, slot.SlotID)
		case slot.Occupancy() == 0:
			analysis.EmptySlots = append(analysis.EmptySlots, slot.SlotID)
		case slot.IsNearCapacity() || slot.IsFull():
			analysis.NearCapacitySlots = append(analysis.NearCapacitySlots, slot.SlotID)
		}

		if slot.Occupancy() > 0 {
			sector := slot.Sector
			if sector == "" {
				sector = "unassigned"
			}
			analysis.BySector[sector] += slot.Occupancy()
			analysis.ByDay[slot.Day] += slot.Occupancy()
			analysis.ByBlock[slot.Block] += slot.Occupancy()
		}

		for _, a := range slot.Assignments {
			perDog[a.DogID] = append(perDog[a.DogID], a)
		}

		if slot.IsOverbooked() {
			analysis.Conflicts = append(analysis.Conflicts, violation(CodeSlotOverbooked,
				fmt.Sprintf("slot %s holds %d dogs for %d seats", slot.SlotID, slot.Occupancy(), slot.Capacity),
				map[string]interface{}{
					"groupId":           slot.SlotID.String(),
					"currentGroupCount": slot.Occupancy(),
					"maxCapacity":       slot.Capacity,
				}))
		}
	}

	if analysis.TotalCapacity > 0 {
		analysis.UtilizationPercent = float64(analysis.TotalAssigned) / float64(analysis.TotalCapacity) * 100
	}

	analysis.Conflicts = append(analysis.Conflicts, crossDogConflicts(perDog)...)
	analysis.DogQuotas = dogQuotas(cfg, perDog, routines)

	return analysis
}

// crossDogConflicts detects duplicate bookings of one dog in one slot and
// back-to-back walks across the whole week, over all dogs simultaneously
func crossDogConflicts(perDog map[int64][]domain.AssignmentView) []Finding {
	var findings []Finding

	for dogID, assignments := range perDog {
		seen := make(map[domain.SlotID]int)
		for _, a := range assignments {
			seen[a.SlotID]++
		}
		for slotID, count := range seen {
			if count > 1 {
				findings = append(findings, violation(CodeDogAlreadyInGroup,
					fmt.Sprintf("dog %d appears %d times in slot %s", dogID, count, slotID),
					map[string]interface{}{
						"dogId":   dogID,
						"groupId": slotID.String(),
						"count":   count,
					}))
			}
		}

		for i := 0; i < len(assignments); i++ {
			for j := i + 1; j < len(assignments); j++ {
				first, second := assignments[i].SlotID, assignments[j].SlotID
				if first.Day() != second.Day() || first == second {
					continue
				}
				distance := first.Block().Index() - second.Block().Index()
				if distance < 0 {
					distance = -distance
				}
				if distance == domain.ConsecutiveBlockDistance {
					findings = append(findings, warning(CodeConsecutiveBlocks,
						fmt.Sprintf("dog %d walks consecutive blocks %s and %s", dogID, first, second),
						map[string]interface{}{
							"dogId": dogID,
							"slots": []string{first.String(), second.String()},
						}))
				}
			}
		}
	}

	return findings
}

func dogQuotas(cfg domain.EngineConfig, perDog map[int64][]domain.AssignmentView, routines map[int64]*domain.DogRoutine) []DogQuotaStatus {
	var quotas []DogQuotaStatus

	for dogID, assignments := range perDog {
		routine, ok := routines[dogID]
		if !ok || routine == nil || routine.Tier.IsOnDemand() {
			continue
		}

		expected := cfg.ExpectedWeeklyWalks(routine.Tier)
		status := "met"
		switch {
		case len(assignments) < expected:
			status = "under"
		case len(assignments) > expected:
			status = "over"
		}

		quotas = append(quotas, DogQuotaStatus{
			DogID:    dogID,
			Tier:     routine.Tier,
			Expected: expected,
			Assigned: len(assignments),
			Status:   status,
		})
	}

	return quotas
}
