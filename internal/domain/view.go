package domain

import "github.com/m04kA/DWS-ScheduleService/pkg/types"

// EffectiveSlotView is the materialized read-model of one slot for one week:
// template defaults merged with the week's override (override wins when present)
// plus the current assignment list. It is computed on every read and never persisted,
// since overrides and assignments can change between reads
type EffectiveSlotView struct {
	SlotID SlotID
	Day    Weekday
	Block  Block
	Year   int
	Week   int

	WalkType WalkType
	Sector   string // empty = undefined
	Capacity int

	Blocked       bool
	BlockedReason *string
	Notes         *string

	WalkStartTime types.TimeString
	PickupMinutes int
	WalkMinutes   int
	ReturnMinutes int

	Assignments []AssignmentView
}

// Occupancy returns the number of dogs currently assigned to the slot
func (v *EffectiveSlotView) Occupancy() int {
	return len(v.Assignments)
}

// Remaining returns the number of open seats, never negative
func (v *EffectiveSlotView) Remaining() int {
	remaining := v.Capacity - v.Occupancy()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsFull returns true when occupancy reached (or exceeded) capacity
func (v *EffectiveSlotView) IsFull() bool {
	return v.Occupancy() >= v.Capacity
}

// IsOverbooked returns true when occupancy exceeds capacity
// The validator exists to prevent this state; it can still appear after a
// capacity-shrinking override on an already filled slot
func (v *EffectiveSlotView) IsOverbooked() bool {
	return v.Occupancy() > v.Capacity
}

// IsNearCapacity returns true from NearCapacityThreshold occupancy (>=75% full)
func (v *EffectiveSlotView) IsNearCapacity() bool {
	if v.Capacity == 0 {
		return false
	}
	return !v.IsFull() && float64(v.Occupancy())/float64(v.Capacity) >= NearCapacityThreshold
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (v *EffectiveSlotView) OccupancyRate() float64 {
	if v.Capacity == 0 {
		return 0
	}
	return float64(v.Occupancy()) / float64(v.Capacity) * 100
}

// HasDog returns true if the dog is already assigned to this slot
func (v *EffectiveSlotView) HasDog(dogID int64) bool {
	for _, a := range v.Assignments {
		if a.DogID == dogID {
			return true
		}
	}
	return false
}

// MergeSlot computes the effective slot values with a right-biased merge:
// each override field wins when present, otherwise the template default applies
// The assignment list is attached by the caller
func MergeSlot(tpl *SlotTemplate, ovr *WeekOverride, week WeekRef) EffectiveSlotView {
	view := EffectiveSlotView{
		SlotID:        tpl.SlotID,
		Day:           tpl.Day,
		Block:         tpl.Block,
		Year:          week.Year,
		Week:          week.Week,
		WalkType:      tpl.DefaultWalkType,
		Sector:        tpl.DefaultSector,
		Capacity:      tpl.DefaultCapacity,
		WalkStartTime: tpl.WalkStartTime,
		PickupMinutes: tpl.PickupMinutes,
		WalkMinutes:   tpl.WalkMinutes,
		ReturnMinutes: tpl.ReturnMinutes,
	}

	if ovr == nil {
		return view
	}

	if ovr.WalkType != nil {
		view.WalkType = *ovr.WalkType
	}
	if ovr.Sector != nil {
		view.Sector = *ovr.Sector
	}
	if ovr.Capacity != nil {
		view.Capacity = *ovr.Capacity
	}
	view.Blocked = ovr.Blocked
	view.BlockedReason = ovr.BlockedReason
	view.Notes = ovr.Notes

	return view
}

// AssembleWeek materializes the full week grid from its raw parts:
// one effective view per template, overrides merged in, assignments attached
// dogs may be nil when display data is not needed (rule evaluation paths)
func AssembleWeek(
	week WeekRef,
	templates []*SlotTemplate,
	overrides []*WeekOverride,
	assignments []*Assignment,
	dogs map[int64]DogDisplay,
) *WeekView {
	overrideBySlot := make(map[SlotID]*WeekOverride, len(overrides))
	for _, ovr := range overrides {
		overrideBySlot[ovr.SlotID] = ovr
	}

	assignmentsBySlot := make(map[SlotID][]AssignmentView)
	for _, a := range assignments {
		view := AssignmentView{Assignment: *a}
		if dogs != nil {
			view.Dog = dogs[a.DogID]
		}
		assignmentsBySlot[a.SlotID] = append(assignmentsBySlot[a.SlotID], view)
	}

	slots := make([]EffectiveSlotView, 0, len(templates))
	for _, tpl := range templates {
		slot := MergeSlot(tpl, overrideBySlot[tpl.SlotID], week)
		slot.Assignments = assignmentsBySlot[tpl.SlotID]
		slots = append(slots, slot)
	}

	return &WeekView{WeekRef: week, Slots: slots}
}

// WeekView is the full materialized grid of one week: all 15 effective slots
// in day-then-block order
type WeekView struct {
	WeekRef WeekRef
	Slots   []EffectiveSlotView
}

// Slot returns the effective view of a slot id, or nil if absent
func (w *WeekView) Slot(id SlotID) *EffectiveSlotView {
	for i := range w.Slots {
		if w.Slots[i].SlotID == id {
			return &w.Slots[i]
		}
	}
	return nil
}

// AssignmentsOf collects every assignment of the dog across the week
func (w *WeekView) AssignmentsOf(dogID int64) []AssignmentView {
	var out []AssignmentView
	for i := range w.Slots {
		for _, a := range w.Slots[i].Assignments {
			if a.DogID == dogID {
				out = append(out, a)
			}
		}
	}
	return out
}
