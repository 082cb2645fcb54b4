package domain

import "time"

// WeekOverride is an optional per-(year, week, slot) deviation from the slot template
// Absence of an override means "use template defaults"
// Field semantics: nil pointer = keep the template value
type WeekOverride struct {
	ID     int64
	Year   int
	Week   int
	SlotID SlotID

	WalkType *WalkType
	Sector   *string
	Capacity *int

	Blocked       bool
	BlockedReason *string
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasChanges returns true if the override actually deviates from template defaults
func (o *WeekOverride) HasChanges() bool {
	return o.WalkType != nil || o.Sector != nil || o.Capacity != nil || o.Blocked || o.Notes != nil
}
