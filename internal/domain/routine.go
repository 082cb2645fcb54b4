package domain

import "time"

// DogRoutine is a dog's recurring weekly walk preference profile
// At most one routine exists per dog; it is never auto-deleted
type DogRoutine struct {
	ID    int64
	DogID int64

	Tier RoutineTier

	// PreferredSector nil or empty = flexible
	PreferredSector *string

	// PreferredTime defaults to indifferent when unset
	PreferredTime TimePreference

	// PreferredDays empty = any day suits
	PreferredDays []Weekday

	// PreferredWalkType nil = no preference
	PreferredWalkType *WalkType

	// Notes free-text behavior and requirement notes from the owner
	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PrefersDay returns true if the day belongs to the preferred set, or the set is empty
func (r *DogRoutine) PrefersDay(day Weekday) bool {
	if len(r.PreferredDays) == 0 {
		return true
	}
	for _, d := range r.PreferredDays {
		if d == day {
			return true
		}
	}
	return false
}

// SectorOrEmpty returns the preferred sector, or "" when the dog is flexible
func (r *DogRoutine) SectorOrEmpty() string {
	if r.PreferredSector == nil {
		return ""
	}
	return *r.PreferredSector
}
