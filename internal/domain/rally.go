package domain

import "time"

// RallyEvent is a multi-dog hike spanning two consecutive blocks on one day
// It cannot start in the last block of the day (no room for the second block)
// and carries its own fixed capacity of RallyCapacity participants
type RallyEvent struct {
	ID   int64
	Year int
	Week int

	Day        Weekday
	StartBlock Block

	Capacity int
	DogIDs   []int64

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Slots returns the two slot ids covered by the rally
func (r *RallyEvent) Slots() []SlotID {
	next, ok := r.StartBlock.Next()
	if !ok {
		return []SlotID{NewSlotID(r.Day, r.StartBlock)}
	}
	return []SlotID{
		NewSlotID(r.Day, r.StartBlock),
		NewSlotID(r.Day, next),
	}
}

// HasDog returns true if the dog participates in the rally
func (r *RallyEvent) HasDog(dogID int64) bool {
	for _, id := range r.DogIDs {
		if id == dogID {
			return true
		}
	}
	return false
}

// IsFull returns true when the participant list reached the rally capacity
func (r *RallyEvent) IsFull() bool {
	return len(r.DogIDs) >= r.Capacity
}
