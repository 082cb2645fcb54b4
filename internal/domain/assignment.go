package domain

import "time"

// Assignment books one dog into one slot for one specific calendar week
// The (dog, slot, year, week) tuple is unique; a duplicate is a conflict, not a second booking
type Assignment struct {
	ID     int64
	DogID  int64
	SlotID SlotID
	Year   int
	Week   int

	Confirmed bool

	// Completed flips once when the walk has been done and triggers billing sync
	Completed   bool
	CompletedAt *time.Time

	// OverridePrice manual price that takes precedence over the tariff table at sync time
	OverridePrice *float64

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeekRef returns the ISO week the assignment belongs to
func (a *Assignment) WeekRef() WeekRef {
	return WeekRef{Year: a.Year, Week: a.Week}
}

// CanComplete returns true if the completion flag may still be flipped
func (a *Assignment) CanComplete() bool {
	return !a.Completed
}

// DogDisplay is the minimal display projection of a dog and its owner,
// supplied by the client/animal collaborator and never persisted here
type DogDisplay struct {
	DogID     int64
	Name      string
	OwnerName string
	// Sector inferred from the owner's address by the collaborator
	Sector string
}

// AssignmentView is an assignment joined with display data for the weekly grid
type AssignmentView struct {
	Assignment
	Dog DogDisplay
}
