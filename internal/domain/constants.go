package domain

// WalkType classifies a walk for capacity and pricing purposes
type WalkType string

const (
	WalkCollective WalkType = "collective"
	WalkIndividual WalkType = "individual"
	WalkRally      WalkType = "rally"
	WalkTraining   WalkType = "training"
)

// WalkTypes lists all known walk types
var WalkTypes = []WalkType{WalkCollective, WalkIndividual, WalkRally, WalkTraining}

// Valid returns true if the walk type is one of the known types
func (t WalkType) Valid() bool {
	switch t {
	case WalkCollective, WalkIndividual, WalkRally, WalkTraining:
		return true
	}
	return false
}

// IsSingleDog returns true for types that pin the slot capacity to exactly 1
func (t WalkType) IsSingleDog() bool {
	return t == WalkIndividual || t == WalkTraining
}

// RoutineTier is the recurring weekly walk-frequency tier of a dog
type RoutineTier string

const (
	TierR1          RoutineTier = "R1"
	TierR2          RoutineTier = "R2"
	TierR3          RoutineTier = "R3"
	TierRoutinePlus RoutineTier = "ROUTINE_PLUS"
	TierOnDemand    RoutineTier = "PONCTUEL"
)

// RoutineTiers lists all known tiers
var RoutineTiers = []RoutineTier{TierR1, TierR2, TierR3, TierRoutinePlus, TierOnDemand}

// Valid returns true if the tier is one of the known tiers
func (t RoutineTier) Valid() bool {
	switch t {
	case TierR1, TierR2, TierR3, TierRoutinePlus, TierOnDemand:
		return true
	}
	return false
}

// IsOnDemand returns true for the tier excluded from automatic assignment
func (t RoutineTier) IsOnDemand() bool {
	return t == TierOnDemand
}

// TimePreference is a dog's preferred part of the day
type TimePreference string

const (
	PreferMorning     TimePreference = "morning"   // block B1
	PreferMidday      TimePreference = "midday"    // block B2
	PreferAfternoon   TimePreference = "afternoon" // block B3
	PreferIndifferent TimePreference = "indifferent"
)

// Valid returns true if the preference is one of the known values
func (p TimePreference) Valid() bool {
	switch p {
	case PreferMorning, PreferMidday, PreferAfternoon, PreferIndifferent:
		return true
	}
	return false
}

// Matches returns true if the preference accepts the given block
// The indifferent preference matches every block
func (p TimePreference) Matches(b Block) bool {
	switch p {
	case PreferMorning:
		return b == Block1
	case PreferMidday:
		return b == Block2
	case PreferAfternoon:
		return b == Block3
	default:
		return true
	}
}

// Business validation constants
const (
	// Capacity bounds for any slot; individual walks are additionally pinned to 1
	MinSlotCapacity = 1
	MaxSlotCapacity = 6

	// WeeklyAssignmentCap hard cap of assignments per dog per week, regardless of tier
	WeeklyAssignmentCap = 5

	// NearCapacityThreshold occupancy ratio from which a slot is flagged as near capacity
	NearCapacityThreshold = 0.75

	// RallyCapacity fixed participant capacity of a rally hike
	RallyCapacity = 3

	// ConsecutiveBlockDistance distance (in blocks) that triggers the back-to-back warning
	ConsecutiveBlockDistance = 1

	MaxNotesLength         = 500
	MaxBlockedReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
