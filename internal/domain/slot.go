package domain

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/m04kA/DWS-ScheduleService/pkg/types"
)

// Weekday is a working day of the walking week (Monday to Friday)
// Codes follow the French day names used on the paper planning: LUndi, MArdi, MErcredi, JEudi, VEndredi
type Weekday string

const (
	Monday    Weekday = "LU"
	Tuesday   Weekday = "MA"
	Wednesday Weekday = "ME"
	Thursday  Weekday = "JE"
	Friday    Weekday = "VE"
)

// Weekdays lists the working days in calendar order
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// Valid returns true if the weekday code is one of LU, MA, ME, JE, VE
func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	}
	return false
}

// Offset returns the number of days after Monday (LU=0 .. VE=4)
func (d Weekday) Offset() int {
	for i, day := range Weekdays {
		if day == d {
			return i
		}
	}
	return -1
}

// Block is one of the three daily walking blocks
type Block string

const (
	Block1 Block = "B1"
	Block2 Block = "B2"
	Block3 Block = "B3"
)

// Blocks lists the daily blocks in chronological order
var Blocks = []Block{Block1, Block2, Block3}

// Valid returns true if the block code is one of B1, B2, B3
func (b Block) Valid() bool {
	switch b {
	case Block1, Block2, Block3:
		return true
	}
	return false
}

// Index returns the position of the block within the day (B1=0, B2=1, B3=2)
func (b Block) Index() int {
	for i, block := range Blocks {
		if block == b {
			return i
		}
	}
	return -1
}

// Next returns the following block of the same day, or false for the last block
func (b Block) Next() (Block, bool) {
	idx := b.Index()
	if idx < 0 || idx >= len(Blocks)-1 {
		return "", false
	}
	return Blocks[idx+1], true
}

// Prev returns the preceding block of the same day, or false for the first block
func (b Block) Prev() (Block, bool) {
	idx := b.Index()
	if idx <= 0 {
		return "", false
	}
	return Blocks[idx-1], true
}

// SlotID is the canonical identifier of a recurring weekly slot, e.g. "LU-B1"
type SlotID string

var slotIDPattern = regexp.MustCompile(`^(LU|MA|ME|JE|VE)-(B[1-3])$`)

// ErrInvalidSlotID is returned when a slot id does not match the DAY-BLOCK pattern
var ErrInvalidSlotID = errors.New("domain: invalid slot id")

// NewSlotID builds the canonical slot id for a (day, block) pair
func NewSlotID(day Weekday, block Block) SlotID {
	return SlotID(fmt.Sprintf("%s-%s", day, block))
}

// ParseSlotID validates a raw slot id against the strict DAY-BLOCK pattern
// Invalid ids are rejected before any rule evaluation
func ParseSlotID(raw string) (SlotID, error) {
	if !slotIDPattern.MatchString(raw) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlotID, raw)
	}
	return SlotID(raw), nil
}

// Valid returns true if the id matches the DAY-BLOCK pattern
func (id SlotID) Valid() bool {
	return slotIDPattern.MatchString(string(id))
}

// Day returns the weekday part of the slot id
func (id SlotID) Day() Weekday {
	m := slotIDPattern.FindStringSubmatch(string(id))
	if m == nil {
		return ""
	}
	return Weekday(m[1])
}

// Block returns the block part of the slot id
func (id SlotID) Block() Block {
	m := slotIDPattern.FindStringSubmatch(string(id))
	if m == nil {
		return ""
	}
	return Block(m[2])
}

// String returns the canonical string form of the slot id
func (id SlotID) String() string {
	return string(id)
}

// AllSlotIDs enumerates the 15 weekly slot ids in day-then-block order
// This enumeration order is the stable tie-break of the auto-assignment scorer
func AllSlotIDs() []SlotID {
	ids := make([]SlotID, 0, len(Weekdays)*len(Blocks))
	for _, day := range Weekdays {
		for _, block := range Blocks {
			ids = append(ids, NewSlotID(day, block))
		}
	}
	return ids
}

// SlotTemplate is one of the 15 recurring weekly slots
// Created once at setup and rarely mutated; per-week deviations live in WeekOverride
type SlotTemplate struct {
	ID     int64
	SlotID SlotID
	Day    Weekday
	Block  Block

	// Default duration breakdown of the block
	PickupMinutes int
	WalkMinutes   int
	ReturnMinutes int

	// WalkStartTime is when the walk itself starts (after pickup)
	// It is the billing time anchor, not the pickup time
	WalkStartTime types.TimeString

	DefaultWalkType WalkType
	DefaultSector   string // empty = undefined
	DefaultCapacity int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalMinutes returns the full block duration including pickup and return legs
func (t *SlotTemplate) TotalMinutes() int {
	return t.PickupMinutes + t.WalkMinutes + t.ReturnMinutes
}
