package domain

import "github.com/m04kA/DWS-ScheduleService/pkg/types"

// WalkTariff maps a walk type to its billing line attributes and capacity ceiling
type WalkTariff struct {
	ServiceCategory string
	UnitPrice       float64
	DurationMinutes int
	MaxCapacity     int
}

// EngineConfig carries the tunable business tables of the scheduling engine
// These used to be hard-coded lookup maps; they are injected so capacity and
// pricing policy can differ per deployment
type EngineConfig struct {
	// TierWalks maps a routine tier to its expected weekly walk count
	TierWalks map[RoutineTier]int

	// Tariffs maps a walk type to price, duration and capacity ceiling
	Tariffs map[WalkType]WalkTariff

	// BlockWalkStart maps a block to its default walk start clock time
	BlockWalkStart map[Block]types.TimeString

	MinCapacity         int
	MaxCapacity         int
	WeeklyAssignmentCap int
}

// DefaultEngineConfig returns the stock business tables of the walking service
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TierWalks: map[RoutineTier]int{
			TierR1:          1,
			TierR2:          2,
			TierR3:          3,
			TierRoutinePlus: 4,
			TierOnDemand:    0,
		},
		Tariffs: map[WalkType]WalkTariff{
			WalkCollective: {ServiceCategory: "walk_collective", UnitPrice: 18.0, DurationMinutes: 60, MaxCapacity: 6},
			WalkIndividual: {ServiceCategory: "walk_individual", UnitPrice: 25.0, DurationMinutes: 45, MaxCapacity: 1},
			WalkRally:      {ServiceCategory: "walk_rally", UnitPrice: 35.0, DurationMinutes: 150, MaxCapacity: RallyCapacity},
			WalkTraining:   {ServiceCategory: "walk_training", UnitPrice: 40.0, DurationMinutes: 45, MaxCapacity: 1},
		},
		BlockWalkStart: map[Block]types.TimeString{
			Block1: "09:30",
			Block2: "12:00",
			Block3: "15:30",
		},
		MinCapacity:         MinSlotCapacity,
		MaxCapacity:         MaxSlotCapacity,
		WeeklyAssignmentCap: WeeklyAssignmentCap,
	}
}

// ExpectedWeeklyWalks returns the expected walk count of a tier (0 for on-demand)
func (c EngineConfig) ExpectedWeeklyWalks(tier RoutineTier) int {
	return c.TierWalks[tier]
}

// TariffFor returns the tariff of a walk type and whether it is known
func (c EngineConfig) TariffFor(walkType WalkType) (WalkTariff, bool) {
	t, ok := c.Tariffs[walkType]
	return t, ok
}
