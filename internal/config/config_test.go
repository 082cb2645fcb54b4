package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/pkg/types"
)

func TestToEngineConfigDefaults(t *testing.T) {
	t.Parallel()

	engine, err := EngineConfig{}.ToEngineConfig()
	require.NoError(t, err)

	require.Equal(t, 3, engine.TierWalks[domain.TierR3])
	require.Equal(t, 6, engine.MaxCapacity)
	require.Equal(t, 5, engine.WeeklyAssignmentCap)
	require.Equal(t, 18.0, engine.Tariffs[domain.WalkCollective].UnitPrice)
}

func TestToEngineConfigOverlay(t *testing.T) {
	t.Parallel()

	cfg := EngineConfig{
		TierWalks: map[string]int{"R3": 4},
		Tariffs: map[string]TariffTOML{
			"collective": {ServiceCategory: "walk_collective", UnitPrice: 20.0, DurationMinutes: 60, MaxCapacity: 6},
		},
		BlockWalkStart: map[string]string{"B1": "10:00"},
		MaxCapacity:    8,
		WeeklyCap:      6,
	}

	engine, err := cfg.ToEngineConfig()
	require.NoError(t, err)

	// переопределённые значения из TOML
	require.Equal(t, 4, engine.TierWalks[domain.TierR3])
	require.Equal(t, 20.0, engine.Tariffs[domain.WalkCollective].UnitPrice)
	require.Equal(t, types.TimeString("10:00"), engine.BlockWalkStart[domain.Block1])
	require.Equal(t, 8, engine.MaxCapacity)
	require.Equal(t, 6, engine.WeeklyAssignmentCap)

	// незатронутые дефолты остаются
	require.Equal(t, 1, engine.TierWalks[domain.TierR1])
	require.Equal(t, 25.0, engine.Tariffs[domain.WalkIndividual].UnitPrice)
}

func TestToEngineConfigRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  EngineConfig
	}{
		{"unknown tier", EngineConfig{TierWalks: map[string]int{"R9": 1}}},
		{"tier count above cap", EngineConfig{TierWalks: map[string]int{"R1": 6}}},
		{"unknown walk type", EngineConfig{Tariffs: map[string]TariffTOML{"swim": {}}}},
		{"unknown block", EngineConfig{BlockWalkStart: map[string]string{"B4": "10:00"}}},
		{"bad start time", EngineConfig{BlockWalkStart: map[string]string{"B1": "25:00"}}},
		{"inverted capacity bounds", EngineConfig{MinCapacity: 5, MaxCapacity: 2}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.cfg.ToEngineConfig()
			require.Error(t, err)
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	t.Parallel()

	dsn := DatabaseConfig{
		Host: "localhost", Port: 5432,
		User: "walks", Password: "secret",
		DBName: "schedule", SSLMode: "disable",
	}.DSN()

	require.Equal(t, "host=localhost port=5432 user=walks password=secret dbname=schedule sslmode=disable", dsn)
}
