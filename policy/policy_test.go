package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCoversAllKinds(t *testing.T) {
	table := Default()

	for _, kind := range []string{KindCar, KindPlane, KindBoat, KindBicycle} {
		tuning, ok := table.Vehicles[kind]
		require.True(t, ok, "missing vehicle tuning for %q", kind)
		assert.Greater(t, tuning.StartCost.Min, 0, "%s start cost", kind)
		assert.Greater(t, tuning.Speed.Max, 0, "%s speed", kind)
	}

	for _, kind := range []string{KindFlying, KindTech, KindHybrid} {
		tuning, ok := table.Heroes[kind]
		require.True(t, ok, "missing hero tuning for %q", kind)
		assert.Greater(t, tuning.RestAmount, 0.0, "%s rest amount", kind)
	}
}

func TestDefaultKindSpecificSections(t *testing.T) {
	table := Default()

	assert.Nil(t, table.Vehicles[KindCar].Flight)
	assert.NotNil(t, table.Vehicles[KindPlane].Flight)
	assert.NotNil(t, table.Vehicles[KindBoat].Sail)
	assert.Nil(t, table.Vehicles[KindBicycle].Sail)

	assert.NotNil(t, table.Heroes[KindFlying].Flight)
	assert.Nil(t, table.Heroes[KindFlying].Tech)
	assert.NotNil(t, table.Heroes[KindTech].Tech)
	assert.Nil(t, table.Heroes[KindTech].Combo)

	hybrid := table.Heroes[KindHybrid]
	assert.NotNil(t, hybrid.Flight)
	assert.NotNil(t, hybrid.Tech)
	assert.NotNil(t, hybrid.Combo)
	assert.Len(t, hybrid.Combo.Moves, 3)
}

func TestSailCostsCheaperThanEngine(t *testing.T) {
	boat := Default().Vehicles[KindBoat]
	require.NotNil(t, boat.Sail)

	assert.Less(t, boat.Sail.StartCost.Max, boat.StartCost.Min)
	assert.Less(t, boat.Sail.ContinueCost.Max, boat.ContinueCost.Min)
}

func TestLookupFallsBackToDefaults(t *testing.T) {
	// Empty table: every lookup resolves to the built-in tuning
	table := &Table{
		Vehicles: make(map[string]VehicleTuning),
		Heroes:   make(map[string]HeroTuning),
	}

	assert.Equal(t, Default().Vehicles[KindCar], table.Vehicle(KindCar))
	assert.Equal(t, Default().Heroes[KindTech].RestAmount, table.Hero(KindTech).RestAmount)
}

func TestLoadAndMerge(t *testing.T) {
	override := `{
		"vehicles": {
			"car": {
				"start_cost": {"min": 3, "max": 3},
				"continue_cost": {"min": 1, "max": 2},
				"start_distance": {"min": 10, "max": 30},
				"continue_distance": {"min": 10, "max": 30},
				"speed": {"min": 60, "max": 150}
			}
		},
		"heroes": {
			"flying": {
				"flight": {
					"take_flight_cost": 8,
					"maneuver_cost": 12,
					"maneuver_damage": {"min": 25, "max": 40}
				},
				"rest_amount": 25
			}
		}
	}`

	path := filepath.Join(t.TempDir(), "policies.json")
	require.NoError(t, os.WriteFile(path, []byte(override), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)

	table := Default()
	table.Merge(loaded)

	// Overridden kinds take the loaded tuning
	assert.Equal(t, 3, table.Vehicle(KindCar).StartCost.Min)
	assert.Equal(t, 150, table.Vehicle(KindCar).Speed.Max)
	assert.Equal(t, 25.0, table.Hero(KindFlying).RestAmount)
	assert.Equal(t, 8.0, table.Hero(KindFlying).Flight.TakeFlightCost)

	// Untouched kinds keep their defaults
	assert.Equal(t, Default().Vehicles[KindPlane], table.Vehicle(KindPlane))
	assert.Equal(t, 20.0, table.Hero(KindTech).RestAmount)
}

func TestMergeNilIsNoop(t *testing.T) {
	table := Default()
	table.Merge(nil)
	assert.Equal(t, Default().Vehicles[KindCar], table.Vehicle(KindCar))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
