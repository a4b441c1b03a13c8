package scenario

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/dispatch/hero"
	"chosenoffset.com/dispatch/registry"
	"chosenoffset.com/dispatch/vehicle"
)

const testScenario = `{
	"name": "harbor_patrol",
	"fleet": "Harbor Fleet",
	"team": "Harbor Watch",
	"vehicles": [
		{"kind": "car", "name": "Lightning", "max_speed": 290},
		{"kind": "boat", "name": "Sea Breeze"},
		{"kind": "bicycle", "name": "Green Rider", "capacity": 80}
	],
	"heroes": [
		{"kind": "flying", "name": "Skylark", "identity": "Dana Reeve", "flight_speed": 500},
		{"kind": "hybrid", "name": "Vector", "identity": "Sam Idris", "tech_level": 3}
	]
}`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testResolvers(seed int64) (*vehicle.Resolver, *hero.Resolver) {
	rng := rand.New(rand.NewSource(seed))
	return vehicle.NewResolver(nil, rng), hero.NewResolver(nil, rng)
}

func TestLoadScenario(t *testing.T) {
	file, err := Load(writeScenario(t, testScenario))
	require.NoError(t, err)

	assert.Equal(t, "harbor_patrol", file.Name)
	assert.Equal(t, "Harbor Fleet", file.Fleet)
	require.Len(t, file.Vehicles, 3)
	require.Len(t, file.Heroes, 2)
	assert.Equal(t, 290, file.Vehicles[0].MaxSpeed)
	assert.Equal(t, "Dana Reeve", file.Heroes[0].Identity)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := Load(writeScenario(t, "{broken"))
	assert.Error(t, err)
}

func TestBuildScenario(t *testing.T) {
	file, err := Load(writeScenario(t, testScenario))
	require.NoError(t, err)

	reg := registry.New()
	fleetRes, teamRes := testResolvers(1)
	fleet, team, err := Build(file, reg, fleetRes, teamRes)
	require.NoError(t, err)

	assert.Equal(t, "Harbor Fleet", fleet.Name())
	assert.Equal(t, "Harbor Watch", team.Name())
	require.Equal(t, 3, fleet.Size())
	require.Equal(t, 2, team.Size())

	// Specs are applied in order with overrides and defaults
	vehicles := fleet.Vehicles()
	assert.Equal(t, vehicle.KindCar, vehicles[0].Kind)
	assert.Equal(t, 290, vehicles[0].MaxSpeed)
	assert.Equal(t, vehicle.KindBoat, vehicles[1].Kind)
	assert.Equal(t, float64(vehicle.DefaultBoatFuel), vehicles[1].Fuel.Capacity())
	assert.Equal(t, 80.0, vehicles[2].Fuel.Capacity())

	members := team.Members()
	assert.Equal(t, hero.KindFlying, members[0].Kind)
	assert.Equal(t, 500, members[0].Flight.Speed)
	assert.Equal(t, 3, members[1].Tech.Level)

	// The registry counted every creation
	assert.Equal(t, 3, reg.Count(registry.CounterVehiclesCreated))
	assert.Equal(t, 2, reg.Count(registry.CounterHeroesCreated))
}

func TestBuildFallsBackToScenarioName(t *testing.T) {
	file := &File{
		Name:     "unnamed_groups",
		Vehicles: []VehicleSpec{{Kind: "car", Name: "Solo"}},
		Heroes:   []HeroSpec{{Kind: "tech", Name: "Cipher", Identity: "Ray Chen"}},
	}

	fleetRes, teamRes := testResolvers(2)
	fleet, team, err := Build(file, registry.New(), fleetRes, teamRes)
	require.NoError(t, err)
	assert.Equal(t, "unnamed_groups", fleet.Name())
	assert.Equal(t, "unnamed_groups", team.Name())
}

func TestBuildRejectsUnknownKinds(t *testing.T) {
	fleetRes, teamRes := testResolvers(3)

	file := &File{
		Name:     "bad_vehicle",
		Vehicles: []VehicleSpec{{Kind: "submarine", Name: "Nautilus"}},
	}
	_, _, err := Build(file, registry.New(), fleetRes, teamRes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "submarine")

	file = &File{
		Name:   "bad_hero",
		Heroes: []HeroSpec{{Kind: "psychic", Name: "Mystery", Identity: "Unknown"}},
	}
	_, _, err = Build(file, registry.New(), fleetRes, teamRes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "psychic")
}

func TestBuildPropagatesConstructorErrors(t *testing.T) {
	fleetRes, teamRes := testResolvers(4)

	file := &File{
		Name:     "nameless",
		Vehicles: []VehicleSpec{{Kind: "car", Name: ""}},
	}
	_, _, err := Build(file, registry.New(), fleetRes, teamRes)
	assert.Error(t, err)
}

func TestScanFindsOnlyJSONFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.JSON"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0755))

	paths, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		assert.Contains(t, []string{"one.json", "two.JSON"}, filepath.Base(p))
	}
}

func TestScanMissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
