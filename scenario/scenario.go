// Package scenario provides data-driven rosters for the simulation. A
// scenario file describes the fleet and team to build; the builder turns
// it into live entities through the core constructors, registering
// creation counts as it goes.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chosenoffset.com/dispatch/hero"
	"chosenoffset.com/dispatch/registry"
	"chosenoffset.com/dispatch/vehicle"
)

// VehicleSpec describes one vehicle to create.
// Zero-valued fields fall back to the kind's defaults.
type VehicleSpec struct {
	Kind     string  `json:"kind"` // car, plane, boat, bicycle
	Name     string  `json:"name"`
	MaxSpeed int     `json:"max_speed,omitempty"`
	Capacity float64 `json:"capacity,omitempty"`
}

// HeroSpec describes one hero to create.
// Zero-valued fields fall back to the kind's defaults.
type HeroSpec struct {
	Kind          string  `json:"kind"` // flying, tech, hybrid
	Name          string  `json:"name"`
	Identity      string  `json:"identity"`
	Health        float64 `json:"health,omitempty"`
	Energy        float64 `json:"energy,omitempty"`
	FlightSpeed   int     `json:"flight_speed,omitempty"`
	AltitudeLimit int     `json:"altitude_limit,omitempty"`
	TechLevel     int     `json:"tech_level,omitempty"`
	GadgetLimit   int     `json:"gadget_limit,omitempty"`
}

// File is one scenario definition
type File struct {
	Name     string        `json:"name"`
	Fleet    string        `json:"fleet,omitempty"` // Fleet display name
	Team     string        `json:"team,omitempty"`  // Team display name
	Vehicles []VehicleSpec `json:"vehicles"`
	Heroes   []HeroSpec    `json:"heroes"`
}

// Load reads a scenario from a JSON file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return &file, nil
}

// Scan lists the scenario JSON files in a directory
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// buildVehicle constructs one vehicle from its spec
func buildVehicle(spec VehicleSpec) (*vehicle.Vehicle, error) {
	cfg := vehicle.Config{MaxSpeed: spec.MaxSpeed, Capacity: spec.Capacity}
	switch vehicle.Kind(spec.Kind) {
	case vehicle.KindCar:
		return vehicle.NewCar(spec.Name, cfg)
	case vehicle.KindPlane:
		return vehicle.NewPlane(spec.Name, cfg)
	case vehicle.KindBoat:
		return vehicle.NewBoat(spec.Name, cfg)
	case vehicle.KindBicycle:
		return vehicle.NewBicycle(spec.Name, cfg)
	}
	return nil, fmt.Errorf("unknown vehicle kind %q", spec.Kind)
}

// buildHero constructs one hero from its spec
func buildHero(spec HeroSpec) (*hero.Hero, error) {
	cfg := hero.Config{
		Health:        spec.Health,
		Energy:        spec.Energy,
		FlightSpeed:   spec.FlightSpeed,
		AltitudeLimit: spec.AltitudeLimit,
		TechLevel:     spec.TechLevel,
		GadgetLimit:   spec.GadgetLimit,
	}
	switch hero.Kind(spec.Kind) {
	case hero.KindFlying:
		return hero.NewFlying(spec.Name, spec.Identity, cfg)
	case hero.KindTech:
		return hero.NewTech(spec.Name, spec.Identity, cfg)
	case hero.KindHybrid:
		return hero.NewHybrid(spec.Name, spec.Identity, cfg)
	}
	return nil, fmt.Errorf("unknown hero kind %q", spec.Kind)
}

// Build constructs the scenario's fleet and team, counting creations in
// the registry.
func Build(f *File, reg *registry.Registry, fleetRes *vehicle.Resolver, teamRes *hero.Resolver) (*vehicle.Fleet, *hero.Team, error) {
	fleetName := f.Fleet
	if fleetName == "" {
		fleetName = f.Name
	}
	teamName := f.Team
	if teamName == "" {
		teamName = f.Name
	}

	fleet := vehicle.NewFleet(fleetName, fleetRes)
	for _, spec := range f.Vehicles {
		v, err := buildVehicle(spec)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario %q: %w", f.Name, err)
		}
		if err := fleet.Add(v); err != nil {
			return nil, nil, fmt.Errorf("scenario %q: %w", f.Name, err)
		}
		reg.Increment(registry.CounterVehiclesCreated)
	}

	team := hero.NewTeam(teamName, teamRes)
	for _, spec := range f.Heroes {
		h, err := buildHero(spec)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario %q: %w", f.Name, err)
		}
		if err := team.Add(h); err != nil {
			return nil, nil, fmt.Errorf("scenario %q: %w", f.Name, err)
		}
		reg.Increment(registry.CounterHeroesCreated)
	}

	return fleet, team, nil
}
