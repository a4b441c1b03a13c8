// Package policy provides the data-driven cost and effect tables for the
// simulation. Every action cost and magnitude range is tunable: built-in
// defaults can be overridden by JSON files and merged per kind.
package policy

import (
	"encoding/json"
	"fmt"
	"os"
)

// Kind names used as table keys
const (
	KindCar     = "car"
	KindPlane   = "plane"
	KindBoat    = "boat"
	KindBicycle = "bicycle"
	KindFlying  = "flying"
	KindTech    = "tech"
	KindHybrid  = "hybrid"
)

// IntRange is a closed integer interval, both bounds inclusive
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Range is a closed float interval
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FlightTuning holds altitude ranges for airborne vehicles
type FlightTuning struct {
	InitialAltitude IntRange `json:"initial_altitude"` // Climb on takeoff
	CruiseAltitude  IntRange `json:"cruise_altitude"`  // Resampled while flying
	ShiftAltitude   IntRange `json:"shift_altitude"`   // Explicit altitude change
}

// SailTuning holds the reduced fuel costs while the sail is raised
type SailTuning struct {
	StartCost    IntRange `json:"start_cost"`
	ContinueCost IntRange `json:"continue_cost"`
}

// VehicleTuning defines the cost/effect policy for one vehicle kind.
// Costs are drawn from their ranges on every action; fixed costs use
// Min == Max.
type VehicleTuning struct {
	StartCost        IntRange `json:"start_cost"`        // Fuel to start moving
	ContinueCost     IntRange `json:"continue_cost"`     // Fuel to keep moving
	StartDistance    Range    `json:"start_distance"`    // Distance covered on start
	ContinueDistance Range    `json:"continue_distance"` // Distance covered while moving
	Speed            IntRange `json:"speed"`             // Speed draw, capped by the vehicle's max speed

	Flight *FlightTuning `json:"flight,omitempty"` // Plane only
	Sail   *SailTuning   `json:"sail,omitempty"`   // Boat only
}

// FlightPowerTuning defines the two-phase flying power
type FlightPowerTuning struct {
	TakeFlightCost float64  `json:"take_flight_cost"`
	ManeuverCost   float64  `json:"maneuver_cost"`
	ManeuverDamage IntRange `json:"maneuver_damage"`
}

// TechPowerTuning defines gadget powers and the gadget sets a tech level unlocks
type TechPowerTuning struct {
	GadgetCost      float64  `json:"gadget_cost"`
	GadgetDamage    IntRange `json:"gadget_damage"` // Scaled by tech level
	UpgradeCost     float64  `json:"upgrade_cost"`
	BasicGadgets    []string `json:"basic_gadgets"`
	AdvancedGadgets []string `json:"advanced_gadgets"` // Unlocked one per tech level above 1
}

// ComboPowerTuning defines the hybrid combo move
type ComboPowerTuning struct {
	Cost              float64  `json:"cost"`
	BaseDamage        IntRange `json:"base_damage"`
	TechBonusPerLevel int      `json:"tech_bonus_per_level"`
	FlightBonus       int      `json:"flight_bonus"` // Added while airborne
	Moves             []string `json:"moves"`
}

// HeroTuning defines the cost/effect policy for one hero kind.
// Pointer sections are only present for the powers the kind has; a hybrid
// hero carries all three.
type HeroTuning struct {
	Flight *FlightPowerTuning `json:"flight,omitempty"`
	Tech   *TechPowerTuning   `json:"tech,omitempty"`
	Combo  *ComboPowerTuning  `json:"combo,omitempty"`

	RestAmount float64 `json:"rest_amount"` // Energy restored by one rest
}

// Table holds the full tuning table, keyed by kind name
type Table struct {
	Vehicles map[string]VehicleTuning `json:"vehicles"`
	Heroes   map[string]HeroTuning    `json:"heroes"`
}

// Vehicle returns the tuning for a vehicle kind, falling back to the
// built-in default when the table has no entry.
func (t *Table) Vehicle(kind string) VehicleTuning {
	if tuning, ok := t.Vehicles[kind]; ok {
		return tuning
	}
	return Default().Vehicles[kind]
}

// Hero returns the tuning for a hero kind, falling back to the built-in
// default when the table has no entry.
func (t *Table) Hero(kind string) HeroTuning {
	if tuning, ok := t.Heroes[kind]; ok {
		return tuning
	}
	return Default().Heroes[kind]
}

// Merge overwrites entries with those from another table.
// Kinds absent from other keep their current tuning.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}
	for kind, tuning := range other.Vehicles {
		t.Vehicles[kind] = tuning
	}
	for kind, tuning := range other.Heroes {
		t.Heroes[kind] = tuning
	}
}

// Load reads a tuning table from a JSON file
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	table := &Table{
		Vehicles: make(map[string]VehicleTuning),
		Heroes:   make(map[string]HeroTuning),
	}
	if err := json.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}

	return table, nil
}

// Default returns the built-in tuning table.
// These values can be overridden by data files via Load and Merge.
func Default() *Table {
	return &Table{
		Vehicles: map[string]VehicleTuning{
			KindCar: {
				StartCost:        IntRange{Min: 2, Max: 2},
				ContinueCost:     IntRange{Min: 1, Max: 1},
				StartDistance:    Range{Min: 8, Max: 24},
				ContinueDistance: Range{Min: 8, Max: 24},
				Speed:            IntRange{Min: 48, Max: 129},
			},
			KindPlane: {
				StartCost:        IntRange{Min: 15, Max: 15},
				ContinueCost:     IntRange{Min: 8, Max: 8},
				StartDistance:    Range{Min: 32, Max: 80},
				ContinueDistance: Range{Min: 80, Max: 241},
				Speed:            IntRange{Min: 322, Max: 805},
				Flight: &FlightTuning{
					InitialAltitude: IntRange{Min: 3048, Max: 7620},
					CruiseAltitude:  IntRange{Min: 7620, Max: 12192},
					ShiftAltitude:   IntRange{Min: 4572, Max: 12192},
				},
			},
			KindBoat: {
				StartCost:        IntRange{Min: 5, Max: 5},
				ContinueCost:     IntRange{Min: 3, Max: 3},
				StartDistance:    Range{Min: 6, Max: 22},
				ContinueDistance: Range{Min: 15, Max: 46},
				Speed:            IntRange{Min: 16, Max: 56},
				Sail: &SailTuning{
					StartCost:    IntRange{Min: 2, Max: 2},
					ContinueCost: IntRange{Min: 1, Max: 1},
				},
			},
			KindBicycle: {
				StartCost:        IntRange{Min: 5, Max: 12},
				ContinueCost:     IntRange{Min: 3, Max: 8},
				StartDistance:    Range{Min: 0.8, Max: 5},
				ContinueDistance: Range{Min: 1.6, Max: 8},
				Speed:            IntRange{Min: 13, Max: 40},
			},
		},
		Heroes: map[string]HeroTuning{
			KindFlying: {
				Flight: &FlightPowerTuning{
					TakeFlightCost: 10,
					ManeuverCost:   15,
					ManeuverDamage: IntRange{Min: 20, Max: 35},
				},
				RestAmount: 20,
			},
			KindTech: {
				Tech: &TechPowerTuning{
					GadgetCost:      12,
					GadgetDamage:    IntRange{Min: 15, Max: 25},
					UpgradeCost:     25,
					BasicGadgets:    []string{"Scanner", "Communicator", "Grappling Hook"},
					AdvancedGadgets: []string{"Energy Shield", "Holographic Projector", "Nano Repair Kit"},
				},
				RestAmount: 20,
			},
			KindHybrid: {
				Flight: &FlightPowerTuning{
					TakeFlightCost: 10,
					ManeuverCost:   15,
					ManeuverDamage: IntRange{Min: 20, Max: 35},
				},
				Tech: &TechPowerTuning{
					GadgetCost:      12,
					GadgetDamage:    IntRange{Min: 15, Max: 25},
					UpgradeCost:     25,
					BasicGadgets:    []string{"Scanner", "Communicator", "Grappling Hook"},
					AdvancedGadgets: []string{"Energy Shield", "Holographic Projector", "Nano Repair Kit"},
				},
				Combo: &ComboPowerTuning{
					Cost:              20,
					BaseDamage:        IntRange{Min: 25, Max: 40},
					TechBonusPerLevel: 5,
					FlightBonus:       10,
					Moves:             []string{"Sky Strike", "Aerial Hack", "Flying Fortress"},
				},
				RestAmount: 20,
			},
		},
	}
}
