// Package vehicle provides the vehicle family of the simulation: cars,
// planes, boats, and bicycles sharing one movement contract with
// kind-specific behavior. Vehicles are plain state; the randomized movement
// policy lives in the Resolver.
package vehicle

import (
	"fmt"

	"chosenoffset.com/dispatch/resource"
	"chosenoffset.com/dispatch/sim"
)

// Kind identifies the vehicle variant. The set is closed; the Resolver
// dispatches on it exhaustively.
type Kind string

const (
	KindCar     Kind = "car"
	KindPlane   Kind = "plane"
	KindBoat    Kind = "boat"
	KindBicycle Kind = "bicycle"
)

// Intensity is the pedaling intensity of a bicycle rider
type Intensity string

const (
	Leisurely Intensity = "leisurely"
	Moderate  Intensity = "moderate"
	Intense   Intensity = "intense"
	Racing    Intensity = "racing"
)

// Intensities lists all pedaling intensities, for randomized changes
var Intensities = []string{
	string(Leisurely),
	string(Moderate),
	string(Intense),
	string(Racing),
}

// Default configuration per kind
const (
	DefaultCarSpeed     = 193
	DefaultCarCapacity  = 15
	DefaultMaxGear      = 6
	DefaultPlaneSpeed   = 805
	DefaultPlaneFuel    = 1000
	DefaultMaxAltitude  = 12192
	DefaultBoatSpeed    = 56
	DefaultBoatFuel     = 50
	DefaultBicycleSpeed = 40
	DefaultRiderEnergy  = 100
)

// Config holds the named, optional construction parameters for a vehicle.
// Zero values fall back to the kind's defaults.
type Config struct {
	MaxSpeed int     // km/h
	Capacity float64 // Fuel units, or rider energy for bicycles
}

// Vehicle is one vehicle of any kind. Common fields are always set;
// variant fields are only meaningful for the matching kind.
type Vehicle struct {
	Name     string
	Kind     Kind
	Fuel     *resource.Pool
	MaxSpeed int

	Moving   bool
	Speed    int     // Current speed; zero whenever stopped
	Distance float64 // Cumulative distance traveled, km

	// Car
	Gear    int
	MaxGear int

	// Plane
	Altitude    int // Meters; zero on the ground
	MaxAltitude int

	// Boat
	SailRaised bool
	AnchorDown bool // Blocks all movement until explicitly raised

	// Bicycle
	Intensity Intensity
}

func newVehicle(kind Kind, name string, maxSpeed int, capacity float64) (*Vehicle, error) {
	if name == "" {
		return nil, fmt.Errorf("vehicle of kind %q: %w", kind, sim.ErrEmptyName)
	}
	fuel, err := resource.NewPool(capacity)
	if err != nil {
		return nil, fmt.Errorf("vehicle %q: %w", name, err)
	}
	return &Vehicle{
		Name:     name,
		Kind:     kind,
		Fuel:     fuel,
		MaxSpeed: maxSpeed,
	}, nil
}

// NewCar creates an idle car with a full tank
func NewCar(name string, cfg Config) (*Vehicle, error) {
	if cfg.MaxSpeed == 0 {
		cfg.MaxSpeed = DefaultCarSpeed
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCarCapacity
	}
	v, err := newVehicle(KindCar, name, cfg.MaxSpeed, cfg.Capacity)
	if err != nil {
		return nil, err
	}
	v.Gear = 1
	v.MaxGear = DefaultMaxGear
	return v, nil
}

// NewPlane creates an idle plane with full fuel
func NewPlane(name string, cfg Config) (*Vehicle, error) {
	if cfg.MaxSpeed == 0 {
		cfg.MaxSpeed = DefaultPlaneSpeed
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultPlaneFuel
	}
	v, err := newVehicle(KindPlane, name, cfg.MaxSpeed, cfg.Capacity)
	if err != nil {
		return nil, err
	}
	v.MaxAltitude = DefaultMaxAltitude
	return v, nil
}

// NewBoat creates an idle boat with full fuel, sail lowered, anchor up
func NewBoat(name string, cfg Config) (*Vehicle, error) {
	if cfg.MaxSpeed == 0 {
		cfg.MaxSpeed = DefaultBoatSpeed
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultBoatFuel
	}
	return newVehicle(KindBoat, name, cfg.MaxSpeed, cfg.Capacity)
}

// NewBicycle creates an idle bicycle with a rested rider.
// The fuel pool models rider energy.
func NewBicycle(name string, cfg Config) (*Vehicle, error) {
	if cfg.MaxSpeed == 0 {
		cfg.MaxSpeed = DefaultBicycleSpeed
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultRiderEnergy
	}
	v, err := newVehicle(KindBicycle, name, cfg.MaxSpeed, cfg.Capacity)
	if err != nil {
		return nil, err
	}
	v.Intensity = Leisurely
	return v, nil
}

// Refuel restores the vehicle's pool to full. For bicycles this is the
// rider taking a rest.
func (v *Vehicle) Refuel() {
	v.Fuel.Refill()
}

// ShiftGear shifts a moving car up one gear.
// Calls on a stopped car, a maxed-out gear, or a non-car are recognized
// no-ops, not errors.
func (v *Vehicle) ShiftGear() sim.Outcome {
	if v.Kind != KindCar || !v.Moving || v.Gear >= v.MaxGear {
		return sim.Outcome{Code: sim.CodeInfo, Action: "shift_gear"}
	}
	v.Gear++
	return sim.Outcome{Code: sim.CodeSuccess, Action: "shift_gear", Detail: fmt.Sprintf("gear %d", v.Gear)}
}

// RaiseSail raises a boat's sail, enabling the reduced wind-power costs
func (v *Vehicle) RaiseSail() sim.Outcome {
	if v.Kind != KindBoat || v.SailRaised {
		return sim.Outcome{Code: sim.CodeInfo, Action: "raise_sail"}
	}
	v.SailRaised = true
	return sim.Outcome{Code: sim.CodeSuccess, Action: "raise_sail"}
}

// LowerSail lowers a boat's sail
func (v *Vehicle) LowerSail() sim.Outcome {
	if v.Kind != KindBoat || !v.SailRaised {
		return sim.Outcome{Code: sim.CodeInfo, Action: "lower_sail"}
	}
	v.SailRaised = false
	return sim.Outcome{Code: sim.CodeSuccess, Action: "lower_sail"}
}

// RaiseAnchor raises a boat's anchor, making it mobile again after a stop
func (v *Vehicle) RaiseAnchor() sim.Outcome {
	if v.Kind != KindBoat || !v.AnchorDown {
		return sim.Outcome{Code: sim.CodeInfo, Action: "raise_anchor"}
	}
	v.AnchorDown = false
	return sim.Outcome{Code: sim.CodeSuccess, Action: "raise_anchor"}
}

// Status returns a pure snapshot of the vehicle's state
func (v *Vehicle) Status() sim.Snapshot {
	return sim.Snapshot{
		Name:            v.Name,
		Kind:            string(v.Kind),
		Active:          v.Moving,
		ResourcePercent: v.Fuel.Percent(),
		Output:          v.Distance,
		Magnitude:       float64(v.Speed),
	}
}
