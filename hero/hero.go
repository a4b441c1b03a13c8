// Package hero provides the combatant family of the simulation: flying
// heroes, tech heroes, and hybrids combining both capability sets. Heroes
// are plain state with safe mutators; the randomized power policy lives in
// the Resolver.
package hero

import (
	"fmt"

	"chosenoffset.com/dispatch/policy"
	"chosenoffset.com/dispatch/resource"
	"chosenoffset.com/dispatch/sim"
)

// Kind identifies the hero variant. The set is closed; the Resolver
// dispatches on it exhaustively.
type Kind string

const (
	KindFlying Kind = "flying"
	KindTech   Kind = "tech"
	KindHybrid Kind = "hybrid"
)

// Default configuration per kind
const (
	DefaultHealth        = 100
	DefaultEnergy        = 100
	DefaultFlightSpeed   = 100   // mph
	DefaultAltitudeLimit = 10000 // feet
	DefaultTechLevel     = 1
	DefaultGadgetLimit   = 5
)

// Config holds the named, optional construction parameters for a hero.
// Zero values fall back to the kind's defaults; fields irrelevant to the
// kind are ignored.
type Config struct {
	Health        float64
	Energy        float64
	FlightSpeed   int
	AltitudeLimit int
	TechLevel     int
	GadgetLimit   int
}

// FlightCapability is the flying half of a hero's powers
type FlightCapability struct {
	Speed         int // mph
	AltitudeLimit int // feet
	Airborne      bool
}

// TechCapability is the gadget half of a hero's powers.
// The gadget list is derived from the tech level and never exposed
// directly; Gadgets returns a copy.
type TechCapability struct {
	Level       int
	GadgetLimit int
	gadgets     []string
}

// Gadgets returns a copy of the available gadget list
func (tc *TechCapability) Gadgets() []string {
	out := make([]string, len(tc.gadgets))
	copy(out, tc.gadgets)
	return out
}

// HasGadgets returns true if at least one gadget is available
func (tc *TechCapability) HasGadgets() bool {
	return len(tc.gadgets) > 0
}

// rebuild derives the gadget list from the tech level: the basic set plus
// one advanced gadget per level above 1, capped at the gadget limit.
func (tc *TechCapability) rebuild(tuning *policy.TechPowerTuning) {
	gadgets := make([]string, 0, tc.GadgetLimit)
	gadgets = append(gadgets, tuning.BasicGadgets...)
	if tc.Level > 1 {
		unlocked := tc.Level - 1
		if unlocked > len(tuning.AdvancedGadgets) {
			unlocked = len(tuning.AdvancedGadgets)
		}
		gadgets = append(gadgets, tuning.AdvancedGadgets[:unlocked]...)
	}
	if len(gadgets) > tc.GadgetLimit {
		gadgets = gadgets[:tc.GadgetLimit]
	}
	tc.gadgets = gadgets
}

// Hero is one combatant of any kind. A hybrid carries both capabilities;
// the others carry exactly one.
type Hero struct {
	Name     string // Hero name
	Identity string // Real name
	Kind     Kind

	Health *resource.Pool // 0..100; zero means defeated
	Energy *resource.Pool // 0..100; powers consume from here

	Engaged  bool // Currently flying/fighting
	Missions int

	Flight *FlightCapability // Flying and hybrid kinds
	Tech   *TechCapability   // Tech and hybrid kinds

	comboMoves []string // Hybrid only
}

func newHero(kind Kind, name, identity string, cfg Config) (*Hero, error) {
	if name == "" || identity == "" {
		return nil, fmt.Errorf("hero of kind %q: %w", kind, sim.ErrEmptyName)
	}
	if cfg.Health < 0 || cfg.Energy < 0 {
		return nil, fmt.Errorf("hero %q: health/energy: %w", name, sim.ErrNegativeAmount)
	}
	if cfg.Health == 0 {
		cfg.Health = DefaultHealth
	}
	if cfg.Energy == 0 {
		cfg.Energy = DefaultEnergy
	}

	health, err := resource.NewPool(DefaultHealth)
	if err != nil {
		return nil, err
	}
	energy, err := resource.NewPool(DefaultEnergy)
	if err != nil {
		return nil, err
	}
	// Starting values below capacity are modeled as a partial pool
	health.Drain(DefaultHealth - min(cfg.Health, DefaultHealth))
	energy.Drain(DefaultEnergy - min(cfg.Energy, DefaultEnergy))

	return &Hero{
		Name:     name,
		Identity: identity,
		Kind:     kind,
		Health:   health,
		Energy:   energy,
	}, nil
}

// NewFlying creates a flying hero, on the ground and idle
func NewFlying(name, identity string, cfg Config) (*Hero, error) {
	h, err := newHero(KindFlying, name, identity, cfg)
	if err != nil {
		return nil, err
	}
	h.Flight = newFlightCapability(cfg)
	return h, nil
}

// NewTech creates a tech hero with gadgets derived from its tech level.
// The gadget sets come from the built-in tuning table; UpgradeTech
// rebuilds the list through the resolver's table.
func NewTech(name, identity string, cfg Config) (*Hero, error) {
	h, err := newHero(KindTech, name, identity, cfg)
	if err != nil {
		return nil, err
	}
	h.Tech = newTechCapability(cfg, policy.KindTech)
	return h, nil
}

// NewHybrid creates a hero with both flight and tech capabilities plus the
// combo move set.
func NewHybrid(name, identity string, cfg Config) (*Hero, error) {
	h, err := newHero(KindHybrid, name, identity, cfg)
	if err != nil {
		return nil, err
	}
	h.Flight = newFlightCapability(cfg)
	h.Tech = newTechCapability(cfg, policy.KindHybrid)
	if combo := policy.Default().Hero(policy.KindHybrid).Combo; combo != nil {
		h.comboMoves = append([]string(nil), combo.Moves...)
	}
	return h, nil
}

func newFlightCapability(cfg Config) *FlightCapability {
	speed := cfg.FlightSpeed
	if speed == 0 {
		speed = DefaultFlightSpeed
	}
	limit := cfg.AltitudeLimit
	if limit == 0 {
		limit = DefaultAltitudeLimit
	}
	return &FlightCapability{Speed: speed, AltitudeLimit: limit}
}

func newTechCapability(cfg Config, kind string) *TechCapability {
	level := cfg.TechLevel
	if level == 0 {
		level = DefaultTechLevel
	}
	limit := cfg.GadgetLimit
	if limit == 0 {
		limit = DefaultGadgetLimit
	}
	tc := &TechCapability{Level: level, GadgetLimit: limit}
	if tuning := policy.Default().Hero(kind).Tech; tuning != nil {
		tc.rebuild(tuning)
	}
	return tc
}

// ComboMoves returns a copy of a hybrid's combo move names
func (h *Hero) ComboMoves() []string {
	out := make([]string, len(h.comboMoves))
	copy(out, h.comboMoves)
	return out
}

// Alive returns true while the hero has health remaining. A hero at zero
// health is defeated and rejects actions until healed above zero.
func (h *Hero) Alive() bool {
	return !h.Health.IsEmpty()
}

// TakeDamage reduces health, clamping at zero. Reaching zero defeats the
// hero: it disengages, lands, and stays out of action until healed.
// Negative amounts are rejected.
func (h *Hero) TakeDamage(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("damage: %w", sim.ErrNegativeAmount)
	}
	h.Health.Drain(amount)
	if !h.Alive() {
		h.Engaged = false
		if h.Flight != nil {
			h.Flight.Airborne = false
		}
	}
	return nil
}

// Heal restores health, clamping at capacity, and returns the points
// actually restored. Healing a defeated hero above zero makes it eligible
// to act again. Negative amounts are rejected.
func (h *Hero) Heal(amount float64) (float64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("heal: %w", sim.ErrNegativeAmount)
	}
	before := h.Health.Current()
	h.Health.Restore(amount)
	return h.Health.Current() - before, nil
}

// CompleteMission marks a mission completed and reports whether it
// counted. Defeated heroes do not accrue missions.
func (h *Hero) CompleteMission() bool {
	if !h.Alive() {
		return false
	}
	h.Missions++
	return true
}

// Status returns a pure snapshot of the hero's state
func (h *Hero) Status() sim.Snapshot {
	snap := sim.Snapshot{
		Name:            h.Name,
		Kind:            string(h.Kind),
		Active:          h.Engaged && h.Alive(),
		ResourcePercent: h.Energy.Percent(),
		Health:          h.Health.Current(),
		Energy:          h.Energy.Current(),
		Missions:        h.Missions,
	}
	if h.Flight != nil && h.Flight.Airborne {
		snap.Magnitude = float64(h.Flight.Speed)
	}
	return snap
}
