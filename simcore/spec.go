// Package simcore wires the leaf packages (simtime, simrng, event,
// resource, cooldown, aura, proc, stats, actor, damage, rotation) into
// the aggregate SimState, the SpecHandler polymorphism contract, and the
// single-iteration Simulation driver. Grounded on
// original_source/crates/engine/src/sim/{simulation,state}.rs and
// crates/engine/src/handler/traits.rs, following the teacher's
// Environment/Simulation split in sim/core/sim.go.
package simcore

import (
	"github.com/legacy3/wowlab-sub002/damage"
	"github.com/legacy3/wowlab-sub002/resource"
	"github.com/legacy3/wowlab-sub002/simrng"
	"github.com/legacy3/wowlab-sub002/simtime"
)

// SpellDef is a spell's static definition as supplied by the external
// sim configuration (spec.md §6): identity, timing, cost, and the
// coefficients the damage pipeline needs. Specs look these up by id to
// drive cast legality and damage without hand-duplicating constants in
// every handler method.
type SpellDef struct {
	ID   int
	Name string

	Cooldown     simtime.Time
	HastedCD     bool
	MaxCharges   uint8 // 0 or 1 means a plain (non-charged) cooldown
	RechargeTime simtime.Time

	GCD      simtime.Time
	CastTime simtime.Time
	IsChannel bool

	Cost         float32
	ResourceType resource.Type

	// BaseMin/BaseMax are the direct-hit damage roll range (spec.md §6's
	// damage formula); APCoef/SPCoef scale attack/spell power on top.
	// Handlers roll Base once per cast via RollDamage rather than this
	// project modeling a distribution type.
	BaseMin float32
	BaseMax float32
	APCoef  float32
	SPCoef  float32
	School  damage.School
}

// IsCharged reports whether this spell uses the charge-pool cooldown
// model instead of a plain single-use cooldown.
func (s *SpellDef) IsCharged() bool { return s.MaxCharges > 1 }

// RollDamage rolls this spell's base damage uniformly in
// [BaseMin, BaseMax) and returns the resulting Coefficients, ready to
// pass to BaseHandler.CalculateDamage.
func (s *SpellDef) RollDamage(rng *simrng.Rng) damage.Coefficients {
	return damage.Coefficients{
		Base:   rng.Range(s.BaseMin, s.BaseMax),
		APCoef: s.APCoef,
		SPCoef: s.SPCoef,
	}
}

// AuraDef is an aura's static definition, mirroring
// original_source/crates/engine/src/spec/aura_def.rs, trimmed to the
// fields this project's aura package models (effects live in the spec
// handler, not a generic effect-list interpreter — see DESIGN.md).
type AuraDef struct {
	ID           int
	Name         string
	Duration     simtime.Time
	MaxStacks    uint8
	IsDebuff     bool
	CanPandemic  bool
	Refreshable  bool
	IsPeriodic   bool
	TickInterval simtime.Time
}

// Registry is the immutable, per-run lookup table of spell/aura
// definitions built from the external sim configuration once before any
// iteration runs (spec.md §6: "populated before simulation begins; no
// I/O occurs inside the hot loop").
type Registry struct {
	spells map[int]*SpellDef
	auras  map[int]*AuraDef

	spellByName map[string]int
	auraByName  map[string]int
}

// NewRegistry builds a Registry from spell and aura definitions.
func NewRegistry(spells []SpellDef, auras []AuraDef) *Registry {
	r := &Registry{
		spells:      make(map[int]*SpellDef, len(spells)),
		auras:       make(map[int]*AuraDef, len(auras)),
		spellByName: make(map[string]int, len(spells)),
		auraByName:  make(map[string]int, len(auras)),
	}
	for i := range spells {
		s := spells[i]
		r.spells[s.ID] = &s
		r.spellByName[s.Name] = s.ID
	}
	for i := range auras {
		a := auras[i]
		r.auras[a.ID] = &a
		r.auraByName[a.Name] = a.ID
	}
	return r
}

// Spell looks up a spell definition by id.
func (r *Registry) Spell(id int) (*SpellDef, bool) {
	s, ok := r.spells[id]
	return s, ok
}

// SpellByName resolves a spell name to its definition.
func (r *Registry) SpellByName(name string) (*SpellDef, bool) {
	id, ok := r.spellByName[name]
	if !ok {
		return nil, false
	}
	return r.Spell(id)
}

// Aura looks up an aura definition by id.
func (r *Registry) Aura(id int) (*AuraDef, bool) {
	a, ok := r.auras[id]
	return a, ok
}

// AuraByName resolves an aura name to its definition.
func (r *Registry) AuraByName(name string) (*AuraDef, bool) {
	id, ok := r.auraByName[name]
	if !ok {
		return nil, false
	}
	return r.Aura(id)
}
