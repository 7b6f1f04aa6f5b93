// Package resource implements numeric resource pools (focus, energy,
// mana, ...) with clamp, spend/gain, and optional regen — grounded on
// original_source/crates/engine/src/resource/pool.rs.
package resource

// Type identifies which resource a pool tracks.
type Type uint8

const (
	Focus Type = iota
	Energy
	Rage
	RunicPower
	Mana
	Fury
	Chi
	HolyPower
	Combo
	SoulShard
)

// Pool is a single clamped numeric resource. Invariant: 0 <= Current <= Max.
type Pool struct {
	Type          Type
	Current       float32
	Max           float32
	RegenPerSec   float32
	HasRegen      bool
}

// New constructs a full pool of the given type and max.
func New(t Type, max float32) Pool {
	return Pool{Type: t, Current: max, Max: max}
}

// NewEmpty constructs an empty pool of the given type and max.
func NewEmpty(t Type, max float32) Pool {
	return Pool{Type: t, Current: 0, Max: max}
}

// WithRegen enables per-second regen on the pool.
func (p Pool) WithRegen(perSec float32) Pool {
	p.HasRegen = true
	p.RegenPerSec = perSec
	return p
}

// SetMax updates the max, clamping Current down if it now exceeds it.
func (p *Pool) SetMax(max float32) {
	p.Max = max
	if p.Current > max {
		p.Current = max
	}
}

// CanAfford reports whether amount can be spent without going negative.
func (p *Pool) CanAfford(amount float32) bool {
	return p.Current >= amount
}

// Spend attempts to subtract amount. It returns false and leaves Current
// unchanged if Current < amount.
func (p *Pool) Spend(amount float32) bool {
	if p.Current < amount {
		return false
	}
	p.Current -= amount
	return true
}

// Gain adds amount, clamping at Max.
func (p *Pool) Gain(amount float32) {
	p.Current += amount
	if p.Current > p.Max {
		p.Current = p.Max
	}
}

// Set clamps value into [0, Max] and assigns it to Current.
func (p *Pool) Set(value float32) {
	if value < 0 {
		value = 0
	}
	if value > p.Max {
		value = p.Max
	}
	p.Current = value
}

// Percent returns Current/Max in [0,1], or 0 if Max is 0.
func (p *Pool) Percent() float32 {
	if p.Max <= 0 {
		return 0
	}
	return p.Current / p.Max
}

// Deficit returns Max - Current.
func (p *Pool) Deficit() float32 {
	return p.Max - p.Current
}

// Tick applies RegenPerSec scaled by elapsedSec and hasteMult, if regen
// is enabled. Used by the simulation driver's built-in ResourceTick
// dispatch (100ms cadence, scaled by haste).
func (p *Pool) Tick(elapsedSec float32, hasteMult float32) {
	if !p.HasRegen {
		return
	}
	p.Gain(p.RegenPerSec * elapsedSec * hasteMult)
}

// Unit bundles up to three resource pools a unit may track simultaneously
// (primary, secondary, mana), mirroring UnitResources in the original
// source.
type Unit struct {
	Primary   *Pool
	Secondary *Pool
	Mana      *Pool
}

// Get returns the pool of the given type, if tracked.
func (u *Unit) Get(t Type) (*Pool, bool) {
	for _, p := range []*Pool{u.Primary, u.Secondary, u.Mana} {
		if p != nil && p.Type == t {
			return p, true
		}
	}
	return nil, false
}
