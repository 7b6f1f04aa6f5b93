// Package aura implements per-target aura instances: expiry, stacks,
// pandemic refresh, periodic ticks, and snapshotted stats. Grounded on
// original_source/crates/engine/src/aura/{instance,tracker}.rs and the
// teacher's sim/core/aura.go registration-array idiom.
package aura

import "github.com/legacy3/wowlab-sub002/simtime"

// Flags describes an aura's behavior.
type Flags struct {
	IsDebuff    bool
	IsPeriodic  bool
	CanPandemic bool
	Snapshots   bool
	IsHidden    bool
	Refreshable bool
}

// Snapshot captures the stats relevant to damage calculation at
// application time, so periodic ticks use those values rather than
// current ones.
type Snapshot struct {
	AttackPower float32
	SpellPower  float32
	CritChance  float32
	Haste       float32
	Versatility float32
	Mastery     float32
}

// Instance is one applied aura on one target.
type Instance struct {
	AuraID         int
	Target         int
	ExpiresAt      simtime.Time
	BaseDuration   simtime.Time
	Stacks         uint8
	MaxStacks      uint8
	Snapshot       *Snapshot
	Flags          Flags
	NextTick       simtime.Time
	HasNextTick    bool
	TickInterval   simtime.Time
	RemainingTicks uint8
}

// New constructs a fresh, single-stack aura instance applied at now.
func New(auraID, target int, duration simtime.Time, now simtime.Time, flags Flags) Instance {
	return Instance{
		AuraID:       auraID,
		Target:       target,
		ExpiresAt:    now.Add(duration),
		BaseDuration: duration,
		Stacks:       1,
		MaxStacks:    1,
		Flags:        flags,
	}
}

// WithStacks sets the max stack count.
func (a Instance) WithStacks(max uint8) Instance {
	a.MaxStacks = max
	return a
}

// WithSnapshotStats attaches a stat snapshot.
func (a Instance) WithSnapshotStats(s Snapshot) Instance {
	a.Snapshot = &s
	return a
}

// WithPeriodic enables periodic ticking at the given interval, computing
// the initial remaining-ticks count from the base duration.
func (a Instance) WithPeriodic(interval simtime.Time, now simtime.Time) Instance {
	a.TickInterval = interval
	a.NextTick = now.Add(interval)
	a.HasNextTick = true
	if interval > 0 {
		a.RemainingTicks = uint8(uint64(a.BaseDuration) / uint64(interval))
	}
	return a
}

// IsActive reports whether the aura has not yet expired.
func (a *Instance) IsActive(now simtime.Time) bool {
	return now < a.ExpiresAt
}

// Remaining returns the time left before expiry, zero if already expired.
func (a *Instance) Remaining(now simtime.Time) simtime.Time {
	if now >= a.ExpiresAt {
		return simtime.Zero
	}
	return a.ExpiresAt.Sub(now)
}

// AddStack increments the stack count up to MaxStacks, returning false if
// already at max.
func (a *Instance) AddStack() bool {
	if a.Stacks < a.MaxStacks {
		a.Stacks++
		return true
	}
	return false
}

// RemoveStack decrements the stack count, floored at zero, returning the
// new count.
func (a *Instance) RemoveStack() uint8 {
	if a.Stacks > 0 {
		a.Stacks--
	}
	return a.Stacks
}

// Refresh applies the pandemic refresh rule (spec.md §3): up to 30% of
// the base duration carries over from the remaining time when
// CanPandemic is set; otherwise the duration is simply reset.
func (a *Instance) Refresh(now simtime.Time) {
	remaining := a.Remaining(now)

	if a.Flags.CanPandemic {
		maxPandemic := simtime.FromSeconds(a.BaseDuration.Seconds() * 0.30)
		carryover := remaining
		if maxPandemic < carryover {
			carryover = maxPandemic
		}
		a.ExpiresAt = now.Add(a.BaseDuration).Add(carryover)
	} else {
		a.ExpiresAt = now.Add(a.BaseDuration)
	}

	if a.HasNextTick && a.TickInterval > 0 {
		a.NextTick = now.Add(a.TickInterval)
		newDuration := a.ExpiresAt.Sub(now)
		a.RemainingTicks = uint8(uint64(newDuration) / uint64(a.TickInterval))
	}
}

// Tick advances the periodic tick timer by one interval, decrementing
// RemainingTicks, and reports whether more ticks remain.
func (a *Instance) Tick() bool {
	if a.RemainingTicks > 0 {
		a.RemainingTicks--
	}
	if a.HasNextTick {
		a.NextTick = a.NextTick.Add(a.TickInterval)
	}
	return a.RemainingTicks > 0
}
