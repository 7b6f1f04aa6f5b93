package aura

import (
	"golang.org/x/exp/constraints"

	"github.com/legacy3/wowlab-sub002/simtime"
)

// removeBySwappingToBack removes the element at idx from s by swapping it
// with the last element and truncating, an O(1) removal that disturbs
// only the last element's position. Generalized from the teacher's
// sim/core/aura.go helper of the same name and intent.
func removeBySwappingToBack[T any, U constraints.Integer](s []T, idx U) []T {
	n := len(s)
	i := int(idx)
	if i < 0 || i >= n {
		return s
	}
	s[i] = s[n-1]
	return s[:n-1]
}

// TargetAuras holds the auras currently applied to a single target.
// Occupancy is typically small (well under 16), so a linear scan is
// deliberately used for lookups rather than a map — this mirrors
// spec.md §4.4's stated rationale.
type TargetAuras struct {
	auras []Instance
}

// Get returns the aura instance for auraID, if present (regardless of
// expiry — callers should check IsActive).
func (t *TargetAuras) Get(auraID int) *Instance {
	for i := range t.auras {
		if t.auras[i].AuraID == auraID {
			return &t.auras[i]
		}
	}
	return nil
}

// Has reports whether auraID is active at now.
func (t *TargetAuras) Has(auraID int, now simtime.Time) bool {
	a := t.Get(auraID)
	return a != nil && a.IsActive(now)
}

// Stacks returns the active stack count for auraID, zero if inactive or
// absent.
func (t *TargetAuras) Stacks(auraID int, now simtime.Time) uint8 {
	a := t.Get(auraID)
	if a == nil || !a.IsActive(now) {
		return 0
	}
	return a.Stacks
}

// Apply applies a new aura instance, or refreshes+stacks an existing one
// per the stack rule in spec.md §3: refreshable auras refresh and gain a
// stack (capped at MaxStacks); non-refreshable auras ignore the
// reapplication entirely (spec.md §9 default).
func (t *TargetAuras) Apply(a Instance, now simtime.Time) {
	if existing := t.Get(a.AuraID); existing != nil {
		if existing.Flags.Refreshable {
			existing.Refresh(now)
			existing.AddStack()
		}
		return
	}
	t.auras = append(t.auras, a)
}

// Remove removes auraID unconditionally, returning the removed instance
// if present.
func (t *TargetAuras) Remove(auraID int) (Instance, bool) {
	for i := range t.auras {
		if t.auras[i].AuraID == auraID {
			removed := t.auras[i]
			t.auras = removeBySwappingToBack(t.auras, i)
			return removed, true
		}
	}
	return Instance{}, false
}

// Cleanup evicts every instance that has expired by now.
func (t *TargetAuras) Cleanup(now simtime.Time) {
	kept := t.auras[:0]
	for _, a := range t.auras {
		if a.IsActive(now) {
			kept = append(kept, a)
		}
	}
	t.auras = kept
}

// All returns every tracked instance (active or not); callers filter by
// IsActive as needed.
func (t *TargetAuras) All() []Instance {
	return t.auras
}

// DebuffCount returns the count of active debuffs at now.
func (t *TargetAuras) DebuffCount(now simtime.Time) int {
	n := 0
	for _, a := range t.auras {
		if a.Flags.IsDebuff && a.IsActive(now) {
			n++
		}
	}
	return n
}

// Tracker owns the player's own buffs plus per-target debuff containers,
// sized to the enemy count at construction.
type Tracker struct {
	Player  TargetAuras
	targets []TargetAuras
}

// NewTracker constructs a tracker with room for targetCount enemies.
func NewTracker(targetCount int) *Tracker {
	return &Tracker{targets: make([]TargetAuras, targetCount)}
}

// Reset clears every tracked aura, for a fresh iteration.
func (tr *Tracker) Reset() {
	tr.Player = TargetAuras{}
	for i := range tr.targets {
		tr.targets[i] = TargetAuras{}
	}
}

// Target returns the TargetAuras for the given target index, or nil if
// out of range.
func (tr *Tracker) Target(target int) *TargetAuras {
	if target < 0 || target >= len(tr.targets) {
		return nil
	}
	return &tr.targets[target]
}

// OnAnyTarget reports whether auraID is active on at least one target.
func (tr *Tracker) OnAnyTarget(auraID int, now simtime.Time) bool {
	for i := range tr.targets {
		if tr.targets[i].Has(auraID, now) {
			return true
		}
	}
	return false
}

// PendingTick identifies one target/aura pair whose periodic tick is due.
type PendingTick struct {
	Target int
	AuraID int
}

// PendingTicks returns every player-buff and target-debuff instance whose
// NextTick is due at or before now. Reconciliation against a pandemic
// refresh happens lazily here: a refresh may have pushed NextTick later,
// in which case it simply won't appear until its new time arrives — no
// eager invalidation of in-flight AuraTick events is required (spec.md
// §4.4, §9 open question resolution).
func (tr *Tracker) PendingTicks(now simtime.Time) []PendingTick {
	var pending []PendingTick
	for i := range tr.Player.auras {
		a := &tr.Player.auras[i]
		if a.HasNextTick && a.NextTick <= now && a.IsActive(now) {
			pending = append(pending, PendingTick{Target: -1, AuraID: a.AuraID})
		}
	}
	for ti := range tr.targets {
		for i := range tr.targets[ti].auras {
			a := &tr.targets[ti].auras[i]
			if a.HasNextTick && a.NextTick <= now && a.IsActive(now) {
				pending = append(pending, PendingTick{Target: ti, AuraID: a.AuraID})
			}
		}
	}
	return pending
}

// CleanupAll evicts expired auras from the player and every target.
func (tr *Tracker) CleanupAll(now simtime.Time) {
	tr.Player.Cleanup(now)
	for i := range tr.targets {
		tr.targets[i].Cleanup(now)
	}
}
