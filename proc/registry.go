package proc

import (
	"github.com/legacy3/wowlab-sub002/simrng"
	"github.com/legacy3/wowlab-sub002/simtime"
)

// Effect is what a successful proc produces. The spec handler routes
// this back into the simulation as standard events (spec.md §4.6).
type Effect struct {
	ApplyAuraID   int
	HasApplyAura  bool
	Damage        float32
	HasDamage     bool
	ModifyCooldownSpell int
	HasModifyCooldown   bool
}

// Entry pairs a registered proc (RPPM or fixed) with the trigger mask it
// responds to and the effect it produces on success.
type Entry struct {
	Trigger Flags
	Rppm    *Rppm
	Fixed   *Fixed
	Effect  Effect
}

// Registry holds every proc registered for a unit and evaluates them in
// registration order against a triggering event — at most one roll per
// proc per event, per spec.md §4.6.
type Registry struct {
	entries []Entry
}

// Register adds a new proc entry, in order.
func (r *Registry) Register(e Entry) {
	r.entries = append(r.entries, e)
}

// Dispatch evaluates every registered proc whose Trigger mask intersects
// ctx.Trigger, returning the effects of every proc that fired.
func (r *Registry) Dispatch(now simtime.Time, ctx Context, rng *simrng.Rng) []Effect {
	var fired []Effect
	for i := range r.entries {
		e := &r.entries[i]
		if !e.Trigger.Any(ctx.Trigger) {
			continue
		}
		switch {
		case e.Rppm != nil:
			if e.Rppm.Attempt(now, ctx.Haste, boolToCrit(ctx.IsCrit), rng) {
				fired = append(fired, e.Effect)
			}
		case e.Fixed != nil:
			if e.Fixed.Attempt(now, rng) {
				fired = append(fired, e.Effect)
			}
		}
	}
	return fired
}

// Reset clears every registered proc's rolling state for a new iteration.
func (r *Registry) Reset() {
	for i := range r.entries {
		e := &r.entries[i]
		if e.Rppm != nil {
			e.Rppm.Reset()
		}
		if e.Fixed != nil {
			e.Fixed.Reset()
		}
	}
}

func boolToCrit(isCrit bool) float32 {
	if isCrit {
		return 1
	}
	return 0
}
