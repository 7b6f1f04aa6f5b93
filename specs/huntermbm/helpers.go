package huntermbm

import (
	"github.com/legacy3/wowlab-sub002/event"
	"github.com/legacy3/wowlab-sub002/simcore"
	"github.com/legacy3/wowlab-sub002/simtime"
)

// isSpellReady resolves a spell by its rotation script name and reports
// whether its cooldown (plain or charged) currently allows a cast.
func (h *Handler) isSpellReady(state *simcore.SimState, name string) bool {
	def, ok := h.Registry.SpellByName(name)
	if !ok {
		return false
	}
	return h.isSpellReadyByID(state, def)
}

// isSpellReadyByID reports whether def's cooldown currently allows a cast.
func (h *Handler) isSpellReadyByID(state *simcore.SimState, def *simcore.SpellDef) bool {
	if def.IsCharged() {
		cd, ok := state.Player.ChargedCooldowns[def.ID]
		return ok && cd.HasCharge()
	}
	cd, ok := state.Player.Cooldowns[def.ID]
	if !ok {
		return true
	}
	return cd.IsReady(state.Now)
}

// cooldownRemaining resolves a spell by name and returns seconds until
// its cooldown (or next charge) is available, zero if already ready or
// unknown.
func (h *Handler) cooldownRemaining(state *simcore.SimState, name string) float64 {
	def, ok := h.Registry.SpellByName(name)
	if !ok {
		return 0
	}
	if def.IsCharged() {
		cd, ok := state.Player.ChargedCooldowns[def.ID]
		if !ok {
			return 0
		}
		return cd.TimeUntilCharge(state.Now).Seconds()
	}
	cd, ok := state.Player.Cooldowns[def.ID]
	if !ok {
		return 0
	}
	return cd.Remaining(state.Now).Seconds()
}

// cooldownCharges resolves a spell by name and returns its current
// charge count: the live pool size for a charged spell, 1 for a ready
// plain cooldown, 0 otherwise.
func (h *Handler) cooldownCharges(state *simcore.SimState, name string) int {
	def, ok := h.Registry.SpellByName(name)
	if !ok {
		return 0
	}
	if def.IsCharged() {
		cd, ok := state.Player.ChargedCooldowns[def.ID]
		if !ok {
			return 0
		}
		return int(cd.CurrentCharges)
	}
	if h.isSpellReadyByID(state, def) {
		return 1
	}
	return 0
}

// startCooldown begins def's cooldown at the moment of a cast: for a
// charge-based spell this spends one charge and schedules a ChargeReady
// event at the pool's NextChargeAt (the timer that spend started, or the
// one already running) for the dispatcher to advance it on; otherwise it
// starts the plain single-use timer.
func (h *Handler) startCooldown(state *simcore.SimState, def *simcore.SpellDef, haste float32) {
	if def.IsCharged() {
		cd, ok := state.Player.ChargedCooldowns[def.ID]
		if !ok {
			return
		}
		if cd.Spend(state.Now, haste) && cd.NextChargeAt != simtime.Max {
			state.Queue.Schedule(cd.NextChargeAt, event.Event{Kind: event.ChargeReady, Spell: def.ID})
		}
		return
	}
	cd, ok := state.Player.Cooldowns[def.ID]
	if !ok {
		return
	}
	cd.Start(state.Now, haste)
}

// gcdFor computes a spell's global cooldown duration, haste-scaled and
// floored at gcdFloor.
func gcdFor(def *simcore.SpellDef, haste float32) simtime.Time {
	base := def.GCD
	if base <= 0 {
		base = standardGCD
	}
	if haste <= 0 {
		haste = 1
	}
	scaled := simtime.FromSeconds(base.Seconds() / float64(haste))
	if scaled < gcdFloor {
		return gcdFloor
	}
	return scaled
}
