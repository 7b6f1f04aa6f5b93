package simcore

import (
	"fmt"

	"github.com/legacy3/wowlab-sub002/aura"
	"github.com/legacy3/wowlab-sub002/collector"
	"github.com/legacy3/wowlab-sub002/event"
	"github.com/legacy3/wowlab-sub002/simerr"
)

// SimResult is the outcome of one completed iteration (spec.md §6).
type SimResult struct {
	Damage float64
	DPS    float64
	Casts  int
}

// Simulation pairs a spec handler with the state it drives, mirroring
// the teacher's Environment/Simulation split and
// original_source/crates/engine/src/sim/simulation.rs's ownership split
// (handler and state are separate fields so a dispatch can hold a
// mutable borrow of state while calling through the handler).
type Simulation struct {
	Handler SpecHandler
	State   *SimState
}

// New constructs a Simulation and performs its first reset (iteration
// 0). batch.Runner constructs one per iteration; Reset can instead
// replay a Simulation for another iteration.
func New(handler SpecHandler, cfg Config, registry *Registry) *Simulation {
	state := NewState(cfg, registry)
	handler.InitPlayer(state)
	sim := &Simulation{Handler: handler, State: state}
	sim.Reset(0)
	return sim
}

// Reset restores state for iteration i and re-runs the handler's Init
// hook (spec.md §4.2's reset semantics).
func (s *Simulation) Reset(i uint64) {
	s.State.Reset(i)
	s.Handler.Init(s.State)
}

// Run drives one complete iteration: pop, advance the time cursor, and
// dispatch, until SimEnd fires. Returns InvariantViolated (wrapped) if
// the queue empties before SimEnd — this should not happen, since
// SimEnd is always pre-scheduled by Reset.
func (s *Simulation) Run() error {
	for !s.State.Finished {
		ev, ok := s.State.Queue.Pop()
		if !ok {
			return fmt.Errorf("%w: event queue emptied before SimEnd", simerr.InvariantViolated)
		}
		if ev.Time < s.State.Now {
			return fmt.Errorf("%w: event time %v before cursor %v", simerr.InvariantViolated, ev.Time, s.State.Now)
		}
		s.State.Now = ev.Time
		s.dispatch(ev)
	}
	return nil
}

// Result summarizes the just-completed (or in-progress) iteration.
func (s *Simulation) Result() SimResult {
	return SimResult{
		Damage: s.State.TotalDamage,
		DPS:    s.State.DPS(),
		Casts:  s.State.Casts,
	}
}

// Breakdown renders the just-completed iteration's per-spell damage
// breakdown from the accumulated collector.Collector, resolving spell
// names through the Registry (spec.md §6 DamageBreakdown, §3 expansion).
func (s *Simulation) Breakdown() collector.DamageBreakdown {
	return collector.BuildDamageBreakdown(s.State.Spells, func(id int) (string, bool) {
		def, ok := s.State.Registry.Spell(id)
		if !ok {
			return "", false
		}
		return def.Name, true
	})
}

// targetAuras returns the aura container for a dispatch target: the
// player's own buffs for target < 0, or the indexed enemy's debuffs.
func (s *SimState) targetAuras(target int) *aura.TargetAuras {
	if target < 0 {
		return &s.Auras.Player
	}
	return s.Auras.Target(target)
}

// dispatch routes one popped event to a built-in handler or to the spec
// handler, matching original_source/crates/engine/src/sim/simulation.rs's
// handle_event match arms. Event-kind dispatch is a plain switch (closed
// tagged union); only the spec behavior it calls into is polymorphic
// (spec.md §9).
func (s *Simulation) dispatch(ev event.Event) {
	switch ev.Kind {
	case event.SimEnd:
		s.State.Finished = true
		s.State.Spells.SetEnd(s.State.Now)

	case event.GcdEnd:
		s.Handler.OnGCD(s.State)

	case event.CastComplete:
		s.Handler.OnCastComplete(s.State, ev.Spell, ev.Target)

	case event.SpellDamage:
		s.Handler.OnSpellDamage(s.State, ev.Spell, ev.Target, ev.SnapshotID)

	case event.AuraExpire:
		s.dispatchAuraExpire(ev)

	case event.AuraTick:
		s.dispatchAuraTick(ev)

	case event.CooldownReady:
		// Informational only; plain cooldowns are polled via IsReady.

	case event.ChargeReady:
		haste := s.State.HasteMult()
		if cd, ok := s.State.Player.ChargedCooldowns[ev.Spell]; ok {
			cd.CheckRecharge(s.State.Now, haste)
		}

	case event.AutoAttack:
		s.Handler.OnAutoAttack(s.State, ev.Unit)

	case event.PetAttack:
		s.Handler.OnPetAttack(s.State, ev.Pet)

	case event.ResourceTick:
		s.handleResourceTick()

	case event.ProcIcdEnd:
		// Informational only; ICD state is checked at attempt time.
	}
}

// dispatchAuraExpire removes an aura instance once its scheduled expiry
// fires, reconciled against a refresh the same way dispatchAuraTick is:
// a refresh that pushed ExpiresAt later leaves this event stale, so it is
// simply dropped rather than removing a still-active instance. The
// caller that applies/refreshes an aura is responsible for scheduling a
// fresh AuraExpire event at the new expiry time.
func (s *Simulation) dispatchAuraExpire(ev event.Event) {
	auras := s.State.targetAuras(ev.Target)
	if auras == nil {
		return
	}
	inst := auras.Get(ev.Aura)
	if inst == nil || inst.IsActive(s.State.Now) {
		return
	}
	auras.Remove(ev.Aura)
	s.Handler.OnAuraExpire(s.State, ev.Aura, ev.Target)
}

// dispatchAuraTick fires a periodic aura's tick, reconciling against a
// pandemic refresh that may have landed since this event was scheduled
// (spec.md §4.4, §9 open question): the event is only honored if the
// instance's NextTick is still due, and the *next* tick is always
// re-scheduled from the instance's own state rather than trusting a
// stale queue entry to still be correct.
func (s *Simulation) dispatchAuraTick(ev event.Event) {
	auras := s.State.targetAuras(ev.Target)
	if auras == nil {
		return
	}
	inst := auras.Get(ev.Aura)
	if inst == nil || !inst.IsActive(s.State.Now) {
		return
	}
	if !inst.HasNextTick || inst.NextTick > s.State.Now {
		return
	}

	s.Handler.OnAuraTick(s.State, ev.Aura, ev.Target)

	if inst.Tick() {
		s.State.Queue.Schedule(inst.NextTick, event.Event{
			Kind: event.AuraTick, Aura: ev.Aura, Target: ev.Target,
		})
	}
}

func (s *Simulation) handleResourceTick() {
	haste := s.State.HasteMult()
	const tickSeconds = float32(0.1) // 100ms, matches resourceTickInterval

	if s.State.Player.Resources.Primary != nil {
		s.State.Player.Resources.Primary.Tick(tickSeconds, haste)
	}

	if !s.State.Finished {
		s.State.Queue.ScheduleIn(s.State.Now, resourceTickInterval, event.Event{Kind: event.ResourceTick})
	}
}
