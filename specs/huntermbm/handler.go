package huntermbm

import (
	"fmt"

	"github.com/legacy3/wowlab-sub002/actor"
	"github.com/legacy3/wowlab-sub002/aura"
	"github.com/legacy3/wowlab-sub002/cooldown"
	"github.com/legacy3/wowlab-sub002/damage"
	"github.com/legacy3/wowlab-sub002/event"
	"github.com/legacy3/wowlab-sub002/resource"
	"github.com/legacy3/wowlab-sub002/rotation"
	"github.com/legacy3/wowlab-sub002/simcore"
	"github.com/legacy3/wowlab-sub002/simerr"
	"github.com/legacy3/wowlab-sub002/simtime"
)

// pollInterval is how soon OnGCD re-evaluates the rotation when the
// chosen decision was rejected (out of resources, everything on
// cooldown) rather than a real cast or an explicit wait.
const pollInterval = simtime.Time(100)

const (
	playerWeaponSwingSpeed = simtime.Time(2800)
	petWeaponSwingSpeed    = simtime.Time(2000)
	autoAttackAPCoef       = 0.2
	petAutoAttackAPCoef    = 0.35
)

// Handler is the Beast Mastery Hunter simcore.SpecHandler. It is entirely
// stateless beyond its read-only Registry and compiled rotation, since
// simcore.New constructs one Simulation per iteration and iterations run
// concurrently across a batch.Runner's worker pool sharing one Handler
// (spec.md §4.8).
type Handler struct {
	simcore.BaseHandler
	compiler *rotation.Compiler
}

// NewHandler builds the spell/aura registry and compiles the default
// single-target rotation, mirroring handler.rs's BeastMasteryHandler::new.
func NewHandler() (*Handler, error) {
	registry := simcore.NewRegistry(spellDefinitions(), auraDefinitions())
	compiler, err := rotation.NewCompiler(defaultRotation(), 256)
	if err != nil {
		return nil, fmt.Errorf("huntermbm: %w", err)
	}
	return &Handler{
		BaseHandler: simcore.BaseHandler{Registry: registry},
		compiler:    compiler,
	}, nil
}

// InitPlayer seeds focus, cooldowns, and the Barbed Shot charge pool,
// mirroring handler.rs's init_player.
func (h *Handler) InitPlayer(state *simcore.SimState) {
	pool := resource.New(resource.Focus, focusMax).WithRegen(focusRegenPerSecond)
	state.Player.Resources.Primary = &pool

	state.Player.AttackPower = baselineAttackPower

	state.Player.AddCooldown(KillCommand, cooldown.New(killCommandCooldown))
	state.Player.AddCooldown(BestialWrath, cooldown.New(bestialWrathCooldown))
	state.Player.AddCooldown(KillShot, cooldown.New(killShotCooldown))

	state.Player.AddChargedCooldown(BarbedShot, cooldown.NewCharged(barbedShotCharges, barbedShotRecharge))
}

// Init schedules the opening auto-attack and pet-attack events and
// summons the permanent pet, mirroring handler.rs's init_sim (the
// baseline SimEnd/ResourceTick/GcdEnd scheduling handler.rs does inline
// is already done by simcore.SimState.Reset for every spec).
func (h *Handler) Init(state *simcore.SimState) {
	petID := state.Pets.Summon(state.Player.ID, actor.Permanent, "Pet")
	if pet := state.Pets.Get(petID); pet != nil {
		pet.InheritStats(state.Player.AttackPower, state.Player.SpellPower, petInheritance, state.Config.PlayerBase)
		pet.ScheduleAuto(state.Now, petWeaponSwingSpeed)
		state.Queue.Schedule(pet.NextAuto, event.Event{Kind: event.PetAttack, Pet: petID})
	}
	state.Player.ScheduleAuto(state.Now, playerWeaponSwingSpeed, false)
	state.Queue.Schedule(state.Player.NextAutoMH, event.Event{Kind: event.AutoAttack, Unit: state.Player.ID})
}

// NextAction refreshes a fresh decision state against the schema this
// handler's rotation discovered and runs one Decide call (spec.md §4.3).
func (h *Handler) NextAction(state *simcore.SimState) rotation.Decision {
	st := h.compiler.NewState()
	resolver := stateResolver{state: state, handler: h}
	st.Refresh(resolver, resolver)
	return h.compiler.Decide(st)
}

// OnGCD asks the rotation for its next action and translates the
// Decision into a cast, a wait, or (if the chosen action is not
// presently legal) a short poll before trying again.
func (h *Handler) OnGCD(state *simcore.SimState) {
	d := h.NextAction(state)
	switch d.Kind {
	case rotation.DecisionCast:
		id, ok := h.SpellNameToID(d.Spell)
		if !ok {
			state.Queue.ScheduleIn(state.Now, pollInterval, event.Event{Kind: event.GcdEnd})
			return
		}
		target := state.Enemies.Primary
		if err := h.CastSpell(state, id, target); err != nil {
			state.Queue.ScheduleIn(state.Now, pollInterval, event.Event{Kind: event.GcdEnd})
		}
	case rotation.DecisionWait:
		state.Queue.ScheduleIn(state.Now, simtime.FromSeconds(d.Seconds), event.Event{Kind: event.GcdEnd})
	default:
		state.Queue.ScheduleIn(state.Now, pollInterval, event.Event{Kind: event.GcdEnd})
	}
}

// CastSpell pays the spell's cost, starts its cooldown/charge and GCD,
// and schedules its CastComplete. All three legality checks return
// simerr.CastRejected rather than failing the iteration (spec.md §7):
// a rotation racing the simulation clock picking a momentarily-illegal
// action is an ordinary outcome, not a bug.
func (h *Handler) CastSpell(state *simcore.SimState, spell int, target int) error {
	def, ok := h.SpellByID(spell)
	if !ok {
		return fmt.Errorf("%w: spell %d", simerr.DataMissing, spell)
	}

	now := state.Now
	if !state.Player.CanCast(now) {
		return fmt.Errorf("%w: %s while on gcd/casting", simerr.CastRejected, def.Name)
	}
	if !h.isSpellReadyByID(state, def) {
		return fmt.Errorf("%w: %s on cooldown", simerr.CastRejected, def.Name)
	}
	if def.Cost > 0 {
		pool, ok := state.Player.Resources.Get(def.ResourceType)
		if !ok || !pool.CanAfford(def.Cost) {
			return fmt.Errorf("%w: %s insufficient resource", simerr.CastRejected, def.Name)
		}
		pool.Spend(def.Cost)
	}

	haste := state.HasteMult()
	h.startCooldown(state, def, haste)

	gcd := gcdFor(def, haste)
	state.Player.StartGCD(now, gcd)
	state.Queue.ScheduleIn(now, gcd, event.Event{Kind: event.GcdEnd})

	state.Casts++
	state.Queue.Schedule(now, event.Event{Kind: event.CastComplete, Spell: spell, Target: target})
	return nil
}

// OnCastComplete applies each spell's non-damage effects and/or schedules
// its SpellDamage event. Barbed Shot and Bestial Wrath deal no direct
// damage (apply_barbed_shot/apply_bestial_wrath in the original only
// touch auras), so only Kill Command/Cobra Shot/Kill Shot schedule one.
func (h *Handler) OnCastComplete(state *simcore.SimState, spell, target int) {
	switch spell {
	case KillCommand, CobraShot, KillShot:
		state.Queue.Schedule(state.Now, event.Event{Kind: event.SpellDamage, Spell: spell, Target: target})
	case BarbedShot:
		h.applyBarbedShot(state, target)
	case BestialWrath:
		h.applyBestialWrath(state)
	}
}

// OnSpellDamage runs the standard scalar pipeline for direct-hit spells,
// applying Kill Command's Bestial Wrath damage boost per calc_kill_command.
func (h *Handler) OnSpellDamage(state *simcore.SimState, spell, target, _ int) {
	def, ok := h.SpellByID(spell)
	if !ok {
		return
	}
	coef := def.RollDamage(state.Rng)
	result := h.CalculateDamage(state, coef, def.School)

	final := result.Final
	if spell == KillCommand && state.Auras.Player.Has(BestialWrathBuff, state.Now) {
		final *= 1.25
	}

	if enemy := state.Enemies.Get(target); enemy != nil {
		enemy.TakeDamage(final)
	}
	state.RecordDamage(spell, target, final, result.IsCrit, false)
}

// OnAuraTick resolves the Barbed Shot DoT's periodic damage against the
// stat snapshot captured when it was applied, per apply_barbed_shot's
// with_snapshot.
func (h *Handler) OnAuraTick(state *simcore.SimState, auraID, target int) {
	if auraID != BarbedShotDoT {
		return
	}
	ta := state.Auras.Target(target)
	if ta == nil {
		return
	}
	inst := ta.Get(auraID)
	if inst == nil || inst.Snapshot == nil {
		return
	}
	snap := *inst.Snapshot

	var armorMit float32
	enemy := state.Enemies.Get(target)
	if enemy != nil {
		armorMit = enemy.ArmorMitigation(playerEffectiveLevel)
	}

	isCrit := state.Rng.Roll(snap.CritChance)
	result := damage.CalculateTick(barbedShotDotCoef, snap.AttackPower, snap.SpellPower, state.Multipliers, damage.Physical, armorMit, isCrit)

	if enemy != nil {
		enemy.TakeDamage(result.Final)
	}
	state.RecordDamage(BarbedShot, target, result.Final, isCrit, true)
}

// OnAuraApply and OnAuraExpire have no spec-specific behavior for this
// handler: every effect Barbed Shot/Bestial Wrath need happens at
// application time in applyBarbedShot/applyBestialWrath, and nothing
// needs cleanup beyond what the dispatcher already does on expiry.
func (h *Handler) OnAuraApply(*simcore.SimState, int, int)  {}
func (h *Handler) OnAuraExpire(*simcore.SimState, int, int) {}

// OnAutoAttack resolves the player's ranged weapon swing and reschedules
// the next one.
func (h *Handler) OnAutoAttack(state *simcore.SimState, unit int) {
	coef := damage.Coefficients{APCoef: autoAttackAPCoef}
	result := h.CalculateDamage(state, coef, damage.Physical)
	if enemy := state.Enemies.PrimaryTarget(); enemy != nil {
		enemy.TakeDamage(result.Final)
	}
	state.RecordDamage(autoAttackID, state.Enemies.Primary, result.Final, result.IsCrit, false)

	state.Player.ScheduleAuto(state.Now, playerWeaponSwingSpeed, false)
	state.Queue.Schedule(state.Player.NextAutoMH, event.Event{Kind: event.AutoAttack, Unit: unit})
}

// OnPetAttack resolves the pet's melee swing using its inherited stats
// and reschedules the next one.
func (h *Handler) OnPetAttack(state *simcore.SimState, petID int) {
	pet := state.Pets.Get(petID)
	if pet == nil || !pet.IsValid(state.Now) {
		return
	}

	var armorMit float32
	enemy := state.Enemies.PrimaryTarget()
	if enemy != nil {
		armorMit = enemy.ArmorMitigation(playerEffectiveLevel)
	}

	critChance := pet.Stats.Snapshot().CritChance
	coef := damage.Coefficients{APCoef: petAutoAttackAPCoef}
	result := damage.Calculate(coef, pet.AttackPower(), pet.SpellPower(), state.Multipliers, damage.Physical, armorMit, critChance, state.Rng)

	if enemy != nil {
		enemy.TakeDamage(result.Final)
	}
	state.RecordDamage(petAttackID, state.Enemies.Primary, result.Final, result.IsCrit, false)

	pet.ScheduleAuto(state.Now, petWeaponSwingSpeed)
	state.Queue.Schedule(pet.NextAuto, event.Event{Kind: event.PetAttack, Pet: petID})
}

// applyBarbedShot applies/refreshes the Barbed Shot DoT (snapshotting the
// player's current stats) and the Frenzy stacking buff, per
// apply_barbed_shot.
func (h *Handler) applyBarbedShot(state *simcore.SimState, target int) {
	now := state.Now
	snap := state.Player.Stats.Snapshot()

	if ta := state.Auras.Target(target); ta != nil {
		dot := aura.New(BarbedShotDoT, target, barbedShotDotDuration, now, aura.Flags{
			IsDebuff:    true,
			IsPeriodic:  true,
			CanPandemic: true,
			Refreshable: true,
		}).WithPeriodic(barbedShotDotTick, now).WithSnapshotStats(aura.Snapshot{
			AttackPower: state.Player.AttackPower,
			SpellPower:  state.Player.SpellPower,
			CritChance:  snap.CritChance,
			Haste:       snap.HasteMult,
			Versatility: snap.Versatility,
			Mastery:     snap.MasteryPercent,
		})
		ta.Apply(dot, now)
		h.scheduleExpire(state, ta, BarbedShotDoT, target)
		if inst := ta.Get(BarbedShotDoT); inst != nil && inst.HasNextTick {
			state.Queue.Schedule(inst.NextTick, event.Event{Kind: event.AuraTick, Aura: BarbedShotDoT, Target: target})
		}
	}

	frenzy := aura.New(FrenzyBuff, -1, frenzyDuration, now, aura.Flags{Refreshable: true}).WithStacks(frenzyMaxStacks)
	state.Auras.Player.Apply(frenzy, now)
	h.scheduleExpire(state, &state.Auras.Player, FrenzyBuff, -1)
}

// applyBestialWrath applies the Bestial Wrath buff, per apply_bestial_wrath.
func (h *Handler) applyBestialWrath(state *simcore.SimState) {
	buff := aura.New(BestialWrathBuff, -1, bestialWrathBuffDuration, state.Now, aura.Flags{})
	state.Auras.Player.Apply(buff, state.Now)
	h.scheduleExpire(state, &state.Auras.Player, BestialWrathBuff, -1)
}

// scheduleExpire schedules a fresh AuraExpire event at the instance's
// current ExpiresAt, as dispatchAuraExpire requires of every
// apply/refresh: a refresh can push ExpiresAt later than any
// previously-scheduled expiry event, which dispatchAuraExpire detects and
// drops, so the new expiry always needs its own event.
func (h *Handler) scheduleExpire(state *simcore.SimState, ta *aura.TargetAuras, auraID, target int) {
	inst := ta.Get(auraID)
	if inst == nil {
		return
	}
	state.Queue.Schedule(inst.ExpiresAt, event.Event{Kind: event.AuraExpire, Aura: auraID, Target: target})
}
