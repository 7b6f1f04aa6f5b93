package simcore

import (
	"github.com/legacy3/wowlab-sub002/damage"
	"github.com/legacy3/wowlab-sub002/rotation"
)

// SpecHandler is the polymorphism boundary every class/spec implements to
// participate in the simulation (spec.md §9): a fixed method set the
// dispatcher calls into by dynamic dispatch, never a growing central
// switch. Grounded 1:1 on
// original_source/crates/engine/src/handler/traits.rs's SpecHandler trait.
type SpecHandler interface {
	// Init schedules the spec's starting events (auto-attacks, pet
	// summons) once SimState has been reset for a new iteration.
	Init(state *SimState)

	// InitPlayer applies spec-specific starting resources/cooldowns/procs
	// before the first iteration's Init runs.
	InitPlayer(state *SimState)

	// OnGCD is called when the global cooldown ends and the rotation may
	// choose its next action.
	OnGCD(state *SimState)

	// OnCastComplete is called when a hard-cast or channel's completion
	// event fires.
	OnCastComplete(state *SimState, spell, target int)

	// OnSpellDamage is called when a scheduled damage event resolves.
	OnSpellDamage(state *SimState, spell, target, snapshotID int)

	// OnAutoAttack is called on the player's main/off-hand swing timer.
	OnAutoAttack(state *SimState, unit int)

	// OnPetAttack is called on a pet's swing timer.
	OnPetAttack(state *SimState, pet int)

	// OnAuraTick is called when a periodic aura's tick timer fires.
	OnAuraTick(state *SimState, auraID, target int)

	// OnAuraApply is called right after an aura instance is applied.
	OnAuraApply(state *SimState, auraID, target int)

	// OnAuraExpire is called right after an aura instance is removed for
	// having expired (the built-in dispatcher already removed it from the
	// tracker by the time this runs).
	OnAuraExpire(state *SimState, auraID, target int)

	// CastSpell executes a rotation-selected cast: pays its cost,
	// starts its GCD/cooldown, and schedules CastComplete/SpellDamage.
	// Returns simerr.CastRejected (not a fatal error) if the spell is not
	// presently legal.
	CastSpell(state *SimState, spell int, target int) error

	// NextAction runs the compiled rotation against current state and
	// returns the chosen Decision.
	NextAction(state *SimState) rotation.Decision

	// SpellNameToID resolves a rotation script's spell name to its id.
	SpellNameToID(name string) (int, bool)
}

// BaseHandler provides the shared, generic default behavior every spec
// can embed instead of reimplementing: damage calculation through the
// standard pipeline, and resolving spells/auras through a shared
// Registry. Per spec.md §9 this is the one permitted second level of
// "inheritance" — a class-level default that calls through to generic
// helpers, not a deep hierarchy. Embedding specs still must implement
// the rest of SpecHandler themselves; BaseHandler does not itself
// satisfy the interface.
type BaseHandler struct {
	Registry *Registry
}

// CalculateDamage runs the standard scalar damage pipeline for a direct
// hit, using the player's current stats and the primary target's armor.
// Specs can call this from OnSpellDamage and layer spec-specific
// modifiers into state.Multipliers beforehand.
func (b *BaseHandler) CalculateDamage(state *SimState, coef damage.Coefficients, school damage.School) damage.Result {
	snap := state.Player.Stats.Snapshot()
	ap := state.Player.AttackPower
	sp := state.Player.SpellPower

	var armorMit float32
	if target := state.Enemies.PrimaryTarget(); target != nil {
		armorMit = target.ArmorMitigation(playerEffectiveLevel)
	}

	return damage.Calculate(coef, ap, sp, state.Multipliers, school, armorMit, snap.CritChance, state.Rng)
}

// playerEffectiveLevel is the reference max-level value the armor
// formula's K constant is computed from (spec.md §3).
const playerEffectiveLevel = 90

// SpellByID looks up a spell definition through the shared registry.
func (b *BaseHandler) SpellByID(id int) (*SpellDef, bool) { return b.Registry.Spell(id) }

// SpellNameToID resolves a spell name to its id through the shared
// registry, satisfying the SpecHandler.SpellNameToID contract for specs
// that embed BaseHandler.
func (b *BaseHandler) SpellNameToID(name string) (int, bool) {
	s, ok := b.Registry.SpellByName(name)
	if !ok {
		return 0, false
	}
	return s.ID, true
}

// AuraByID looks up an aura definition through the shared registry.
func (b *BaseHandler) AuraByID(id int) (*AuraDef, bool) { return b.Registry.Aura(id) }
