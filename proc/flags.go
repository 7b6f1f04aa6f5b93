// Package proc implements RPPM (with bad-luck protection and ICD) and
// fixed-chance procs, plus the registry that dispatches trigger events to
// them. Grounded on original_source/crates/engine/src/proc/{rppm,flags}.rs.
package proc

// Flags is a bitmask of trigger conditions a proc may be registered
// against. Spec.md §9 explicitly resolves the ambiguity in the original
// source's overlapping bit meanings: these are treated as orthogonal and
// OR'd together at the trigger site, never exclusive. No bitflags-style
// library exists anywhere in this corpus, so this is a plain uint32 with
// package-level constants — the direct Go idiom for this one concern.
type Flags uint32

const (
	OnDamage Flags = 1 << iota
	OnPeriodicDamage
	OnDirectDamage
	OnCrit
	OnAutoAttack
	OnSpellCast
	OnAbility
	OnDamageTaken
	OnHeal
	OnPeriodicHeal
	OnAuraApply
	OnAuraExpire
	OnKill
	OnPetDamage
	OnPetAbility
	MainHandOnly
	OffHandOnly
	OnHarmfulSpell
	OnBeneficialSpell
)

// Has reports whether every bit in mask is set in f.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Any reports whether any bit in mask is set in f.
func (f Flags) Any(mask Flags) bool {
	return f&mask != 0
}

// Category distinguishes how a proc's chance is computed.
type Category uint8

const (
	CategoryRppm Category = iota
	CategoryFixedChance
	CategoryGuaranteed
	CategoryPpm
)

// Context carries the information a proc roll needs about the
// triggering event.
type Context struct {
	Trigger Flags
	SpellID int
	HasSpellID bool
	Target  int
	IsCrit  bool
	Damage  float32
	Haste   float32
}
