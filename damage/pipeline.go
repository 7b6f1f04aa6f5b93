package damage

import "github.com/legacy3/wowlab-sub002/simrng"

// Coefficients scales a spell's base damage by attack power and/or spell
// power.
type Coefficients struct {
	Base    float32
	APCoef  float32
	SPCoef  float32
}

// Result is the outcome of one damage calculation.
type Result struct {
	Raw       float32 // before multipliers
	Mitigated float32 // after multipliers and armor mitigation
	Final     float32 // what the target actually loses
	IsCrit    bool
}

// Calculate computes a single hit: raw = base + ap*apCoef + sp*spCoef,
// then a crit roll, then the multiplier stack, then (for physical damage)
// armor mitigation.
func Calculate(
	coef Coefficients,
	ap, sp float32,
	mult Multipliers,
	school School,
	armorMitigation float32,
	critChance float32,
	rng *simrng.Rng,
) Result {
	raw := coef.Base + ap*coef.APCoef + sp*coef.SPCoef
	isCrit := rng.Roll(critChance)

	withMult := raw * mult.TotalDA(isCrit)

	final := withMult
	mitigated := withMult
	if school == Physical {
		mitigated = withMult * (1 - armorMitigation)
		final = mitigated
	}

	return Result{Raw: raw, Mitigated: mitigated, Final: final, IsCrit: isCrit}
}

// CalculateTick is Calculate's periodic-tick counterpart: no crit roll (the
// caller passes in whether this tick snapshot crit at application time),
// using TotalTA instead of TotalDA.
func CalculateTick(
	coef Coefficients,
	ap, sp float32,
	mult Multipliers,
	school School,
	armorMitigation float32,
	isCrit bool,
) Result {
	raw := coef.Base + ap*coef.APCoef + sp*coef.SPCoef
	withMult := raw * mult.TotalTA(isCrit)

	final := withMult
	mitigated := withMult
	if school == Physical {
		mitigated = withMult * (1 - armorMitigation)
		final = mitigated
	}

	return Result{Raw: raw, Mitigated: mitigated, Final: final, IsCrit: isCrit}
}

// ArmorConstant is K in the standard armor-mitigation formula
// armor/(armor+K). attackerLevel is the player's effective level; boss
// targets add a flat constant on top (spec.md's boss-armor-constant rule,
// grounded on actor.Enemy.ArmorMitigation).
func ArmorConstant(attackerLevel uint8, isBoss bool) float32 {
	k := float32(attackerLevel) * 467.5
	if isBoss {
		k += 16593.0
	}
	return k
}

// ArmorMitigation returns the fraction of physical damage absorbed by the
// given armor value against ArmorConstant k.
func ArmorMitigation(armor, k float32) float32 {
	return armor / (armor + k)
}
