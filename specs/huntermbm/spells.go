package huntermbm

import (
	"github.com/legacy3/wowlab-sub002/damage"
	"github.com/legacy3/wowlab-sub002/resource"
	"github.com/legacy3/wowlab-sub002/simcore"
)

// spellDefinitions mirrors handler.rs's spell_definitions(): every spell
// this handler can cast, by id, with the damage coefficients the
// rotation's OnSpellDamage resolves through simcore.BaseHandler.
func spellDefinitions() []simcore.SpellDef {
	return []simcore.SpellDef{
		{
			ID:           KillCommand,
			Name:         "kill_command",
			Cooldown:     killCommandCooldown,
			GCD:          standardGCD,
			Cost:         30,
			ResourceType: resource.Focus,
			APCoef:       2.0,
			School:       damage.Physical,
		},
		{
			ID:           CobraShot,
			Name:         "cobra_shot",
			GCD:          standardGCD,
			Cost:         35,
			ResourceType: resource.Focus,
			APCoef:       0.4, // calc_cobra_shot's coefficient, ported verbatim
			School:       damage.Physical,
		},
		{
			ID:           BarbedShot,
			Name:         "barbed_shot",
			MaxCharges:   barbedShotCharges,
			RechargeTime: barbedShotRecharge,
			GCD:          standardGCD,
			ResourceType: resource.Focus,
			School:       damage.Physical,
		},
		{
			ID:       BestialWrath,
			Name:     "bestial_wrath",
			Cooldown: bestialWrathCooldown,
			GCD:      standardGCD,
			School:   damage.Physical,
		},
		{
			ID:           KillShot,
			Name:         "kill_shot",
			Cooldown:     killShotCooldown,
			GCD:          standardGCD,
			Cost:         20,
			ResourceType: resource.Focus,
			APCoef:       3.5,
			School:       damage.Physical,
		},
	}
}

// barbedShotDotCoef is the Barbed Shot bleed's per-tick coefficient,
// applied against the snapshot taken when the DoT was applied (see
// OnAuraTick) rather than looked up through the registry, since the
// cast's own SpellDef carries no damage (apply_barbed_shot never deals a
// direct hit in the original handler).
var barbedShotDotCoef = damage.Coefficients{APCoef: 0.15}
