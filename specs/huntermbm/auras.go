package huntermbm

import "github.com/legacy3/wowlab-sub002/simcore"

// auraDefinitions mirrors handler.rs's aura_definitions(): the buffs and
// DoT this handler applies, by id.
func auraDefinitions() []simcore.AuraDef {
	return []simcore.AuraDef{
		{
			ID:       BestialWrathBuff,
			Name:     "bestial_wrath",
			Duration: bestialWrathBuffDuration,
		},
		{
			ID:          FrenzyBuff,
			Name:        "frenzy",
			Duration:    frenzyDuration,
			MaxStacks:   frenzyMaxStacks,
			Refreshable: true,
		},
		{
			ID:           BarbedShotDoT,
			Name:         "barbed_shot_dot",
			Duration:     barbedShotDotDuration,
			IsDebuff:     true,
			CanPandemic:  true,
			Refreshable:  true,
			IsPeriodic:   true,
			TickInterval: barbedShotDotTick,
		},
	}
}
