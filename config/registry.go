package config

import (
	"fmt"

	"github.com/legacy3/wowlab-sub002/damage"
	"github.com/legacy3/wowlab-sub002/resource"
	"github.com/legacy3/wowlab-sub002/simcore"
	"github.com/legacy3/wowlab-sub002/simerr"
	"github.com/legacy3/wowlab-sub002/simtime"
)

func simtimeFromSeconds(seconds float64) simtime.Time { return simtime.FromSeconds(seconds) }

var resourceTypes = map[string]resource.Type{
	"focus":       resource.Focus,
	"energy":      resource.Energy,
	"rage":        resource.Rage,
	"runic_power": resource.RunicPower,
	"mana":        resource.Mana,
	"fury":        resource.Fury,
	"chi":         resource.Chi,
	"holy_power":  resource.HolyPower,
	"combo":       resource.Combo,
	"soul_shard":  resource.SoulShard,
}

var schools = map[string]damage.School{
	"physical": damage.Physical,
	"holy":     damage.Holy,
	"fire":     damage.Fire,
	"nature":   damage.Nature,
	"frost":    damage.Frost,
	"shadow":   damage.Shadow,
	"arcane":   damage.Arcane,
	"chaos":    damage.Chaos,
}

// BuildRegistry converts the externally-loaded spell/aura definitions
// into a simcore.Registry, resolving the resource-type and school name
// strings to their enum values. Run once before any iteration, never in
// the hot loop (spec.md §6: "populated before simulation begins").
func BuildRegistry(cfg *SimConfig) (*simcore.Registry, error) {
	spells := make([]simcore.SpellDef, 0, len(cfg.Spells))
	for _, s := range cfg.Spells {
		rt, err := resolveResourceType(s.ResourceType)
		if err != nil {
			return nil, fmt.Errorf("spell %q: %w", s.Name, err)
		}
		school, err := resolveSchool(s.School)
		if err != nil {
			return nil, fmt.Errorf("spell %q: %w", s.Name, err)
		}

		spells = append(spells, simcore.SpellDef{
			ID:           s.ID,
			Name:         s.Name,
			Cooldown:     simtimeFromSeconds(s.Cooldown),
			HastedCD:     s.HastedCD,
			MaxCharges:   s.Charges,
			RechargeTime: simtimeFromSeconds(s.Cooldown),
			GCD:          simtimeFromSeconds(s.GCD),
			CastTime:     simtimeFromSeconds(s.CastTime),
			IsChannel:    s.IsChannel,
			Cost:         s.Cost,
			ResourceType: rt,
			BaseMin:      s.BaseMin,
			BaseMax:      s.BaseMax,
			APCoef:       s.APCoef,
			SPCoef:       s.SPCoef,
			School:       school,
		})
	}

	auras := make([]simcore.AuraDef, 0, len(cfg.Auras))
	for _, a := range cfg.Auras {
		auras = append(auras, simcore.AuraDef{
			ID:           a.ID,
			Name:         a.Name,
			Duration:     simtimeFromSeconds(a.Duration),
			MaxStacks:    a.MaxStacks,
			IsDebuff:     a.IsDebuff,
			CanPandemic:  a.CanPandemic,
			Refreshable:  a.Refreshable,
			IsPeriodic:   a.TickInterval > 0,
			TickInterval: simtimeFromSeconds(a.TickInterval),
		})
	}

	return simcore.NewRegistry(spells, auras), nil
}

func resolveResourceType(name string) (resource.Type, error) {
	if name == "" {
		return resource.Focus, nil
	}
	rt, ok := resourceTypes[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown resource_type %q", simerr.ConfigInvalid, name)
	}
	return rt, nil
}

func resolveSchool(name string) (damage.School, error) {
	if name == "" {
		return damage.Physical, nil
	}
	s, ok := schools[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown school %q", simerr.ConfigInvalid, name)
	}
	return s, nil
}
