package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validConfig() SimConfig {
	return SimConfig{
		Player: PlayerConfig{Spec: "hunter_bm"},
		Target: TargetConfig{Count: 1, MaxHealth: 1_000_000, Armor: 5000},
		Spells: []SpellConfig{
			{ID: 1, Name: "Cobra Shot", BaseMin: 10, BaseMax: 20, ResourceType: "focus", School: "physical"},
		},
		DurationSec: 300,
		Iterations:  1000,
	}
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, Validate(&cfg))
}

func TestValidateRejectsZeroDuration(t *testing.T) {
	cfg := validConfig()
	cfg.DurationSec = 0
	require.Error(t, Validate(&cfg))
}

func TestValidateRejectsZeroIterations(t *testing.T) {
	cfg := validConfig()
	cfg.Iterations = 0
	require.Error(t, Validate(&cfg))
}

func TestValidateRejectsInvertedDamageRange(t *testing.T) {
	cfg := validConfig()
	cfg.Spells[0].BaseMin = 50
	cfg.Spells[0].BaseMax = 10
	require.Error(t, Validate(&cfg))
}

func TestValidateRejectsUnknownResourceType(t *testing.T) {
	cfg := validConfig()
	cfg.Spells[0].ResourceType = "not_a_resource"
	require.Error(t, Validate(&cfg))
}

func TestBuildRegistryResolvesSpellAndAura(t *testing.T) {
	cfg := validConfig()
	cfg.Auras = []AuraConfig{{ID: 2, Name: "Frenzy", Duration: 8, MaxStacks: 3, CanPandemic: true, Refreshable: true}}

	reg, err := BuildRegistry(&cfg)
	require.NoError(t, err)

	spell, ok := reg.SpellByName("Cobra Shot")
	require.True(t, ok)
	require.Equal(t, 1, spell.ID)

	aura, ok := reg.AuraByName("Frenzy")
	require.True(t, ok)
	require.EqualValues(t, 3, aura.MaxStacks)
}

func TestBuildRegistryRejectsUnknownSchool(t *testing.T) {
	cfg := validConfig()
	cfg.Spells[0].School = "necrotic"

	_, err := BuildRegistry(&cfg)
	require.Error(t, err)
}

func TestToSimCoreConfigCarriesPlayerRatings(t *testing.T) {
	cfg := validConfig()
	cfg.Player.Haste = 1500
	cfg.Seed = 42

	sc := cfg.ToSimCoreConfig()
	require.Equal(t, uint64(42), sc.Seed)
	require.Equal(t, float32(1500), sc.PlayerBase.Haste)
	require.Equal(t, 1, sc.TargetCount)
}
