package huntermbm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legacy3/wowlab-sub002/simcore"
	"github.com/legacy3/wowlab-sub002/simtime"
	"github.com/legacy3/wowlab-sub002/stats"
)

func testConfig(seed uint64) simcore.Config {
	return simcore.Config{
		Duration:    simtime.FromSeconds(60),
		Seed:        seed,
		TargetCount: 1,
		PlayerSpec:  "huntermbm",
		PlayerBase:  stats.Ratings{Crit: 500, Haste: 500},
	}
}

func newSim(t *testing.T, seed uint64) *simcore.Simulation {
	t.Helper()
	h, err := NewHandler()
	require.NoError(t, err)
	return simcore.New(h, testConfig(seed), h.Registry)
}

func TestHandlerRunsAFullIterationAndDealsDamage(t *testing.T) {
	sim := newSim(t, 1)
	require.NoError(t, sim.Run())

	result := sim.Result()
	require.Greater(t, result.Damage, 0.0)
	require.Greater(t, result.Casts, 0)
}

func TestHandlerIsDeterministicForAGivenSeed(t *testing.T) {
	first := newSim(t, 42)
	require.NoError(t, first.Run())

	second := newSim(t, 42)
	require.NoError(t, second.Run())

	require.Equal(t, first.Result(), second.Result())
}

func TestHandlerDiffersAcrossSeeds(t *testing.T) {
	a := newSim(t, 1)
	require.NoError(t, a.Run())

	b := newSim(t, 2)
	require.NoError(t, b.Run())

	require.NotEqual(t, a.Result().Damage, b.Result().Damage)
}

func TestResetReplaysTheSameIterationIdentically(t *testing.T) {
	sim := newSim(t, 7)
	require.NoError(t, sim.Run())
	first := sim.Result()

	sim.Reset(0)
	require.NoError(t, sim.Run())
	require.Equal(t, first, sim.Result())
}

func TestBarbedShotSpendsAChargeAndStartsRecharge(t *testing.T) {
	h, err := NewHandler()
	require.NoError(t, err)
	state := simcore.NewState(testConfig(1), h.Registry)
	h.InitPlayer(state)
	state.Reset(0)
	h.Init(state)

	require.Equal(t, 2, h.cooldownCharges(state, "barbed_shot"))
	require.NoError(t, h.CastSpell(state, BarbedShot, state.Enemies.Primary))
	require.Equal(t, 1, h.cooldownCharges(state, "barbed_shot"))
	require.Equal(t, barbedShotRecharge, state.Player.ChargedCooldowns[BarbedShot].NextChargeAt, "spending from a full pool should start the recharge timer")
	require.True(t, h.isSpellReady(state, "barbed_shot"), "one charge should still be available")
}

func TestBarbedShotAppliesDotAndFrenzy(t *testing.T) {
	h, err := NewHandler()
	require.NoError(t, err)
	state := simcore.NewState(testConfig(1), h.Registry)
	h.InitPlayer(state)
	state.Reset(0)
	h.Init(state)

	h.applyBarbedShot(state, state.Enemies.Primary)

	dot := state.Auras.Target(state.Enemies.Primary).Get(BarbedShotDoT)
	require.NotNil(t, dot)
	require.True(t, dot.IsActive(state.Now))
	require.NotNil(t, dot.Snapshot)

	frenzy := state.Auras.Player.Get(FrenzyBuff)
	require.NotNil(t, frenzy)
	require.EqualValues(t, 1, frenzy.Stacks)

	h.applyBarbedShot(state, state.Enemies.Primary)
	frenzy = state.Auras.Player.Get(FrenzyBuff)
	require.EqualValues(t, 2, frenzy.Stacks, "reapplying while active should stack Frenzy")
}

func TestGcdForFloorsAtGcdFloor(t *testing.T) {
	h, err := NewHandler()
	require.NoError(t, err)
	spell, ok := h.Registry.SpellByName("kill_command")
	require.True(t, ok)

	require.Equal(t, standardGCD, gcdFor(spell, 1.0))
	require.Equal(t, gcdFloor, gcdFor(spell, 10.0))
}

func TestCooldownRemainingReflectsCooldownGate(t *testing.T) {
	h, err := NewHandler()
	require.NoError(t, err)
	state := simcore.NewState(testConfig(1), h.Registry)
	h.InitPlayer(state)
	state.Reset(0)
	h.Init(state)

	require.NoError(t, h.CastSpell(state, BestialWrath, state.Enemies.Primary))
	require.False(t, h.isSpellReady(state, "bestial_wrath"))
	require.Greater(t, h.cooldownRemaining(state, "bestial_wrath"), 0.0)
}
