package actor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legacy3/wowlab-sub002/simtime"
	"github.com/legacy3/wowlab-sub002/stats"
)

func TestPlayerGCDGating(t *testing.T) {
	p := NewPlayer(0, "test", stats.Ratings{})
	p.StartGCD(simtime.Zero, simtime.FromSeconds(1.5))

	require.True(t, p.OnGCD(simtime.FromSeconds(1)))
	require.False(t, p.OnGCD(simtime.FromSeconds(1.5)))
	require.False(t, p.CanCast(simtime.FromSeconds(1)))
	require.True(t, p.CanCast(simtime.FromSeconds(1.5)))
}

func TestPlayerResetClearsCastingStateNotGear(t *testing.T) {
	p := NewPlayer(0, "test", stats.Ratings{Crit: 500})
	p.StartGCD(simtime.Zero, simtime.FromSeconds(1.5))
	p.StartCast(simtime.Zero, simtime.FromSeconds(2))
	p.IsMoving = true

	p.Reset()

	require.False(t, p.OnGCD(simtime.Zero))
	require.False(t, p.IsCasting(simtime.Zero))
	require.False(t, p.IsMoving)
	require.Greater(t, p.Stats.Snapshot().CritChance, float32(0))
}

func TestEnemyTimeToDieAndTakeDamage(t *testing.T) {
	e := NewEnemy(0, "Dummy")
	e.MaxHealth = 1000
	e.CurrentHealth = 1000

	require.Equal(t, simtime.FromSeconds(10), e.TimeToDie(100))

	e.TakeDamage(400)
	require.Equal(t, float32(600), e.CurrentHealth)
	require.True(t, e.IsAlive())

	e.TakeDamage(10000)
	require.Equal(t, float32(0), e.CurrentHealth)
	require.False(t, e.IsAlive())
}

func TestEnemyArmorMitigationBossBump(t *testing.T) {
	boss := NewEnemy(0, "Boss")
	trash := Trash(1)
	trash.Armor = boss.Armor

	bossMit := boss.ArmorMitigation(73)
	trashMit := trash.ArmorMitigation(73)
	require.Less(t, bossMit, trashMit)
}

func TestManagerAliveCountAndAverage(t *testing.T) {
	m := WithBosses(2)
	m.Get(0).TakeDamage(m.Get(0).MaxHealth)
	require.Equal(t, 1, m.AliveCount())
	require.InDelta(t, 1.0, float64(m.AverageHealthPercent()), 1e-6)
}

func TestPetValidityAndExpiry(t *testing.T) {
	p := Temporary(1, 0, "Spirit Wolf", simtime.FromSeconds(10), simtime.Zero)
	require.True(t, p.IsValid(simtime.FromSeconds(5)))
	require.False(t, p.IsValid(simtime.FromSeconds(10)))
}

func TestPetManagerResetDropsNonPermanent(t *testing.T) {
	m := NewManager()
	permID := m.Summon(0, Permanent, "Ghoul")
	m.SummonTemporary(0, "Gargoyle", simtime.FromSeconds(10), simtime.Zero)

	require.Equal(t, 2, len(m.pets))
	m.Reset()
	require.Equal(t, 1, len(m.pets))
	require.NotNil(t, m.Get(permID))
}
