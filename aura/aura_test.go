package aura

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legacy3/wowlab-sub002/simtime"
)

func TestPandemicRefreshCarriesOverCappedAt30Percent(t *testing.T) {
	var ta TargetAuras
	base := simtime.FromSeconds(10)

	ta.Apply(New(1, 0, base, simtime.Zero, Flags{CanPandemic: true, Refreshable: true}), simtime.Zero)

	at7 := simtime.FromSeconds(7)
	ta.Apply(New(1, 0, base, at7, Flags{CanPandemic: true, Refreshable: true}), at7)

	inst := ta.Get(1)
	require.NotNil(t, inst)
	// remaining at t=7 was 3s; min(3, 0.3*10=3) = 3; expires = 7+10+3 = 20
	require.Equal(t, simtime.FromSeconds(20), inst.ExpiresAt)
}

func TestNonRefreshableReapplyIsIgnored(t *testing.T) {
	var ta TargetAuras
	base := simtime.FromSeconds(10)
	ta.Apply(New(1, 0, base, simtime.Zero, Flags{}), simtime.Zero)
	first := *ta.Get(1)

	ta.Apply(New(1, 0, base, simtime.FromSeconds(5), Flags{}), simtime.FromSeconds(5))
	second := ta.Get(1)

	require.Equal(t, first.ExpiresAt, second.ExpiresAt)
	require.Equal(t, uint8(1), second.Stacks)
}

func TestStacksClampAtMax(t *testing.T) {
	var ta TargetAuras
	base := simtime.FromSeconds(10)
	a := New(1, 0, base, simtime.Zero, Flags{Refreshable: true}).WithStacks(3)
	ta.Apply(a, simtime.Zero)
	for i := 0; i < 5; i++ {
		ta.Apply(New(1, 0, base, simtime.Zero, Flags{Refreshable: true}).WithStacks(3), simtime.Zero)
	}
	require.Equal(t, uint8(3), ta.Get(1).Stacks)
}
