package cooldown

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legacy3/wowlab-sub002/simtime"
)

func TestChargesFractionalBoundary(t *testing.T) {
	c := NewCharged(2, simtime.FromSeconds(12))

	ok := c.Spend(simtime.Zero, 1.0)
	require.True(t, ok)
	ok = c.Spend(simtime.Zero, 1.0)
	require.True(t, ok)

	require.Equal(t, uint8(0), c.CurrentCharges)
	require.False(t, c.HasCharge())

	at6 := c.ChargesFractional(simtime.FromSeconds(6))
	require.InDelta(t, 0.5, at6, 0.01)

	gained := c.CheckRecharge(simtime.FromSeconds(12), 1.0)
	require.True(t, gained)
	require.True(t, c.HasCharge())
}

func TestGainChargeWhileRechargingDoesNotCancelTimer(t *testing.T) {
	c := NewCharged(2, simtime.FromSeconds(12))
	c.Spend(simtime.Zero, 1.0)
	c.Spend(simtime.Zero, 1.0)

	before := c.NextChargeAt
	c.GainCharge(simtime.FromSeconds(1), 1.0)
	require.Equal(t, uint8(1), c.CurrentCharges)
	require.Equal(t, before, c.NextChargeAt, "timer must not reset on proc-gained charge")
}

func TestGainChargeAtFullSetsNextChargeToMax(t *testing.T) {
	c := NewCharged(2, simtime.FromSeconds(12))
	c.Spend(simtime.Zero, 1.0)
	c.GainCharge(simtime.FromSeconds(1), 1.0)
	require.True(t, c.IsFull())
	require.Equal(t, simtime.Max, c.NextChargeAt)
}
