package simtime_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legacy3/wowlab-sub002/simtime"
)

func TestFromSecondsClampsNegativeToZero(t *testing.T) {
	require.Equal(t, simtime.Zero, simtime.FromSeconds(-5))
	require.Equal(t, simtime.Zero, simtime.FromSeconds(0))
}

func TestFromSecondsRoundTripsThroughMillis(t *testing.T) {
	require.Equal(t, simtime.Time(1500), simtime.FromSeconds(1.5))
	require.InDelta(t, 1.5, simtime.FromSeconds(1.5).Seconds(), 1e-9)
}

func TestAddSaturatesAtMax(t *testing.T) {
	require.Equal(t, simtime.Max, simtime.Max.Add(simtime.FromMillis(1)))
	require.Equal(t, simtime.Time(300), simtime.FromMillis(100).Add(simtime.FromMillis(200)))
}

func TestSubSaturatesAtZeroNeverNegative(t *testing.T) {
	require.Equal(t, simtime.Zero, simtime.FromMillis(100).Sub(simtime.FromMillis(200)))
	require.Equal(t, simtime.FromMillis(50), simtime.FromMillis(200).Sub(simtime.FromMillis(150)))
}

func TestBeforeAfter(t *testing.T) {
	a, b := simtime.FromMillis(10), simtime.FromMillis(20)
	require.True(t, a.Before(b))
	require.False(t, b.Before(a))
	require.True(t, b.After(a))
	require.False(t, a.After(b))
}
