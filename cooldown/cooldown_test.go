package cooldown_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legacy3/wowlab-sub002/cooldown"
	"github.com/legacy3/wowlab-sub002/simtime"
)

func TestStartHastedScalesDuration(t *testing.T) {
	c := cooldown.New(simtime.FromSeconds(10)).WithHaste()
	c.Start(simtime.Zero, 2.0)
	require.Equal(t, simtime.FromSeconds(5), c.ReadyAt)
}

func TestStartUnhastedIgnoresHaste(t *testing.T) {
	c := cooldown.New(simtime.FromSeconds(10))
	c.Start(simtime.Zero, 2.0)
	require.Equal(t, simtime.FromSeconds(10), c.ReadyAt)
}

func TestIsReadyMatchesReadyAt(t *testing.T) {
	c := cooldown.New(simtime.FromSeconds(10))
	c.Start(simtime.Zero, 1.0)

	require.False(t, c.IsReady(simtime.FromSeconds(9)))
	require.True(t, c.IsReady(simtime.FromSeconds(10)))
	require.True(t, c.IsReady(simtime.FromSeconds(11)))
}

func TestRemainingIsZeroOnceReady(t *testing.T) {
	c := cooldown.New(simtime.FromSeconds(10))
	c.Start(simtime.Zero, 1.0)

	require.Equal(t, simtime.FromSeconds(4), c.Remaining(simtime.FromSeconds(6)))
	require.Equal(t, simtime.Zero, c.Remaining(simtime.FromSeconds(10)))
	require.Equal(t, simtime.Zero, c.Remaining(simtime.FromSeconds(20)))
}

func TestReduceNeverPullsBeforeNow(t *testing.T) {
	c := cooldown.New(simtime.FromSeconds(10))
	c.Start(simtime.Zero, 1.0)

	c.Reduce(simtime.FromSeconds(1), simtime.FromSeconds(3))
	require.Equal(t, simtime.FromSeconds(7), c.ReadyAt)

	c.Reduce(simtime.FromSeconds(7), simtime.FromSeconds(100))
	require.Equal(t, simtime.FromSeconds(7), c.ReadyAt)
}

func TestResetMarksImmediatelyReady(t *testing.T) {
	c := cooldown.New(simtime.FromSeconds(10))
	c.Start(simtime.Zero, 1.0)
	c.Reset()
	require.True(t, c.IsReady(simtime.Zero))
}
