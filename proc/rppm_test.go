package proc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legacy3/wowlab-sub002/simrng"
	"github.com/legacy3/wowlab-sub002/simtime"
)

func TestRppmSuccessResetsBlpToOne(t *testing.T) {
	r := NewRppm(1, 60) // 1 proc/sec at baseline haste, basically guaranteed
	rng := simrng.New(1)

	r.updateBlp(2.0) // force BLP up as if a failure happened
	require.Greater(t, r.BlpMultiplier, float32(1.0))

	ok := r.Attempt(simtime.FromSeconds(10), 1.0, 0, rng)
	require.True(t, ok)
	require.Equal(t, float32(1.0), r.BlpMultiplier)
}

func TestRppmIcdGatesAttemptEntirely(t *testing.T) {
	r := NewRppm(1, 600).WithIcd(simtime.FromSeconds(5))
	rng := simrng.New(1)

	require.True(t, r.Attempt(simtime.Zero, 1.0, 0, rng))
	blpAfterProc := r.BlpMultiplier
	lastAttempt := r.LastAttempt

	// Within the ICD window: no roll, no bookkeeping change at all.
	ok := r.Attempt(simtime.FromSeconds(2), 1.0, 0, rng)
	require.False(t, ok)
	require.Equal(t, blpAfterProc, r.BlpMultiplier)
	require.Equal(t, lastAttempt, r.LastAttempt)
}

func TestRppmBlpGrowsOnFailureCappedAt100(t *testing.T) {
	r := NewRppm(1, 1)
	r.BlpMultiplier = 99
	r.updateBlp(10)
	require.Equal(t, float32(100), r.BlpMultiplier)
}

func TestRppmDeltaSinceFlooredAtPointOne(t *testing.T) {
	r := NewRppm(1, 60)
	r.LastAttempt = simtime.Zero
	r.HasLastAttempt = true

	chance := r.ProcChance(simtime.FromMillis(10), 1.0, 0) // 10ms since last attempt
	expected := r.EffectivePPM(1.0, 0) * 0.1 / 60.0
	require.InDelta(t, float64(expected), float64(chance), 1e-6)
}

func TestFixedProcRespectsIcd(t *testing.T) {
	f := NewFixed(1, 1.0).WithIcd(simtime.FromSeconds(5))
	rng := simrng.New(1)

	require.True(t, f.Attempt(simtime.Zero, rng))
	require.False(t, f.Attempt(simtime.FromSeconds(1), rng))
	require.True(t, f.Attempt(simtime.FromSeconds(5), rng))
}
