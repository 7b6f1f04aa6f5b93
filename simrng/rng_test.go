package simrng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legacy3/wowlab-sub002/simrng"
)

func TestReseedWithSameSeedReproducesSequence(t *testing.T) {
	a := simrng.New(12345)
	b := simrng.New(12345)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.NextU64(), b.NextU64())
	}
}

func TestSplitYieldsIndependentStreams(t *testing.T) {
	s0 := simrng.Split(12345, 0)
	s1 := simrng.Split(12345, 1)
	require.NotEqual(t, s0, s1)

	a := simrng.New(s0)
	b := simrng.New(s1)

	same := true
	for i := 0; i < 20; i++ {
		if a.NextU64() != b.NextU64() {
			same = false
			break
		}
	}
	require.False(t, same, "split streams should diverge")
}

func TestZeroSeedIsRemapped(t *testing.T) {
	r := simrng.New(0)
	require.NotEqual(t, uint64(0), r.NextU64())
}

func TestNextFloat32IsWithinUnitRange(t *testing.T) {
	r := simrng.New(42)
	for i := 0; i < 1000; i++ {
		f := r.NextFloat32()
		require.GreaterOrEqual(t, f, float32(0))
		require.Less(t, f, float32(1))
	}
}

func TestRollClampsProbability(t *testing.T) {
	r := simrng.New(1)
	require.False(t, r.Roll(0))
	require.True(t, r.Roll(1))
	require.True(t, r.Roll(2))
	require.False(t, r.Roll(-1))
}

func TestRangeReturnsWithinBounds(t *testing.T) {
	r := simrng.New(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(2, 5)
		require.GreaterOrEqual(t, v, float32(2))
		require.Less(t, v, float32(5))
	}
}

func TestRangeDegenerateReturnsLo(t *testing.T) {
	r := simrng.New(7)
	require.Equal(t, float32(3), r.Range(3, 3))
	require.Equal(t, float32(5), r.Range(5, 1))
}
