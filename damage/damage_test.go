package damage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legacy3/wowlab-sub002/simrng"
)

func TestCalculateNonCritPhysicalAppliesArmorMitigation(t *testing.T) {
	coef := Coefficients{Base: 100, APCoef: 0.5}
	mult := NewMultipliers()
	rng := simrng.New(1)

	k := ArmorConstant(73, true)
	armor := float32(11300)
	mitigation := ArmorMitigation(armor, k)

	result := Calculate(coef, 2000, 0, mult, Physical, mitigation, 0, rng)
	require.False(t, result.IsCrit)
	require.InDelta(t, 1100.0, float64(result.Raw), 1e-4)
	require.Less(t, result.Final, result.Raw)
}

func TestCalculateAlwaysCritAppliesCritMultiplier(t *testing.T) {
	coef := Coefficients{Base: 100}
	mult := NewMultipliers()
	rng := simrng.New(1)

	result := Calculate(coef, 0, 0, mult, Holy, 0, 1.0, rng)
	require.True(t, result.IsCrit)
	require.InDelta(t, 200.0, float64(result.Final), 1e-4)
}

func TestBatchMatchesScalarPerLane(t *testing.T) {
	base := Splat(100)
	ap := Lanes{1000, 1100, 1200, 1300, 1400, 1500, 1600, 1700}
	apCoef := Splat(0.5)
	mult := Splat(1.0)

	out := CalculateBatch(base, ap, apCoef, mult)
	require.InDelta(t, 600.0, float64(out[0]), 1e-4)
	require.InDelta(t, 950.0, float64(out[7]), 1e-4)
}

func TestApplyCritBatchOnlyAffectsMaskedLanes(t *testing.T) {
	damage := Splat(100)
	critMult := Splat(2.0)
	mask := [8]bool{true, false, true}

	out := ApplyCritBatch(damage, critMult, mask)
	require.Equal(t, float32(200), out[0])
	require.Equal(t, float32(100), out[1])
	require.Equal(t, float32(200), out[2])
}

func TestHorizontalSum(t *testing.T) {
	v := Lanes{1, 2, 3, 4, 5, 6, 7, 8}
	require.Equal(t, float32(36), HorizontalSum(v))
}
