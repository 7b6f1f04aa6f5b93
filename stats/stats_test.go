package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRatingToPercentBelowThresholdIsLinear(t *testing.T) {
	// 180 rating = 1% pre-DR, well under the 30% DR threshold.
	pct := RatingToPercent(180, Crit)
	require.InDelta(t, 1.0, float64(pct), 1e-6)
}

func TestRatingToPercentAboveThresholdDiminishes(t *testing.T) {
	// Push far past 30% pre-DR and confirm the curve bends below linear.
	rawEquivalent := 50.0 * baseRating80
	pct := RatingToPercent(float32(rawEquivalent), Haste)
	require.Less(t, float64(pct), 50.0)
	require.Greater(t, float64(pct), 30.0)
}

func TestTertiaryStatsHaveNoDiminishingReturns(t *testing.T) {
	rawEquivalent := 80.0 * baseRating80
	pct := RatingToPercent(float32(rawEquivalent), Leech)
	require.InDelta(t, 80.0, float64(pct), 1e-4)
}

func TestCacheRecomputesOnlyWhenDirty(t *testing.T) {
	c := NewCache(Ratings{Crit: 180})
	first := c.Snapshot()
	require.False(t, c.dirty)

	// No invalidation: mutating base directly (bypassing SetBase) should
	// not be reflected until something marks the cache dirty again.
	c.base.Crit = 360
	second := c.Snapshot()
	require.Equal(t, first, second)

	c.Invalidate()
	third := c.Snapshot()
	require.NotEqual(t, first.CritChance, third.CritChance)
}

func TestAddBonusLayersOnTopOfRating(t *testing.T) {
	c := NewCache(Ratings{Haste: 180})
	c.AddBonus(Haste, 10)
	d := c.Snapshot()
	require.InDelta(t, 1.11, float64(d.HasteMult), 1e-4)
}
