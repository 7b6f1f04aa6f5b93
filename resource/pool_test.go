package resource_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legacy3/wowlab-sub002/resource"
)

func TestSpendRejectsInsufficientResourceWithoutMutating(t *testing.T) {
	p := resource.New(resource.Focus, 100)
	p.Set(30)

	require.False(t, p.Spend(50))
	require.Equal(t, float32(30), p.Current)

	require.True(t, p.Spend(30))
	require.Equal(t, float32(0), p.Current)
}

func TestGainClampsAtMax(t *testing.T) {
	p := resource.NewEmpty(resource.Energy, 100)
	p.Gain(150)
	require.Equal(t, float32(100), p.Current)
}

func TestSetClampsIntoBounds(t *testing.T) {
	p := resource.New(resource.Mana, 100)
	p.Set(-10)
	require.Equal(t, float32(0), p.Current)
	p.Set(1000)
	require.Equal(t, float32(100), p.Current)
}

func TestSetMaxClampsCurrentDown(t *testing.T) {
	p := resource.New(resource.Rage, 100)
	p.SetMax(50)
	require.Equal(t, float32(50), p.Current)
}

func TestTickOnlyAppliesWhenRegenEnabled(t *testing.T) {
	p := resource.NewEmpty(resource.Focus, 100)
	p.Tick(1, 1)
	require.Equal(t, float32(0), p.Current)

	p = p.WithRegen(10)
	p.Tick(1, 1.5)
	require.Equal(t, float32(15), p.Current)
}

func TestPercentAndDeficit(t *testing.T) {
	p := resource.New(resource.Focus, 100)
	p.Set(25)
	require.Equal(t, float32(0.25), p.Percent())
	require.Equal(t, float32(75), p.Deficit())
}

func TestUnitGetFindsTrackedPool(t *testing.T) {
	primary := resource.New(resource.Focus, 100)
	u := resource.Unit{Primary: &primary}

	got, ok := u.Get(resource.Focus)
	require.True(t, ok)
	require.Same(t, &primary, got)

	_, ok = u.Get(resource.Mana)
	require.False(t, ok)
}
