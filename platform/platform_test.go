package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimalConcurrencyIsAtLeastOne(t *testing.T) {
	require.GreaterOrEqual(t, OptimalConcurrency(), 1)
}
