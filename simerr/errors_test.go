package simerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legacy3/wowlab-sub002/simerr"
)

func TestWrappedKindSurvivesErrorsIs(t *testing.T) {
	err := fmt.Errorf("%w: spell 123 not found", simerr.DataMissing)

	require.True(t, errors.Is(err, simerr.DataMissing))
	require.False(t, errors.Is(err, simerr.InvariantViolated))
	require.Contains(t, err.Error(), "spell 123 not found")
}

func TestDistinctKindsAreDistinguishable(t *testing.T) {
	kinds := []simerr.Kind{
		simerr.ConfigInvalid,
		simerr.RotationCompile,
		simerr.DataMissing,
		simerr.CastRejected,
		simerr.InvariantViolated,
		simerr.ProcRejected,
		simerr.TransientResolverError,
	}
	for i, k := range kinds {
		for j, other := range kinds {
			if i == j {
				continue
			}
			require.False(t, errors.Is(k, other), "%v should not match %v", k, other)
		}
	}
}
