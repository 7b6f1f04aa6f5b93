package batch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/legacy3/wowlab-sub002/rotation"
	"github.com/legacy3/wowlab-sub002/simcore"
	"github.com/legacy3/wowlab-sub002/simtime"
	"github.com/legacy3/wowlab-sub002/stats"
)

// noopHandler is the smallest SpecHandler that lets a Simulation run to
// completion: it never casts, so the only events it ever dispatches are
// the built-in SimEnd/ResourceTick/GcdEnd chain.
type noopHandler struct{}

func (noopHandler) Init(*simcore.SimState)                         {}
func (noopHandler) InitPlayer(*simcore.SimState)                   {}
func (noopHandler) OnGCD(*simcore.SimState)                        {}
func (noopHandler) OnCastComplete(*simcore.SimState, int, int)     {}
func (noopHandler) OnSpellDamage(*simcore.SimState, int, int, int) {}
func (noopHandler) OnAutoAttack(*simcore.SimState, int)            {}
func (noopHandler) OnPetAttack(*simcore.SimState, int)             {}
func (noopHandler) OnAuraTick(*simcore.SimState, int, int)         {}
func (noopHandler) OnAuraApply(*simcore.SimState, int, int)        {}
func (noopHandler) OnAuraExpire(*simcore.SimState, int, int)       {}
func (noopHandler) CastSpell(*simcore.SimState, int, int) error    { return nil }
func (noopHandler) NextAction(*simcore.SimState) rotation.Decision { return rotation.Decision{} }
func (noopHandler) SpellNameToID(string) (int, bool)               { return 0, false }

func testConfig(iterations uint32) Config {
	return Config{
		Handler: noopHandler{},
		Base: simcore.Config{
			Duration:    simtime.FromSeconds(5),
			Seed:        1234,
			TargetCount: 1,
			PlayerSpec:  "test",
			PlayerBase:  stats.Ratings{},
		},
		Registry:   simcore.NewRegistry(nil, nil),
		Iterations: iterations,
		Workers:    2,
	}
}

func TestRunnerCompletesAllIterations(t *testing.T) {
	r := NewRunner(testConfig(10))
	results, err := r.Run(context.Background())

	require.NoError(t, err)
	require.EqualValues(t, 10, results.Iterations)
	require.Len(t, results.DPSValues, 10)
	require.Contains(t, results.Percentiles, 50)
}

func TestRunnerDeterministicAcrossWorkerCounts(t *testing.T) {
	cfg1 := testConfig(8)
	cfg1.Workers = 1
	cfg2 := testConfig(8)
	cfg2.Workers = 4

	r1, err1 := NewRunner(cfg1).Run(context.Background())
	r2, err2 := NewRunner(cfg2).Run(context.Background())

	require.NoError(t, err1)
	require.NoError(t, err2)
	require.InDelta(t, r1.MeanDPS, r2.MeanDPS, 1e-9)
}

func TestRunnerRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(testConfig(50))
	results, err := r.Run(ctx)

	require.NoError(t, err)
	require.Less(t, int(results.Iterations), 50)
}

func TestRunnerZeroIterationsReturnsEmptyResultsWithoutPanic(t *testing.T) {
	r := NewRunner(testConfig(0))
	results, err := r.Run(context.Background())

	require.NoError(t, err)
	require.EqualValues(t, 0, results.Iterations)
	require.Empty(t, results.DPSValues)
	require.Empty(t, results.Percentiles)
}

func TestRunningStatsWelfordMatchesBatch(t *testing.T) {
	stats := NewRunningStats()
	for _, v := range []float64{10, 20, 30} {
		stats.Push(v)
	}
	require.InDelta(t, 20.0, stats.Mean(), 1e-9)
	require.InDelta(t, 10.0, stats.StdDev(), 1e-9)
	require.Equal(t, 10.0, stats.Min())
	require.Equal(t, 30.0, stats.Max())
}

func TestProgressTrackerReportsPercent(t *testing.T) {
	p := NewProgressTracker(4, nil)
	p.record(100)
	p.record(200)
	require.InDelta(t, 50.0, p.Percent(), 0.01)
	require.InDelta(t, 150.0, p.RunningMean(), 1e-9)
	require.True(t, p.Elapsed() >= 0)
	require.True(t, time.Since(time.Now().Add(-time.Second)) > 0)
}
