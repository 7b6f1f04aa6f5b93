package batch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/legacy3/wowlab-sub002/platform"
	"github.com/legacy3/wowlab-sub002/simcore"
)

// Config describes one batch run: the shared spec handler and spell/aura
// registry (read-only, safe to share across workers — per-iteration
// mutable state lives entirely in each worker's own SimState), the base
// sim configuration each iteration clones and reseeds from, and the
// iteration count (spec.md §4.8's "handler template, sim-config, player
// template, iteration count N").
type Config struct {
	Handler    simcore.SpecHandler
	Base       simcore.Config
	Registry   *simcore.Registry
	Iterations uint32

	// Workers overrides platform.OptimalConcurrency() when positive;
	// mainly useful for deterministic tests.
	Workers int

	// Progress, if non-nil, is pushed a completed iteration's DPS as
	// soon as that worker finishes. ProgressInterval throttles how often
	// ProgressFunc (if set) is invoked, not how often Progress itself is
	// updated — the RunningStats accumulation is cheap and always kept
	// current.
	Progress         *ProgressTracker
	ProgressFunc     func(*ProgressTracker)
	ProgressInterval time.Duration
}

// Runner runs a Config's iterations across a worker pool sized by
// platform.OptimalConcurrency (spec.md §4.10), each worker owning its own
// Simulation end to end.
type Runner struct {
	cfg Config
}

// NewRunner constructs a Runner from cfg.
func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg}
}

// Run executes every iteration, returning once all have completed, the
// supplied context is cancelled, or both. Workers check ctx between
// iterations and exit cooperatively; partial results (every iteration
// that finished before cancellation) are still reduced and returned
// (spec.md §4.8's "Backpressure and cancellation", §5's "Cancellation
// semantics"). Per-iteration run errors (simerr.DataMissing,
// simerr.InvariantViolated) do not abort the batch — they are collected
// and returned alongside whatever Results could be computed from the
// iterations that did succeed.
func (r *Runner) Run(ctx context.Context) (Results, error) {
	workers := r.cfg.Workers
	if workers <= 0 {
		workers = platform.OptimalConcurrency()
	}

	n := int(r.cfg.Iterations)
	values := make([]float64, n)
	completed := make([]bool, n)

	var errsMu sync.Mutex
	var errs error

	var cancelled atomic.Bool

	var limiter *rate.Limiter
	if r.cfg.ProgressFunc != nil {
		interval := r.cfg.ProgressInterval
		if interval <= 0 {
			interval = 250 * time.Millisecond
		}
		limiter = rate.NewLimiter(rate.Every(interval), 1)
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		if cancelled.Load() {
			break
		}
		i := i

		g.Go(func() error {
			select {
			case <-ctx.Done():
				cancelled.Store(true)
				return nil
			default:
			}

			cfg := r.cfg.Base
			cfg.Seed = r.cfg.Base.Seed ^ uint64(i)

			sim := simcore.New(r.cfg.Handler, cfg, r.cfg.Registry)
			if err := sim.Run(); err != nil {
				errsMu.Lock()
				errs = multierr.Append(errs, err)
				errsMu.Unlock()
				return nil
			}

			dps := sim.Result().DPS
			values[i] = dps
			completed[i] = true

			if r.cfg.Progress != nil {
				r.cfg.Progress.record(dps)
				if limiter != nil && limiter.Allow() {
					r.cfg.ProgressFunc(r.cfg.Progress)
				}
			}
			return nil
		})
	}

	_ = g.Wait()

	if r.cfg.ProgressFunc != nil && r.cfg.Progress != nil {
		r.cfg.ProgressFunc(r.cfg.Progress)
	}

	// Compact down to the iterations that actually completed, preserving
	// iteration order so DPSValues is independent of goroutine completion
	// order and thus of worker count (spec.md §5: reproducibility depends
	// only on base_seed and N, never on P).
	ordered := values[:0:0]
	for i, ok := range completed {
		if ok {
			ordered = append(ordered, values[i])
		}
	}

	return FromValues(ordered), errs
}
