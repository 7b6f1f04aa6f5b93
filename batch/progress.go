package batch

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ProgressTracker exposes live progress during a running batch, grounded
// on original_source/crates/engine/src/sim/batch.rs's ExactProgress: an
// atomic completion counter plus a RunningStats for thread-safe online
// accumulation, readable from any goroutine without blocking a worker.
type ProgressTracker struct {
	completed atomic.Uint32
	total     uint32
	stats     *RunningStats
	start     time.Time

	metrics *progressMetrics
}

// NewProgressTracker constructs a tracker for a batch of the given size.
// If reg is non-nil, completed-iteration and running-mean-DPS gauges are
// registered against it so an embedder can expose live batch progress
// alongside its own metrics.
func NewProgressTracker(total uint32, reg prometheus.Registerer) *ProgressTracker {
	p := &ProgressTracker{total: total, stats: NewRunningStats(), start: time.Now()}
	if reg != nil {
		p.metrics = newProgressMetrics(reg)
	}
	return p
}

// record accumulates one completed iteration's DPS.
func (p *ProgressTracker) record(dps float64) {
	p.completed.Add(1)
	p.stats.Push(dps)
	if p.metrics != nil {
		p.metrics.completed.Inc()
		p.metrics.meanDPS.Set(p.stats.Mean())
	}
}

// Completed returns the number of iterations finished so far.
func (p *ProgressTracker) Completed() uint32 { return p.completed.Load() }

// Total returns the batch's configured iteration count.
func (p *ProgressTracker) Total() uint32 { return p.total }

// Percent returns completion percentage, zero if Total is zero.
func (p *ProgressTracker) Percent() float32 {
	if p.total == 0 {
		return 0
	}
	return float32(p.Completed()) / float32(p.total) * 100
}

// Throughput returns completed iterations per second of wall-clock time.
func (p *ProgressTracker) Throughput() float64 {
	elapsed := time.Since(p.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(p.Completed()) / elapsed
}

// RunningMean returns the running mean DPS (Welford's algorithm).
func (p *ProgressTracker) RunningMean() float64 { return p.stats.Mean() }

// RunningStdDev returns the running standard deviation.
func (p *ProgressTracker) RunningStdDev() float64 { return p.stats.StdDev() }

// CurrentMin returns the running minimum DPS observed so far.
func (p *ProgressTracker) CurrentMin() float64 { return p.stats.Min() }

// CurrentMax returns the running maximum DPS observed so far.
func (p *ProgressTracker) CurrentMax() float64 { return p.stats.Max() }

// Elapsed returns wall-clock time since the tracker was created.
func (p *ProgressTracker) Elapsed() time.Duration { return time.Since(p.start) }

type progressMetrics struct {
	completed prometheus.Counter
	meanDPS   prometheus.Gauge
}

func newProgressMetrics(reg prometheus.Registerer) *progressMetrics {
	m := &progressMetrics{
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wowlabsim_batch_iterations_completed_total",
			Help: "Number of batch iterations completed so far.",
		}),
		meanDPS: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wowlabsim_batch_running_mean_dps",
			Help: "Running mean DPS across completed iterations (Welford's algorithm).",
		}),
	}
	reg.MustRegister(m.completed, m.meanDPS)
	return m
}
