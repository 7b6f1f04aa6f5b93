// Package batch runs many simulation iterations in parallel and reduces
// their DPS values into aggregate statistics, grounded on
// original_source/crates/engine/src/sim/batch.rs's BatchRunner and
// ExactProgress (rayon + parking_lot in the original; Go's errgroup and a
// plain mutex here).
package batch

import (
	"math"
	"sort"
	"sync"
)

// PercentileLevels is the fixed set of percentiles spec.md §4.8 names.
var PercentileLevels = []int{25, 50, 75, 95, 99}

// RunningStats accumulates mean/variance online via Welford's algorithm
// plus running min/max, mutex-protected so concurrent workers can record
// a completed iteration's DPS without ever blocking their own hot loop
// (spec.md §5: "Workers lock only to record a completed iteration's DPS;
// never while running").
type RunningStats struct {
	mu    sync.Mutex
	count uint64
	mean  float64
	m2    float64
	min   float64
	max   float64
}

// NewRunningStats constructs an empty accumulator.
func NewRunningStats() *RunningStats {
	return &RunningStats{min: math.Inf(1), max: math.Inf(-1)}
}

// Push records one more observation.
func (r *RunningStats) Push(x float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.count++
	delta := x - r.mean
	r.mean += delta / float64(r.count)
	r.m2 += delta * (x - r.mean)
	if x < r.min {
		r.min = x
	}
	if x > r.max {
		r.max = x
	}
}

// Mean returns the running mean.
func (r *RunningStats) Mean() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mean
}

// Variance returns the running sample variance (zero with fewer than two
// observations).
func (r *RunningStats) Variance() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count < 2 {
		return 0
	}
	return r.m2 / float64(r.count-1)
}

// StdDev returns the running sample standard deviation.
func (r *RunningStats) StdDev() float64 { return math.Sqrt(r.Variance()) }

// Min returns the running minimum, +Inf if nothing has been pushed yet.
func (r *RunningStats) Min() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.min
}

// Max returns the running maximum, -Inf if nothing has been pushed yet.
func (r *RunningStats) Max() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.max
}

// Count returns the number of observations pushed so far.
func (r *RunningStats) Count() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Results is the final, reduced outcome of a batch run (spec.md §6's
// BatchResults): mean/std-dev/min/max, the full DPS vector, sorted
// percentiles, and coefficient of variation.
type Results struct {
	Iterations  uint32
	MeanDPS     float64
	StdDevDPS   float64
	MinDPS      float64
	MaxDPS      float64
	DPSValues   []float64
	Percentiles map[int]float64
	CV          float64
}

// FromValues reduces a complete vector of per-iteration DPS values into
// Results, sorting a copy once to compute percentiles (spec.md §4.8:
// "Percentile computation sorts the full vector of dps values once at
// the end").
func FromValues(values []float64) Results {
	if len(values) == 0 {
		return Results{Percentiles: map[int]float64{}}
	}

	mean, std, min, max := summarize(values)

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	pct := make(map[int]float64, len(PercentileLevels))
	for _, p := range PercentileLevels {
		pct[p] = percentileOf(sorted, p)
	}

	var cv float64
	if mean > 0 {
		cv = std / mean
	}

	return Results{
		Iterations:  uint32(len(values)),
		MeanDPS:     mean,
		StdDevDPS:   std,
		MinDPS:      min,
		MaxDPS:      max,
		DPSValues:   values,
		Percentiles: pct,
		CV:          cv,
	}
}

func summarize(values []float64) (mean, std, min, max float64) {
	min, max = values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean = sum / float64(len(values))
	if len(values) < 2 {
		return
	}

	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	std = math.Sqrt(ss / float64(len(values)-1))
	return
}

// percentileOf returns the nearest-rank percentile (1-100) of an
// already-sorted slice.
func percentileOf(sorted []float64, p int) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	idx := (p*n+99)/100 - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return sorted[idx]
}

// Percentile returns the value at percentile p (0-100) of results'
// DPSValues, matching BatchResults::percentile's on-demand recomputation
// for an arbitrary p not in PercentileLevels.
func (r Results) Percentile(p int) float64 {
	if len(r.DPSValues) == 0 {
		return 0
	}
	sorted := append([]float64(nil), r.DPSValues...)
	sort.Float64s(sorted)
	return percentileOf(sorted, p)
}

// Median returns the 50th percentile.
func (r Results) Median() float64 { return r.Percentile(50) }
