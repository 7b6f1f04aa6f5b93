// Package platform implements the CPU-topology detection spec.md §4.10
// calls for sizing a batch run's worker pool, grounded on
// original_source/crates/engine/src/core/cpu.rs's get_optimal_concurrency.
package platform

import "runtime"

// OptimalConcurrency returns the number of parallel simulation workers to
// spawn on this machine (spec.md §5's "parallel OS threads, one Simulation
// per worker" model): big-core count on Apple Silicon, capacity-aware big
// core count on ARM Linux, approximate physical core count on x86_64, and
// available parallelism everywhere else. Always floored at 1.
func OptimalConcurrency() int {
	if n, ok := detect(); ok && n > 0 {
		return n
	}
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}
