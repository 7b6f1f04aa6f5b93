//go:build !(darwin && arm64) && !(linux && arm64) && !amd64

package platform

// detect reports no platform-specific signal on architectures without a
// dedicated detector above; OptimalConcurrency falls back to
// runtime.GOMAXPROCS(0).
func detect() (int, bool) { return 0, false }
