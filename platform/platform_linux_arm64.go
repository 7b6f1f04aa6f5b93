//go:build linux && arm64

package platform

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// bigCoreCapacityThreshold is the sysfs cpu_capacity value (spec.md
// §4.10) at or above which a core counts as "big" in a big.LITTLE
// topology.
const bigCoreCapacityThreshold = 900

// detect counts cores whose sysfs cpu_capacity meets
// bigCoreCapacityThreshold, the Linux AArch64 variant spec.md §4.10
// specifies in place of the reference implementation's "no detection on
// non-macOS aarch64" fallback.
func detect() (int, bool) {
	matches, err := filepath.Glob("/sys/devices/system/cpu/cpu[0-9]*/cpu_capacity")
	if err != nil || len(matches) == 0 {
		return 0, false
	}

	big := 0
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		capacity, err := strconv.Atoi(strings.TrimSpace(string(data)))
		if err != nil {
			continue
		}
		if capacity >= bigCoreCapacityThreshold {
			big++
		}
	}
	if big == 0 {
		return 0, false
	}
	return big, true
}
