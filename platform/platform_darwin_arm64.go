//go:build darwin && arm64

package platform

import "golang.org/x/sys/unix"

// detect queries the P-core count via sysctl hw.perflevel0.logicalcpu,
// mirroring get_macos_perflevel_cores(0) in the reference implementation.
// x/sys/unix wraps sysctlbyname directly, so this needs no cgo.
func detect() (int, bool) {
	n, err := unix.SysctlUint32("hw.perflevel0.logicalcpu")
	if err != nil || n == 0 {
		return 0, false
	}
	return int(n), true
}
