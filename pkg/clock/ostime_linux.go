package clock

import (
	"golang.org/x/sys/unix"
)

// readOSTime reads the kernel boottime clock, which keeps counting across
// system suspend. Kernels without it fall back to the plain monotonic
// clock. A zero return means neither could be read.
func readOSTime() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_BOOTTIME, &ts); err != nil {
		if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
			return 0
		}
	}

	return uint64(ts.Nano())
}
