//go:build !linux

package clock

import (
	_ "unsafe" // for go:linkname
)

//go:linkname nanotime runtime.nanotime
func nanotime() int64

// readOSTime returns the runtime monotonic clock. Not every platform
// keeps it ticking across suspend; this is the closest reading they
// offer without a syscall per read.
func readOSTime() uint64 {
	return uint64(nanotime())
}
