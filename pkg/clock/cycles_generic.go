//go:build !amd64 && !arm64

package clock

// readCPUCycles falls back to the OS timer on architectures without an
// accessible cycle counter. Elapsed "cycles" are then OS ticks, and the
// estimated frequency converges on OSFrequency through the same path.
func readCPUCycles() uint64 {
	return readOSTime()
}
