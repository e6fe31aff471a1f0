package clock

// cntvct reads the virtual counter-timer register CNTVCT_EL0.
// Implemented in cycles_arm64.s.
func cntvct() uint64

// readCPUCycles returns the virtual counter-timer. It runs at a fixed
// platform frequency (commonly 24MHz to 1GHz) rather than the core
// clock, so "cycles" are counter ticks; the frequency estimate is taken
// through the same counter and stays consistent with it.
func readCPUCycles() uint64 {
	return cntvct()
}
