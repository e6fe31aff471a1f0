package clock

// rdtsc reads the time stamp counter.
// Implemented in cycles_amd64.s.
func rdtsc() uint64

// readCPUCycles returns the free-running time stamp counter. On amd64
// parts from the last fifteen-plus years the TSC is invariant: it ticks
// at a fixed rate regardless of frequency scaling, which is what makes a
// frequency estimated against the OS timer meaningful.
func readCPUCycles() uint64 {
	return rdtsc()
}
