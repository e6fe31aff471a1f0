package profile

// Anchor accumulates the statistics of one named code region, addressed
// by a small caller-assigned index. Anchors live as long as the profiler
// that owns them and are only ever accumulated into, never reset.
type Anchor struct {
	// Label, stored on every block close. Last writer wins, so one
	// index should keep one label.
	Label string

	// HitCount, the number of completed begin/end pairs.
	HitCount uint64

	// ElapsedExclusive, cycles spent in the region minus cycles
	// attributed to nested children. Accumulated with wrapping
	// arithmetic, so a transient underflow mid-run is expected.
	ElapsedExclusive uint64

	// ElapsedInclusive, cycles spent in the region including children.
	// Set on close from the snapshot taken at entry, which keeps it
	// correct under recursive re-entry.
	ElapsedInclusive uint64

	// ProcessedByteCount, the running total of bytes attributed to the
	// region for throughput reporting.
	ProcessedByteCount uint64
}
