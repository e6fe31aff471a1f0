package profile

import (
	"io"
	"os"

	log "github.com/rs/zerolog"

	"github.com/maxgio92/cyclemark/pkg/clock"
)

const (
	// MaxAnchors bounds the number of distinct timed regions, the root
	// sentinel included. Callers assign indexes in [1, MaxAnchors).
	MaxAnchors = 4096

	// rootAnchor is the parent of top-level blocks. It absorbs the
	// exclusive-time subtractions for cycles spent outside any block.
	rootAnchor = 0
)

// Profiler attributes elapsed CPU cycles to a fixed table of named
// anchors. Nesting is tracked through a current-parent cursor so that a
// region's exclusive time excludes the time of its children.
//
// A Profiler has no internal locking: begin/end pairs must nest in
// stack discipline on a single goroutine, and concurrent callers must
// each own an independent instance.
type Profiler struct {
	anchors [MaxAnchors]Anchor
	parent  int

	osStart    uint64
	osElapsed  uint64
	cpuStart   uint64
	cpuElapsed uint64
	estFreq    uint64

	clk    clock.Clock
	logger log.Logger
	out    io.Writer

	registry registry
}

// New returns a Profiler reading the system clock, logging nowhere and
// reporting to standard output, unless options say otherwise.
func New(opts ...Option) *Profiler {
	profiler := new(Profiler)
	profiler.clk = clock.New()
	profiler.logger = log.Nop()
	profiler.out = os.Stdout
	for _, f := range opts {
		f(profiler)
	}

	return profiler
}

// Start marks the beginning of the profiled run, snapshotting the OS
// timer and the cycle counter. Call it once, before the first block.
func (p *Profiler) Start() {
	p.osStart = p.clk.ReadOSTime()
	p.cpuStart = p.clk.ReadCPUCycles()
}

// Stop marks the end of the profiled run and derives the CPU frequency
// estimate from the run's own OS and cycle deltas, for the report's
// total-time conversion.
func (p *Profiler) Stop() {
	p.cpuElapsed = p.clk.ReadCPUCycles() - p.cpuStart
	p.osElapsed = p.clk.ReadOSTime() - p.osStart
	p.estFreq = clock.Frequency(p.clk.OSFrequency(), p.cpuElapsed, p.osElapsed)
}

// Anchor returns a copy of the anchor at index.
func (p *Profiler) Anchor(index int) Anchor {
	return p.anchors[index]
}

// TotalElapsed returns the cycles elapsed between Start and Stop.
func (p *Profiler) TotalElapsed() uint64 {
	return p.cpuElapsed
}

// CPUFrequency returns the cycles-per-second estimate derived by Stop,
// or 0 when it is not known.
func (p *Profiler) CPUFrequency() uint64 {
	return p.estFreq
}

// ReadOSTime exposes the underlying OS timer for ad hoc timing.
func (p *Profiler) ReadOSTime() uint64 {
	return p.clk.ReadOSTime()
}

// ReadCPUCycles exposes the underlying cycle counter for ad hoc timing.
func (p *Profiler) ReadCPUCycles() uint64 {
	return p.clk.ReadCPUCycles()
}
