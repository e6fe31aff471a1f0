//go:build !profileoff

package profile

// Block carries the state of one open region between BeginBlock and the
// matching EndBlock. It is a transient, stack-scoped value and must not
// outlive the pair of calls it belongs to.
type Block struct {
	p            *Profiler
	label        string
	index        int
	parent       int
	start        uint64
	oldInclusive uint64
}

// BeginBlock opens the region identified by index, making it the parent
// of any block opened before the matching EndBlock. byteCount is added
// to the anchor's byte total immediately, 0 means no bytes to attribute.
// It never fails: keeping indexes in range and unique per call site is
// the caller's contract, checked only in profiledebug builds.
//
// The cycle counter is read last, so the bookkeeping above it does not
// count against the region.
func (p *Profiler) BeginBlock(label string, index int, byteCount uint64) Block {
	p.checkBlock(label, index)

	anchor := &p.anchors[index]
	anchor.ProcessedByteCount += byteCount

	block := Block{
		p:            p,
		label:        label,
		index:        index,
		parent:       p.parent,
		oldInclusive: anchor.ElapsedInclusive,
	}
	p.parent = index

	block.start = p.clk.ReadCPUCycles()

	return block
}

// EndBlock closes a region opened by BeginBlock on the same profiler,
// restoring the parent cursor and folding the elapsed cycles into the
// anchor table. The subtraction from the parent wraps modularly, so a
// parent's exclusive total may look huge until the parent itself closes.
func (p *Profiler) EndBlock(b Block) {
	elapsed := p.clk.ReadCPUCycles() - b.start

	p.parent = b.parent
	p.anchors[b.parent].ElapsedExclusive -= elapsed

	anchor := &p.anchors[b.index]
	anchor.ElapsedExclusive += elapsed
	anchor.ElapsedInclusive = b.oldInclusive + elapsed
	anchor.HitCount++
	anchor.Label = b.label
}

// End closes the block on the profiler that created it. Deferring it
// right at BeginBlock guarantees the close on every exit path, early
// returns and panics included.
func (b Block) End() {
	b.p.EndBlock(b)
}
