//go:build profileoff

package profile

// Block is an empty placeholder when block instrumentation is compiled
// out. Start, Stop and the report keep measuring the whole-run total.
type Block struct{}

// BeginBlock does nothing in profileoff builds.
func (p *Profiler) BeginBlock(label string, index int, byteCount uint64) Block {
	return Block{}
}

// EndBlock does nothing in profileoff builds.
func (p *Profiler) EndBlock(b Block) {}

// End does nothing in profileoff builds.
func (b Block) End() {}
