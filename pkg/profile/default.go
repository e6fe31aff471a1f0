package profile

import "io"

// Default is the package-level profiler for programs that want a single
// process-wide instance instead of threading one through explicitly.
var Default = New()

// Start begins profiling on the default profiler.
func Start() {
	Default.Start()
}

// Stop ends profiling on the default profiler.
func Stop() {
	Default.Stop()
}

// BeginBlock opens a region on the default profiler.
func BeginBlock(label string, index int, byteCount uint64) Block {
	return Default.BeginBlock(label, index, byteCount)
}

// EndBlock closes a region opened on the default profiler.
func EndBlock(b Block) {
	Default.EndBlock(b)
}

// WriteReport writes the default profiler's report to w.
func WriteReport(w io.Writer) error {
	return Default.WriteReport(w)
}

// PrintReport prints the default profiler's report.
func PrintReport() {
	Default.PrintReport()
}
