// Package clock supplies the two monotonic readings the profiler accounts
// with: an OS-resolution nanosecond timestamp and a free-running CPU cycle
// counter, plus a calibration routine relating the two.
package clock

import (
	"time"

	"github.com/pkg/errors"
)

// osTimerFrequency is the tick rate of ReadOSTime readings. Readings are
// nanoseconds, so the rate is fixed at 1GHz.
const osTimerFrequency uint64 = 1_000_000_000

// defaultEstimationWindow bounds the busy-wait used to estimate the CPU
// frequency. Longer windows trade startup latency for precision.
const defaultEstimationWindow = 100 * time.Millisecond

var ErrUnsupportedClockSource = errors.New("unsupported clock source")

// Clock is the timer surface the profiler consumes. Implementations must
// be cheap enough for the instrumentation hot path; a deterministic test
// double can stand in for the platform clocks.
type Clock interface {
	// OSFrequency returns the fixed tick rate of ReadOSTime readings, in
	// ticks per second.
	OSFrequency() uint64

	// ReadOSTime returns a monotonically non-decreasing timestamp in OS
	// timer ticks. A zero reading means the platform timer failed;
	// callers must tolerate it rather than treat it as fatal.
	ReadOSTime() uint64

	// ReadCPUCycles returns a free-running cycle counter where the
	// architecture exposes one, and the OS timer reading everywhere else.
	ReadCPUCycles() uint64

	// EstimateCPUFrequency estimates the rate of ReadCPUCycles in ticks
	// per second by sampling both clocks over a fixed window.
	EstimateCPUFrequency() uint64
}

// System reads the platform clocks directly. It is stateless and safe to
// share across goroutines.
type System struct{}

func New() *System {
	return &System{}
}

// Check reports whether the platform offers a usable monotonic timer.
// Without one no meaningful profiling data can be produced, so callers
// are expected to treat the error as fatal.
func (s *System) Check() error {
	if s.ReadOSTime() == 0 {
		return ErrUnsupportedClockSource
	}

	return nil
}

func (s *System) OSFrequency() uint64 {
	return osTimerFrequency
}

func (s *System) ReadOSTime() uint64 {
	return readOSTime()
}

func (s *System) ReadCPUCycles() uint64 {
	return readCPUCycles()
}

func (s *System) EstimateCPUFrequency() uint64 {
	return s.EstimateCPUFrequencyOver(defaultEstimationWindow)
}

// EstimateCPUFrequencyOver busy-waits until the OS timer covers window,
// then relates the cycles elapsed over the same interval to the OS tick
// rate. The result is an approximation bounded by the window length and
// the OS timer resolution.
func (s *System) EstimateCPUFrequencyOver(window time.Duration) uint64 {
	waitTicks := osTimerFrequency * uint64(window) / uint64(time.Second)

	cpuStart := s.ReadCPUCycles()
	osStart := s.ReadOSTime()
	if osStart == 0 {
		return 0
	}

	var osElapsed uint64
	for osElapsed < waitTicks {
		osElapsed = s.ReadOSTime() - osStart
	}
	cpuElapsed := s.ReadCPUCycles() - cpuStart

	return Frequency(osTimerFrequency, cpuElapsed, osElapsed)
}

// Frequency converts an elapsed cycle count and the OS ticks covering the
// same interval into a cycles-per-second estimate. The ratio is computed
// in float64: the integer form overflows uint64 within seconds at GHz
// rates, and the estimate carries nowhere near 53 bits of precision.
func Frequency(osFreq, cpuElapsed, osElapsed uint64) uint64 {
	if osElapsed == 0 {
		return 0
	}

	return uint64(float64(osFreq) * float64(cpuElapsed) / float64(osElapsed))
}
