package bench

import (
	"context"
	"sync/atomic"

	log "github.com/rs/zerolog"

	"github.com/maxgio92/cyclemark/internal/utils"
	"github.com/maxgio92/cyclemark/pkg/profile"
)

// Anchor indexes of the workload stages, one per call site.
const (
	anchorGenerate = iota + 1
	anchorChecksum
	anchorPartition
)

const partitionLeaf = 4096

// worker runs the synthetic workload with a profiler of its own, so
// that concurrent workers never share profiling state.
type worker struct {
	id     int
	rounds int
	buf    []byte
	seed   uint64
	sink   uint64

	completed atomic.Uint64

	profiler *profile.Profiler
	logger   log.Logger
}

func newWorker(id, rounds, size int, logger log.Logger) *worker {
	return &worker{
		id:       id,
		rounds:   rounds,
		buf:      make([]byte, size),
		seed:     uint64(id)*2654435761 + 1,
		profiler: profile.New(profile.WithLogger(logger)),
		logger:   logger,
	}
}

func (w *worker) run(ctx context.Context) error {
	w.profiler.Start()
	for i := 0; i < w.rounds; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		w.sink += w.round()
		w.completed.Add(1)
	}
	w.profiler.Stop()

	w.logger.Debug().Int("worker", w.id).Uint64("checksum", w.sink).Msg("workload finished")

	return nil
}

func (w *worker) round() uint64 {
	w.generate()

	return w.checksum() + w.partition(w.buf)
}

// generate refills the buffer from a xorshift stream.
func (w *worker) generate() {
	defer w.profiler.BeginBlock("generate", anchorGenerate, uint64(len(w.buf))).End()

	state := w.seed
	for i := range w.buf {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		w.buf[i] = byte(state)
	}
	w.seed = state
}

func (w *worker) checksum() uint64 {
	defer w.profiler.BeginBlock("checksum", anchorChecksum, uint64(len(w.buf))).End()

	return utils.Hash(string(w.buf))
}

// partition sums the buffer by recursive bisection. Every level
// re-enters the same anchor, exercising the recursion-safe inclusive
// accounting.
func (w *worker) partition(data []byte) uint64 {
	defer w.profiler.BeginBlock("partition", anchorPartition, 0).End()

	if len(data) <= partitionLeaf {
		var sum uint64
		for _, b := range data {
			sum += uint64(b)
		}

		return sum
	}

	mid := len(data) / 2

	return w.partition(data[:mid]) + w.partition(data[mid:])
}

func completedRounds(workers []*worker) uint64 {
	var done uint64
	for _, w := range workers {
		done += w.completed.Load()
	}

	return done
}
