package bench

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/maxgio92/cyclemark/internal/output"
)

const (
	CmdName = "bench"

	defaultRounds = 64
	defaultSize   = 1 << 20
)

func NewCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   CmdName,
		Short: "Run an instrumented synthetic workload",
		Long: fmt.Sprintf(`
%s runs a synthetic workload with every stage bracketed by profile blocks: each round generates a buffer, checksums it and sums it by recursive bisection.
Each worker owns an independent profiler and prints its own report at the end.
`, CmdName),
		DisableAutoGenTag: true,
		RunE:              o.Run,
	}

	cmd.Flags().IntVar(&o.rounds, "rounds", defaultRounds, "Number of workload rounds per worker")
	cmd.Flags().IntVar(&o.size, "size", defaultSize, "Buffer size in bytes processed per round")
	cmd.Flags().IntVar(&o.workers, "workers", 1, "Number of workers, each profiling on its own goroutine")
	cmd.Flags().BoolVar(&o.status, "status", false, "Periodically print the benchmark progress")

	return cmd
}

func (o *Options) Run(cmd *cobra.Command, _ []string) error {
	var err error
	o.LogLevel, err = cmd.Flags().GetString("log-level")
	if err != nil {
		return errors.Wrap(err, "failed to get log level")
	}

	logLevel, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		o.Logger.Fatal().Err(err).Msg("invalid log level")
	}
	o.Logger = o.Logger.Level(logLevel)

	if err := o.validate(); err != nil {
		return err
	}

	workers := make([]*worker, o.workers)
	for i := range workers {
		workers[i] = newWorker(i, o.rounds, o.size, o.Logger)
	}

	g, ctx := errgroup.WithContext(o.Ctx)

	go o.printStatusBar(ctx, workers)

	for _, w := range workers {
		g.Go(func() error {
			return w.run(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "benchmark interrupted")
	}
	if o.status {
		fmt.Println()
	}

	for _, w := range workers {
		if o.workers > 1 {
			fmt.Fprintf(os.Stdout, "Worker %d:\n", w.id)
		}
		if err := w.profiler.WriteReport(os.Stdout); err != nil {
			return errors.Wrap(err, "failed to write the profile report")
		}
	}

	return nil
}

func (o *Options) validate() error {
	if o.rounds <= 0 {
		return ErrRounds
	}
	if o.size <= 0 {
		return ErrSize
	}
	if o.workers <= 0 {
		return ErrWorkers
	}

	return nil
}

func (o *Options) printStatusBar(ctx context.Context, workers []*worker) {
	if !o.status {
		return
	}

	total := uint64(o.rounds) * uint64(o.workers)

	var last uint64
	output.StatusBar(ctx,
		1*time.Second, // bar refresh interval.
		func() {
			done := completedRounds(workers)
			output.PrintRight(output.PrettyBenchStatus(
				float64(done)/float64(total)*100,
				done-last, // rounds rate per bar refresh.
			))
			last = done
		},
	)
}
