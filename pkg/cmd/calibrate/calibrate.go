package calibrate

import (
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	log "github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/maxgio92/cyclemark/pkg/clock"
)

const (
	CmdName = "calibrate"

	defaultSamples = 5
	defaultWindow  = 100 * time.Millisecond
)

func NewCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   CmdName,
		Short: "Estimate the CPU frequency of this machine",
		Long: fmt.Sprintf(`
%s estimates the CPU cycle counter frequency by busy-waiting a window on the OS timer, repeats the estimation and summarizes the samples.
A stable machine should report samples within a narrow band around the mean.
`, CmdName),
		DisableAutoGenTag: true,
		RunE:              o.Run,
	}

	cmd.Flags().IntVar(&o.samples, "samples", defaultSamples, "Number of frequency estimations to take")
	cmd.Flags().DurationVar(&o.window, "window", defaultWindow, "Busy-wait window per estimation")

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

	return o.runCalibration()
}

func (o *Options) runCalibration() error {
	if o.samples <= 0 {
		return ErrSamples
	}
	if o.window <= 0 {
		return ErrWindow
	}

	clk := clock.New()

	samples := make([]float64, 0, o.samples)

	fmt.Fprintf(o.out, "Estimating the CPU frequency over %d samples of %s each:\n", o.samples, o.window)
	for i := 0; i < o.samples; i++ {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		freq := clk.EstimateCPUFrequencyOver(o.window)
		if freq == 0 {
			return errors.Wrapf(clock.ErrUnsupportedClockSource, "sample %d returned a zero frequency", i+1)
		}
		o.Logger.Debug().Int("sample", i+1).Uint64("hz", freq).Msg("estimated CPU frequency")

		fmt.Fprintf(o.out, "  sample %d: %d Hz\n", i+1, freq)
		samples = append(samples, float64(freq))
	}

	mean, median, stddev := summarize(samples)
	fmt.Fprintf(o.out, "mean: %.0f Hz\n", mean)
	fmt.Fprintf(o.out, "median: %.0f Hz\n", median)
	fmt.Fprintf(o.out, "stddev: %.0f Hz\n", stddev)

	return nil
}

// summarize reduces the samples to mean, median and standard deviation.
// The standard deviation of a single sample is reported as zero.
func summarize(samples []float64) (mean, median, stddev float64) {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	if len(sorted) > 1 {
		stddev = stat.StdDev(sorted, nil)
	}

	return mean, median, stddev
}
