package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxgio92/cyclemark/internal/settings"
	"github.com/maxgio92/cyclemark/pkg/clock"
	"github.com/maxgio92/cyclemark/pkg/cmd/bench"
	"github.com/maxgio92/cyclemark/pkg/cmd/calibrate"
	"github.com/maxgio92/cyclemark/pkg/cmd/options"
)

const logLevelInfo = "info"

type Options struct {
	*options.CommonOptions
}

type Option func(o *Options)

func NewOptions(opts ...Option) *Options {
	o := new(Options)
	o.CommonOptions = new(options.CommonOptions)

	for _, f := range opts {
		f(o)
	}

	return o
}

func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

func WithLogger(logger log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func NewCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   settings.CmdName,
		Short: fmt.Sprintf("%s is an anchor-based CPU cycle profiler", settings.CmdName),
		Long: fmt.Sprintf(`
%s measures wall-clock and CPU cycle time of named code regions and attributes it across the call hierarchy, reporting exclusive and inclusive shares with optional throughput.
`, settings.CmdName),
		DisableAutoGenTag: true,
	}

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", logLevelInfo, "Set the log level (trace, debug, info, warn, error, fatal, panic)")

	cmd.AddCommand(bench.NewCommand(bench.NewOptions(
		bench.WithContext(o.Ctx),
		bench.WithLogger(o.Logger),
	)))
	cmd.AddCommand(calibrate.NewCommand(calibrate.NewOptions(
		calibrate.WithContext(o.Ctx),
		calibrate.WithLogger(o.Logger),
	)))

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main() and only needs to happen
// once.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	logger := log.New(
		log.ConsoleWriter{Out: os.Stderr},
	).With().Timestamp().Logger()

	go func() {
		<-ctx.Done()
		cancel()
	}()

	if err := clock.New().Check(); err != nil {
		logger.Fatal().Err(err).Msg("cannot read the OS timer")
	}

	opts := NewOptions(
		WithContext(ctx),
		WithLogger(logger),
	)

	if err := NewCommand(opts).Execute(); err != nil {
		os.Exit(1)
	}
}
