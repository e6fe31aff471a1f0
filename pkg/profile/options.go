package profile

import (
	"io"

	log "github.com/rs/zerolog"

	"github.com/maxgio92/cyclemark/pkg/clock"
)

type Option func(*Profiler)

// WithClock sets the time source. Defaults to the system clock.
func WithClock(clk clock.Clock) Option {
	return func(p *Profiler) {
		p.clk = clk
	}
}

// WithLogger sets the logger used by the debug checks and by
// PrintReport. Defaults to a no-op logger, so the hot path never pays
// for logging.
func WithLogger(logger log.Logger) Option {
	return func(p *Profiler) {
		p.logger = logger
	}
}

// WithWriter sets the destination PrintReport writes to. Defaults to
// standard output.
func WithWriter(w io.Writer) Option {
	return func(p *Profiler) {
		p.out = w
	}
}
