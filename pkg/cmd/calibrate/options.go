package calibrate

import (
	"context"
	"io"
	"os"
	"time"

	log "github.com/rs/zerolog"

	"github.com/maxgio92/cyclemark/pkg/cmd/options"
)

type Options struct {
	samples int
	window  time.Duration

	out io.Writer

	*options.CommonOptions
}

type Option func(o *Options)

func NewOptions(opts ...Option) *Options {
	o := new(Options)
	o.CommonOptions = new(options.CommonOptions)
	o.out = os.Stdout

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

func WithLogLevel(level string) Option {
	return func(o *Options) {
		o.LogLevel = level
	}
}

func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		o.out = w
	}
}
