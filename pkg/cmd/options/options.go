package options

import (
	"context"

	log "github.com/rs/zerolog"
)

// CommonOptions carries the state shared by every command: the
// signal-aware context, the logger and the configured log level.
type CommonOptions struct {
	Ctx      context.Context
	Logger   log.Logger
	LogLevel string
}
