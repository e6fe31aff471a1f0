package calibrate

import (
	"github.com/pkg/errors"
)

var (
	ErrSamples = errors.New("samples must be greater than zero")
	ErrWindow  = errors.New("window must be greater than zero")
)
