package bench

import (
	"github.com/pkg/errors"
)

var (
	ErrRounds  = errors.New("rounds must be greater than zero")
	ErrSize    = errors.New("buffer size must be greater than zero")
	ErrWorkers = errors.New("workers must be greater than zero")
)
