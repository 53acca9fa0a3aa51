package sim

import "errors"

var (
	// ErrInvalidConfiguration indicates a pool's range or draw count is unusable.
	ErrInvalidConfiguration = errors.New("invalid pool configuration")

	// ErrSampleMiss indicates a drawn value has no matching ball in the pool.
	ErrSampleMiss = errors.New("no ball for drawn value")
)
