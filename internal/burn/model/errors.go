package model

import "errors"

var (
	// ErrSourceUnavailable means an external index could not be reached. It is retried on the next tick.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrDataGap marks an expected block or period that is missing from the source.
	ErrDataGap = errors.New("data gap")
	// ErrStaleNoOp means a fetch produced nothing newer than the cursor. It is not a failure.
	ErrStaleNoOp = errors.New("no new data")
	// ErrUnknownResolution is returned for resolution keys absent from the registry.
	ErrUnknownResolution = errors.New("unknown resolution")
	// ErrInvalidConfig reports malformed alignment or cache parameters.
	ErrInvalidConfig = errors.New("invalid resolution config")
)
