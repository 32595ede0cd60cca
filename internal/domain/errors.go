package domain

import "errors"

// Error taxonomy for the pricing pipeline. Callers match with errors.Is.
var (
	// ErrInvalidParameter marks a simulation parameter rejected by validation
	// before any simulation work begins.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrComputation marks a degenerate or non-finite value detected while
	// reducing a path matrix to a price.
	ErrComputation = errors.New("computation error")
)
