package analyses

import "errors"

var (
	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCreateReadback indicates the row written by create could not be
	// read back. An invariant violation, distinct from ordinary storage
	// failures.
	ErrCreateReadback = errors.New("analysis create readback missing")
)
