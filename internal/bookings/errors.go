package bookings

import "errors"

var (
	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCreateReadback indicates the row written by create could not be
	// read back.
	ErrCreateReadback = errors.New("booking create readback missing")
)
