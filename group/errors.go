package group

import "errors"

var (
	// ErrMalformedEncoding is returned when a point or scalar encoding is
	// not in canonical / strictly-reduced form.
	ErrMalformedEncoding = errors.New("group: malformed encoding")

	// ErrRNGFailure is returned when the configured randomness source did
	// not yield bytes.
	ErrRNGFailure = errors.New("group: randomness source failed")
)
