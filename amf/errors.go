package amf

import "errors"

var (
	// ErrRNGFailure is returned by Frank when the randomness source used to
	// sample alpha/beta did not yield bytes.
	ErrRNGFailure = errors.New("amf: randomness source failed")

	// ErrMalformedSignature is returned when deserializing a byte string
	// that is not a well-formed signature: wrong length, non-canonical
	// point encoding, or a proof that does not parse.
	ErrMalformedSignature = errors.New("amf: malformed signature encoding")
)
