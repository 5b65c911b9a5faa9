package pok

import "errors"

var (
	// ErrMalformedStatement is returned for a Statement that cannot be a
	// valid proof target: a DLogEq leaf with mismatched or empty
	// Points/Bases lengths.
	ErrMalformedStatement = errors.New("pok: malformed statement")

	// ErrMalformedWitness is returned when the Witness shape does not
	// mirror the Statement shape (e.g. an AndWitness paired with an Or
	// node).
	ErrMalformedWitness = errors.New("pok: witness does not match statement shape")

	// ErrMalformedProof is returned when a Proof's shape does not mirror
	// the Statement it is being checked against, or a leaf's commitment
	// count does not match its base count. This is the "malformed" outcome
	// from spec.md §4.1/§7: distinct from an otherwise well-formed proof
	// that simply fails its verification equations.
	ErrMalformedProof = errors.New("pok: malformed proof")

	// ErrRNGFailure is returned when the randomness source used by Prove
	// did not yield bytes.
	ErrRNGFailure = errors.New("pok: randomness source failed")
)
