// Package transcript implements domain-separated Fiat-Shamir challenge
// derivation for the pok package.
//
// A Transcript folds a protocol tag, a per-combinator tag, the ordered
// bases, public points, prover commitments, and the caller-supplied context
// into a single extendable-output hash (SHAKE-256, via
// golang.org/x/crypto/sha3), then squeezes a uniform scalar out of it. This
// follows the teacher family's own naming convention for its domain
// separation tags ("..._XOF:SHAKE-256_PROOF_" in the BBS+ lineage's
// internal/common package) but, unlike that lineage, actually drives a real
// XOF with those tags rather than falling back to a fixed-output SHA-256.
package transcript
