// Package pok implements a small library of Sigma-protocol Proofs of
// Knowledge over the prime-order group in package group, composed via the
// Fiat-Shamir transform (package transcript) into a non-interactive,
// simulation-sound argument for compound statements.
//
// Four combinators are provided: DLog, DLogEq (multi-base discrete-log
// equality), And (conjunction, possibly-distinct witnesses), and Or
// (1-of-2 disjunction, the prover knows which branch holds and the other
// is simulated). They compose into an arbitrary binary tree; the amf
// package instantiates one fixed shape of that tree for the AMF relation,
// but each combinator is independently testable against random inputs, per
// the "statement tree vs. hand-unrolled protocol" design note this system
// follows.
package pok
