// Package group wraps the prime-order group used by the PoK engine and the
// AMF protocol on top of it.
//
// The group is G1 of BLS12-381 as provided by
// github.com/consensys/gnark-crypto. The pairing is never invoked: G1 alone
// is a prime-order group of order r (the scalar field of the curve), with
// constant-time scalar multiplication and point addition, which is all the
// compound PoK over DLog/DLogEq/And/Or statements needs. Two independent
// generators, G and H, are fixed process-wide; H is derived so that its
// discrete log to base G is not known to anyone, following a
// hash-to-curve-with-cofactor-clearing construction in the same spirit as
// the message-specific generators used elsewhere in this family of
// signature schemes.
package group
