// Package amf implements Asymmetric Message Franking: a three-party token
// that lets a Sender attach to a message a signature-like value such that a
// designated Recipient and a designated Judge can each independently verify
// it, while neither of them, nor the Sender, can present the token to an
// outsider as transferable proof of authorship.
//
// The protocol is a single instance of the pok package's compound
// statement, built over four auxiliary points (A, B, J, R) the Sender
// derives per frank call: an And of a trivial knowledge-of-alpha proof and
// an Or of two copies of the same DLogEq leaf, each party (Recipient via
// sk_R and J, Judge via sk_J and A) reducing the Or leaf's offset
// independently to the same group element. See DESIGN.md for the exact
// statement shape and the reasoning behind it. Frank is randomized; Verify
// and Judge are deterministic functions of their inputs.
package amf
