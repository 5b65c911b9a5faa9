package pok

import "github.com/amf-labs/amf-franking/group"

// Proof is a node in the proof tree returned by Prove, mirroring the
// Statement tree it was built against: a LeafProof for each DLogEq, an
// AndProof/OrProof for each And/Or node.
type Proof interface {
	proofNode()
}

// LeafProof holds one commitment point per base and the single scalar
// response for a DLogEq leaf.
type LeafProof struct {
	Commitments []group.Point
	Response    group.Scalar
}

func (LeafProof) proofNode() {}

// AndProof holds the two independently-produced sub-proofs of an And node.
type AndProof struct {
	Left, Right Proof
}

func (AndProof) proofNode() {}

// OrProof holds the explicit challenge for the Left branch; the Right
// branch's challenge is always derivable as (parent challenge -
// LeftChallenge) mod q, per spec.md §6 ("all OR-branch challenge scalars
// except the derivable one per OR node").
type OrProof struct {
	LeftChallenge group.Scalar
	Left, Right   Proof
}

func (OrProof) proofNode() {}
