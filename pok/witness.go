package pok

import "github.com/amf-labs/amf-franking/group"

// Witness assigns a scalar witness to every leaf on the honest path through
// a Statement tree, and, for each Or node on that path, which branch is the
// honest one. Its shape must mirror the Statement it is paired with:
// Scalar for a DLogEq leaf, Left/Right for an And, HonestBranch/Honest for
// an Or (the non-honest branch needs no witness at all — it is simulated).
type Witness interface {
	witnessNode()
}

// ScalarWitness supplies the witness scalar for a DLogEq leaf.
type ScalarWitness struct {
	W group.Scalar
}

func (ScalarWitness) witnessNode() {}

// AndWitness supplies independent witnesses for both sides of an And.
type AndWitness struct {
	Left, Right Witness
}

func (AndWitness) witnessNode() {}

// OrWitness selects the honest branch of an Or (0 for Left, 1 for Right)
// and supplies its witness; the other branch is simulated and needs none.
type OrWitness struct {
	HonestBranch int
	Honest       Witness
}

func (OrWitness) witnessNode() {}

// WitnessScalar wraps a witness scalar for a DLogEq leaf.
func WitnessScalar(w group.Scalar) Witness { return ScalarWitness{W: w} }

// WitnessAnd pairs witnesses for both sides of an And.
func WitnessAnd(left, right Witness) Witness { return AndWitness{Left: left, Right: right} }

// WitnessOrLeft selects the left branch of an Or as the honest one.
func WitnessOrLeft(honest Witness) Witness {
	return OrWitness{HonestBranch: 0, Honest: honest}
}

// WitnessOrRight selects the right branch of an Or as the honest one.
func WitnessOrRight(honest Witness) Witness {
	return OrWitness{HonestBranch: 1, Honest: honest}
}
