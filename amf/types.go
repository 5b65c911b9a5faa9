package amf

import (
	"github.com/amf-labs/amf-franking/group"
	"github.com/amf-labs/amf-franking/pok"
)

// Signature is the output of Frank: four public auxiliary points plus the
// compound PoK proof that binds them to the three party keys and the
// message, per spec.md §4.2/§6.
type Signature struct {
	A, B, J, R group.Point
	Proof      pok.Proof
}

// KeyGen samples a fresh keypair for role. Role is carried only for caller
// ergonomics, matching group.KeyGen: the sampling procedure is identical
// for Sender, Recipient, and Judge.
func KeyGen(role group.Role) (group.KeyPair, error) {
	return group.KeyGen(role, nil)
}
