package group

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// DSTIndependentGenerator is the domain separation tag used to derive the
// second generator H, in the same "<suite>_XMD:SHA-256_SSWU_RO_"-shaped
// naming convention as the BLS12-381 G1 hash-to-curve suite.
const DSTIndependentGenerator = "AMF-v1_BLS12381G1_XMD:SHA-256_SSWU_RO_H_"

var (
	baseGenerator        Point
	independentGenerator Point
)

func init() {
	_, _, g1, _ := bls12381.Generators()
	baseGenerator = Point{p: g1}

	h, err := bls12381.HashToG1([]byte("AMF-v1 nothing-up-my-sleeve generator H"), []byte(DSTIndependentGenerator))
	if err != nil {
		// Generator derivation is a fixed, input-independent computation;
		// a failure here means the hash-to-curve suite itself is broken,
		// which is a programmer error, not a runtime condition callers can
		// recover from.
		panic(fmt.Sprintf("group: failed to derive independent generator H: %v", err))
	}
	independentGenerator = Point{p: h}
}

// G is the standard BLS12-381 G1 generator.
func G() Point { return baseGenerator }

// H is a second generator, derived via hash-to-curve from a fixed domain
// separation tag rather than as a scalar multiple of G: unlike the BBS+
// message generators this library descends from (which derive generators
// as k*G1 for a hash-derived scalar k, making their relative discrete log
// known by construction), an AMF binding term requires H's discrete log to
// G to be unknown to everyone. A genuine hash-to-curve map, not a scalar
// multiplication, is what gives that guarantee.
func H() Point { return independentGenerator }
