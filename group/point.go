package group

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// PointByteLen is the width of a compressed G1Affine encoding.
const PointByteLen = 48

// Point is an element of G1 of BLS12-381, used as a generic prime-order
// group element: only addition, scalar multiplication, equality and
// canonical serialization are exercised, never the pairing.
type Point struct {
	p bls12381.G1Affine
}

// Identity returns the point at infinity.
func Identity() Point {
	var p bls12381.G1Affine
	return Point{p: p}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.p.IsInfinity()
}

// Add returns p+q in G1, via Jacobian coordinates following the teacher's
// convention of lifting to Jacobian for additions and dropping back to
// affine for storage and serialization.
func (p Point) Add(q Point) Point {
	var pj, qj bls12381.G1Jac
	pj.FromAffine(&p.p)
	qj.FromAffine(&q.p)
	pj.AddAssign(&qj)
	var out bls12381.G1Affine
	out.FromJacobian(&pj)
	return Point{p: out}
}

// Sub returns p-q in G1.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Point) Neg() Point {
	var out bls12381.G1Affine
	out.Neg(&p.p)
	return Point{p: out}
}

// ScalarMul returns s*p, constant-time in s because the underlying
// gnark-crypto ScalarMultiplication is constant-time in its scalar input.
func (p Point) ScalarMul(s Scalar) Point {
	var pj bls12381.G1Jac
	pj.FromAffine(&p.p)
	pj.ScalarMultiplication(&pj, s.BigInt())
	var out bls12381.G1Affine
	out.FromJacobian(&pj)
	return Point{p: out}
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	return p.p.Equal(&q.p)
}

// Marshal returns the canonical compressed encoding of p.
func (p Point) Marshal() []byte {
	b := p.p.Bytes()
	return b[:]
}

// PointFromBytes decodes a canonical compressed G1 encoding, rejecting
// non-canonical points (the SetBytes call below performs the subgroup and
// canonical-form checks gnark-crypto applies to compressed encodings).
func PointFromBytes(b []byte) (Point, error) {
	if len(b) != PointByteLen {
		return Point{}, fmt.Errorf("%w: point must be %d bytes, got %d", ErrMalformedEncoding, PointByteLen, len(b))
	}
	var p bls12381.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return Point{p: p}, nil
}

// MultiScalarMul computes sum(scalars[i] * points[i]), generalizing the
// teacher's MultiScalarMulG1 helper (pkg/crypto/msm.go) from BBS+ message
// generators to arbitrary same-length point/scalar slices.
func MultiScalarMul(points []Point, scalars []Scalar) (Point, error) {
	if len(points) != len(scalars) {
		return Point{}, fmt.Errorf("group: mismatched lengths: %d points, %d scalars", len(points), len(scalars))
	}
	var acc bls12381.G1Jac
	for i := range points {
		if scalars[i].IsZero() || points[i].IsIdentity() {
			continue
		}
		var pj bls12381.G1Jac
		pj.FromAffine(&points[i].p)
		pj.ScalarMultiplication(&pj, scalars[i].BigInt())
		acc.AddAssign(&pj)
	}
	var out bls12381.G1Affine
	out.FromJacobian(&acc)
	return Point{p: out}, nil
}
