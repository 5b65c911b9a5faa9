package group

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Order is the order r of G1 (and of the scalar field Fr) of BLS12-381.
var Order, _ = new(big.Int).SetString(
	"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// ScalarByteLen is the fixed width of a canonical big-endian scalar
// encoding: ceil(bitlen(Order)/8).
const ScalarByteLen = 32

// Scalar is a residue modulo Order.
type Scalar struct {
	v *big.Int
}

// NewScalar reduces n modulo Order and wraps it.
func NewScalar(n *big.Int) Scalar {
	v := new(big.Int).Mod(n, Order)
	return Scalar{v: v}
}

// ScalarFromInt64 wraps a small constant, useful in tests.
func ScalarFromInt64(n int64) Scalar {
	return NewScalar(big.NewInt(n))
}

// ZeroScalar is the additive identity.
func ZeroScalar() Scalar { return Scalar{v: new(big.Int)} }

// RandomScalar samples a scalar uniformly from [0, Order) using
// rejection-free, constant-width reduction: it reads ScalarByteLen+16 bytes
// of entropy (16 more than a scalar's width) and reduces mod Order, so modulo bias is negligible
// without the branching a strict rejection-sampling loop would add.
func RandomScalar(rng io.Reader) (Scalar, error) {
	if rng == nil {
		rng = rand.Reader
	}
	buf := make([]byte, ScalarByteLen+16)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return Scalar{}, fmt.Errorf("%w: %v", ErrRNGFailure, err)
	}
	n := new(big.Int).SetBytes(buf)
	return NewScalar(n), nil
}

// Add returns a+b mod Order.
func (a Scalar) Add(b Scalar) Scalar {
	return NewScalar(new(big.Int).Add(a.v, b.v))
}

// Sub returns a-b mod Order.
func (a Scalar) Sub(b Scalar) Scalar {
	return NewScalar(new(big.Int).Sub(a.v, b.v))
}

// Mul returns a*b mod Order.
func (a Scalar) Mul(b Scalar) Scalar {
	return NewScalar(new(big.Int).Mul(a.v, b.v))
}

// Neg returns -a mod Order.
func (a Scalar) Neg() Scalar {
	return NewScalar(new(big.Int).Neg(a.v))
}

// IsZero reports whether a is the additive identity.
func (a Scalar) IsZero() bool {
	return a.v.Sign() == 0
}

// Equal reports whether a and b represent the same residue.
func (a Scalar) Equal(b Scalar) bool {
	return a.v.Cmp(b.v) == 0
}

// BigInt returns a copy of the underlying residue, in [0, Order).
func (a Scalar) BigInt() *big.Int {
	return new(big.Int).Set(a.v)
}

// Bytes returns the fixed-width, big-endian encoding of a, used as the
// canonical wire format.
func (a Scalar) Bytes() []byte {
	out := make([]byte, ScalarByteLen)
	b := a.v.Bytes()
	copy(out[ScalarByteLen-len(b):], b)
	return out
}

// ScalarFromBytes decodes a canonical scalar encoding, rejecting values that
// are not in strict reduced form (>= Order), per the spec's "malformed"
// failure kind.
func ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != ScalarByteLen {
		return Scalar{}, fmt.Errorf("%w: scalar must be %d bytes, got %d", ErrMalformedEncoding, ScalarByteLen, len(b))
	}
	n := new(big.Int).SetBytes(b)
	if n.Cmp(Order) >= 0 {
		return Scalar{}, fmt.Errorf("%w: scalar out of range", ErrMalformedEncoding)
	}
	return Scalar{v: n}, nil
}
