package group

import (
	"testing"
)

func TestPointRoundTrip(t *testing.T) {
	p := G().ScalarMul(ScalarFromInt64(7))
	enc := p.Marshal()
	if len(enc) != PointByteLen {
		t.Fatalf("expected %d bytes, got %d", PointByteLen, len(enc))
	}
	p2, err := PointFromBytes(enc)
	if err != nil {
		t.Fatalf("PointFromBytes: %v", err)
	}
	if !p.Equal(p2) {
		t.Fatalf("round-trip mismatch")
	}
}

func TestPointAlgebra(t *testing.T) {
	a := ScalarFromInt64(4)
	b := ScalarFromInt64(9)

	lhs := G().ScalarMul(a.Add(b))
	rhs := G().ScalarMul(a).Add(G().ScalarMul(b))
	if !lhs.Equal(rhs) {
		t.Fatalf("(a+b)*G != a*G + b*G")
	}

	if !G().Sub(G()).IsIdentity() {
		t.Fatalf("G - G should be the identity")
	}
}

func TestIndependentGenerators(t *testing.T) {
	if G().Equal(H()) {
		t.Fatalf("G and H must be distinct")
	}
	if H().IsIdentity() {
		t.Fatalf("H must not be the identity")
	}
}

func TestMultiScalarMul(t *testing.T) {
	points := []Point{G(), H()}
	scalars := []Scalar{ScalarFromInt64(3), ScalarFromInt64(5)}

	got, err := MultiScalarMul(points, scalars)
	if err != nil {
		t.Fatalf("MultiScalarMul: %v", err)
	}
	want := G().ScalarMul(scalars[0]).Add(H().ScalarMul(scalars[1]))
	if !got.Equal(want) {
		t.Fatalf("MultiScalarMul result mismatch")
	}
}

func TestPointFromBytesRejectsWrongLength(t *testing.T) {
	if _, err := PointFromBytes([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error for short encoding")
	}
}
