package amf

import (
	"fmt"

	"github.com/amf-labs/amf-franking/group"
	"github.com/amf-labs/amf-franking/pok"
)

// Marshal encodes sig as the concatenation of four canonical point
// encodings (A, B, J, R) followed by the serialized PoK proof, per
// spec.md §6.
func (sig Signature) Marshal() ([]byte, error) {
	proofBytes, err := pok.Marshal(sig.Proof)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 4*group.PointByteLen+len(proofBytes))
	out = append(out, sig.A.Marshal()...)
	out = append(out, sig.B.Marshal()...)
	out = append(out, sig.J.Marshal()...)
	out = append(out, sig.R.Marshal()...)
	out = append(out, proofBytes...)
	return out, nil
}

// Unmarshal decodes a byte string produced by Marshal.
func Unmarshal(data []byte) (Signature, error) {
	if len(data) < 4*group.PointByteLen {
		return Signature{}, fmt.Errorf("%w: too short for four points", ErrMalformedSignature)
	}

	offset := 0
	readPoint := func() (group.Point, error) {
		p, err := group.PointFromBytes(data[offset : offset+group.PointByteLen])
		if err != nil {
			return group.Point{}, fmt.Errorf("%w: %v", ErrMalformedSignature, err)
		}
		offset += group.PointByteLen
		return p, nil
	}

	a, err := readPoint()
	if err != nil {
		return Signature{}, err
	}
	b, err := readPoint()
	if err != nil {
		return Signature{}, err
	}
	j, err := readPoint()
	if err != nil {
		return Signature{}, err
	}
	r, err := readPoint()
	if err != nil {
		return Signature{}, err
	}

	proof, err := pok.Unmarshal(data[offset:])
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}

	return Signature{A: a, B: b, J: j, R: r, Proof: proof}, nil
}
