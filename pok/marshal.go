package pok

import (
	"encoding/binary"
	"fmt"

	"github.com/amf-labs/amf-franking/group"
)

// tag bytes identify a proof node's kind in the serialized stream, mirroring
// the "node" label walked into the transcript during Prove/Verify.
const (
	tagLeaf byte = 1
	tagAnd  byte = 2
	tagOr   byte = 3
)

// Marshal encodes proof as a self-describing byte stream: a pre-order walk
// of the proof tree, one tag byte per node, a uint32 commitment count, the
// commitments themselves and the response scalar at each leaf, and only
// LeftChallenge at each Or node (the right branch's challenge is derivable
// from the parent challenge, so it is not written).
func Marshal(proof Proof) ([]byte, error) {
	var out []byte
	var err error
	out, err = appendProof(out, proof)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func appendProof(out []byte, proof Proof) ([]byte, error) {
	switch p := proof.(type) {
	case LeafProof:
		out = append(out, tagLeaf)
		var countBuf [4]byte
		binary.BigEndian.PutUint32(countBuf[:], uint32(len(p.Commitments)))
		out = append(out, countBuf[:]...)
		for _, c := range p.Commitments {
			out = append(out, c.Marshal()...)
		}
		out = append(out, p.Response.Bytes()...)
		return out, nil

	case AndProof:
		out = append(out, tagAnd)
		var err error
		out, err = appendProof(out, p.Left)
		if err != nil {
			return nil, err
		}
		return appendProof(out, p.Right)

	case OrProof:
		out = append(out, tagOr)
		out = append(out, p.LeftChallenge.Bytes()...)
		var err error
		out, err = appendProof(out, p.Left)
		if err != nil {
			return nil, err
		}
		return appendProof(out, p.Right)

	default:
		return nil, fmt.Errorf("%w: unknown proof node type %T", ErrMalformedProof, proof)
	}
}

// Unmarshal decodes a byte stream produced by Marshal back into a Proof,
// rejecting truncated or trailing-byte input.
func Unmarshal(data []byte) (Proof, error) {
	proof, rest, err := readProof(data)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedProof, len(rest))
	}
	return proof, nil
}

func readProof(data []byte) (Proof, []byte, error) {
	if len(data) < 1 {
		return nil, nil, fmt.Errorf("%w: empty input", ErrMalformedProof)
	}
	tag, rest := data[0], data[1:]

	switch tag {
	case tagLeaf:
		if len(rest) < 4 {
			return nil, nil, fmt.Errorf("%w: truncated commitment count", ErrMalformedProof)
		}
		count := binary.BigEndian.Uint32(rest[:4])
		rest = rest[4:]
		commitments := make([]group.Point, count)
		for i := uint32(0); i < count; i++ {
			if len(rest) < group.PointByteLen {
				return nil, nil, fmt.Errorf("%w: truncated commitment", ErrMalformedProof)
			}
			p, err := group.PointFromBytes(rest[:group.PointByteLen])
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrMalformedProof, err)
			}
			commitments[i] = p
			rest = rest[group.PointByteLen:]
		}
		if len(rest) < group.ScalarByteLen {
			return nil, nil, fmt.Errorf("%w: truncated response", ErrMalformedProof)
		}
		response, err := group.ScalarFromBytes(rest[:group.ScalarByteLen])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformedProof, err)
		}
		rest = rest[group.ScalarByteLen:]
		return LeafProof{Commitments: commitments, Response: response}, rest, nil

	case tagAnd:
		left, rest, err := readProof(rest)
		if err != nil {
			return nil, nil, err
		}
		right, rest, err := readProof(rest)
		if err != nil {
			return nil, nil, err
		}
		return AndProof{Left: left, Right: right}, rest, nil

	case tagOr:
		if len(rest) < group.ScalarByteLen {
			return nil, nil, fmt.Errorf("%w: truncated or-challenge", ErrMalformedProof)
		}
		leftChallenge, err := group.ScalarFromBytes(rest[:group.ScalarByteLen])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformedProof, err)
		}
		rest = rest[group.ScalarByteLen:]
		left, rest, err := readProof(rest)
		if err != nil {
			return nil, nil, err
		}
		right, rest, err := readProof(rest)
		if err != nil {
			return nil, nil, err
		}
		return OrProof{LeftChallenge: leftChallenge, Left: left, Right: right}, rest, nil

	default:
		return nil, nil, fmt.Errorf("%w: unknown tag byte %d", ErrMalformedProof, tag)
	}
}
