package transcript

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/amf-labs/amf-franking/group"
)

// Transcript accumulates the byte stream that the Fiat-Shamir challenge is
// derived from, in strict append order. Both prover and verifier must
// append in exactly the same order for the derived challenge to match.
type Transcript struct {
	xof sha3.ShakeHash
}

// New starts a fresh transcript tagged with a protocol identifier (e.g.
// "AMF-v1") followed by a combinator tag identifying the statement shape
// (e.g. "DLogEq", "And", "Or"), so that transcripts for structurally
// different statements can never collide.
func New(protocolTag, combinatorTag string) *Transcript {
	tr := &Transcript{xof: sha3.NewShake256()}
	tr.appendFramed([]byte(protocolTag))
	tr.appendFramed([]byte(combinatorTag))
	return tr
}

// appendFramed writes a big-endian uint64 length prefix followed by data,
// so that the concatenation of two adjacent fields can never be
// reinterpreted as a different split (e.g. "ab"+"c" vs "a"+"bc").
func (t *Transcript) appendFramed(data []byte) {
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(data)))
	t.xof.Write(lenBuf[:])
	t.xof.Write(data)
}

// AppendBytes folds an arbitrary, caller-labeled byte string into the
// transcript: used for the public context m and for any other field that
// is not itself a group element.
func (t *Transcript) AppendBytes(label string, data []byte) {
	t.appendFramed([]byte(label))
	t.appendFramed(data)
}

// AppendPoint folds a single labeled group element (a base, a public point,
// or a prover commitment) into the transcript using its canonical
// encoding.
func (t *Transcript) AppendPoint(label string, p group.Point) {
	t.AppendBytes(label, p.Marshal())
}

// AppendPoints folds an ordered slice of points sharing one label.
func (t *Transcript) AppendPoints(label string, ps []group.Point) {
	for i, p := range ps {
		t.AppendPoint(labelIndexed(label, i), p)
	}
}

func labelIndexed(label string, i int) string {
	// Small, allocation-light indexed label; collisions with a
	// differently-indexed field under the same base label are impossible
	// because every field is length-framed already.
	buf := make([]byte, 0, len(label)+8)
	buf = append(buf, label...)
	buf = append(buf, '[')
	buf = appendUint(buf, uint64(i))
	buf = append(buf, ']')
	return string(buf)
}

func appendUint(buf []byte, v uint64) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(buf, tmp[i:]...)
}

// Challenge squeezes a uniform scalar out of the transcript as accumulated
// so far. It clones the underlying XOF state first so a transcript can, in
// principle, still be inspected or extended by a caller that kept a
// reference before calling Challenge — though both Prove and Verify in
// this library call it exactly once, at the end.
func (t *Transcript) Challenge() group.Scalar {
	clone := t.xof.Clone()
	out := make([]byte, group.ScalarByteLen+16)
	if _, err := clone.Read(out); err != nil {
		// ShakeHash.Read never returns an error; a failure here would mean
		// the standard library's sha3 implementation itself is broken.
		panic("transcript: XOF squeeze failed: " + err.Error())
	}
	return group.NewScalar(new(big.Int).SetBytes(out))
}
