package transcript

import (
	"testing"

	"github.com/amf-labs/amf-franking/group"
)

func TestChallengeIsDeterministic(t *testing.T) {
	build := func() group.Scalar {
		tr := New("AMF-v1", "DLogEq")
		tr.AppendPoints("bases", []group.Point{group.G(), group.H()})
		tr.AppendPoint("point", group.G().ScalarMul(group.ScalarFromInt64(42)))
		tr.AppendBytes("context", []byte("hello world!"))
		return tr.Challenge()
	}

	c1 := build()
	c2 := build()
	if !c1.Equal(c2) {
		t.Fatalf("identical transcripts produced different challenges")
	}
}

func TestChallengeDependsOnContext(t *testing.T) {
	base := func(context []byte) group.Scalar {
		tr := New("AMF-v1", "DLogEq")
		tr.AppendPoint("point", group.G())
		tr.AppendBytes("context", context)
		return tr.Challenge()
	}

	c1 := base([]byte("hello world!"))
	c2 := base([]byte("hello world?"))
	if c1.Equal(c2) {
		t.Fatalf("challenge did not depend on context bytes")
	}
}

func TestChallengeDependsOnCombinatorTag(t *testing.T) {
	a := New("AMF-v1", "DLogEq")
	a.AppendPoint("p", group.G())
	b := New("AMF-v1", "DLog")
	b.AppendPoint("p", group.G())

	if a.Challenge().Equal(b.Challenge()) {
		t.Fatalf("different combinator tags should yield different challenges")
	}
}

func TestChallengeFramingAvoidsSplitAmbiguity(t *testing.T) {
	// "ab","c" must not collide with "a","bc": length framing must prevent
	// the concatenation from being reinterpreted under a different split.
	tr1 := New("AMF-v1", "DLog")
	tr1.AppendBytes("x", []byte("ab"))
	tr1.AppendBytes("y", []byte("c"))

	tr2 := New("AMF-v1", "DLog")
	tr2.AppendBytes("x", []byte("a"))
	tr2.AppendBytes("y", []byte("bc"))

	if tr1.Challenge().Equal(tr2.Challenge()) {
		t.Fatalf("framing failed to disambiguate adjacent field splits")
	}
}
