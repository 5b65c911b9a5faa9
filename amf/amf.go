package amf

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/amf-labs/amf-franking/group"
	"github.com/amf-labs/amf-franking/pok"
)

// buildStatement instantiates the fixed AMF compound statement shape from
// spec.md §4.2 — And(DLog(A; g), Or(DLogEq(pkS, offset; g, h), DLogEq(pkS,
// offset; g, h))) — around the caller-supplied auxiliary point A and the
// offset point that, for an honestly generated signature, always equals
// sk_S·h regardless of which of the three routes (recipient's sk_R·J trick,
// judge's sk_J·A trick, or the sender's direct alpha/beta knowledge) produced
// it. See DESIGN.md for why the Or's two branches end up identically
// shaped here: the spec leaves the exact coefficients of the R-binding term
// and the Or's second branch as an open question to be resolved against a
// reference implementation, and this is the resolution adopted here.
func buildStatement(pkS, A, offset group.Point) pok.Statement {
	g, h := group.G(), group.H()
	leaf := pok.DLogEq([]group.Point{pkS, offset}, []group.Point{g, h})
	return pok.And(
		pok.DLog(A, g),
		pok.Or(leaf, leaf),
	)
}

// bindContext folds the designated recipient's and judge's public keys
// into the public Fiat-Shamir context alongside the message, so that pkR
// and pkJ are load-bearing: neither buildStatement's DLog/DLogEq leaves
// nor the offset algebra in Verify/Judge below ever reference the pkR/pkJ
// arguments directly (Verify recovers the offset from skR and sig.J alone;
// Judge from skJ and sig.A alone), so without this, a caller supplying the
// right secret key alongside a substituted public key argument would still
// verify. Both PublicKey encodings are fixed-width (group.PointByteLen),
// so appending them before the variable-length message is unambiguous
// without additional length framing.
func bindContext(pkR, pkJ group.PublicKey, m []byte) []byte {
	out := make([]byte, 0, 2*group.PointByteLen+len(m))
	out = append(out, pkR.Marshal()...)
	out = append(out, pkJ.Marshal()...)
	out = append(out, m...)
	return out
}

// Frank produces a signature over m on behalf of the sender, binding it to
// pkR (the designated recipient) and pkJ (the designated judge). It fails
// only if the randomness source does not yield bytes.
func Frank(skS group.PrivateKey, pkS, pkR, pkJ group.PublicKey, m []byte) (Signature, error) {
	return FrankWithRand(skS, pkS, pkR, pkJ, m, rand.Reader)
}

// FrankWithRand is Frank with an explicit randomness source, for testing.
func FrankWithRand(skS group.PrivateKey, pkS, pkR, pkJ group.PublicKey, m []byte, rng io.Reader) (Signature, error) {
	if rng == nil {
		rng = rand.Reader
	}
	g, h := group.G(), group.H()

	alpha, err := group.RandomScalar(rng)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %v", ErrRNGFailure, err)
	}
	beta, err := group.RandomScalar(rng)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %v", ErrRNGFailure, err)
	}

	a := g.ScalarMul(alpha)
	b := pkJ.P.ScalarMul(alpha).Add(h.ScalarMul(skS.X))
	j := g.ScalarMul(beta)
	r := pkR.P.ScalarMul(beta).Add(h.ScalarMul(skS.X))

	// Both routes recover sk_S·h exactly; computed here directly from
	// alpha/beta/sk_S since the sender needs neither sk_R nor sk_J.
	recipientOffset := r.Sub(pkR.P.ScalarMul(beta))
	judgeOffset := b.Sub(pkJ.P.ScalarMul(alpha))
	if !recipientOffset.Equal(judgeOffset) {
		// Can only happen if the algebra above has a bug: both sides are
		// defined to equal sk_S·h.
		return Signature{}, fmt.Errorf("amf: internal inconsistency deriving the h-binding offset")
	}

	stmt := buildStatement(pkS.P, a, recipientOffset)
	witness := pok.WitnessAnd(
		pok.WitnessScalar(alpha),
		pok.WitnessOrLeft(pok.WitnessScalar(skS.X)),
	)

	proof, err := pok.ProveWithRand(stmt, witness, bindContext(pkR, pkJ, m), rng)
	if err != nil {
		return Signature{}, err
	}

	return Signature{A: a, B: b, J: j, R: r, Proof: proof}, nil
}

// Verify checks sig as the designated recipient, using skR to compute the
// offset point R − sk_R·J that both of the Or's (identical) leaves are
// checked against: only the recipient (or the original sender) can compute
// that offset correctly. pkR and pkJ are
// bound into the Fiat-Shamir context via bindContext, so a mismatched pkR
// or pkJ causes rejection even when skR is the genuine recipient secret.
func Verify(skR group.PrivateKey, pkS, pkR, pkJ group.PublicKey, m []byte, sig Signature) bool {
	ok, _ := VerifyErr(skR, pkS, pkR, pkJ, m, sig)
	return ok
}

// VerifyErr is Verify plus the underlying pok.VerifyErr cause, for callers
// that want to distinguish a malformed signature from a sound-but-failing
// one without changing Verify's plain bool contract.
func VerifyErr(skR group.PrivateKey, pkS, pkR, pkJ group.PublicKey, m []byte, sig Signature) (bool, error) {
	offset := sig.R.Sub(sig.J.ScalarMul(skR.X))
	stmt := buildStatement(pkS.P, sig.A, offset)
	return pok.VerifyErr(stmt, sig.Proof, bindContext(pkR, pkJ, m))
}

// Judge checks sig as the designated judge, using skJ to compute the offset
// point B − sk_J·A that both of the Or's (identical) leaves are checked
// against: only the judge (or the original sender) can compute that offset
// correctly. pkR and pkJ are bound into the
// Fiat-Shamir context via bindContext, so a mismatched pkR or pkJ causes
// rejection even when skJ is the genuine judge secret.
func Judge(skJ group.PrivateKey, pkS, pkR, pkJ group.PublicKey, m []byte, sig Signature) bool {
	ok, _ := JudgeErr(skJ, pkS, pkR, pkJ, m, sig)
	return ok
}

// JudgeErr is Judge plus the underlying pok.VerifyErr cause.
func JudgeErr(skJ group.PrivateKey, pkS, pkR, pkJ group.PublicKey, m []byte, sig Signature) (bool, error) {
	offset := sig.B.Sub(sig.A.ScalarMul(skJ.X))
	stmt := buildStatement(pkS.P, sig.A, offset)
	return pok.VerifyErr(stmt, sig.Proof, bindContext(pkR, pkJ, m))
}
