package amf_test

import (
	"bytes"
	"testing"

	"github.com/amf-labs/amf-franking/amf"
	"github.com/amf-labs/amf-franking/group"
)

type parties struct {
	sender, recipient, judge group.KeyPair
}

func freshParties(t *testing.T) parties {
	t.Helper()
	sender, err := amf.KeyGen(group.RoleSender)
	if err != nil {
		t.Fatalf("KeyGen sender: %v", err)
	}
	recipient, err := amf.KeyGen(group.RoleRecipient)
	if err != nil {
		t.Fatalf("KeyGen recipient: %v", err)
	}
	judge, err := amf.KeyGen(group.RoleJudge)
	if err != nil {
		t.Fatalf("KeyGen judge: %v", err)
	}
	return parties{sender: sender, recipient: recipient, judge: judge}
}

func (p parties) frank(t *testing.T, m []byte) amf.Signature {
	t.Helper()
	sig, err := amf.Frank(p.sender.Private, p.sender.Public, p.recipient.Public, p.judge.Public, m)
	if err != nil {
		t.Fatalf("Frank: %v", err)
	}
	return sig
}

func (p parties) verify(m []byte, sig amf.Signature) bool {
	return amf.Verify(p.recipient.Private, p.sender.Public, p.recipient.Public, p.judge.Public, m, sig)
}

func (p parties) judgeCheck(m []byte, sig amf.Signature) bool {
	return amf.Judge(p.judge.Private, p.sender.Public, p.recipient.Public, p.judge.Public, m, sig)
}

// Property 1: correctness.
func TestCorrectness(t *testing.T) {
	p := freshParties(t)
	m := []byte("correctness message")
	sig := p.frank(t, m)
	if !p.verify(m, sig) {
		t.Fatalf("verify: expected true for honest signature")
	}
	if !p.judgeCheck(m, sig) {
		t.Fatalf("judge: expected true for honest signature")
	}
}

// Property 2: message binding.
func TestMessageBinding(t *testing.T) {
	p := freshParties(t)
	sig := p.frank(t, []byte("original message"))
	if p.verify([]byte("a different message"), sig) {
		t.Fatalf("verify: expected false for mismatched message")
	}
}

// Property 3: key binding.
func TestKeyBindingSender(t *testing.T) {
	p := freshParties(t)
	m := []byte("key binding: sender")
	sig := p.frank(t, m)
	fresh, err := amf.KeyGen(group.RoleSender)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	if amf.Verify(p.recipient.Private, fresh.Public, p.recipient.Public, p.judge.Public, m, sig) {
		t.Fatalf("verify: expected false with a substituted sender public key")
	}
}

// TestKeyBindingRecipient isolates the public-key-only substitution property
// 3 actually names: the genuine skR is kept, only the pkR argument is
// swapped for an unrelated public key. If Verify only checked skR (and
// never bound pkR into the statement/context), this would still pass.
func TestKeyBindingRecipient(t *testing.T) {
	p := freshParties(t)
	m := []byte("key binding: recipient")
	sig := p.frank(t, m)
	fresh, err := amf.KeyGen(group.RoleRecipient)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	if amf.Verify(p.recipient.Private, p.sender.Public, fresh.Public, p.judge.Public, m, sig) {
		t.Fatalf("verify: expected false with a substituted recipient public key")
	}
}

// TestKeyBindingJudge mirrors TestKeyBindingRecipient for the judge's
// public key, keeping the genuine skJ and swapping only pkJ.
func TestKeyBindingJudge(t *testing.T) {
	p := freshParties(t)
	m := []byte("key binding: judge")
	sig := p.frank(t, m)
	fresh, err := amf.KeyGen(group.RoleJudge)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	if amf.Judge(p.judge.Private, p.sender.Public, p.recipient.Public, fresh.Public, m, sig) {
		t.Fatalf("judge: expected false with a substituted judge public key")
	}
}

// TestKeyBindingRecipientPublicKeyOnJudge and
// TestKeyBindingJudgePublicKeyOnVerify check the other half of property 3:
// pkR and pkJ are both bound into Verify's and Judge's Fiat-Shamir context
// (see amf.bindContext), not just into the check each performs with its
// own role's secret key.
func TestKeyBindingRecipientPublicKeyOnJudge(t *testing.T) {
	p := freshParties(t)
	m := []byte("key binding: recipient pubkey seen by judge")
	sig := p.frank(t, m)
	fresh, err := amf.KeyGen(group.RoleRecipient)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	if amf.Judge(p.judge.Private, p.sender.Public, fresh.Public, p.judge.Public, m, sig) {
		t.Fatalf("judge: expected false with a substituted recipient public key")
	}
}

func TestKeyBindingJudgePublicKeyOnVerify(t *testing.T) {
	p := freshParties(t)
	m := []byte("key binding: judge pubkey seen by verify")
	sig := p.frank(t, m)
	fresh, err := amf.KeyGen(group.RoleJudge)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	if amf.Verify(p.recipient.Private, p.sender.Public, p.recipient.Public, fresh.Public, m, sig) {
		t.Fatalf("verify: expected false with a substituted judge public key")
	}
}

// Property 4: serialization round-trip.
func TestSerializationRoundTrip(t *testing.T) {
	p := freshParties(t)
	m := []byte("round trip message")
	sig := p.frank(t, m)

	encoded, err := sig.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	decoded, err := amf.Unmarshal(encoded)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !p.verify(m, decoded) || !p.judgeCheck(m, decoded) {
		t.Fatalf("expected round-tripped signature to still verify and judge true")
	}

	reencoded, err := decoded.Marshal()
	if err != nil {
		t.Fatalf("Marshal (second pass): %v", err)
	}
	if !bytes.Equal(encoded, reencoded) {
		t.Fatalf("expected deterministic re-encoding")
	}

	skBytes := p.sender.Private.Marshal()
	skBack, err := group.PrivateKeyFromBytes(skBytes)
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes: %v", err)
	}
	if !skBack.X.Equal(p.sender.Private.X) {
		t.Fatalf("expected private key round trip to preserve the scalar")
	}
	pkBytes := p.sender.Public.Marshal()
	pkBack, err := group.PublicKeyFromBytes(pkBytes)
	if err != nil {
		t.Fatalf("PublicKeyFromBytes: %v", err)
	}
	if !pkBack.P.Equal(p.sender.Public.P) {
		t.Fatalf("expected public key round trip to preserve the point")
	}
}

// Property 5: malleability rejection.
func TestMalleabilityRejection(t *testing.T) {
	p := freshParties(t)
	m := []byte("malleability message")
	sig := p.frank(t, m)

	encoded, err := sig.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	tampered := make([]byte, len(encoded))
	copy(tampered, encoded)
	tampered[2] ^= 0x01

	decoded, err := amf.Unmarshal(tampered)
	if err != nil {
		// A flipped byte inside a point encoding can also simply be
		// rejected at decode time as non-canonical; that is an acceptable
		// way for malleability rejection to manifest.
		return
	}
	if p.verify(m, decoded) {
		t.Fatalf("verify: expected false for a tampered signature")
	}
	if p.judgeCheck(m, decoded) {
		t.Fatalf("judge: expected false for a tampered signature")
	}
}

// Property 6: PoK soundness spot-check.
func TestSoundnessRejectsRandomProofBytes(t *testing.T) {
	p := freshParties(t)
	m := []byte("soundness message")
	sig := p.frank(t, m)

	encoded, err := sig.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// Replace everything after the four points (the proof) with arbitrary
	// bytes of the same length, which either fails to parse or fails
	// verification.
	proofStart := 4 * group.PointByteLen
	garbage := make([]byte, len(encoded)-proofStart)
	for i := range garbage {
		garbage[i] = byte(0xAB ^ i)
	}
	corrupted := append(append([]byte{}, encoded[:proofStart]...), garbage...)

	decoded, err := amf.Unmarshal(corrupted)
	if err != nil {
		return
	}
	if p.verify(m, decoded) {
		t.Fatalf("verify: expected false for a signature with randomized proof bytes")
	}
}

// Property 7: PoK completeness under OR. Frank always proves the Or's left
// branch honest and simulates the right one; this checks that the
// recipient and judge paths, which each recompute the Or's offset with
// their own secret key, independently accept the same honestly generated
// signature. Completeness with either Or branch honest is covered by the
// pok package's TestOrCompletenessBothBranches.
func TestCompletenessUnderOr(t *testing.T) {
	p := freshParties(t)
	m := []byte("completeness message")
	sig := p.frank(t, m)
	if !p.verify(m, sig) {
		t.Fatalf("verify: expected true (recipient path)")
	}
	if !p.judgeCheck(m, sig) {
		t.Fatalf("judge: expected true (judge path)")
	}
}

// Property 8: determinism of verify/judge.
func TestDeterminism(t *testing.T) {
	p := freshParties(t)
	m := []byte("determinism message")
	sig := p.frank(t, m)

	first := p.verify(m, sig)
	second := p.verify(m, sig)
	if first != second {
		t.Fatalf("verify: expected repeated calls to agree, got %v then %v", first, second)
	}

	firstJudge := p.judgeCheck(m, sig)
	secondJudge := p.judgeCheck(m, sig)
	if firstJudge != secondJudge {
		t.Fatalf("judge: expected repeated calls to agree, got %v then %v", firstJudge, secondJudge)
	}
}

func TestBatchVerifyAndJudge(t *testing.T) {
	p := freshParties(t)
	messages := [][]byte{[]byte("one"), []byte("two"), []byte("three")}
	tasks := make([]amf.VerificationTask, len(messages))
	for i, m := range messages {
		tasks[i] = amf.VerificationTask{
			PkS: p.sender.Public, PkR: p.recipient.Public, PkJ: p.judge.Public,
			Message: m, Sig: p.frank(t, m),
		}
	}

	verifyResults := amf.BatchVerify(p.recipient.Private, tasks)
	judgeResults := amf.BatchJudge(p.judge.Private, tasks)
	for i := range tasks {
		if !verifyResults[i] {
			t.Fatalf("BatchVerify: expected true at index %d", i)
		}
		if !judgeResults[i] {
			t.Fatalf("BatchJudge: expected true at index %d", i)
		}
	}
}
