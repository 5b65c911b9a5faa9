package group

import (
	"crypto/rand"
	"testing"
)

func TestKeyGenDistributionIsRoleAgnostic(t *testing.T) {
	for _, role := range []Role{RoleSender, RoleRecipient, RoleJudge} {
		kp, err := KeyGen(role, rand.Reader)
		if err != nil {
			t.Fatalf("KeyGen(%v): %v", role, err)
		}
		if !kp.Public.P.Equal(G().ScalarMul(kp.Private.X)) {
			t.Fatalf("public key is not x*G for role %v", role)
		}
	}
}

func TestKeyRoundTrip(t *testing.T) {
	kp, err := KeyGen(RoleSender, rand.Reader)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}

	sk2, err := PrivateKeyFromBytes(kp.Private.Marshal())
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes: %v", err)
	}
	if !sk2.X.Equal(kp.Private.X) {
		t.Fatalf("private key round-trip mismatch")
	}

	pk2, err := PublicKeyFromBytes(kp.Public.Marshal())
	if err != nil {
		t.Fatalf("PublicKeyFromBytes: %v", err)
	}
	if !pk2.P.Equal(kp.Public.P) {
		t.Fatalf("public key round-trip mismatch")
	}
}

func TestDeriveChildKeyIsDeterministicAndDistinct(t *testing.T) {
	kp, err := KeyGen(RoleSender, rand.Reader)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}

	c1 := DeriveChildKey(kp.Private, []uint32{0, 1})
	c2 := DeriveChildKey(kp.Private, []uint32{0, 1})
	if !c1.X.Equal(c2.X) {
		t.Fatalf("child key derivation is not deterministic")
	}

	c3 := DeriveChildKey(kp.Private, []uint32{0, 2})
	if c1.X.Equal(c3.X) {
		t.Fatalf("different derivation paths should yield different keys")
	}

	if c1.X.Equal(kp.Private.X) {
		t.Fatalf("child key should differ from the master key")
	}
}
