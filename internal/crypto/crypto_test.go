package crypto_test

import (
	"bytes"
	"testing"

	"clasp/internal/crypto"
)

func TestDH_BothSidesAgree(t *testing.T) {
	aPriv, aPub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	bPriv, bPub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}

	ab, err := crypto.DH(aPriv, bPub)
	if err != nil {
		t.Fatalf("DH: %v", err)
	}
	ba, err := crypto.DH(bPriv, aPub)
	if err != nil {
		t.Fatalf("DH: %v", err)
	}
	if ab != ba {
		t.Fatal("exchange results differ")
	}
}

func TestDeriveKey_DeterministicAndContextBound(t *testing.T) {
	secret := bytes.Repeat([]byte{0x42}, 32)

	k1, err := crypto.DeriveKey(secret, []byte("secure_channel_v1"))
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	k2, err := crypto.DeriveKey(secret, []byte("secure_channel_v1"))
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	k3, err := crypto.DeriveKey(secret, []byte("secure_channel_v2"))
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}

	if len(k1) != crypto.KeySize {
		t.Fatalf("key length %d, want %d", len(k1), crypto.KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatal("same inputs produced different keys")
	}
	if bytes.Equal(k1, k3) {
		t.Fatal("different contexts produced the same key")
	}
	if bytes.Equal(k1, secret) {
		t.Fatal("derived key equals raw secret")
	}
}

func TestSignEd25519_VerifyAndReject(t *testing.T) {
	priv, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}

	msg := []byte("exchange key bytes")
	sig := crypto.SignEd25519(priv, msg)
	if len(sig) != crypto.SignatureSize {
		t.Fatalf("signature length %d, want %d", len(sig), crypto.SignatureSize)
	}
	if !crypto.VerifyEd25519(pub, msg, sig) {
		t.Fatal("genuine signature rejected")
	}
	if crypto.VerifyEd25519(pub, []byte("other bytes"), sig) {
		t.Fatal("signature accepted over different message")
	}

	_, otherPub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	if crypto.VerifyEd25519(otherPub, msg, sig) {
		t.Fatal("signature accepted under wrong key")
	}
}

func TestFingerprint_ShortHex(t *testing.T) {
	_, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	fp := crypto.Fingerprint(pub.Slice())
	if len(fp) != 20 {
		t.Fatalf("fingerprint length %d, want 20", len(fp))
	}
}
