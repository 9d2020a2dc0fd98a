package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey expands a raw exchange secret into a KeySize-byte transport key
// using HKDF-SHA256 (RFC 5869). The salt is deliberately empty; info is the
// protocol's domain-separation context and is what keeps keys derived for
// different purposes or protocol versions distinct. Deterministic for
// identical inputs.
func DeriveKey(secret, info []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, secret, nil, info)
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}
