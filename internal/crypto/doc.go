// Package crypto exposes the minimal primitives used by clasp.
//
// Contents
//
//   - X25519 key generation, clamping and Diffie-Hellman (GenerateX25519, DH)
//   - Ed25519 key generation, signing and verification (GenerateEd25519,
//     SignEd25519, VerifyEd25519)
//   - HKDF-SHA256 key derivation with domain-separation context (DeriveKey)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// All key material moves through fixed-size array types defined in
// internal/domain to avoid accidental reallocations. Callers should treat
// returned secrets as sensitive and rely on memzero.Zero when practical to
// reduce lifetime in memory.
package crypto
