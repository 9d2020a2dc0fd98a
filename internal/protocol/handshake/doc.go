// Package handshake implements clasp's signature-bound key agreement.
//
// Each side generates a fresh X25519 pair per attempt, signs the exchange
// public key with its long-term Ed25519 identity, and swaps the resulting
// offers out of band. A transport key is derived only after the peer's
// signature (and, when configured, the identity-registry record) verifies;
// a rejected offer terminates the attempt with no key material retained.
//
// The protocol is symmetric: there is no initiator or responder role, and a
// party may produce its offer before or after receiving the peer's. A Party
// is single-use; a retry means a new Party with fresh keys.
//
// Party is not safe for concurrent use. A host driving one handshake from
// multiple goroutines must serialize access itself.
package handshake
