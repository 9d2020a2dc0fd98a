// Package channel wraps a handshake-derived transport key in an AEAD
// session (ChaCha20-Poly1305).
//
// Each message is sealed under a 12-byte nonce built from an 8-byte
// big-endian outbound counter followed by 4 random bytes. The counter
// guarantees uniqueness within the session even if the random suffix ever
// collided; the random suffix limits the damage of counter-state loss in a
// restarted host. Each side of a conversation keeps its own outbound
// counter; receivers make no assumption about counter sequencing.
//
// Receive never releases plaintext from a message whose tag fails to
// verify. No replay window is kept: rejecting a replayed (valid) ciphertext
// is the host's concern.
package channel
