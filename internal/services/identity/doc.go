// Package identity manages the long-term Ed25519 identity: generation,
// passphrase-protected storage, and fingerprinting for display.
package identity
