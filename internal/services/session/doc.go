// Package session orchestrates authenticated handshakes: it loads the local
// identity, drives a handshake.Party against the peer offer delivered by the
// host's transport, persists the established session, and caches the peer's
// verified signing key.
package session
