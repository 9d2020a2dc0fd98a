// Package registry provides identity-registry implementations and the
// ownership-proof scheme they share.
//
// A registry binds an opaque party reference to an Ed25519 signing key. Its
// whole security contract is ownership binding: Register only succeeds when
// the request proves control of the key being registered (and, for updates,
// of the previously registered key). The handshake core consumes Lookup
// only and treats everything behind it as a black box.
//
// Implementations:
//
//   - Memory: in-process map; the test double and the backing store of the
//     registryd server.
//   - HTTPClient: JSON-over-HTTP client for a remote registryd.
//   - Server: http.Handler exposing a Memory (or any IdentityRegistry) over
//     HTTP.
package registry
