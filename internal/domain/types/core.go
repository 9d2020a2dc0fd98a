package types

// PartyRef names a party in the external identity registry. It is an opaque
// reference (wallet address, account name, ...) chosen by the host.
type PartyRef string

// String returns the string form of the reference.
func (r PartyRef) String() string { return string(r) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// SessionID uniquely identifies an established session.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }
