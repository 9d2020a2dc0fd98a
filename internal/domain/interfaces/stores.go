package interfaces

import domaintypes "clasp/internal/domain/types"

// IdentityStore persists your long-term identity keys.
type IdentityStore interface {
	SaveIdentity(passphrase string, id domaintypes.Identity) error
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
}

// PeerStore is the local trust cache of signing keys verified so far.
type PeerStore interface {
	SavePeerKey(peer domaintypes.PartyRef, key domaintypes.Ed25519Public) error
	LoadPeerKey(peer domaintypes.PartyRef) (domaintypes.Ed25519Public, bool, error)
}

// SessionStore persists sessions produced by completed handshakes.
type SessionStore interface {
	SaveSession(peer domaintypes.PartyRef, session domaintypes.Session) error
	LoadSession(peer domaintypes.PartyRef) (domaintypes.Session, bool, error)
}
