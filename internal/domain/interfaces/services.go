package interfaces

import (
	"context"

	domaintypes "clasp/internal/domain/types"
)

// IdentityService creates, retrieves, and inspects your identity keys.
type IdentityService interface {
	GenerateIdentity(passphrase string) (
		domaintypes.Identity,
		domaintypes.Fingerprint,
		error,
	)
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
	FingerprintIdentity(passphrase string) (domaintypes.Fingerprint, error)
}

// OfferExchange delivers our signed offer to the peer and returns the
// peer's offer. It abstracts whatever out-of-band transport the host uses;
// the core never moves bytes across a network itself.
type OfferExchange func(ours domaintypes.Offer) (domaintypes.Offer, error)

// SessionService runs authenticated handshakes and persists the result.
type SessionService interface {
	Establish(
		ctx context.Context,
		passphrase string,
		peer domaintypes.PartyRef,
		exchange OfferExchange,
	) (domaintypes.Session, error)
	GetSession(peer domaintypes.PartyRef) (domaintypes.Session, bool, error)
}
