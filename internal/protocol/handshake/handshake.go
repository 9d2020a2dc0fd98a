package handshake

import (
	"context"
	"errors"
	"fmt"

	"clasp/internal/crypto"
	"clasp/internal/domain"
	"clasp/internal/util/memzero"
)

// DefaultContext is the HKDF domain-separation tag for the current protocol
// version. Hosts may supply a different (for example per-session) context via
// WithContext; see the replay note on Offer in internal/domain/types.
const DefaultContext = "secure_channel_v1"

var (
	// ErrInvalidSignature means the peer's offer failed signature
	// verification. The attempt is terminated; retry with a fresh Party.
	ErrInvalidSignature = errors.New("handshake: offer signature invalid")

	// ErrUnknownIdentity means the registry has no record for the claimed peer.
	ErrUnknownIdentity = errors.New("handshake: peer identity not registered")

	// ErrIdentityMismatch means the registry record does not match the
	// signing key presented in the offer.
	ErrIdentityMismatch = errors.New("handshake: offer signing key does not match registry record")

	// ErrState is returned when an operation is attempted from a state that
	// does not permit it, e.g. Accept after the handshake already terminated.
	ErrState = errors.New("handshake: operation not valid in current state")
)

// State tracks a Party through one handshake attempt.
type State int

const (
	StateIdle State = iota
	StateKeysGenerated
	StateOffered
	StateAccepted
	StateRejected
)

// String returns a short human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateKeysGenerated:
		return "keys-generated"
	case StateOffered:
		return "offered"
	case StateAccepted:
		return "accepted"
	case StateRejected:
		return "rejected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// terminal reports whether no further transitions are possible.
func (s State) terminal() bool { return s == StateAccepted || s == StateRejected }

// Option configures a Party.
type Option func(*Party)

// WithRegistry gates Accept on the registry's record for the claimed peer.
func WithRegistry(reg domain.IdentityRegistry) Option {
	return func(p *Party) { p.registry = reg }
}

// WithContext overrides the HKDF domain-separation context.
func WithContext(info []byte) Option {
	return func(p *Party) { p.info = append([]byte(nil), info...) }
}

// Party is one side of a single handshake attempt.
type Party struct {
	identity domain.Identity
	registry domain.IdentityRegistry
	info     []byte

	ephPriv domain.X25519Private
	ephPub  domain.X25519Public
	offered bool
	state   State
}

// New returns a Party in StateIdle holding the given long-term identity.
func New(identity domain.Identity, opts ...Option) *Party {
	p := &Party{
		identity: identity,
		info:     []byte(DefaultContext),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the current handshake state.
func (p *Party) State() State { return p.state }

// GenerateKeys creates the fresh ephemeral exchange pair for this attempt.
// Valid only from StateIdle.
func (p *Party) GenerateKeys() error {
	if p.state != StateIdle {
		return fmt.Errorf("%w: generate keys from %s", ErrState, p.state)
	}
	priv, pub, err := crypto.GenerateX25519()
	if err != nil {
		return err
	}
	p.ephPriv, p.ephPub = priv, pub
	p.state = StateKeysGenerated
	return nil
}

// Offer signs the ephemeral exchange public key with the long-term identity
// and returns the bundle to hand to the peer. Valid once per attempt, after
// GenerateKeys. A party that accepted the peer's offer first may still
// produce its own; only a rejected attempt cannot.
func (p *Party) Offer() (domain.Offer, error) {
	if p.offered || (p.state != StateKeysGenerated && p.state != StateAccepted) {
		return domain.Offer{}, fmt.Errorf("%w: offer from %s", ErrState, p.state)
	}
	sig := crypto.SignEd25519(p.identity.EdPriv, p.ephPub.Slice())
	p.offered = true
	if p.state == StateKeysGenerated {
		p.state = StateOffered
	}
	return domain.Offer{
		ExchangeKey: p.ephPub,
		SigningKey:  p.identity.EdPub,
		Signature:   sig,
	}, nil
}

// Accept verifies the peer's offer and, on success, derives the transport
// key, moving the Party to StateAccepted. Verification failure (or a
// registry gate failure) moves the Party to StateRejected and discards the
// ephemeral private key: no key material survives a rejected offer.
//
// The protocol is order-independent, so Accept may run before or after
// Offer; it requires only that GenerateKeys has run and the attempt has not
// already terminated.
func (p *Party) Accept(ctx context.Context, peer domain.PartyRef, offer domain.Offer) ([]byte, error) {
	if p.state == StateIdle || p.state.terminal() {
		return nil, fmt.Errorf("%w: accept from %s", ErrState, p.state)
	}

	if p.registry != nil {
		registered, ok, err := p.registry.Lookup(ctx, peer)
		if err != nil {
			// Infrastructure failure, not a protocol rejection: the attempt
			// stays live so the caller can retry the lookup.
			return nil, fmt.Errorf("handshake: registry lookup for %q: %w", peer, err)
		}
		if !ok {
			p.reject()
			return nil, fmt.Errorf("%w: %q", ErrUnknownIdentity, peer)
		}
		if registered != offer.SigningKey {
			p.reject()
			return nil, fmt.Errorf("%w: %q", ErrIdentityMismatch, peer)
		}
	}

	if !crypto.VerifyEd25519(offer.SigningKey, offer.ExchangeKey.Slice(), offer.Signature) {
		p.reject()
		return nil, ErrInvalidSignature
	}

	raw, err := crypto.DH(p.ephPriv, offer.ExchangeKey)
	if err != nil {
		p.reject()
		return nil, fmt.Errorf("handshake: exchange failed: %w", err)
	}
	key, err := crypto.DeriveKey(raw[:], p.info)
	memzero.Zero32(&raw)
	if err != nil {
		p.reject()
		return nil, err
	}

	memzero.Zero32((*[32]byte)(&p.ephPriv))
	p.state = StateAccepted
	return key, nil
}

// reject discards the ephemeral private key and terminates the attempt.
func (p *Party) reject() {
	memzero.Zero32((*[32]byte)(&p.ephPriv))
	p.state = StateRejected
}

// UnauthenticatedSecret derives a transport key from a bare exchange with no
// signature binding. This is the pre-hardening protocol variant: it agrees
// on a key with whoever supplied peerPub, which an active attacker can
// exploit by substituting exchange keys. Kept for demonstrating exactly that
// failure mode; real sessions go through Party.
func UnauthenticatedSecret(priv domain.X25519Private, peerPub domain.X25519Public, info []byte) ([]byte, error) {
	raw, err := crypto.DH(priv, peerPub)
	if err != nil {
		return nil, err
	}
	key, err := crypto.DeriveKey(raw[:], info)
	memzero.Zero32(&raw)
	return key, err
}
