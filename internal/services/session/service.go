package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"clasp/internal/domain"
	"clasp/internal/protocol/handshake"
)

// Service runs handshakes and persists the resulting sessions.
//
// The registry is optional: when nil, handshakes rely on signature
// verification alone, and the trust cache records first-seen keys.
type Service struct {
	idStore      domain.IdentityStore
	peerStore    domain.PeerStore
	sessionStore domain.SessionStore
	registry     domain.IdentityRegistry
}

// New constructs a session Service with the given stores and optional registry.
func New(
	idStore domain.IdentityStore,
	peerStore domain.PeerStore,
	sessionStore domain.SessionStore,
	registry domain.IdentityRegistry,
) *Service {
	return &Service{
		idStore:      idStore,
		peerStore:    peerStore,
		sessionStore: sessionStore,
		registry:     registry,
	}
}

// Establish runs one full handshake attempt with peer.
//
// Steps:
//  1. Load our identity from secure storage.
//  2. Create a fresh handshake Party and signed offer.
//  3. Hand our offer to exchange, which delivers it out of band and returns
//     the peer's offer.
//  4. Accept the peer offer (registry-gated when a registry is configured).
//  5. Persist the session and cache the peer's now-verified signing key.
//
// A rejected offer surfaces as the handshake package's error; nothing is
// persisted in that case.
func (s *Service) Establish(
	ctx context.Context,
	passphrase string,
	peer domain.PartyRef,
	exchange domain.OfferExchange,
) (domain.Session, error) {
	id, err := s.idStore.LoadIdentity(passphrase)
	if err != nil {
		return domain.Session{}, err
	}

	opts := []handshake.Option{}
	if s.registry != nil {
		opts = append(opts, handshake.WithRegistry(s.registry))
	}
	party := handshake.New(id, opts...)
	if err := party.GenerateKeys(); err != nil {
		return domain.Session{}, err
	}
	ours, err := party.Offer()
	if err != nil {
		return domain.Session{}, err
	}

	theirs, err := exchange(ours)
	if err != nil {
		return domain.Session{}, err
	}

	key, err := party.Accept(ctx, peer, theirs)
	if err != nil {
		return domain.Session{}, err
	}

	session := domain.Session{
		ID:             domain.SessionID(uuid.NewString()),
		Peer:           peer,
		Key:            key,
		PeerSigningKey: theirs.SigningKey,
		CreatedUTC:     time.Now().Unix(),
	}
	if err := s.sessionStore.SaveSession(peer, session); err != nil {
		return domain.Session{}, err
	}
	if err := s.peerStore.SavePeerKey(peer, theirs.SigningKey); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// GetSession retrieves a stored session for the given peer.
func (s *Service) GetSession(peer domain.PartyRef) (domain.Session, bool, error) {
	return s.sessionStore.LoadSession(peer)
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
