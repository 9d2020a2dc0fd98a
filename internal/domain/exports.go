package domain

import (
	interfaces "clasp/internal/domain/interfaces"
	types "clasp/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PartyRef        = types.PartyRef
	Fingerprint     = types.Fingerprint
	SessionID       = types.SessionID
	Identity        = types.Identity
	Offer           = types.Offer
	Session         = types.Session
	KeyRecord       = types.KeyRecord
	RegisterRequest = types.RegisterRequest
	X25519Public    = types.X25519Public
	X25519Private   = types.X25519Private
	Ed25519Public   = types.Ed25519Public
	Ed25519Private  = types.Ed25519Private
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	IdentityRegistry = interfaces.IdentityRegistry
	IdentityService  = interfaces.IdentityService
	SessionService   = interfaces.SessionService
	OfferExchange    = interfaces.OfferExchange
	IdentityStore    = interfaces.IdentityStore
	PeerStore        = interfaces.PeerStore
	SessionStore     = interfaces.SessionStore
)

// Constructor re-exports.
var (
	MustX25519Public  = types.MustX25519Public
	MustEd25519Public = types.MustEd25519Public
)
