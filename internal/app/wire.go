package app

import (
	"net/http"

	"clasp/internal/domain"
	"clasp/internal/registry"
	identitysvc "clasp/internal/services/identity"
	sessionsvc "clasp/internal/services/session"
	"clasp/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Identities domain.IdentityService
	Sessions   domain.SessionService
	Registry   domain.IdentityRegistry // nil when no registry is configured
	Peers      domain.PeerStore
	HTTP       *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	// File-based stores
	identityStore := store.NewIdentityFileStore(cfg.Home)
	peerStore := store.NewPeerFileStore(cfg.Home)
	sessionStore := store.NewSessionFileStore(cfg.Home)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	// Registry client; the handshake runs without the registry gate when no
	// URL is configured.
	var reg domain.IdentityRegistry
	if cfg.RegistryURL != "" {
		reg = registry.NewHTTPClient(cfg.RegistryURL, httpClient)
	}

	// High-level services
	identitySvc := identitysvc.New(identityStore)
	sessionSvc := sessionsvc.New(identityStore, peerStore, sessionStore, reg)

	return &Wire{
		Identities: identitySvc,
		Sessions:   sessionSvc,
		Registry:   reg,
		Peers:      peerStore,
		HTTP:       httpClient,
	}, nil
}
