package store

import (
	"path/filepath"
	"sync"

	"clasp/internal/domain"
)

const peersFilename = "peers.json"

// PeerFileStore is the on-disk trust cache of signing keys that verified in
// past handshakes. Entries are public keys, so the file is plain JSON.
type PeerFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPeerFileStore returns a PeerFileStore rooted at dir.
func NewPeerFileStore(dir string) *PeerFileStore {
	return &PeerFileStore{dir: dir}
}

// SavePeerKey records peer's verified signing key.
func (s *PeerFileStore) SavePeerKey(peer domain.PartyRef, key domain.Ed25519Public) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, peersFilename)
	peers := map[domain.PartyRef]domain.Ed25519Public{}
	if _, err := readJSON(path, &peers); err != nil {
		return err
	}
	peers[peer] = key
	return writeJSON(path, peers)
}

// LoadPeerKey retrieves peer's cached signing key.
func (s *PeerFileStore) LoadPeerKey(peer domain.PartyRef) (domain.Ed25519Public, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, peersFilename)
	peers := map[domain.PartyRef]domain.Ed25519Public{}
	exists, err := readJSON(path, &peers)
	if err != nil {
		return domain.Ed25519Public{}, false, err
	}
	if !exists {
		return domain.Ed25519Public{}, false, nil
	}
	key, ok := peers[peer]
	return key, ok, nil
}

// Compile-time assertion that PeerFileStore implements domain.PeerStore.
var _ domain.PeerStore = (*PeerFileStore)(nil)
