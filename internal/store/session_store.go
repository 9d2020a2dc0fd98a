package store

import (
	"path/filepath"
	"sync"

	"clasp/internal/domain"
)

const sessionsFilename = "sessions.json"

// SessionFileStore persists handshake-established sessions to disk.
type SessionFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir}
}

// SaveSession writes a session record for peer.
func (s *SessionFileStore) SaveSession(peer domain.PartyRef, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, sessionsFilename)
	sessions := map[domain.PartyRef]domain.Session{}
	if _, err := readJSON(path, &sessions); err != nil {
		return err
	}
	sessions[peer] = session
	return writeJSON(path, sessions)
}

// LoadSession retrieves a stored session for peer.
func (s *SessionFileStore) LoadSession(peer domain.PartyRef) (domain.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, sessionsFilename)
	sessions := map[domain.PartyRef]domain.Session{}
	exists, err := readJSON(path, &sessions)
	if err != nil {
		return domain.Session{}, false, err
	}
	if !exists {
		return domain.Session{}, false, nil
	}
	session, ok := sessions[peer]
	return session, ok, nil
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
