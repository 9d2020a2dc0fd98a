package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"clasp/internal/crypto"
	"clasp/internal/domain"
)

var (
	// ErrBadProof means the request's ownership proof did not verify.
	ErrBadProof = errors.New("registry: ownership proof invalid")

	// ErrRotationDenied means an update to an existing record lacked a valid
	// proof from the previously registered key.
	ErrRotationDenied = errors.New("registry: update not authorized by previous key")
)

// Memory is an in-process IdentityRegistry. It is the test double for the
// handshake core and the backing store of the registryd server.
type Memory struct {
	mu      sync.RWMutex
	records map[domain.PartyRef]domain.KeyRecord
}

// NewMemory returns an empty in-memory registry.
func NewMemory() *Memory {
	return &Memory{records: make(map[domain.PartyRef]domain.KeyRecord)}
}

// Lookup returns the currently registered signing key for owner, if any.
func (m *Memory) Lookup(_ context.Context, owner domain.PartyRef) (domain.Ed25519Public, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[owner]
	if !ok {
		return domain.Ed25519Public{}, false, nil
	}
	return rec.SigningKey, true, nil
}

// Register binds req.Owner to req.SigningKey after checking the ownership
// proof. Re-registering the identical key is a no-op; replacing a key
// additionally requires a proof signed by the key being replaced.
func (m *Memory) Register(_ context.Context, req domain.RegisterRequest) error {
	if !VerifyProof(req.Owner, req.SigningKey, req.Proof) {
		return fmt.Errorf("%w: owner %q", ErrBadProof, req.Owner)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.records[req.Owner]; ok && prev.SigningKey != req.SigningKey {
		transcript := ProofMessage(req.Owner, req.SigningKey)
		if !crypto.VerifyEd25519(prev.SigningKey, transcript, req.PreviousProof) {
			return fmt.Errorf("%w: owner %q", ErrRotationDenied, req.Owner)
		}
	}

	m.records[req.Owner] = domain.KeyRecord{
		Owner:      req.Owner,
		SigningKey: req.SigningKey,
		UpdatedUTC: time.Now().Unix(),
	}
	return nil
}

// Compile-time assertion that Memory implements domain.IdentityRegistry.
var _ domain.IdentityRegistry = (*Memory)(nil)
