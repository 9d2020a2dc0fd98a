package interfaces

import (
	"context"

	domaintypes "clasp/internal/domain/types"
)

// IdentityRegistry is the external trust anchor consulted before a peer's
// signing identity is accepted. Implementations own the ownership-binding
// contract: Register must reject proofs that do not correspond to the owner
// reference. The handshake core only consumes Lookup.
type IdentityRegistry interface {
	Lookup(ctx context.Context, owner domaintypes.PartyRef) (domaintypes.Ed25519Public, bool, error)
	Register(ctx context.Context, req domaintypes.RegisterRequest) error
}
