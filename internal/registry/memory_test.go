package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clasp/internal/crypto"
	"clasp/internal/domain"
	"clasp/internal/registry"
)

func makeIdentity(t *testing.T) domain.Identity {
	t.Helper()
	edPriv, edPub, err := crypto.GenerateEd25519()
	require.NoError(t, err)
	return domain.Identity{EdPub: edPub, EdPriv: edPriv}
}

func TestMemory_RegisterAndLookup(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewMemory()
	alice := makeIdentity(t)

	_, ok, err := reg.Lookup(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok, "lookup before registration")

	require.NoError(t, reg.Register(ctx, registry.NewRegisterRequest("alice", alice)))

	key, ok, err := reg.Lookup(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, alice.EdPub, key)
}

func TestMemory_RejectsBadProof(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewMemory()
	alice := makeIdentity(t)
	mallory := makeIdentity(t)

	// Proof signed by the wrong key.
	req := registry.NewRegisterRequest("alice", alice)
	req.Proof = crypto.SignEd25519(mallory.EdPriv, registry.ProofMessage("alice", alice.EdPub))
	assert.ErrorIs(t, reg.Register(ctx, req), registry.ErrBadProof)

	// Proof for one owner replayed under another name.
	good := registry.NewRegisterRequest("alice", alice)
	good.Owner = "alice-clone"
	assert.ErrorIs(t, reg.Register(ctx, good), registry.ErrBadProof)

	_, ok, err := reg.Lookup(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok, "nothing should be registered")
}

func TestMemory_KeyRotation(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewMemory()
	old := makeIdentity(t)
	next := makeIdentity(t)

	require.NoError(t, reg.Register(ctx, registry.NewRegisterRequest("alice", old)))

	// Same key again is fine.
	require.NoError(t, reg.Register(ctx, registry.NewRegisterRequest("alice", old)))

	// A new key without the previous owner's blessing is refused.
	takeover := registry.NewRegisterRequest("alice", next)
	assert.ErrorIs(t, reg.Register(ctx, takeover), registry.ErrRotationDenied)

	key, ok, err := reg.Lookup(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, old.EdPub, key, "old key must survive the failed takeover")

	// With the previous key countersigning, rotation goes through.
	rotation := registry.AuthorizeRotation(registry.NewRegisterRequest("alice", next), old)
	require.NoError(t, reg.Register(ctx, rotation))

	key, ok, err = reg.Lookup(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, next.EdPub, key)
}

func TestVerifyProof(t *testing.T) {
	alice := makeIdentity(t)
	req := registry.NewRegisterRequest("alice", alice)

	assert.True(t, registry.VerifyProof("alice", req.SigningKey, req.Proof))
	assert.False(t, registry.VerifyProof("bob", req.SigningKey, req.Proof))
	assert.False(t, registry.VerifyProof("alice", req.SigningKey, []byte("junk")))
}
