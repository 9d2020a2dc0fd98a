package types

// KeyRecord is a registry entry binding a party reference to a signing key.
type KeyRecord struct {
	Owner      PartyRef      `json:"owner"`
	SigningKey Ed25519Public `json:"signing_key"`
	UpdatedUTC int64         `json:"updated_utc"`
}

// RegisterRequest asks the registry to bind Owner to SigningKey. Proof is an
// Ed25519 signature over the registration transcript (see
// registry.ProofMessage) made with the private half of SigningKey; an update
// additionally requires PreviousProof, the same transcript signed with the
// previously registered key.
type RegisterRequest struct {
	Owner         PartyRef      `json:"owner"`
	SigningKey    Ed25519Public `json:"signing_key"`
	Proof         []byte        `json:"proof"`
	PreviousProof []byte        `json:"previous_proof,omitempty"`
}
