package registry

import (
	"clasp/internal/crypto"
	"clasp/internal/domain"
)

// proofTag domain-separates registration proofs from every other Ed25519
// signature a key produces (offers in particular).
const proofTag = "clasp-registry-proof-v1"

// ProofMessage is the transcript a registration proof signs: the tag, the
// owner reference, and the key being registered. Binding the owner ref in
// stops a proof being replayed to register the same key under another name.
func ProofMessage(owner domain.PartyRef, key domain.Ed25519Public) []byte {
	msg := make([]byte, 0, len(proofTag)+len(owner)+len(key))
	msg = append(msg, proofTag...)
	msg = append(msg, owner...)
	msg = append(msg, key[:]...)
	return msg
}

// NewRegisterRequest builds a registration request for id's signing key,
// proving ownership with id's private key. For a first registration
// PreviousProof stays empty; when rotating, sign the same transcript with
// the previous identity via AuthorizeRotation.
func NewRegisterRequest(owner domain.PartyRef, id domain.Identity) domain.RegisterRequest {
	return domain.RegisterRequest{
		Owner:      owner,
		SigningKey: id.EdPub,
		Proof:      crypto.SignEd25519(id.EdPriv, ProofMessage(owner, id.EdPub)),
	}
}

// AuthorizeRotation adds the previous-owner proof a key update requires.
func AuthorizeRotation(req domain.RegisterRequest, previous domain.Identity) domain.RegisterRequest {
	req.PreviousProof = crypto.SignEd25519(
		previous.EdPriv,
		ProofMessage(req.Owner, req.SigningKey),
	)
	return req
}

// VerifyProof checks that proof is key's signature over the registration
// transcript for owner.
func VerifyProof(owner domain.PartyRef, key domain.Ed25519Public, proof []byte) bool {
	return crypto.VerifyEd25519(key, ProofMessage(owner, key), proof)
}
