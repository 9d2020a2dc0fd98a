package types

// Offer is the signed bundle one party sends to authenticate its
// key-exchange contribution. It is the only artifact that crosses the trust
// boundary before verification and is immutable once constructed.
//
// The signature covers exactly the exchange public key bytes. Notably the
// signing public key itself is not under the signature, so an offer proves
// "this signer vouches for this exchange key", not which signing identity
// supplied it; see the hardening notes in DESIGN.md.
type Offer struct {
	ExchangeKey X25519Public  `json:"exchange_key"`
	SigningKey  Ed25519Public `json:"signing_key"`
	Signature   []byte        `json:"signature"`
}
