package types

// Identity holds your long-term Ed25519 signing keys. The signing private
// key never leaves the owning party; the public half may be shared and
// registered with an identity registry.
type Identity struct {
	EdPub  Ed25519Public  `json:"edpub"`
	EdPriv Ed25519Private `json:"edpriv"`
}
