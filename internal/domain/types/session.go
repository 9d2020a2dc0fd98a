package types

// Session records a successfully completed handshake with a peer: the
// derived transport key plus the metadata needed to audit or resume
// communication at the host layer.
type Session struct {
	ID             SessionID     `json:"id"`
	Peer           PartyRef      `json:"peer"`
	Key            []byte        `json:"key"`
	PeerSigningKey Ed25519Public `json:"peer_signing_key"`
	CreatedUTC     int64         `json:"created_utc"`
}
