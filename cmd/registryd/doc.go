// Package main runs the in-memory HTTP identity registry used by clasp
// during development and tests. It binds party references to Ed25519 signing
// keys and enforces ownership proofs on registration.
//
// HTTP API
//
//	POST /register
//	    Bind a party reference to a signing key. The request must carry a
//	    proof signed by the key being registered; replacing an existing key
//	    additionally requires a proof signed by the previous key.
//
//	GET /keys/{owner}
//	    Return the current KeyRecord for {owner}, or 404 if unregistered.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry a short error message.
//   - The default listen address is :8080, configurable via REGISTRYD_ADDRESS
//     (a .env file is honoured when present).
//
// The registry never sees private keys or session secrets; it stores public
// keys and the proofs presented with them.
package main
