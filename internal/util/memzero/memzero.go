// Package memzero provides best-effort wiping of sensitive byte buffers.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// Zero32 wipes a fixed-size 32-byte secret in place.
func Zero32(b *[32]byte) {
	Zero(b[:])
}
