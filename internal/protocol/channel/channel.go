package channel

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"

	"clasp/internal/util/memzero"
)

const (
	// KeySize is the transport key length the channel accepts.
	KeySize = chacha20poly1305.KeySize
	// NonceSize is the per-message nonce length: an 8-byte big-endian
	// counter followed by 4 random bytes.
	NonceSize = chacha20poly1305.NonceSize
	// Overhead is the authentication tag length appended to every ciphertext.
	Overhead = chacha20poly1305.Overhead

	counterBytes = 8
)

var (
	// ErrTamperDetected means the ciphertext failed tag verification. The
	// message is unrecoverable; the channel itself remains usable.
	ErrTamperDetected = errors.New("channel: message authentication failed")

	// ErrNotEstablished means the channel was used before being constructed
	// from a handshake-derived key. This is a programming error, not a
	// recoverable protocol condition.
	ErrNotEstablished = errors.New("channel: not established")

	// ErrCounterExhausted means the outbound nonce space is spent. The
	// channel can no longer send; establish a new one with a fresh handshake.
	ErrCounterExhausted = errors.New("channel: outbound nonce counter exhausted")

	// ErrClosed means the channel was torn down with Close.
	ErrClosed = errors.New("channel: closed")
)

// Channel is an established AEAD session keyed with one handshake's shared
// secret. The zero value is unusable and fails with ErrNotEstablished.
//
// Send serializes counter updates internally, so a single Channel may be
// shared by concurrent senders without breaking nonce uniqueness.
type Channel struct {
	mu      sync.Mutex
	aead    cipher.AEAD
	counter uint64
	closed  bool
}

// New builds a channel from a 32-byte transport key. The key slice is copied
// for the cipher and wiped; the caller's copy is not touched.
func New(key []byte) (*Channel, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("channel: key must be %d bytes, got %d", KeySize, len(key))
	}
	k := append([]byte(nil), key...)
	aead, err := chacha20poly1305.New(k)
	memzero.Zero(k)
	if err != nil {
		return nil, err
	}
	return &Channel{aead: aead}, nil
}

// Send encrypts and authenticates plaintext, binding ad without encrypting
// it. It returns the ciphertext (plaintext length plus Overhead) and the
// nonce the receiver must present to Receive. The host carries ad out of
// band and must supply it, byte for byte, on the receiving side.
func (c *Channel) Send(plaintext, ad []byte) (ciphertext, nonce []byte, err error) {
	if c == nil || c.aead == nil {
		return nil, nil, ErrNotEstablished
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, nil, ErrClosed
	}
	if c.counter == math.MaxUint64 {
		return nil, nil, ErrCounterExhausted
	}

	nonce = make([]byte, NonceSize)
	binary.BigEndian.PutUint64(nonce[:counterBytes], c.counter)
	if _, err := rand.Read(nonce[counterBytes:]); err != nil {
		return nil, nil, err
	}
	c.counter++

	ciphertext = c.aead.Seal(nil, nonce, plaintext, ad)
	return ciphertext, nonce, nil
}

// Receive verifies and decrypts a message. On tag mismatch it returns
// ErrTamperDetected and no plaintext. Receive keeps no state: replayed
// valid ciphertexts are not detected here.
func (c *Channel) Receive(ciphertext, nonce, ad []byte) ([]byte, error) {
	if c == nil || c.aead == nil {
		return nil, ErrNotEstablished
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("channel: nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}

	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, ad)
	if err != nil {
		return nil, ErrTamperDetected
	}
	return plaintext, nil
}

// Close tears the channel down. Subsequent Send/Receive calls fail with
// ErrClosed. A new handshake is required to communicate again.
func (c *Channel) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}
