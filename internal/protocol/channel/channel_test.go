package channel_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"sync"
	"testing"

	"clasp/internal/crypto"
	"clasp/internal/domain"
	"clasp/internal/protocol/channel"
	"clasp/internal/protocol/handshake"
)

// makeKey returns a random 32-byte transport key.
func makeKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, channel.KeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("rand: %v", err)
	}
	return key
}

func makeChannel(t *testing.T, key []byte) *channel.Channel {
	t.Helper()
	ch, err := channel.New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ch
}

func TestNew_RejectsBadKeySize(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		if _, err := channel.New(make([]byte, n)); err == nil {
			t.Fatalf("want error for %d-byte key", n)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	key := makeKey(t)
	sender := makeChannel(t, key)
	receiver := makeChannel(t, key)

	cases := []struct {
		name      string
		plaintext []byte
		ad        []byte
	}{
		{"plain message", []byte("Hello Bob! This is a secret message."), nil},
		{"with associated data", []byte("payload"), []byte("msg-id:42")},
		{"empty plaintext", nil, []byte("header only")},
		{"binary", []byte{0x00, 0xff, 0x10, 0x80}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ct, nonce, err := sender.Send(tc.plaintext, tc.ad)
			if err != nil {
				t.Fatalf("Send: %v", err)
			}
			if want := len(tc.plaintext) + channel.Overhead; len(ct) != want {
				t.Fatalf("ciphertext length %d, want %d", len(ct), want)
			}
			pt, err := receiver.Receive(ct, nonce, tc.ad)
			if err != nil {
				t.Fatalf("Receive: %v", err)
			}
			if !bytes.Equal(pt, tc.plaintext) {
				t.Fatalf("round trip mismatch: got %q want %q", pt, tc.plaintext)
			}
		})
	}
}

func TestReceive_TamperDetected(t *testing.T) {
	key := makeKey(t)
	sender := makeChannel(t, key)
	receiver := makeChannel(t, key)

	msg := []byte("Hello Bob! This is a secret message.")
	ct, nonce, err := sender.Send(msg, nil)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	t.Run("ciphertext body flipped", func(t *testing.T) {
		tampered := append([]byte(nil), ct...)
		tampered[10] ^= 0xff // inside the body, not the tag
		pt, err := receiver.Receive(tampered, nonce, nil)
		if !errors.Is(err, channel.ErrTamperDetected) {
			t.Fatalf("want ErrTamperDetected, got %v", err)
		}
		if pt != nil {
			t.Fatal("plaintext released from tampered message")
		}
	})

	t.Run("every single-byte flip rejected", func(t *testing.T) {
		for i := range ct {
			tampered := append([]byte(nil), ct...)
			tampered[i] ^= 0x01
			if _, err := receiver.Receive(tampered, nonce, nil); !errors.Is(err, channel.ErrTamperDetected) {
				t.Fatalf("byte %d: want ErrTamperDetected, got %v", i, err)
			}
		}
	})

	t.Run("wrong associated data rejected", func(t *testing.T) {
		ct2, nonce2, err := sender.Send(msg, []byte("ad-A"))
		if err != nil {
			t.Fatalf("Send: %v", err)
		}
		if _, err := receiver.Receive(ct2, nonce2, []byte("ad-B")); !errors.Is(err, channel.ErrTamperDetected) {
			t.Fatalf("want ErrTamperDetected, got %v", err)
		}
	})

	t.Run("channel usable after rejecting a message", func(t *testing.T) {
		ct3, nonce3, err := sender.Send([]byte("still here"), nil)
		if err != nil {
			t.Fatalf("Send: %v", err)
		}
		pt, err := receiver.Receive(ct3, nonce3, nil)
		if err != nil {
			t.Fatalf("Receive after tamper: %v", err)
		}
		if string(pt) != "still here" {
			t.Fatalf("got %q", pt)
		}
	})
}

func TestSend_NonceCounterStrictlyIncreasing(t *testing.T) {
	ch := makeChannel(t, makeKey(t))

	const n = 64
	var prev uint64
	seen := make(map[uint64]bool, n)
	for i := 0; i < n; i++ {
		_, nonce, err := ch.Send([]byte("m"), nil)
		if err != nil {
			t.Fatalf("Send %d: %v", i, err)
		}
		if len(nonce) != channel.NonceSize {
			t.Fatalf("nonce length %d, want %d", len(nonce), channel.NonceSize)
		}
		ctr := binary.BigEndian.Uint64(nonce[:8])
		if ctr != uint64(i) {
			t.Fatalf("send %d: counter %d", i, ctr)
		}
		if i > 0 && ctr <= prev {
			t.Fatalf("counter not strictly increasing: %d after %d", ctr, prev)
		}
		if seen[ctr] {
			t.Fatalf("counter %d repeated", ctr)
		}
		seen[ctr] = true
		prev = ctr
	}
}

func TestSend_ConcurrentSendersGetUniqueNonces(t *testing.T) {
	ch := makeChannel(t, makeKey(t))

	const workers, perWorker = 8, 50
	var mu sync.Mutex
	counters := make(map[uint64]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, nonce, err := ch.Send([]byte("m"), nil)
				if err != nil {
					t.Errorf("Send: %v", err)
					return
				}
				ctr := binary.BigEndian.Uint64(nonce[:8])
				mu.Lock()
				if counters[ctr] {
					t.Errorf("counter %d reused", ctr)
				}
				counters[ctr] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(counters) != workers*perWorker {
		t.Fatalf("got %d unique counters, want %d", len(counters), workers*perWorker)
	}
}

func TestZeroValueAndNilChannel_NotEstablished(t *testing.T) {
	var zero channel.Channel
	if _, _, err := zero.Send([]byte("x"), nil); !errors.Is(err, channel.ErrNotEstablished) {
		t.Fatalf("zero Send: want ErrNotEstablished, got %v", err)
	}
	if _, err := zero.Receive([]byte("x"), make([]byte, channel.NonceSize), nil); !errors.Is(err, channel.ErrNotEstablished) {
		t.Fatalf("zero Receive: want ErrNotEstablished, got %v", err)
	}

	var nilCh *channel.Channel
	if _, _, err := nilCh.Send([]byte("x"), nil); !errors.Is(err, channel.ErrNotEstablished) {
		t.Fatalf("nil Send: want ErrNotEstablished, got %v", err)
	}
}

func TestClose_RefusesFurtherUse(t *testing.T) {
	key := makeKey(t)
	ch := makeChannel(t, key)

	ct, nonce, err := ch.Send([]byte("last words"), nil)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	ch.Close()
	if _, _, err := ch.Send([]byte("more"), nil); !errors.Is(err, channel.ErrClosed) {
		t.Fatalf("Send after Close: want ErrClosed, got %v", err)
	}
	if _, err := ch.Receive(ct, nonce, nil); !errors.Is(err, channel.ErrClosed) {
		t.Fatalf("Receive after Close: want ErrClosed, got %v", err)
	}
}

// End-to-end: authenticated handshake feeds the channel, then a tampered
// transport byte is caught on receive.
func TestHandshakeToChannel_EndToEnd(t *testing.T) {
	aliceID := mustIdentity(t)
	bobID := mustIdentity(t)

	alice := handshake.New(aliceID)
	bob := handshake.New(bobID)
	if err := alice.GenerateKeys(); err != nil {
		t.Fatalf("GenerateKeys: %v", err)
	}
	if err := bob.GenerateKeys(); err != nil {
		t.Fatalf("GenerateKeys: %v", err)
	}

	aliceOffer, err := alice.Offer()
	if err != nil {
		t.Fatalf("Offer: %v", err)
	}
	bobOffer, err := bob.Offer()
	if err != nil {
		t.Fatalf("Offer: %v", err)
	}

	aliceKey, err := alice.Accept(context.Background(), "bob", bobOffer)
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	bobKey, err := bob.Accept(context.Background(), "alice", aliceOffer)
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}

	aliceCh := makeChannel(t, aliceKey)
	bobCh := makeChannel(t, bobKey)

	msg := []byte("Hello Bob! This is a secret message.")
	ct, nonce, err := aliceCh.Send(msg, nil)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	pt, err := bobCh.Receive(ct, nonce, nil)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if !bytes.Equal(pt, msg) {
		t.Fatalf("got %q", pt)
	}

	tampered := append([]byte(nil), ct...)
	tampered[10] ^= 0xff
	if _, err := bobCh.Receive(tampered, nonce, nil); !errors.Is(err, channel.ErrTamperDetected) {
		t.Fatalf("want ErrTamperDetected, got %v", err)
	}
}

func mustIdentity(t *testing.T) domain.Identity {
	t.Helper()
	edPriv, edPub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	return domain.Identity{EdPub: edPub, EdPriv: edPriv}
}
