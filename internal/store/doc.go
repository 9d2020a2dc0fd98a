// Package store persists clasp state under the config directory.
//
// The long-term identity is encrypted at rest with a passphrase-derived key
// (scrypt + ChaCha20-Poly1305). Sessions and the peer trust cache are plain
// JSON written with 0600 permissions; session files contain transport keys,
// so the directory itself is the protection boundary there.
package store
