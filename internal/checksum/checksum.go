// Package checksum computes non-cryptographic fingerprints for audit-style
// logging: a payload checksum before/after a transform, and a key fingerprint
// callers can log to correlate tenants without ever logging key bytes.
package checksum

import "github.com/cespare/xxhash/v2"

// Payload returns an xxhash fingerprint of b, suitable for comparing
// before/after buffers in a status log line.
func Payload(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// KeyFingerprint returns an xxhash fingerprint of an 8-byte key. It is a
// one-way, non-cryptographic digest meant only for log correlation — it is
// not a substitute for access control.
func KeyFingerprint(key [8]byte) uint64 {
	return xxhash.Sum64(key[:])
}
