// Package keymaterial normalizes caller-supplied key input — text or a raw
// byte list — into the fixed 8-byte key vector the SX cipher consumes.
package keymaterial

// Build8 builds an 8-byte key from UTF-8 text: truncated if longer than 8
// bytes, zero-padded if shorter. There is no failure mode; every input,
// including the empty string, maps to some key.
func Build8(text string) [8]byte {
	var key [8]byte
	copy(key[:], text)
	return key
}

// Build8FromBytes builds an 8-byte key from an arbitrary-length byte list.
// Each element is masked to 8 bits (callers passing already-narrow bytes get
// them back unchanged); elements past index 7 are discarded; missing bytes
// are zero.
func Build8FromBytes(raw []byte) [8]byte {
	var key [8]byte
	for i := 0; i < len(raw) && i < 8; i++ {
		key[i] = raw[i] & 0xFF
	}
	return key
}

// Build8FromInts is the numeric-list variant: each element is masked to 8
// bits before assignment, matching spec.md §3's "masked to 8 bits" rule for
// inputs that arrive as wider integers (e.g. decoded from JSON/YAML).
func Build8FromInts(raw []int) [8]byte {
	var key [8]byte
	for i := 0; i < len(raw) && i < 8; i++ {
		key[i] = byte(raw[i] & 0xFF)
	}
	return key
}
