package checksum

import "testing"

func TestPayloadDeterministic(t *testing.T) {
	a := Payload([]byte("hello world"))
	b := Payload([]byte("hello world"))
	if a != b {
		t.Fatalf("Payload should be deterministic: %d != %d", a, b)
	}
}

func TestPayloadDiffersOnDifferentInput(t *testing.T) {
	a := Payload([]byte("hello"))
	b := Payload([]byte("world"))
	if a == b {
		t.Fatalf("Payload collided for distinct inputs (unexpectedly)")
	}
}

func TestKeyFingerprintDeterministic(t *testing.T) {
	key := [8]byte{1, 2, 3, 4, 5, 6, 7, 8}
	if KeyFingerprint(key) != KeyFingerprint(key) {
		t.Fatalf("KeyFingerprint should be deterministic")
	}
}
