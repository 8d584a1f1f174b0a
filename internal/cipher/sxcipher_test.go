package cipher

import (
	"bytes"
	"testing"
)

func testKey() [8]byte {
	return [8]byte{0x05, 0x06, 0x05, 0x06, 0x05, 0x06, 0x05, 0x06}
}

func TestRoundTrip(t *testing.T) {
	key := testKey()
	plain := make([]byte, 256)
	for i := range plain {
		plain[i] = byte(i)
	}

	cipherText := Encrypt(key, plain)
	got := Decrypt(key, cipherText)
	if !bytes.Equal(got, plain) {
		t.Fatalf("decrypt(encrypt(x)) != x")
	}

	// encrypt(decrypt(x)) == x too, since the same key produces the same
	// keystream regardless of which direction runs first.
	decFirst := Decrypt(key, plain)
	reEnc := Encrypt(key, decFirst)
	if !bytes.Equal(reEnc, plain) {
		t.Fatalf("encrypt(decrypt(x)) != x")
	}
}

func TestEmptyInput(t *testing.T) {
	key := testKey()
	if got := Encrypt(key, nil); len(got) != 0 {
		t.Fatalf("Encrypt(nil) should be empty, got %v", got)
	}
	if got := Decrypt(key, []byte{}); len(got) != 0 {
		t.Fatalf("Decrypt(empty) should be empty, got %v", got)
	}
}

func TestLengthInvariance(t *testing.T) {
	key := testKey()
	for _, n := range []int{0, 1, 7, 8, 9, 100, 1000} {
		plain := bytes.Repeat([]byte{0xAA}, n)
		if got := len(Encrypt(key, plain)); got != n {
			t.Fatalf("Encrypt length = %d, want %d", got, n)
		}
		if got := len(Decrypt(key, plain)); got != n {
			t.Fatalf("Decrypt length = %d, want %d", got, n)
		}
	}
}

func TestDeterminism(t *testing.T) {
	key := [8]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04}
	plain := bytes.Repeat([]byte{0x42}, 64)
	a := Encrypt(key, plain)
	b := Encrypt(key, plain)
	if !bytes.Equal(a, b) {
		t.Fatalf("repeated encrypt runs diverged")
	}
}

func TestDifferentKeysDiverge(t *testing.T) {
	plain := bytes.Repeat([]byte{0x00}, 16)
	a := Encrypt([8]byte{1, 2, 3, 4, 5, 6, 7, 8}, plain)
	b := Encrypt([8]byte{8, 7, 6, 5, 4, 3, 2, 1}, plain)
	if bytes.Equal(a, b) {
		t.Fatalf("distinct keys should not produce identical ciphertext for non-trivial input")
	}
}

func TestShiftZeroDegeneratesToIdentityRotation(t *testing.T) {
	// Exercise the shift==0 edge case explicitly: construct a State whose
	// roundKey has a zero low 3 bits, and confirm the byte is unrotated
	// before the additive/subtractive step.
	s := &State{seed: 0, roundKey: 0x1230, key: testKey()}
	got := s.EncryptByte(0x55)
	want := byte(0x55 + byte(0x1230&0xFF))
	if got != want {
		t.Fatalf("EncryptByte with shift=0: got 0x%x, want 0x%x", got, want)
	}
}

func TestKeyIndexCyclesModuloSeven(t *testing.T) {
	s := NewState(testKey())
	for i := 0; i < 20; i++ {
		s.step()
		if s.keyIdx < 0 || s.keyIdx > 6 {
			t.Fatalf("keyIdx out of range: %d", s.keyIdx)
		}
	}
}
