package codepage

import "testing"

func TestResolveKnownBytes(t *testing.T) {
	cases := map[byte]int{
		0x03: 1252,
		0x26: 866,
		0x4F: 950,
	}
	for driver, want := range cases {
		got, ok := Resolve(driver)
		if !ok {
			t.Fatalf("Resolve(0x%x) not ok", driver)
		}
		if got != want {
			t.Fatalf("Resolve(0x%x) = %d, want %d", driver, got, want)
		}
	}
}

func TestResolveUnknownByte(t *testing.T) {
	if _, ok := Resolve(0x00); ok {
		t.Fatalf("Resolve(0x00) should be not-ok")
	}
}

func TestDecodeASCIIRoundTrips(t *testing.T) {
	got := Decode([]byte("hello"), 0x03)
	if got != "hello" {
		t.Fatalf("Decode ASCII = %q, want %q", got, "hello")
	}
}

func TestDecodeFallsBackToLatin1ForUnmappedDriver(t *testing.T) {
	raw := []byte{0xE9} // é in Latin-1
	got := Decode(raw, 0x00)
	want := string([]rune{0xE9})
	if got != want {
		t.Fatalf("Decode fallback = %q, want %q", got, want)
	}
}
