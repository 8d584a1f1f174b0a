package fileio

import (
	"os"
	"path/filepath"
	"testing"
)

// buildValidDBF builds a minimal well-formed DBF buffer (one C(10) field, no
// records), using the same header offsets as internal/format's test fixture
// (which has a second N(5) field), so WriteAtomic's validation accepts it.
func buildValidDBF(withEOF bool) []byte {
	const headerLength = 32 + 32 + 1 // base + one field descriptor + terminator
	total := headerLength
	if withEOF {
		total++
	}
	b := make([]byte, total)

	b[0] = 0x03 // statusByte: plain
	b[8] = byte(headerLength)
	b[9] = byte(headerLength >> 8)
	b[10] = 11 // recordLength = 1 (delete marker) + 10
	b[11] = 0

	f := b[32:64]
	copy(f[0:11], []byte("NAME"))
	f[11] = 'C'
	f[16] = 10

	b[64] = 0x0D // field terminator
	if withEOF {
		b[total-1] = 0x1A
	}
	return b
}

func TestWriteAtomicRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.dbf")
	want := buildValidDBF(false)

	if err := WriteAtomic(path, want); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWriteAtomicRoundTripWithEOFMarker(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.dbf")
	want := buildValidDBF(true)

	if err := WriteAtomic(path, want); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWriteAtomicLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.dbf")
	if err := WriteAtomic(path, buildValidDBF(false)); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.dbf" {
		t.Fatalf("expected only out.dbf in dir, got %v", entries)
	}
}

func TestWriteAtomicRejectsMalformedHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.dbf")
	if err := WriteAtomic(path, []byte{0x03, 0x01, 0x02, 0x03}); err == nil {
		t.Fatalf("expected WriteAtomic to reject a too-short buffer")
	}
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("WriteAtomic should not have created %s", path)
	}
}

func TestWriteAtomicRejectsTrailingGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.dbf")
	buf := append(buildValidDBF(false), 0x00, 0x00, 0x00)
	if err := WriteAtomic(path, buf); err == nil {
		t.Fatalf("expected WriteAtomic to reject a buffer with unaccounted trailing bytes")
	}
}

func TestMapReadOnlyRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.dbf")
	want := []byte{0x03, 0xAA, 0xBB, 0xCC}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, cleanup, err := MapReadOnly(path)
	if err != nil {
		t.Fatalf("MapReadOnly: %v", err)
	}
	defer cleanup()

	if string(data) != string(want) {
		t.Fatalf("got %v, want %v", data, want)
	}
}
