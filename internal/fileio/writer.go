// Package fileio provides the atomic write and memory-mapped read primitives
// the core pipeline deliberately stays free of (spec.md §5: "no file I/O
// inside the core; all I/O is the caller's responsibility").
package fileio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xbasekit/sxdbf/internal/format"
)

// WriteAtomic writes buf to path via a temp file in the same directory,
// fsync (data and, where available, metadata), then rename — so a reader
// never observes a partially written DBF. Before committing, it re-parses
// buf as a DBF header and rejects a write that would silently truncate or
// pad past the declared recordCount*recordLength payload and trailing EOF
// marker — the pipeline's own output always satisfies this, so a mismatch
// here means a caller handed WriteAtomic something other than a pipeline
// result buffer.
func WriteAtomic(path string, buf []byte) error {
	if err := validateDBFBuffer(buf); err != nil {
		return fmt.Errorf("fileio: refusing to write %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".sxdbf-tmp-*")
	if err != nil {
		return fmt.Errorf("fileio: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(buf); err != nil {
		return fmt.Errorf("fileio: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("fileio: sync temp file: %w", err)
	}
	if err := Fdatasync(tmp); err != nil {
		return fmt.Errorf("fileio: fdatasync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("fileio: close temp file: %w", err)
	}
	tmp = nil

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("fileio: rename temp file: %w", err)
	}
	return nil
}

// validateDBFBuffer re-parses buf's header and confirms the record payload
// plus optional trailing 0x1A EOF marker the header declares exactly
// accounts for len(buf), with no extra or missing trailing bytes.
func validateDBFBuffer(buf []byte) error {
	h, _, err := format.ParseHeader(buf)
	if err != nil {
		return err
	}
	payload, err := format.PayloadSlice(buf, h)
	if err != nil {
		return err
	}
	want := int(h.HeaderLength) + len(payload)
	suffix := ""
	if h.HasEOFMarker {
		want++
		suffix = "+EOF"
	}
	if len(buf) != want {
		return fmt.Errorf("buffer length %d does not match header+payload%s length %d",
			len(buf), suffix, want)
	}
	return nil
}
