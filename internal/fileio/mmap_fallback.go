//go:build !unix

package fileio

import "os"

// MapReadOnly falls back to a plain read on platforms without mmap support
// wired up (spec.md's core never requires mmap; this keeps the CLI portable).
func MapReadOnly(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}

// Fdatasync falls back to a full Sync where fdatasync isn't available.
func Fdatasync(f *os.File) error {
	return f.Sync()
}
