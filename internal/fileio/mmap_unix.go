//go:build unix

package fileio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MapReadOnly memory-maps path read-only and returns its contents alongside
// a cleanup func the caller must invoke once done. Used for inspecting large
// DBF files without reading the whole file into the heap up front.
func MapReadOnly(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("fileio: file too large to map (%d bytes)", size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		return unix.Munmap(data)
	}
	return data, cleanup, nil
}

// Fdatasync flushes a file descriptor's data (not necessarily metadata) to
// disk, for callers that hold the fd open across several writes.
func Fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
