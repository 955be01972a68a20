//go:build unix

package arena

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Sys is an Arena backed by anonymous memory mappings, bypassing the Go
// heap entirely. Each Alloc is a private anonymous mapping rounded up to
// page size; Free and Release unmap. Sys is not safe for concurrent use,
// matching the containers built on top of it.
type Sys struct {
	// mappings tracks live blocks by base address so Free can ignore
	// pointers that came from a heap fallback rather than this arena.
	mappings map[uintptr][]byte
	released bool
}

var _ Arena = (*Sys)(nil)

// NewSys returns an empty mmap-backed arena.
func NewSys() *Sys {
	return &Sys{mappings: make(map[uintptr][]byte)}
}

// Alloc maps at least size bytes of zeroed anonymous memory. Returns nil
// after Release or when the mapping fails, letting callers fall back to
// the ambient heap.
func (s *Sys) Alloc(size, align uintptr) unsafe.Pointer {
	if s.released || size == 0 {
		return nil
	}
	pageSize := uintptr(unix.Getpagesize())
	mapped := (size + pageSize - 1) &^ (pageSize - 1)
	if align > pageSize {
		// Mappings are page-aligned; stricter alignment is not supported.
		return nil
	}
	b, err := unix.Mmap(-1, 0, int(mapped),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	s.mappings[uintptr(p)] = b
	return p
}

// Free unmaps the block at p. Pointers not allocated by this arena are
// ignored, so heap-fallback slices may be passed through safely.
func (s *Sys) Free(p unsafe.Pointer, size uintptr) {
	b, ok := s.mappings[uintptr(p)]
	if !ok {
		return
	}
	delete(s.mappings, uintptr(p))
	_ = unix.Munmap(b)
}

// Live reports the number of outstanding mappings.
func (s *Sys) Live() int {
	return len(s.mappings)
}

// Release unmaps every outstanding block. The arena declines all further
// Alloc calls. Release is idempotent; the first munmap failure is
// returned but teardown continues.
func (s *Sys) Release() error {
	var firstErr error
	for addr, b := range s.mappings {
		if err := unix.Munmap(b); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(s.mappings, addr)
	}
	s.released = true
	return firstErr
}
