//go:build !unix

package arena

import "unsafe"

// Sys is a stand-in for the mmap-backed arena on platforms without
// anonymous mappings. Alloc always declines, so containers constructed
// with it transparently use the ambient heap.
type Sys struct {
	released bool
}

var _ Arena = (*Sys)(nil)

// NewSys returns the fallback arena.
func NewSys() *Sys {
	return &Sys{}
}

// Alloc declines every request; callers fall back to the ambient heap.
func (s *Sys) Alloc(size, align uintptr) unsafe.Pointer {
	return nil
}

// Free is a no-op; no block ever originates from this arena.
func (s *Sys) Free(p unsafe.Pointer, size uintptr) {}

// Live reports zero outstanding mappings.
func (s *Sys) Live() int {
	return 0
}

// Release marks the arena released.
func (s *Sys) Release() error {
	s.released = true
	return nil
}
