// Package arena provides the backing-storage capability used by slab
// containers in restricted environments.
//
// An Arena hands out raw, untyped memory for a container's backing array.
// Callers in ordinary programs never need one: a nil Arena means the
// ambient Go heap, and every helper in this package degrades to plain
// make/copy in that case. Environments without a usable heap (or that
// need page-granular accounting) construct the container with a concrete
// Arena such as Sys, and all growth and release is routed through it.
//
// Memory obtained from a non-heap Arena is invisible to the garbage
// collector. Element types stored through such an arena must not contain
// Go pointers.
package arena

import "unsafe"

// Arena allocates and releases raw backing memory.
//
// Alloc returns a pointer to at least size bytes aligned to align, or nil
// when the arena cannot serve the request; callers fall back to the
// ambient heap on nil. Free returns a block previously obtained from
// Alloc. Release tears down the arena; all blocks obtained from it become
// invalid.
type Arena interface {
	Alloc(size, align uintptr) unsafe.Pointer
	Free(p unsafe.Pointer, size uintptr)
	Release() error
}

// MakeSlice allocates a slice of E with the given length and capacity
// from a, falling back to the ambient heap when a is nil or declines.
func MakeSlice[E any](a Arena, length, capacity int) []E {
	if capacity < length {
		capacity = length
	}
	var zero E
	elem := unsafe.Sizeof(zero)
	if a == nil || capacity == 0 || elem == 0 {
		return make([]E, length, capacity)
	}
	p := a.Alloc(uintptr(capacity)*elem, unsafe.Alignof(zero))
	if p == nil {
		return make([]E, length, capacity)
	}
	s := unsafe.Slice((*E)(p), capacity)
	clear(s)
	return s[:length]
}

// GrowSlice returns a slice with the same contents as s and capacity at
// least capacity, reallocating through a when growth is required. The
// old backing block is returned to the arena.
func GrowSlice[E any](a Arena, s []E, capacity int) []E {
	if cap(s) >= capacity {
		return s
	}
	grown := MakeSlice[E](a, len(s), capacity)
	copy(grown, s)
	FreeSlice(a, s)
	return grown
}

// FreeSlice returns the backing block of s to the arena. It is a no-op
// for nil arenas and zero-capacity slices; heap-backed slices are left
// to the garbage collector.
func FreeSlice[E any](a Arena, s []E) {
	if a == nil || cap(s) == 0 {
		return
	}
	var zero E
	elem := unsafe.Sizeof(zero)
	if elem == 0 {
		return
	}
	a.Free(unsafe.Pointer(unsafe.SliceData(s)), uintptr(cap(s))*elem)
}
