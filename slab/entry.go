package slab

// Key is a plain integer handle into a slab, issued by Insert and required
// by all subsequent access. A key is stable for the lifetime of the
// occupancy it denotes; after Remove the same integer may be reissued by a
// later Insert.
type Key = int

// noFree is the free-list terminator: no vacancy beyond this point.
const noFree = -1

// entry is one slot of the backing array: either an occupied value or a
// vacancy carrying the index of the next vacant slot. The free list is
// threaded through the vacancies themselves, so a vacant slot costs one
// index field and nothing else.
type entry[T any] struct {
	value    T
	next     Key
	occupied bool
}
