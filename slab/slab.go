package slab

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/slabkit/internal/grow"
	"github.com/joshuapare/slabkit/slab/arena"
)

// Slab is an object store backed by one contiguous growable array of
// slots. Insert places a value into a slot and returns its Key; Remove
// vacates the slot and hands the value back. Vacant slots form a LIFO
// free list threaded through the array, so insert, remove, and lookup
// are amortized O(1) with no auxiliary structure.
//
// A Slab is not safe for concurrent use.
type Slab[T any] struct {
	entries []entry[T]
	free    Key // head of the vacancy chain, noFree when none
	length  int // count of occupied slots

	// mem supplies backing storage in restricted environments; nil means
	// the ambient heap. Behavior is identical either way.
	mem arena.Arena

	stats Stats
}

// New constructs an empty slab on the ambient heap. No storage is
// allocated until the first insert.
func New[T any]() *Slab[T] {
	return NewIn[T](nil)
}

// NewIn constructs an empty slab whose backing storage is obtained from
// a. A nil arena selects the ambient heap.
func NewIn[T any](a arena.Arena) *Slab[T] {
	return &Slab[T]{free: noFree, mem: a}
}

// WithCapacity constructs an empty slab with room for n inserts before
// any reallocation occurs.
func WithCapacity[T any](n int) *Slab[T] {
	return WithCapacityIn[T](nil, n)
}

// WithCapacityIn is WithCapacity with storage obtained from a.
func WithCapacityIn[T any](a arena.Arena, n int) *Slab[T] {
	s := NewIn[T](a)
	if n > 0 {
		s.entries = arena.MakeSlice[entry[T]](a, 0, n)
	}
	return s
}

// Len returns the number of occupied slots.
func (s *Slab[T]) Len() int {
	return s.length
}

// Capacity returns the number of slots the slab can hold without
// reallocating.
func (s *Slab[T]) Capacity() int {
	return cap(s.entries)
}

// IsEmpty reports whether no slot is occupied.
func (s *Slab[T]) IsEmpty() bool {
	return s.length == 0
}

// Insert stores v in a slot and returns its key. The most recently
// vacated slot is reused first; with no vacancy the slab appends,
// growing geometrically when capacity is exhausted. Fails only with
// ErrCapacityOverflow, leaving the slab unchanged.
func (s *Slab[T]) Insert(v T) (Key, error) {
	if s.free != noFree {
		k := s.free
		e := &s.entries[k]
		s.free = e.next
		e.value = v
		e.next = noFree
		e.occupied = true
		s.length++
		s.stats.Inserts++
		s.stats.Reuses++
		return k, nil
	}

	need, ok := grow.SafeAdd(len(s.entries), 1)
	if !ok {
		return 0, fmt.Errorf("insert: %w", ErrCapacityOverflow)
	}
	if err := s.ensure(need); err != nil {
		return 0, fmt.Errorf("insert: %w", err)
	}
	k := len(s.entries)
	s.entries = append(s.entries, entry[T]{value: v, next: noFree, occupied: true})
	s.length++
	s.stats.Inserts++
	s.stats.Appends++
	return k, nil
}

// FreeEntry returns a handle to the vacant slot the next Insert will
// occupy, for values that must know their own key before insertion
// (self-referential records, back-pointers into the pool).
//
//	e := s.FreeEntry()
//	k, err := e.Insert(node{self: e.Key()})
//
// The handle is invalidated by any mutation of the slab other than its
// own Insert.
func (s *Slab[T]) FreeEntry() FreeEntry[T] {
	return FreeEntry[T]{slab: s}
}

// FreeEntry is a handle to the slot the owning slab will use for its
// next insertion. See Slab.FreeEntry.
type FreeEntry[T any] struct {
	slab *Slab[T]
}

// Key returns the key the next Insert on the owning slab will issue:
// the head of the free list, or the append position when no vacancy
// exists.
func (e FreeEntry[T]) Key() Key {
	if e.slab.free != noFree {
		return e.slab.free
	}
	return len(e.slab.entries)
}

// Insert stores v in the slot this handle refers to. Equivalent to
// Slab.Insert; the returned key equals what Key reported beforehand.
func (e FreeEntry[T]) Insert(v T) (Key, error) {
	return e.slab.Insert(v)
}

// Remove vacates the slot at key and returns the value it held. The slot
// is pushed onto the head of the free list and becomes the first one
// reused. Fails with ErrInvalidKey for an out-of-bounds key and
// ErrDoubleFree for an already-vacant slot.
func (s *Slab[T]) Remove(key Key) (T, error) {
	var zero T
	if key < 0 || key >= len(s.entries) {
		return zero, fmt.Errorf("remove key %d: %w", key, ErrInvalidKey)
	}
	if !s.entries[key].occupied {
		return zero, fmt.Errorf("remove key %d: %w", key, ErrDoubleFree)
	}
	return s.vacate(key), nil
}

// vacate extracts the value at key, threads the slot onto the free list,
// and updates the bookkeeping. The slot must be occupied.
func (s *Slab[T]) vacate(key Key) T {
	e := &s.entries[key]
	v := e.value
	var zero T
	e.value = zero
	e.occupied = false
	e.next = s.free
	s.free = key
	s.length--
	s.stats.Removes++
	return v
}

// Get returns a pointer to the value at key, or false when the key is out
// of bounds or the slot is vacant. Probing a possibly-stale key is an
// expected pattern, so absence is not an error. The pointer stays valid
// until the slab next grows, shrinks, or vacates the slot.
func (s *Slab[T]) Get(key Key) (*T, bool) {
	if key < 0 || key >= len(s.entries) || !s.entries[key].occupied {
		return nil, false
	}
	return &s.entries[key].value, true
}

// Contains reports whether key denotes an occupied slot.
func (s *Slab[T]) Contains(key Key) bool {
	return key >= 0 && key < len(s.entries) && s.entries[key].occupied
}

// Clear vacates every slot and resets the free list. Capacity is
// retained.
func (s *Slab[T]) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
	s.free = noFree
	s.length = 0
	s.stats.Clears++
}

// Retain removes every entry for which keep returns false. Surviving
// entries keep their keys and relative order.
func (s *Slab[T]) Retain(keep func(Key, *T) bool) {
	for i := range s.entries {
		e := &s.entries[i]
		if !e.occupied || keep(i, &e.value) {
			continue
		}
		s.vacate(i)
	}
}

// Reserve guarantees capacity for additional more inserts beyond the
// current occupancy without reallocation. Vacant slots already count
// toward that guarantee. Fails with ErrCapacityOverflow when the
// required capacity is not representable.
func (s *Slab[T]) Reserve(additional int) error {
	if additional < 0 {
		return nil
	}
	need, ok := grow.SafeAdd(s.length, additional)
	if !ok {
		return fmt.Errorf("reserve %d: %w", additional, ErrCapacityOverflow)
	}
	if need < len(s.entries) {
		need = len(s.entries)
	}
	if err := s.ensure(need); err != nil {
		return fmt.Errorf("reserve %d: %w", additional, err)
	}
	return nil
}

// ReserveExact is Reserve without the geometric growth policy: the new
// capacity is exactly what the guarantee requires, nothing more. Prefer
// Reserve when further inserts are expected.
func (s *Slab[T]) ReserveExact(additional int) error {
	if additional < 0 {
		return nil
	}
	need, ok := grow.SafeAdd(s.length, additional)
	if !ok {
		return fmt.Errorf("reserve %d: %w", additional, ErrCapacityOverflow)
	}
	if need < len(s.entries) {
		need = len(s.entries)
	}
	if err := s.ensureExact(need); err != nil {
		return fmt.Errorf("reserve %d: %w", additional, err)
	}
	return nil
}

// ShrinkToFit releases backing memory beyond the highest slot ever
// occupied. No slot is relocated and no key changes; only unused
// capacity is returned.
func (s *Slab[T]) ShrinkToFit() {
	if cap(s.entries) == len(s.entries) {
		return
	}
	shrunk := arena.MakeSlice[entry[T]](s.mem, len(s.entries), len(s.entries))
	copy(shrunk, s.entries)
	old := s.entries
	s.entries = shrunk
	arena.FreeSlice(s.mem, old)
}

// Stats returns a snapshot of the slab's operation counters.
func (s *Slab[T]) Stats() Stats {
	return s.stats
}

// ensure grows the backing array to hold at least need slots, doubling
// capacity to amortize repeated appends.
func (s *Slab[T]) ensure(need int) error {
	if need <= cap(s.entries) {
		return nil
	}
	if !fitsInBytes[T](need) {
		return ErrCapacityOverflow
	}
	next, ok := grow.Next(cap(s.entries), need)
	if !ok {
		return ErrCapacityOverflow
	}
	if !fitsInBytes[T](next) {
		// The doubled capacity is not addressable in bytes; the exact
		// need is, so settle for that.
		next = need
	}
	s.entries = arena.GrowSlice(s.mem, s.entries, next)
	s.stats.Grows++
	return nil
}

// ensureExact grows the backing array to hold exactly need slots.
func (s *Slab[T]) ensureExact(need int) error {
	if need <= cap(s.entries) {
		return nil
	}
	if !fitsInBytes[T](need) {
		return ErrCapacityOverflow
	}
	s.entries = arena.GrowSlice(s.mem, s.entries, need)
	s.stats.Grows++
	return nil
}

// fitsInBytes reports whether a backing array of n slots has a byte size
// representable as int. Slot-count arithmetic alone misses this: a count
// can be representable while count*sizeof(slot) is not.
func fitsInBytes[T any](n int) bool {
	var e entry[T]
	_, ok := grow.SafeMul(n, int(unsafe.Sizeof(e)))
	return ok
}
