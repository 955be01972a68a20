package slab

import "fmt"

// VKey is a generational handle issued by a Versioned slab. It pairs a
// slot index with the generation the slot had when the key was minted,
// so a key held across a Remove and reissue of its slot is detectable.
type VKey struct {
	Index Key
	Gen   uint32
}

// Versioned layers generation tracking on top of a plain Slab. Each slot
// carries a generation counter that increments whenever the slot is
// vacated; a key minted before that no longer matches. The underlying
// container's behavior is unchanged, this is purely an access guard.
type Versioned[T any] struct {
	slots *Slab[T]
	gens  []uint32
}

// NewVersioned constructs an empty generational slab on the ambient heap.
func NewVersioned[T any]() *Versioned[T] {
	return &Versioned[T]{slots: New[T]()}
}

// Insert stores v and returns a generational key for it.
func (vs *Versioned[T]) Insert(v T) (VKey, error) {
	k, err := vs.slots.Insert(v)
	if err != nil {
		return VKey{}, err
	}
	for len(vs.gens) <= k {
		vs.gens = append(vs.gens, 0)
	}
	return VKey{Index: k, Gen: vs.gens[k]}, nil
}

// Remove vacates the slot named by key and returns its value. A key
// whose generation no longer matches fails with ErrStaleKey; bounds and
// vacancy failures are those of Slab.Remove.
func (vs *Versioned[T]) Remove(key VKey) (T, error) {
	if key.Index >= 0 && key.Index < len(vs.gens) && vs.gens[key.Index] != key.Gen {
		var zero T
		return zero, fmt.Errorf("remove slot %d gen %d: %w", key.Index, key.Gen, ErrStaleKey)
	}
	v, err := vs.slots.Remove(key.Index)
	if err != nil {
		return v, err
	}
	vs.gens[key.Index]++
	return v, nil
}

// Get returns a pointer to the value named by key, treating a stale or
// otherwise dead key as ordinary absence.
func (vs *Versioned[T]) Get(key VKey) (*T, bool) {
	if key.Index < 0 || key.Index >= len(vs.gens) || vs.gens[key.Index] != key.Gen {
		return nil, false
	}
	return vs.slots.Get(key.Index)
}

// Contains reports whether key names a live occupancy of its generation.
func (vs *Versioned[T]) Contains(key VKey) bool {
	_, ok := vs.Get(key)
	return ok
}

// Len returns the number of occupied slots.
func (vs *Versioned[T]) Len() int {
	return vs.slots.Len()
}
