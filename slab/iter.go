package slab

import "iter"

// All returns a restartable sequence of the occupied slots in ascending
// key order. The yielded pointer may be written through to mutate the
// stored value in place. Inserting into or removing from the slab during
// iteration is not supported.
func (s *Slab[T]) All() iter.Seq2[Key, *T] {
	return func(yield func(Key, *T) bool) {
		for i := range s.entries {
			e := &s.entries[i]
			if !e.occupied {
				continue
			}
			if !yield(i, &e.value) {
				return
			}
		}
	}
}

// Keys returns a restartable sequence of the occupied keys in ascending
// order.
func (s *Slab[T]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for i := range s.entries {
			if s.entries[i].occupied && !yield(i) {
				return
			}
		}
	}
}

// Drain returns a consuming sequence: every occupied slot is vacated and
// its value yielded, in ascending key order. Breaking out early leaves
// the slab valid with the remaining entries intact; consuming the whole
// sequence leaves the slab empty with its capacity retained. The
// sequence is single-use.
func (s *Slab[T]) Drain() iter.Seq2[Key, T] {
	return func(yield func(Key, T) bool) {
		for i := 0; i < len(s.entries); i++ {
			if !s.entries[i].occupied {
				continue
			}
			v := s.vacate(i)
			if !yield(i, v) {
				return
			}
		}
		// Everything is vacant now; drop the vacancy chain so reuse
		// starts from a clean tail append, keeping the backing array.
		s.entries = s.entries[:0]
		s.free = noFree
	}
}
