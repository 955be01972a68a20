package slab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// assertInvariants validates the structural invariants of a slab:
// the free list visits exactly the vacant slots with no cycle, and the
// occupancy count matches Len.
func assertInvariants[T any](t *testing.T, s *Slab[T]) {
	t.Helper()

	vacant := make(map[Key]bool)
	occupied := 0
	for i := range s.entries {
		if s.entries[i].occupied {
			occupied++
		} else {
			vacant[i] = true
		}
	}
	require.Equal(t, occupied, s.Len(), "Len must equal the occupied slot count")
	require.GreaterOrEqual(t, len(s.entries), s.Len())

	seen := make(map[Key]bool)
	for k := s.free; k != noFree; k = s.entries[k].next {
		require.GreaterOrEqual(t, k, 0, "free list index out of bounds")
		require.Less(t, k, len(s.entries), "free list index out of bounds")
		require.False(t, seen[k], "free list revisits slot %d", k)
		require.True(t, vacant[k], "free list contains occupied slot %d", k)
		seen[k] = true
	}
	require.Len(t, seen, len(vacant), "free list must reach every vacant slot")
}

// mustInsert inserts v and fails the test on error.
func mustInsert[T any](t *testing.T, s *Slab[T], v T) Key {
	t.Helper()
	k, err := s.Insert(v)
	require.NoError(t, err)
	return k
}
