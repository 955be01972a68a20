package slab

import (
	"testing"
)

// BenchmarkInsertAppend measures pure tail-append inserts into a
// pre-sized slab, the fast path with no free-list traffic.
func BenchmarkInsertAppend(b *testing.B) {
	s := WithCapacity[uint64](b.N)

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		if _, err := s.Insert(uint64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkChurn measures the steady-state insert/remove cycle that the
// free list exists for: every insert is served by slot reuse.
func BenchmarkChurn(b *testing.B) {
	s := WithCapacity[uint64](1)
	k, err := s.Insert(0)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		if _, err := s.Remove(k); err != nil {
			b.Fatal(err)
		}
		k, err = s.Insert(uint64(i))
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGet measures key lookup on a half-vacant slab.
func BenchmarkGet(b *testing.B) {
	const n = 1 << 16
	s := WithCapacity[uint64](n)
	keys := make([]Key, 0, n)
	for i := range n {
		k, err := s.Insert(uint64(i))
		if err != nil {
			b.Fatal(err)
		}
		keys = append(keys, k)
	}
	for i := 0; i < n; i += 2 {
		if _, err := s.Remove(keys[i]); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		s.Get(keys[i%n])
	}
}
