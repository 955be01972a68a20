package slab

// Stats holds operation counters for a slab, for instrumentation and
// tests. Counters accumulate over the slab's lifetime and are never
// reset, not even by Clear.
type Stats struct {
	Inserts int // successful Insert calls
	Removes int // slots vacated by Remove, Retain, or Drain
	Reuses  int // inserts served from the free list
	Appends int // inserts served by appending a new slot
	Grows   int // backing array reallocations
	Clears  int // Clear calls
}
