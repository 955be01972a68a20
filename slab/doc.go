// Package slab provides an object-pool allocator: a homogeneous-type
// store backed by one contiguous, growable array of slots.
//
// # Overview
//
// A Slab amortizes the cost of frequent create/destroy cycles of
// same-typed objects (entities in a simulation, connections in a server,
// nodes in a graph). Insert places a value into a slot and returns a
// stable integer Key; the key is the handle for all later access, and
// Remove hands the value back and recycles the slot.
//
// Vacant slots are threaded into a LIFO singly linked free list stored
// inside the slots themselves, rooted at the slab's free head. Reuse
// order is part of the contract: the most recently freed slot is the
// first one reused. Insert, Remove, and Get are amortized O(1);
// Clear, ShrinkToFit, and growth events are O(capacity).
//
// # Keys
//
// Keys are plain indexes with no generation tag. Once a slot is removed
// and reissued, a stale key held from the earlier occupancy is
// indistinguishable from the new one. Callers that need stale-key
// detection can use the separate Versioned layer, which wraps a Slab
// with per-slot generation counters.
//
// # Errors
//
// Remove reports ErrInvalidKey and ErrDoubleFree explicitly rather than
// no-oping, so use-after-free bugs surface instead of being masked. Get
// and Contains treat dead keys as ordinary absence, since read-only
// probing of possibly-stale keys is an expected pattern. The only other
// failure is ErrCapacityOverflow, and a failed operation always leaves
// the slab in its prior valid state.
//
// # Restricted environments
//
// NewIn and WithCapacityIn accept an arena.Arena that supplies all
// backing storage, for environments without a usable heap or that need
// explicit accounting. A nil arena means the ambient heap; the API and
// behavior are identical either way. See the slab/arena package.
//
// # Thread safety
//
// A Slab performs no synchronization. Callers sharing one across
// goroutines must wrap it externally (mutex, or ownership transfer over
// a channel).
package slab
