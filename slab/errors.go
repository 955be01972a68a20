package slab

import "errors"

var (
	// ErrInvalidKey indicates a key outside the current index bounds.
	ErrInvalidKey = errors.New("slab: key out of bounds")

	// ErrDoubleFree indicates a removal of a slot that is already vacant.
	ErrDoubleFree = errors.New("slab: slot already vacant")

	// ErrCapacityOverflow indicates growth would exceed the maximum
	// representable index. The failed operation leaves the slab unchanged.
	ErrCapacityOverflow = errors.New("slab: capacity overflow")

	// ErrStaleKey indicates a versioned key whose slot has been reissued
	// since the key was minted.
	ErrStaleKey = errors.New("slab: stale key generation")
)
