package grow

import "math"

// minCapacity is the smallest non-zero backing capacity handed out by Next.
// Growing from empty straight to 4 slots avoids a cascade of tiny
// reallocations during the first few inserts.
const minCapacity = 4

// SafeAdd adds a and b, returning ok = false when the result would overflow int.
func SafeAdd(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// SafeMul multiplies a and b, returning ok = false when the result would overflow int.
func SafeMul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// Next computes the capacity to grow to so that at least need slots fit,
// starting from the current capacity cur. Growth is geometric (doubling)
// to amortize repeated appends. Returns ok = false when need is negative
// or no int capacity can satisfy it.
func Next(cur, need int) (int, bool) {
	if need < 0 {
		return 0, false
	}
	if need <= cur {
		return cur, true
	}
	next := cur
	if next < minCapacity {
		next = minCapacity
	}
	for next < need {
		doubled, ok := SafeMul(next, 2)
		if !ok {
			// Doubling overflows; need itself may still be representable.
			return need, true
		}
		next = doubled
	}
	return next, true
}
