// Package conv provides checked integer conversions.
//
// Narrowing conversions panic on overflow: a pattern or input large enough to
// overflow a state index is a programming error, not a recoverable condition.
package conv

import "math"

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Compare as uint so the bound is representable on 32-bit platforms.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
