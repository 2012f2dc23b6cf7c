//go:build amd64

package simd

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// hasAVX2 is fixed at package initialization. It selects the multi-needle
// algorithm: with 256-bit compares, one IndexByte pass per needle over a
// shrinking window beats a single SWAR pass. On 128-bit SSE2 the extra
// passes lose to SWAR when the needles are rare.
var hasAVX2 = cpu.X86.HasAVX2

// vectorMin is the haystack length from which the vector path pays off.
const vectorMin = 32

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) >= vectorMin {
		return bytes.IndexByte(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	if needle1 == needle2 {
		return Memchr(haystack, needle1)
	}
	if hasAVX2 && len(haystack) >= vectorMin {
		return memchrPasses(haystack, needle1, needle2)
	}
	return memchr2Generic(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first instance of needle1, needle2 or
// needle3 in haystack, or -1 if none are present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	if hasAVX2 && len(haystack) >= vectorMin {
		return memchrPasses(haystack, needle1, needle2, needle3)
	}
	return memchr3Generic(haystack, needle1, needle2, needle3)
}

// memchrPasses runs one vectorised IndexByte per needle. Each hit narrows
// the window for the next needle, so later passes scan only the prefix
// before the earliest hit so far.
func memchrPasses(haystack []byte, needles ...byte) int {
	best := -1
	window := haystack
	for _, n := range needles {
		if i := bytes.IndexByte(window, n); i >= 0 {
			best = i
			window = window[:i]
		}
	}
	return best
}
