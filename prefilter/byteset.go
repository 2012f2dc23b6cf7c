package prefilter

import (
	"github.com/coregx/regexfa/simd"
)

// byteSetPrefilter searches for any of two or three bytes with
// simd.Memchr2 / simd.Memchr3.
//
// Example patterns:
//
//	a*b        → search for 'a' or 'b'
//	(x|y|z)w   → not used: the literals are xw, yw, zw
type byteSetPrefilter struct {
	set      []byte
	complete bool
}

// newByteSetPrefilter expects two or three distinct bytes.
func newByteSetPrefilter(set []byte, complete bool) Prefilter {
	return &byteSetPrefilter{set: set, complete: complete}
}

// Find implements Prefilter.Find.
func (p *byteSetPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	var idx int
	if len(p.set) == 2 {
		idx = simd.Memchr2(haystack[start:], p.set[0], p.set[1])
	} else {
		idx = simd.Memchr3(haystack[start:], p.set[0], p.set[1], p.set[2])
	}
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *byteSetPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *byteSetPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *byteSetPrefilter) HeapBytes() int {
	return len(p.set)
}
