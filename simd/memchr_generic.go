package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// zeroBytes returns a word with the high bit set in the lowest byte of v that
// is zero (and possibly in higher bytes). Only the lowest set bit is exact,
// which is all a first-match search needs.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) &^ v & hi8
}

// firstZero converts a non-zero zeroBytes result into a byte index.
func firstZero(z uint64) int {
	return bits.TrailingZeros64(z) / 8
}

// memchrGeneric scans eight bytes per step: XOR with the broadcast needle
// turns matching bytes into zero bytes.
func memchrGeneric(haystack []byte, needle byte) int {
	m := uint64(needle) * lo8
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		if z := zeroBytes(binary.LittleEndian.Uint64(haystack[i:]) ^ m); z != 0 {
			return i + firstZero(z)
		}
	}
	for ; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

func memchr2Generic(haystack []byte, n1, n2 byte) int {
	m1, m2 := uint64(n1)*lo8, uint64(n2)*lo8
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		w := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(w^m1) | zeroBytes(w^m2); z != 0 {
			return i + firstZero(z)
		}
	}
	for ; i < len(haystack); i++ {
		if b := haystack[i]; b == n1 || b == n2 {
			return i
		}
	}
	return -1
}

func memchr3Generic(haystack []byte, n1, n2, n3 byte) int {
	m1, m2, m3 := uint64(n1)*lo8, uint64(n2)*lo8, uint64(n3)*lo8
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		w := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(w^m1) | zeroBytes(w^m2) | zeroBytes(w^m3); z != 0 {
			return i + firstZero(z)
		}
	}
	for ; i < len(haystack); i++ {
		if b := haystack[i]; b == n1 || b == n2 || b == n3 {
			return i
		}
	}
	return -1
}
