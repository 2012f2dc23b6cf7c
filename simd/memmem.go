package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. An empty needle matches at 0.
//
// Candidates are found by scanning for the needle's rarest byte with Memchr
// and verified in place, so haystacks that rarely contain that byte are
// skipped at memchr speed.
//
// Example:
//
//	pos := simd.Memmem([]byte("aaaaaabaaaa"), []byte("aab"))
//	// pos == 4
func Memmem(haystack, needle []byte) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) > len(haystack):
		return -1
	case len(needle) == 1:
		return Memchr(haystack, needle[0])
	}

	rare := RarestByte(needle)
	b := needle[rare]
	for from := rare; from < len(haystack); {
		i := Memchr(haystack[from:], b)
		if i < 0 {
			return -1
		}
		start := from + i - rare
		if start+len(needle) > len(haystack) {
			return -1
		}
		if bytes.Equal(haystack[start:start+len(needle)], needle) {
			return start
		}
		from += i + 1
	}
	return -1
}

// RarestByte returns the index in needle of the byte least likely to occur
// in typical text, preferring later positions on ties.
func RarestByte(needle []byte) int {
	best, bestRank := 0, 256
	for i, b := range needle {
		if r := ByteRank(b); r <= bestRank {
			best, bestRank = i, r
		}
	}
	return best
}

// ByteRank estimates how common b is in text and source code; lower is
// rarer. The scale is coarse: what matters is the order between classes of
// bytes, not exact frequencies.
func ByteRank(b byte) int {
	switch {
	case b == ' ':
		return 255
	case b == 'e' || b == 't' || b == 'a' || b == 'o' || b == 'i' || b == 'n' || b == 's' || b == 'r':
		return 220
	case b >= 'a' && b <= 'z':
		if b == 'q' || b == 'z' || b == 'x' || b == 'j' {
			return 40
		}
		return 150
	case b >= '0' && b <= '9':
		return 140
	case b >= 'A' && b <= 'Z':
		if b == 'Q' || b == 'Z' || b == 'X' || b == 'J' {
			return 20
		}
		return 90
	case b == '\n' || b == '\t' || b == ',' || b == '.' || b == '(' || b == ')' || b == '"':
		return 130
	case b < 0x20 || b == 0x7F:
		return 0
	case b >= 0x80:
		return 10
	default:
		return 60
	}
}
