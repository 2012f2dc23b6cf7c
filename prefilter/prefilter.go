// Package prefilter finds candidate match starts from a pattern's literal
// prefixes.
//
// A prefilter is used to quickly skip positions in the haystack that cannot
// start a match. When the literal set extracted from a pattern is non-empty,
// every match starts with one of its literals, so the matcher only needs to
// try the automaton where the prefilter reports a hit.
//
// The package selects a strategy from the shape of the literal set:
//   - Single byte → memchr
//   - Two or three single bytes → memchr2 / memchr3
//   - Single substring → memmem (rare byte scan plus verification)
//   - Anything else → Aho-Corasick over the literals cut to a common length
//
// Example usage:
//
//	ast, _ := syntax.Parse("(hello|world)!")
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(ast)
//
//	pf := prefilter.NewBuilder(prefixes).Build()
//	pos := pf.Find([]byte("foo hello! bar"), 0)
//	// pos == 4
package prefilter

import (
	"bytes"

	"github.com/coregx/regexfa/literal"
	"github.com/coregx/regexfa/simd"
)

// Prefilter reports candidate match start positions.
//
// Key methods:
//   - Find: returns the next candidate position
//   - IsComplete: indicates if a hit is a match by itself
//   - HeapBytes: returns memory usage for profiling
type Prefilter interface {
	// Find returns the index of the first candidate at or after start, or -1
	// if there is none. start must be in [0, len(haystack)].
	//
	// A candidate is a position where one of the literals begins. It does
	// NOT guarantee a match; the caller verifies it with the automaton
	// unless IsComplete reports true.
	//
	// Example:
	//
	//	pos := pf.Find(haystack, 0)
	//	for pos != -1 {
	//	    if verify(haystack, pos) {
	//	        return pos
	//	    }
	//	    pos = pf.Find(haystack, pos+1)
	//	}
	Find(haystack []byte, start int) int

	// IsComplete returns true if every hit is a leftmost-longest match of
	// exactly LiteralLen bytes. This holds when the pattern's language is
	// the literal set itself and all literals have the same length.
	IsComplete() bool

	// LiteralLen returns the match length when IsComplete is true, and 0
	// otherwise.
	LiteralLen() int

	// HeapBytes returns the number of bytes of heap memory used by this
	// prefilter.
	HeapBytes() int
}

// Builder constructs the prefilter for a prefix literal set.
//
// Example:
//
//	pf := prefilter.NewBuilder(prefixes).Build()
//	if pf != nil {
//	    pos := pf.Find(haystack, 0)
//	}
type Builder struct {
	prefixes *literal.Seq
}

// NewBuilder creates a builder for the given prefix literals. A nil or empty
// sequence yields no prefilter.
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// Build constructs the best prefilter for the literals, or returns nil if
// none applies (no literals, or an empty literal in the set).
func (b *Builder) Build() Prefilter {
	return selectPrefilter(b.prefixes)
}

// selectPrefilter chooses a strategy for seq. See the package comment for
// the selection order.
func selectPrefilter(seq *literal.Seq) Prefilter {
	if seq.IsEmpty() || seq.MinLen() == 0 {
		return nil
	}

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if len(lit.Bytes) == 1 {
			return newMemchrPrefilter(lit.Bytes[0], lit.Complete)
		}
		return newMemmemPrefilter(lit.Bytes, lit.Complete)
	}

	if seq.Len() <= 3 && maxLen(seq) == 1 {
		set := make([]byte, 0, 3)
		for _, lit := range seq.Literals() {
			set = append(set, lit.Bytes[0])
		}
		return newByteSetPrefilter(set, seq.AllComplete())
	}

	return newAhoCorasickPrefilter(seq)
}

func maxLen(seq *literal.Seq) int {
	n := 0
	for _, lit := range seq.Literals() {
		n = max(n, len(lit.Bytes))
	}
	return n
}

// memchrPrefilter wraps simd.Memchr as a Prefilter.
//
// Example patterns:
//
//	a.*       → search for 'a'
//	a*b       → not used: two literals, see byteSetPrefilter
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) Prefilter {
	return &memchrPrefilter{
		needle:   needle,
		complete: complete,
	}
}

// Find implements Prefilter.Find using simd.Memchr.
func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := simd.Memchr(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memchrPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memchrPrefilter) HeapBytes() int {
	return 0
}

// memmemPrefilter wraps simd.Memmem as a Prefilter.
//
// Example patterns:
//
//	hello       → search for "hello"
//	foo|foobar  → after minimization, search for "foo"
//	prefix.*    → search for "prefix"
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

// newMemmemPrefilter copies needle so the caller's sequence can be reused.
func newMemmemPrefilter(needle []byte, complete bool) Prefilter {
	return &memmemPrefilter{
		needle:   bytes.Clone(needle),
		complete: complete,
	}
}

// Find implements Prefilter.Find using simd.Memmem.
func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := simd.Memmem(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memmemPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memmemPrefilter) HeapBytes() int {
	return len(p.needle)
}
