package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/regexfa/literal"
)

// ahoCorasickPrefilter searches for many literals at once.
//
// All literals are cut to the length of the shortest one before the
// automaton is built. With equal-length patterns the first match to end is
// also the one that starts first, so Find never skips a candidate whatever
// match semantics the automaton uses.
type ahoCorasickPrefilter struct {
	auto      *ahocorasick.Automaton
	patterns  [][]byte
	complete  bool
	length    int
	heapBytes int
}

// newAhoCorasickPrefilter returns nil if the automaton cannot be built.
func newAhoCorasickPrefilter(seq *literal.Seq) Prefilter {
	cut := seq.Clone()
	cut.KeepFirstBytes(cut.MinLen())

	builder := ahocorasick.NewBuilder()
	patterns := make([][]byte, 0, cut.Len())
	heap := 0
	for _, lit := range cut.Literals() {
		builder.AddPattern(lit.Bytes)
		patterns = append(patterns, lit.Bytes)
		heap += len(lit.Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{
		auto:      auto,
		patterns:  patterns,
		complete:  cut.AllComplete(),
		length:    cut.MinLen(),
		heapBytes: heap,
	}
}

// Find implements Prefilter.Find.
func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete implements Prefilter.IsComplete.
func (p *ahoCorasickPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *ahoCorasickPrefilter) LiteralLen() int {
	if p.complete {
		return p.length
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes. It counts the pattern bytes
// only; the automaton's tables are not visible from here.
func (p *ahoCorasickPrefilter) HeapBytes() int {
	return p.heapBytes
}

// Patterns returns the literals the automaton searches for.
func (p *ahoCorasickPrefilter) Patterns() [][]byte {
	return p.patterns
}
