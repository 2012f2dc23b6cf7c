// Package literal extracts literal prefixes from parsed patterns.
//
// A prefix set is a Seq of literals such that every non-empty match of the
// pattern starts with at least one of them. The matcher hands such a set to a
// prefilter, which can then skip straight to candidate match starts instead
// of trying the automaton at every offset.
package literal

import (
	"bytes"
	"slices"
)

// Literal is a byte string extracted from a pattern.
//
// Complete means the literal is a whole word of the pattern's language, not
// just the start of one. For pattern "foo|bar" both literals are complete;
// for "foo.*" the literal "foo" is not.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String formats the literal for debugging, e.g. literal{foo, complete=true}.
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative literals.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), true),
//	    literal.NewLiteral([]byte("bar"), true),
//	)
//	fmt.Println(seq.Len()) // Output: 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i. Panics if i is out of range.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// Literals returns the literals. The slice must not be modified.
func (s *Seq) Literals() []Literal {
	if s == nil {
		return nil
	}
	return s.literals
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// AllComplete reports whether the sequence is non-empty and every literal is
// complete, i.e. the sequence spells out the whole language.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// MinLen returns the length of the shortest literal, or 0 for an empty
// sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	n := len(s.literals[0].Bytes)
	for _, lit := range s.literals[1:] {
		n = min(n, len(lit.Bytes))
	}
	return n
}

// Clone returns a deep copy of the sequence.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}
	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		cloned[i] = Literal{Bytes: bytes.Clone(lit.Bytes), Complete: lit.Complete}
	}
	return &Seq{literals: cloned}
}

// Minimize removes literals that have another literal of the sequence as a
// prefix: any text starting with "foobar" also starts with "foo". A literal
// that absorbs a longer one is no longer complete. The result is sorted by
// length, then bytewise.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), true),
//	    literal.NewLiteral([]byte("foobar"), true),
//	)
//	seq.Minimize()
//	fmt.Println(seq.Len()) // Output: 1 (only "foo" remains)
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}
	slices.SortStableFunc(s.literals, func(a, b Literal) int {
		if len(a.Bytes) != len(b.Bytes) {
			return len(a.Bytes) - len(b.Bytes)
		}
		return bytes.Compare(a.Bytes, b.Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, cur := range s.literals {
		redundant := false
		for j := range kept {
			if bytes.HasPrefix(cur.Bytes, kept[j].Bytes) {
				if len(cur.Bytes) != len(kept[j].Bytes) || !cur.Complete {
					kept[j].Complete = false
				}
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, cur)
		}
	}
	s.literals = kept
}

// KeepFirstBytes truncates every literal to at most n bytes, marks truncated
// literals incomplete and merges duplicates.
func (s *Seq) KeepFirstBytes(n int) {
	if s.IsEmpty() {
		return
	}
	for i := range s.literals {
		if len(s.literals[i].Bytes) > n {
			s.literals[i].Bytes = s.literals[i].Bytes[:n]
			s.literals[i].Complete = false
		}
	}
	s.dedupe()
}

// dedupe merges literals with equal bytes; the merged literal is complete
// only if every copy was.
func (s *Seq) dedupe() {
	out := s.literals[:0]
	for _, lit := range s.literals {
		if i := slices.IndexFunc(out, func(o Literal) bool { return bytes.Equal(o.Bytes, lit.Bytes) }); i >= 0 {
			out[i].Complete = out[i].Complete && lit.Complete
			continue
		}
		out = append(out, lit)
	}
	s.literals = out
}

// LongestCommonPrefix returns the longest common prefix of all literals in the sequence.
// If the sequence is empty or has no common prefix, returns an empty slice.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("hello"), true),
//	    literal.NewLiteral([]byte("help"), true),
//	    literal.NewLiteral([]byte("hero"), true),
//	)
//	fmt.Println(string(seq.LongestCommonPrefix())) // Output: he
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}
	prefix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		n := 0
		for n < len(prefix) && n < len(lit.Bytes) && prefix[n] == lit.Bytes[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return bytes.Clone(prefix)
}

// String formats the sequence for debugging.
func (s *Seq) String() string {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, lit := range s.Literals() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(lit.String())
	}
	b.WriteByte(']')
	return b.String()
}
