package meta

// Match is a match span over the searched text.
//
// The haystack is held by reference, so Bytes and String read the caller's
// buffer. Invariant: 0 <= Start() <= End() <= len(haystack).
//
// Example:
//
//	m := meta.NewMatch(5, 11, []byte("test foo123 end"))
//	println(m.String())          // "foo123"
//	println(m.Start(), m.End())  // 5, 11
type Match struct {
	start    int
	end      int
	haystack []byte
}

// NewMatch creates a Match covering haystack[start:end].
func NewMatch(start, end int, haystack []byte) *Match {
	return &Match{
		start:    start,
		end:      end,
		haystack: haystack,
	}
}

// Start returns the inclusive start offset of the match.
func (m *Match) Start() int {
	return m.start
}

// End returns the exclusive end offset of the match.
func (m *Match) End() int {
	return m.end
}

// Len returns the length of the match in bytes.
func (m *Match) Len() int {
	return m.end - m.start
}

// Bytes returns the matched bytes as a view into the haystack.
func (m *Match) Bytes() []byte {
	if m.start < 0 || m.end > len(m.haystack) || m.start > m.end {
		return nil
	}
	return m.haystack[m.start:m.end]
}

// String returns a copy of the matched text.
func (m *Match) String() string {
	return string(m.Bytes())
}

// IsEmpty returns true if the match has zero length, as produced by
// nullable patterns such as "" or "a*".
func (m *Match) IsEmpty() bool {
	return m.start == m.end
}
