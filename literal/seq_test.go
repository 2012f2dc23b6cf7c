package literal

import (
	"testing"
)

func lits(s *Seq) []string {
	out := make([]string, 0, s.Len())
	for _, l := range s.Literals() {
		out = append(out, string(l.Bytes))
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLiteral(t *testing.T) {
	l := NewLiteral([]byte("foo"), true)
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	if l.String() != "literal{foo, complete=true}" {
		t.Errorf("String() = %q", l.String())
	}
}

func TestSeq_Basics(t *testing.T) {
	var nilSeq *Seq
	if !nilSeq.IsEmpty() || nilSeq.Len() != 0 || nilSeq.Clone() != nil {
		t.Error("nil Seq should behave as empty")
	}
	if NewSeq().AllComplete() {
		t.Error("empty Seq is not AllComplete")
	}

	s := NewSeq(NewLiteral([]byte("abc"), true), NewLiteral([]byte("de"), false))
	if s.MinLen() != 2 {
		t.Errorf("MinLen() = %d, want 2", s.MinLen())
	}
	if s.AllComplete() {
		t.Error("AllComplete() = true with an incomplete literal")
	}
	if got := s.String(); got != "[literal{abc, complete=true}, literal{de, complete=false}]" {
		t.Errorf("String() = %q", got)
	}

	c := s.Clone()
	c.Get(0).Bytes[0] = 'X'
	if string(s.Get(0).Bytes) != "abc" {
		t.Error("modifying the clone changed the original")
	}
}

func TestSeq_Minimize(t *testing.T) {
	tests := []struct {
		name     string
		in       []Literal
		want     []string
		complete []bool
	}{
		{
			name:     "prefix absorbs longer",
			in:       []Literal{NewLiteral([]byte("foobar"), true), NewLiteral([]byte("foo"), true)},
			want:     []string{"foo"},
			complete: []bool{false},
		},
		{
			name:     "chain",
			in:       []Literal{NewLiteral([]byte("abc"), true), NewLiteral([]byte("ab"), true), NewLiteral([]byte("a"), true)},
			want:     []string{"a"},
			complete: []bool{false},
		},
		{
			name:     "disjoint kept and sorted",
			in:       []Literal{NewLiteral([]byte("world"), true), NewLiteral([]byte("hello"), true), NewLiteral([]byte("x"), true)},
			want:     []string{"x", "hello", "world"},
			complete: []bool{true, true, true},
		},
		{
			name:     "duplicates merge",
			in:       []Literal{NewLiteral([]byte("ab"), true), NewLiteral([]byte("ab"), true)},
			want:     []string{"ab"},
			complete: []bool{true},
		},
		{
			name:     "duplicate incomplete wins",
			in:       []Literal{NewLiteral([]byte("ab"), true), NewLiteral([]byte("ab"), false)},
			want:     []string{"ab"},
			complete: []bool{false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSeq(tt.in...)
			s.Minimize()
			if got := lits(s); !equal(got, tt.want) {
				t.Fatalf("Minimize() = %v, want %v", got, tt.want)
			}
			for i, lit := range s.Literals() {
				if lit.Complete != tt.complete[i] {
					t.Errorf("literal %q complete = %v, want %v", lit.Bytes, lit.Complete, tt.complete[i])
				}
			}
		})
	}
}

func TestSeq_KeepFirstBytes(t *testing.T) {
	s := NewSeq(
		NewLiteral([]byte("abcd"), true),
		NewLiteral([]byte("abxy"), true),
		NewLiteral([]byte("q"), true),
	)
	s.KeepFirstBytes(2)
	if got := lits(s); !equal(got, []string{"ab", "q"}) {
		t.Fatalf("KeepFirstBytes(2) = %v", got)
	}
	if s.Get(0).Complete {
		t.Error("truncated literal must be incomplete")
	}
	if !s.Get(1).Complete {
		t.Error("untouched literal must stay complete")
	}
}

func TestSeq_LongestCommonPrefix(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"hello"}, "hello"},
		{[]string{"hello", "help", "hero"}, "he"},
		{[]string{"abc", "def"}, ""},
		{[]string{"ab", "abc"}, "ab"},
	}
	for _, tt := range tests {
		var ls []Literal
		for _, s := range tt.in {
			ls = append(ls, NewLiteral([]byte(s), true))
		}
		got := NewSeq(ls...).LongestCommonPrefix()
		if got == nil || string(got) != tt.want {
			t.Errorf("LongestCommonPrefix(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
