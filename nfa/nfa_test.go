package nfa

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/coregx/regexfa/syntax"
)

func mustCompile(t testing.TB, pattern string, c Construction) *NFA {
	t.Helper()
	n, err := Compile(pattern, c)
	if err != nil {
		t.Fatalf("Compile(%q, %v): %v", pattern, c, err)
	}
	return n
}

func TestThompson_SingleAccepting(t *testing.T) {
	patterns := []string{"", "a", "ab", "a|b", "a*", "a+", "(ab)+c", "((a|b)*c)+", "()", ".*x"}
	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			n := mustCompile(t, p, Thompson)
			if got := len(n.Accepting()); got != 1 {
				t.Errorf("Thompson NFA has %d accepting states, want 1\n%s", got, n.Dump())
			}
			if n.Construction() != Thompson {
				t.Errorf("Construction() = %v, want Thompson", n.Construction())
			}
			if n.Pattern() != p {
				t.Errorf("Pattern() = %q, want %q", n.Pattern(), p)
			}
		})
	}
}

func TestThompson_StateCount(t *testing.T) {
	tests := []struct {
		pattern string
		states  int
	}{
		{"a", 2},
		{"ab", 4},
		{"a|b", 6},
		{"a*", 4},
		{"a+", 3},
		{"(a)", 2},
		{"", 2},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n := mustCompile(t, tt.pattern, Thompson)
			if n.States() != tt.states {
				t.Errorf("States() = %d, want %d\n%s", n.States(), tt.states, n.Dump())
			}
		})
	}
}

func TestGlushkov_NoEpsilons(t *testing.T) {
	patterns := []string{"", "a", "a*b+", "(ab)+", "a|b|c", "((a|c)b)*", "(.*)*", "()", "(a*)*b"}
	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			n := mustCompile(t, p, Glushkov)
			if n.HasEpsilons() {
				t.Errorf("Glushkov NFA has epsilon edges\n%s", n.Dump())
			}
			_, eps := n.TransitionCount()
			if eps != 0 {
				t.Errorf("TransitionCount() epsilons = %d, want 0", eps)
			}
		})
	}
}

func TestGlushkov_Positions(t *testing.T) {
	n := mustCompile(t, "(a|b)*abb", Glushkov)

	// One state per symbol occurrence plus the start state.
	if n.States() != 6 {
		t.Fatalf("States() = %d, want 6\n%s", n.States(), n.Dump())
	}
	if n.Start() != 0 {
		t.Errorf("Start() = %d, want 0", n.Start())
	}
	for id := StateID(1); id < 6; id++ {
		if got := n.State(id).Position(); got != int(id) {
			t.Errorf("State(%d).Position() = %d", id, got)
		}
	}
	if got := n.Accepting(); len(got) != 1 || got[0] != 5 {
		t.Errorf("Accepting() = %v, want [5]", got)
	}

	// Every edge into a position carries that position's symbol.
	symbols := []byte{0, 'a', 'b', 'a', 'b', 'b'}
	for it := n.Iter(); it.HasNext(); {
		s := it.Next()
		for _, tr := range s.Transitions() {
			want := symbols[tr.Next]
			if tr.Lo != want || tr.Hi != want {
				t.Errorf("edge %d->%d labelled %q-%q, want %q", s.ID(), tr.Next, tr.Lo, tr.Hi, want)
			}
		}
	}
}

func TestGlushkov_NullableStartAccepts(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"", true},
		{"a*", true},
		{"(a|b*)", true},
		{"a+", false},
		{"a*b", false},
		{"(a*)+", true},
		{"()", true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n := mustCompile(t, tt.pattern, Glushkov)
			if got := n.IsAccepting(n.Start()); got != tt.want {
				t.Errorf("IsAccepting(start) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompile_ParseErrorPassesThrough(t *testing.T) {
	for _, c := range []Construction{Thompson, Glushkov} {
		_, err := Compile("(a", c)
		var se *syntax.Error
		if !errors.As(err, &se) {
			t.Fatalf("%v: error %v is not *syntax.Error", c, err)
		}
		if !errors.Is(err, syntax.ErrUnbalancedGroup) {
			t.Errorf("%v: error %v is not ErrUnbalancedGroup", c, err)
		}
	}
}

func TestNewCompiler(t *testing.T) {
	if got := NewCompiler(Glushkov).Construction(); got != Glushkov {
		t.Errorf("NewCompiler(Glushkov).Construction() = %v", got)
	}
	if got := NewCompiler(Thompson).Construction(); got != Thompson {
		t.Errorf("NewCompiler(Thompson).Construction() = %v", got)
	}
	if got := NewCompiler(Construction(9)).Construction(); got != Thompson {
		t.Errorf("unknown construction should fall back to Thompson, got %v", got)
	}
	if got := Construction(9).String(); got != "Construction(9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestNFA_DeepPattern(t *testing.T) {
	depth := 20000
	pattern := strings.Repeat("(", depth) + "a" + strings.Repeat(")", depth)
	for _, c := range []Construction{Thompson, Glushkov} {
		n := mustCompile(t, pattern, c)
		sim := NewSimulator(n)
		if !sim.Accepts([]byte("a")) {
			t.Errorf("%v: deeply nested group should accept \"a\"", c)
		}
	}
}

func TestGlushkov_NestedRepetitionEdges(t *testing.T) {
	base := mustCompile(t, "(a|b)*c", Glushkov)
	wantBytes, _ := base.TransitionCount()
	for _, p := range []string{"((a|b)*)*c", "(((a|b)+)*)+c", "((((a|b))*)*)*c"} {
		n := mustCompile(t, p, Glushkov)
		if got, _ := n.TransitionCount(); got != wantBytes {
			t.Errorf("%q: %d byte edges, want %d\n%s", p, got, wantBytes, n.Dump())
		}
	}
}

func TestGlushkov_NestedStarsBoundedMemory(t *testing.T) {
	alts := strings.TrimSuffix(strings.Repeat("a|", 400), "|")
	depth := 400
	pattern := strings.Repeat("(", depth) + alts + strings.Repeat(")*", depth)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	n := mustCompile(t, pattern, Glushkov)
	runtime.ReadMemStats(&after)

	const limit = 256 << 20
	if allocated := after.TotalAlloc - before.TotalAlloc; allocated > limit {
		t.Errorf("Glushkov compile of %d-byte pattern allocated %d MB, want < %d MB",
			len(pattern), allocated>>20, limit>>20)
	}

	sim := NewSimulator(n)
	for _, text := range []string{"", "a", "aaaa"} {
		if !sim.Accepts([]byte(text)) {
			t.Errorf("Accepts(%q) = false, want true", text)
		}
	}
	if sim.Accepts([]byte("ab")) {
		t.Error(`Accepts("ab") = true, want false`)
	}
}

func TestNFA_Strings(t *testing.T) {
	n := mustCompile(t, "a.", Glushkov)
	dump := n.Dump()
	if !strings.Contains(dump, "> State(0") {
		t.Errorf("Dump() does not mark the start state:\n%s", dump)
	}
	if !strings.Contains(dump, "any->2") {
		t.Errorf("Dump() does not show the wildcard edge:\n%s", dump)
	}
	if !strings.Contains(n.String(), "Glushkov") {
		t.Errorf("String() = %q", n.String())
	}
	if n.State(InvalidState) != nil || n.State(99) != nil {
		t.Error("State() should return nil for out-of-range IDs")
	}
}
