package nfa

import (
	"fmt"
	"testing"
)

func TestSimulator_Accepts(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    bool
	}{
		{"a*b+", "aaabbb", true},
		{"a*b+", "b", true},
		{"a*b+", "aaa", false},
		{"a|b", "c", false},
		{"a|b", "b", true},
		{"(ab)+", "ababab", true},
		{"(ab)+", "", false},
		{"(ab)+", "aba", false},
		{"", "", true},
		{"", "x", false},
		{"()", "", true},
		{"a.c", "abc", true},
		{"a.c", "a\xffc", true},
		{"a.c", "ac", false},
		{`a\*b`, "a*b", true},
		{`a\*b`, "aab", false},
		{"(a*)*", "aaaa", true},
		{"(a|b)*abb", "babaabb", true},
		{"(a|b)*abb", "babaab", false},
		{"((a|b)(c|d))+", "adbcbd", true},
	}
	for _, tt := range tests {
		for _, c := range []Construction{Thompson, Glushkov} {
			t.Run(fmt.Sprintf("%v/%s/%s", c, tt.pattern, tt.text), func(t *testing.T) {
				sim := NewSimulator(mustCompile(t, tt.pattern, c))
				if got := sim.Accepts([]byte(tt.text)); got != tt.want {
					t.Errorf("Accepts(%q) = %v, want %v", tt.text, got, tt.want)
				}
			})
		}
	}
}

func TestSimulator_LongestPrefix(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		at      int
		end     int
		ok      bool
	}{
		{"a+", "aaab", 0, 3, true},
		{"a+", "baaa", 0, -1, false},
		{"a+", "baaa", 1, 4, true},
		{"a*", "bbb", 0, 0, true},
		{"a*", "bbb", 3, 3, true},
		{"ab|abcd", "abcde", 0, 4, true},
		{"(ab)+", "ababa", 0, 4, true},
		{"x", "", 0, -1, false},
	}
	for _, tt := range tests {
		for _, c := range []Construction{Thompson, Glushkov} {
			t.Run(fmt.Sprintf("%v/%s/%s@%d", c, tt.pattern, tt.text, tt.at), func(t *testing.T) {
				sim := NewSimulator(mustCompile(t, tt.pattern, c))
				end, ok := sim.LongestPrefix([]byte(tt.text), tt.at)
				if end != tt.end || ok != tt.ok {
					t.Errorf("LongestPrefix(%q, %d) = (%d, %v), want (%d, %v)",
						tt.text, tt.at, end, ok, tt.end, tt.ok)
				}
			})
		}
	}
}

func TestSimulator_Reset(t *testing.T) {
	small := mustCompile(t, "a", Thompson)
	big := mustCompile(t, "(abc|def)+x", Thompson)

	sim := NewSimulator(small)
	sim.Reset(big)
	if sim.NFA() != big {
		t.Fatal("NFA() does not return the reset automaton")
	}
	if !sim.Accepts([]byte("abcdefx")) {
		t.Error("Accepts after Reset to larger NFA failed")
	}
	sim.Reset(small)
	if !sim.Accepts([]byte("a")) || sim.Accepts([]byte("abcdefx")) {
		t.Error("Accepts after Reset to smaller NFA is wrong")
	}
}

func TestEpsilonClosure(t *testing.T) {
	// a*: entry(2) -> inner entry(0), exit(3); inner exit(1) -> 0, 3.
	th := mustCompile(t, "a*", Thompson)
	set := NewStateSet(th)
	set.Add(th.Start())
	closure := EpsilonClosure(th, set)

	if set.Len() != 1 {
		t.Errorf("EpsilonClosure modified its argument: %v", set.States())
	}
	want := []StateID{0, 2, 3}
	if got := closure.States(); fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("closure = %v, want %v", got, want)
	}
	if !th.ContainsAccepting(closure) {
		t.Error("closure of a* start should contain the accepting state")
	}

	gl := mustCompile(t, "a*", Glushkov)
	gset := NewStateSet(gl)
	gset.Add(gl.Start())
	if got := EpsilonClosure(gl, gset).States(); len(got) != 1 || got[0] != gl.Start() {
		t.Errorf("Glushkov closure should be the identity, got %v", got)
	}
}

func TestStep(t *testing.T) {
	for _, c := range []Construction{Thompson, Glushkov} {
		t.Run(c.String(), func(t *testing.T) {
			n := mustCompile(t, "ab|a.", c)
			set := NewStateSet(n)
			set.Add(n.Start())
			set = EpsilonClosure(n, set)

			afterA := Step(n, set, 'a')
			if afterA.IsEmpty() {
				t.Fatal("Step on 'a' produced no states")
			}
			if n.ContainsAccepting(afterA) {
				t.Error("no accepting state should be reached after one byte")
			}
			if !n.ContainsAccepting(Step(n, afterA, 'z')) {
				t.Error("wildcard branch should accept \"az\"")
			}
			if !Step(n, set, 'z').IsEmpty() {
				t.Error("Step on 'z' from start should be empty")
			}
		})
	}
}

// allStrings returns every string over alphabet up to length max.
func allStrings(alphabet string, max int) []string {
	out := []string{""}
	layer := []string{""}
	for i := 0; i < max; i++ {
		var next []string
		for _, s := range layer {
			for j := 0; j < len(alphabet); j++ {
				next = append(next, s+alphabet[j:j+1])
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

func TestConstructions_Agree(t *testing.T) {
	patterns := []string{
		"a", "ab", "a|b", "a*", "a+", "(ab)*", "(a|b)*c", "a*b+", "(a+b*)+",
		"((a|b)c)*|c+", "a.b", ".*", "(.)+a", "(a*)*", "(a*|b)+c", "()", "(()|a)b",
		"(a|b|c)(a|b|c)", "a(b(c)*)+", "c*(ab|ba)*c*",
	}
	inputs := allStrings("abc", 5)
	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			th := NewSimulator(mustCompile(t, p, Thompson))
			gl := NewSimulator(mustCompile(t, p, Glushkov))
			for _, s := range inputs {
				a, b := th.Accepts([]byte(s)), gl.Accepts([]byte(s))
				if a != b {
					t.Fatalf("%q: Thompson=%v Glushkov=%v", s, a, b)
				}
				ae, aok := th.LongestPrefix([]byte(s), 0)
				be, bok := gl.LongestPrefix([]byte(s), 0)
				if ae != be || aok != bok {
					t.Fatalf("%q: LongestPrefix Thompson=(%d,%v) Glushkov=(%d,%v)", s, ae, aok, be, bok)
				}
			}
		})
	}
}

func BenchmarkSimulator_Accepts(b *testing.B) {
	text := make([]byte, 4096)
	for i := range text {
		text[i] = "ab"[i%2]
	}
	for _, c := range []Construction{Thompson, Glushkov} {
		n := mustCompile(b, "(a|b)*abb|(ab)+", c)
		sim := NewSimulator(n)
		b.Run(c.String(), func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				sim.Accepts(text)
			}
		})
	}
}
