package syntax

import (
	"errors"
	"strings"
	"testing"
)

// TestParse_Valid checks that valid patterns parse and print back to an
// equivalent pattern.
func TestParse_Valid(t *testing.T) {
	tests := []struct {
		pattern string
		want    string // String() of the parsed AST
		root    Op
	}{
		{"", "", OpEmpty},
		{"a", "a", OpLiteral},
		{".", ".", OpWildcard},
		{"ab", "ab", OpConcat},
		{"a|b", "a|b", OpUnion},
		{"a*", "a*", OpStar},
		{"a+", "a+", OpPlus},
		{"(a)", "(a)", OpGroup},
		{"()", "()", OpGroup},
		{"a*b+", "a*b+", OpConcat},
		{"(ab)+", "(ab)+", OpPlus},
		{"(a|b)*c", "(a|b)*c", OpConcat},
		{"a|b|c", "a|b|c", OpUnion},
		{"((a))", "((a))", OpGroup},
		{`a\*b`, `a\*b`, OpConcat},
		{`\.`, `\.`, OpLiteral},
		{`\a`, "a", OpLiteral},
		{`a\`, `a\\`, OpConcat},
		{"a?b", "a?b", OpConcat},
		{"[x]{2}", "[x]{2}", OpConcat},
		{"()*", "()*", OpStar},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			ast, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.pattern, err)
			}
			if got := ast.String(); got != tt.want {
				t.Errorf("String() = %q, want %q\n%s", got, tt.want, ast.Dump())
			}
			if got := ast.Node(ast.Root()).Op; got != tt.root {
				t.Errorf("root op = %v, want %v", got, tt.root)
			}
			if ast.Pattern() != tt.pattern {
				t.Errorf("Pattern() = %q, want %q", ast.Pattern(), tt.pattern)
			}
		})
	}
}

// TestParse_Errors checks the error kind and offset for malformed patterns.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		pattern string
		kind    error
		pos     int
	}{
		{"(", ErrUnbalancedGroup, 0},
		{")", ErrUnbalancedGroup, 0},
		{"a)", ErrUnbalancedGroup, 1},
		{"(a", ErrUnbalancedGroup, 0},
		{"((a)", ErrUnbalancedGroup, 0},
		{"(a(b", ErrUnbalancedGroup, 2},
		{"(a))", ErrUnbalancedGroup, 3},
		{"*a", ErrDanglingQuantifier, 0},
		{"+", ErrDanglingQuantifier, 0},
		{"a**", ErrDanglingQuantifier, 2},
		{"a*+", ErrDanglingQuantifier, 2},
		{"a++", ErrDanglingQuantifier, 2},
		{"(*a)", ErrDanglingQuantifier, 1},
		{"a|*b", ErrDanglingQuantifier, 2},
		{"a|", ErrEmptyAlternative, 1},
		{"|a", ErrEmptyAlternative, 0},
		{"a||b", ErrEmptyAlternative, 2},
		{"(a|)", ErrEmptyAlternative, 2},
		{"(|a)", ErrEmptyAlternative, 1},
		{"|", ErrEmptyAlternative, 0},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			ast, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) = %s, want error", tt.pattern, ast.Dump())
			}
			if ast != nil {
				t.Error("AST must be nil on error")
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("error = %v, want kind %v", err, tt.kind)
			}
			var serr *Error
			if !errors.As(err, &serr) {
				t.Fatalf("error type = %T, want *Error", err)
			}
			if serr.Pos != tt.pos {
				t.Errorf("Pos = %d, want %d", serr.Pos, tt.pos)
			}
			if serr.Pattern != tt.pattern {
				t.Errorf("Pattern = %q, want %q", serr.Pattern, tt.pattern)
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	_, err := Parse("(ab")
	if err == nil {
		t.Fatal("expected error")
	}
	want := "error parsing regexp: unbalanced group at offset 0: `(ab`"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// TestParse_ArenaOrder verifies that every child precedes its parent and that
// leaves are numbered left to right.
func TestParse_ArenaOrder(t *testing.T) {
	patterns := []string{
		"a", "(a|b)*c", "((ab)+|c*)d.e", "x(y(z(w)))", "a|b|c|d",
	}
	for _, pattern := range patterns {
		ast, err := Parse(pattern)
		if err != nil {
			t.Fatalf("Parse(%q): %v", pattern, err)
		}
		lastLeafPos := -1
		leaves := 0
		for i := 0; i < ast.Len(); i++ {
			id := NodeID(i)
			for _, c := range ast.Children(id) {
				if c >= id {
					t.Errorf("%q: child %d of node %d is not before its parent", pattern, c, id)
				}
			}
			n := ast.Node(id)
			if n.Op.IsLeaf() {
				leaves++
				if n.Pos <= lastLeafPos {
					t.Errorf("%q: leaf at %d after leaf at %d", pattern, n.Pos, lastLeafPos)
				}
				lastLeafPos = n.Pos
			}
		}
		if leaves != ast.Positions() {
			t.Errorf("%q: Positions() = %d, counted %d", pattern, ast.Positions(), leaves)
		}
	}
}

// TestParse_DeepNesting makes sure nesting depth is bounded only by memory.
func TestParse_DeepNesting(t *testing.T) {
	const depth = 100000
	pattern := strings.Repeat("(", depth) + "a" + strings.Repeat(")", depth)
	ast, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ast.Positions() != 1 {
		t.Errorf("Positions() = %d, want 1", ast.Positions())
	}

	_, err = Parse(strings.Repeat("(", depth))
	if !errors.Is(err, ErrUnbalancedGroup) {
		t.Errorf("unclosed nesting: got %v, want ErrUnbalancedGroup", err)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	patterns := []string{
		"(a|b)*abb", `a\|b`, `\(\)`, "a.b*c+", "((a|b)(c|d))+",
	}
	for _, pattern := range patterns {
		ast, err := Parse(pattern)
		if err != nil {
			t.Fatalf("Parse(%q): %v", pattern, err)
		}
		again, err := Parse(ast.String())
		if err != nil {
			t.Fatalf("Parse(String()) for %q: %v", pattern, err)
		}
		if again.Dump() != ast.Dump() {
			t.Errorf("%q: tree changed after round trip\nbefore:\n%s\nafter:\n%s", pattern, ast.Dump(), again.Dump())
		}
	}
}

func TestOp_String(t *testing.T) {
	if OpStar.String() != "Star" {
		t.Errorf("OpStar.String() = %q", OpStar.String())
	}
	if got := Op(99).String(); got != "Op(99)" {
		t.Errorf("Op(99).String() = %q", got)
	}
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{"", "a", "(a|b)*", "a**", ")(", `\`, "((|))"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, pattern string) {
		ast, err := Parse(pattern)
		if err != nil {
			var serr *Error
			if !errors.As(err, &serr) {
				t.Fatalf("error type %T", err)
			}
			if serr.Pos < 0 || serr.Pos > len(pattern) {
				t.Fatalf("error offset %d out of range", serr.Pos)
			}
			return
		}
		if _, err := Parse(ast.String()); err != nil {
			t.Fatalf("String() of %q does not reparse: %v", pattern, err)
		}
	})
}
