package nfa

import (
	"fmt"
	"slices"

	"github.com/coregx/regexfa/syntax"
)

// GlushkovCompiler builds the position automaton of a pattern.
//
// Every Literal or Wildcard occurrence gets a position 1..P, numbered left to
// right; the NFA has a start state (ID 0) plus one state per position (ID p).
// An edge p -> q is labelled with q's symbol and exists iff q can follow p in
// some word of the language. The result never contains epsilon edges.
type GlushkovCompiler struct {
	nullable []bool
	first    [][]uint32
	last     [][]uint32
	follow   [][]uint32
	scratch  []uint32
}

// NewGlushkovCompiler creates a new Glushkov compiler
func NewGlushkovCompiler() *GlushkovCompiler {
	return &GlushkovCompiler{}
}

// CompileGlushkov is shorthand for NewGlushkovCompiler().Compile(ast).
func CompileGlushkov(ast *syntax.AST) (*NFA, error) {
	return NewGlushkovCompiler().Compile(ast)
}

// Construction implements Compiler.
func (c *GlushkovCompiler) Construction() Construction {
	return Glushkov
}

// Compile implements Compiler.
func (c *GlushkovCompiler) Compile(ast *syntax.AST) (*NFA, error) {
	positions := ast.Positions()
	b := NewBuilderWithCapacity(positions + 1)
	w := &edgeWriter{b: b}

	start := b.AddState()
	// leaves[p] is the AST node for position p; index 0 is unused.
	leaves := make([]syntax.Node, positions+1)

	c.nullable = make([]bool, ast.Len())
	c.first = make([][]uint32, ast.Len())
	c.last = make([][]uint32, ast.Len())
	c.follow = make([][]uint32, positions+1)

	pos := uint32(0)
	for i := 0; i < ast.Len(); i++ {
		n := ast.Node(syntax.NodeID(i))
		switch n.Op {
		case syntax.OpEmpty:
			c.nullable[i] = true

		case syntax.OpLiteral, syntax.OpWildcard:
			pos++
			b.AddPosition(int(pos))
			leaves[pos] = n
			c.first[i] = []uint32{pos}
			c.last[i] = c.first[i]

		case syntax.OpConcat:
			l, r := n.Left, n.Right
			c.addFollow(c.last[l], c.first[r])
			c.nullable[i] = c.nullable[l] && c.nullable[r]
			c.first[i] = c.first[l]
			if c.nullable[l] {
				c.first[i] = union(c.first[l], c.first[r])
			}
			c.last[i] = c.last[r]
			if c.nullable[r] {
				c.last[i] = union(c.last[l], c.last[r])
			}
			c.release(l, r)

		case syntax.OpUnion:
			l, r := n.Left, n.Right
			c.nullable[i] = c.nullable[l] || c.nullable[r]
			c.first[i] = union(c.first[l], c.first[r])
			c.last[i] = union(c.last[l], c.last[r])
			c.release(l, r)

		case syntax.OpStar, syntax.OpPlus:
			x := n.Left
			// A repetition of a repetition has the same first and last
			// sets, so its loop edges already exist.
			if !isRepeat(ast, x) {
				c.addFollow(c.last[x], c.first[x])
			}
			c.nullable[i] = n.Op == syntax.OpStar || c.nullable[x]
			c.first[i], c.last[i] = c.first[x], c.last[x]
			c.release(x, x)

		case syntax.OpGroup:
			x := n.Left
			c.nullable[i] = c.nullable[x]
			c.first[i], c.last[i] = c.first[x], c.last[x]
			c.release(x, x)

		default:
			return nil, &CompileError{
				Pattern:      ast.Pattern(),
				Construction: Glushkov,
				Err:          fmt.Errorf("%w: unsupported op %v", ErrCompilation, n.Op),
			}
		}
	}

	root := ast.Root()

	// The start state behaves like a position whose follow set is first(root).
	for _, q := range c.first[root] {
		lo, hi := leafRange(leaves[q])
		w.byteRange(start, lo, hi, StateID(q))
	}
	for p := 1; p <= positions; p++ {
		for _, q := range c.follow[p] {
			lo, hi := leafRange(leaves[q])
			w.byteRange(StateID(p), lo, hi, StateID(q))
		}
	}

	if w.err == nil {
		w.err = b.SetStart(start)
	}
	for _, p := range c.last[root] {
		if w.err == nil {
			w.err = b.SetAccepting(StateID(p))
		}
	}
	if w.err == nil && c.nullable[root] {
		w.err = b.SetAccepting(start)
	}
	if w.err != nil {
		return nil, &CompileError{Pattern: ast.Pattern(), Construction: Glushkov, Err: w.err}
	}

	c.nullable, c.first, c.last, c.follow, c.scratch = nil, nil, nil, nil, nil

	n, err := b.Build(WithConstruction(Glushkov), WithPattern(ast.Pattern()))
	if err != nil {
		return nil, &CompileError{Pattern: ast.Pattern(), Construction: Glushkov, Err: err}
	}
	return n, nil
}

// addFollow records that every position in from may be followed by every
// position in to. Follow sets stay sorted and duplicate-free, and are only
// reallocated when they grow.
func (c *GlushkovCompiler) addFollow(from, to []uint32) {
	if len(to) == 0 {
		return
	}
	for _, p := range from {
		cur := c.follow[p]
		if len(cur) == 0 {
			c.follow[p] = to
			continue
		}
		c.scratch = mergeInto(c.scratch[:0], cur, to)
		if len(c.scratch) != len(cur) {
			c.follow[p] = slices.Clone(c.scratch)
		}
	}
}

// isRepeat reports whether id, under any number of groups, is a Star or Plus.
func isRepeat(ast *syntax.AST, id syntax.NodeID) bool {
	n := ast.Node(id)
	for n.Op == syntax.OpGroup {
		n = ast.Node(n.Left)
	}
	return n.Op == syntax.OpStar || n.Op == syntax.OpPlus
}

// release drops the sets of consumed children. Every node has exactly one
// parent, so the parent now owns (or has copied) them.
func (c *GlushkovCompiler) release(l, r syntax.NodeID) {
	c.first[l], c.last[l] = nil, nil
	c.first[r], c.last[r] = nil, nil
}

// union merges two sorted position sets into a new sorted set.
func union(a, b []uint32) []uint32 {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	return mergeInto(make([]uint32, 0, len(a)+len(b)), a, b)
}

// mergeInto appends the sorted union of a and b to out.
func mergeInto(out, a, b []uint32) []uint32 {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
