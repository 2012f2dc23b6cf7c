package nfa

import (
	"fmt"

	"github.com/coregx/regexfa/syntax"
)

// ThompsonCompiler builds an NFA by fragment composition: every AST node
// becomes a fragment with one entry and one exit state, and fragments are
// glued with epsilon edges.
//
// The AST arena stores children before parents, so fragments are built in a
// single forward pass over the nodes. No recursion is involved and the
// pattern's nesting depth does not matter.
type ThompsonCompiler struct {
	w edgeWriter
}

// NewThompsonCompiler creates a new Thompson compiler
func NewThompsonCompiler() *ThompsonCompiler {
	return &ThompsonCompiler{}
}

// CompileThompson is shorthand for NewThompsonCompiler().Compile(ast).
func CompileThompson(ast *syntax.AST) (*NFA, error) {
	return NewThompsonCompiler().Compile(ast)
}

// Construction implements Compiler.
func (c *ThompsonCompiler) Construction() Construction {
	return Thompson
}

// fragment is a partially built automaton with a single entry and exit.
type fragment struct {
	entry, exit StateID
}

// Compile implements Compiler. The result has exactly one accepting state,
// the exit of the root fragment.
func (c *ThompsonCompiler) Compile(ast *syntax.AST) (*NFA, error) {
	b := NewBuilderWithCapacity(ast.Len() * 2)
	c.w = edgeWriter{b: b}
	w := &c.w

	frags := make([]fragment, ast.Len())
	for i := 0; i < ast.Len(); i++ {
		n := ast.Node(syntax.NodeID(i))
		var f fragment
		switch n.Op {
		case syntax.OpEmpty:
			f = fragment{b.AddState(), b.AddState()}
			w.eps(f.entry, f.exit)

		case syntax.OpLiteral, syntax.OpWildcard:
			f = fragment{b.AddState(), b.AddState()}
			lo, hi := leafRange(n)
			w.byteRange(f.entry, lo, hi, f.exit)

		case syntax.OpConcat:
			l, r := frags[n.Left], frags[n.Right]
			w.eps(l.exit, r.entry)
			f = fragment{l.entry, r.exit}

		case syntax.OpUnion:
			l, r := frags[n.Left], frags[n.Right]
			f = fragment{b.AddState(), b.AddState()}
			w.eps(f.entry, l.entry)
			w.eps(f.entry, r.entry)
			w.eps(l.exit, f.exit)
			w.eps(r.exit, f.exit)

		case syntax.OpStar:
			x := frags[n.Left]
			f = fragment{b.AddState(), b.AddState()}
			w.eps(f.entry, x.entry)
			w.eps(f.entry, f.exit) // zero repetitions
			w.eps(x.exit, x.entry) // loop back
			w.eps(x.exit, f.exit)

		case syntax.OpPlus:
			// One copy of x, entered directly: it must match once before the
			// loop-back edge becomes available.
			x := frags[n.Left]
			f = fragment{x.entry, b.AddState()}
			w.eps(x.exit, x.entry)
			w.eps(x.exit, f.exit)

		case syntax.OpGroup:
			f = frags[n.Left]

		default:
			return nil, &CompileError{
				Pattern:      ast.Pattern(),
				Construction: Thompson,
				Err:          fmt.Errorf("%w: unsupported op %v", ErrCompilation, n.Op),
			}
		}
		frags[i] = f
	}

	root := frags[ast.Root()]
	if w.err == nil {
		w.err = b.SetStart(root.entry)
	}
	if w.err == nil {
		w.err = b.SetAccepting(root.exit)
	}
	if w.err != nil {
		return nil, &CompileError{Pattern: ast.Pattern(), Construction: Thompson, Err: w.err}
	}

	n, err := b.Build(WithConstruction(Thompson), WithPattern(ast.Pattern()))
	if err != nil {
		return nil, &CompileError{Pattern: ast.Pattern(), Construction: Thompson, Err: err}
	}
	return n, nil
}
