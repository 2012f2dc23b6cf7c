package nfa

import (
	"github.com/coregx/regexfa/syntax"
)

// Compiler turns a parsed pattern into an NFA. ThompsonCompiler and
// GlushkovCompiler are the two implementations; callers pick one at compile
// time and treat the result uniformly.
type Compiler interface {
	Compile(ast *syntax.AST) (*NFA, error)
	Construction() Construction
}

// NewCompiler returns the compiler for construction c. Unknown values fall
// back to Thompson.
func NewCompiler(c Construction) Compiler {
	if c == Glushkov {
		return NewGlushkovCompiler()
	}
	return NewThompsonCompiler()
}

// Compile parses pattern and builds an NFA with the requested construction.
// Parse failures are returned unchanged as *syntax.Error.
func Compile(pattern string, c Construction) (*NFA, error) {
	ast, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return NewCompiler(c).Compile(ast)
}

// edgeWriter wraps a Builder and remembers the first error, so construction
// code can add edges without checking each call.
type edgeWriter struct {
	b   *Builder
	err error
}

func (w *edgeWriter) eps(from, to StateID) {
	if w.err == nil {
		w.err = w.b.AddEpsilon(from, to)
	}
}

func (w *edgeWriter) byteRange(from StateID, lo, hi byte, to StateID) {
	if w.err == nil {
		w.err = w.b.AddTransition(from, lo, hi, to)
	}
}

// leafRange returns the byte range matched by a Literal or Wildcard node.
func leafRange(n syntax.Node) (lo, hi byte) {
	if n.Op == syntax.OpWildcard {
		return 0x00, 0xFF
	}
	return n.Byte, n.Byte
}
