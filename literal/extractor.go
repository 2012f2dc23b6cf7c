package literal

import (
	"github.com/coregx/regexfa/syntax"
)

// ExtractorConfig configures literal extraction limits.
type ExtractorConfig struct {
	// MaxLiterals caps the size of any intermediate prefix set. A set that
	// would grow past it is abandoned (alternation) or cut back to the
	// shorter prefixes it came from (concatenation). Default: 64.
	MaxLiterals int

	// MaxLiteralLen caps the length of each literal; longer ones are
	// truncated and become incomplete. Default: 64.
	MaxLiteralLen int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
	}
}

// Extractor computes prefix literal sets from a syntax.AST.
//
// Example:
//
//	ast, _ := syntax.Parse("(hello|world)+!")
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(ast)
//	// prefixes = [hello, world], both incomplete
type Extractor struct {
	config ExtractorConfig
}

// New creates a new Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// prefixes is the per-node result. A nil lits with ok == false means the
// node's words cannot be covered by a bounded set of literals (for example
// because they may start with a wildcard).
//
// Otherwise every word w of the node's language is covered by some literal
// p: w == p if p is complete, w starts with p if not.
type prefixes struct {
	lits []Literal
	ok   bool
}

// ExtractPrefixes returns literals such that every non-empty match of ast
// starts with one of them, minimized. It returns an empty Seq when no such
// set exists within the configured limits, in particular when the pattern
// matches the empty string or can start with a wildcard.
//
// Examples:
//
//	"hello"        → [hello (complete)]
//	"foo|bar"      → [bar, foo (both complete)]
//	"a*b"          → [a, b (complete)]
//	"hello.*world" → [hello]
//	".*foo", "a*"  → []
func (e *Extractor) ExtractPrefixes(ast *syntax.AST) *Seq {
	// Children precede parents in the arena, so one forward pass suffices.
	res := make([]prefixes, ast.Len())
	for i := 0; i < ast.Len(); i++ {
		n := ast.Node(syntax.NodeID(i))
		switch n.Op {
		case syntax.OpEmpty:
			res[i] = prefixes{lits: []Literal{{Bytes: []byte{}, Complete: true}}, ok: true}
		case syntax.OpLiteral:
			res[i] = prefixes{lits: []Literal{{Bytes: []byte{n.Byte}, Complete: true}}, ok: true}
		case syntax.OpWildcard:
			res[i] = prefixes{}
		case syntax.OpGroup:
			res[i] = res[n.Left]
		case syntax.OpUnion:
			res[i] = e.union(res[n.Left], res[n.Right])
		case syntax.OpConcat:
			res[i] = e.concat(res[n.Left], res[n.Right])
		case syntax.OpStar:
			res[i] = repeat(res[n.Left], true)
		case syntax.OpPlus:
			res[i] = repeat(res[n.Left], false)
		}
		for _, c := range ast.Children(syntax.NodeID(i)) {
			res[c] = prefixes{}
		}
	}

	root := res[ast.Root()]
	if !root.ok {
		return NewSeq()
	}
	for _, lit := range root.lits {
		if len(lit.Bytes) == 0 {
			// An empty prefix says nothing about where matches start.
			return NewSeq()
		}
	}
	seq := NewSeq(root.lits...)
	seq.Minimize()
	return seq
}

func (e *Extractor) union(l, r prefixes) prefixes {
	if !l.ok || !r.ok || len(l.lits)+len(r.lits) > e.config.MaxLiterals {
		return prefixes{}
	}
	seq := NewSeq(append(append(make([]Literal, 0, len(l.lits)+len(r.lits)), l.lits...), r.lits...)...)
	seq.dedupe()
	return prefixes{lits: seq.literals, ok: true}
}

func (e *Extractor) concat(l, r prefixes) prefixes {
	if !l.ok {
		return prefixes{}
	}
	size := 0
	for _, x := range l.lits {
		if x.Complete && r.ok {
			size += len(r.lits)
		} else {
			size++
		}
	}
	if size > e.config.MaxLiterals {
		// Every word still starts with a word of l.
		return prefixes{lits: incomplete(l.lits), ok: true}
	}

	out := make([]Literal, 0, size)
	for _, x := range l.lits {
		switch {
		case !x.Complete:
			out = append(out, x)
		case !r.ok:
			out = append(out, Literal{Bytes: x.Bytes, Complete: false})
		default:
			for _, y := range r.lits {
				b := make([]byte, 0, len(x.Bytes)+len(y.Bytes))
				b = append(append(b, x.Bytes...), y.Bytes...)
				out = append(out, Literal{Bytes: b, Complete: y.Complete})
			}
		}
	}
	seq := NewSeq(out...)
	seq.KeepFirstBytes(e.config.MaxLiteralLen)
	return prefixes{lits: seq.literals, ok: true}
}

// repeat handles x* (star) and x+. Every non-empty word of the repetition
// starts with a non-empty word of x, so x's non-empty literals survive as
// incomplete prefixes. The empty word stays complete where it is a word.
func repeat(x prefixes, star bool) prefixes {
	if !x.ok {
		return prefixes{}
	}
	out := make([]Literal, 0, len(x.lits)+1)
	hasEmpty := star
	for _, lit := range x.lits {
		if len(lit.Bytes) == 0 {
			hasEmpty = hasEmpty || lit.Complete
			if !lit.Complete {
				out = append(out, lit)
			}
			continue
		}
		out = append(out, Literal{Bytes: lit.Bytes, Complete: false})
	}
	if hasEmpty {
		out = append(out, Literal{Bytes: []byte{}, Complete: true})
	}
	return prefixes{lits: out, ok: true}
}

func incomplete(lits []Literal) []Literal {
	out := make([]Literal, len(lits))
	for i, lit := range lits {
		out[i] = Literal{Bytes: lit.Bytes, Complete: false}
	}
	return out
}
