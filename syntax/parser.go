package syntax

// Parse parses pattern into an AST.
//
// Grammar, lowest precedence first:
//
//	Union   := Concat ('|' Concat)*
//	Concat  := Postfix+
//	Postfix := Atom ('*' | '+')?
//	Atom    := Literal | '.' | '(' Union ')' | '\' any
//
// The empty pattern and the empty group "()" parse to OpEmpty. Parsing is
// iterative: open groups are kept on an explicit frame stack, so arbitrarily
// deep nesting costs heap, not goroutine stack.
//
// On failure the returned error is a *Error and the AST is nil.
func Parse(pattern string) (*AST, error) {
	p := &parser{
		pattern: pattern,
		nodes:   make([]Node, 0, len(pattern)*2+1),
	}
	return p.parse()
}

// frame holds the state of one Union being parsed: the top level or the
// inside of a group.
type frame struct {
	open int // offset of '(' or -1 for the top level

	// alts are the completed alternatives seen so far.
	alts []NodeID

	// concat is the folded concatenation of the current alternative, not
	// including pending.
	concat NodeID

	// pending is the most recent postfix expression. It stays separate from
	// concat so a following quantifier can still wrap it.
	pending    NodeID
	quantified bool

	// pipe is the offset of the most recent '|', or -1.
	pipe int
}

func newFrame(open int) frame {
	return frame{open: open, concat: InvalidNode, pending: InvalidNode, pipe: -1}
}

type parser struct {
	pattern   string
	nodes     []Node
	positions int
	stack     []frame
}

func (p *parser) parse() (*AST, error) {
	p.stack = append(p.stack[:0], newFrame(-1))

	for i := 0; i < len(p.pattern); i++ {
		c := p.pattern[i]
		switch c {
		case '(':
			p.stack = append(p.stack, newFrame(i))

		case ')':
			if len(p.stack) == 1 {
				return nil, p.errorf(ErrUnbalancedGroup, i)
			}
			f := p.top()
			body, err := p.finishUnion(f)
			if err != nil {
				return nil, err
			}
			p.stack = p.stack[:len(p.stack)-1]
			group := p.add(Node{Op: OpGroup, Left: body, Right: InvalidNode, Pos: f.open})
			p.pushAtom(group)

		case '|':
			f := p.top()
			alt := p.foldAlternative(f)
			if alt == InvalidNode {
				return nil, p.errorf(ErrEmptyAlternative, i)
			}
			f.alts = append(f.alts, alt)
			f.concat, f.pending, f.quantified = InvalidNode, InvalidNode, false
			f.pipe = i

		case '*', '+':
			f := p.top()
			if f.pending == InvalidNode || f.quantified {
				return nil, p.errorf(ErrDanglingQuantifier, i)
			}
			op := OpStar
			if c == '+' {
				op = OpPlus
			}
			f.pending = p.add(Node{Op: op, Left: f.pending, Right: InvalidNode, Pos: p.nodes[f.pending].Pos})
			f.quantified = true

		case '.':
			p.pushAtom(p.addLeaf(Node{Op: OpWildcard, Left: InvalidNode, Right: InvalidNode, Pos: i}))

		case '\\':
			pos := i
			if i+1 < len(p.pattern) {
				i++
				c = p.pattern[i]
			}
			p.pushAtom(p.addLeaf(Node{Op: OpLiteral, Byte: c, Left: InvalidNode, Right: InvalidNode, Pos: pos}))

		default:
			p.pushAtom(p.addLeaf(Node{Op: OpLiteral, Byte: c, Left: InvalidNode, Right: InvalidNode, Pos: i}))
		}
	}

	if len(p.stack) > 1 {
		return nil, p.errorf(ErrUnbalancedGroup, p.top().open)
	}
	root, err := p.finishUnion(p.top())
	if err != nil {
		return nil, err
	}
	return &AST{
		pattern:   p.pattern,
		nodes:     p.nodes,
		root:      root,
		positions: p.positions,
	}, nil
}

func (p *parser) top() *frame {
	return &p.stack[len(p.stack)-1]
}

func (p *parser) add(n Node) NodeID {
	id := NodeID(len(p.nodes))
	p.nodes = append(p.nodes, n)
	return id
}

func (p *parser) addLeaf(n Node) NodeID {
	p.positions++
	return p.add(n)
}

// pushAtom makes id the pending postfix of the current frame, folding the
// previous pending expression into the concatenation.
func (p *parser) pushAtom(id NodeID) {
	f := p.top()
	p.foldPending(f)
	f.pending = id
	f.quantified = false
}

func (p *parser) foldPending(f *frame) {
	if f.pending == InvalidNode {
		return
	}
	if f.concat == InvalidNode {
		f.concat = f.pending
	} else {
		f.concat = p.add(Node{Op: OpConcat, Left: f.concat, Right: f.pending, Pos: p.nodes[f.concat].Pos})
	}
	f.pending = InvalidNode
}

// foldAlternative returns the current alternative of f, or InvalidNode if it
// has no atoms.
func (p *parser) foldAlternative(f *frame) NodeID {
	p.foldPending(f)
	return f.concat
}

// finishUnion closes frame f and returns its Union (or single alternative).
// A frame with no atoms at all is OpEmpty; a missing operand after '|' is an
// error.
func (p *parser) finishUnion(f *frame) (NodeID, error) {
	alt := p.foldAlternative(f)
	if alt == InvalidNode {
		if len(f.alts) > 0 {
			return InvalidNode, p.errorf(ErrEmptyAlternative, f.pipe)
		}
		pos := f.open + 1
		if f.open < 0 {
			pos = 0
		}
		return p.add(Node{Op: OpEmpty, Left: InvalidNode, Right: InvalidNode, Pos: pos}), nil
	}
	if len(f.alts) == 0 {
		return alt, nil
	}
	u := f.alts[0]
	for _, next := range f.alts[1:] {
		u = p.add(Node{Op: OpUnion, Left: u, Right: next, Pos: p.nodes[u].Pos})
	}
	return p.add(Node{Op: OpUnion, Left: u, Right: alt, Pos: p.nodes[u].Pos}), nil
}

func (p *parser) errorf(code error, pos int) *Error {
	return &Error{Code: code, Pos: pos, Pattern: p.pattern}
}
