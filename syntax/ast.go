// Package syntax parses regular expression patterns into an arena-allocated
// abstract syntax tree.
//
// The supported language is deliberately small: literal bytes, '.', '*', '+',
// '|', grouping with '(' ')' and '\' escapes. Every other byte is a literal.
//
// Nodes are stored in a flat slice and addressed by NodeID. Children are always
// allocated before their parent, so iterating the arena in index order visits
// every subtree before the node that owns it. Automaton builders rely on this
// to process a tree of any depth without recursion.
package syntax

import (
	"fmt"
	"strings"
)

// Op identifies the kind of an AST node.
type Op uint8

const (
	// OpEmpty matches the empty string.
	OpEmpty Op = iota

	// OpLiteral matches exactly one occurrence of Node.Byte.
	OpLiteral

	// OpWildcard matches any single byte.
	OpWildcard

	// OpConcat matches Left followed by Right.
	OpConcat

	// OpUnion matches Left or Right.
	OpUnion

	// OpStar matches zero or more repetitions of Left.
	OpStar

	// OpPlus matches one or more repetitions of Left.
	OpPlus

	// OpGroup is an explicit parenthesization of Left. It has no effect on
	// matching beyond precedence.
	OpGroup
)

// String returns a human-readable name for the op.
func (op Op) String() string {
	switch op {
	case OpEmpty:
		return "Empty"
	case OpLiteral:
		return "Literal"
	case OpWildcard:
		return "Wildcard"
	case OpConcat:
		return "Concat"
	case OpUnion:
		return "Union"
	case OpStar:
		return "Star"
	case OpPlus:
		return "Plus"
	case OpGroup:
		return "Group"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// IsLeaf reports whether nodes of this op consume exactly one input byte.
func (op Op) IsLeaf() bool {
	return op == OpLiteral || op == OpWildcard
}

// NodeID addresses a node inside an AST arena.
type NodeID uint32

// InvalidNode is the zero-child marker.
const InvalidNode NodeID = 0xFFFFFFFF

// Node is a single AST node. Unary ops (Star, Plus, Group) store their operand
// in Left and leave Right as InvalidNode.
type Node struct {
	Op    Op
	Byte  byte
	Left  NodeID
	Right NodeID

	// Pos is the byte offset in the pattern where this node starts.
	Pos int
}

// AST is a parsed pattern. It is immutable once returned by Parse and may be
// shared between automaton builders.
type AST struct {
	pattern   string
	nodes     []Node
	root      NodeID
	positions int
}

// Pattern returns the source pattern.
func (a *AST) Pattern() string {
	return a.pattern
}

// Root returns the ID of the root node.
func (a *AST) Root() NodeID {
	return a.root
}

// Len returns the number of nodes in the arena.
func (a *AST) Len() int {
	return len(a.nodes)
}

// Node returns the node with the given ID. It panics if id is out of range.
func (a *AST) Node(id NodeID) Node {
	return a.nodes[id]
}

// Positions returns the number of Literal and Wildcard leaves, i.e. the
// number of symbol occurrences in the pattern.
func (a *AST) Positions() int {
	return a.positions
}

// Children returns the child IDs of node id (zero, one or two of them).
func (a *AST) Children(id NodeID) []NodeID {
	n := a.nodes[id]
	switch n.Op {
	case OpConcat, OpUnion:
		return []NodeID{n.Left, n.Right}
	case OpStar, OpPlus, OpGroup:
		return []NodeID{n.Left}
	default:
		return nil
	}
}

// String returns a pattern equivalent to the AST. Metacharacters inside
// literals are escaped, so Parse(a.String()) yields the same tree shape.
func (a *AST) String() string {
	if len(a.nodes) == 0 {
		return ""
	}
	// Children precede parents, so a single forward pass builds every
	// subtree's text before it is needed. Each child is consumed once.
	text := make([]string, len(a.nodes))
	for i, n := range a.nodes {
		switch n.Op {
		case OpEmpty:
			text[i] = ""
		case OpLiteral:
			text[i] = quoteByte(n.Byte)
		case OpWildcard:
			text[i] = "."
		case OpConcat:
			text[i] = text[n.Left] + text[n.Right]
			text[n.Left], text[n.Right] = "", ""
		case OpUnion:
			text[i] = text[n.Left] + "|" + text[n.Right]
			text[n.Left], text[n.Right] = "", ""
		case OpStar:
			text[i] = text[n.Left] + "*"
			text[n.Left] = ""
		case OpPlus:
			text[i] = text[n.Left] + "+"
			text[n.Left] = ""
		case OpGroup:
			text[i] = "(" + text[n.Left] + ")"
			text[n.Left] = ""
		}
	}
	return text[a.root]
}

// Dump returns an indented tree listing, one node per line. Intended for
// debugging and test failure messages.
func (a *AST) Dump() string {
	var sb strings.Builder
	type item struct {
		id    NodeID
		depth int
	}
	stack := []item{{a.root, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := a.nodes[it.id]
		sb.WriteString(strings.Repeat("  ", it.depth))
		sb.WriteString(n.Op.String())
		if n.Op == OpLiteral {
			fmt.Fprintf(&sb, " %q", n.Byte)
		}
		sb.WriteByte('\n')
		kids := a.Children(it.id)
		for k := len(kids) - 1; k >= 0; k-- {
			stack = append(stack, item{kids[k], it.depth + 1})
		}
	}
	return sb.String()
}

// metachars lists the bytes that have a meaning in the pattern language.
const metachars = `\.*+|()`

// IsMeta reports whether b is a pattern metacharacter.
func IsMeta(b byte) bool {
	return strings.IndexByte(metachars, b) >= 0
}

func quoteByte(b byte) string {
	if IsMeta(b) {
		return `\` + string(b)
	}
	return string(b)
}
