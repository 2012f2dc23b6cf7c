package nfa

import (
	"fmt"
	"strings"
)

// StateID identifies an NFA state. It is an index into the NFA's state slice.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// Construction names the algorithm that produced an NFA.
type Construction uint8

const (
	// Thompson builds per-operator fragments joined by epsilon transitions.
	Thompson Construction = iota

	// Glushkov builds the position automaton: one state per symbol
	// occurrence plus a start state, with no epsilon transitions.
	Glushkov
)

// String returns the construction name.
func (c Construction) String() string {
	switch c {
	case Thompson:
		return "Thompson"
	case Glushkov:
		return "Glushkov"
	default:
		return fmt.Sprintf("Construction(%d)", uint8(c))
	}
}

// Transition is a byte-consuming edge: any byte in [Lo, Hi] moves to Next.
// A wildcard is the full range [0x00, 0xFF].
type Transition struct {
	Lo   byte    // inclusive lower bound
	Hi   byte    // inclusive upper bound
	Next StateID // target state
}

// Matches reports whether b is within the transition's range.
func (t Transition) Matches(b byte) bool {
	return t.Lo <= b && b <= t.Hi
}

// IsAny reports whether the transition matches every byte.
func (t Transition) IsAny() bool {
	return t.Lo == 0x00 && t.Hi == 0xFF
}

// State is a single NFA state with its outgoing edges.
type State struct {
	id          StateID
	transitions []Transition
	epsilons    []StateID

	// position is the 1-based symbol position for Glushkov states, 0 for
	// the Glushkov start state and every Thompson state.
	position int
}

// ID returns the state's identifier
func (s *State) ID() StateID {
	return s.id
}

// Transitions returns the byte-consuming edges of the state.
// The slice must not be modified.
func (s *State) Transitions() []Transition {
	return s.transitions
}

// Epsilons returns the epsilon targets of the state.
// The slice must not be modified.
func (s *State) Epsilons() []StateID {
	return s.epsilons
}

// Position returns the pattern position this state stands for in a Glushkov
// NFA, or 0.
func (s *State) Position() int {
	return s.position
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "State(%d", s.id)
	if s.position > 0 {
		fmt.Fprintf(&sb, " pos=%d", s.position)
	}
	for _, t := range s.transitions {
		switch {
		case t.IsAny():
			fmt.Fprintf(&sb, " any->%d", t.Next)
		case t.Lo == t.Hi:
			fmt.Fprintf(&sb, " %q->%d", t.Lo, t.Next)
		default:
			fmt.Fprintf(&sb, " [%q-%q]->%d", t.Lo, t.Hi, t.Next)
		}
	}
	for _, e := range s.epsilons {
		fmt.Fprintf(&sb, " eps->%d", e)
	}
	sb.WriteString(")")
	return sb.String()
}

// NFA is a nondeterministic finite automaton over bytes.
//
// States are addressed by StateID and stored in a flat slice; all edges are
// adjacency lists of IDs. An NFA never changes after Builder.Build returns it,
// so it can be shared freely between goroutines.
type NFA struct {
	states    []State
	start     StateID
	accepting []bool
	accepts   []StateID

	construction Construction
	hasEpsilons  bool
	pattern      string

	// byteClasses groups bytes that no transition distinguishes.
	byteClasses ByteClasses
}

// Start returns the start state
func (n *NFA) Start() StateID {
	return n.start
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.states)
}

// IsAccepting reports whether id is an accepting state.
func (n *NFA) IsAccepting(id StateID) bool {
	return int(id) < len(n.accepting) && n.accepting[id]
}

// Accepting returns the accepting states in increasing ID order.
func (n *NFA) Accepting() []StateID {
	out := make([]StateID, len(n.accepts))
	copy(out, n.accepts)
	return out
}

// Construction returns the algorithm that built this NFA.
func (n *NFA) Construction() Construction {
	return n.construction
}

// HasEpsilons reports whether any state has an epsilon edge. Always false for
// Glushkov NFAs.
func (n *NFA) HasEpsilons() bool {
	return n.hasEpsilons
}

// Pattern returns the pattern the NFA was compiled from, if known.
func (n *NFA) Pattern() string {
	return n.pattern
}

// ByteClasses returns the byte equivalence classes for this NFA.
// Used by the lazy DFA to size its transition tables.
func (n *NFA) ByteClasses() *ByteClasses {
	return &n.byteClasses
}

// TransitionCount returns the number of byte and epsilon edges.
func (n *NFA) TransitionCount() (bytes, epsilons int) {
	for i := range n.states {
		bytes += len(n.states[i].transitions)
		epsilons += len(n.states[i].epsilons)
	}
	return bytes, epsilons
}

// Iter returns an iterator over all states in the NFA
func (n *NFA) Iter() *StateIter {
	return &StateIter{nfa: n}
}

// StateIter is an iterator over NFA states
type StateIter struct {
	nfa *NFA
	pos int
}

// Next returns the next state in the iteration.
// Returns nil when iteration is complete.
func (it *StateIter) Next() *State {
	if it.pos >= len(it.nfa.states) {
		return nil
	}
	s := &it.nfa.states[it.pos]
	it.pos++
	return s
}

// HasNext returns true if there are more states to iterate
func (it *StateIter) HasNext() bool {
	return it.pos < len(it.nfa.states)
}

// String returns a human-readable representation of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{construction: %v, states: %d, start: %d, accepting: %v, epsilons: %v}",
		n.construction, len(n.states), n.start, n.accepts, n.hasEpsilons)
}

// Dump lists every state on its own line, marking the start and accepting
// states. Intended for debugging.
func (n *NFA) Dump() string {
	var sb strings.Builder
	for i := range n.states {
		s := &n.states[i]
		mark := "  "
		switch {
		case s.id == n.start && n.accepting[s.id]:
			mark = ">*"
		case s.id == n.start:
			mark = "> "
		case n.accepting[s.id]:
			mark = " *"
		}
		sb.WriteString(mark)
		sb.WriteString(s.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
