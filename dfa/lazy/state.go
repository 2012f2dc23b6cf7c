package lazy

import (
	"encoding/binary"
	"fmt"

	"github.com/coregx/regexfa/nfa"
)

// StateID identifies a DFA state in the cache.
type StateID uint32

// Special state constants
const (
	// InvalidState marks a transition that has not been computed yet.
	InvalidState StateID = 0xFFFFFFFF

	// DeadState is the empty NFA state set. Once reached, no match can be
	// extended.
	DeadState StateID = 0xFFFFFFFE

	// StartState is always state ID 0.
	StartState StateID = 0
)

// State is a DFA state: a set of NFA states plus a lazily filled transition
// table indexed by byte class.
type State struct {
	id StateID

	// transitions[class] is the successor for bytes of that class, or
	// InvalidState while still unknown.
	transitions []StateID

	isMatch bool

	// nfaStates is sorted and never modified.
	nfaStates []nfa.StateID
}

// NewState creates a DFA state for the sorted NFA state set nfaStates with an
// empty transition table of alphabetLen classes.
func NewState(id StateID, nfaStates []nfa.StateID, isMatch bool, alphabetLen int) *State {
	transitions := make([]StateID, alphabetLen)
	for i := range transitions {
		transitions[i] = InvalidState
	}
	return &State{
		id:          id,
		transitions: transitions,
		isMatch:     isMatch,
		nfaStates:   append([]nfa.StateID(nil), nfaStates...),
	}
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// IsMatch returns true if this is an accepting state
func (s *State) IsMatch() bool {
	return s.isMatch
}

// Transition returns the successor for a byte class, or (InvalidState, false)
// if it has not been computed.
func (s *State) Transition(class byte) (StateID, bool) {
	next := s.transitions[class]
	return next, next != InvalidState
}

// SetTransition records the successor for a byte class.
func (s *State) SetTransition(class byte, next StateID) {
	s.transitions[class] = next
}

// NFAStates returns the NFA states represented by this DFA state.
// The slice must not be modified.
func (s *State) NFAStates() []nfa.StateID {
	return s.nfaStates
}

// TransitionCount returns the number of computed transitions.
func (s *State) TransitionCount() int {
	n := 0
	for _, t := range s.transitions {
		if t != InvalidState {
			n++
		}
	}
	return n
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	return fmt.Sprintf("DFAState(id=%d, isMatch=%v, transitions=%d, nfaStates=%v)",
		s.id, s.isMatch, s.TransitionCount(), s.nfaStates)
}

// StateKey identifies a DFA state by the exact NFA state set it stands for.
// Equal sets always produce equal keys, so the cache never merges distinct
// subsets.
type StateKey string

// ComputeStateKey encodes a sorted NFA state set as a cache key.
func ComputeStateKey(sorted []nfa.StateID) StateKey {
	buf := make([]byte, 4*len(sorted))
	for i, id := range sorted {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(id))
	}
	return StateKey(buf)
}
