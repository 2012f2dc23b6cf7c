package nfa

import (
	"slices"

	"github.com/coregx/regexfa/internal/conv"
	"github.com/coregx/regexfa/internal/sparse"
)

// StateSet is a set of NFA states. Membership, insertion and clearing are
// O(1); iteration follows insertion order.
type StateSet struct {
	set *sparse.SparseSet
}

// NewStateSet returns an empty set sized for the states of n.
func NewStateSet(n *NFA) *StateSet {
	return &StateSet{set: sparse.NewSparseSet(conv.IntToUint32(n.States()))}
}

// Add inserts id and reports whether it was not already present.
func (s *StateSet) Add(id StateID) bool {
	return s.set.Insert(uint32(id))
}

// Contains reports whether id is in the set.
func (s *StateSet) Contains(id StateID) bool {
	return s.set.Contains(uint32(id))
}

// Len returns the number of states in the set.
func (s *StateSet) Len() int {
	return s.set.Len()
}

// IsEmpty reports whether the set has no states.
func (s *StateSet) IsEmpty() bool {
	return s.set.IsEmpty()
}

// Clear removes every state.
func (s *StateSet) Clear() {
	s.set.Clear()
}

// States returns the members in increasing ID order.
func (s *StateSet) States() []StateID {
	out := make([]StateID, 0, s.set.Len())
	for _, v := range s.set.Values() {
		out = append(out, StateID(v))
	}
	slices.Sort(out)
	return out
}

// Clone returns an independent copy of the set.
func (s *StateSet) Clone() *StateSet {
	return &StateSet{set: s.set.Clone()}
}

// ContainsAccepting reports whether any state of s is accepting in n.
func (n *NFA) ContainsAccepting(s *StateSet) bool {
	for _, v := range s.set.Values() {
		if n.accepting[v] {
			return true
		}
	}
	return false
}

// EpsilonClosure returns the states reachable from set through epsilon edges
// alone, set included. The argument is not modified. On a Glushkov NFA the
// result equals the input.
func EpsilonClosure(n *NFA, set *StateSet) *StateSet {
	out := set.Clone()
	NewSimulator(n).EpsilonClosure(out)
	return out
}

// Step returns the epsilon closure of the states reached from set by
// consuming b. Wildcard transitions match every byte.
func Step(n *NFA, set *StateSet, b byte) *StateSet {
	next := NewStateSet(n)
	NewSimulator(n).Step(set, b, next)
	return next
}

// Simulator runs an NFA over input by tracking the full set of active states
// at once. Work is bounded by len(text) times the automaton size; no input
// can make it backtrack.
//
// A Simulator owns its scratch sets and must not be used by more than one
// goroutine at a time. It is cheap to Reset for another NFA, so callers
// usually keep them in a sync.Pool.
type Simulator struct {
	nfa   *NFA
	cur   *StateSet
	next  *StateSet
	stack []StateID
}

// NewSimulator creates a simulator for n.
func NewSimulator(n *NFA) *Simulator {
	sets := sparse.NewSparseSets(conv.IntToUint32(n.States()))
	return &Simulator{
		nfa:   n,
		cur:   &StateSet{set: sets.Set1},
		next:  &StateSet{set: sets.Set2},
		stack: make([]StateID, 0, 16),
	}
}

// NFA returns the automaton the simulator runs.
func (s *Simulator) NFA() *NFA {
	return s.nfa
}

// Reset points the simulator at n, reusing its scratch storage.
func (s *Simulator) Reset(n *NFA) {
	s.nfa = n
	size := conv.IntToUint32(n.States())
	s.cur.set.Resize(size)
	s.next.set.Resize(size)
	s.cur.Clear()
	s.next.Clear()
	s.stack = s.stack[:0]
}

// EpsilonClosure extends set in place with every state reachable through
// epsilon edges.
func (s *Simulator) EpsilonClosure(set *StateSet) {
	if !s.nfa.hasEpsilons {
		return
	}
	stack := s.stack[:0]
	for _, v := range set.set.Values() {
		stack = append(stack, StateID(v))
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range s.nfa.states[id].epsilons {
			if set.Add(e) {
				stack = append(stack, e)
			}
		}
	}
	s.stack = stack
}

// Step clears next and fills it with the closure of the states reached from
// cur on byte b.
func (s *Simulator) Step(cur *StateSet, b byte, next *StateSet) {
	next.Clear()
	for _, v := range cur.set.Values() {
		for _, t := range s.nfa.states[v].transitions {
			if t.Matches(b) {
				next.Add(t.Next)
			}
		}
	}
	s.EpsilonClosure(next)
}

func (s *Simulator) begin() {
	s.cur.Clear()
	s.cur.Add(s.nfa.start)
	s.EpsilonClosure(s.cur)
}

// Accepts reports whether the whole of text is in the language.
func (s *Simulator) Accepts(text []byte) bool {
	s.begin()
	for _, b := range text {
		s.Step(s.cur, b, s.next)
		s.cur, s.next = s.next, s.cur
		if s.cur.IsEmpty() {
			return false
		}
	}
	return s.nfa.ContainsAccepting(s.cur)
}

// LongestPrefix runs the automaton from offset at and returns the end of the
// longest accepting prefix of text[at:]. It stops as soon as no state is
// active, so a failed attempt costs only as many bytes as it can match.
func (s *Simulator) LongestPrefix(text []byte, at int) (end int, ok bool) {
	s.begin()
	end = -1
	if s.nfa.ContainsAccepting(s.cur) {
		end = at
	}
	for i := at; i < len(text); i++ {
		s.Step(s.cur, text[i], s.next)
		s.cur, s.next = s.next, s.cur
		if s.cur.IsEmpty() {
			break
		}
		if s.nfa.ContainsAccepting(s.cur) {
			end = i + 1
		}
	}
	return end, end >= 0
}
