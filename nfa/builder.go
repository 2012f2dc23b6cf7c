package nfa

import (
	"fmt"

	"github.com/coregx/regexfa/internal/conv"
)

// Builder constructs NFAs incrementally using a low-level API.
// Both the Thompson and Glushkov compilers drive a Builder; it can also be
// used directly to assemble automata by hand (tests do this).
type Builder struct {
	states       []State
	start        StateID
	accepting    []bool
	byteClassSet *ByteClassSet // Tracks byte class boundaries for the lazy DFA
	hasEpsilons  bool
}

// NewBuilder creates a new NFA builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new NFA builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states:       make([]State, 0, capacity),
		accepting:    make([]bool, 0, capacity),
		start:        InvalidState,
		byteClassSet: NewByteClassSet(),
	}
}

// AddState adds a state with no edges and returns its ID.
func (b *Builder) AddState() StateID {
	return b.addState(0)
}

// AddPosition adds a state that stands for pattern position pos (1-based).
// Used by the Glushkov construction.
func (b *Builder) AddPosition(pos int) StateID {
	return b.addState(pos)
}

func (b *Builder) addState(pos int) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id, position: pos})
	b.accepting = append(b.accepting, false)
	return id
}

// AddTransition adds an edge from -> to consuming any byte in [lo, hi].
func (b *Builder) AddTransition(from StateID, lo, hi byte, to StateID) error {
	if err := b.check(from); err != nil {
		return err
	}
	if err := b.check(to); err != nil {
		return err
	}
	if lo > hi {
		return &BuildError{
			Message: fmt.Sprintf("empty byte range [%d, %d]", lo, hi),
			StateID: from,
		}
	}
	b.byteClassSet.SetRange(lo, hi)
	s := &b.states[from]
	s.transitions = append(s.transitions, Transition{Lo: lo, Hi: hi, Next: to})
	return nil
}

// AddEpsilon adds an edge from -> to that consumes no input.
func (b *Builder) AddEpsilon(from, to StateID) error {
	if err := b.check(from); err != nil {
		return err
	}
	if err := b.check(to); err != nil {
		return err
	}
	s := &b.states[from]
	s.epsilons = append(s.epsilons, to)
	b.hasEpsilons = true
	return nil
}

// SetStart sets the starting state for the NFA
func (b *Builder) SetStart(start StateID) error {
	if err := b.check(start); err != nil {
		return err
	}
	b.start = start
	return nil
}

// SetAccepting marks id as an accepting state.
func (b *Builder) SetAccepting(id StateID) error {
	if err := b.check(id); err != nil {
		return err
	}
	b.accepting[id] = true
	return nil
}

// States returns the current number of states
func (b *Builder) States() int {
	return len(b.states)
}

func (b *Builder) check(id StateID) error {
	if id == InvalidState || int(id) >= len(b.states) {
		return &BuildError{
			Message: "state ID out of bounds",
			StateID: id,
			Err:     ErrInvalidState,
		}
	}
	return nil
}

// Validate checks that the NFA is well-formed: the start state is set and
// every edge targets an existing state.
func (b *Builder) Validate() error {
	if b.start == InvalidState {
		return &BuildError{Message: ErrNoStart.Error(), StateID: InvalidState, Err: ErrNoStart}
	}
	for i := range b.states {
		s := &b.states[i]
		for j, t := range s.transitions {
			if int(t.Next) >= len(b.states) {
				return &BuildError{
					Message: fmt.Sprintf("invalid transition %d target %d", j, t.Next),
					StateID: s.id,
					Err:     ErrInvalidState,
				}
			}
		}
		for _, e := range s.epsilons {
			if int(e) >= len(b.states) {
				return &BuildError{
					Message: fmt.Sprintf("invalid epsilon target %d", e),
					StateID: s.id,
					Err:     ErrInvalidState,
				}
			}
		}
	}
	return nil
}

// Build finalizes and returns the constructed NFA. The Builder must not be
// used afterwards.
func (b *Builder) Build(opts ...BuildOption) (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	n := &NFA{
		states:       b.states,
		start:        b.start,
		accepting:    b.accepting,
		hasEpsilons:  b.hasEpsilons,
		construction: Thompson,
		byteClasses:  b.byteClassSet.ByteClasses(),
	}
	for i, ok := range b.accepting {
		if ok {
			n.accepts = append(n.accepts, StateID(conv.IntToUint32(i)))
		}
	}

	for _, opt := range opts {
		opt(n)
	}

	b.states, b.accepting = nil, nil
	return n, nil
}

// BuildOption is a functional option for configuring the built NFA
type BuildOption func(*NFA)

// WithConstruction records which algorithm produced the NFA.
func WithConstruction(c Construction) BuildOption {
	return func(n *NFA) {
		n.construction = c
	}
}

// WithPattern records the source pattern for diagnostics.
func WithPattern(pattern string) BuildOption {
	return func(n *NFA) {
		n.pattern = pattern
	}
}
