// Package lazy implements a lazy DFA: subset construction performed on
// demand while searching.
//
// A DFA state stands for a set of NFA states. Instead of building the full
// subset automaton up front, which can be exponential, states and transitions
// are computed the first time a search needs them and kept in a bounded
// Cache. Repeated searches over similar input then run at one table lookup
// per byte.
//
// When the cache fills up too often within one search, or a single subset
// grows past Config.DeterminizationLimit, the search returns an error for
// which IsFallback reports true and the caller runs the NFA simulator.
//
// Example usage:
//
//	n, _ := nfa.Compile("(a|b)*abb", nfa.Glushkov)
//	d, _ := lazy.Compile(n)
//	ok, err := d.IsMatch([]byte("babaabb"))
package lazy

import (
	"github.com/coregx/regexfa/nfa"
)

// DFA performs on-demand determinization of an NFA.
//
// The NFA can be shared, but a DFA owns mutable scratch space and its cache:
// it must not be used by more than one goroutine at a time.
type DFA struct {
	nfa    *nfa.NFA
	cache  *Cache
	config Config

	// Transitions are stored per byte class; reps[c] is a byte of class c
	// used to compute that class's successor.
	classes     *nfa.ByteClasses
	reps        []byte
	alphabetLen int

	sim       *nfa.Simulator
	cur, next *nfa.StateSet
}

// Compile builds a lazy DFA for n with DefaultConfig.
func Compile(n *nfa.NFA) (*DFA, error) {
	return New(n, DefaultConfig())
}

// New builds a lazy DFA for n. Only the start state is determinized here.
func New(n *nfa.NFA, config Config) (*DFA, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	classes := n.ByteClasses()
	d := &DFA{
		nfa:         n,
		cache:       NewCache(config.MaxStates),
		config:      config,
		classes:     classes,
		reps:        classes.Representatives(),
		alphabetLen: classes.AlphabetLen(),
		sim:         nfa.NewSimulator(n),
		cur:         nfa.NewStateSet(n),
		next:        nfa.NewStateSet(n),
	}
	if err := d.initStart(); err != nil {
		return nil, err
	}
	return d, nil
}

// initStart inserts the start state into an empty cache, where it gets
// StartState as its ID.
func (d *DFA) initStart() error {
	d.cur.Clear()
	d.cur.Add(d.nfa.Start())
	d.sim.EpsilonClosure(d.cur)
	if d.cur.Len() > d.config.DeterminizationLimit {
		return ErrStateLimitExceeded
	}
	sorted := d.cur.States()
	s := NewState(InvalidState, sorted, d.nfa.ContainsAccepting(d.cur), d.alphabetLen)
	_, err := d.cache.Insert(ComputeStateKey(sorted), s)
	return err
}

func (d *DFA) start() *State {
	return d.cache.State(StartState)
}

// step returns the successor of current on b, determinizing it if needed.
// A nil state with a nil error is the dead state.
func (d *DFA) step(current *State, b byte) (*State, error) {
	class := d.classes.Get(b)
	if id, ok := current.Transition(class); ok {
		if id == DeadState {
			return nil, nil
		}
		return d.cache.State(id), nil
	}

	d.cur.Clear()
	for _, id := range current.NFAStates() {
		d.cur.Add(id)
	}
	d.sim.Step(d.cur, d.reps[class], d.next)
	if d.next.IsEmpty() {
		current.SetTransition(class, DeadState)
		return nil, nil
	}
	if d.next.Len() > d.config.DeterminizationLimit {
		return nil, ErrStateLimitExceeded
	}

	sorted := d.next.States()
	key := ComputeStateKey(sorted)
	if s, ok := d.cache.Get(key); ok {
		current.SetTransition(class, s.ID())
		return s, nil
	}

	s := NewState(InvalidState, sorted, d.nfa.ContainsAccepting(d.next), d.alphabetLen)
	id, err := d.cache.Insert(key, s)
	if err == nil {
		current.SetTransition(class, id)
		return d.cache.State(id), nil
	}

	// Full: start over with an empty cache unless this search already did
	// so too often. current is stale after the clear and is dropped.
	if d.cache.ClearCount() >= d.config.MaxCacheClears {
		return nil, err
	}
	d.cache.ClearKeepMemory()
	if err := d.initStart(); err != nil {
		return nil, err
	}
	id, err = d.cache.Insert(key, s)
	if err != nil {
		return nil, err
	}
	return d.cache.State(id), nil
}

// IsMatch reports whether the whole of text is accepted.
func (d *DFA) IsMatch(text []byte) (bool, error) {
	d.cache.ResetClearCount()
	s := d.start()
	for _, b := range text {
		next, err := d.step(s, b)
		if err != nil {
			return false, err
		}
		if next == nil {
			return false, nil
		}
		s = next
	}
	return s.IsMatch(), nil
}

// LongestPrefix returns the end of the longest accepting prefix of text[at:],
// scanning until the dead state or the end of text.
func (d *DFA) LongestPrefix(text []byte, at int) (end int, ok bool, err error) {
	d.cache.ResetClearCount()
	s := d.start()
	end = -1
	if s.IsMatch() {
		end = at
	}
	for i := at; i < len(text); i++ {
		next, err := d.step(s, text[i])
		if err != nil {
			return -1, false, err
		}
		if next == nil {
			break
		}
		s = next
		if s.IsMatch() {
			end = i + 1
		}
	}
	return end, end >= 0, nil
}

// NFA returns the automaton being determinized.
func (d *DFA) NFA() *nfa.NFA {
	return d.nfa
}

// CacheStats returns (size, capacity, hits, misses, hitRate) of the cache.
func (d *DFA) CacheStats() (size int, capacity uint32, hits, misses uint64, hitRate float64) {
	size = d.cache.Size()
	capacity = d.config.MaxStates
	hits, misses, hitRate = d.cache.Stats()
	return
}

// ResetCache drops every determinized state except a fresh start state.
func (d *DFA) ResetCache() {
	d.cache.Clear()
	// Cannot fail: the start state fit when the DFA was built.
	_ = d.initStart()
}

// ByteClasses returns the byte equivalence classes transitions are keyed by.
func (d *DFA) ByteClasses() *nfa.ByteClasses {
	return d.classes
}

// AlphabetLen returns the number of byte classes.
func (d *DFA) AlphabetLen() int {
	return d.alphabetLen
}
