package meta

import (
	"sync"

	"github.com/coregx/regexfa/dfa/lazy"
	"github.com/coregx/regexfa/nfa"
	"github.com/coregx/regexfa/prefilter"
)

// searchState holds the mutable state of one search. Engines hand them out
// from a sync.Pool, so a compiled Engine can be used from many goroutines
// while each search works on scratch space of its own.
//
// A searchState is NOT thread-safe and must not be shared between
// goroutines.
type searchState struct {
	sim *nfa.Simulator

	// dfa is nil unless the strategy is UseDFA. Each pooled state owns its
	// DFA and therefore its cache of determinized states.
	dfa *lazy.DFA

	// dfaFailed is set when the DFA gave up during the current search; the
	// rest of the search uses the Simulator.
	dfaFailed bool

	// tracker watches prefilter efficiency across one search; nil without
	// a prefilter.
	tracker *prefilter.Tracker

	// stats is accumulated locally and flushed to the engine's counters
	// when the state is returned to the pool.
	stats Stats
}

func newSearchState(n *nfa.NFA, d *lazy.DFA, pf prefilter.Prefilter) *searchState {
	return &searchState{
		sim:     nfa.NewSimulator(n),
		dfa:     d,
		tracker: prefilter.NewTracker(pf),
	}
}

// reset prepares the state for a new search.
func (s *searchState) reset() {
	s.dfaFailed = false
	if s.tracker != nil {
		s.tracker.Reset()
	}
	s.stats = Stats{}
}

// searchStatePool manages searchState instances for an Engine.
type searchStatePool struct {
	pool sync.Pool

	nfa       *nfa.NFA
	prefilter prefilter.Prefilter
	useDFA    bool
	dfaConfig lazy.Config
}

func newSearchStatePool(n *nfa.NFA, pf prefilter.Prefilter, useDFA bool, dfaConfig lazy.Config) *searchStatePool {
	p := &searchStatePool{
		nfa:       n,
		prefilter: pf,
		useDFA:    useDFA,
		dfaConfig: dfaConfig,
	}
	p.pool = sync.Pool{
		New: func() any {
			return p.newState()
		},
	}
	return p
}

func (p *searchStatePool) newState() *searchState {
	var d *lazy.DFA
	if p.useDFA {
		// The configuration and start state were checked at compile time,
		// so this cannot fail.
		d, _ = lazy.New(p.nfa, p.dfaConfig)
	}
	return newSearchState(p.nfa, d, p.prefilter)
}

// get retrieves a reset searchState from the pool.
func (p *searchStatePool) get() *searchState {
	s := p.pool.Get().(*searchState)
	s.reset()
	return s
}

// put returns a searchState to the pool.
func (p *searchStatePool) put(s *searchState) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}
