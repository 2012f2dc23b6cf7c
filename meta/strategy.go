package meta

import (
	"github.com/coregx/regexfa/prefilter"
)

// Strategy represents the execution strategy for matching.
//
// The engine chooses between:
//   - UseNFA: Simulator only
//   - UseDFA: lazy DFA with Simulator fallback
//   - UseLiteral: the prefilter alone, when its hits are the matches
//
// A prefilter, when one exists, narrows the start positions tried by UseNFA
// and UseDFA.
type Strategy int

const (
	// UseNFA runs only the state-set Simulator.
	// Selected when EnableDFA is false, or when even the DFA start state
	// exceeds the determinization limit.
	UseNFA Strategy = iota

	// UseDFA runs the lazy DFA and falls back to the Simulator when the
	// DFA cache fills up too often or a subset grows past its limit.
	UseDFA

	// UseLiteral answers every query with the prefilter. Selected when the
	// pattern's language is a set of equal-length literals, e.g. "hello"
	// or "foo|bar".
	UseLiteral
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseNFA:
		return "UseNFA"
	case UseDFA:
		return "UseDFA"
	case UseLiteral:
		return "UseLiteral"
	default:
		return "Unknown"
	}
}

// selectStrategy picks the strategy for a compiled pattern. dfaOK reports
// whether a lazy DFA could be built for its NFA.
func selectStrategy(pf prefilter.Prefilter, dfaOK bool, config Config) Strategy {
	if pf != nil && pf.IsComplete() {
		return UseLiteral
	}
	if config.EnableDFA && dfaOK {
		return UseDFA
	}
	return UseNFA
}
