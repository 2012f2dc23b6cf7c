package meta

import (
	"iter"

	"github.com/coregx/regexfa/dfa/lazy"
)

// IsMatch reports whether the whole of haystack is in the pattern's
// language. It is an acceptance test, not a substring search: "a" matches
// "a" but not "ba".
//
// Example:
//
//	engine, _ := meta.Compile("a*b+")
//	engine.IsMatch([]byte("aaabbb")) // true
//	engine.IsMatch([]byte("aaa"))    // false
func (e *Engine) IsMatch(haystack []byte) bool {
	if e.strategy == UseLiteral {
		return len(haystack) == e.prefilter.LiteralLen() && e.prefilter.Find(haystack, 0) == 0
	}

	state := e.getSearchState()
	defer e.putSearchState(state)

	if state.dfa != nil {
		ok, err := state.dfa.IsMatch(haystack)
		if err == nil {
			state.stats.DFASearches++
			return ok
		}
		if lazy.IsFallback(err) {
			state.stats.DFAFallbacks++
		}
	}
	state.stats.NFASearches++
	return state.sim.Accepts(haystack)
}

// Find returns the leftmost-longest match in haystack, or nil if there is
// none.
//
// Example:
//
//	engine, _ := meta.Compile("a+")
//	m := engine.Find([]byte("baaac"))
//	println(m.Start(), m.End()) // 1 4
func (e *Engine) Find(haystack []byte) *Match {
	return e.FindAt(haystack, 0)
}

// FindAt returns the leftmost-longest match starting at or after offset at.
// Offsets outside [0, len(haystack)] yield nil. An empty match at
// len(haystack) is possible for nullable patterns.
func (e *Engine) FindAt(haystack []byte, at int) *Match {
	if at < 0 || at > len(haystack) {
		return nil
	}
	state := e.getSearchState()
	defer e.putSearchState(state)
	return e.findAt(state, haystack, at)
}

// FindAll returns every match in haystack, in order.
//
// Matches are collected by repeated FindAt. After a non-empty match the
// search resumes at its end; after an empty match it resumes one byte
// further, so the loop always advances. Start positions run up to and
// including len(haystack).
//
// Example:
//
//	engine, _ := meta.Compile("a")
//	for _, m := range engine.FindAll([]byte("banana")) {
//	    println(m.Start()) // 1, 3, 5
//	}
func (e *Engine) FindAll(haystack []byte) []Match {
	var matches []Match
	for m := range e.FindIter(haystack) {
		matches = append(matches, m)
	}
	return matches
}

// FindIter returns an iterator over the matches FindAll would return.
// Matches are produced lazily; breaking out of the loop stops the search.
// The iterator can be ranged over more than once.
func (e *Engine) FindIter(haystack []byte) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		state := e.getSearchState()
		defer e.putSearchState(state)

		for at := 0; at <= len(haystack); {
			m := e.findAt(state, haystack, at)
			if m == nil {
				return
			}
			if !yield(*m) {
				return
			}
			if m.IsEmpty() {
				at = m.end + 1
			} else {
				at = m.end
			}
		}
	}
}

// findAt implements FindAt with the caller's search state.
func (e *Engine) findAt(state *searchState, haystack []byte, at int) *Match {
	if e.strategy == UseLiteral {
		pos := e.prefilter.Find(haystack, at)
		if pos < 0 {
			return nil
		}
		state.stats.PrefilterCandidates++
		return NewMatch(pos, pos+e.prefilter.LiteralLen(), haystack)
	}

	// With a prefilter every match starts with one of its literals, so only
	// candidate positions need the automaton. Patterns with a prefilter are
	// never nullable.
	if t := state.tracker; t != nil && t.IsActive() {
		for {
			pos := t.Find(haystack, at)
			if pos < 0 {
				if t.IsActive() {
					return nil
				}
				break
			}
			state.stats.PrefilterCandidates++
			if end, ok := e.longestAt(state, haystack, pos); ok {
				t.ConfirmMatch()
				return NewMatch(pos, end, haystack)
			}
			at = pos + 1
		}
		// Retired: positions before at had no candidate and cannot match.
		state.stats.PrefilterAbandoned++
	}

	for i := at; i <= len(haystack); i++ {
		if end, ok := e.longestAt(state, haystack, i); ok {
			return NewMatch(i, end, haystack)
		}
	}
	return nil
}

// longestAt returns the end of the longest match starting exactly at at.
func (e *Engine) longestAt(state *searchState, haystack []byte, at int) (int, bool) {
	if state.dfa != nil && !state.dfaFailed {
		end, ok, err := state.dfa.LongestPrefix(haystack, at)
		if err == nil {
			state.stats.DFASearches++
			return end, ok
		}
		if lazy.IsFallback(err) {
			state.stats.DFAFallbacks++
		}
		state.dfaFailed = true
	}
	state.stats.NFASearches++
	return state.sim.LongestPrefix(haystack, at)
}
