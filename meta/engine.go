package meta

import (
	"errors"
	"sync/atomic"

	"github.com/coregx/regexfa/dfa/lazy"
	"github.com/coregx/regexfa/literal"
	"github.com/coregx/regexfa/nfa"
	"github.com/coregx/regexfa/prefilter"
	"github.com/coregx/regexfa/syntax"
)

// Engine is a compiled pattern together with its execution strategy.
//
// An Engine is immutable after compilation apart from its statistics
// counters and the pool of per-search state, so it is safe for concurrent
// use.
//
// Example:
//
//	engine, err := meta.Compile("a(b|c)*d")
//	if err != nil {
//	    return err
//	}
//	if m := engine.Find([]byte("xxabcbd")); m != nil {
//	    println(m.Start(), m.End()) // 2 7
//	}
type Engine struct {
	pattern   string
	nfa       *nfa.NFA
	prefilter prefilter.Prefilter
	strategy  Strategy
	config    Config

	statePool *searchStatePool
	stats     counters
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// NFASearches counts Simulator runs, one per start position tried.
	NFASearches uint64

	// DFASearches counts lazy DFA runs that completed.
	DFASearches uint64

	// DFAFallbacks counts DFA runs that gave up (cache full too often or
	// determinization limit) and were redone by the Simulator.
	DFAFallbacks uint64

	// PrefilterCandidates counts candidate positions reported by the
	// prefilter.
	PrefilterCandidates uint64

	// PrefilterAbandoned counts searches in which the prefilter was retired
	// for reporting too many false candidates.
	PrefilterAbandoned uint64
}

type counters struct {
	nfaSearches         atomic.Uint64
	dfaSearches         atomic.Uint64
	dfaFallbacks        atomic.Uint64
	prefilterCandidates atomic.Uint64
	prefilterAbandoned  atomic.Uint64
}

func (c *counters) add(s *Stats) {
	if s.NFASearches > 0 {
		c.nfaSearches.Add(s.NFASearches)
	}
	if s.DFASearches > 0 {
		c.dfaSearches.Add(s.DFASearches)
	}
	if s.DFAFallbacks > 0 {
		c.dfaFallbacks.Add(s.DFAFallbacks)
	}
	if s.PrefilterCandidates > 0 {
		c.prefilterCandidates.Add(s.PrefilterCandidates)
	}
	if s.PrefilterAbandoned > 0 {
		c.prefilterAbandoned.Add(s.PrefilterAbandoned)
	}
}

// Compile compiles a pattern with DefaultConfig.
//
// Steps:
//  1. Parse pattern into an AST
//  2. Build the NFA with the configured construction
//  3. Extract prefix literals and build a prefilter
//  4. Probe the lazy DFA start state
//  5. Select strategy
//
// Example:
//
//	engine, err := meta.Compile("hello.*world")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.Construction = nfa.Glushkov
//	engine, err := meta.CompileWithConfig("(a|b|c)*", config)
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ast, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	n, err := nfa.NewCompiler(config.Construction).Compile(ast)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	var pf prefilter.Prefilter
	if config.EnablePrefilter {
		extractor := literal.New(literal.ExtractorConfig{
			MaxLiterals:   config.MaxLiterals,
			MaxLiteralLen: config.MaxLiteralLen,
		})
		pf = prefilter.NewBuilder(extractor.ExtractPrefixes(ast)).Build()
	}

	dfaConfig := lazy.DefaultConfig().
		WithMaxStates(config.MaxDFAStates).
		WithMaxCacheClears(config.MaxCacheClears).
		WithDeterminizationLimit(config.DeterminizationLimit)

	// The probe DFA seeds the pool, so building it is not wasted.
	var probe *lazy.DFA
	if config.EnableDFA {
		probe, err = lazy.New(n, dfaConfig)
		if err != nil && !lazy.IsFallback(err) {
			return nil, &CompileError{Pattern: pattern, Err: err}
		}
	}

	strategy := selectStrategy(pf, probe != nil, config)
	e := &Engine{
		pattern:   pattern,
		nfa:       n,
		prefilter: pf,
		strategy:  strategy,
		config:    config,
		statePool: newSearchStatePool(n, pf, strategy == UseDFA, dfaConfig),
	}
	if strategy == UseDFA {
		e.statePool.put(newSearchState(n, probe, pf))
	}
	return e, nil
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Strategy returns the execution strategy selected at compile time.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// NFA returns the compiled automaton.
func (e *Engine) NFA() *nfa.NFA {
	return e.nfa
}

// Prefilter returns the prefilter, or nil if the pattern has none.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// Stats returns a snapshot of the execution statistics.
//
// Example:
//
//	stats := engine.Stats()
//	println("NFA searches:", stats.NFASearches)
//	println("DFA searches:", stats.DFASearches)
func (e *Engine) Stats() Stats {
	return Stats{
		NFASearches:         e.stats.nfaSearches.Load(),
		DFASearches:         e.stats.dfaSearches.Load(),
		DFAFallbacks:        e.stats.dfaFallbacks.Load(),
		PrefilterCandidates: e.stats.prefilterCandidates.Load(),
		PrefilterAbandoned:  e.stats.prefilterAbandoned.Load(),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	e.stats.nfaSearches.Store(0)
	e.stats.dfaSearches.Store(0)
	e.stats.dfaFallbacks.Store(0)
	e.stats.prefilterCandidates.Store(0)
	e.stats.prefilterAbandoned.Store(0)
}

func (e *Engine) getSearchState() *searchState {
	return e.statePool.get()
}

func (e *Engine) putSearchState(s *searchState) {
	e.stats.add(&s.stats)
	e.statePool.put(s)
}

// CompileError represents a pattern compilation error.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface. Syntax errors are returned as is,
// since they already carry the "error parsing regexp" prefix.
func (e *CompileError) Error() string {
	var syntaxErr *syntax.Error
	if errors.As(e.Err, &syntaxErr) {
		return e.Err.Error()
	}
	return "regexp: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
