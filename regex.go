// Package regexfa compiles regular expressions into finite automata and runs
// them over byte strings.
//
// The pattern language is deliberately small: literals, '.', '|', '*', '+'
// and grouping with parentheses. A backslash matches the byte after it
// literally. Every other byte, including '?', '[' and '^', is a literal.
// Matching works on bytes and reports byte offsets.
//
// Two NFA constructions are available and always accept the same language:
//   - Thompson (default): fragment composition with epsilon transitions
//   - Glushkov: the position automaton, free of epsilon transitions
//
// Basic usage:
//
//	re, err := regexfa.Compile(`(a|b)*abb`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	re.IsMatch("babaabb")            // true: the whole text is accepted
//	m := re.Find("xx babaabb yy")    // leftmost-longest substring match
//	fmt.Println(m.Start(), m.End())  // 3 10
//
// Matching semantics:
//   - IsMatch tests the whole text, from offset 0 to the end.
//   - Find returns the leftmost match and, among matches starting there,
//     the longest.
//   - FindAll repeats Find, resuming at the end of each match, or one byte
//     later after an empty match.
//
// A compiled Regex is safe for concurrent use.
package regexfa

import (
	"iter"

	"github.com/coregx/regexfa/meta"
	"github.com/coregx/regexfa/nfa"
	"github.com/coregx/regexfa/syntax"
)

// Construction selects the NFA construction algorithm.
type Construction = nfa.Construction

// NFA constructions.
const (
	Thompson = nfa.Thompson
	Glushkov = nfa.Glushkov
)

// Config tunes compilation and execution. See meta.Config for the fields.
type Config = meta.Config

// Match is a match span. Start and End are byte offsets into the searched
// text; End is exclusive.
type Match = meta.Match

// Stats holds execution counters. See meta.Stats.
type Stats = meta.Stats

// SyntaxError describes a malformed pattern. It unwraps to one of
// ErrUnbalancedGroup, ErrDanglingQuantifier or ErrEmptyAlternative.
type SyntaxError = syntax.Error

// Syntax error kinds, for use with errors.Is.
var (
	ErrUnbalancedGroup    = syntax.ErrUnbalancedGroup
	ErrDanglingQuantifier = syntax.ErrDanglingQuantifier
	ErrEmptyAlternative   = syntax.ErrEmptyAlternative
)

// Regex represents a compiled regular expression.
//
// Example:
//
//	re := regexfa.MustCompile(`hello`)
//	if re.Find("say hello") != nil {
//	    println("found!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a pattern with the Thompson construction.
//
// A malformed pattern yields a *SyntaxError wrapped in a *meta.CompileError;
// use errors.As or errors.Is to inspect it. On error the returned Regex is
// always nil.
//
// Example:
//
//	re, err := regexfa.Compile(`a*b+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileGlushkov compiles a pattern with the Glushkov construction.
func CompileGlushkov(pattern string) (*Regex, error) {
	config := DefaultConfig()
	config.Construction = Glushkov
	return CompileWithConfig(pattern, config)
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// Example:
//
//	var word = regexfa.MustCompile(`(a|b|c)+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Example:
//
//	config := regexfa.DefaultConfig()
//	config.Construction = regexfa.Glushkov
//	config.MaxDFAStates = 100000
//	re, err := regexfa.CompileWithConfig("(a|b|c)*", config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// QuoteMeta returns a pattern that matches s literally by escaping the
// metacharacters `\ . * + | ( )`.
//
// Example:
//
//	re := regexfa.MustCompile(regexfa.QuoteMeta("1+1"))
//	re.IsMatch("1+1") // true
func QuoteMeta(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if syntax.IsMeta(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if syntax.IsMeta(s[i]) {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

// IsMatch reports whether the whole of text is accepted by the pattern.
//
// Example:
//
//	re := regexfa.MustCompile(`a*b+`)
//	re.IsMatch("aaabbb") // true
//	re.IsMatch("xaabb")  // false: the leading x is not accepted
func (r *Regex) IsMatch(text string) bool {
	return r.engine.IsMatch([]byte(text))
}

// Match is IsMatch for a byte slice.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// Find returns the leftmost-longest match in text, or nil if there is none.
//
// Example:
//
//	re := regexfa.MustCompile(`a+`)
//	m := re.Find("baaac")
//	// m.Start() == 1, m.End() == 4
func (r *Regex) Find(text string) *Match {
	return r.engine.Find([]byte(text))
}

// FindString returns the text of the leftmost-longest match. It returns ""
// both when there is no match and when the match is empty; use Find to tell
// them apart.
func (r *Regex) FindString(text string) string {
	m := r.engine.Find([]byte(text))
	if m == nil {
		return ""
	}
	return m.String()
}

// FindAll returns all successive matches in text. It returns nil if there
// are none.
//
// Example:
//
//	re := regexfa.MustCompile(`a`)
//	for _, m := range re.FindAll("banana") {
//	    println(m.Start()) // 1, 3, 5
//	}
func (r *Regex) FindAll(text string) []Match {
	return r.engine.FindAll([]byte(text))
}

// FindAllString returns the text of every match in text.
func (r *Regex) FindAllString(text string) []string {
	var out []string
	for m := range r.engine.FindIter([]byte(text)) {
		out = append(out, m.String())
	}
	return out
}

// FindIter returns an iterator over the matches FindAll would return,
// computed lazily.
//
// Example:
//
//	for m := range re.FindIter(text) {
//	    if m.Len() > 10 {
//	        break
//	    }
//	}
func (r *Regex) FindIter(text string) iter.Seq[Match] {
	return r.engine.FindIter([]byte(text))
}

// Count returns the number of matches FindAll would return.
func (r *Regex) Count(text string) int {
	n := 0
	for range r.engine.FindIter([]byte(text)) {
		n++
	}
	return n
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string {
	return r.pattern
}

// Construction returns the NFA construction the pattern was compiled with.
func (r *Regex) Construction() Construction {
	return r.engine.NFA().Construction()
}

// Stats returns execution statistics accumulated since compilation or the
// last ResetStats.
func (r *Regex) Stats() Stats {
	return r.engine.Stats()
}

// ResetStats resets execution statistics to zero.
func (r *Regex) ResetStats() {
	r.engine.ResetStats()
}
