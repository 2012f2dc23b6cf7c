// Package meta implements the matcher: it compiles a pattern into an NFA,
// picks an execution strategy and answers IsMatch, Find and FindAll queries.
//
// The engine coordinates three components:
//   - Prefilter: literal-based candidate finding (optional)
//   - Lazy DFA: on-demand determinization of the NFA
//   - Simulator: state-set simulation, the fallback for everything
//
// All matching is byte oriented and uses leftmost-longest semantics: Find
// reports the match that starts first and, among those, the longest one.
package meta

import (
	"github.com/coregx/regexfa/nfa"
)

// Config controls engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnableDFA = false // Simulator only
//	engine, err := meta.CompileWithConfig("(a|b)*abb", config)
type Config struct {
	// Construction selects the NFA construction.
	// Default: nfa.Thompson
	Construction nfa.Construction

	// EnableDFA enables the lazy DFA. When false, only the Simulator runs.
	// Default: true
	EnableDFA bool

	// EnablePrefilter enables literal-based prefiltering.
	// Default: true
	EnablePrefilter bool

	// MaxDFAStates sets the maximum number of cached DFA states per search
	// state.
	// Default: 10000
	MaxDFAStates uint32

	// MaxCacheClears is how many times one search may flush a full DFA
	// cache and continue before falling back to the Simulator.
	// Default: 3
	MaxCacheClears int

	// DeterminizationLimit caps the number of NFA states per DFA state.
	// Default: 1000
	DeterminizationLimit int

	// MaxLiterals limits the size of the extracted prefix set.
	// Default: 64
	MaxLiterals int

	// MaxLiteralLen limits the length of each extracted prefix.
	// Default: 64
	MaxLiteralLen int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Construction:         nfa.Thompson,
		EnableDFA:            true,
		EnablePrefilter:      true,
		MaxDFAStates:         10000,
		MaxCacheClears:       3,
		DeterminizationLimit: 1000,
		MaxLiterals:          64,
		MaxLiteralLen:        64,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - Construction: nfa.Thompson or nfa.Glushkov
//   - MaxDFAStates: 2 to 1,000,000
//   - MaxCacheClears: 0 to 1,000
//   - DeterminizationLimit: 1 to 100,000
//   - MaxLiterals: 1 to 1,000
//   - MaxLiteralLen: 1 to 1,024
//
// DFA and prefilter limits are only checked when the component is enabled.
func (c Config) Validate() error {
	if c.Construction != nfa.Thompson && c.Construction != nfa.Glushkov {
		return &ConfigError{
			Field:   "Construction",
			Message: "must be Thompson or Glushkov",
		}
	}

	if c.EnableDFA {
		if c.MaxDFAStates < 2 || c.MaxDFAStates > 1_000_000 {
			return &ConfigError{
				Field:   "MaxDFAStates",
				Message: "must be between 2 and 1,000,000",
			}
		}
		if c.MaxCacheClears < 0 || c.MaxCacheClears > 1_000 {
			return &ConfigError{
				Field:   "MaxCacheClears",
				Message: "must be between 0 and 1,000",
			}
		}
		if c.DeterminizationLimit < 1 || c.DeterminizationLimit > 100_000 {
			return &ConfigError{
				Field:   "DeterminizationLimit",
				Message: "must be between 1 and 100,000",
			}
		}
	}

	if c.EnablePrefilter {
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
		if c.MaxLiteralLen < 1 || c.MaxLiteralLen > 1_024 {
			return &ConfigError{
				Field:   "MaxLiteralLen",
				Message: "must be between 1 and 1,024",
			}
		}
	}

	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regexp: invalid config: " + e.Field + ": " + e.Message
}
