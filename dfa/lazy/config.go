package lazy

// Config configures the behavior of the Lazy DFA engine.
//
// Larger caches determinize fewer states twice but hold more memory. The DFA
// never produces a wrong answer when a limit is hit; it reports an error and
// the caller runs the NFA simulator instead.
type Config struct {
	// MaxStates is the maximum number of DFA states held in the cache.
	//
	// Default: 10,000 states
	MaxStates uint32

	// MaxCacheClears is how many times a single search may clear a full
	// cache and keep going before giving up with ErrCacheFull.
	//
	// Default: 3
	MaxCacheClears int

	// DeterminizationLimit is the maximum number of NFA states in a single
	// DFA state. A larger subset aborts the search with
	// ErrStateLimitExceeded.
	//
	// Default: 1,000 NFA states
	DeterminizationLimit int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxStates:            10_000,
		MaxCacheClears:       3,
		DeterminizationLimit: 1_000,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxStates < 2 {
		// The start state and at least one successor must fit.
		return &DFAError{Kind: InvalidConfig, Message: "MaxStates must be >= 2"}
	}
	if c.MaxCacheClears < 0 {
		return &DFAError{Kind: InvalidConfig, Message: "MaxCacheClears must be >= 0"}
	}
	if c.DeterminizationLimit <= 0 {
		return &DFAError{Kind: InvalidConfig, Message: "DeterminizationLimit must be > 0"}
	}
	return nil
}

// WithMaxStates returns a new config with the specified max states
func (c Config) WithMaxStates(maxStates uint32) Config {
	c.MaxStates = maxStates
	return c
}

// WithMaxCacheClears returns a new config with the specified clear budget
func (c Config) WithMaxCacheClears(n int) Config {
	c.MaxCacheClears = n
	return c
}

// WithDeterminizationLimit returns a new config with the specified limit
func (c Config) WithDeterminizationLimit(limit int) Config {
	c.DeterminizationLimit = limit
	return c
}
