package lazy

import "fmt"

// ErrCacheFull indicates that the DFA state cache filled up more often than
// Config.MaxCacheClears allows within one search. The search result is
// unknown; the caller should run the NFA simulator instead.
var ErrCacheFull = &DFAError{
	Kind:    CacheFull,
	Message: "DFA state cache is full",
}

// ErrStateLimitExceeded indicates that a DFA state would stand for more NFA
// states than Config.DeterminizationLimit.
var ErrStateLimitExceeded = &DFAError{
	Kind:    StateLimitExceeded,
	Message: "DFA state limit exceeded",
}

// ErrInvalidConfig indicates that the provided configuration is invalid.
var ErrInvalidConfig = &DFAError{
	Kind:    InvalidConfig,
	Message: "invalid DFA configuration",
}

// ErrorKind classifies DFA errors into categories
type ErrorKind uint8

const (
	// CacheFull indicates the state cache reached its size limit
	CacheFull ErrorKind = iota

	// StateLimitExceeded indicates a subset grew past the determinization limit
	StateLimitExceeded

	// InvalidConfig indicates configuration validation failed
	InvalidConfig
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case CacheFull:
		return "CacheFull"
	case StateLimitExceeded:
		return "StateLimitExceeded"
	case InvalidConfig:
		return "InvalidConfig"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// DFAError represents an error that occurred during DFA operations
type DFAError struct {
	Kind    ErrorKind
	Message string
	Cause   error // Optional underlying error
}

// Error implements the error interface
func (e *DFAError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *DFAError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *DFAError of the same kind, so
// errors.Is(err, ErrCacheFull) matches any cache-full error.
func (e *DFAError) Is(target error) bool {
	t, ok := target.(*DFAError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// IsFallback reports whether err means "the DFA gave up, use the NFA".
func IsFallback(err error) bool {
	de, ok := err.(*DFAError)
	return ok && (de.Kind == CacheFull || de.Kind == StateLimitExceeded)
}
