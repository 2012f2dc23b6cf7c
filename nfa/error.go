// Package nfa provides the nondeterministic automata used by the regex engine:
// a shared NFA representation, a low-level Builder, two constructions from a
// syntax.AST (Thompson and Glushkov) and a state-set Simulator that executes
// either kind.
package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors
var (
	// ErrInvalidState indicates an invalid NFA state ID was encountered
	ErrInvalidState = errors.New("invalid NFA state")

	// ErrNoStart indicates Build was called before SetStart
	ErrNoStart = errors.New("start state not set")

	// ErrCompilation indicates a general NFA compilation failure
	ErrCompilation = errors.New("NFA compilation failed")
)

// CompileError wraps compilation errors with additional context
type CompileError struct {
	Pattern      string
	Construction Construction
	Err          error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("%v NFA compilation failed for pattern %q: %v", e.Construction, e.Pattern, e.Err)
	}
	return fmt.Sprintf("%v NFA compilation failed: %v", e.Construction, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError represents an error during NFA construction via the Builder API
type BuildError struct {
	Message string
	StateID StateID
	Err     error // sentinel cause, may be nil
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}

// Unwrap returns the sentinel cause
func (e *BuildError) Unwrap() error {
	return e.Err
}
