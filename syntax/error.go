package syntax

import (
	"errors"
	"fmt"
)

// Parse error kinds. A *Error unwraps to exactly one of these, so callers can
// test with errors.Is(err, syntax.ErrUnbalancedGroup).
var (
	// ErrUnbalancedGroup indicates a ')' without a matching '(' or a '(' that
	// is never closed.
	ErrUnbalancedGroup = errors.New("unbalanced group")

	// ErrDanglingQuantifier indicates a '*' or '+' with no atom to apply to,
	// including a quantifier that directly follows another quantifier.
	ErrDanglingQuantifier = errors.New("dangling quantifier")

	// ErrEmptyAlternative indicates a '|' with a missing operand on either side.
	ErrEmptyAlternative = errors.New("empty alternative")
)

// Error describes a malformed pattern.
type Error struct {
	// Code is one of ErrUnbalancedGroup, ErrDanglingQuantifier or
	// ErrEmptyAlternative.
	Code error

	// Pos is the byte offset of the offending character in Pattern.
	Pos int

	// Pattern is the full pattern being parsed.
	Pattern string
}

// Error implements the error interface. The format follows the standard
// library's "error parsing regexp: ..." convention.
func (e *Error) Error() string {
	return fmt.Sprintf("error parsing regexp: %v at offset %d: `%s`", e.Code, e.Pos, e.Pattern)
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Code
}
