package syntax

import (
	"errors"
	"fmt"
)

// Pattern syntax errors. Parse wraps these in a *ParseError; use errors.Is
// to test for a specific kind.
var (
	// ErrBadEscape indicates a trailing '\' with no following element.
	ErrBadEscape = errors.New("trailing backslash at end of pattern")

	// ErrUnmatchedClose indicates a ')' with no corresponding open group.
	ErrUnmatchedClose = errors.New("unexpected )")

	// ErrUnmatchedOpen indicates a '(' that was never closed.
	ErrUnmatchedOpen = errors.New("missing closing )")

	// ErrDanglingQuantifier indicates a '?', '*' or '+' with no preceding
	// element at the current nesting level, or applied to a node that
	// already carries a quantifier.
	ErrDanglingQuantifier = errors.New("quantifier has no unquantified element to repeat")
)

// ParseError reports where in the pattern compilation failed.
type ParseError struct {
	Pattern string // the pattern being parsed
	Pos     int    // rune index of the offending symbol
	Err     error  // one of the sentinel errors above
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax: parsing %q: %v at position %d", e.Pattern, e.Err, e.Pos)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
