package dehnadi

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAssignments is returned when no line has the "name = name" shape.
	ErrNoAssignments = errors.New("no assignments found")

	// ErrMisplacedDeclaration is returned when a declaration follows the
	// first assignment.
	ErrMisplacedDeclaration = errors.New("misplaced declaration")
)

// ParseError reports a line that matches neither statement shape.
type ParseError struct {
	Line  string // Offending line, verbatim
	Index int    // Zero-based position in the input
	Err   error  // Underlying cause, e.g. an out-of-range literal
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: invalid instruction %q: %v", e.Index+1, e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: invalid instruction %q", e.Index+1, e.Line)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
