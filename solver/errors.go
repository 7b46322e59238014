package solver

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds returned at the boundary with the caller. All of them are
// recoverable: the solver never aborts the process on malformed input.
var (
	// ErrEmptyInput is returned when a DIMACS stream contains no problem at all.
	ErrEmptyInput = errors.New("empty input: no problem declared")
	// ErrOutOfRangeLiteral is returned when a literal references a variable
	// outside the declared 1..n range.
	ErrOutOfRangeLiteral = errors.New("literal outside the declared variable range")
	// ErrTooManySolutions is returned when enumerating the models of a
	// formula that leaves too many variables unconstrained.
	ErrTooManySolutions = errors.New("too many models to enumerate")
)

// A ParseError describes malformed DIMACS input: bad token, unterminated
// clause, clause count disagreeing with the header, and so on.
// It wraps the underlying cause, so errors.Is can still detect
// ErrOutOfRangeLiteral or ErrEmptyInput.
type ParseError struct {
	Line int // 1-based line in the input, 0 if unknown
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
