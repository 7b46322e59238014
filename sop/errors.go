package sop

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrIncompatibleFunctions is returned when two functions combined by
	// XOR do not range over the same variables.
	ErrIncompatibleFunctions = errors.New("functions range over different variable spaces")
	// ErrEmptyInput is returned when a function was expected but the input
	// holds none.
	ErrEmptyInput = errors.New("empty input: no function found")
)

// A ParseError describes malformed SoP text: a bad token, a dangling
// negation, an empty product term, and so on.
type ParseError struct {
	Pos int // 1-based rune position in the line, 0 if unknown
	Err error
}

func (e *ParseError) Error() string {
	if e.Pos > 0 {
		return fmt.Sprintf("position %d: %v", e.Pos, e.Err)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
