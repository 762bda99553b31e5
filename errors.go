package stickercube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the stickercube package.
var (
	// Geometry errors
	ErrInvalidGeometry = errors.New("stickercube: position is not on a face")
	ErrInvalidAxis     = errors.New("stickercube: not a principal rotation axis")

	// Parsing errors
	ErrInvalidNotation = errors.New("stickercube: invalid move notation")
	ErrInvalidMove     = errors.New("stickercube: unknown move axis")

	// State errors
	ErrInvalidCube  = errors.New("stickercube: cube invariant violated")
	ErrInvalidState = errors.New("stickercube: invalid persisted state")
)

// ParseError reports a notation token that could not be parsed.
type ParseError struct {
	Token    string // The offending token
	Position int    // Zero-based token index within the sequence
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("stickercube: invalid move notation %q at token %d", e.Token, e.Position)
}

// Unwrap lets errors.Is match ErrInvalidNotation.
func (e *ParseError) Unwrap() error {
	return ErrInvalidNotation
}
