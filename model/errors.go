package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidVariable indicates a factor letter outside the alphabet.
	// Concrete failures are *InvalidVariableError values that match it via errors.Is.
	ErrInvalidVariable = errors.New("model: invalid variable name")

	// ErrUnparsedTerm indicates a non-blank term segment that yielded neither a
	// coefficient nor a factor (strict parsing only).
	ErrUnparsedTerm = errors.New("model: term has no coefficient and no factors")

	// ErrInvalidPower indicates a negative or unrepresentable power.
	ErrInvalidPower = errors.New("model: invalid power")

	// ErrInvalidCoefficient indicates a NaN or ±Inf coefficient.
	ErrInvalidCoefficient = errors.New("model: coefficient must be finite")

	// ErrInvalidVariableID indicates a negative variable id.
	ErrInvalidVariableID = errors.New("model: variable id must be non-negative")

	// ErrBadAlphabet indicates an empty alphabet, a repeated letter or a rune
	// that is not a letter.
	ErrBadAlphabet = errors.New("model: invalid alphabet")

	// ErrBadName indicates a variable name that is not a letter followed by marks.
	ErrBadName = errors.New("model: malformed variable name")

	// ErrOutOfRange indicates a term index outside the model.
	ErrOutOfRange = errors.New("model: index out of range")
)

// InvalidVariableError reports the offending letter.
type InvalidVariableError struct {
	Letter string
}

// Error implements error.
func (e *InvalidVariableError) Error() string {
	return fmt.Sprintf("model: invalid variable name used: '%s'", e.Letter)
}

// Is matches ErrInvalidVariable.
func (e *InvalidVariableError) Is(target error) bool {
	return target == ErrInvalidVariable
}

// ParseError reports a term segment that strict parsing could not read.
type ParseError struct {
	Segment string
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("model: cannot parse term %q: no coefficient and no factors", e.Segment)
}

// Is matches ErrUnparsedTerm.
func (e *ParseError) Is(target error) bool {
	return target == ErrUnparsedTerm
}
