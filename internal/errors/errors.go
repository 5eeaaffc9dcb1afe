// Package errors provides sentinel errors and error types for fischer960.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidArrangement indicates a back rank that is not a legal Chess960 start.
	ErrInvalidArrangement = errors.New("invalid arrangement")

	// ErrInvalidID indicates an identifier outside [0, 959].
	ErrInvalidID = errors.New("invalid position ID")

	// ErrInvalidFEN indicates a malformed or non-starting FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEntropy indicates the random source could not produce a value.
	ErrEntropy = errors.New("entropy source failure")
)

// ArrangementError describes why a back rank was rejected. It unwraps to
// ErrInvalidArrangement unless Err says otherwise.
type ArrangementError struct {
	Input  string // The arrangement as given, if known
	Reason string // Which rule was violated
	Err    error  // The underlying error (defaults to ErrInvalidArrangement)
}

// Error returns a formatted error message including the input and reason.
func (e *ArrangementError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	msg := e.unwrapped().Error()
	if len(parts) == 0 {
		return msg
	}
	return fmt.Sprintf("%s: %s", msg, strings.Join(parts, ": "))
}

// Unwrap returns the underlying error.
func (e *ArrangementError) Unwrap() error {
	return e.unwrapped()
}

func (e *ArrangementError) unwrapped() error {
	if e.Err == nil {
		return ErrInvalidArrangement
	}
	return e.Err
}

// InputError wraps errors with the location of the offending input, such as
// a line of a batch file or a command-line argument.
type InputError struct {
	Err    error  // The underlying error
	Source string // Input name ("stdin", "args", a file name)
	Line   int    // 1-based line or argument number (0 if not applicable)
	Input  string // The raw input text
}

// Error returns a formatted error message including all available context.
func (e *InputError) Error() string {
	var parts []string

	if e.Source != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.Source, e.Line))
		} else {
			parts = append(parts, e.Source)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("input %q", e.Input))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the InputError wrapper.
func (e *InputError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
