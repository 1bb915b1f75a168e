package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput marks input that is not well-formed XML or does not
	// decompose into a head/body pair.
	ErrMalformedInput = errors.New("malformed OPML input")
	// ErrMissingText marks an outline element without a non-empty text attribute.
	ErrMissingText = errors.New("outline is missing its text attribute")
)

// ConvertError is the base error type with context.
type ConvertError struct {
	Phase      string // "config", "parse", "validate", "encode", "write", "scan"
	File       string
	LineNumber int
	Message    string
	Suggestion string
	Cause      error
}

func (e *ConvertError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.File != "" {
		s += fmt.Sprintf(" %s", e.File)
	}
	if e.LineNumber > 0 {
		s += fmt.Sprintf(":%d", e.LineNumber)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	if e.Suggestion != "" {
		s += fmt.Sprintf(" (hint: %s)", e.Suggestion)
	}
	return s
}

func (e *ConvertError) Unwrap() error {
	return e.Cause
}

// NewError creates a new ConvertError.
func NewError(phase, file string, line int, message string, cause error) *ConvertError {
	return &ConvertError{
		Phase:      phase,
		File:       file,
		LineNumber: line,
		Message:    message,
		Cause:      cause,
	}
}

// NewErrorWithSuggestion creates a ConvertError carrying a hint for the user.
func NewErrorWithSuggestion(phase, file string, line int, message, suggestion string, cause error) *ConvertError {
	err := NewError(phase, file, line, message, cause)
	err.Suggestion = suggestion
	return err
}
