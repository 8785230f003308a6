package apperrors

import (
	"errors"
	"fmt"
)

// Failure kinds reported by the extraction services.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrTransport     = errors.New("transport failure")
	ErrParse         = errors.New("parse failure")
	ErrConfiguration = errors.New("configuration failure")
)

// ExtractionError records which stage of an LLM extraction attempt failed.
type ExtractionError struct {
	Kind    error
	Attempt int
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%v on attempt %d: %v", e.Kind, e.Attempt, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *ExtractionError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// InvalidInput builds an ErrInvalidInput with a message for the caller.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Kind returns a short label for logging.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	default:
		return "internal"
	}
}
