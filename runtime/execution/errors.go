package execution

import "strings"

// MultiError aggregates the failures of multiple nodes into a single error
// value while preserving every original error.
type MultiError struct {
	Errors []error
}

// Error implements error.
func (e *MultiError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// Unwrap exposes the aggregated errors to errors.Is and errors.As.
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// NewMultiError combines the supplied errors; nil and single-error inputs
// collapse to nil and the error itself so that callers never aggregate
// needlessly. Nested aggregates are flattened so every original error stays a
// single hop away.
func NewMultiError(errs ...error) error {
	flat := make([]error, 0, len(errs))
	for _, err := range errs {
		switch actual := err.(type) {
		case nil:
		case *MultiError:
			flat = append(flat, actual.Errors...)
		default:
			flat = append(flat, err)
		}
	}
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	}
	return &MultiError{Errors: flat}
}
