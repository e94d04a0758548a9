package desc

import (
	"errors"
	"fmt"
)

// Insertion errors. They are wrapped in a FieldError that carries the
// rejected querier back to the caller.
var (
	ErrNoName         = errors.New("querier could not provide a name")
	ErrNoVersion      = errors.New("querier could not provide a version")
	ErrInvalidVersion = errors.New("querier provided an invalid version")
)

// FieldError is returned when a database refuses a querier. Ownership of
// the querier goes back to the caller through the Querier field.
type FieldError[Q any] struct {
	Querier Q
	Err     error
}

func (e *FieldError[Q]) Error() string {
	return e.Err.Error()
}

func (e *FieldError[Q]) Unwrap() error {
	return e.Err
}

// SyntaxError reports a malformed record.
type SyntaxError struct {
	Line   int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("desc line %d: %s", e.Line, e.Reason)
}
