package version

import (
	"errors"
	"fmt"
)

// ErrUnknownScheme is returned by SchemeByName for unregistered names.
var ErrUnknownScheme = errors.New("unknown version scheme")

// ParseError reports a version string that a scheme rejected.
type ParseError struct {
	Input  string
	Scheme string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s version %q: %s: %v", e.Scheme, e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s version %q: %s", e.Scheme, e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
