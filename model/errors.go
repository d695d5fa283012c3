package model

import "fmt"

// InvalidParameterError reports an out-of-domain input. Field names the
// offending parameter so callers (and the dashboard) can point at the
// right control.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

// errInvalidParameter creates an error for an out-of-domain parameter value
func errInvalidParameter(field, reason string) error {
	return InvalidParameterError{Field: field, Reason: reason}
}
