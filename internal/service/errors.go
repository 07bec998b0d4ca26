package service

import "errors"

// ErrNotFound is returned when no document matches the given identifier.
var ErrNotFound = errors.New("document not found")

// ValidationError marks a request body that fails the presence rules.
// Its message is safe to return to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
