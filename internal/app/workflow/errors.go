package workflow

import (
	"errors"
	"fmt"
)

// ErrNotFound marks operations against an unknown prescription id.
var ErrNotFound = errors.New("prescription not found")

// ValidationError reports missing or malformed input. Handlers map it to
// a 400 with the message intact.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Invalid(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConflictError reports duplicate unique fields (email, username).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflict(msg string) error { return &ConflictError{Msg: msg} }

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
