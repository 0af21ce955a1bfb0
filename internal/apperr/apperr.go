// Package apperr defines the error types shared across yogi
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an operation targets a record that does not
// exist.
var ErrNotFound = errors.New("not found")

// Error is a message template with an optional cause.
type Error struct {
	Cause   error
	Message string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Fmt returns a copy of the error with its message formatted using the
// provided arguments.
func (e *Error) Fmt(a ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, a...),
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ValidationError holds the field-level problems found in an input.
type ValidationError struct {
	Messages []string
}

func (v *ValidationError) Error() string {
	return "validation failed: " + strings.Join(v.Messages, "; ")
}

// Validator accumulates validation messages.
type Validator struct {
	messages []string
}

// Check records msg if ok is false.
func (v *Validator) Check(ok bool, msg string) {
	if !ok {
		v.messages = append(v.messages, msg)
	}
}

// Err returns a *ValidationError if any check failed, or nil.
func (v *Validator) Err() error {
	if len(v.messages) == 0 {
		return nil
	}

	return &ValidationError{Messages: v.messages}
}

// Messages extracts the validation messages from err. A nil error yields
// nil and any other error yields its string form as the single message.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Messages
	}

	return []string{err.Error()}
}

// NotFound wraps ErrNotFound with the kind and id of the missing record.
func NotFound(kind, id string) error {
	return fmt.Errorf("%s %q %w", kind, id, ErrNotFound)
}
