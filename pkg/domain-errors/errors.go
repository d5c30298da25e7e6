// Package domainerrors defines the typed error taxonomy shared by all
// modules. Services return these instead of raw errors so callers (and the
// HTTP layer) can branch on the code without string matching.
//
// Conventions:
//   - Stores return sentinel errors (pkg/platform/sentinel) for infrastructure
//     facts; services translate them here.
//   - Handlers never construct codes other than BadRequest/Internal; domain
//     codes come out of services.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error.
type Code string

const (
	// CodeInvalidInput marks malformed or out-of-range input, rejected
	// before any state is touched.
	CodeInvalidInput Code = "invalid_input"
	// CodeBadRequest marks a request the transport layer could not decode.
	CodeBadRequest Code = "bad_request"
	// CodeNotFound marks a reference to an entity that does not exist.
	CodeNotFound Code = "not_found"
	// CodeConflict marks a uniqueness violation.
	CodeConflict Code = "conflict"
	// CodeInvalidState marks an operation that is not valid in the entity's
	// current state (closed request, ineligible donor, incompatible types).
	CodeInvalidState Code = "invalid_state"
	// CodeInvariantViolation marks a broken aggregate invariant. Constructors
	// return it; services usually translate it before it crosses the façade.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeInternal marks an unexpected failure. Its message is never shown
	// to clients.
	CodeInternal Code = "internal_error"
)

// Error is a domain error with a stable code and a human-readable message.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a domain error with the given code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause. The cause stays
// reachable through errors.Is / errors.As.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.Err
		if err == nil {
			return false
		}
	}
	return false
}

// Is is a readability alias for HasCode.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the code of the outermost domain error, or CodeInternal if
// err is not a domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf returns the message of the outermost domain error, or an empty
// string if err is not a domain error.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
