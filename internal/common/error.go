// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors, mapped one-to-one onto RPC status codes.
	ErrorInvalidArgument = errors.New("invalid argument")
	ErrorUnauthorized    = errors.New("unauthorized")
	ErrorInternal        = errors.New("internal error")

	// Token errors.
	ErrInvalidToken     = errors.New("invalid token")
	ErrMalformedSubject = errors.New("malformed token subject")

	// Infrastructure errors.
	ErrConfig  = errors.New("configuration error")
	ErrHashing = errors.New("hashing error")
)

// PublicError pairs one of the sentinel kinds above with a message that is
// safe to return to the caller verbatim. The optional Cause is kept for
// logging and errors.Is matching, never for display.
type PublicError struct {
	Kind    error
	Message string
	Cause   error
}

func (e *PublicError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PublicError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// NewPublicError builds a PublicError of the given kind.
func NewPublicError(kind error, message string) error {
	return &PublicError{Kind: kind, Message: message}
}

// InvalidArgument is shorthand for a validation failure with a user-facing message.
func InvalidArgument(message string) error {
	return NewPublicError(ErrorInvalidArgument, message)
}

// Unauthorized is shorthand for an authentication failure with a user-facing message.
func Unauthorized(message string) error {
	return NewPublicError(ErrorUnauthorized, message)
}

// PublicMessage extracts the client-safe message from err, if it carries one.
func PublicMessage(err error) (string, bool) {
	var pe *PublicError
	if errors.As(err, &pe) {
		return pe.Message, true
	}
	return "", false
}
