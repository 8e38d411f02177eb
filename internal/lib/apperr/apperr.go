// Package apperr defines the error taxonomy returned by services. The HTTP
// layer maps each Kind to a status code in one place.
package apperr

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindPasswordMismatch
	KindNotFound
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindPasswordMismatch:
		return "password_mismatch"
	case KindNotFound:
		return "not_found"
	case KindEmpty:
		return "empty"
	default:
		return "internal"
	}
}

type Error struct {
	Kind    Kind
	Message string
	// Fields holds per-field messages for validation failures that are
	// reported in full.
	Fields map[string][]string
	// Public marks an internal failure whose message is shown to clients.
	// Other internal messages are only logged.
	Public bool
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func ValidationFields(msg string, fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

func Unauthenticated(msg string, err error) *Error {
	return &Error{Kind: KindUnauthenticated, Message: msg, Err: err}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func PasswordMismatch(msg string) *Error {
	return &Error{Kind: KindPasswordMismatch, Message: msg}
}

func NotFound(msg string, err error) *Error {
	return &Error{Kind: KindNotFound, Message: msg, Err: err}
}

func Empty(msg string) *Error {
	return &Error{Kind: KindEmpty, Message: msg}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// InternalPublic is an internal failure answered with msg itself.
func InternalPublic(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Public: true, Err: err}
}

// As extracts an *Error from err. Anything that is not an *Error is reported
// as an internal failure.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal("internal server error", err)
}

func KindOf(err error) Kind {
	return As(err).Kind
}
