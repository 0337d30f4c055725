package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport layer.
type Kind string

const (
	KindValidation     Kind = "VALIDATION"
	KindConflict       Kind = "CONFLICT"
	KindAuthentication Kind = "AUTHENTICATION"
	KindAuthorization  Kind = "AUTHORIZATION"
	KindNotFound       Kind = "NOT_FOUND"
	KindTransient      Kind = "TRANSIENT"
	KindInternal       Kind = "INTERNAL"
)

// Error is an application error carrying a kind, a stable code and an optional cause.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]string
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

// Is matches sentinel errors by code, so a wrapped copy of a sentinel
// still satisfies errors.Is against the original.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Kind == t.Kind
}

// Wrap returns a copy of e with cause attached.
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.Err = cause
	return &cp
}

// WithDetails returns a copy of e with field-level details attached.
func (e *Error) WithDetails(details map[string]string) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return New(KindValidation, code, message)
}

func Conflict(code, message string) *Error {
	return New(KindConflict, code, message)
}

func Authentication(code, message string) *Error {
	return New(KindAuthentication, code, message)
}

func Authorization(code, message string) *Error {
	return New(KindAuthorization, code, message)
}

func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

// Transient wraps a store failure. Callers may retry.
func Transient(err error) *Error {
	return &Error{Kind: KindTransient, Code: "STORE_UNAVAILABLE", Message: "store operation failed", Err: err}
}

// KindOf reports the kind of err, KindInternal when err is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}
