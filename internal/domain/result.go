package domain

import (
	"errors"
	"fmt"
)

// FailureCode classifies an expected business failure so that transport
// adapters can map it without parsing reason strings.
type FailureCode string

const (
	CodeValidation       FailureCode = "validation"
	CodeNotFound         FailureCode = "not_found"
	CodePermissionDenied FailureCode = "permission_denied"
	CodeInfrastructure   FailureCode = "infrastructure"
)

// sentinel maps a failure code to its sentinel error for errors.Is checks.
func (c FailureCode) sentinel() error {
	switch c {
	case CodeValidation:
		return ErrValidation
	case CodeNotFound:
		return ErrNotFound
	case CodePermissionDenied:
		return ErrForbidden
	default:
		return ErrUnavailable
	}
}

// Result is a success-or-failure envelope used in place of raised errors for
// expected business outcomes. A success carries a value of type T; a failure
// carries a FailureCode and a short, display-ready reason.
//
// Accessing Value on a failure, or Reason/Code on a success, is a programming
// error and panics. Callers must check OK first.
type Result[T any] struct {
	ok     bool
	value  T
	code   FailureCode
	reason string
	cause  error
}

// Ok creates a successful Result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{ok: true, value: v}
}

// Fail creates a failed Result with the given code and display reason.
func Fail[T any](code FailureCode, reason string) Result[T] {
	return Result[T]{code: code, reason: reason}
}

// FailFrom creates a failed Result from an error, deriving the code from the
// error's sentinel chain. The original error is preserved and reachable via
// Err, so errors.As access to ValidationError details keeps working.
func FailFrom[T any](err error) Result[T] {
	code := CodeInfrastructure
	switch {
	case errors.Is(err, ErrValidation):
		code = CodeValidation
	case errors.Is(err, ErrNotFound):
		code = CodeNotFound
	case errors.Is(err, ErrForbidden):
		code = CodePermissionDenied
	}
	return Result[T]{code: code, reason: err.Error(), cause: err}
}

// OK reports whether the Result is a success.
func (r Result[T]) OK() bool {
	return r.ok
}

// Value returns the success value. Panics if the Result is a failure.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(fmt.Sprintf("domain: Value called on failed Result (%s: %s)", r.code, r.reason))
	}
	return r.value
}

// Reason returns the failure reason. Panics if the Result is a success.
func (r Result[T]) Reason() string {
	if r.ok {
		panic("domain: Reason called on successful Result")
	}
	return r.reason
}

// Code returns the failure code. Panics if the Result is a success.
func (r Result[T]) Code() FailureCode {
	if r.ok {
		panic("domain: Code called on successful Result")
	}
	return r.code
}

// Err returns nil for a success, or an error whose message is the failure
// reason and whose chain matches the code's sentinel. When the Result was
// built with FailFrom, the original error is the chain's tail.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return &failureError{code: r.code, reason: r.reason, cause: r.cause}
}

// failureError adapts a failed Result to the error world.
type failureError struct {
	code   FailureCode
	reason string
	cause  error
}

func (e *failureError) Error() string {
	return e.reason
}

func (e *failureError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return e.code.sentinel()
}
