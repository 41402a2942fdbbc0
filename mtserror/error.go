package mtserror

import (
	"errors"
	"fmt"
)

// Kind classifies an Error into one of the three families the core ever
// returns. The zero value is not a valid Kind produced by this package.
type Kind int

const (
	// InvalidParameter marks a caller-observable precondition failure.
	InvalidParameter Kind = iota + 1
	// ArrayBackendError marks a failure forwarded verbatim from an Array.
	ArrayBackendError
	// Unimplemented marks a documented gap (only components_to_properties
	// with gradients, today).
	Unimplemented
)

// String renders the Kind for error messages and test failure output.
func (k Kind) String() string {
	switch k {
	case InvalidParameter:
		return "invalid_parameter"
	case ArrayBackendError:
		return "array_backend_error"
	case Unimplemented:
		return "unimplemented"
	default:
		return "unknown"
	}
}

// Error is the error type the labels, block and tensor packages return
// (mtarray.Dense returns its own sentinels, which the core wraps with
// ArrayBackend when it forwards them). It always carries a
// Kind and a human-readable message naming the offending entities; it may
// wrap an underlying sentinel so callers can still use errors.Is against a
// package-specific sentinel (e.g. labels.ErrDuplicateRow).
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// InvalidParameterf builds an InvalidParameter Error with a formatted
// message, optionally wrapping cause.
func InvalidParameterf(cause error, format string, args ...interface{}) error {
	return &Error{Kind: InvalidParameter, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// ArrayBackend wraps an error returned by an Array method verbatim, tagging
// it as ArrayBackendError without altering its message.
func ArrayBackend(cause error) error {
	if cause == nil {
		return nil
	}

	return &Error{Kind: ArrayBackendError, Message: cause.Error(), Cause: cause}
}

// Unimplementedf builds an Unimplemented Error with a formatted message.
func Unimplementedf(format string, args ...interface{}) error {
	return &Error{Kind: Unimplemented, Message: fmt.Sprintf(format, args...)}
}

// KindOf recovers the Kind carried by err, walking the error chain. It
// returns the zero Kind if err is nil or does not carry one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
