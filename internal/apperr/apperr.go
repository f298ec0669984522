// Package apperr defines the error taxonomy shared by the core services.
// Handlers translate kinds to HTTP statuses; the core never formats
// user-facing text beyond the message carried here.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Validation Kind = iota + 1 // malformed or missing input, caller fixes the request
	NotFound                   // referenced entity absent, not retriable
	Conflict                   // reserved for explicit-set operations, unused by toggle
	Storage                    // underlying persistence failure, safe to retry
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not found"
	case Conflict:
		return "conflict"
	case Storage:
		return "storage"
	}
	return "unknown"
}

// Error is a typed failure returned by the core to the request boundary.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validationf builds a Validation error
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: Validation, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFound error
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Msg: fmt.Sprintf(format, args...)}
}

// Storagef wraps a persistence failure
func Storagef(err error, format string, args ...any) *Error {
	return &Error{Kind: Storage, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of err, or Storage for untyped errors so that
// unexpected failures always surface as generic server-side faults.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Storage
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
