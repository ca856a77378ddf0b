// Package errors provides structured error reporting for zeta list adapters
// and the surrounding app plumbing.
//
// Errors are delivered to a [Handler]. Components that need diagnostics take a
// Handler at construction time; when none is supplied they fall back to the
// package-level handler configured with [SetHandler].
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindContract indicates a caller broke an API contract, such as
	// querying a list position outside [0, count).
	KindContract
	// KindStaleIndex indicates a transient inconsistency between a cached
	// position and the current item count.
	KindStaleIndex
	// KindNetwork indicates a connectivity failure.
	KindNetwork
	// KindParsing indicates a payload could not be decoded.
	KindParsing
	// KindConfig indicates an invalid or unreadable configuration value.
	KindConfig
	// KindStorage indicates a persisted settings failure.
	KindStorage
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindStaleIndex:
		return "stale-index"
	case KindNetwork:
		return "network"
	case KindParsing:
		return "parsing"
	case KindConfig:
		return "config"
	case KindStorage:
		return "storage"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ErrNoConnectivity marks failures caused by the device having no usable
// network. Wrap it so callers can match with errors.Is.
var ErrNoConnectivity = errors.New("no network connectivity")

// Error represents a structured zeta error.
type Error struct {
	// Op is the operation that failed (e.g., "adapter.StickyID").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Index is the list position involved, or -1 when not applicable.
	Index int
	// Count is the item count observed when the error happened.
	Count int
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Index >= 0 && (e.Kind == KindContract || e.Kind == KindStaleIndex) {
		return fmt.Sprintf("%s [%s] index=%d count=%d: %v", e.Op, e.Kind, e.Index, e.Count, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an Error with no list position attached.
func New(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err, Index: -1}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "listview.Frame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by zeta components.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
