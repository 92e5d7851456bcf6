package todo

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an action left the state unchanged.
type ErrorKind string

const (
	KindNotFound           ErrorKind = "NOT_FOUND"
	KindIndexOutOfRange    ErrorKind = "INDEX_OUT_OF_RANGE"
	KindEmptyInput         ErrorKind = "EMPTY_INPUT"
	KindSelfTargetSelected ErrorKind = "SELF_TARGET_SELECTED"
	KindEmptySelection     ErrorKind = "EMPTY_SELECTION"
	KindUnknownAction      ErrorKind = "UNKNOWN_ACTION"
)

// Sentinels for errors.Is. Matching compares kinds only.
var (
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrIndexOutOfRange    = &Error{Kind: KindIndexOutOfRange}
	ErrEmptyInput         = &Error{Kind: KindEmptyInput}
	ErrSelfTargetSelected = &Error{Kind: KindSelfTargetSelected}
	ErrEmptySelection     = &Error{Kind: KindEmptySelection}
	ErrUnknownAction      = &Error{Kind: KindUnknownAction}
)

// Error reports a rejected action. The state returned alongside it is
// always the input state.
type Error struct {
	Kind    ErrorKind
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// WithDetail adds a detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func notFound(id string) *Error {
	return newError(KindNotFound, "no item with id %q", id).WithDetail("id", id)
}

func indexOutOfRange(name string, index, length int) *Error {
	return newError(KindIndexOutOfRange, "%s %d outside [0, %d)", name, index, length).
		WithDetail(name, index).
		WithDetail("length", length)
}
