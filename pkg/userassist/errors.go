package userassist

import "errors"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindSource ErrKind = iota // input could not be opened or read at all
	ErrKindFormat                // input is neither a hive nor a regedit export
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is regardless of message or cause.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t == nil || e == nil {
		return false
	}
	return e.Kind == t.Kind
}

var (
	// ErrSource indicates the input could not be opened or read.
	ErrSource = &Error{Kind: ErrKindSource, Msg: "userassist source unavailable"}
	// ErrFormat indicates the input is not a recognised data file.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "not a registry hive or regedit export"}
)

func sourceError(msg string, err error) error {
	return &Error{Kind: ErrKindSource, Msg: msg, Err: err}
}

func formatError(msg string, err error) error {
	return &Error{Kind: ErrKindFormat, Msg: msg, Err: err}
}
