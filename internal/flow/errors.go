// Package flow holds the error kinds and step bookkeeping shared by the
// classification, conversion and organization flows.
package flow

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	// ErrNetwork means the collaborator never answered.
	ErrNetwork = errors.New("network error")
	// ErrService means the collaborator answered with a failure or unusable data.
	ErrService = errors.New("service error")
	// ErrValidation means the caller supplied missing or malformed input.
	ErrValidation = errors.New("validation error")
	// ErrResolution means an organize preview referenced a folder name that resolves nowhere.
	ErrResolution = errors.New("resolution error")
	// ErrConflict means a uniqueness rule would be broken, e.g. a duplicate folder name.
	ErrConflict = errors.New("conflict")
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
)

// Error carries a kind, the operation that failed and an optional cause.
type Error struct {
	Kind   error
	Op     string
	Msg    string
	Err    error
	Fields []FieldViolation
}

// FieldViolation names one invalid input field.
type FieldViolation struct {
	Field       string
	Description string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Msg != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Msg)
	}
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// New returns an *Error of kind for op with a formatted message.
func New(kind error, op string, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an *Error of kind for op caused by err. It returns nil if err is nil.
func Wrap(kind error, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the first known kind err matches, or nil.
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrResolution, ErrNetwork, ErrService} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Violations returns the field violations carried by err.
func Violations(err error) []FieldViolation {
	var flowErr *Error
	if errors.As(err, &flowErr) {
		return flowErr.Fields
	}
	return nil
}
