// Package apperr defines coded service errors that transports map to status
// codes.
package apperr

import "errors"

type Code string

const (
	CodeInvalid  Code = "invalid"
	CodeNotFound Code = "not_found"
	CodeConflict Code = "conflict"
	CodeBlocked  Code = "blocked"
	CodeInternal Code = "internal"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

func Invalid(msg string) *Error  { return &Error{Code: CodeInvalid, Message: msg} }
func NotFound(msg string) *Error { return &Error{Code: CodeNotFound, Message: msg} }
func Conflict(msg string) *Error { return &Error{Code: CodeConflict, Message: msg} }
func Blocked(msg string) *Error  { return &Error{Code: CodeBlocked, Message: msg} }
func Internal(msg string) *Error { return &Error{Code: CodeInternal, Message: msg} }

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	if e, ok := As(err); ok {
		return e.Code
	}
	return CodeInternal
}
