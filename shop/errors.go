// Package shop holds the error model, validators and logger setup shared by
// the cart, catalog and session packages.
//
// Storefront rejections come in two kinds. A malformed value (a sort key
// nobody recognises, a catalog record with a discount of 120, a session
// command with a non-numeric quantity) is StatusInvalidArgument. A value that
// is well formed but conflicts with what is already there (a second product
// with an id already in the catalog) is StatusFailedPrecondition.
package shop

import "fmt"

// StatusCode classifies a rejected catalog record, sort key or session command.
type StatusCode int

const (
	// StatusInvalidArgument: the value itself is malformed or out of range.
	StatusInvalidArgument StatusCode = iota
	// StatusFailedPrecondition: the value clashes with existing storefront state.
	StatusFailedPrecondition
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusFailedPrecondition:
		return "FAILED_PRECONDITION"
	default:
		return "UNKNOWN"
	}
}

// CommandError is what catalog validation, sort key parsing and the session
// dispatcher return instead of panicking. Message is shown to the shopper
// as-is, so it carries no stack or wrapping.
type CommandError struct {
	Code    StatusCode
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

func NewInvalidArgument(message string) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: message}
}

// NewInvalidArgumentf is used where the offending input belongs in the
// message, e.g. "Unknown sort key: newest".
func NewInvalidArgumentf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func NewFailedPrecondition(message string) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: message}
}

func NewFailedPreconditionf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: fmt.Sprintf(format, args...)}
}

// CodeOf reports the StatusCode carried by err. Config I/O errors wrap with
// %w and are not CommandErrors; ok is false for them.
func CodeOf(err error) (StatusCode, bool) {
	cmdErr, ok := err.(*CommandError)
	if !ok {
		return 0, false
	}
	return cmdErr.Code, true
}
