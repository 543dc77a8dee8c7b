package pattern

import (
	"fmt"
)

// Error codes used by Combine:
const (
	BadNameError = iota + 1
	DuplicateNameError
	BadRegexpError
	EmptyMatchError
	CombineError
)

// Error reports an invalid pattern set.
// It is always detected while building a Matcher, before any scanning starts.
type Error struct {
	// Code contains one of the error code constants.
	Code int

	// Name contains the name of the offending pattern or empty string.
	Name string

	// Message contains a human-readable error message.
	Message string
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

func badNameError(name string) *Error {
	return &Error{BadNameError, name, fmt.Sprintf("invalid pattern name %q", name)}
}

func duplicateNameError(name string) *Error {
	return &Error{DuplicateNameError, name, fmt.Sprintf("pattern %q already defined", name)}
}

func badRegexpError(name, expr string, e error) *Error {
	return &Error{BadRegexpError, name, fmt.Sprintf("incorrect RegExp /%s/ for pattern %q (%s)", expr, name, e.Error())}
}

func emptyMatchError(name, expr string) *Error {
	return &Error{EmptyMatchError, name, fmt.Sprintf("RegExp /%s/ for pattern %q matches empty string", expr, name)}
}

func combineError(e error) *Error {
	return &Error{CombineError, "", "cannot combine patterns (" + e.Error() + ")"}
}
