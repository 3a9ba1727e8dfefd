package cling

import "fmt"

// ErrorCode distinguishes the kinds of resolution and parsing failures. All
// are immediately fatal; there is no internal recovery.
type ErrorCode int

const (
	// CodeUnknownSubcommand: a token did not match any child of a command
	// that has children.
	CodeUnknownSubcommand ErrorCode = iota + 1
	// CodeUnexpectedArgument: a token appeared where a flag was expected but
	// does not start with a dash.
	CodeUnexpectedArgument
	// CodeUnknownArgument: a dash-prefixed key matches no registered
	// definition, long or short.
	CodeUnknownArgument
	// CodeMissingValue: a non-boolean flag has no inline value and no
	// eligible following token.
	CodeMissingValue
	// CodeInvalidValue: a collected raw value failed its definition's type
	// validator.
	CodeInvalidValue
	// CodeMissingRequired: a required definition has no supplied or default
	// value after the full scan.
	CodeMissingRequired
)

func (c ErrorCode) String() string {
	switch c {
	case CodeUnknownSubcommand:
		return "unknown subcommand"
	case CodeUnexpectedArgument:
		return "unexpected argument"
	case CodeUnknownArgument:
		return "unknown argument"
	case CodeMissingValue:
		return "missing value"
	case CodeInvalidValue:
		return "invalid value"
	case CodeMissingRequired:
		return "missing required argument"
	}
	return "unknown error"
}

// Error is a resolution or parsing failure. Code identifies the failure kind
// and Token names the offending token or flag; the message always contains
// the offender. Exit-code mapping is left to the embedding application.
type Error struct {
	Code  ErrorCode
	Token string

	msg string
}

func newError(code ErrorCode, token, format string, args ...any) *Error {
	return &Error{Code: code, Token: token, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.msg
}
