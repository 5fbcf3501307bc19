package main

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a translation failure. Its value is the exit code.
type ErrorKind int

const (
	ArgError    ErrorKind = 10 // bad invocation or configuration
	HeaderError ErrorKind = 21 // missing or invalid header
	OpcodeError ErrorKind = 22 // unknown opcode
	OtherError  ErrorKind = 23 // any other lexical or syntactic error
)

var (
	ErrArgs   = errors.New("invalid arguments")
	ErrHeader = errors.New("missing or invalid header")
	ErrOpcode = errors.New("unknown opcode")
	ErrSyntax = errors.New("syntax error")
)

func (k ErrorKind) String() string {
	switch k {
	case ArgError:
		return "ArgError"
	case HeaderError:
		return "HeaderError"
	case OpcodeError:
		return "OpcodeError"
	case OtherError:
		return "OtherError"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) sentinel() error {
	switch k {
	case ArgError:
		return ErrArgs
	case HeaderError:
		return ErrHeader
	case OpcodeError:
		return ErrOpcode
	}
	return ErrSyntax
}

// Error is returned for every translation failure. Line is 0 when the
// failure is not tied to a source line.
type Error struct {
	Kind   ErrorKind
	Line   int
	Lexeme string
	Err    error // underlying cause, may be nil
	msg    string
}

func newError(kind ErrorKind, line int, lexeme string, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, Lexeme: lexeme, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) withCause(err error) *Error {
	e.Err = err
	return e
}

func (e *Error) Error() string {
	msg := e.msg
	if msg == "" {
		msg = e.Kind.sentinel().Error()
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

// ExitCode returns the process exit code for the error.
func (e *Error) ExitCode() int {
	return int(e.Kind)
}

// exitCode maps err to a process exit code. Errors that did not come
// from the translator are reported as OtherError.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var terr *Error
	if errors.As(err, &terr) {
		return terr.ExitCode()
	}
	return int(OtherError)
}
