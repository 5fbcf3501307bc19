package main

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 10, exitCode(newError(ArgError, 0, "", "bad")))
	assert.Equal(t, 21, exitCode(newError(HeaderError, 1, "", "bad")))
	assert.Equal(t, 22, exitCode(newError(OpcodeError, 2, "FOO", "bad")))
	assert.Equal(t, 23, exitCode(newError(OtherError, 3, "", "bad")))
	assert.Equal(t, 23, exitCode(errors.New("anything else")))

	wrapped := fmt.Errorf("context: %w", newError(OpcodeError, 2, "FOO", "bad"))
	assert.Equal(t, 22, exitCode(wrapped))
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	_, cause := strconv.Atoi("x")
	err := newError(OtherError, 7, "int@x", "operand %d of %s", 1, "WRITE").withCause(cause)

	assert.Equal(t, `line 7: operand 1 of WRITE: `+cause.Error(), err.Error())
	assert.ErrorIs(t, err, ErrSyntax)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.NotErrorIs(t, err, ErrHeader)

	assert.Equal(t, "missing or invalid header", (&Error{Kind: HeaderError}).Error())
	assert.Equal(t, "OpcodeError", OpcodeError.String())
	assert.Equal(t, "ErrorKind(1)", ErrorKind(1).String())
}
