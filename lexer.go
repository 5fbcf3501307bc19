package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Token is one white-space separated lexeme of a source line.
type Token struct {
	Lexeme string
	Line   int
}

// sourceLine is a significant line: comments removed, at least one token.
type sourceLine struct {
	Number int
	Tokens []Token
}

// lexer yields the significant lines of its input, one at a time. It
// reads its input exactly once and cannot be restarted.
type lexer struct {
	scanner *bufio.Scanner
	line    int
	err     error
}

func newLexer(input io.Reader) *lexer {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 1024*1024), 10*1024*1024) // 10MB max line
	return &lexer{scanner: scanner}
}

// Next returns the next significant line. It returns false at the end of
// input or after a failure; Err distinguishes the two.
func (l *lexer) Next() (sourceLine, bool) {
	if l.err != nil {
		return sourceLine{}, false
	}
	for l.scanner.Scan() {
		l.line++
		raw := l.scanner.Bytes()
		if !utf8.Valid(raw) {
			l.err = newError(OtherError, l.line, "", "input is not valid UTF-8")
			return sourceLine{}, false
		}

		fields := strings.Fields(stripComment(string(raw)))
		if len(fields) == 0 {
			continue
		}

		tokens := make([]Token, len(fields))
		for i, f := range fields {
			tokens[i] = Token{Lexeme: f, Line: l.line}
		}
		return sourceLine{Number: l.line, Tokens: tokens}, true
	}
	if err := l.scanner.Err(); err != nil {
		l.err = newError(OtherError, l.line+1, "", "error reading input").withCause(fmt.Errorf("read: %w", err))
	}
	return sourceLine{}, false
}

// Err returns the first failure encountered by Next, or nil.
func (l *lexer) Err() error {
	return l.err
}

// stripComment drops everything from the first '#'. String constants
// cannot contain a verbatim '#', so every '#' starts a comment.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}
