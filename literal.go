package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LiteralKind is the class of an instruction argument. Its string value
// is the type attribute written to XML.
type LiteralKind string

const (
	VarKind    = LiteralKind("var")
	IntKind    = LiteralKind("int")
	BoolKind   = LiteralKind("bool")
	StringKind = LiteralKind("string")
	NilKind    = LiteralKind("nil")
	LabelKind  = LiteralKind("label")
	TypeKind   = LiteralKind("type")
)

// isConstant reports whether k is one of the constant kinds.
func (k LiteralKind) isConstant() bool {
	switch k {
	case IntKind, BoolKind, StringKind, NilKind:
		return true
	}
	return false
}

// Frame is a variable storage class.
type Frame string

const (
	GlobalFrame    = Frame("GF")
	LocalFrame     = Frame("LF")
	TemporaryFrame = Frame("TF")
)

// Literal is a fully validated instruction argument.
type Literal struct {
	Kind LiteralKind
	Text string // value as written to XML
	// Value holds the decoded value: int64 for Int (*big.Int when it
	// does not fit), bool for Bool, the unescaped string for String.
	// Nil for the other kinds.
	Value any

	Frame Frame  // Var only
	Name  string // Var and Label
}

func (l Literal) String() string {
	return fmt.Sprintf("%s@%s", l.Kind, l.Text)
}

var typeKeywords = map[string]bool{"int": true, "bool": true, "string": true}

// classify turns a single lexeme into a Literal. The classes are tried
// in a fixed order and the first structural match decides; a lexeme
// that matches a class prefix but not its rule is rejected outright.
func classify(lexeme string) (Literal, error) {
	prefix, rest, hasAt := strings.Cut(lexeme, "@")
	if !hasAt {
		if typeKeywords[lexeme] {
			return Literal{Kind: TypeKind, Text: lexeme}, nil
		}
		if isIdentifier(lexeme) {
			return Literal{Kind: LabelKind, Text: lexeme, Name: lexeme}, nil
		}
		return Literal{}, fmt.Errorf("invalid label %q", lexeme)
	}

	switch prefix {
	case "GF", "LF", "TF":
		if !isIdentifier(rest) {
			return Literal{}, fmt.Errorf("invalid variable name %q", lexeme)
		}
		return Literal{Kind: VarKind, Text: lexeme, Frame: Frame(prefix), Name: rest}, nil
	case "int":
		return parseIntLiteral(rest)
	case "bool":
		switch rest {
		case "true":
			return Literal{Kind: BoolKind, Text: rest, Value: true}, nil
		case "false":
			return Literal{Kind: BoolKind, Text: rest, Value: false}, nil
		}
		return Literal{}, fmt.Errorf("invalid bool constant %q", lexeme)
	case "string":
		decoded, err := unescapeString(rest)
		if err != nil {
			return Literal{}, fmt.Errorf("invalid string constant %q: %w", lexeme, err)
		}
		return Literal{Kind: StringKind, Text: rest, Value: decoded}, nil
	case "nil":
		if rest != "nil" {
			return Literal{}, fmt.Errorf("invalid nil constant %q", lexeme)
		}
		return Literal{Kind: NilKind, Text: rest}, nil
	}
	return Literal{}, fmt.Errorf("unrecognized literal %q", lexeme)
}

func parseIntLiteral(text string) (Literal, error) {
	digits := strings.TrimLeft(text, "+-")
	if len(text)-len(digits) > 1 || digits == "" {
		return Literal{}, fmt.Errorf("invalid int constant %q", "int@"+text)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Literal{}, fmt.Errorf("invalid int constant %q", "int@"+text)
		}
	}
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Literal{Kind: IntKind, Text: text, Value: v}, nil
	}
	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return Literal{}, fmt.Errorf("invalid int constant %q", "int@"+text)
	}
	return Literal{Kind: IntKind, Text: text, Value: v}, nil
}

// unescapeString decodes \ddd escape sequences. A literal '#', white
// space, a non-printable character or a backslash not followed by three
// digits is an error.
func unescapeString(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == '#':
			return "", fmt.Errorf("'#' at offset %d must be escaped", i)
		case r == '\\':
			if i+3 >= len(s) {
				return "", fmt.Errorf("incomplete escape sequence at offset %d", i)
			}
			code := 0
			for _, d := range []byte(s[i+1 : i+4]) {
				if d < '0' || d > '9' {
					return "", fmt.Errorf("invalid escape sequence %q", s[i:i+4])
				}
				code = code*10 + int(d-'0')
			}
			b.WriteRune(rune(code))
			size = 4
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
			return "", fmt.Errorf("white space at offset %d must be escaped", i)
		case r == utf8.RuneError && size <= 1, !unicode.IsPrint(r):
			return "", fmt.Errorf("non-printable character %U at offset %d must be escaped", r, i)
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String(), nil
}

func isNameStart(r rune) bool {
	return unicode.IsLetter(r) || strings.ContainsRune("_-$&%*", r)
}

// isIdentifier reports whether s is a valid variable or label name.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isNameStart(r) {
				return false
			}
			continue
		}
		if !isNameStart(r) && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
